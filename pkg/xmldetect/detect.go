// Package xmldetect decides whether a file should be treated as XML.
// It combines extension checks with go-enry content detection so that
// discovery does not depend on file names alone.
package xmldetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// DefaultExtensions returns the file extensions treated as XML by default
// (lowercase, with leading dot).
func DefaultExtensions() []string {
	return []string{".xml", ".xsd", ".xsl", ".svg", ".plist"}
}

// HasXMLExtension reports whether path carries one of the default XML
// extensions.
func HasXMLExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range DefaultExtensions() {
		if ext == known {
			return true
		}
	}
	return false
}

// IsXML reports whether the file at path with the given content should be
// parsed as XML. Content wins over extension: a prolog or a detected XML
// language is accepted regardless of the file name, and a known extension
// is accepted when the content is at least plausible markup.
func IsXML(path string, content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return HasXMLExtension(path)
	}

	if bytes.HasPrefix(trimmed, []byte("<?xml")) {
		return true
	}

	if lang := enry.GetLanguage(filepath.Base(path), content); lang == "XML" {
		return true
	}

	// A known extension plus leading markup is good enough; enry may
	// classify SVG and friends as their own languages.
	return HasXMLExtension(path) && trimmed[0] == '<'
}
