package xmldom

import (
	"github.com/yaklabco/goxmldom/pkg/xmlparse"
)

// Parse parses content and returns the Document root of the resulting
// tree. On failure the error is the parser's *xmlparse.ParseError and no
// tree is returned: a failed parse is fail-fast, never best-effort.
func Parse(content []byte, opts ...xmlparse.Option) (*Entity, error) {
	builder := NewBuilder()
	if err := xmlparse.Parse(content, builder, opts...); err != nil {
		return nil, err
	}
	return builder.Root(), nil
}

// ParseString is Parse for string input.
func ParseString(content string, opts ...xmlparse.Option) (*Entity, error) {
	return Parse([]byte(content), opts...)
}
