package xmldom

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrSerializeAttribute is returned when serializing an attribute entity
// directly; attributes only render as part of their owning tag.
var ErrSerializeAttribute = errors.New("attributes cannot be serialized standalone")

// WriteXML renders the entity as XML to w. Documents render only their
// children; callers that need a standalone file must prepend their own
// <?xml?> prolog. The indent string is applied per nesting level; pass ""
// for flat output with one construct per line.
func (e *Entity) WriteXML(w io.Writer, indent string) error {
	if e.kind == KindAttribute {
		return ErrSerializeAttribute
	}
	sw := &xmlWriter{w: w, indent: indent}
	sw.entity(e, 0)
	return sw.err
}

// XML renders the entity as an XML string using the given indent.
func (e *Entity) XML(indent string) (string, error) {
	var sb strings.Builder
	if err := e.WriteXML(&sb, indent); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// xmlWriter tracks the first write error so render logic stays linear.
type xmlWriter struct {
	w      io.Writer
	indent string
	err    error
}

func (sw *xmlWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *xmlWriter) pad(depth int) {
	if sw.indent == "" {
		return
	}
	sw.printf("%s", strings.Repeat(sw.indent, depth))
}

func (sw *xmlWriter) entity(e *Entity, depth int) {
	switch e.kind {
	case KindDocument:
		for _, child := range e.children {
			sw.entity(child, depth)
		}
	case KindTag:
		sw.tag(e, depth)
	case KindComment:
		sw.pad(depth)
		sw.printf("<!-- %s-->\n", e.value)
	case KindAttribute:
		// Rendered inline by the owning tag.
	}
}

// tag renders an opening tag with its attributes, then either the
// self-closing form or text, non-attribute children, and the closing tag.
// A tag self-closes only when nothing would render between the brackets:
// no text, no child tags, no comments.
func (sw *xmlWriter) tag(e *Entity, depth int) {
	sw.pad(depth)
	sw.printf("<%s", e.name)
	for attr := e.FirstChildAttribute(""); attr != nil; attr = attr.NextSiblingOf(KindAttribute, "") {
		// Verbatim value: the grammar has no escape handling, so Go
		// quoting would mangle round-trips.
		sw.printf(" %s=\"%s\"", attr.name, attr.value)
	}

	if e.value == "" && !e.hasRenderableChildren() {
		sw.printf(" />\n")
		return
	}

	sw.printf(">%s\n", e.value)
	for _, child := range e.children {
		if child.kind != KindAttribute {
			sw.entity(child, depth+1)
		}
	}
	sw.pad(depth)
	sw.printf("</%s>\n", e.name)
}

func (e *Entity) hasRenderableChildren() bool {
	for _, child := range e.children {
		if child.kind != KindAttribute {
			return true
		}
	}
	return false
}

// Dump writes a plain structural view of the subtree, one entity per line
// with two-space indentation. Intended for debugging.
func (e *Entity) Dump(w io.Writer) error {
	return WalkWithDepth(e, func(ent *Entity, depth int) error {
		pad := strings.Repeat("  ", depth)
		var err error
		switch ent.kind {
		case KindDocument:
			_, err = fmt.Fprintf(w, "%sDOCUMENT\n", pad)
		case KindTag:
			_, err = fmt.Fprintf(w, "%sTAG: %s\n", pad, ent.name)
		case KindAttribute:
			_, err = fmt.Fprintf(w, "%sATTRIBUTE: %s=%s\n", pad, ent.name, ent.value)
		case KindComment:
			_, err = fmt.Fprintf(w, "%sCOMMENT: %s\n", pad, ent.value)
		}
		return err
	})
}
