// Package xmlparse implements a single-pass, recursive-descent XML parser
// that reports document structure through a caller-supplied event Sink.
//
// The parser covers the subset of XML this project cares about: an optional
// <?xml?> prolog, comments, and nested tags with attributes and mixed
// text/comment/child content. It does not expand character references,
// resolve namespaces, or validate against a schema.
package xmlparse

// cursor owns the input buffer and the current read position. It never
// copies the buffer; all scanning works on byte offsets into content.
type cursor struct {
	content []byte
	pos     int

	// line is 1-based; column counts characters consumed since the last
	// newline and resets to 0 when one is consumed.
	line   int
	column int
}

func newCursor(content []byte) *cursor {
	return &cursor{content: content, line: 1}
}

// eof reports whether the cursor has consumed the whole buffer.
func (c *cursor) eof() bool {
	return c.pos >= len(c.content)
}

// peek returns the byte at pos+offset without consuming it.
// Fails with ErrOutOfRange when the index falls outside the buffer.
func (c *cursor) peek(offset int) (byte, error) {
	i := c.pos + offset
	if i < 0 || i >= len(c.content) {
		return 0, &ParseError{
			Kind:   ErrOutOfRange,
			Line:   c.line,
			Column: c.column,
			Msg:    "lookahead past end of input",
		}
	}
	return c.content[i], nil
}

// advance consumes exactly one byte, updating the line and column counters.
// Callers must check eof first; advancing at end of input is a bug.
func (c *cursor) advance() {
	if c.content[c.pos] == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	c.pos++
}

// match requires the current byte to equal expected and consumes it.
func (c *cursor) match(expected byte) error {
	found, err := c.peek(0)
	if err != nil {
		return err
	}
	if found != expected {
		return &ParseError{
			Kind:     ErrUnexpectedCharacter,
			Line:     c.line,
			Column:   c.column,
			Expected: string(expected),
			Found:    string(found),
		}
	}
	c.advance()
	return nil
}

// errorf builds a ParseError of the given kind at the current position.
func (c *cursor) errorf(kind ErrorKind, msg string) *ParseError {
	return &ParseError{Kind: kind, Line: c.line, Column: c.column, Msg: msg}
}
