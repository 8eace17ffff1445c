package xmlparse

// Parser drives a single parse of one in-memory document, reporting
// structure through its Sink. Every branch decision uses one or two bytes
// of lookahead; there is no backtracking.
//
// A Parser is single-use and single-threaded: parsing is one synchronous
// call chain with no suspension points, and the only way to stop a parse
// early is a failure.
type Parser struct {
	cur  *cursor
	sink Sink
	opts options
}

// NewParser creates a parser over content that reports events to sink.
// The buffer is not copied; callers must not mutate it during the parse.
func NewParser(content []byte, sink Sink, opts ...Option) *Parser {
	return &Parser{
		cur:  newCursor(content),
		sink: sink,
		opts: applyOptions(opts),
	}
}

// Parse is a convenience that parses content in one call.
func Parse(content []byte, sink Sink, opts ...Option) error {
	return NewParser(content, sink, opts...).ParseDocument()
}

// ParseDocument parses the whole buffer: an optional prolog, then any
// number of top-level tags and comments (exactly one tag under
// WithSingleRoot). The first error aborts the parse.
func (p *Parser) ParseDocument() error {
	c := p.cur
	c.skipSpace()

	first := true
	roots := 0

	for !c.eof() {
		if c.at() != '<' {
			return c.errorf(ErrExpectedTag, "expected '<'")
		}
		next, err := c.peek(1)
		if err != nil {
			return err
		}
		switch {
		case next == '?':
			if !first {
				return c.errorf(ErrMisplacedHeader, "header is only valid before document content")
			}
			if err := p.parseHeader(); err != nil {
				return err
			}
		case next == '!':
			comment, err := p.parseComment()
			if err != nil {
				return err
			}
			p.sink.Comment(comment)
		case isAlpha(next):
			roots++
			if p.opts.singleRoot && roots > 1 {
				return c.errorf(ErrMultipleRoots, "document already has a root element")
			}
			if err := p.parseTag(); err != nil {
				return err
			}
		default:
			return c.errorf(ErrExpectedTag, "expected a tag, comment, or header")
		}
		first = false
		c.skipSpace()
	}

	if p.opts.singleRoot && roots == 0 {
		return c.errorf(ErrNoRootElement, "document has no root element")
	}
	return nil
}

// parseHeader consumes the "<?xml ... ?>" prolog. Header attributes are
// read and discarded; the prolog produces no events.
func (p *Parser) parseHeader() error {
	c := p.cur
	for _, b := range []byte("<?xml") {
		if err := c.match(b); err != nil {
			return err
		}
	}
	for !c.eof() {
		c.skipSpace()
		b, err := c.peek(0)
		if err != nil {
			return err
		}
		if isAlpha(b) {
			if _, err := c.readName(); err != nil {
				return err
			}
			c.skipSpace()
			if err := c.match('='); err != nil {
				return err
			}
			if _, err := c.readQuotedString(); err != nil {
				return err
			}
			continue
		}
		if b == '?' {
			if err := c.match('?'); err != nil {
				return err
			}
			return c.match('>')
		}
		return c.errorf(ErrMalformedTag, "unexpected character in header")
	}
	return c.errorf(ErrMalformedTag, "unterminated header")
}

// parseComment consumes "<!--" plus the comment body and returns the body.
func (p *Parser) parseComment() (string, error) {
	c := p.cur
	for _, b := range []byte("<!--") {
		if err := c.match(b); err != nil {
			return "", err
		}
	}
	return c.readCommentBody()
}

// parseTag parses one tag: name, attributes, then either the self-closing
// form or the tag's mixed text/comment/child content up to its closing tag.
func (p *Parser) parseTag() error {
	c := p.cur
	c.skipSpace()
	if err := c.match('<'); err != nil {
		return err
	}
	name, err := c.readName()
	if err != nil {
		return err
	}
	p.sink.TagOpen(name)

	// Attributes, until '>' or '/>'.
	for {
		c.skipSpace()
		if c.eof() {
			return c.errorf(ErrMalformedTag, "unterminated tag <"+name+">")
		}
		b := c.at()
		switch {
		case isAlpha(b):
			attrName, err := c.readName()
			if err != nil {
				return err
			}
			c.skipSpace()
			if err := c.match('='); err != nil {
				return err
			}
			value, err := c.readQuotedString()
			if err != nil {
				return err
			}
			p.sink.Attribute(attrName, value)
		case b == '>':
			c.advance()
			return p.parseContent(name)
		case b == '/':
			if err := c.match('/'); err != nil {
				return err
			}
			if err := c.match('>'); err != nil {
				return err
			}
			p.sink.TagClose(name)
			return nil
		default:
			return c.errorf(ErrMalformedTag, "unexpected character in tag <"+name+">")
		}
	}
}

// parseContent parses the content of a non-self-closing tag: closing tag,
// comments, nested tags, and text, in any order.
func (p *Parser) parseContent(name string) error {
	c := p.cur
	for !c.eof() {
		c.skipSpace()
		if c.eof() {
			break
		}
		if c.at() != '<' {
			// Text runs up to the next '<'. The parser reports text
			// even when a sink has no use for it.
			p.sink.Text(c.readText())
			continue
		}
		next, err := c.peek(1)
		if err != nil {
			return err
		}
		switch {
		case next == '/':
			closeName, err := c.readClosingTag()
			if err != nil {
				return err
			}
			if closeName != name {
				return &ParseError{
					Kind:     ErrClosingTagMismatch,
					Line:     c.line,
					Column:   c.column,
					Expected: name,
					Found:    closeName,
				}
			}
			p.sink.TagClose(name)
			return nil
		case next == '!':
			comment, err := p.parseComment()
			if err != nil {
				return err
			}
			p.sink.Comment(comment)
		case isAlpha(next):
			if err := p.parseTag(); err != nil {
				return err
			}
		default:
			return c.errorf(ErrMalformedTag, "unexpected markup in <"+name+">")
		}
	}
	// End of input with the tag still open mirrors the grammar's
	// permissiveness at top level: the tag is left unclosed and the
	// parse ends without a TagClose event.
	return nil
}
