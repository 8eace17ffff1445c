package xmlparse

// Character classification. Names are ASCII: a leading letter followed by
// letters, digits, or underscores.

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameChar(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}

// at returns the current byte. Callers must have checked eof.
func (c *cursor) at() byte {
	return c.content[c.pos]
}

// skipSpace consumes whitespace until a non-space byte or end of input.
func (c *cursor) skipSpace() {
	for !c.eof() && isSpace(c.at()) {
		c.advance()
	}
}

// readName reads a tag or attribute name. Leading whitespace is skipped.
// The first character must be alphabetic; subsequent characters may also
// be digits or underscores.
func (c *cursor) readName() (string, error) {
	c.skipSpace()
	b, err := c.peek(0)
	if err != nil {
		return "", err
	}
	if !isAlpha(b) {
		return "", &ParseError{
			Kind:   ErrInvalidName,
			Line:   c.line,
			Column: c.column,
			Found:  string(b),
			Msg:    "name must start with a letter",
		}
	}
	start := c.pos
	for !c.eof() && isNameChar(c.at()) {
		c.advance()
	}
	return string(c.content[start:c.pos]), nil
}

// readQuotedString reads a double-quoted string and returns its contents
// without the quotes. Bytes between the quotes are taken verbatim; there
// is no escape-sequence handling of any kind.
func (c *cursor) readQuotedString() (string, error) {
	c.skipSpace()
	if err := c.match('"'); err != nil {
		return "", err
	}
	start := c.pos
	for !c.eof() && c.at() != '"' {
		c.advance()
	}
	value := string(c.content[start:c.pos])
	if err := c.match('"'); err != nil {
		return "", err
	}
	return value, nil
}

// readText consumes bytes up to (not including) the next '<' and returns
// them. Returns the empty string when the cursor is already at a '<'.
func (c *cursor) readText() string {
	start := c.pos
	for !c.eof() && c.at() != '<' {
		c.advance()
	}
	return string(c.content[start:c.pos])
}

// readCommentBody reads a comment body after the caller has consumed the
// opening "<!--". It tracks a single-hyphen lookback flag: once two
// consecutive hyphens are seen the next byte must be '>', which ends the
// comment. The returned body excludes the terminating "-->".
//
// An interior "--" before the intended end therefore terminates the
// comment early (or fails when not followed by '>'). That matches the
// behavior this scanner has always had; callers relying on it are pinned
// by tests.
func (c *cursor) readCommentBody() (string, error) {
	var body []byte
	hyphen := false
	for !c.eof() {
		b := c.at()
		if b == '-' && !hyphen {
			c.advance()
			hyphen = true
			continue
		}
		if b == '-' && hyphen {
			c.advance()
			if c.eof() || c.at() != '>' {
				return "", c.errorf(ErrMalformedComment, "expected '>' after '--'")
			}
			c.advance()
			return string(body), nil
		}
		// A lone hyphen turned out not to be part of a terminator;
		// it belongs to the body after all.
		if hyphen {
			body = append(body, '-')
		}
		body = append(body, b)
		c.advance()
		hyphen = false
	}
	return "", c.errorf(ErrMalformedComment, "unterminated comment")
}

// readClosingTag reads "</name>" and returns the name.
func (c *cursor) readClosingTag() (string, error) {
	if err := c.match('<'); err != nil {
		return "", err
	}
	if err := c.match('/'); err != nil {
		return "", err
	}
	name, err := c.readName()
	if err != nil {
		return "", err
	}
	if err := c.match('>'); err != nil {
		return "", err
	}
	return name, nil
}
