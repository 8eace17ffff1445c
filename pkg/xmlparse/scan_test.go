package xmlparse

import "testing"

func TestReadName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "abc", "abc"},
		{"leading whitespace", "  \n\tabc", "abc"},
		{"digits and underscores", "a1_b2", "a1_b2"},
		{"stops at non-name char", "abc>", "abc"},
		{"stops at space", "abc def", "abc"},
		{"single letter", "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor([]byte(tt.input))
			got, err := c.readName()
			if err != nil {
				t.Fatalf("readName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadNameInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"leading digit", "1abc", ErrInvalidName},
		{"leading underscore", "_abc", ErrInvalidName},
		{"leading punctuation", ">", ErrInvalidName},
		{"empty input", "", ErrOutOfRange},
		{"whitespace only", "   ", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor([]byte(tt.input))
			if _, err := c.readName(); !IsKind(err, tt.kind) {
				t.Errorf("readName() error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestReadQuotedString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"leading whitespace", `  "v"`, "v"},
		{"backslash passed through", `"a\nb"`, `a\nb`},
		{"entity reference passed through", `"&lt;"`, "&lt;"},
		{"angle brackets inside", `"<a>"`, "<a>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor([]byte(tt.input))
			got, err := c.readQuotedString()
			if err != nil {
				t.Fatalf("readQuotedString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readQuotedString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadQuotedStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"missing opening quote", `abc"`, ErrUnexpectedCharacter},
		{"unterminated", `"abc`, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor([]byte(tt.input))
			if _, err := c.readQuotedString(); !IsKind(err, tt.kind) {
				t.Errorf("readQuotedString() error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestReadText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"up to tag", "hello<b>", "hello"},
		{"empty at tag", "<b>", ""},
		{"to end of input", "trailing", "trailing"},
		{"keeps interior whitespace", "a  b\nc<", "a  b\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor([]byte(tt.input))
			if got := c.readText(); got != tt.want {
				t.Errorf("readText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadCommentBody(t *testing.T) {
	tests := []struct {
		name  string
		input string // input after the opening "<!--"
		want  string
	}{
		{"simple", " note -->", " note "},
		{"empty", "-->", ""},
		{"multiline", "line one\nline two-->", "line one\nline two"},
		{"lone hyphen kept", "a-b-->", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor([]byte(tt.input))
			got, err := c.readCommentBody()
			if err != nil {
				t.Fatalf("readCommentBody() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readCommentBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Interior "--" has always terminated the comment early; the body stops
// there and anything but '>' after it is an error.
func TestReadCommentBodyInteriorDoubleHyphen(t *testing.T) {
	c := newCursor([]byte("a--b-->"))
	if _, err := c.readCommentBody(); !IsKind(err, ErrMalformedComment) {
		t.Errorf("interior -- error = %v, want malformed comment", err)
	}

	c = newCursor([]byte("early-->late-->"))
	got, err := c.readCommentBody()
	if err != nil {
		t.Fatalf("readCommentBody() error = %v", err)
	}
	if got != "early" {
		t.Errorf("readCommentBody() = %q, want %q", got, "early")
	}
}

func TestReadCommentBodyUnterminated(t *testing.T) {
	c := newCursor([]byte("never ends"))
	if _, err := c.readCommentBody(); !IsKind(err, ErrMalformedComment) {
		t.Errorf("unterminated comment error = %v, want malformed comment", err)
	}
}

func TestReadClosingTag(t *testing.T) {
	c := newCursor([]byte("</foo>"))
	name, err := c.readClosingTag()
	if err != nil {
		t.Fatalf("readClosingTag() error = %v", err)
	}
	if name != "foo" {
		t.Errorf("readClosingTag() = %q, want %q", name, "foo")
	}
}

func TestSkipSpace(t *testing.T) {
	c := newCursor([]byte("  \t\n  x"))
	c.skipSpace()
	if c.eof() || c.at() != 'x' {
		t.Fatalf("skipSpace did not stop at 'x'")
	}

	// No-op at end of input.
	c = newCursor([]byte("   "))
	c.skipSpace()
	if !c.eof() {
		t.Error("skipSpace should consume a whitespace-only buffer")
	}
}
