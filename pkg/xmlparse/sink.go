package xmlparse

// Sink receives structural events as the parser recognizes them. The parser
// is sink-agnostic: a sink may build a tree, print events, count tags, or
// validate structure from the same parse.
//
// Text may be called with an empty string when a tag's content starts
// directly at a '<'; sinks that do not care should ignore it.
type Sink interface {
	// TagOpen is called when an opening tag's name has been read,
	// before any of its attributes.
	TagOpen(name string)

	// TagClose is called when a tag ends, either by its closing tag or
	// by the self-closing "/>" form.
	TagClose(name string)

	// Text is called with a tag's directly-owned text content.
	Text(text string)

	// Comment is called with a comment body, verbatim and unstripped.
	Comment(text string)

	// Attribute is called once per name="value" pair on the open tag.
	Attribute(name, value string)
}

// SinkFuncs adapts plain functions to the Sink interface. Nil fields are
// no-ops, so callers only wire the events they care about.
type SinkFuncs struct {
	TagOpenFunc   func(name string)
	TagCloseFunc  func(name string)
	TextFunc      func(text string)
	CommentFunc   func(text string)
	AttributeFunc func(name, value string)
}

// TagOpen implements Sink.
func (s SinkFuncs) TagOpen(name string) {
	if s.TagOpenFunc != nil {
		s.TagOpenFunc(name)
	}
}

// TagClose implements Sink.
func (s SinkFuncs) TagClose(name string) {
	if s.TagCloseFunc != nil {
		s.TagCloseFunc(name)
	}
}

// Text implements Sink.
func (s SinkFuncs) Text(text string) {
	if s.TextFunc != nil {
		s.TextFunc(text)
	}
}

// Comment implements Sink.
func (s SinkFuncs) Comment(text string) {
	if s.CommentFunc != nil {
		s.CommentFunc(text)
	}
}

// Attribute implements Sink.
func (s SinkFuncs) Attribute(name, value string) {
	if s.AttributeFunc != nil {
		s.AttributeFunc(name, value)
	}
}
