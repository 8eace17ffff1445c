package xmldom

// Builder is an xmlparse.Sink that materializes the event stream into an
// entity tree. It keeps an explicit open-element stack seeded with a fresh
// Document root; the stack is independent of the parser's own recursion so
// either side can be swapped without touching the other.
type Builder struct {
	root  *Entity
	stack []*Entity
}

// NewBuilder creates a builder with an empty document as its root.
func NewBuilder() *Builder {
	root := NewDocument()
	return &Builder{
		root:  root,
		stack: []*Entity{root},
	}
}

// Root returns the Document root. After a successful parse the stack has
// unwound back to the root and the whole tree is owned by the caller.
func (b *Builder) Root() *Entity {
	return b.root
}

// top returns the innermost open entity.
func (b *Builder) top() *Entity {
	return b.stack[len(b.stack)-1]
}

// TagOpen appends a new tag to the current top and pushes it.
func (b *Builder) TagOpen(name string) {
	tag := &Entity{kind: KindTag, name: name}
	b.top().appendChild(tag)
	b.stack = append(b.stack, tag)
}

// TagClose pops the open-element stack. Name agreement was already
// enforced by the parser's closing-tag check, so no identity check is
// repeated here. The root is never popped.
func (b *Builder) TagClose(string) {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// Text sets the text of the innermost open tag.
func (b *Builder) Text(text string) {
	b.top().value = text
}

// Comment appends a comment entity to the innermost open tag.
func (b *Builder) Comment(text string) {
	b.top().appendChild(&Entity{kind: KindComment, value: text})
}

// Attribute appends an attribute entity to the innermost open tag.
func (b *Builder) Attribute(name, value string) {
	b.top().appendChild(&Entity{kind: KindAttribute, name: name, value: value})
}
