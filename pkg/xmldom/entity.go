// Package xmldom materializes the event stream from xmlparse into a
// navigable in-memory document tree.
//
// A tree has exactly one Document root. Tags, attributes, and comments all
// hang off it as entities; attributes are ordinary children of their tag,
// distinguished by kind. Each entity records its position among its
// parent's children, so sibling navigation is index arithmetic rather than
// a scan.
//
// A completed tree is plain data with no goroutine affinity: share it
// read-only across goroutines, but do not mutate it concurrently.
package xmldom

// Kind classifies the type of an entity.
type Kind uint8

// Entity kinds. A kind is fixed when the entity is created.
const (
	// KindDocument is the tree root. Exactly one exists per tree.
	KindDocument Kind = iota

	// KindTag is an element with a name, optional text, and children.
	KindTag

	// KindAttribute is a name="value" pair on its parent tag.
	KindAttribute

	// KindComment is a comment body. Comments never have children.
	KindComment
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindTag:
		return "tag"
	case KindAttribute:
		return "attribute"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Entity is a single node in the document tree.
//
// The parent pointer is a non-owning back-reference; ownership runs strictly
// parent to child, so releasing the Document root releases the whole tree.
type Entity struct {
	kind Kind

	// name is set for tags (the element name) and attributes (the key).
	name string

	// value holds a tag's directly-owned text, an attribute's value, or a
	// comment's body.
	value string

	parent   *Entity
	children []*Entity

	// index is this entity's position in parent.children.
	index int
}

// NewDocument creates an empty tree: a root Document entity with no parent.
func NewDocument() *Entity {
	return &Entity{kind: KindDocument, index: -1}
}

// Kind returns the entity's kind.
func (e *Entity) Kind() Kind {
	return e.kind
}

// Name returns the tag or attribute name. Empty for documents and comments.
func (e *Entity) Name() string {
	return e.name
}

// SetName replaces the tag or attribute name.
func (e *Entity) SetName(name string) {
	e.name = name
}

// Value returns the entity's text: tag text, attribute value, or comment body.
func (e *Entity) Value() string {
	return e.value
}

// SetValue replaces the entity's text.
func (e *Entity) SetValue(value string) {
	e.value = value
}

// Parent returns the owning entity, or nil for the Document root.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Index returns the entity's position among its parent's children,
// or -1 for the root.
func (e *Entity) Index() int {
	return e.index
}

// ChildCount returns the number of direct children.
func (e *Entity) ChildCount() int {
	return len(e.children)
}

// Child returns the child at index i, or nil when i is out of range.
func (e *Entity) Child(i int) *Entity {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// Children returns a copy of the child list in document order. Mutating the
// returned slice does not affect the tree.
func (e *Entity) Children() []*Entity {
	if len(e.children) == 0 {
		return nil
	}
	out := make([]*Entity, len(e.children))
	copy(out, e.children)
	return out
}
