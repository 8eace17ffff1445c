package xmldom

import (
	"errors"
	"fmt"
)

// ErrInvalidAppendTarget is returned when appending a child to an entity
// kind that cannot own children (attributes and comments).
var ErrInvalidAppendTarget = errors.New("entity cannot own children")

// canAppend reports whether e may own children.
func (e *Entity) canAppend() bool {
	return e.kind == KindDocument || e.kind == KindTag
}

// appendChild wires child into e's child list, assigning its index.
func (e *Entity) appendChild(child *Entity) {
	child.parent = e
	child.index = len(e.children)
	e.children = append(e.children, child)
}

// AppendTag creates a new tag entity and appends it as e's last child.
// Fails on attribute and comment receivers; the tree is left untouched.
func (e *Entity) AppendTag(name string) (*Entity, error) {
	if !e.canAppend() {
		return nil, fmt.Errorf("append tag %q to %s: %w", name, e.kind, ErrInvalidAppendTarget)
	}
	tag := &Entity{kind: KindTag, name: name}
	e.appendChild(tag)
	return tag, nil
}

// AppendAttribute creates a new attribute entity and appends it as e's
// last child. Fails on attribute and comment receivers.
func (e *Entity) AppendAttribute(name, value string) (*Entity, error) {
	if !e.canAppend() {
		return nil, fmt.Errorf("append attribute %q to %s: %w", name, e.kind, ErrInvalidAppendTarget)
	}
	attr := &Entity{kind: KindAttribute, name: name, value: value}
	e.appendChild(attr)
	return attr, nil
}

// AppendComment creates a new comment entity and appends it as e's last
// child. Fails on attribute and comment receivers.
func (e *Entity) AppendComment(text string) (*Entity, error) {
	if !e.canAppend() {
		return nil, fmt.Errorf("append comment to %s: %w", e.kind, ErrInvalidAppendTarget)
	}
	comment := &Entity{kind: KindComment, value: text}
	e.appendChild(comment)
	return comment, nil
}
