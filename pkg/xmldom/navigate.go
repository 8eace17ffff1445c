package xmldom

// Navigation over the child list. The filtered lookups take a kind and an
// optional name; an empty name matches any entity of that kind. Sibling
// steps use the stored child index, so each step is O(1) plus however many
// non-matching siblings the filter skips.

// matches reports whether e satisfies a kind plus optional name filter.
func (e *Entity) matches(kind Kind, name string) bool {
	return e.kind == kind && (name == "" || e.name == name)
}

// FirstChild returns the first child of any kind, or nil.
func (e *Entity) FirstChild() *Entity {
	return e.Child(0)
}

// LastChild returns the last child of any kind, or nil.
func (e *Entity) LastChild() *Entity {
	return e.Child(len(e.children) - 1)
}

// FirstChildOf returns the first child matching kind (and name, when
// non-empty), or nil.
func (e *Entity) FirstChildOf(kind Kind, name string) *Entity {
	for child := e.FirstChild(); child != nil; child = child.NextSibling() {
		if child.matches(kind, name) {
			return child
		}
	}
	return nil
}

// FirstChildTag returns the first child tag named name ("" for any), or nil.
func (e *Entity) FirstChildTag(name string) *Entity {
	return e.FirstChildOf(KindTag, name)
}

// FirstChildAttribute returns the first child attribute named name
// ("" for any), or nil.
func (e *Entity) FirstChildAttribute(name string) *Entity {
	return e.FirstChildOf(KindAttribute, name)
}

// FirstChildComment returns the first child comment, or nil.
func (e *Entity) FirstChildComment() *Entity {
	return e.FirstChildOf(KindComment, "")
}

// NextSibling returns the following child of e's parent, or nil.
func (e *Entity) NextSibling() *Entity {
	if e.parent == nil {
		return nil
	}
	return e.parent.Child(e.index + 1)
}

// PrevSibling returns the preceding child of e's parent, or nil.
func (e *Entity) PrevSibling() *Entity {
	if e.parent == nil {
		return nil
	}
	return e.parent.Child(e.index - 1)
}

// NextSiblingOf returns the next sibling matching kind (and name, when
// non-empty), or nil.
func (e *Entity) NextSiblingOf(kind Kind, name string) *Entity {
	for sib := e.NextSibling(); sib != nil; sib = sib.NextSibling() {
		if sib.matches(kind, name) {
			return sib
		}
	}
	return nil
}

// PrevSiblingOf returns the previous sibling matching kind (and name, when
// non-empty), or nil.
func (e *Entity) PrevSiblingOf(kind Kind, name string) *Entity {
	for sib := e.PrevSibling(); sib != nil; sib = sib.PrevSibling() {
		if sib.matches(kind, name) {
			return sib
		}
	}
	return nil
}

// NextSiblingTag returns the next sibling tag named name ("" for any), or nil.
func (e *Entity) NextSiblingTag(name string) *Entity {
	return e.NextSiblingOf(KindTag, name)
}

// PrevSiblingTag returns the previous sibling tag named name ("" for any),
// or nil.
func (e *Entity) PrevSiblingTag(name string) *Entity {
	return e.PrevSiblingOf(KindTag, name)
}

// Attr returns the value of the named attribute child and whether it exists.
func (e *Entity) Attr(name string) (string, bool) {
	attr := e.FirstChildAttribute(name)
	if attr == nil {
		return "", false
	}
	return attr.value, true
}
