package xmldom

// WalkFunc is the callback signature for Walk. Returning a non-nil error
// stops the walk and propagates the error.
type WalkFunc func(e *Entity) error

// Walk performs a pre-order traversal of the subtree rooted at e.
func Walk(e *Entity, fn WalkFunc) error {
	if e == nil {
		return nil
	}
	if err := fn(e); err != nil {
		return err
	}
	for _, child := range e.children {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkWithDepth is like Walk but also reports each entity's depth below e.
func WalkWithDepth(e *Entity, fn func(e *Entity, depth int) error) error {
	return walkDepth(e, 0, fn)
}

func walkDepth(e *Entity, depth int, fn func(e *Entity, depth int) error) error {
	if e == nil {
		return nil
	}
	if err := fn(e, depth); err != nil {
		return err
	}
	for _, child := range e.children {
		if err := walkDepth(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkTags walks only tag entities in the subtree.
func WalkTags(e *Entity, fn WalkFunc) error {
	return Walk(e, func(ent *Entity) error {
		if ent.kind == KindTag {
			return fn(ent)
		}
		return nil
	})
}
