package xmldom

import (
	"errors"
	"testing"
)

func TestWalkWithDepth(t *testing.T) {
	doc := mustParse(t, `<a><b><c /></b><!-- note --></a>`)

	depths := map[string]int{}
	err := WalkWithDepth(doc, func(e *Entity, depth int) error {
		if e.Kind() == KindTag {
			depths[e.Name()] = depth
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkWithDepth error = %v", err)
	}

	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for name, depth := range want {
		if depths[name] != depth {
			t.Errorf("depth[%s] = %d, want %d", name, depths[name], depth)
		}
	}
}

func TestWalkWithDepthStopsOnError(t *testing.T) {
	doc := mustParse(t, `<a><b /><c /></a>`)

	stop := errors.New("stop")
	var visited int
	err := WalkWithDepth(doc, func(e *Entity, _ int) error {
		visited++
		if e.Name() == "b" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("error = %v, want stop sentinel", err)
	}
	// document, a, b; c is never reached.
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
}

func TestWalkTagsSkipsNonTags(t *testing.T) {
	doc := mustParse(t, `<a id="1"><!-- x --><b>text</b></a>`)

	var tags int
	if err := WalkTags(doc, func(*Entity) error {
		tags++
		return nil
	}); err != nil {
		t.Fatalf("WalkTags error = %v", err)
	}
	if tags != 2 {
		t.Errorf("tags = %d, want 2", tags)
	}
}
