package render

import "testing"

func TestViewportSetLinesAlwaysScrollsToBottom(t *testing.T) {
	vp := NewViewport(10, 2)
	vp.SetLines([]string{"a", "b", "c"})
	vp.GotoTop()

	vp.SetLines([]string{"a", "b", "c", "d"})
	if !vp.AtBottom() {
		t.Fatalf("viewport should jump to bottom after content change")
	}
	if vp.YOffset != 2 {
		t.Fatalf("YOffset = %d, want 2", vp.YOffset)
	}
}

func TestViewportSetLinesEmptyIsNoop(t *testing.T) {
	vp := NewViewport(10, 2)
	vp.SetLines([]string{"a", "b", "c"})
	vp.SetLines([]string{})
	if vp.YOffset != 0 {
		t.Fatalf("empty content should reset offset, got %d", vp.YOffset)
	}
	if !vp.AtBottom() {
		t.Fatalf("empty content should count as bottom")
	}
}

func TestViewportPaging(t *testing.T) {
	vp := NewViewport(8, 2)
	vp.SetLines([]string{"a", "b", "c", "d", "e", "f"})

	vp.ScrollPageUp()
	if vp.AtBottom() {
		t.Fatalf("page up should leave the bottom")
	}
	vp.ScrollPageDown()
	if !vp.AtBottom() {
		t.Fatalf("page down should return to the bottom")
	}
}
