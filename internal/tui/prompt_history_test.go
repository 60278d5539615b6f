package tui

import "testing"

func TestPromptHistoryPrevNext(t *testing.T) {
	var h promptHistory
	if _, ok := h.Prev("draft"); ok {
		t.Fatalf("empty history should not recall")
	}

	h.Add("help")
	h.Add("help")
	h.Add(" about ")
	h.Add("   ")
	if len(h.entries) != 2 {
		t.Fatalf("entries = %v, want [help about]", h.entries)
	}

	if got, _ := h.Prev("typing"); got != "about" {
		t.Fatalf("Prev = %q, want about", got)
	}
	if got, _ := h.Prev(""); got != "help" {
		t.Fatalf("Prev = %q, want help", got)
	}
	if got, _ := h.Prev(""); got != "help" {
		t.Fatalf("Prev at oldest = %q, want help", got)
	}
	if got, _ := h.Next(); got != "about" {
		t.Fatalf("Next = %q, want about", got)
	}
	if got, _ := h.Next(); got != "typing" {
		t.Fatalf("Next past newest = %q, want draft", got)
	}
	if _, ok := h.Next(); ok {
		t.Fatalf("Next when not browsing should report false")
	}
}
