package terminal

import "testing"

func TestBufferAppendPreservesOrder(t *testing.T) {
	buf := NewBuffer()
	buf.Append(Plain("one"))
	buf.Append(Plain("two"))

	lines := buf.Lines()
	if len(lines) != 2 || lines[0].String() != "one" || lines[1].String() != "two" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestBufferLinesIsACopy(t *testing.T) {
	buf := NewBuffer(Plain("one"))
	lines := buf.Lines()
	lines[0] = Plain("changed")
	if got := buf.Lines()[0].String(); got != "one" {
		t.Fatalf("buffer mutated through copy: %q", got)
	}
}

func TestBufferHooksSeePostMutationState(t *testing.T) {
	buf := NewBuffer()
	var seen []int
	buf.OnChange(func() { seen = append(seen, buf.Len()) })

	buf.Append(Plain("a"))
	buf.Append(Plain("b"))
	buf.Clear()
	buf.Clear()

	want := []int{1, 2, 0, 0}
	if len(seen) != len(want) {
		t.Fatalf("hook calls = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("hook calls = %v, want %v", seen, want)
		}
	}
}

func TestNilBufferIsSafe(t *testing.T) {
	var buf *Buffer
	buf.Append(Plain("x"))
	buf.Clear()
	buf.OnChange(func() {})
	if buf.Len() != 0 || buf.Lines() != nil {
		t.Fatalf("nil buffer should behave as empty")
	}
}
