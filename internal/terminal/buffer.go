package terminal

// Buffer holds the ordered output lines of one terminal session. Every mutation
// runs the registered change hooks synchronously, after the mutation is applied.
type Buffer struct {
	lines []Line
	hooks []func()
}

// NewBuffer creates a buffer seeded with the given lines.
func NewBuffer(initial ...Line) *Buffer {
	return &Buffer{lines: append([]Line(nil), initial...)}
}

// Append adds line at the end.
func (b *Buffer) Append(line Line) {
	if b == nil {
		return
	}
	b.lines = append(b.lines, line)
	b.changed()
}

// Clear drops every line.
func (b *Buffer) Clear() {
	if b == nil {
		return
	}
	b.lines = nil
	b.changed()
}

// Lines returns a copy of the buffered lines in display order.
func (b *Buffer) Lines() []Line {
	if b == nil {
		return nil
	}
	return append([]Line(nil), b.lines...)
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.lines)
}

// OnChange registers fn to run after every Append or Clear.
func (b *Buffer) OnChange(fn func()) {
	if b == nil || fn == nil {
		return
	}
	b.hooks = append(b.hooks, fn)
}

func (b *Buffer) changed() {
	for _, fn := range b.hooks {
		fn()
	}
}
