package value

import "fmt"

// Buffer is a cursor over a fixed-capacity byte slice. Writes that
// would exceed the capacity are cut short and flagged; the buffer
// never grows and never panics on overflow. Callers size buffers
// generously and accept silent truncation beyond that budget.
type Buffer struct {
	buf       []byte
	truncated bool
}

// NewBuffer creates a Buffer with the given capacity in bytes.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Remaining returns the unused capacity in bytes.
func (b *Buffer) Remaining() int { return cap(b.buf) - len(b.buf) }

// Truncated reports whether any write was cut short for lack of
// capacity.
func (b *Buffer) Truncated() bool { return b.truncated }

// PutByte appends a single byte, reporting whether it fit.
func (b *Buffer) PutByte(c byte) bool {
	if b.Remaining() < 1 {
		b.truncated = true
		return false
	}
	b.buf = append(b.buf, c)
	return true
}

// WriteString appends as much of s as fits and returns the number
// of bytes written.
func (b *Buffer) WriteString(s string) int {
	n := len(s)
	if r := b.Remaining(); n > r {
		n = r
		b.truncated = true
	}
	b.buf = append(b.buf, s[:n]...)
	return n
}

// Writef formats per fmt.Sprintf and appends as much of the result
// as fits, returning the number of bytes written.
func (b *Buffer) Writef(format string, args ...any) int {
	return b.WriteString(fmt.Sprintf(format, args...))
}

// String returns the bytes written so far.
func (b *Buffer) String() string { return string(b.buf) }
