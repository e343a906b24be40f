package decfmt

// Buffer is a fixed-capacity text buffer for formatted numbers.
// Every call to Format fully replaces the previous content.
// Buffer is not safe for concurrent use.
type Buffer struct {
	fm        Formatter
	data      []byte
	capacity  int
	truncated bool
}

// NewBuffer returns a buffer of 'capacity' bytes, including the terminating byte.
func NewBuffer(capacity int, fm Formatter) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		fm:       fm,
		data:     make([]byte, 0, capacity),
		capacity: capacity,
	}
}

// Format renders f into the buffer. It returns true, if the text was truncated.
func (b *Buffer) Format(f float64) bool {
	b.data = b.fm.Append(b.data[:0], f)
	limit := b.capacity - 1
	if limit < 0 {
		limit = 0
	}
	b.truncated = len(b.data) > limit
	if b.truncated {
		b.data = b.data[:limit]
	}
	return b.truncated
}

// Bytes returns the buffer content. The slice is valid until the next call to Format.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return string(b.data)
}

// Len returns the length of the content.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the capacity of the buffer, including the terminating byte.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Truncated returns true, if the last formatted number did not fit the buffer.
func (b *Buffer) Truncated() bool {
	return b.truncated
}
