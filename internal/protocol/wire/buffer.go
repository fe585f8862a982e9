package wire

// DefaultCapacity is the backing size of a freshly allocated buffer.
const DefaultCapacity = 64

// Buffer is a growable byte buffer with a shared read/write cursor.
//
// offset is the next byte to read or write; limit is the end of valid data.
// Writers extend limit as they go, readers stop at it.
type Buffer struct {
	buf    []byte
	offset int
	limit  int
}

// NewBuffer allocates an empty buffer with the given backing capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{buf: make([]byte, capacity)}
}

// Wrap returns a read buffer over b. The buffer does not copy b.
func Wrap(b []byte) *Buffer {
	return &Buffer{buf: b, limit: len(b)}
}

// Reset rewinds offset and limit without releasing storage.
func (b *Buffer) Reset() {
	b.offset = 0
	b.limit = 0
}

func (b *Buffer) Offset() int { return b.offset }

func (b *Buffer) Limit() int { return b.limit }

// Cap reports the size of the backing storage.
func (b *Buffer) Cap() int { return len(b.buf) }

// Len reports the number of valid bytes written so far.
func (b *Buffer) Len() int { return b.limit }

// Remaining reports the number of unread bytes before limit.
func (b *Buffer) Remaining() int { return b.limit - b.offset }

// EOF reports whether the read cursor reached limit.
func (b *Buffer) EOF() bool { return b.offset >= b.limit }

// Bytes returns a view of bytes[0:limit]. The view aliases the buffer and
// is only valid until the buffer is written again or released.
func (b *Buffer) Bytes() []byte {
	if len(b.buf) == b.limit {
		return b.buf
	}
	return b.buf[:b.limit]
}

// grow reserves n bytes at offset, advances offset past them and returns
// the start position of the reserved span.
func (b *Buffer) grow(n int) int {
	start := b.offset
	end := start + n
	if end > len(b.buf) {
		next := make([]byte, 2*end)
		copy(next, b.buf[:b.limit])
		b.buf = next
	}
	b.offset = end
	if end > b.limit {
		b.limit = end
	}
	return start
}

// advance consumes n bytes for reading and returns their start position.
func (b *Buffer) advance(n int) (int, error) {
	if n < 0 {
		return 0, ErrInvalidLength
	}
	start := b.offset
	if n > b.limit-start {
		return 0, ErrTruncated
	}
	b.offset = start + n
	return start, nil
}

// PushLimit clamps limit to offset+n and returns the previous limit, which
// must be handed back to PopLimit once the nested span is consumed.
func (b *Buffer) PushLimit(n int) (int, error) {
	if n < 0 {
		return 0, ErrInvalidLength
	}
	if n > b.limit-b.offset {
		return 0, ErrTruncated
	}
	prev := b.limit
	b.limit = b.offset + n
	return prev, nil
}

// PopLimit restores a limit saved by PushLimit.
func (b *Buffer) PopLimit(prev int) {
	b.limit = prev
}

// WriteRaw appends p verbatim.
func (b *Buffer) WriteRaw(p []byte) {
	start := b.grow(len(p))
	copy(b.buf[start:], p)
}

// ReadRaw consumes n bytes and returns a view of them.
func (b *Buffer) ReadRaw(n int) ([]byte, error) {
	start, err := b.advance(n)
	if err != nil {
		return nil, err
	}
	return b.buf[start : start+n : start+n], nil
}

// WriteByte appends one byte. It never fails.
func (b *Buffer) WriteByte(c byte) error {
	start := b.grow(1)
	b.buf[start] = c
	return nil
}

// ReadByte consumes one byte.
func (b *Buffer) ReadByte() (byte, error) {
	start, err := b.advance(1)
	if err != nil {
		return 0, err
	}
	return b.buf[start], nil
}
