package ephtile

import "encoding/binary"

// Buffer is a bounds-checked little-endian read cursor over a borrowed
// byte slice. Every read either advances the cursor or fails with
// ErrTruncated, leaving the position unchanged.
type Buffer struct {
	p   []byte
	off int
}

// NewBuffer wraps p. The buffer borrows p and never copies it.
func NewBuffer(p []byte) *Buffer { return &Buffer{p: p} }

// Offset returns the current cursor position.
func (b *Buffer) Offset() int { return b.off }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return len(b.p) - b.off }

// Next consumes and returns the next n bytes. The returned slice is a
// view into the underlying buffer, valid as long as the buffer is.
func (b *Buffer) Next(n int) ([]byte, error) {
	if n < 0 || n > b.Remaining() {
		return nil, ErrTruncated
	}
	p := b.p[b.off : b.off+n]
	b.off += n
	return p, nil
}

// Skip advances the cursor by n bytes.
func (b *Buffer) Skip(n int) error {
	_, err := b.Next(n)
	return err
}

// Uint32 consumes a little-endian uint32.
func (b *Buffer) Uint32() (uint32, error) {
	p, err := b.Next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// Int32 consumes a little-endian int32.
func (b *Buffer) Int32() (int32, error) {
	u, err := b.Uint32()
	return int32(u), err
}

// Uint64 consumes a little-endian uint64.
func (b *Buffer) Uint64() (uint64, error) {
	p, err := b.Next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(p), nil
}
