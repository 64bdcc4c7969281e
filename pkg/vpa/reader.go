package vpa

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrOutOfBounds is returned when a read extends past the end of the buffer.
var ErrOutOfBounds = errors.New("read past end of buffer")

// Reader provides bounds-checked little-endian reads at absolute offsets over
// an immutable byte buffer. The VPA format stores pointers rather than a
// sequential stream, so every read is offset-addressed; there is no shared
// cursor between calls.
type Reader struct {
	data []byte
}

// NewReader wraps a byte buffer. The buffer is never modified.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the buffer length in bytes.
func (r *Reader) Len() int {
	return len(r.data)
}

// Bytes returns a view of width bytes at the given offset.
func (r *Reader) Bytes(offset, width int) ([]byte, error) {
	if err := r.check(offset, width); err != nil {
		return nil, err
	}
	return r.data[offset : offset+width], nil
}

// U8 reads an unsigned 8-bit integer at the given offset.
func (r *Reader) U8(offset int) (uint8, error) {
	if err := r.check(offset, 1); err != nil {
		return 0, err
	}
	return r.data[offset], nil
}

// U16 reads an unsigned little-endian 16-bit integer at the given offset.
func (r *Reader) U16(offset int) (uint16, error) {
	if err := r.check(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.data[offset:]), nil
}

// U32 reads an unsigned little-endian 32-bit integer at the given offset.
func (r *Reader) U32(offset int) (uint32, error) {
	if err := r.check(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.data[offset:]), nil
}

// I16 reads a signed little-endian 16-bit integer at the given offset.
func (r *Reader) I16(offset int) (int16, error) {
	v, err := r.U16(offset)
	return int16(v), err
}

// I32 reads a signed little-endian 32-bit integer at the given offset.
func (r *Reader) I32(offset int) (int32, error) {
	v, err := r.U32(offset)
	return int32(v), err
}

// F32 reads an IEEE-754 single-precision float at the given offset.
func (r *Reader) F32(offset int) (float32, error) {
	v, err := r.U32(offset)
	return math.Float32frombits(v), err
}

func (r *Reader) check(offset, width int) error {
	if offset < 0 || offset+width > len(r.data) {
		return fmt.Errorf("%w: %d bytes at offset 0x%X (buffer size %d)",
			ErrOutOfBounds, width, offset, len(r.data))
	}
	return nil
}

// Section reads a run of consecutive fields anchored at an absolute offset.
// The cursor is local to the Section, so concurrent decodes over the same
// Reader never interfere. The first failed read sticks; later reads return
// zero values and Err reports the failure.
type Section struct {
	r      *Reader
	offset int
	err    error
}

// Section starts a field run at the given absolute offset.
func (r *Reader) Section(offset int) *Section {
	return &Section{r: r, offset: offset}
}

// Skip advances past n bytes of padding without reading them.
func (s *Section) Skip(n int) {
	if s.err != nil {
		return
	}
	if err := s.r.check(s.offset, n); err != nil {
		s.err = err
		return
	}
	s.offset += n
}

// U16 reads the next unsigned 16-bit field.
func (s *Section) U16() uint16 {
	if s.err != nil {
		return 0
	}
	v, err := s.r.U16(s.offset)
	if err != nil {
		s.err = err
		return 0
	}
	s.offset += 2
	return v
}

// U32 reads the next unsigned 32-bit field.
func (s *Section) U32() uint32 {
	if s.err != nil {
		return 0
	}
	v, err := s.r.U32(s.offset)
	if err != nil {
		s.err = err
		return 0
	}
	s.offset += 4
	return v
}

// I16 reads the next signed 16-bit field.
func (s *Section) I16() int16 {
	return int16(s.U16())
}

// F32 reads the next single-precision float field.
func (s *Section) F32() float32 {
	return math.Float32frombits(s.U32())
}

// Err returns the first read failure, or nil if every field landed in bounds.
func (s *Section) Err() error {
	return s.err
}
