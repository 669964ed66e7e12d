// Package view provides bounds-checked accessors over wire buffers.
//
// Wire structures describe their layout as named Field ranges and read or
// write them through a Bytes view. A view built with NewChecked guarantees
// that every range below the checked minimum is addressable; Get and GetAt
// refuse ranges outside the buffer with ofpkt.ErrTruncated instead of
// reading past the end.
package view

import (
	"encoding/binary"
	"fmt"

	"github.com/little-dude/ofpkt"
	"github.com/pkg/errors"
)

// Field is the half-open byte range [Start, End). End < 0 means "to the end
// of the buffer".
type Field struct {
	Start int
	End   int
}

// Span returns the field [start, start+length).
func Span(start, length int) Field {
	return Field{start, start + length}
}

// Rest returns the field [start, len(buf)).
func Rest(start int) Field {
	return Field{start, -1}
}

func (self Field) end(size int) int {
	if self.End < 0 {
		return size
	}
	return self.End
}

// Len of a fixed field. Rest fields report 0.
func (self Field) Len() int {
	if self.End < 0 {
		return 0
	}
	return self.End - self.Start
}

func (self Field) String() string {
	if self.End < 0 {
		return fmt.Sprintf("[%d:]", self.Start)
	}
	return fmt.Sprintf("[%d:%d]", self.Start, self.End)
}

func Align8(num int) int {
	return (num + 7) / 8 * 8
}

// Padding is the range that extends a length-byte structure to 8-byte
// alignment.
func Padding(length int) Field {
	return Field{length, Align8(length)}
}

type Bytes []byte

// New wraps buf without validation. Accessors panic when used on ranges the
// caller has not validated.
func New(buf []byte) Bytes {
	return Bytes(buf)
}

// NewChecked wraps buf after making sure it holds at least min bytes.
func NewChecked(buf []byte, min int) (Bytes, error) {
	self := Bytes(buf)
	if err := self.Check(min); err != nil {
		return nil, err
	}
	return self, nil
}

func (self Bytes) Check(min int) error {
	if len(self) < min {
		return errors.Wrapf(ofpkt.ErrTruncated, "need %d bytes, have %d", min, len(self))
	}
	return nil
}

func (self Bytes) Contains(f Field) bool {
	end := f.end(len(self))
	return f.Start >= 0 && f.Start <= end && end <= len(self)
}

// Get is the checked form of Slice.
func (self Bytes) Get(f Field) ([]byte, error) {
	if !self.Contains(f) {
		return nil, errors.Wrapf(ofpkt.ErrTruncated, "field %v outside %d byte buffer", f, len(self))
	}
	return self.Slice(f), nil
}

// GetAt returns the byte at off, or ErrTruncated.
func (self Bytes) GetAt(off int) (uint8, error) {
	if off < 0 || off >= len(self) {
		return 0, errors.Wrapf(ofpkt.ErrTruncated, "offset %d outside %d byte buffer", off, len(self))
	}
	return self[off], nil
}

func (self Bytes) Slice(f Field) []byte {
	return self[f.Start:f.end(len(self))]
}

func (self Bytes) Uint8(off int) uint8 {
	return self[off]
}

func (self Bytes) Uint16(f Field) uint16 {
	return binary.BigEndian.Uint16(self.Slice(f))
}

func (self Bytes) Uint32(f Field) uint32 {
	return binary.BigEndian.Uint32(self.Slice(f))
}

func (self Bytes) Uint64(f Field) uint64 {
	return binary.BigEndian.Uint64(self.Slice(f))
}

// Uint reads a big-endian unsigned integer spanning the whole field, which
// may be any width from 1 to 8 bytes.
func (self Bytes) Uint(f Field) uint64 {
	var v uint64
	for _, b := range self.Slice(f) {
		v = v<<8 | uint64(b)
	}
	return v
}

func (self Bytes) PutUint8(off int, v uint8) {
	self[off] = v
}

func (self Bytes) PutUint16(f Field, v uint16) {
	binary.BigEndian.PutUint16(self.Slice(f), v)
}

func (self Bytes) PutUint32(f Field, v uint32) {
	binary.BigEndian.PutUint32(self.Slice(f), v)
}

func (self Bytes) PutUint64(f Field, v uint64) {
	binary.BigEndian.PutUint64(self.Slice(f), v)
}

// PutUint writes the low bytes of v big-endian across the whole field.
func (self Bytes) PutUint(f Field, v uint64) {
	buf := self.Slice(f)
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
}

func (self Bytes) Copy(f Field, src []byte) {
	copy(self.Slice(f), src)
}

func (self Bytes) Zero(f Field) {
	buf := self.Slice(f)
	for i := range buf {
		buf[i] = 0
	}
}
