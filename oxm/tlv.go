package oxm

import (
	"fmt"

	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/view"
	"github.com/pkg/errors"
)

const TLVHeaderLen = 4

var (
	tlvClass  = view.Span(0, 2)
	tlvField  = 2
	tlvLength = 3
)

// TLV is a view over an OXM TLV: a 4-byte header followed by Length()
// bytes of payload.
//
//	class:16 | field:7 | hasmask:1 | length:8 | payload
type TLV []byte

// NewTLV checks that buf holds at least a header. The payload is not
// checked; see CheckLen.
func NewTLV(buf []byte) (TLV, error) {
	if _, err := view.NewChecked(buf, TLVHeaderLen); err != nil {
		return nil, errors.Wrap(err, "oxm header")
	}
	return TLV(buf), nil
}

func (self TLV) Class() uint16 {
	return view.Bytes(self).Uint16(tlvClass)
}

func (self TLV) SetClass(class uint16) {
	view.Bytes(self).PutUint16(tlvClass, class)
}

func (self TLV) Field() uint8 {
	return self[tlvField] >> 1
}

// SetField keeps the has-mask bit.
func (self TLV) SetField(field uint8) {
	self[tlvField] = field<<1 | self[tlvField]&1
}

func (self TLV) HasMask() bool {
	return self[tlvField]&1 != 0
}

func (self TLV) SetMask(mask bool) {
	if mask {
		self[tlvField] |= 1
	} else {
		self[tlvField] &^= 1
	}
}

// Length is the payload length, header excluded.
func (self TLV) Length() int {
	return int(self[tlvLength])
}

func (self TLV) SetLength(length int) {
	self[tlvLength] = uint8(length)
}

// CheckLen reports ErrTruncated when the buffer is shorter than the header
// plus the declared payload.
func (self TLV) CheckLen() error {
	if need := TLVHeaderLen + self.Length(); len(self) < need {
		return errors.Wrapf(ofpkt.ErrTruncated, "oxm %04x:%d declares %d bytes, have %d",
			self.Class(), self.Field(), need, len(self))
	}
	return nil
}

// Value is the payload. Call CheckLen first.
func (self TLV) Value() []byte {
	return self[TLVHeaderLen : TLVHeaderLen+self.Length()]
}

func (self TLV) String() string {
	mask := ""
	if self.HasMask() {
		mask = "/m"
	}
	return fmt.Sprintf("oxm(%04x:%d%s len=%d)", self.Class(), self.Field(), mask, self.Length())
}

func writeHeader(buf []byte, class uint16, field uint8, mask bool, length int) {
	hdr := TLV(buf)
	hdr.SetClass(class)
	hdr[tlvField] = 0
	hdr.SetField(field)
	hdr.SetMask(mask)
	hdr.SetLength(length)
}
