package oxm

import (
	"fmt"

	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/view"
	"github.com/pkg/errors"
)

// PacketRegisters is an OFPXMC_PACKET_REGS field: a 64-bit pipeline
// register with an optional mask.
type PacketRegisters struct {
	Field uint8 // 7 bits
	Value uint64
	Mask  *uint64
}

var (
	regValue = view.Span(0, 8)
	regMask  = view.Span(8, 8)
)

func (self PacketRegisters) ValueLen() int {
	if self.Mask != nil {
		return 16
	}
	return 8
}

func (self PacketRegisters) BufferLen() int {
	return TLVHeaderLen + self.ValueLen()
}

func (self PacketRegisters) Emit(buf []byte) error {
	if self.Field > 0x7f {
		return errors.Wrapf(ofpkt.ErrMalformed, "register field %d out of range", self.Field)
	}
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "packet register")
	}
	writeHeader(buf, OFPXMC_PACKET_REGS, self.Field, self.Mask != nil, self.ValueLen())
	p := view.New(buf[TLVHeaderLen:self.BufferLen()])
	p.PutUint64(regValue, self.Value)
	if self.Mask != nil {
		p.PutUint64(regMask, *self.Mask)
	}
	return nil
}

func (self PacketRegisters) String() string {
	if self.Mask != nil {
		return fmt.Sprintf("reg%d=0x%x/0x%x", self.Field, self.Value, *self.Mask)
	}
	return fmt.Sprintf("reg%d=0x%x", self.Field, self.Value)
}

func parseRegisters(hdr TLV) (PacketRegisters, error) {
	switch {
	case hdr.Length() == 8 && !hdr.HasMask():
	case hdr.Length() == 16 && hdr.HasMask():
	default:
		return PacketRegisters{}, errors.Wrapf(ofpkt.ErrMalformed,
			"packet register length %d with mask=%v", hdr.Length(), hdr.HasMask())
	}
	if err := hdr.CheckLen(); err != nil {
		return PacketRegisters{}, err
	}
	p := view.New(hdr.Value())
	reg := PacketRegisters{
		Field: hdr.Field(),
		Value: p.Uint64(regValue),
	}
	if hdr.HasMask() {
		mask := p.Uint64(regMask)
		reg.Mask = &mask
	}
	return reg, nil
}
