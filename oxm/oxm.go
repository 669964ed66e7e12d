package oxm

import (
	"fmt"

	"github.com/little-dude/ofpkt"
	"github.com/pkg/errors"
)

// Oxm is one TLV of any class. Exactly one of Basic, Registers and
// Experimenter is set.
type Oxm[E Experimenter[E]] struct {
	Basic        FlowMatchField
	Registers    *PacketRegisters
	Experimenter *E
}

func BasicOxm[E Experimenter[E]](f FlowMatchField) Oxm[E] {
	return Oxm[E]{Basic: f}
}

func RegistersOxm[E Experimenter[E]](r PacketRegisters) Oxm[E] {
	return Oxm[E]{Registers: &r}
}

func ExperimenterOxm[E Experimenter[E]](e E) Oxm[E] {
	return Oxm[E]{Experimenter: &e}
}

// ParseOxm decodes the TLV at the start of buf. Trailing bytes are ignored;
// BufferLen on the result tells how many were consumed.
func ParseOxm[E Experimenter[E]](buf []byte) (Oxm[E], error) {
	hdr, err := NewTLV(buf)
	if err != nil {
		return Oxm[E]{}, err
	}
	switch hdr.Class() {
	case OFPXMC_OPENFLOW_BASIC:
		f, err := ParseBasic(hdr)
		if err != nil {
			return Oxm[E]{}, err
		}
		return Oxm[E]{Basic: f}, nil
	case OFPXMC_PACKET_REGS:
		r, err := parseRegisters(hdr)
		if err != nil {
			return Oxm[E]{}, err
		}
		return Oxm[E]{Registers: &r}, nil
	case OFPXMC_EXPERIMENTER:
		var zero E
		e, err := zero.Parse(buf)
		if err != nil {
			return Oxm[E]{}, err
		}
		return Oxm[E]{Experimenter: &e}, nil
	case OFPXMC_NXM_0, OFPXMC_NXM_1:
		return Oxm[E]{}, errors.Wrapf(ofpkt.ErrUnsupportedOxmClass, "nxm class 0x%04x", hdr.Class())
	}
	return Oxm[E]{}, errors.Wrapf(ofpkt.ErrBadOxmClass, "class 0x%04x", hdr.Class())
}

func (self Oxm[E]) set() int {
	n := 0
	if self.Basic != nil {
		n++
	}
	if self.Registers != nil {
		n++
	}
	if self.Experimenter != nil {
		n++
	}
	return n
}

func (self Oxm[E]) BufferLen() int {
	switch {
	case self.Basic != nil:
		return self.Basic.BufferLen()
	case self.Registers != nil:
		return self.Registers.BufferLen()
	case self.Experimenter != nil:
		return (*self.Experimenter).BufferLen()
	}
	return 0
}

func (self Oxm[E]) Emit(buf []byte) error {
	if self.set() != 1 {
		return errors.Wrapf(ofpkt.ErrMalformed, "oxm with %d variants set", self.set())
	}
	switch {
	case self.Basic != nil:
		return self.Basic.Emit(buf)
	case self.Registers != nil:
		return self.Registers.Emit(buf)
	default:
		return (*self.Experimenter).Emit(buf)
	}
}

func (self Oxm[E]) String() string {
	switch {
	case self.Basic != nil:
		return self.Basic.String()
	case self.Registers != nil:
		return self.Registers.String()
	case self.Experimenter != nil:
		return fmt.Sprint(*self.Experimenter)
	}
	return "?"
}
