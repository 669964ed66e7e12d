package oxm

import (
	"encoding/hex"
	"fmt"

	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/view"
	"github.com/pkg/errors"
)

// Experimenter is the payload type of OFPXMC_EXPERIMENTER TLVs. Parse is
// called on the zero value with the whole remaining buffer, starting at the
// TLV header, and must not keep a reference to it.
type Experimenter[E any] interface {
	Parse(buf []byte) (E, error)
	BufferLen() int
	Emit(buf []byte) error
}

// ExperimenterStringer renders the body of an experimenter TLV for a given
// experimenter id.
type ExperimenterStringer interface {
	FromOpaque(Opaque) string
}

var stringers = map[uint32]ExperimenterStringer{}

// RegisterStringer installs the text form used by Opaque.String for one
// experimenter id. It is meant to be called from init functions.
func RegisterStringer(experimenter uint32, s ExperimenterStringer) {
	stringers[experimenter] = s
}

// Opaque keeps an experimenter TLV as raw bytes.
//
//	class=0xffff | field:7 | hasmask:1 | length:8 | experimenter:32 | body
type Opaque struct {
	Experimenter uint32
	Field        uint8
	HasMask      bool
	Body         []byte
}

const expHeaderLen = TLVHeaderLen + 4

var expID = view.Span(TLVHeaderLen, 4)

func (self Opaque) Parse(buf []byte) (Opaque, error) {
	hdr, err := NewTLV(buf)
	if err != nil {
		return Opaque{}, err
	}
	if hdr.Class() != OFPXMC_EXPERIMENTER {
		return Opaque{}, errors.Wrapf(ofpkt.ErrBadOxmClass, "class 0x%04x is not experimenter", hdr.Class())
	}
	if hdr.Length() < 4 {
		return Opaque{}, errors.Wrapf(ofpkt.ErrMalformed, "experimenter oxm length %d", hdr.Length())
	}
	if err := hdr.CheckLen(); err != nil {
		return Opaque{}, err
	}
	b := view.New(buf)
	return Opaque{
		Experimenter: b.Uint32(expID),
		Field:        hdr.Field(),
		HasMask:      hdr.HasMask(),
		Body:         append([]byte(nil), b.Slice(view.Span(expHeaderLen, hdr.Length()-4))...),
	}, nil
}

func (self Opaque) BufferLen() int {
	return expHeaderLen + len(self.Body)
}

func (self Opaque) Emit(buf []byte) error {
	if self.Field > 0x7f || 4+len(self.Body) > 0xff {
		return errors.Wrapf(ofpkt.ErrMalformed, "experimenter field %d with %d byte body", self.Field, len(self.Body))
	}
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "experimenter oxm")
	}
	writeHeader(buf, OFPXMC_EXPERIMENTER, self.Field, self.HasMask, 4+len(self.Body))
	b := view.New(buf)
	b.PutUint32(expID, self.Experimenter)
	b.Copy(view.Span(expHeaderLen, len(self.Body)), self.Body)
	return nil
}

func (self Opaque) String() string {
	if s, ok := stringers[self.Experimenter]; ok {
		return s.FromOpaque(self)
	}
	mask := ""
	if self.HasMask {
		mask = "/m"
	}
	return fmt.Sprintf("experimenter(0x%08x:%d%s)=%s", self.Experimenter, self.Field, mask,
		hex.EncodeToString(self.Body))
}

// NoExperimenter refuses experimenter TLVs.
type NoExperimenter struct{}

func (self NoExperimenter) Parse(buf []byte) (NoExperimenter, error) {
	return NoExperimenter{}, errors.Wrap(ofpkt.ErrUnsupportedOxmClass, "experimenter oxm")
}

func (self NoExperimenter) BufferLen() int {
	return 0
}

func (self NoExperimenter) Emit(buf []byte) error {
	return errors.Wrap(ofpkt.ErrMalformed, "experimenter oxm without an experimenter")
}
