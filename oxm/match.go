package oxm

import (
	"strings"

	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/view"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var logger = logging.MustGetLogger("oxm")

const MatchHeaderLen = 4

var (
	matchType   = view.Span(0, 2)
	matchLength = view.Span(2, 2)
)

// FlowMatch is an ofp_match of type OFPMT_OXM.
//
//	type:16 | length:16 | oxm fields | zero padding to 8 bytes
//
// length counts the header and the fields but not the padding. Order and
// duplicates are kept as on the wire.
type FlowMatch[E Experimenter[E]] []Oxm[E]

func ParseFlowMatch[E Experimenter[E]](buf []byte) (FlowMatch[E], error) {
	b, err := view.NewChecked(buf, MatchHeaderLen)
	if err != nil {
		return nil, errors.Wrap(err, "match header")
	}
	length := int(b.Uint16(matchLength))
	if err := b.Check(view.Align8(length)); err != nil {
		return nil, errors.Wrap(err, "match")
	}
	if length < MatchHeaderLen {
		return nil, errors.Wrapf(ofpkt.ErrMalformed, "match length %d", length)
	}
	if t := b.Uint16(matchType); t != OFPMT_OXM {
		return nil, errors.Wrapf(ofpkt.ErrBadMatchType, "match type %d", t)
	}

	ret := FlowMatch[E]{}
	off := MatchHeaderLen
	for length-off >= TLVHeaderLen {
		o, err := ParseOxm[E](buf[off:length])
		if err != nil {
			return nil, errors.Wrapf(err, "match offset %d", off)
		}
		n := o.BufferLen()
		if n <= 0 {
			return nil, errors.Wrapf(ofpkt.ErrMalformed, "match offset %d: empty oxm", off)
		}
		ret = append(ret, o)
		off += n
	}
	if rest := length - off; rest > 0 {
		logger.Debugf("match: ignoring %d trailing bytes at offset %d", rest, off)
	}
	return ret, nil
}

func (self FlowMatch[E]) fieldsLen() int {
	n := 0
	for _, o := range self {
		n += o.BufferLen()
	}
	return n
}

// Length is the value of the length header field.
func (self FlowMatch[E]) Length() int {
	return MatchHeaderLen + self.fieldsLen()
}

func (self FlowMatch[E]) BufferLen() int {
	return view.Align8(self.Length())
}

func (self FlowMatch[E]) Emit(buf []byte) error {
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "match")
	}
	length := self.Length()
	if length > 0xffff {
		return errors.Wrapf(ofpkt.ErrMalformed, "match length %d", length)
	}
	b := view.New(buf)
	b.PutUint16(matchType, OFPMT_OXM)
	b.PutUint16(matchLength, uint16(length))
	off := MatchHeaderLen
	for _, o := range self {
		if err := o.Emit(buf[off:length]); err != nil {
			return err
		}
		off += o.BufferLen()
	}
	b.Zero(view.Padding(length))
	return nil
}

func (self FlowMatch[E]) MarshalBinary() ([]byte, error) {
	return ofpkt.Marshal(self)
}

// Basic returns the basic class fields, in order.
func (self FlowMatch[E]) Basic() []FlowMatchField {
	var ret []FlowMatchField
	for _, o := range self {
		if o.Basic != nil {
			ret = append(ret, o.Basic)
		}
	}
	return ret
}

func (self FlowMatch[E]) String() string {
	var ret []string
	for _, o := range self {
		ret = append(ret, o.String())
	}
	return strings.Join(ret, ",")
}

// NewFlowMatch wraps basic fields.
func NewFlowMatch[E Experimenter[E]](fields ...FlowMatchField) FlowMatch[E] {
	ret := make(FlowMatch[E], 0, len(fields))
	for _, f := range fields {
		ret = append(ret, Oxm[E]{Basic: f})
	}
	return ret
}
