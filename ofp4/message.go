package ofp4

import (
	"fmt"

	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/oxm"
	"github.com/little-dude/ofpkt/view"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var logger = logging.MustGetLogger("ofp4")

// Message is a decoded OpenFlow message. Body is one of Hello, Echo, Empty,
// ErrorMsg, SwitchFeatures, SwitchConfig or PacketIn[E].
type Message[E oxm.Experimenter[E]] struct {
	Version uint8
	Type    uint8
	Xid     uint32
	Body    ofpkt.Repr
}

// ParseMessage decodes the first message of buf. Hello is accepted for any
// version so that version negotiation can happen; other messages must be
// OFP_VERSION.
func ParseMessage[E oxm.Experimenter[E]](buf []byte) (Message[E], error) {
	hdr, err := NewHeader(buf)
	if err != nil {
		return Message[E]{}, err
	}
	ret := Message[E]{
		Version: hdr.Version(),
		Type:    hdr.Type(),
		Xid:     hdr.Xid(),
	}
	if ret.Type != OFPT_HELLO && ret.Version != OFP_VERSION {
		logger.Debugf("skipping %v", hdr)
		return ret, errors.Wrapf(ofpkt.ErrUnrecognized, "version %d", ret.Version)
	}

	body := hdr.Body()
	switch ret.Type {
	case OFPT_HELLO:
		ret.Body, err = ParseHello(body)
	case OFPT_ERROR:
		ret.Body, err = ParseErrorMsg(body)
	case OFPT_ECHO_REQUEST, OFPT_ECHO_REPLY:
		ret.Body = Echo(append([]byte(nil), body...))
	case OFPT_FEATURES_REQUEST, OFPT_GET_CONFIG_REQUEST, OFPT_BARRIER_REQUEST, OFPT_BARRIER_REPLY:
		ret.Body = Empty{}
	case OFPT_FEATURES_REPLY:
		ret.Body, err = ParseSwitchFeatures(body)
	case OFPT_GET_CONFIG_REPLY, OFPT_SET_CONFIG:
		ret.Body, err = ParseSwitchConfig(body)
	case OFPT_PACKET_IN:
		ret.Body, err = ParsePacketIn[E](body)
	default:
		logger.Debugf("skipping %v", hdr)
		return ret, errors.Wrapf(ofpkt.ErrUnrecognized, "%s message", TypeName(ret.Type))
	}
	if err != nil {
		return Message[E]{}, errors.Wrapf(err, "%s message", TypeName(ret.Type))
	}
	return ret, nil
}

func (self Message[E]) bodyLen() int {
	if self.Body == nil {
		return 0
	}
	return self.Body.BufferLen()
}

func (self Message[E]) BufferLen() int {
	return HeaderLen + self.bodyLen()
}

func (self Message[E]) Emit(buf []byte) error {
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrapf(err, "%s message", TypeName(self.Type))
	}
	length := self.BufferLen()
	if length > 0xffff {
		return errors.Wrapf(ofpkt.ErrMalformed, "message length %d", length)
	}
	hdr := Header(buf)
	hdr.SetVersion(self.Version)
	hdr.SetType(self.Type)
	hdr.SetLength(length)
	hdr.SetXid(self.Xid)
	if self.Body == nil {
		return nil
	}
	return self.Body.Emit(view.Bytes(buf).Slice(view.Span(HeaderLen, self.bodyLen())))
}

func (self Message[E]) MarshalBinary() ([]byte, error) {
	return ofpkt.Marshal(self)
}

func (self Message[E]) String() string {
	return fmt.Sprintf("%s(xid=%d) %v", TypeName(self.Type), self.Xid, self.Body)
}
