package ofp4

import (
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/oxm"
	"github.com/little-dude/ofpkt/view"
	"github.com/pkg/errors"
)

type Reason uint8

var reasonNames = map[Reason]string{
	OFPR_NO_MATCH:    "no_match",
	OFPR_ACTION:      "action",
	OFPR_INVALID_TTL: "invalid_ttl",
	OFPR_ACTION_SET:  "action_set",
	OFPR_GROUP:       "group",
	OFPR_PACKET_OUT:  "packet_out",
}

func (self Reason) String() string {
	if name, ok := reasonNames[self]; ok {
		return name
	}
	return fmt.Sprintf("reason%d", uint8(self))
}

const packetInHeadLen = 16

var (
	pinBufferID = view.Span(0, 4)
	pinTotalLen = view.Span(4, 2)
	pinReason   = 6
	pinTableID  = 7
	pinCookie   = view.Span(8, 8)
)

// PacketIn is the OFPT_PACKET_IN body.
//
//	buffer_id:32 | total_len:16 | reason:8 | table_id:8 | cookie:64
//	match (padded to 8) | pad:16 | frame
type PacketIn[E oxm.Experimenter[E]] struct {
	BufferID uint32
	TotalLen uint16
	Reason   Reason
	TableID  uint8
	Cookie   uint64
	Match    oxm.FlowMatch[E]
	Data     []byte
}

func ParsePacketIn[E oxm.Experimenter[E]](buf []byte) (PacketIn[E], error) {
	b, err := view.NewChecked(buf, packetInHeadLen)
	if err != nil {
		return PacketIn[E]{}, errors.Wrap(err, "packet_in")
	}
	match, err := oxm.ParseFlowMatch[E](buf[packetInHeadLen:])
	if err != nil {
		return PacketIn[E]{}, errors.Wrap(err, "packet_in")
	}
	matchLen := int(view.Bytes(buf[packetInHeadLen:]).Uint16(view.Span(2, 2)))
	frame := packetInHeadLen + view.Align8(matchLen) + 2
	if err := b.Check(frame); err != nil {
		return PacketIn[E]{}, errors.Wrap(err, "packet_in frame")
	}
	return PacketIn[E]{
		BufferID: b.Uint32(pinBufferID),
		TotalLen: b.Uint16(pinTotalLen),
		Reason:   Reason(b.Uint8(pinReason)),
		TableID:  b.Uint8(pinTableID),
		Cookie:   b.Uint64(pinCookie),
		Match:    match,
		Data:     append([]byte(nil), b.Slice(view.Rest(frame))...),
	}, nil
}

func (self PacketIn[E]) BufferLen() int {
	return packetInHeadLen + self.Match.BufferLen() + 2 + len(self.Data)
}

func (self PacketIn[E]) Emit(buf []byte) error {
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "packet_in")
	}
	b := view.New(buf)
	b.PutUint32(pinBufferID, self.BufferID)
	b.PutUint16(pinTotalLen, self.TotalLen)
	b.PutUint8(pinReason, uint8(self.Reason))
	b.PutUint8(pinTableID, self.TableID)
	b.PutUint64(pinCookie, self.Cookie)
	if err := self.Match.Emit(buf[packetInHeadLen:]); err != nil {
		return errors.Wrap(err, "packet_in")
	}
	off := packetInHeadLen + self.Match.BufferLen()
	b.Zero(view.Span(off, 2))
	b.Copy(view.Rest(off+2), self.Data)
	return nil
}

// Packet decodes Data. Frames are Ethernet unless the match carries a
// packet_type in the ethertype namespace, in which case Data starts at that
// protocol.
func (self PacketIn[E]) Packet() gopacket.Packet {
	var first gopacket.Decoder = layers.LayerTypeEthernet
	for _, f := range self.Match.Basic() {
		if pt, ok := f.(oxm.PacketType); ok {
			if v := pt.Value(); v>>16 == oxm.OFPHTN_ETHERTYPE {
				first = layers.EthernetType(uint16(v))
			}
		}
	}
	return gopacket.NewPacket(self.Data, first, gopacket.Default)
}

// Fields lists the basic fields of the match followed by those that can be
// read from the frame and are not already matched.
func (self PacketIn[E]) Fields() []oxm.FlowMatchField {
	ret := self.Match.Basic()
	seen := make(map[uint8]bool)
	for _, f := range ret {
		seen[f.Code()] = true
	}
	for _, f := range oxm.FrameFields(self.Packet()) {
		if !seen[f.Code()] {
			ret = append(ret, f)
		}
	}
	return ret
}

func (self PacketIn[E]) String() string {
	buffer := fmt.Sprint(self.BufferID)
	if self.BufferID == OFP_NO_BUFFER {
		buffer = "no_buffer"
	}
	return fmt.Sprintf("buffer_id=%s,total_len=%d,reason=%v,table_id=%d,cookie=0x%x,match=[%v],data_len=%d",
		buffer, self.TotalLen, self.Reason, self.TableID, self.Cookie, self.Match, len(self.Data))
}
