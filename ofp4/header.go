package ofp4

import (
	"fmt"

	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/view"
	"github.com/pkg/errors"
)

const HeaderLen = 8

var (
	hdrVersion = 0
	hdrType    = 1
	hdrLength  = view.Span(2, 2)
	hdrXid     = view.Span(4, 4)
)

// Header is a view over an ofp_header and the message that follows it.
type Header []byte

// NewHeader checks that buf holds the whole message the header declares.
func NewHeader(buf []byte) (Header, error) {
	b, err := view.NewChecked(buf, HeaderLen)
	if err != nil {
		return nil, errors.Wrap(err, "ofp header")
	}
	length := int(b.Uint16(hdrLength))
	if length < HeaderLen {
		return nil, errors.Wrapf(ofpkt.ErrMalformed, "message length %d", length)
	}
	if err := b.Check(length); err != nil {
		return nil, errors.Wrapf(err, "%s message", TypeName(buf[hdrType]))
	}
	return Header(buf[:length]), nil
}

func (self Header) Version() uint8 {
	return self[hdrVersion]
}

func (self Header) Type() uint8 {
	return self[hdrType]
}

func (self Header) Length() int {
	return int(view.Bytes(self).Uint16(hdrLength))
}

func (self Header) Xid() uint32 {
	return view.Bytes(self).Uint32(hdrXid)
}

func (self Header) SetVersion(version uint8) {
	self[hdrVersion] = version
}

func (self Header) SetType(ofpt uint8) {
	self[hdrType] = ofpt
}

func (self Header) SetLength(length int) {
	view.Bytes(self).PutUint16(hdrLength, uint16(length))
}

func (self Header) SetXid(xid uint32) {
	view.Bytes(self).PutUint32(hdrXid, xid)
}

// Body is the message payload after the header.
func (self Header) Body() []byte {
	return self[HeaderLen:self.Length()]
}

func (self Header) String() string {
	return fmt.Sprintf("%s(v%d xid=%d len=%d)", TypeName(self.Type()), self.Version(), self.Xid(), self.Length())
}

// Iter splits a stream of back to back messages. A trailing partial message
// is returned as rest.
func Iter(buf []byte) (msgs []Header, rest []byte, err error) {
	for len(buf) >= HeaderLen {
		msg, err := NewHeader(buf)
		if ofpkt.IsTruncated(err) {
			break
		} else if err != nil {
			return msgs, buf, err
		}
		msgs = append(msgs, msg)
		buf = buf[msg.Length():]
	}
	return msgs, buf, nil
}
