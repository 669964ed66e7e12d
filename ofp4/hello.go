package ofp4

import (
	"fmt"
	"strings"

	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/view"
	"github.com/pkg/errors"
)

var (
	elemType   = view.Span(0, 2)
	elemLength = view.Span(2, 2)
)

// HelloElement is one ofp_hello_elem. Data is the payload after the 4-byte
// element header, without padding.
type HelloElement struct {
	Type uint16
	Data []byte
}

// VersionBitmap builds an OFPHET_VERSIONBITMAP element.
func VersionBitmap(versions ...uint8) HelloElement {
	var words []uint32
	for _, v := range versions {
		for int(v/32) >= len(words) {
			words = append(words, 0)
		}
		words[v/32] |= 1 << (v % 32)
	}
	data := make([]byte, 4*len(words))
	b := view.New(data)
	for i, w := range words {
		b.PutUint32(view.Span(4*i, 4), w)
	}
	return HelloElement{Type: OFPHET_VERSIONBITMAP, Data: data}
}

// Versions decodes a version bitmap element.
func (self HelloElement) Versions() []uint8 {
	if self.Type != OFPHET_VERSIONBITMAP {
		return nil
	}
	var ret []uint8
	b := view.New(self.Data)
	for i := 0; i+4 <= len(self.Data); i += 4 {
		w := b.Uint32(view.Span(i, 4))
		for bit := 0; bit < 32; bit++ {
			if w&(1<<uint(bit)) != 0 {
				ret = append(ret, uint8(8*i+bit))
			}
		}
	}
	return ret
}

func (self HelloElement) BufferLen() int {
	return view.Align8(4 + len(self.Data))
}

func (self HelloElement) Emit(buf []byte) error {
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "hello element")
	}
	b := view.New(buf)
	length := 4 + len(self.Data)
	b.PutUint16(elemType, self.Type)
	b.PutUint16(elemLength, uint16(length))
	b.Copy(view.Span(4, len(self.Data)), self.Data)
	b.Zero(view.Padding(length))
	return nil
}

// Hello is the OFPT_HELLO body.
type Hello struct {
	Elements []HelloElement
}

func ParseHello(buf []byte) (Hello, error) {
	var ret Hello
	for off := 0; len(buf)-off >= 4; {
		b := view.New(buf[off:])
		length := int(b.Uint16(elemLength))
		if length < 4 {
			return Hello{}, errors.Wrapf(ofpkt.ErrMalformed, "hello element length %d", length)
		}
		if err := b.Check(length); err != nil {
			return Hello{}, errors.Wrap(err, "hello element")
		}
		ret.Elements = append(ret.Elements, HelloElement{
			Type: b.Uint16(elemType),
			Data: append([]byte(nil), b.Slice(view.Span(4, length-4))...),
		})
		off += view.Align8(length)
	}
	return ret, nil
}

func (self Hello) BufferLen() int {
	n := 0
	for _, e := range self.Elements {
		n += e.BufferLen()
	}
	return n
}

func (self Hello) Emit(buf []byte) error {
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "hello")
	}
	off := 0
	for _, e := range self.Elements {
		if err := e.Emit(buf[off:]); err != nil {
			return err
		}
		off += e.BufferLen()
	}
	return nil
}

// Supports tells whether the sender of a hello with the given header version
// accepts version. Without a bitmap, any version up to the header's is
// accepted.
func (self Hello) Supports(header, version uint8) bool {
	for _, e := range self.Elements {
		if e.Type != OFPHET_VERSIONBITMAP {
			continue
		}
		for _, v := range e.Versions() {
			if v == version {
				return true
			}
		}
		return false
	}
	return version <= header
}

func (self Hello) String() string {
	var ret []string
	for _, e := range self.Elements {
		if e.Type == OFPHET_VERSIONBITMAP {
			ret = append(ret, fmt.Sprintf("versions=%v", e.Versions()))
		} else {
			ret = append(ret, fmt.Sprintf("elem%d=%x", e.Type, e.Data))
		}
	}
	return strings.Join(ret, ",")
}

// Echo is the opaque OFPT_ECHO_REQUEST/REPLY body.
type Echo []byte

func (self Echo) BufferLen() int {
	return len(self)
}

func (self Echo) Emit(buf []byte) error {
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "echo")
	}
	copy(buf, self)
	return nil
}

// Empty is the body of requests that carry nothing but the header.
type Empty struct{}

func (self Empty) BufferLen() int {
	return 0
}

func (self Empty) Emit(buf []byte) error {
	return nil
}
