package ofp4

import (
	"fmt"

	"github.com/little-dude/ofpkt"
	"github.com/little-dude/ofpkt/view"
	"github.com/pkg/errors"
)

const switchFeaturesLen = 24

var (
	featDatapathID   = view.Span(0, 8)
	featNBuffers     = view.Span(8, 4)
	featNTables      = 12
	featAuxiliaryID  = 13
	featCapabilities = view.Span(16, 4)
	featReserved     = view.Span(20, 4)
)

// SwitchFeatures is the OFPT_FEATURES_REPLY body.
type SwitchFeatures struct {
	DatapathID   uint64
	NBuffers     uint32
	NTables      uint8
	AuxiliaryID  uint8
	Capabilities uint32
	Reserved     uint32
}

func ParseSwitchFeatures(buf []byte) (SwitchFeatures, error) {
	b, err := view.NewChecked(buf, switchFeaturesLen)
	if err != nil {
		return SwitchFeatures{}, errors.Wrap(err, "features reply")
	}
	return SwitchFeatures{
		DatapathID:   b.Uint64(featDatapathID),
		NBuffers:     b.Uint32(featNBuffers),
		NTables:      b[featNTables],
		AuxiliaryID:  b[featAuxiliaryID],
		Capabilities: b.Uint32(featCapabilities),
		Reserved:     b.Uint32(featReserved),
	}, nil
}

func (self SwitchFeatures) BufferLen() int {
	return switchFeaturesLen
}

func (self SwitchFeatures) Emit(buf []byte) error {
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "features reply")
	}
	b := view.New(buf)
	b.PutUint64(featDatapathID, self.DatapathID)
	b.PutUint32(featNBuffers, self.NBuffers)
	b[featNTables] = self.NTables
	b[featAuxiliaryID] = self.AuxiliaryID
	b.Zero(view.Span(14, 2))
	b.PutUint32(featCapabilities, self.Capabilities)
	b.PutUint32(featReserved, self.Reserved)
	return nil
}

func (self SwitchFeatures) String() string {
	return fmt.Sprintf("datapath_id=0x%016x,n_buffers=%d,n_tables=%d,auxiliary_id=%d,capabilities=0x%x",
		self.DatapathID, self.NBuffers, self.NTables, self.AuxiliaryID, self.Capabilities)
}

const switchConfigLen = 4

var (
	cfgFlags       = view.Span(0, 2)
	cfgMissSendLen = view.Span(2, 2)
)

// SwitchConfig is the body of OFPT_GET_CONFIG_REPLY and OFPT_SET_CONFIG.
type SwitchConfig struct {
	Flags       uint16
	MissSendLen uint16
}

func ParseSwitchConfig(buf []byte) (SwitchConfig, error) {
	b, err := view.NewChecked(buf, switchConfigLen)
	if err != nil {
		return SwitchConfig{}, errors.Wrap(err, "switch config")
	}
	return SwitchConfig{
		Flags:       b.Uint16(cfgFlags),
		MissSendLen: b.Uint16(cfgMissSendLen),
	}, nil
}

func (self SwitchConfig) BufferLen() int {
	return switchConfigLen
}

func (self SwitchConfig) Emit(buf []byte) error {
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "switch config")
	}
	b := view.New(buf)
	b.PutUint16(cfgFlags, self.Flags)
	b.PutUint16(cfgMissSendLen, self.MissSendLen)
	return nil
}

func (self SwitchConfig) String() string {
	frag := map[uint16]string{
		OFPC_FRAG_NORMAL: "normal",
		OFPC_FRAG_DROP:   "drop",
		OFPC_FRAG_REASM:  "reasm",
	}[self.Flags&OFPC_FRAG_MASK]
	if frag == "" {
		frag = "mask"
	}
	miss := fmt.Sprint(self.MissSendLen)
	if self.MissSendLen == OFPCML_NO_BUFFER {
		miss = "no_buffer"
	}
	return fmt.Sprintf("frag=%s,miss_send_len=%s", frag, miss)
}

const errorMsgLen = 4

var (
	errType = view.Span(0, 2)
	errCode = view.Span(2, 2)
)

// ErrorMsg is the OFPT_ERROR body. Data usually holds the head of the
// offending request.
type ErrorMsg struct {
	Type uint16
	Code uint16
	Data []byte
}

func ParseErrorMsg(buf []byte) (ErrorMsg, error) {
	b, err := view.NewChecked(buf, errorMsgLen)
	if err != nil {
		return ErrorMsg{}, errors.Wrap(err, "error message")
	}
	return ErrorMsg{
		Type: b.Uint16(errType),
		Code: b.Uint16(errCode),
		Data: append([]byte(nil), b.Slice(view.Rest(errorMsgLen))...),
	}, nil
}

func (self ErrorMsg) BufferLen() int {
	return errorMsgLen + len(self.Data)
}

func (self ErrorMsg) Emit(buf []byte) error {
	if err := ofpkt.CheckEmit(self, buf); err != nil {
		return errors.Wrap(err, "error message")
	}
	b := view.New(buf)
	b.PutUint16(errType, self.Type)
	b.PutUint16(errCode, self.Code)
	b.Copy(view.Span(errorMsgLen, len(self.Data)), self.Data)
	return nil
}

func (self ErrorMsg) String() string {
	name, ok := errorTypeNames[self.Type]
	if !ok {
		name = fmt.Sprintf("type%d", self.Type)
	}
	return fmt.Sprintf("%s(%d),data=%x", name, self.Code, self.Data)
}
