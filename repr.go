// Package ofpkt holds what every OpenFlow wire structure in this module
// shares: the error taxonomy and the length/emit contract.
//
// Parsing is done by per-type functions (oxm.ParseOxm, oxm.ParseFlowMatch,
// ofp4.ParsePacketIn, ...) that take a borrowed buffer and return a freshly
// built value which never aliases that buffer.
package ofpkt

import (
	"github.com/pkg/errors"
)

// Repr is a wire structure that knows its encoded size and how to write
// itself. Emit must fail with ErrExhausted, without writing, when buf is
// shorter than BufferLen.
type Repr interface {
	BufferLen() int
	Emit(buf []byte) error
}

// Marshal allocates a buffer of the right size and emits obj into it.
func Marshal(obj Repr) ([]byte, error) {
	buf := make([]byte, obj.BufferLen())
	if err := obj.Emit(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// CheckEmit is the guard every Emit starts with.
func CheckEmit(obj Repr, buf []byte) error {
	if need := obj.BufferLen(); len(buf) < need {
		return errors.Wrapf(ErrExhausted, "need %d bytes, have %d", need, len(buf))
	}
	return nil
}
