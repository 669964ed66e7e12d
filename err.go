package ofpkt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by the codecs. Call sites wrap them with context, so
// compare with errors.Cause (or errors.Is) rather than ==.
var (
	// ErrExhausted means the destination buffer is too small to emit into.
	// Nothing is written in that case.
	ErrExhausted = errors.New("buffer space exhausted")
	// ErrTruncated means the source buffer is shorter than a header declares.
	ErrTruncated = errors.New("truncated packet")
	// ErrUnrecognized is a well-formed but unknown message kind.
	ErrUnrecognized = errors.New("unrecognized packet")
	// ErrMalformed is self-contradictory data.
	ErrMalformed = errors.New("malformed packet")

	ErrBadOxmClass         = errors.New("unknown oxm class")
	ErrUnsupportedOxmClass = errors.New("unsupported oxm class")
	ErrBadOxmField         = errors.New("unknown oxm field")
	ErrBadMatchType        = errors.New("unknown match type")
)

// IsTruncated reports whether err was caused by ErrTruncated.
func IsTruncated(err error) bool {
	return errors.Cause(err) == ErrTruncated
}

type SysError struct {
	Err   error
	Stack []byte
}

func (self SysError) Error() string {
	return fmt.Sprintf("SysError with Stack: %s\n%s",
		self.Err,
		string(self.Stack),
	)
}

func (self SysError) Cause() error {
	return self.Err
}
