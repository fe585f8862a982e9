package wire

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated          = errors.New("wire: truncated data")
	ErrVarintOverflow     = errors.New("wire: invalid varint encoding")
	ErrInvalidLength      = errors.New("wire: invalid length")
	ErrInvalidFieldNumber = errors.New("wire: invalid field number")
	ErrMessageTooLarge    = errors.New("wire: message too large")
)

// WireTypeError reports a wire type the codec cannot skip or read.
type WireTypeError struct {
	Type Type
}

func (e *WireTypeError) Error() string {
	return fmt.Sprintf("wire: unimplemented type %d", e.Type)
}
