package share

import (
	"errors"
	"fmt"
)

// Decode errors.
var (
	ErrInvalidSymbol = errors.New("symbol outside the link alphabet")
	ErrOverflow      = errors.New("token exceeds 64 bits")
	ErrMalformedPair = errors.New("slot must be two tokens joined by '-'")
	ErrReversedSlot  = errors.New("slot ends before it starts")
	ErrNoEvents      = errors.New("no events parameter found")
)

// DecodeError reports where a link value failed to parse.
// Pos is a byte offset into Input, or -1 when the failure is not positional.
type DecodeError struct {
	Input string
	Pos   int
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("decode %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("decode %q at %d: %v", e.Input, e.Pos, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
