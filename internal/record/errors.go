package record

import (
	"fmt"
	"strconv"
)

// SyntaxError reports a structural mismatch at a byte offset. The first
// mismatch is fatal; the format has no optional branches, so there is
// nothing to recover to.
type SyntaxError struct {
	Offset   int
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: expected %q, found %s", e.Offset, e.Expected, e.Found)
}

// ValueError locates a leaf-validator rejection (IBAN or amount) within
// the input. Offset points at the first byte of the offending value.
type ValueError struct {
	Offset int
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// endOfInput is the Found description used when the input runs out.
const endOfInput = "end of input"

func foundByte(b byte) string {
	return strconv.Quote(string(b))
}
