package linear

import (
	"fmt"

	"github.com/me21jarus/dsa/core"
)

// Method tags used as error prefixes.
const (
	methodInsertAt = "InsertAt"
	methodDeleteAt = "DeleteAt"
	methodValidate = "Validate"
)

// errBelowOne reports a position smaller than the first slot.
func errBelowOne(method string, pos int) error {
	return fmt.Errorf("%s: position %d < 1: %w", method, pos, core.ErrInvalidPosition)
}

// errPastEnd reports a position past the accepted range for a list of length n.
func errPastEnd(method string, pos, n int) error {
	return fmt.Errorf("%s: position %d past length %d: %w: %w", method, pos, n, core.ErrInvalidPosition, core.ErrNotFound)
}

// errEmpty reports an operation that needs at least one node.
func errEmpty(method string) error {
	return fmt.Errorf("%s: %w", method, core.ErrEmptyList)
}
