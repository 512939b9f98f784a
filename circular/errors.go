package circular

import (
	"fmt"

	"github.com/me21jarus/dsa/core"
)

const (
	methodInsertAfter = "InsertAfter"
	methodDelete      = "Delete"
	methodValidate    = "Validate"
)

func errValueNotFound(method string, v any) error {
	return fmt.Errorf("%s: value %v: %w", method, v, core.ErrNotFound)
}

func errEmpty(method string) error {
	return fmt.Errorf("%s: %w", method, core.ErrEmptyList)
}
