package script

import (
	"errors"
	"fmt"

	"github.com/me21jarus/dsa/core"
)

// Sentinel errors for script parsing and execution.
var (
	// ErrInvalidScript indicates the document could not be decoded.
	ErrInvalidScript = errors.New("script: invalid script")

	// ErrUnknownOp indicates a step names an op that does not exist.
	ErrUnknownOp = errors.New("script: unknown op")

	// ErrMissingField indicates a step lacks a field its op requires.
	ErrMissingField = errors.New("script: missing field")

	// ErrUnsupportedOp indicates the op exists but not for this variant.
	ErrUnsupportedOp = errors.New("script: op not supported by variant")
)

// Op names a single step kind.
type Op string

// Supported ops.
const (
	OpInsertHead  Op = "insert_head"
	OpInsertTail  Op = "insert_tail"
	OpInsertAt    Op = "insert_at"
	OpDeleteAt    Op = "delete_at"
	OpMiddle      Op = "middle"
	OpInsertAfter Op = "insert_after"
	OpDeleteValue Op = "delete_value"
	OpAppend      Op = "append"
	OpPrint       Op = "print"
	OpLen         Op = "len"
	OpFind        Op = "find"
	OpClear       Op = "clear"
)

// field flags for per-op requirements.
type field uint8

const (
	fieldValue field = 1 << iota
	fieldTarget
	fieldPosition
)

// opSpec describes which fields an op needs and where it applies.
type opSpec struct {
	needs    field
	linear   bool
	circular bool
}

var opSpecs = map[Op]opSpec{
	OpInsertHead:  {needs: fieldValue, linear: true},
	OpInsertTail:  {needs: fieldValue, linear: true},
	OpInsertAt:    {needs: fieldValue | fieldPosition, linear: true},
	OpDeleteAt:    {needs: fieldPosition, linear: true},
	OpMiddle:      {linear: true},
	OpInsertAfter: {needs: fieldValue | fieldTarget, circular: true},
	OpDeleteValue: {needs: fieldValue, circular: true},
	OpAppend:      {needs: fieldValue, circular: true},
	OpPrint:       {linear: true, circular: true},
	OpLen:         {linear: true, circular: true},
	OpFind:        {needs: fieldValue, linear: true, circular: true},
	OpClear:       {linear: true, circular: true},
}

// Step is one command. Pointer fields distinguish "absent" from zero.
type Step struct {
	Op       Op   `yaml:"op"`
	Value    *int `yaml:"value,omitempty"`
	Target   *int `yaml:"target,omitempty"`
	Position *int `yaml:"position,omitempty"`
}

// String renders the step compactly for logs and errors.
func (s Step) String() string {
	out := string(s.Op)
	if s.Position != nil {
		out += fmt.Sprintf(" position=%d", *s.Position)
	}
	if s.Target != nil {
		out += fmt.Sprintf(" target=%d", *s.Target)
	}
	if s.Value != nil {
		out += fmt.Sprintf(" value=%d", *s.Value)
	}

	return out
}

// Script is a decoded command sequence.
type Script struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
	Strict  bool   `yaml:"strict"`
	Initial []int  `yaml:"initial,omitempty"`
	Steps   []Step `yaml:"steps"`

	variant core.Variant
}

// Kind returns the resolved list variant.
func (s *Script) Kind() core.Variant { return s.variant }

// Result summarises a run.
type Result struct {
	// Steps is the number of steps executed.
	Steps int
	// Failures counts steps that reported an error outcome.
	Failures int
	// Final holds the list contents after the last step.
	Final []int
}
