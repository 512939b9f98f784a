package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/me21jarus/dsa/core"
	"gopkg.in/yaml.v3"
)

// Parse decodes and validates a YAML script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Parse: empty document: %w", ErrInvalidScript)
		}
		return nil, fmt.Errorf("Parse: %w: %w", ErrInvalidScript, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// validate resolves the variant and checks each step against opSpecs.
func (s *Script) validate() error {
	v, err := core.ParseVariant(s.Variant)
	if err != nil {
		return err
	}
	s.variant = v

	for i, st := range s.Steps {
		spec, ok := opSpecs[st.Op]
		if !ok {
			return fmt.Errorf("step %d: %q: %w", i+1, st.Op, ErrUnknownOp)
		}
		if v.IsCircular() && !spec.circular || !v.IsCircular() && !spec.linear {
			return fmt.Errorf("step %d: %s on %s: %w", i+1, st.Op, v, ErrUnsupportedOp)
		}
		if spec.needs&fieldValue != 0 && st.Value == nil {
			return fmt.Errorf("step %d: %s needs value: %w", i+1, st.Op, ErrMissingField)
		}
		if spec.needs&fieldTarget != 0 && st.Target == nil {
			return fmt.Errorf("step %d: %s needs target: %w", i+1, st.Op, ErrMissingField)
		}
		if spec.needs&fieldPosition != 0 && st.Position == nil {
			return fmt.Errorf("step %d: %s needs position: %w", i+1, st.Op, ErrMissingField)
		}
	}

	return nil
}
