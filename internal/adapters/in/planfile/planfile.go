// Package planfile reads dispatch plans written as YAML for offline checking.
//
// A plan file lists instruction names in plan order:
//
//	instructions:
//	  - PICKUP_EMPTY
//	  - LIVE_LOAD
//	  - INGATE
package planfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"drayage/internal/core/domain/model/dispatch"

	"gopkg.in/yaml.v3"
)

var ErrEmptyPlan = errors.New("plan file lists no instructions")

type document struct {
	Instructions []string `yaml:"instructions"`
}

// Read decodes a plan document from r. Unknown keys and unknown instruction names
// are errors; every unknown name is reported with its 1-based position.
func Read(r io.Reader) ([]dispatch.Instruction, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPlan
		}
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if len(doc.Instructions) == 0 {
		return nil, ErrEmptyPlan
	}

	plan := make([]dispatch.Instruction, 0, len(doc.Instructions))
	var errs error
	for i, name := range doc.Instructions {
		instruction, err := dispatch.ParseInstruction(name)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("task %d: %w", i+1, err))
			continue
		}
		plan = append(plan, instruction)
	}
	if errs != nil {
		return nil, errs
	}

	return plan, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) ([]dispatch.Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plan file: %w", err)
	}
	defer f.Close()

	return Read(f)
}
