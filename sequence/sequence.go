// Package sequence provides numeric sequence containers and an in-memory store.
package sequence

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by this package and by consumers resolving
// sequence data.
var (
	// ErrNonNumeric indicates a sequence element that is not a finite
	// real number.
	ErrNonNumeric = errors.New("non-numeric sequence element")

	// ErrNoData indicates that no sequence could be resolved from the
	// given input.
	ErrNoData = errors.New("no sequence data")
)

// Sequence represents an ordered list of real numbers, optionally named.
type Sequence struct {
	Name   string
	Values []float64
}

// New creates a sequence from values. Every element must be a finite
// real number; otherwise ErrNonNumeric is returned. The input slice is
// copied.
func New(values []float64) (*Sequence, error) {
	if err := Validate(values); err != nil {
		return nil, err
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	return &Sequence{Values: vals}, nil
}

// Validate checks that every element is a finite real number. NaN and
// infinities are rejected with an error wrapping ErrNonNumeric that
// names the offending index.
func Validate(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("element %d (%v): %w", i, v, ErrNonNumeric)
		}
	}
	return nil
}

// Floats converts a slice of loosely typed values (as produced by YAML
// or JSON decoding) to float64 values. Any element that is not a number
// fails with ErrNonNumeric.
func Floats(values []any) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case float64:
			out[i] = x
		case float32:
			out[i] = float64(x)
		case int:
			out[i] = float64(x)
		case int64:
			out[i] = float64(x)
		case uint64:
			out[i] = float64(x)
		default:
			return nil, fmt.Errorf("element %d (%v, %T): %w", i, v, v, ErrNonNumeric)
		}
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Len returns the number of elements in the sequence.
func (s *Sequence) Len() int {
	return len(s.Values)
}

// Append adds values to the end of the sequence. The new values are
// validated; on error the sequence is left unchanged.
func (s *Sequence) Append(values ...float64) error {
	if err := Validate(values); err != nil {
		return err
	}
	s.Values = append(s.Values, values...)
	return nil
}

// Copy creates a deep copy of the sequence.
func (s *Sequence) Copy() *Sequence {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Sequence{
		Name:   s.Name,
		Values: values,
	}
}
