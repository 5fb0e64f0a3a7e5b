package alloy

import (
	"errors"
	"fmt"
)

// Schema errors. They signal a mismatch between what a caller expects an
// instance to contain and what was actually parsed.
var (
	// ErrNotSingleton indicates The was applied to a relation whose size is not one.
	ErrNotSingleton = errors.New("alloy: relation is not a singleton")

	// ErrMissingRelation indicates a lookup of a relation name the instance lacks.
	ErrMissingRelation = errors.New("alloy: relation not found")

	// ErrShape indicates a relation or atom of the wrong form, e.g. a Set where a
	// Map is required.
	ErrShape = errors.New("alloy: unexpected relation shape")
)

// CardinalityError records the size of a relation that should have had exactly
// one element.
type CardinalityError struct {
	Size int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%v (size %d)", ErrNotSingleton, e.Size)
}

func (e *CardinalityError) Unwrap() error {
	return ErrNotSingleton
}

// LookupError wraps a failed relation lookup with the name that was asked for.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingRelation, e.Name)
}

func (e *LookupError) Unwrap() error {
	return ErrMissingRelation
}
