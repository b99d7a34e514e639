package astro

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod matches any *UnknownMethodError.
	ErrUnknownMethod = errors.New("unknown computation method")
	// ErrUnrecognizedUnit matches any *UnrecognizedUnitError.
	ErrUnrecognizedUnit = errors.New("unrecognized time unit")
	// ErrNonPositiveStep is returned when a path stride would not advance.
	ErrNonPositiveStep = errors.New("step must be a positive duration")
	// ErrStepOverflow is returned when a stride does not fit in a time.Duration.
	ErrStepOverflow = errors.New("step is too large")
	// ErrSampleBudget matches any *SampleBudgetError.
	ErrSampleBudget = errors.New("too many path samples")
)

// UnknownMethodError reports a method tag outside the supported set.
type UnknownMethodError struct {
	Method Method
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown computation method %q", string(e.Method))
}

// Is makes errors.Is(err, ErrUnknownMethod) work.
func (e *UnknownMethodError) Is(target error) bool { return target == ErrUnknownMethod }

// UnrecognizedUnitError reports a step unit outside hours, days, weeks, years.
type UnrecognizedUnitError struct {
	Unit string
}

func (e *UnrecognizedUnitError) Error() string {
	return fmt.Sprintf("unrecognized time unit %q", e.Unit)
}

// Is makes errors.Is(err, ErrUnrecognizedUnit) work.
func (e *UnrecognizedUnitError) Is(target error) bool { return target == ErrUnrecognizedUnit }

// SampleBudgetError reports a path range that would exceed the sample limit.
type SampleBudgetError struct {
	Samples int64
	Max     int
}

func (e *SampleBudgetError) Error() string {
	return fmt.Sprintf("path needs %d samples, limit is %d", e.Samples, e.Max)
}

// Is makes errors.Is(err, ErrSampleBudget) work.
func (e *SampleBudgetError) Is(target error) bool { return target == ErrSampleBudget }
