package server

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/woozymasta/astrotopo/internal/astro"
)

// ErrBadParameter matches any *ParamError.
var ErrBadParameter = errors.New("bad parameter")

// ParamError reports a path segment that could not be converted.
type ParamError struct {
	Name  string
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Err)
}

// Is makes errors.Is(err, ErrBadParameter) work.
func (e *ParamError) Is(target error) bool { return target == ErrBadParameter }

func (e *ParamError) Unwrap() error { return e.Err }

func timeParam(vars map[string]string, name string) (time.Time, error) {
	t, err := astro.ParseTime(vars[name])
	if err != nil {
		return time.Time{}, &ParamError{Name: name, Value: vars[name], Err: err}
	}
	return t, nil
}

func intParam(vars map[string]string, name string) (int, error) {
	n, err := strconv.Atoi(vars[name])
	if err != nil {
		return 0, &ParamError{Name: name, Value: vars[name], Err: errors.New("not an integer")}
	}
	return n, nil
}
