package lensicon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdslens/lensicon/internal/imgfmt"
)

var (
	// ErrInvalidSize is returned when an icon size is not positive.
	ErrInvalidSize = errors.New("lensicon: icon size must be positive")

	// ErrMissingDependency is matched by every MissingDependencyError.
	ErrMissingDependency = errors.New("lensicon: missing dependency")
)

// MissingDependencyError reports that an output cannot be produced because
// no encoder is available for it. Hint tells the user how to proceed.
type MissingDependencyError struct {
	Path string
	Hint string
	Err  error
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("lensicon: cannot write %s: %v", e.Path, e.Err)
}

func (e *MissingDependencyError) Unwrap() error { return e.Err }

// Is reports ErrMissingDependency as a match.
func (e *MissingDependencyError) Is(target error) bool {
	return target == ErrMissingDependency
}

// CheckDependencies verifies that every path can be encoded. It is called
// once before any rendering so that a failure leaves no files behind.
func CheckDependencies(paths ...string) error {
	for _, p := range paths {
		if _, err := imgfmt.Lookup(p); err != nil {
			return &MissingDependencyError{
				Path: p,
				Hint: "supported image formats: " + strings.Join(imgfmt.Extensions(), ", "),
				Err:  err,
			}
		}
	}
	return nil
}
