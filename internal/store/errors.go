// Package store holds the canonical job-seeker profile and the reducer that merges
// confirmed server responses into it.
package store

import (
	"fmt"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// ReduceError reports an update that could not be merged. The state is left unchanged.
type ReduceError struct {
	Kind    types.EditKind
	Message string
	Cause   error
}

func (e *ReduceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("reduce %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("reduce %s: %s", e.Kind, e.Message)
}

func (e *ReduceError) Unwrap() error {
	return e.Cause
}
