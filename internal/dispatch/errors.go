// Package dispatch maps profile edit payloads to the API operation that applies them.
package dispatch

import (
	"fmt"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// ContractError reports a caller bug: a payload the dispatcher cannot route.
type ContractError struct {
	Kind    types.EditKind
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("dispatch contract violation for kind %q: %s", e.Kind, e.Message)
}
