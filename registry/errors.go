package registry

import (
	"fmt"

	"enumcheck/typedesc"
)

// A ResolutionError reports that no enumerator could be found or built
// for a requested type. It is fatal to the check that requested the
// type, not to the process.
type ResolutionError struct {
	Desc typedesc.Desc

	// The component type that could not be resolved, when the failure
	// happened while resolving a container or constructor argument.
	Cause error
}

func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("registry: no enumerator for %v: %v", e.Desc, e.Cause)
	}
	return fmt.Sprintf("registry: no enumerator for %v", e.Desc)
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// A ConflictError reports a re-registration of an already registered
// type on a strict registry.
type ConflictError struct {
	Desc typedesc.Desc
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("registry: %v is already registered", e.Desc)
}
