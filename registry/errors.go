// SPDX-License-Identifier: MIT
package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for the entity registry. Only sentinels are exposed for
// errors.Is branching; context is attached with %w wrapping via
// registryErrorf, never by reformatting the sentinel itself.
var (
	// ErrUnknownEntity is returned when an operation references an entity ID
	// that was never added to the registry.
	ErrUnknownEntity = errors.New("registry: unknown entity")
	// ErrDuplicateEntity is returned when an Add call targets an ID already
	// present in the relevant universe.
	ErrDuplicateEntity = errors.New("registry: duplicate entity")
	// ErrRelationMissing is returned when a retraction targets a pair that is
	// not currently linked by the relation in question.
	ErrRelationMissing = errors.New("registry: relation not present")
)

// registryErrorf wraps sentinel with "<op>: <id>" context, preserving it for
// errors.Is while naming the offending entity.
func registryErrorf(op string, sentinel error, id string) error {
	return fmt.Errorf("%s: %w: %s", op, sentinel, id)
}
