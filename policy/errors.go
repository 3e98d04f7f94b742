// SPDX-License-Identifier: MIT
//
// errors.go — policy-level error taxonomy, grounded on builder/errors.go's
// sentinel-plus-wrapping convention: sentinels are never reformatted at
// definition site, context is attached with %w via policyErrorf.
package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/policonn/invariant"
	"github.com/katalvlaran/policonn/registry"
)

// ErrConnectivityViolation is the sentinel behind every ConnectivityViolation
// value's Unwrap, so callers can branch with errors.Is without type-asserting.
var ErrConnectivityViolation = errors.New("policy: connectivity invariant violated")

// ConnectivityViolation reports that a proposed mutation would break one of
// the three connectivity invariants (1–3). It carries the invariant number,
// the offending entity set, and a human-readable message. Witness holds the
// (subject, interval, role set) triple for invariant 1 violations only;
// invariant 2 and 3 violations leave Witness zero and name the offending
// set in Entities alone.
type ConnectivityViolation struct {
	Invariant int
	Entities  []string
	Witness   invariant.Witness
	Message   string
}

// Error implements the error interface.
func (v *ConnectivityViolation) Error() string {
	return fmt.Sprintf("connectivity violation (invariant %d): %s [entities: %s]",
		v.Invariant, v.Message, strings.Join(v.Entities, ","))
}

// Unwrap lets errors.Is(err, ErrConnectivityViolation) succeed.
func (v *ConnectivityViolation) Unwrap() error { return ErrConnectivityViolation }

func violationFromWitness(w invariant.Witness, message string) *ConnectivityViolation {
	return &ConnectivityViolation{Invariant: w.Invariant, Entities: w.EntitySet, Witness: w, Message: message}
}

// unknownEntity wraps registry.ErrUnknownEntity with the offending id, for
// operations that check entity presence themselves rather than delegating
// straight to a registry mutator.
func unknownEntity(id string) error {
	return fmt.Errorf("%w: %s", registry.ErrUnknownEntity, id)
}

// policyErrorf wraps err with "<Op>: <msg>" context, mirroring
// builder.builderErrorf, while preserving err in the %w chain so
// errors.Is(result, registry.ErrUnknownEntity) (etc.) still succeeds.
func policyErrorf(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}
