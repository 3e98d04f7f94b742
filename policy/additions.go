// SPDX-License-Identifier: MIT
//
// additions.go — the five add_* operations. Unconditional:
// no invariant can be broken by introducing an entity with no relations yet.
// Re-adding an existing id is treated as the idempotent no-op required by P7
// (add_* carries no parameters beyond the id, so re-adding can never change
// semantic state), not surfaced as ErrDuplicateEntity.
package policy

import (
	"errors"

	"github.com/katalvlaran/policonn/registry"
)

// AddInterval inserts interval id. Idempotent.
func (p *Policy) AddInterval(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return ignoreDuplicate("AddInterval", p.reg.AddInterval(id))
}

// AddSubject inserts subject id. Idempotent.
func (p *Policy) AddSubject(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return ignoreDuplicate("AddSubject", p.reg.AddSubject(id))
}

// AddRole inserts role id and an isolated G_R node. Idempotent.
func (p *Policy) AddRole(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ignoreDuplicate("AddRole", p.reg.AddRole(id)); err != nil {
		return err
	}

	return policyErrorf("AddRole", p.store.GR.AddNode(id))
}

// AddDemarcation inserts demarcation id and an isolated G_D node. Idempotent.
func (p *Policy) AddDemarcation(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ignoreDuplicate("AddDemarcation", p.reg.AddDemarcation(id)); err != nil {
		return err
	}

	return policyErrorf("AddDemarcation", p.store.GD.AddNode(id))
}

// AddPermission inserts permission id and an isolated G_P node. Idempotent.
func (p *Policy) AddPermission(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ignoreDuplicate("AddPermission", p.reg.AddPermission(id)); err != nil {
		return err
	}

	return policyErrorf("AddPermission", p.store.GP.AddNode(id))
}

// ignoreDuplicate turns a registry.ErrDuplicateEntity into a nil error
// (idempotent add), while any other error is wrapped with op context.
func ignoreDuplicate(op string, err error) error {
	if err == nil {
		return nil
	}
	if isDuplicate(err) {
		return nil
	}

	return policyErrorf(op, err)
}

func isDuplicate(err error) bool {
	return errors.Is(err, registry.ErrDuplicateEntity)
}
