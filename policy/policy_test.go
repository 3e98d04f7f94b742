package policy_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/policonn/policy"
	"github.com/katalvlaran/policonn/registry"
	"github.com/stretchr/testify/require"
)

func TestPolicy_AddIsIdempotent(t *testing.T) {
	pol := policy.NewPolicy()

	require.NoError(t, pol.AddRole("r1"))
	require.NoError(t, pol.AddRole("r1"), "re-adding an existing entity with no new relations is a no-op (P7)")
}

func TestPolicy_UnknownEntityOnAssignment(t *testing.T) {
	pol := policy.NewPolicy()
	require.NoError(t, pol.AddRole("r1"))

	err := pol.AssignRoleToSubject("r1", "missing-subject")
	require.ErrorIs(t, err, registry.ErrUnknownEntity)
}

func TestPolicy_RelationMissingOnRetraction(t *testing.T) {
	pol := policy.NewPolicy()
	require.NoError(t, pol.AddRole("r1"))
	require.NoError(t, pol.AddInterval("i1"))

	err := pol.RetractRoleFromInterval("r1", "i1")
	require.ErrorIs(t, err, registry.ErrRelationMissing)
}

func TestPolicy_ExportGraphIsAReadOnlySnapshot(t *testing.T) {
	pol := policy.NewPolicy()
	require.NoError(t, pol.AddRole("r1"))

	snapshot := pol.ExportGraph(policy.GraphRoles)
	require.NoError(t, snapshot.AddNode("r2"))

	require.False(t, pol.ExportGraph(policy.GraphRoles).HasNode("r2"), "mutating an exported clone must not affect the policy")
}

func TestPolicy_RejectedOperationLeavesStateUnchanged(t *testing.T) {
	// A single subject holds two roles that share no demarcation. With r1
	// already enabled in i1, enabling r2 in i1 as well must be rejected,
	// and the rejected attempt must leave G_R untouched (P6).
	pol := policy.NewPolicy()
	require.NoError(t, pol.AddRole("r1"))
	require.NoError(t, pol.AddRole("r2"))
	require.NoError(t, pol.AddSubject("s1"))
	require.NoError(t, pol.AddInterval("i1"))
	require.NoError(t, pol.AssignRoleToSubject("r1", "s1"))
	require.NoError(t, pol.AssignRoleToSubject("r2", "s1"))
	require.NoError(t, pol.AssignRoleToInterval("r1", "i1"))

	err := pol.AssignRoleToInterval("r2", "i1")
	require.Error(t, err, "r1 and r2 share no demarcation, so {r1,r2} is disconnected in G_R")

	var violation *policy.ConnectivityViolation
	require.True(t, errors.As(err, &violation))
	require.Equal(t, 1, violation.Invariant)

	gr := pol.ExportGraph(policy.GraphRoles)
	require.False(t, gr.HasEdge("r1", "r2"))
}
