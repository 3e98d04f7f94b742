package policy_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/policonn/graphset"
	"github.com/katalvlaran/policonn/policy"
	"github.com/stretchr/testify/require"
)

// buildScenarioA constructs the literal fixture for Scenario A:
// permissions p1..p6 with a fixed G_P topology, one interval, three
// subjects, four demarcations, five roles, and the assignment graph that
// links them. Every step is expected to succeed.
func buildScenarioA(t *testing.T) *policy.Policy {
	t.Helper()

	seed := graphset.New()
	for _, e := range []graphset.Edge{
		{A: "p1", B: "p2"}, {A: "p1", B: "p3"}, {A: "p3", B: "p4"},
		{A: "p4", B: "p5"}, {A: "p2", B: "p6"},
	} {
		require.NoError(t, seed.AddEdge(e.A, e.B))
	}

	pol := policy.NewPolicy(policy.WithPermissionGraph(seed))

	for _, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6"} {
		require.NoError(t, pol.AddPermission(id))
	}
	require.NoError(t, pol.AddInterval("i1"))
	for _, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, pol.AddSubject(id))
	}
	for _, id := range []string{"d1", "d2", "d3", "d4"} {
		require.NoError(t, pol.AddDemarcation(id))
	}
	for _, id := range []string{"r1", "r2", "r3", "r4", "r5"} {
		require.NoError(t, pol.AddRole(id))
	}

	type pd struct{ perm, dem string }
	for _, a := range []pd{
		{"p1", "d1"}, {"p2", "d2"}, {"p3", "d3"}, {"p4", "d3"}, {"p4", "d4"}, {"p5", "d4"},
	} {
		require.NoError(t, pol.AssignPermissionToDemarcation(a.perm, a.dem))
	}

	type dr struct{ dem, role string }
	for _, a := range []dr{
		{"d1", "r1"}, {"d2", "r2"}, {"d1", "r3"}, {"d2", "r3"}, {"d3", "r3"}, {"d3", "r4"}, {"d4", "r5"},
	} {
		require.NoError(t, pol.AssignDemarcationToRole(a.dem, a.role))
	}

	type rs struct{ role, subject string }
	for _, a := range []rs{
		{"r1", "s1"}, {"r2", "s1"}, {"r1", "s2"}, {"r4", "s2"}, {"r5", "s2"}, {"r1", "s3"}, {"r2", "s3"}, {"r4", "s3"},
	} {
		require.NoError(t, pol.AssignRoleToSubject(a.role, a.subject))
	}

	for _, role := range []string{"r1", "r2", "r3", "r4", "r5"} {
		require.NoError(t, pol.AssignRoleToInterval(role, "i1"))
	}

	return pol
}

func TestScenarioA_BasicBuildSucceeds(t *testing.T) {
	pol := buildScenarioA(t)

	gr := pol.ExportGraph(policy.GraphRoles)
	require.True(t, gr.HasNode("r1"))
	require.True(t, gr.HasEdge("r1", "r3"), "r1 and r3 share d1")
}

func TestScenarioB_AdmissibleRemoval(t *testing.T) {
	pol := buildScenarioA(t)

	require.NoError(t, pol.RemoveDemarcation("d2"))
}

func TestScenarioC_RejectedRemoval(t *testing.T) {
	pol := buildScenarioA(t)

	err := pol.RemoveDemarcation("d1")
	require.Error(t, err)

	var violation *policy.ConnectivityViolation
	require.True(t, errors.As(err, &violation))
	require.True(t, errors.Is(err, policy.ErrConnectivityViolation))
}

func TestScenarioD_RejectedThenAdmissibleRoleRemoval(t *testing.T) {
	pol := buildScenarioA(t)

	require.Error(t, pol.RemoveRole("r1"))
	require.NoError(t, pol.RemoveRole("r5"))
}

func TestScenarioE_RejectedAssignment(t *testing.T) {
	pol := buildScenarioA(t)

	require.NoError(t, pol.AddRole("r6"))
	require.NoError(t, pol.AddSubject("s4"))
	require.NoError(t, pol.AddDemarcation("d6"))

	require.NoError(t, pol.AssignPermissionToDemarcation("p6", "d6"))
	require.NoError(t, pol.AssignDemarcationToRole("d6", "r6"))
	require.NoError(t, pol.AssignRoleToSubject("r5", "s4"))
	require.NoError(t, pol.AssignRoleToSubject("r6", "s4"))

	err := pol.AssignRoleToInterval("r6", "i1")
	require.Error(t, err, "d4 and d6 are not linked, so {r5,r6} is disconnected in G_R")
}

func TestScenarioF_RejectedPermissionAssignment(t *testing.T) {
	pol := buildScenarioA(t)

	err := pol.AssignPermissionToDemarcation("p6", "d4")
	require.Error(t, err)

	var violation *policy.ConnectivityViolation
	require.True(t, errors.As(err, &violation))
	require.Equal(t, 3, violation.Invariant)
}
