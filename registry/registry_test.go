package registry_test

import (
	"testing"

	"github.com/katalvlaran/policonn/registry"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddAndHasEntities(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.AddInterval("i1"))
	require.True(t, r.HasInterval("i1"))
	require.ErrorIs(t, r.AddInterval("i1"), registry.ErrDuplicateEntity)

	require.NoError(t, r.AddSubject("s1"))
	require.NoError(t, r.AddRole("r1"))
	require.NoError(t, r.AddDemarcation("d1"))
	require.NoError(t, r.AddPermission("p1"))

	require.Equal(t, []string{"i1"}, r.Intervals())
	require.Equal(t, []string{"s1"}, r.Subjects())
	require.Equal(t, []string{"r1"}, r.Roles())
	require.Equal(t, []string{"d1"}, r.Demarcations())
	require.Equal(t, []string{"p1"}, r.Permissions())
}

func TestRegistry_RemoveUnknownEntity(t *testing.T) {
	r := registry.New()

	require.ErrorIs(t, r.RemoveInterval("missing"), registry.ErrUnknownEntity)
	require.ErrorIs(t, r.RemoveSubject("missing"), registry.ErrUnknownEntity)
	require.ErrorIs(t, r.RemoveRole("missing"), registry.ErrUnknownEntity)
	require.ErrorIs(t, r.RemoveDemarcation("missing"), registry.ErrUnknownEntity)
	require.ErrorIs(t, r.RemovePermission("missing"), registry.ErrUnknownEntity)
}

func TestRegistry_LinkRoleIntervalIsBidirectional(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddRole("r1"))
	require.NoError(t, r.AddInterval("i1"))

	require.ErrorIs(t, r.LinkRoleInterval("missing-role", "i1"), registry.ErrUnknownEntity)

	require.NoError(t, r.LinkRoleInterval("r1", "i1"))
	require.Equal(t, []string{"r1"}, r.IR("i1"))
	require.Equal(t, []string{"i1"}, r.RI("r1"))

	require.NoError(t, r.UnlinkRoleInterval("r1", "i1"))
	require.Empty(t, r.IR("i1"))
	require.Empty(t, r.RI("r1"))

	require.ErrorIs(t, r.UnlinkRoleInterval("r1", "i1"), registry.ErrRelationMissing)
}

func TestRegistry_LinkRoleSubjectIsBidirectional(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddRole("r1"))
	require.NoError(t, r.AddSubject("s1"))

	require.NoError(t, r.LinkRoleSubject("r1", "s1"))
	require.Equal(t, []string{"r1"}, r.SR("s1"))
	require.Equal(t, []string{"s1"}, r.RS("r1"))

	require.NoError(t, r.UnlinkRoleSubject("r1", "s1"))
	require.ErrorIs(t, r.UnlinkRoleSubject("r1", "s1"), registry.ErrRelationMissing)
}

func TestRegistry_LinkDemarcationRoleIsBidirectional(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddDemarcation("d1"))
	require.NoError(t, r.AddRole("r1"))

	require.NoError(t, r.LinkDemarcationRole("d1", "r1"))
	require.Equal(t, []string{"d1"}, r.RD("r1"))
	require.Equal(t, []string{"r1"}, r.DR("d1"))

	require.NoError(t, r.UnlinkDemarcationRole("d1", "r1"))
	require.ErrorIs(t, r.UnlinkDemarcationRole("d1", "r1"), registry.ErrRelationMissing)
}

func TestRegistry_LinkPermissionDemarcationIsBidirectional(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddPermission("p1"))
	require.NoError(t, r.AddDemarcation("d1"))

	require.NoError(t, r.LinkPermissionDemarcation("p1", "d1"))
	require.Equal(t, []string{"p1"}, r.DP("d1"))
	require.Equal(t, []string{"d1"}, r.PD("p1"))

	require.NoError(t, r.UnlinkPermissionDemarcation("p1", "d1"))
	require.ErrorIs(t, r.UnlinkPermissionDemarcation("p1", "d1"), registry.ErrRelationMissing)
}

func TestRegistry_RemoveRoleCleansAllThreeRelations(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddRole("r1"))
	require.NoError(t, r.AddInterval("i1"))
	require.NoError(t, r.AddSubject("s1"))
	require.NoError(t, r.AddDemarcation("d1"))

	require.NoError(t, r.LinkRoleInterval("r1", "i1"))
	require.NoError(t, r.LinkRoleSubject("r1", "s1"))
	require.NoError(t, r.LinkDemarcationRole("d1", "r1"))

	require.NoError(t, r.RemoveRole("r1"))

	require.Empty(t, r.IR("i1"))
	require.Empty(t, r.SR("s1"))
	require.Empty(t, r.DR("d1"))
	require.False(t, r.HasRole("r1"))
}

func TestRegistry_RemoveDemarcationCleansRoleAndPermissionSides(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddDemarcation("d1"))
	require.NoError(t, r.AddRole("r1"))
	require.NoError(t, r.AddPermission("p1"))

	require.NoError(t, r.LinkDemarcationRole("d1", "r1"))
	require.NoError(t, r.LinkPermissionDemarcation("p1", "d1"))

	require.NoError(t, r.RemoveDemarcation("d1"))

	require.Empty(t, r.RD("r1"))
	require.Empty(t, r.PD("p1"))
	require.False(t, r.HasDemarcation("d1"))
}

func TestRegistry_RemovePermissionCleansDemarcationSide(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddPermission("p1"))
	require.NoError(t, r.AddDemarcation("d1"))
	require.NoError(t, r.LinkPermissionDemarcation("p1", "d1"))

	require.NoError(t, r.RemovePermission("p1"))

	require.Empty(t, r.DP("d1"))
	require.False(t, r.HasPermission("p1"))
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddRole("r1"))
	require.NoError(t, r.AddInterval("i1"))
	require.NoError(t, r.LinkRoleInterval("r1", "i1"))

	clone := r.Clone()
	require.NoError(t, clone.AddRole("r2"))
	require.NoError(t, clone.LinkRoleInterval("r2", "i1"))

	require.Equal(t, []string{"r1"}, r.IR("i1"), "mutating the clone must not affect the original")
	require.Equal(t, []string{"r1", "r2"}, clone.IR("i1"))
}
