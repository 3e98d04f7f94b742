// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/policonn/graphset"
	"github.com/katalvlaran/policonn/policy"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scenarioCmd)
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario [A-F]",
	Short: "Run one of the named fixture scenarios",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenario(args[0])
	},
}

// buildFixture constructs the shared base state: permissions p1..p6 with a
// fixed G_P topology, one interval, three subjects, four demarcations, and
// five roles, fully assigned. Every scenario letter below starts from this
// same base and then performs that scenario's own operations on it (none
// for A).
func buildFixture() (*policy.Policy, error) {
	seed := graphset.New()
	for _, e := range [][2]string{{"p1", "p2"}, {"p1", "p3"}, {"p3", "p4"}, {"p4", "p5"}, {"p2", "p6"}} {
		if err := seed.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	pol := policy.NewPolicy(policy.WithPermissionGraph(seed))

	for _, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6"} {
		if err := pol.AddPermission(id); err != nil {
			return nil, err
		}
	}
	if err := pol.AddInterval("i1"); err != nil {
		return nil, err
	}
	for _, id := range []string{"s1", "s2", "s3"} {
		if err := pol.AddSubject(id); err != nil {
			return nil, err
		}
	}
	for _, id := range []string{"d1", "d2", "d3", "d4"} {
		if err := pol.AddDemarcation(id); err != nil {
			return nil, err
		}
	}
	for _, id := range []string{"r1", "r2", "r3", "r4", "r5"} {
		if err := pol.AddRole(id); err != nil {
			return nil, err
		}
	}

	pd := [][2]string{{"p1", "d1"}, {"p2", "d2"}, {"p3", "d3"}, {"p4", "d3"}, {"p4", "d4"}, {"p5", "d4"}}
	for _, a := range pd {
		if err := pol.AssignPermissionToDemarcation(a[0], a[1]); err != nil {
			return nil, err
		}
	}

	dr := [][2]string{{"d1", "r1"}, {"d2", "r2"}, {"d1", "r3"}, {"d2", "r3"}, {"d3", "r3"}, {"d3", "r4"}, {"d4", "r5"}}
	for _, a := range dr {
		if err := pol.AssignDemarcationToRole(a[0], a[1]); err != nil {
			return nil, err
		}
	}

	rs := [][2]string{
		{"r1", "s1"}, {"r2", "s1"}, {"r1", "s2"}, {"r4", "s2"}, {"r5", "s2"}, {"r1", "s3"}, {"r2", "s3"}, {"r4", "s3"},
	}
	for _, a := range rs {
		if err := pol.AssignRoleToSubject(a[0], a[1]); err != nil {
			return nil, err
		}
	}

	for _, role := range []string{"r1", "r2", "r3", "r4", "r5"} {
		if err := pol.AssignRoleToInterval(role, "i1"); err != nil {
			return nil, err
		}
	}

	return pol, nil
}

func runScenario(letter string) error {
	pol, err := buildFixture()
	if err != nil {
		return fmt.Errorf("building base fixture: %w", err)
	}
	fmt.Println("scenario A: base fixture built successfully")

	switch letter {
	case "A":
		return nil
	case "B":
		return report("remove_demarcation(d2)", pol.RemoveDemarcation("d2"))
	case "C":
		return report("remove_demarcation(d1)", pol.RemoveDemarcation("d1"))
	case "D":
		_ = report("remove_role(r1)", pol.RemoveRole("r1"))

		return report("remove_role(r5)", pol.RemoveRole("r5"))
	case "E":
		if err := pol.AddRole("r6"); err != nil {
			return err
		}
		if err := pol.AddSubject("s4"); err != nil {
			return err
		}
		if err := pol.AddDemarcation("d6"); err != nil {
			return err
		}
		if err := pol.AssignPermissionToDemarcation("p6", "d6"); err != nil {
			return err
		}
		if err := pol.AssignDemarcationToRole("d6", "r6"); err != nil {
			return err
		}
		if err := pol.AssignRoleToSubject("r5", "s4"); err != nil {
			return err
		}
		if err := pol.AssignRoleToSubject("r6", "s4"); err != nil {
			return err
		}

		return report("assign_role_to_interval(r6,i1)", pol.AssignRoleToInterval("r6", "i1"))
	case "F":
		return report("assign_permission_to_demarcation(p6,d4)", pol.AssignPermissionToDemarcation("p6", "d4"))
	default:
		return fmt.Errorf("unknown scenario %q, expected one of A-F", letter)
	}
}

func report(op string, err error) error {
	if err != nil {
		fmt.Printf("%s: rejected: %v\n", op, err)

		return nil
	}
	fmt.Printf("%s: committed\n", op)

	return nil
}
