// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/policonn/export"
	"github.com/katalvlaran/policonn/policy"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Build the base fixture and export its three derived graphs as GEXF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0])
	},
}

func runExport(dir string) error {
	pol, err := buildFixture()
	if err != nil {
		return fmt.Errorf("building base fixture: %w", err)
	}

	roles := export.Snapshot(pol.ExportGraph(policy.GraphRoles))
	demarcations := export.Snapshot(pol.ExportGraph(policy.GraphDemarcations))
	permissions := export.Snapshot(pol.ExportGraph(policy.GraphPermissions))

	if err := export.BulkExport(dir, roles, demarcations, permissions); err != nil {
		return err
	}

	fmt.Printf("exported role_graph.gexf, demarcation_graph.gexf, permission_graph.gexf to %s\n", dir)

	return nil
}
