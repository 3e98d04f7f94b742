// SPDX-License-Identifier: MIT
//
// Command policonn is a thin CLI demo over the policy package: it runs a
// set of named fixture scenarios and can bulk-export the three derived
// graphs to GEXF. Grounded on pthm/melange/cmd/melange's cobra-root-command
// shape, trimmed to this module's much smaller surface (no config file, no
// background update check — this is a demo binary, not a service).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "policonn",
	Short:         "Time-scoped RBAC connectivity verifier",
	Long:          `policonn builds and inspects a time-scoped role-based access-control policy, verifying its connectivity invariants after every mutation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "policonn:", err)
		os.Exit(1)
	}
}
