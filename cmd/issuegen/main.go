// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the issuegen CLI. It exports the
// kernel work-item catalog to docs/oris-2.0-kernel-issues.csv for bulk
// import into the issue tracker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/issuegen/internal/catalog"
	"github.com/pdiddy/issuegen/internal/export"
)

// version is set at build time via ldflags.
var version = "dev"

// resolveOutputPath is swapped out in tests to redirect the export.
var resolveOutputPath = export.DefaultOutputPath

// rootCmd is the base command for the issuegen CLI. It takes no arguments,
// flags, or configuration: one invocation produces one file.
var rootCmd = &cobra.Command{
	Use:   "issuegen",
	Short: "Export the kernel work-item catalog to a tracker import CSV",
	Long: `issuegen writes the planned kernel work items to a quote-all CSV file under
docs/, next to the directory holding the binary. The file is suitable for
bulk import into an issue tracker; rerunning the tool overwrites it with
identical content.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveOutputPath()
		if err != nil {
			return err
		}
		n, err := export.WriteCSV(path, catalog.Header(), catalog.Issues())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d issues to %s\n", n, path)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
