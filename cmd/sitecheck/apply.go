package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sitecheck/sitecheck/internal/engine"
	"github.com/sitecheck/sitecheck/internal/types"
)

var applySafe bool

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply safe codemods, then audit and write the report",
	Long: `Apply the deterministic, idempotent text rewrites (utility-class
renames, remote distill URL vendoring, renamed assets, missing config
namespaces), then re-run the full audit.

Only --safe mode exists; requesting anything else aborts with no
filesystem mutation. Re-running apply on an already-migrated tree is a
no-op.`,
	Run: func(cmd *cobra.Command, args []string) {
		e := newEngine()
		green := color.New(color.FgGreen).SprintFunc()

		fmt.Printf("Applying safe codemods under %s...\n", projectRoot)
		changed, err := e.Apply(applySafe)
		if err != nil {
			if errors.Is(err, engine.ErrUnsafeApply) {
				fmt.Fprintf(os.Stderr, "error: %v (use --safe)\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(2)
		}
		fmt.Printf("%s %d file(s) rewritten\n\n", green("✓"), len(changed))

		findings := e.Audit()
		path, err := e.WriteReport(findings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}

		printSummary(findings, path)
		if types.HasBlocking(findings) {
			os.Exit(1)
		}
	},
}

func init() {
	applyCmd.Flags().BoolVar(&applySafe, "safe", false, "Apply only the safe, idempotent codemod set")
	rootCmd.AddCommand(applyCmd)
}
