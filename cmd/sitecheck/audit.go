package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sitecheck/sitecheck/internal/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run all upgrade checks and write the audit report",
	Long: `Run the full check set against the project tree, write the markdown
report, and print a summary.

Exit codes:
  0 - No blocking findings
  1 - One or more blocking findings
  2 - The audit itself could not run`,
	Run: func(cmd *cobra.Command, args []string) {
		e := newEngine()

		fmt.Printf("Auditing %s...\n\n", projectRoot)
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
	rootCmd.AddCommand(auditCmd)
}

func printSummary(findings []types.Finding, reportPath string) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("\n%s\n", strings.Repeat("─", 60))

	blocking, warning := types.CountBySeverity(findings)
	if len(findings) == 0 {
		fmt.Printf("%s No drift detected. Ready to upgrade.\n", green("✓"))
	} else {
		if blocking > 0 {
			fmt.Printf("%s %d blocking finding(s) must be resolved before upgrading.\n", red("✗"), blocking)
		}
		if warning > 0 {
			fmt.Printf("%s %d non-blocking finding(s) to review.\n", yellow("⚠"), warning)
		}
	}
	fmt.Printf("Report written to %s\n", reportPath)
}
