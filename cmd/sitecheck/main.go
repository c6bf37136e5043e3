package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitecheck/sitecheck/internal/engine"
	"github.com/sitecheck/sitecheck/internal/logging"
)

var (
	projectRoot string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "sitecheck",
	Short: "Audit a static-site tree before a major version upgrade",
	Long: `sitecheck audits a static-site project against the versioned frontend
contract and optionally applies safe, idempotent codemods to fix the
drift that can be corrected mechanically.

Commands:
  audit    run all checks and write the report
  apply    apply safe codemods, then audit and write the report
  report   run all checks and write the report only`,
	SilenceUsage: true,
}

func newEngine() *engine.Engine {
	return engine.New(projectRoot, os.Stdout,
		engine.WithLogger(logging.New(os.Stderr, verbose)))
}

func main() {
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", ".", "Project root to audit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
