// Command testdoc generates docs/TESTS.md from the doc comments of
// cutter's test functions. Integration tests document themselves with
// "Scenario:" and "Expected:" lines, which end up as table columns.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outputFile      string
		integrationOnly bool
	)

	c := &cobra.Command{
		Use:           "testdoc [root]",
		Short:         "Generate markdown test documentation",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolve root directory: %w", err)
			}

			packages, err := ParseTestFiles(absRoot, integrationOnly)
			if err != nil {
				return fmt.Errorf("parse test files: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()

			if err := RenderMarkdown(f, packages); err != nil {
				return fmt.Errorf("render markdown: %w", err)
			}

			fmt.Fprintf(c.OutOrStdout(), "Generated %s with %d packages\n", outputFile, len(packages))
			return nil
		},
	}

	c.Flags().StringVarP(&outputFile, "out", "o", "docs/TESTS.md", "output markdown file")
	c.Flags().BoolVar(&integrationOnly, "integration", false, "only include integration tests (*_integration_test.go)")

	return c
}
