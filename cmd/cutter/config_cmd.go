package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/cutter/internal/config"
	"github.com/raphi011/cutter/internal/output"
	"github.com/raphi011/cutter/internal/ui/static"
	"github.com/raphi011/cutter/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "config",
		Short:   "Print the effective configuration",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Print the configuration after merging the global file and the
project's .cutter.toml, as TOML.`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			s, err := config.FromContext(ctx).Encode()
			if err != nil {
				return err
			}
			output.FromContext(ctx).Print(s)
			return nil
		},
	}

	c.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "List the config files consulted, lowest priority first",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			var rows [][]string
			for _, p := range config.Paths(config.WorkDirFromContext(ctx)) {
				state := styles.MutedStyle.Render("missing")
				if _, err := os.Stat(p); err == nil {
					state = styles.SuccessStyle.Render("found")
				} else if !errors.Is(err, os.ErrNotExist) {
					state = styles.ErrorStyle.Render(err.Error())
				}
				rows = append(rows, []string{p, state})
			}
			output.FromContext(ctx).Print(static.RenderTable([]string{"PATH", "STATE"}, rows))
			return nil
		},
	})

	return c
}
