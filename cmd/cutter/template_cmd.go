package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/cutter/internal/demo"
	"github.com/raphi011/cutter/internal/greet"
	"github.com/raphi011/cutter/internal/output"
)

func newHelloCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hello <name>",
		Short:   "Greet someone by name",
		GroupID: GroupTemplate,
		Args:    cobra.ExactArgs(1),
		Example: `  cutter hello Developer   # Hello, Developer!`,
		RunE: func(c *cobra.Command, args []string) error {
			output.FromContext(c.Context()).Println(greet.Greet(args[0]))
			return nil
		},
	}
}

func newItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "item <item>",
		Short:   "Echo a single item",
		GroupID: GroupTemplate,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			output.FromContext(c.Context()).Printf("Item: %s\n", args[0])
			return nil
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   "Show the styled output demo",
		GroupID: GroupTemplate,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			output.FromContext(c.Context()).Print(demo.Render())
			return nil
		},
	}
}
