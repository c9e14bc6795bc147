package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/tagflow/theme"
)

func themeCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect themes",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print the effective theme as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := g.loadTheme()
			if err != nil {
				return err
			}
			data, err := theme.Marshal(t)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "check <theme.toml>",
		Short: "Validate a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Load(args[0])
			if err != nil {
				return err
			}
			if _, err := t.Resolve(true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", args[0])
			return nil
		},
	})
	return cmd
}
