package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/banglastudy/dataqc/internal/profile"
)

func newProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List and inspect builtin scoring profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List builtin profile names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range profile.Names() {
				marker := " "
				if name == profile.DefaultName {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name) //nolint:errcheck
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print a builtin profile as YAML",
		Long: `Show prints the full configuration of a builtin profile. The output is a
valid profile file: save it, edit the numbers, and pass the file to
analyze --profile.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.Builtin(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(p)
			if err != nil {
				return fmt.Errorf("marshaling profile: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data)) //nolint:errcheck
			return nil
		},
	})

	return cmd
}
