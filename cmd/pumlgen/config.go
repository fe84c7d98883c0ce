package main

import (
	"github.com/spf13/cobra"

	"github.com/calumari/pumlgen/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long:  "Config prints the merged defaults, pumlgen.toml and PUMLGEN_* settings. Redirect it to pumlgen.toml to start a project file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Write(cmd.OutOrStdout(), a.cfg)
		},
	}
}
