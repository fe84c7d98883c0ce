package main

import (
	"fmt"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// deriveVersion inspects build info for module version or vcs revision.
// preference order: module semantic version -> short commit hash -> "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) >= 12 {
			return revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pumlgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pumlgen %s\n", color.New(color.Bold).Sprint(a.version))
		},
	}
}
