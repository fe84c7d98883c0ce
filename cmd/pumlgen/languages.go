package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/generator/languages"
)

func (a *app) languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported target languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			key := color.New(color.Bold)
			for _, l := range languages.List() {
				g := l.New(generator.Options{})
				aliases := strings.Join(l.Aliases, ", ")
				if aliases == "" {
					aliases = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s .%s\n", key.Sprintf("%-12s", l.Key), aliases, g.FileExtension())
			}
		},
	}
}
