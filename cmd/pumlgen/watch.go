package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calumari/pumlgen/internal/convert"
	"github.com/calumari/pumlgen/internal/logger"
	"github.com/calumari/pumlgen/internal/watch"
)

func (a *app) watchCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:     "watch files or globs...",
		Short:   "Regenerate code whenever a diagram changes",
		Example: `  pumlgen watch 'diagrams/**/*.puml' --lang java,kotlin --out gen`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := a.runConfig(&f, args, nil)
			if sum, err := convert.Run(cmd.Context(), rc); err != nil {
				logger.Warnw("initial generation failed", logger.FieldError, err)
			} else {
				report(cmd.OutOrStdout(), cmd.ErrOrStderr(), sum)
			}

			debounce := time.Duration(a.cfg.Watch.DebounceMS) * time.Millisecond
			w, err := watch.New(args, debounce, func(ctx context.Context, files []string) error {
				changed := rc
				changed.Inputs = files
				sum, err := convert.Run(ctx, changed)
				if err != nil {
					return err
				}
				report(cmd.OutOrStdout(), cmd.ErrOrStderr(), sum)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (ctrl-c to stop)\n", color.CyanString("watching"), strings.Join(args, ", "))
			return w.Run(cmd.Context())
		},
	}
	f.register(cmd.Flags())
	return cmd
}
