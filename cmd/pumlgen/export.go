package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calumari/pumlgen/internal/errors"
	"github.com/calumari/pumlgen/internal/export"
	"github.com/calumari/pumlgen/internal/logger"
	"github.com/calumari/pumlgen/internal/parser"
)

func (a *app) exportCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the parsed diagram model as json, yaml or toml",
		Long:  "Export parses a diagram and writes its intermediate model. Use - to read stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return errors.Wrapf(err, "read %s", args[0])
			}
			if strings.TrimSpace(string(data)) == "" {
				return errors.Wrapf(errors.ErrEmptyInput, "%s", args[0])
			}

			d, rep := parser.ParseWithReport(string(data))
			for _, s := range rep.Skipped {
				logger.Debugw("skipped line", logger.FieldFile, args[0], logger.FieldLine, s.Line, logger.FieldReason, s.Reason)
			}

			w := cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return errors.Wrapf(err, "create %s", out)
				}
				defer file.Close()
				w = file
			}
			if err := export.Encode(w, d, f); err != nil {
				return err
			}
			logger.Infow("exported diagram", logger.FieldFile, args[0], logger.FieldFormat, string(f))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format ("+strings.Join(export.Formats(), "|")+")")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
