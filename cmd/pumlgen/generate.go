package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/calumari/pumlgen/internal/convert"
	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/generator/languages"
)

// genFlags are shared by generate and watch.
type genFlags struct {
	langs    []string
	out      string
	indent   int
	pkg      string
	noBanner bool
}

func (f *genFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&f.langs, "lang", "l", nil, "target languages, comma separated, or all (default from config)")
	fs.StringVarP(&f.out, "out", "o", "", "output directory; files go to <out>/<lang>/<name>.<ext> (default stdout)")
	fs.IntVar(&f.indent, "indent", 0, "indent width for every language (0 keeps each language's default)")
	fs.StringVar(&f.pkg, "package", "", "package name for Go output")
	fs.BoolVar(&f.noBanner, "no-banner", false, "omit the generated-code banner")
}

// runConfig merges flags over the loaded configuration.
func (a *app) runConfig(f *genFlags, inputs []string, stdin io.Reader) convert.Config {
	langs := f.langs
	if len(langs) == 0 {
		langs = a.cfg.Languages
	}
	out := f.out
	if out == "" {
		out = a.cfg.Output.Dir
	}
	indent := a.cfg.Indents()
	if f.indent > 0 {
		for _, k := range languages.Keys() {
			indent[k] = f.indent
		}
	}
	pkg := f.pkg
	if pkg == "" {
		pkg = a.cfg.Go.Package
	}
	return convert.Config{
		Inputs:    inputs,
		Stdin:     stdin,
		Languages: langs,
		OutDir:    out,
		Indent:    indent,
		Options: generator.Options{
			Banner:      a.cfg.Banner && !f.noBanner,
			Version:     a.version,
			PackageName: pkg,
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "generate [files or globs...]",
		Short: "Generate source code from class diagrams",
		Long:  "Generate parses each diagram once and renders it for every requested language. Without arguments the diagram is read from stdin.",
		Example: `  pumlgen generate shop.puml --lang java
  pumlgen generate 'diagrams/**/*.puml' --lang ts,go --out gen
  cat shop.puml | pumlgen generate --lang all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := convert.Run(cmd.Context(), a.runConfig(&f, args, cmd.InOrStdin()))
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), cmd.ErrOrStderr(), sum)
			return nil
		},
	}
	f.register(cmd.Flags())
	return cmd
}

// report prints generated text to stdout, or the written paths to stderr
// when files were written.
func report(stdout, stderr io.Writer, sum *convert.Summary) {
	for i, o := range sum.Outputs {
		if o.Path != "" {
			fmt.Fprintf(stderr, "%s %s\n", color.GreenString("wrote"), o.Path)
			continue
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprint(stdout, o.Text)
	}
	if sum.Skipped > 0 {
		fmt.Fprintf(stderr, "%s %d line(s) not recognized; rerun with --log-level debug to list them\n", color.YellowString("warning:"), sum.Skipped)
	}
}
