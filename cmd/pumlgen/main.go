// Command pumlgen converts PlantUML class diagrams into source code.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calumari/pumlgen/internal/config"
	"github.com/calumari/pumlgen/internal/errors"
	"github.com/calumari/pumlgen/internal/logger"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfg     *config.Config
	version string
}

func newRootCmd() *cobra.Command {
	a := &app{version: deriveVersion()}
	root := &cobra.Command{
		Use:               "pumlgen",
		Short:             "Generate source code from PlantUML class diagrams",
		Long:              "pumlgen parses PlantUML class diagrams and renders classes, interfaces and enums as skeleton code for Java, Kotlin, C#, C++, TypeScript, Python, Go and Rust.",
		Version:           a.version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: pumlgen.toml searched upwards)")
	pf.Bool("log-json", false, "emit logs as JSON")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.String("color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(
		a.generateCmd(),
		a.watchCmd(),
		a.exportCmd(),
		a.languagesCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads configuration and initializes logging and color before any
// subcommand runs. Flags override the configuration file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	switch mode, _ := flags.GetString("color"); mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
	default:
		return errors.WithHint(errors.Newf("invalid --color %q", mode), "use auto, on or off")
	}

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON, _ = flags.GetBool("log-json")
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := logger.Initialize(logger.Options{JSON: cfg.Log.JSON, Level: cfg.Log.Level, Out: cmd.ErrOrStderr()}); err != nil {
		return err
	}
	if cfg.File != "" {
		logger.Debugw("loaded config", logger.FieldFile, cfg.File)
	}
	a.cfg = cfg
	return nil
}

// printError writes err and any attached hints.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("pumlgen:"), err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("hint:"), hint)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	stop()
	logger.Sync()
	if err != nil {
		printError(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}
