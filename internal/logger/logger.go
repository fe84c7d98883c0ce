// Package logger holds the process-wide structured logger. It is a no-op
// until Initialize is called, so library code can log unconditionally.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calumari/pumlgen/internal/errors"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON encoding
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Options configures Initialize.
type Options struct {
	JSON  bool
	Level string    // debug, info, warn or error; empty means info
	Out   io.Writer // defaults to stderr
}

// Initialize replaces the global logger.
func Initialize(opts Options) error {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return errors.WithHint(errors.Wrapf(err, "log level %q", opts.Level), "use debug, info, warn or error")
		}
		level = l
	}
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.CallerKey = ""
		cfg.StacktraceKey = ""
		cfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	JSONOutput = opts.JSON
	Logger = zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), level)).Sugar()
	return nil
}

// Sync flushes buffered log entries.
func Sync() { _ = Logger.Sync() }

func Debugw(msg string, kv ...any) { Logger.Debugw(msg, kv...) }
func Infow(msg string, kv ...any)  { Logger.Infow(msg, kv...) }
func Warnw(msg string, kv ...any)  { Logger.Warnw(msg, kv...) }
func Errorw(msg string, kv ...any) { Logger.Errorw(msg, kv...) }
