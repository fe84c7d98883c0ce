package convert

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/calumari/pumlgen/internal/errors"
	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/generator/languages"
	"github.com/calumari/pumlgen/internal/logger"
	"github.com/calumari/pumlgen/internal/model"
	"github.com/calumari/pumlgen/internal/parser"
)

// StdinName labels a diagram read from Config.Stdin.
const StdinName = "stdin"

// Config describes one generation run.
type Config struct {
	Inputs    []string  // file names or doublestar patterns; empty reads Stdin
	Stdin     io.Reader // used when Inputs is empty
	Languages []string  // keys, aliases, comma lists or "all"
	OutDir    string    // empty keeps the output in the Summary only
	Options   generator.Options
	Indent    map[string]int // per-language indent override, keyed by language key
	Jobs      int            // concurrent generators; 0 means GOMAXPROCS
}

// Output is one rendered file.
type Output struct {
	Input    string
	Language string
	Path     string // empty when nothing was written
	Text     string
}

// Summary reports what a run produced.
type Summary struct {
	Inputs  []string
	Outputs []Output
	Skipped int // lines the parser dropped across all inputs
}

type source struct {
	name    string
	diagram *model.Diagram
}

// Run parses every input once and renders it for each language. Outputs
// are ordered by input, then by language in the order given.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	start := time.Now()
	langs, err := languages.Resolve(cfg.Languages)
	if err != nil {
		return nil, err
	}

	sources, skipped, err := load(cfg)
	if err != nil {
		return nil, err
	}
	sum := &Summary{Skipped: skipped}
	for _, s := range sources {
		sum.Inputs = append(sum.Inputs, s.name)
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]Output, len(sources)*len(langs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, s := range sources {
		i, s := i, s
		for j, lang := range langs {
			j, lang := j, lang
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				out, err := render(cfg, s, lang)
				if err != nil {
					return err
				}
				results[i*len(langs)+j] = out
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sum.Outputs = results

	logger.Infow("generation finished",
		logger.FieldCount, len(results),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return sum, nil
}

// load reads and parses the inputs.
func load(cfg Config) ([]source, int, error) {
	if len(cfg.Inputs) == 0 {
		if cfg.Stdin == nil {
			return nil, 0, errors.WithHint(errors.WithStack(errors.ErrNoInputs), "pass diagram files or pipe a diagram on stdin")
		}
		data, err := io.ReadAll(cfg.Stdin)
		if err != nil {
			return nil, 0, errors.Wrap(err, "read stdin")
		}
		s, n, err := parse(StdinName, string(data))
		if err != nil {
			return nil, 0, err
		}
		return []source{s}, n, nil
	}

	files, err := ExpandInputs(cfg.Inputs)
	if err != nil {
		return nil, 0, err
	}
	var (
		out     []source
		skipped int
	)
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "read %s", f)
		}
		s, n, err := parse(f, string(data))
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
		skipped += n
	}
	return out, skipped, nil
}

func parse(name, text string) (source, int, error) {
	if strings.TrimSpace(text) == "" {
		return source{}, 0, errors.Wrapf(errors.ErrEmptyInput, "%s", name)
	}
	d, report := parser.ParseWithReport(text)
	for _, s := range report.Skipped {
		logger.Debugw("skipped line",
			logger.FieldFile, name,
			logger.FieldLine, s.Line,
			logger.FieldReason, s.Reason)
	}
	logger.Infow("parsed diagram",
		logger.FieldFile, name,
		logger.FieldClasses, len(d.Classes),
		logger.FieldInterfaces, len(d.Interfaces),
		logger.FieldEnums, len(d.Enums))
	return source{name: name, diagram: d}, report.Len(), nil
}

func render(cfg Config, s source, lang string) (Output, error) {
	opts := cfg.Options
	if opts.Source == "" {
		opts.Source = filepath.Base(s.name)
	}
	if n, ok := cfg.Indent[lang]; ok {
		opts.IndentSize = n
	}
	g, err := languages.New(lang, opts)
	if err != nil {
		return Output{}, err
	}
	out := Output{Input: s.name, Language: lang, Text: generator.Generate(s.diagram, g)}
	if cfg.OutDir == "" {
		return out, nil
	}

	out.Path = OutputPath(cfg.OutDir, s.name, lang, g.FileExtension())
	if err := os.MkdirAll(filepath.Dir(out.Path), 0o755); err != nil {
		return Output{}, errors.Wrapf(err, "create %s", filepath.Dir(out.Path))
	}
	if err := os.WriteFile(out.Path, []byte(out.Text), 0o644); err != nil {
		return Output{}, errors.Wrapf(err, "write %s", out.Path)
	}
	logger.Infow("wrote file",
		logger.FieldFile, s.name,
		logger.FieldLanguage, lang,
		logger.FieldOutput, out.Path)
	return out, nil
}

// OutputPath is <dir>/<lang>/<input base name>.<ext>.
func OutputPath(dir, input, lang, ext string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, lang, base+"."+ext)
}
