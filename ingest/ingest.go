// Package ingest reads record files from disk and parses them with a
// configured record layout.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnolang/parsec/record"
	"github.com/gnolang/parsec/result"
)

// ErrUnreadable marks files that were accepted but could not be read. The
// reports of the other files are still returned alongside it.
var ErrUnreadable = errors.New("unreadable files")

// Report is the outcome of parsing one file. A file that could not be read
// is an error, not a Report; a file whose content does not parse is a Report
// with a Failure.
type Report struct {
	Filename string          `json:"filename"`
	Records  []record.Fields `json:"records"`
	Failure  *result.Error   `json:"failure,omitempty"`
	Line     int             `json:"line,omitempty"` // 1-based line of Failure
	Text     string          `json:"text,omitempty"` // content of that line
}

func (r Report) Failed() bool { return r.Failure != nil }

// RecordEngine parses record files.
type RecordEngine interface {
	Run(filePath string) (Report, error)
	RunSource(name string, source []byte) Report
	Accepts(filePath string) bool
}

// Engine is the RecordEngine driven by a Config.
type Engine struct {
	schema     *record.Schema
	extensions map[string]bool
}

var _ RecordEngine = (*Engine)(nil)

// New loads the configuration file and builds an Engine from it.
func New(configurationPath string) (*Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}
	return NewEngine(config)
}

// NewEngine builds an Engine from config.
func NewEngine(config Config) (*Engine, error) {
	schema, err := record.NewSchema(config.Fields)
	if err != nil {
		return nil, fmt.Errorf("invalid record layout: %w", err)
	}

	extensions := make(map[string]bool, len(config.Extensions))
	for _, ext := range config.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[ext] = true
	}

	return &Engine{schema: schema, extensions: extensions}, nil
}

// Accepts reports whether filePath has one of the configured extensions.
func (e *Engine) Accepts(filePath string) bool {
	return e.extensions[filepath.Ext(filePath)]
}

// Run reads and parses a single file.
func (e *Engine) Run(filePath string) (Report, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return Report{}, fmt.Errorf("error reading %s: %w", filePath, err)
	}
	return e.RunSource(filePath, source), nil
}

// RunSource parses source line by line. Blank lines and lines starting with
// '#' are skipped. Parsing stops at the first line that fails.
func (e *Engine) RunSource(name string, source []byte) Report {
	report := Report{Filename: name, Records: []record.Fields{}}

	lines := strings.Split(string(source), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		r := e.schema.ParseLine(strings.TrimRight(line, "\r"))
		if failure, failed := r.Failure(); failed {
			report.Failure = &failure
			report.Line = i + 1
			report.Text = line
			return report
		}
		fields, _ := r.Value()
		report.Records = append(report.Records, fields)
	}
	return report
}

func ProcessFile(engine RecordEngine, filePath string) (Report, error) {
	return engine.Run(filePath)
}

// ProcessFiles processes every path in order and returns the reports of all
// accepted files. Unreadable files do not stop the run: their errors are
// joined into one ErrUnreadable error returned with the reports.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine RecordEngine,
	paths []string,
	processor func(RecordEngine, string) (Report, error),
) ([]Report, error) {
	var (
		all        []Report
		unreadable []error
	)
	for _, path := range paths {
		reports, err := ProcessPath(ctx, logger, engine, path, processor)
		all = append(all, reports...)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrUnreadable) {
			unreadable = append(unreadable, err)
			continue
		}
		if logger != nil {
			logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
		}
		return nil, err
	}
	return all, errors.Join(unreadable...)
}

// ProcessPath processes a file, or every accepted file below a directory.
// Directory entries are parsed concurrently, one goroutine per CPU at most,
// and reported in walk order.
//
// A file the processor cannot read has no report. It is logged, and the
// returned error wraps ErrUnreadable together with each read error, while the
// reports of the readable files are still returned.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine RecordEngine,
	path string,
	processor func(RecordEngine, string) (Report, error),
) ([]Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !engine.Accepts(path) {
			if logger != nil {
				logger.Debug("Skipping file", zap.String("file", path))
			}
			return nil, nil
		}
		report, err := processor(engine, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
		return []Report{report}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(filePath string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && engine.Accepts(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	type indexed struct {
		index  int
		report Report
		err    error
	}

	// limit the number of workers
	sem := make(chan struct{}, runtime.NumCPU())
	results := make(chan indexed, len(files))

	// drain the workers already started before giving up
	cancelled := func(launched int) ([]Report, error) {
		for range launched {
			<-results
		}
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
		return nil, ctx.Err()
	}

	for i, filePath := range files {
		if ctx.Err() != nil {
			return cancelled(i)
		}
		select {
		case <-ctx.Done():
			return cancelled(i)
		case sem <- struct{}{}:
		}

		go func(i int, fp string) {
			defer func() { <-sem }()

			report, err := processor(engine, fp)
			if err != nil && logger != nil {
				logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
			}
			_ = bar.Add(1)
			results <- indexed{index: i, report: report, err: err}
		}(i, filePath)
	}

	ordered := make([]indexed, len(files))
	for range files {
		r := <-results
		ordered[r.index] = r
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	var unreadable []error
	reports := make([]Report, 0, len(files))
	for _, r := range ordered {
		if r.err != nil {
			unreadable = append(unreadable, r.err)
			continue
		}
		reports = append(reports, r.report)
	}
	if len(unreadable) > 0 {
		return reports, fmt.Errorf("%w: %w", ErrUnreadable, errors.Join(unreadable...))
	}
	return reports, nil
}
