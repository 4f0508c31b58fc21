// Package rename enumerates input PDFs, drives extraction per file, and
// moves each file to its new name, tolerating per-file failures.
package rename

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/anwarhahn/pdf-renamer/internal/extract"
	"github.com/anwarhahn/pdf-renamer/internal/history"
	"github.com/anwarhahn/pdf-renamer/internal/pdfio"
	"github.com/anwarhahn/pdf-renamer/pkg/types"
)

// PageTextFunc yields the first page's plain text for a PDF path. Tests
// substitute it to avoid real PDF fixtures.
type PageTextFunc func(path string) (string, error)

// Outcome records the result of one file's processing.
type Outcome struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates a batch rename run.
type Summary struct {
	Renamed  int       `json:"renamed" yaml:"renamed"`
	Failed   int       `json:"failed" yaml:"failed"`
	Outcomes []Outcome `json:"files,omitempty" yaml:"files,omitempty"`
}

// Total returns the number of files processed.
func (s Summary) Total() int {
	return s.Renamed + s.Failed
}

// HasFailures reports whether any file failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Runner processes every *.pdf file in the input directory, one at a
// time, fully sequentially.
type Runner struct {
	cfg       types.RenameConfig
	extractor *extract.Extractor
	ledger    *history.Store // nil when the ledger is disabled
	pageText  PageTextFunc
	w         io.Writer
}

// NewRunner wires a batch runner. ledger may be nil.
func NewRunner(cfg types.RenameConfig, ex *extract.Extractor, ledger *history.Store, w io.Writer) *Runner {
	return &Runner{
		cfg:       cfg,
		extractor: ex,
		ledger:    ledger,
		pageText:  pdfio.FirstPageText,
		w:         w,
	}
}

// Run processes the batch. A missing input directory or an empty one is a
// trivial success. A missing output directory is an error before any file
// is touched. Per-file failures are logged and counted; the batch always
// continues with the next file.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if _, err := os.Stat(r.cfg.InputDir); err != nil {
		return Summary{}, nil
	}

	files, err := filepath.Glob(filepath.Join(r.cfg.InputDir, "*.pdf"))
	if err != nil {
		return Summary{}, fmt.Errorf("listing %s: %w", r.cfg.InputDir, err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		return Summary{}, nil
	}

	if _, err := os.Stat(r.cfg.OutputDir); err != nil {
		return Summary{}, fmt.Errorf("output directory %s does not exist", r.cfg.OutputDir)
	}

	fmt.Fprintf(r.w, "found %d files to rename\n", len(files))

	var summary Summary
	for i, path := range files {
		fmt.Fprintf(r.w, "[%d/%d] %s\n", i+1, len(files), filepath.Base(path))

		target, err := r.processFile(ctx, path)
		if err != nil {
			fmt.Fprintf(r.w, "  failed: %v\n", err)
			summary.Failed++
			summary.Outcomes = append(summary.Outcomes, Outcome{Source: path, Error: err.Error()})
			continue
		}

		fmt.Fprintf(r.w, "  renamed -> %s\n", filepath.Base(target))
		summary.Renamed++
		summary.Outcomes = append(summary.Outcomes, Outcome{Source: path, Target: target})
	}

	fmt.Fprintf(r.w, "\nrenamed: %d, failed: %d\n", summary.Renamed, summary.Failed)
	return summary, nil
}

// processFile handles one PDF: read first-page text, extract fields,
// build a collision-free target path, and move the file.
func (r *Runner) processFile(ctx context.Context, path string) (string, error) {
	text, err := r.pageText(path)
	if err != nil {
		return "", err
	}

	date, err := r.extractor.PublishDate(ctx, text)
	if err != nil {
		return "", err
	}
	if date == "" {
		date = extract.SentinelDate
	}

	filename := filepath.Base(path)
	title, publisher, err := r.extractor.TitlePublisher(ctx, filename)
	if err != nil {
		return "", err
	}

	title = extract.KebabCase(title)
	publisher = extract.KebabCase(publisher)

	target := OutputPath(r.cfg.OutputDir, date, publisher, title, filepath.Ext(path))
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("moving %s: %w", filename, err)
	}

	if r.ledger != nil {
		entry := history.Entry{
			Source:      path,
			Target:      target,
			PublishDate: date,
			Publisher:   publisher,
			Title:       title,
		}
		if err := r.ledger.Record(ctx, entry); err != nil {
			fmt.Fprintf(r.w, "  warning: ledger write failed: %v\n", err)
		}
	}

	return target, nil
}

// WriteReport marshals the summary to a YAML file at path.
func WriteReport(path string, summary Summary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
