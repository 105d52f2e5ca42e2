package rangeio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/arcs/config"
)

// Writer streams result rows as CSV, writing the header with the first row.
type Writer struct {
	out           io.Writer
	headerWritten bool
}

// NewWriter creates a writer on out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteHeader writes the header row if it has not been written yet, so an
// empty batch still produces a valid CSV file.
func (w *Writer) WriteHeader() error {
	if w.headerWritten {
		return nil
	}
	if err := gocsv.Marshal([]Result{}, w.out); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	w.headerWritten = true
	return nil
}

// WriteResult writes one result row.
func (w *Writer) WriteResult(res Result) error {
	records := []Result{res}

	if !w.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		w.headerWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}

	return nil
}

// OutputManager writes results.csv and a config snapshot into a directory.
type OutputManager struct {
	dir         string
	resultsFile *os.File
	*Writer
}

// NewOutputManager creates the output directory and opens results.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	resultsPath := filepath.Join(dir, "results.csv")
	f, err := os.Create(resultsPath)
	if err != nil {
		return nil, fmt.Errorf("creating results.csv: %w", err)
	}

	return &OutputManager{dir: dir, resultsFile: f, Writer: NewWriter(f)}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes results.csv.
func (om *OutputManager) Close() error {
	if om == nil || om.resultsFile == nil {
		return nil
	}
	return om.resultsFile.Close()
}
