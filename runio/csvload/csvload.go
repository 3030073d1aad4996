// Package csvload parses tabular run logs into (x, y) column pairs for the
// curve pipeline. Column names for the step and metric columns are
// configurable; everything else in a log is ignored.
package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-curves/curve/band"
)

// Errors returned by the loader. Parse errors from the csv and strconv
// layers are wrapped, not replaced.
var (
	ErrMissingColumn = errors.New("csvload: column not found")
	ErrEmptyFile     = errors.New("csvload: missing header row")
)

// Option configures column selection.
type Option func(*config)

type config struct {
	stepColumn   string
	metricColumn string
}

func defaultConfig() config {
	return config{
		stepColumn:   "step",
		metricColumn: "episode_reward",
	}
}

// WithStepColumn selects the column holding the x values.
func WithStepColumn(name string) Option {
	return func(c *config) {
		if name != "" {
			c.stepColumn = name
		}
	}
}

// WithMetricColumn selects the column holding the y values.
func WithMetricColumn(name string) Option {
	return func(c *config) {
		if name != "" {
			c.metricColumn = name
		}
	}
}

// Load reads one run log from a CSV file. The first row must be a header
// naming both the step and metric columns.
func Load(path string, opts ...Option) (band.Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return band.Run{}, fmt.Errorf("csvload: %w", err)
	}
	defer f.Close()

	run, err := Read(f, opts...)
	if err != nil {
		return band.Run{}, fmt.Errorf("%s: %w", path, err)
	}
	return run, nil
}

// Read parses one run log from r. See Load.
func Read(r io.Reader, opts ...Option) (band.Run, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return band.Run{}, ErrEmptyFile
	}
	if err != nil {
		return band.Run{}, fmt.Errorf("csvload: %w", err)
	}

	stepIdx, err := columnIndex(header, cfg.stepColumn)
	if err != nil {
		return band.Run{}, err
	}
	metricIdx, err := columnIndex(header, cfg.metricColumn)
	if err != nil {
		return band.Run{}, err
	}

	var run band.Run
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return band.Run{}, fmt.Errorf("csvload: %w", err)
		}
		line++

		x, err := strconv.ParseFloat(record[stepIdx], 64)
		if err != nil {
			return band.Run{}, fmt.Errorf("csvload: line %d, column %q: %w", line, cfg.stepColumn, err)
		}

		y, err := strconv.ParseFloat(record[metricIdx], 64)
		if err != nil {
			return band.Run{}, fmt.Errorf("csvload: line %d, column %q: %w", line, cfg.metricColumn, err)
		}

		run.X = append(run.X, x)
		run.Y = append(run.Y, y)
	}

	return run, nil
}

// LoadGroup reads all run logs of one configuration into a named group.
func LoadGroup(name string, paths []string, opts ...Option) (band.Group, error) {
	g := band.Group{Name: name, Runs: make([]band.Run, 0, len(paths))}

	for _, path := range paths {
		run, err := Load(path, opts...)
		if err != nil {
			return band.Group{}, err
		}
		g.Runs = append(g.Runs, run)
	}

	return g, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}
