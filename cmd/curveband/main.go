// Command curveband plots median curves with interquartile bands from
// groups of experiment run logs.
//
// Usage:
//
//	curveband -spec plot.hcl
//	curveband [flags] run1.csv,run2.csv [run3.csv,run4.csv ...]
//
// Each positional argument is one group: a comma-separated list of CSV run
// logs for a single configuration. Group labels and colors are assigned in
// argument order.
//
// Examples:
//
//	curveband -spec plot.hcl
//	curveband -labels SAC sac_1.csv,sac_2.csv,sac_3.csv
//	curveband -smoothing 1 -o raw.png sac_1.csv,sac_2.csv
//	curveband -labels "SAC,PEBBLE" -metric-key success_rate sac_*.csv pebble_*.csv
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/algo-curves/config"
	"github.com/cwbudde/algo-curves/curve/band"
	"github.com/cwbudde/algo-curves/render"
	"github.com/cwbudde/algo-curves/runio/csvload"
)

func main() {
	specPath := flag.String("spec", "", "HCL plot spec; overrides all other flags")
	labels := flag.String("labels", "", "comma-separated legend labels, one per group")
	colors := flag.String("colors", "", "comma-separated #rrggbb colors, one per group")
	smoothing := flag.Int("smoothing", 5, "smoothing window; 1 disables smoothing")
	padding := flag.Int("padding", 10, "kernel width multiplier for smoothing")
	maxRange := flag.Int("max-range", 0, "shared reference length for the smoothing window (0: per-run)")
	stepKey := flag.String("step-key", "step", "CSV column holding step counts")
	metricKey := flag.String("metric-key", "episode_reward", "CSV column holding the metric")
	title := flag.String("title", "Learning Curve", "plot title")
	xlabel := flag.String("xlabel", "Environment Steps", "x-axis label")
	ylabel := flag.String("ylabel", "Episode Reward", "y-axis label")
	out := flag.String("o", "curves.png", "output file (.png, .svg, .pdf)")
	verbose := flag.Bool("v", false, "verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: curveband [flags] run1.csv,run2.csv [group ...]\n\n")
		fmt.Fprintf(os.Stderr, "Plots per-group median curves with interquartile bands.\n")
		fmt.Fprintf(os.Stderr, "Each positional argument is one group of comma-separated run logs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  curveband -spec plot.hcl\n")
		fmt.Fprintf(os.Stderr, "  curveband -labels SAC sac_1.csv,sac_2.csv\n")
		fmt.Fprintf(os.Stderr, "  curveband -labels \"SAC,PEBBLE\" sac_*.csv pebble_*.csv\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	spec, err := resolveSpec(*specPath, flag.Args(), flagSpec{
		labels:    *labels,
		colors:    *colors,
		smoothing: *smoothing,
		padding:   *padding,
		maxRange:  *maxRange,
		stepKey:   *stepKey,
		metricKey: *metricKey,
		title:     *title,
		xlabel:    *xlabel,
		ylabel:    *ylabel,
		out:       *out,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(spec, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// flagSpec carries the flag-mode settings into spec construction.
type flagSpec struct {
	labels    string
	colors    string
	smoothing int
	padding   int
	maxRange  int
	stepKey   string
	metricKey string
	title     string
	xlabel    string
	ylabel    string
	out       string
}

// resolveSpec builds the plot spec either from an HCL file or from flags
// plus positional group arguments.
func resolveSpec(specPath string, groups []string, fs flagSpec) (*config.Spec, error) {
	if specPath != "" {
		return config.Load(specPath)
	}

	if len(groups) == 0 {
		return nil, fmt.Errorf("no run groups given")
	}

	labels := splitList(fs.labels)
	colors := splitList(fs.colors)

	spec := &config.Spec{
		Title:     fs.title,
		XLabel:    fs.xlabel,
		YLabel:    fs.ylabel,
		Output:    fs.out,
		Smoothing: fs.smoothing,
		Padding:   fs.padding,
		MaxRange:  fs.maxRange,
		StepKey:   fs.stepKey,
		MetricKey: fs.metricKey,
	}

	for i, g := range groups {
		gs := config.GroupSpec{
			Name: fmt.Sprintf("group-%d", i+1),
			CSVs: splitList(g),
		}
		if i < len(labels) {
			gs.Name = labels[i]
			gs.Label = labels[i]
		}
		if i < len(colors) {
			gs.Color = colors[i]
		}
		spec.Groups = append(spec.Groups, gs)
	}

	return spec, nil
}

// run loads every group, summarizes it, and renders the chart.
func run(spec *config.Spec, logger *slog.Logger) error {
	chart := render.NewChart(spec.Title, spec.XLabel, spec.YLabel)

	loadOpts := []csvload.Option{
		csvload.WithStepColumn(spec.StepKey),
		csvload.WithMetricColumn(spec.MetricKey),
	}

	bandOpts := []band.Option{
		band.WithSmoothing(spec.Smoothing, spec.Padding),
	}
	if spec.MaxRange > 0 {
		bandOpts = append(bandOpts, band.WithReferenceLength(spec.MaxRange))
	}

	for i, gs := range spec.Groups {
		group, err := csvload.LoadGroup(gs.Name, gs.CSVs, loadOpts...)
		if err != nil {
			return err
		}
		logger.Debug("loaded group", "group", gs.Name, "runs", len(group.Runs))

		summary, err := band.Summarize(group, bandOpts...)
		if err != nil {
			return fmt.Errorf("group %q: %w", gs.Name, err)
		}
		logger.Info("summarized group",
			"group", gs.Name, "runs", len(group.Runs), "positions", summary.Len())

		col := render.PaletteColor(i)
		if gs.Color != "" {
			col, err = render.ParseHexColor(gs.Color)
			if err != nil {
				return err
			}
		}

		label := gs.Label
		if label == "" {
			label = gs.Name
		}

		if err := chart.Add(render.Curve{Label: label, Color: col, Summary: summary}); err != nil {
			return err
		}
	}

	if err := chart.Save(spec.Output); err != nil {
		return err
	}
	logger.Info("wrote plot", "path", spec.Output)

	return nil
}

// splitList splits a comma-separated flag value, trimming whitespace and
// dropping empty items.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
