// Package config decodes an HCL plot spec: one group block per
// configuration plus top-level smoothing and presentation attributes.
//
//	title  = "Learning Curve"
//	output = "curves.png"
//
//	smoothing = 5
//	padding   = 10
//
//	group "sac" {
//	  label = "SAC"
//	  csvs  = ["runs/sac_1.csv", "runs/sac_2.csv"]
//	  color = palette.blue
//	}
//
// Specs are evaluated with a predefined palette object, so colors can be
// written as palette.blue/orange/green/red or as literal #rrggbb strings.
// Smoothing defaults to 5; set smoothing = 1 to disable it.
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/cwbudde/algo-curves/render"
)

// Errors returned while validating a decoded spec.
var (
	ErrNoGroups = errors.New("config: spec has no group blocks")
	ErrNoRuns   = errors.New("config: group has no csvs")
)

// Spec is a decoded plot spec with defaults applied.
type Spec struct {
	Title  string `hcl:"title,optional"`
	XLabel string `hcl:"xlabel,optional"`
	YLabel string `hcl:"ylabel,optional"`
	Output string `hcl:"output,optional"`

	Smoothing int `hcl:"smoothing,optional"`
	Padding   int `hcl:"padding,optional"`
	MaxRange  int `hcl:"max_range,optional"`

	StepKey   string `hcl:"step_key,optional"`
	MetricKey string `hcl:"metric_key,optional"`

	Groups []GroupSpec `hcl:"group,block"`
}

// GroupSpec names the runs of one configuration.
type GroupSpec struct {
	Name  string   `hcl:"name,label"`
	Label string   `hcl:"label,optional"`
	CSVs  []string `hcl:"csvs"`
	Color string   `hcl:"color,optional"`
}

// Load parses and validates a plot spec file.
func Load(path string) (*Spec, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w", path, diags)
	}

	return decode(file)
}

// Parse decodes a plot spec from source. The filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Spec, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w", filename, diags)
	}

	return decode(file)
}

func decode(file *hcl.File) (*Spec, error) {
	var spec Spec

	diags := gohcl.DecodeBody(file.Body, evalContext(), &spec)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode: %w", diags)
	}

	spec.applyDefaults()

	if err := spec.validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// evalContext exposes the default palette to spec expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(map[string]cty.Value{
				"blue":   cty.StringVal("#1f77b4"),
				"orange": cty.StringVal("#ff7f0e"),
				"green":  cty.StringVal("#2ca02c"),
				"red":    cty.StringVal("#d62728"),
			}),
		},
	}
}

func (s *Spec) applyDefaults() {
	if s.Title == "" {
		s.Title = "Learning Curve"
	}
	if s.XLabel == "" {
		s.XLabel = "Environment Steps"
	}
	if s.YLabel == "" {
		s.YLabel = "Episode Reward"
	}
	if s.Output == "" {
		s.Output = "curves.png"
	}
	if s.Smoothing == 0 {
		s.Smoothing = 5
	}
	if s.Padding == 0 {
		s.Padding = 10
	}
	if s.StepKey == "" {
		s.StepKey = "step"
	}
	if s.MetricKey == "" {
		s.MetricKey = "episode_reward"
	}

	for i := range s.Groups {
		if s.Groups[i].Label == "" {
			s.Groups[i].Label = s.Groups[i].Name
		}
	}
}

func (s *Spec) validate() error {
	if len(s.Groups) == 0 {
		return ErrNoGroups
	}

	for _, g := range s.Groups {
		if len(g.CSVs) == 0 {
			return fmt.Errorf("%w: %q", ErrNoRuns, g.Name)
		}
		if g.Color != "" {
			if _, err := render.ParseHexColor(g.Color); err != nil {
				return fmt.Errorf("config: group %q: %w", g.Name, err)
			}
		}
	}

	return nil
}
