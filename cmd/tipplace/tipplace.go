// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tipplace computes where a tooltip is placed and how it is sized
// for a scenario described in a TOML file, and can watch the file for
// changes or preview the result in the terminal.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/tooltip/placement"
	"cogentcore.org/tooltip/tooltip"
)

// Config is the configuration information for the tipplace cli.
type Config struct {

	// Scenario is the TOML file describing the target, viewport,
	// tooltip text, and optional transformed ancestor.
	Scenario string `posarg:"0"`

	// Placement is the requested placement of the tooltip.
	Placement placement.Placements `default:"top"`

	// Padding is the minimum distance between the tooltip and the viewport edges.
	Padding float32 `default:"8"`

	// Gap is the distance between the target and the tooltip.
	Gap float32 `default:"8"`

	// SoftMargin is the overflow tolerated before a placement is rejected.
	SoftMargin float32 `default:"2"`

	// MaxWidth is the maximum width of a multi-line tooltip.
	MaxWidth float32 `default:"320"`

	// MinWidth is the lower bound of the width available to the tooltip.
	MinWidth float32 `default:"48"`

	// RTL mirrors horizontal start and end alignment.
	RTL bool `flag:"rtl"`
}

// Settings returns the tooltip settings of the config.
func (c *Config) Settings() tooltip.Settings {
	return tooltip.Settings{
		Padding:    c.Padding,
		Gap:        c.Gap,
		SoftMargin: c.SoftMargin,
		MaxWidth:   c.MaxWidth,
		MinWidth:   c.MinWidth,
		RTL:        c.RTL,
	}
}

func main() {
	opts := cli.DefaultOptions("tipplace", "Tipplace computes the placement and sizing of a tooltip relative to its target.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Place, Name: "place", Doc: "Place computes and prints the placement of the tooltip in the scenario.", Root: true},
		&cli.Cmd[*Config]{Func: Watch, Name: "watch", Doc: "Watch prints the placement again whenever the scenario file changes."},
		&cli.Cmd[*Config]{Func: Show, Name: "show", Doc: "Show draws the viewport, target, and tooltip in the terminal."},
	)
}
