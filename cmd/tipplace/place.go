// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cogentcore.org/tooltip/tooltip"
	"github.com/muesli/termenv"
)

// Place computes and prints the placement of the tooltip in the scenario.
func Place(c *Config) error {
	return c.place(context.Background(), os.Stdout)
}

func (c *Config) place(ctx context.Context, w io.Writer) error {
	sc, err := OpenScenario(c.Scenario)
	if err != nil {
		return err
	}
	ly, res, err := c.run(ctx, sc)
	if err != nil {
		return err
	}
	printResult(w, c, ly, res)
	return nil
}

func printResult(w io.Writer, c *Config, ly *layout, res tooltip.Result) {
	out := termenv.NewOutput(w)
	status := out.String("fits").Foreground(out.Color("2"))
	if !res.Accepted {
		status = out.String("overflows").Foreground(out.Color("1"))
	}
	pl := out.String(res.Placement.String()).Bold()
	if res.Placement != c.Placement {
		pl = pl.Foreground(out.Color("3"))
	}
	box := ly.tip.Box()
	fmt.Fprintf(w, "placement: %s (requested %v, %s)\n", pl, c.Placement, status)
	fmt.Fprintf(w, "position:  left %g, top %g\n", res.Pos.X, res.Pos.Y)
	if res.Pos != res.ViewportPos {
		fmt.Fprintf(w, "viewport:  left %g, top %g\n", res.ViewportPos.X, res.ViewportPos.Y)
	}
	fmt.Fprintf(w, "size:      %g x %g\n", box.Size().X, box.Size().Y)
	fmt.Fprintf(w, "sizing:    %v\n", res.Sizing)
}
