// seehuhn.de/go/ringchart - multi-ring doughnut charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ringchart"
	"seehuhn.de/go/ringchart/internal/dataset"
	"seehuhn.de/go/ringchart/testcases"
)

// chartInput is everything needed to construct a chart.
type chartInput struct {
	Data          [][]ringchart.Datapoint
	Options       ringchart.Options
	Width, Height float64
	Hover         *vec.Vec2
}

// addInputFlags registers the flags read by loadInput.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "", "data file (.json, .yaml or .xlsx)")
	cmd.Flags().String("case", "", "built-in example chart (see \"ringchart cases\")")
	cmd.Flags().Float64("width", 0, "canvas width (default from config)")
	cmd.Flags().Float64("height", 0, "canvas height (default from config)")
	cmd.MarkFlagsMutuallyExclusive("data", "case")
	cmd.MarkFlagsOneRequired("data", "case")
}

func loadInput(cmd *cobra.Command) (*chartInput, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	in := &chartInput{
		Options: opts,
		Width:   cfg.Canvas.Width,
		Height:  cfg.Canvas.Height,
	}

	if name, _ := cmd.Flags().GetString("case"); name != "" {
		tc, ok := testcases.Find(name)
		if !ok {
			return nil, fmt.Errorf("unknown case %q", name)
		}
		in.Data = tc.Data
		in.Width, in.Height = float64(tc.Width), float64(tc.Height)
		if tc.Options != nil {
			tc.Options(&in.Options)
		}
		in.Hover = tc.Hover
		slog.Debug("using example chart", "case", name)
	} else {
		fname, _ := cmd.Flags().GetString("data")
		in.Data, err = dataset.Load(fname)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded data", "file", fname, "rings", len(in.Data))
	}

	if w, _ := cmd.Flags().GetFloat64("width"); w > 0 {
		in.Width = w
	}
	if h, _ := cmd.Flags().GetFloat64("height"); h > 0 {
		in.Height = h
	}
	return in, nil
}

var errPoint = errors.New("point must have the form X,Y")

// parsePoint parses a point given as "X,Y".
func parsePoint(s string) (vec.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return vec.Vec2{}, fmt.Errorf("%q: %w", s, errPoint)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("%q: %w", s, errPoint)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("%q: %w", s, errPoint)
	}
	return vec.Vec2{X: x, Y: y}, nil
}
