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
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/ringchart"
	"seehuhn.de/go/ringchart/canvas"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a chart to PNG or PDF",
	Long: `Render a chart to a PNG or PDF file.  The output format is chosen by
the file name extension.

Examples:
  ringchart render --data sales.yaml --out sales.png
  ringchart render --case basic_three_rings --out rings.pdf
  ringchart render --data sales.xlsx --frames frames/ --out final.png
  ringchart render --case basic_single_ring --hover 150,40 --out tip.png`,
	RunE: runRender,
}

func init() {
	addInputFlags(renderCmd)
	renderCmd.Flags().StringP("out", "o", "chart.png", "output file (.png or .pdf)")
	renderCmd.Flags().String("backend", "raster", "PNG rasteriser: raster or vector")
	renderCmd.Flags().String("frames", "", "directory for the animation frames (PNG only)")
	renderCmd.Flags().String("hover", "", "pointer position X,Y for highlight and tooltip")
}

func runRender(cmd *cobra.Command, args []string) error {
	in, err := loadInput(cmd)
	if err != nil {
		return err
	}
	if s, _ := cmd.Flags().GetString("hover"); s != "" {
		p, err := parsePoint(s)
		if err != nil {
			return err
		}
		in.Hover = &p
	}

	out, _ := cmd.Flags().GetString("out")
	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		return renderPNG(cmd, in, out)
	case ".pdf":
		if frames, _ := cmd.Flags().GetString("frames"); frames != "" {
			return errors.New("--frames requires PNG output")
		}
		return renderPDF(in, out)
	default:
		return fmt.Errorf("%s: unsupported output format", out)
	}
}

func renderPNG(cmd *cobra.Command, in *chartInput, out string) error {
	w, h := int(in.Width+0.5), int(in.Height+0.5)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("canvas size %gx%g: %w", in.Width, in.Height, ringchart.ErrInvalidInput)
	}
	bg, err := ringchart.ParseColor(cfg.Canvas.Background)
	if err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	var painter ringchart.Painter
	backend, _ := cmd.Flags().GetString("backend")
	switch backend {
	case "raster":
		p := canvas.NewImage(dst)
		p.Background = bg
		painter = p
	case "vector":
		p := canvas.NewVector(dst)
		p.Background = bg
		painter = p
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
	tip := canvas.NewImageTooltip()
	host := ringchart.Host{Painter: painter, Tooltip: tip}

	framesDir, _ := cmd.Flags().GetString("frames")
	var frames int
	var frameErr error
	if framesDir != "" {
		if err := os.MkdirAll(framesDir, 0o755); err != nil {
			return err
		}
		host.OnAnimationProgress = func(eased, progress float64) {
			if frameErr != nil {
				return
			}
			fname := filepath.Join(framesDir, fmt.Sprintf("frame_%04d.png", frames))
			frameErr = writePNG(fname, dst)
			frames++
		}
	} else {
		in.Options.Animation = false
	}

	chart, err := ringchart.New(in.Width, in.Height, in.Data, in.Options, host)
	if err != nil {
		return err
	}
	defer chart.Destroy()
	if frameErr != nil {
		return frameErr
	}
	if framesDir != "" {
		slog.Info("wrote animation frames", "dir", framesDir, "frames", frames)
	}

	if in.Hover != nil {
		chart.HandleEvent(ringchart.PointerEvent{Type: ringchart.EventMouseMove, X: in.Hover.X, Y: in.Hover.Y})
		slog.Debug("hover", "x", in.Hover.X, "y", in.Hover.Y, "segments", len(chart.Active()))
		tip.Draw(dst)
	}

	if err := writePNG(out, dst); err != nil {
		return err
	}
	slog.Info("rendered chart", "file", out, "backend", backend, "width", w, "height", h)
	return nil
}

func renderPDF(in *chartInput, out string) error {
	if in.Width <= 0 || in.Height <= 0 {
		return fmt.Errorf("canvas size %gx%g: %w", in.Width, in.Height, ringchart.ErrInvalidInput)
	}
	paper := &pdf.Rectangle{URx: in.Width, URy: in.Height}
	page, err := document.CreateSinglePage(out, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	in.Options.Animation = false
	chart, err := ringchart.New(in.Width, in.Height, in.Data, in.Options,
		ringchart.Host{Painter: canvas.NewPDF(page, in.Height)})
	if err != nil {
		page.Close()
		return err
	}
	if in.Hover != nil {
		chart.HandleEvent(ringchart.PointerEvent{Type: ringchart.EventMouseMove, X: in.Hover.X, Y: in.Hover.Y})
	}
	chart.Destroy()

	if err := page.Close(); err != nil {
		return err
	}
	slog.Info("rendered chart", "file", out, "width", in.Width, "height", in.Height)
	return nil
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
