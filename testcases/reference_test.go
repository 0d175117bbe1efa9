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

package testcases

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/ringchart"
	"seehuhn.de/go/ringchart/canvas"
)

// TestAgainstReference compares the raster painter with PNG files made
// by the genpdf command.  Cases without a reference image are skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("..", "testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				w, h := tc.Width, tc.Height
				dst := image.NewRGBA(image.Rect(0, 0, w, h))
				p := canvas.NewImage(dst)
				p.Background = color.White // PDF pages are white
				opts := tc.ChartOptions()
				opts.Animation = false
				chart, err := ringchart.New(float64(w), float64(h), tc.Data, opts, ringchart.Host{Painter: p})
				if err != nil {
					t.Fatal(err)
				}
				if tc.Hover != nil {
					chart.HandleEvent(ringchart.PointerEvent{
						Type: ringchart.EventMouseMove,
						X:    tc.Hover.X,
						Y:    tc.Hover.Y,
					})
				}

				if err := compareImages(name, ref, toGray(dst), w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func loadGray(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return toGray(img), nil
}

func toGray(img image.Image) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	const tolerance = 8
	const maxDiffPercent = 2

	if len(expected) != w*h {
		return fmt.Errorf("reference image has %d pixels, want %d", len(expected), w*h)
	}

	diffCount := 0
	for i := range w * h {
		diff := int(expected[i]) - int(actual[i])
		if diff < -tolerance || diff > tolerance {
			diffCount++
		}
	}

	maxAllowed := w * h * maxDiffPercent / 100
	if diffCount > maxAllowed {
		writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%d pixels differ by >%d (max allowed: %d)",
			diffCount, tolerance, maxAllowed)
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			img.Set(x, y, color.RGBA{
				R: expected[i], // expected in red
				G: actual[i],   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
