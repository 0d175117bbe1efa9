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

package ringchart

import (
	"math"
	"testing"
)

func TestLayoutWidthsSum(t *testing.T) {
	for n := 1; n <= 12; n++ {
		l := Layout{
			Width:         400,
			Height:        300,
			StrokeWidth:   2,
			RingCount:     n,
			CutoutPercent: 50,
		}
		sum := 0.0
		for i := range n {
			inner, outer := l.Ring(i)
			sum += outer - inner
		}
		if math.Abs(sum-l.OuterWidth()) > 1e-9 {
			t.Errorf("%d rings: widths sum to %g, want %g", n, sum, l.OuterWidth())
		}
	}
}

func TestLayoutNested(t *testing.T) {
	for _, gap := range []float64{0, 10, 50, 100} {
		l := Layout{
			Width:         500,
			Height:        500,
			StrokeWidth:   2,
			RingCount:     5,
			CutoutPercent: 30,
			GapPercent:    gap,
		}
		_, prevOuter := l.Ring(0)
		for i := 1; i < l.RingCount; i++ {
			inner, outer := l.Ring(i)
			if inner < prevOuter-1e-9 {
				t.Errorf("gap %g: ring %d starts at %g inside ring %d ending at %g",
					gap, i, inner, i-1, prevOuter)
			}
			prevOuter = outer
		}
		if math.Abs(prevOuter-l.OuterRadius()) > 1e-9 {
			t.Errorf("gap %g: outermost ring ends at %g, want %g", gap, prevOuter, l.OuterRadius())
		}
	}
}

func TestLayoutSingleRing(t *testing.T) {
	l := Layout{
		Width:         400,
		Height:        400,
		StrokeWidth:   2,
		RingCount:     1,
		CutoutPercent: 50,
		GapPercent:    40,
	}
	if got := l.GapOffset(0); got != 0 {
		t.Errorf("GapOffset(0) = %g, want 0", got)
	}
	inner, outer := l.Ring(0)
	if inner != 99.75 || outer != 199.5 {
		t.Errorf("Ring(0) = (%g, %g), want (99.75, 199.5)", inner, outer)
	}
}

func TestLayoutTwoRings(t *testing.T) {
	l := Layout{
		Width:         400,
		Height:        400,
		StrokeWidth:   2,
		RingCount:     2,
		CutoutPercent: 50,
		GapPercent:    100,
	}
	// one ring width of gap: three equal bands share 99.75
	w := 99.75 / 3
	inner0, outer0 := l.Ring(0)
	inner1, outer1 := l.Ring(1)
	want := [4]float64{99.75, 99.75 + w, 99.75 + 2*w, 199.5}
	got := [4]float64{inner0, outer0, inner1, outer1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("radius %d = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestOuterRadius(t *testing.T) {
	cases := []struct {
		w, h, stroke float64
		want         float64
	}{
		{400, 300, 2, 149.5},
		{300, 400, 0, 150},
		{0, 0, 2, 0},
		{1, 100, 10, 0},
	}
	for _, c := range cases {
		if got := OuterRadius(c.w, c.h, c.stroke); got != c.want {
			t.Errorf("OuterRadius(%g, %g, %g) = %g, want %g", c.w, c.h, c.stroke, got, c.want)
		}
	}

	l := Layout{RingCount: 0}
	if got := l.SegmentWidth(); got != 0 {
		t.Errorf("SegmentWidth without rings = %g, want 0", got)
	}
}
