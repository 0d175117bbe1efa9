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
	"errors"
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	names := EasingNames()
	if len(names) != 31 {
		t.Errorf("%d easing curves, want 31", len(names))
	}
	for _, name := range names {
		fn, err := EasingByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := Ease(fn, 0); math.Abs(got) > 1e-3 {
			t.Errorf("%s(0) = %g", name, got)
		}
		if got := Ease(fn, 1); math.Abs(got-1) > 1e-3 {
			t.Errorf("%s(1) = %g", name, got)
		}
	}
}

func TestEasingShape(t *testing.T) {
	lin, _ := EasingByName("linear")
	if got := Ease(lin, 0.3); math.Abs(got-0.3) > 1e-6 {
		t.Errorf("linear(0.3) = %g", got)
	}
	in, _ := EasingByName("easeInQuad")
	if got := Ease(in, 0.5); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("easeInQuad(0.5) = %g", got)
	}
	back, _ := EasingByName("easeInBack")
	if got := Ease(back, 0.2); got >= 0 {
		t.Errorf("easeInBack(0.2) = %g, want a negative overshoot", got)
	}
}

func TestEasingUnknown(t *testing.T) {
	if _, err := EasingByName("easeOutWobble"); !errors.Is(err, ErrUnknownEasing) {
		t.Errorf("got %v, want ErrUnknownEasing", err)
	}
}
