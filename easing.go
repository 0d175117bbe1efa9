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
	"fmt"
	"maps"
	"slices"

	"github.com/tanema/gween/ease"
)

// easings maps the animation curve names accepted in Options.AnimationEasing
// to their implementations.
var easings = map[string]ease.TweenFunc{
	"linear": ease.Linear,

	"easeInQuad":    ease.InQuad,
	"easeOutQuad":   ease.OutQuad,
	"easeInOutQuad": ease.InOutQuad,

	"easeInCubic":    ease.InCubic,
	"easeOutCubic":   ease.OutCubic,
	"easeInOutCubic": ease.InOutCubic,

	"easeInQuart":    ease.InQuart,
	"easeOutQuart":   ease.OutQuart,
	"easeInOutQuart": ease.InOutQuart,

	"easeInQuint":    ease.InQuint,
	"easeOutQuint":   ease.OutQuint,
	"easeInOutQuint": ease.InOutQuint,

	"easeInSine":    ease.InSine,
	"easeOutSine":   ease.OutSine,
	"easeInOutSine": ease.InOutSine,

	"easeInExpo":    ease.InExpo,
	"easeOutExpo":   ease.OutExpo,
	"easeInOutExpo": ease.InOutExpo,

	"easeInCirc":    ease.InCirc,
	"easeOutCirc":   ease.OutCirc,
	"easeInOutCirc": ease.InOutCirc,

	"easeInElastic":    ease.InElastic,
	"easeOutElastic":   ease.OutElastic,
	"easeInOutElastic": ease.InOutElastic,

	"easeInBack":    ease.InBack,
	"easeOutBack":   ease.OutBack,
	"easeInOutBack": ease.InOutBack,

	"easeInBounce":    ease.InBounce,
	"easeOutBounce":   ease.OutBounce,
	"easeInOutBounce": ease.InOutBounce,
}

// EasingByName returns the easing curve with the given name.
func EasingByName(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEasing)
	}
	return fn, nil
}

// EasingNames returns the names of all easing curves, sorted.
func EasingNames() []string {
	return slices.Sorted(maps.Keys(easings))
}

// Ease applies fn to a progress fraction in [0, 1].
func Ease(fn ease.TweenFunc, progress float64) float64 {
	return float64(fn(float32(progress), 0, 1, 1))
}
