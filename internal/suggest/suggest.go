package suggest

import (
	"fmt"
	"math"

	"github.com/marcus/contrast/internal/color"
)

var (
	white = color.Channels{R: 255, G: 255, B: 255}
	black = color.Channels{R: 0, G: 0, B: 0}
)

// Blend mixes two colors: result = (1-t)*a + t*b. t is clamped to [0,1].
func Blend(a, b color.Channels, t float64) color.Channels {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y int) int {
		return clampByte(float64(x)*(1-t) + float64(y)*t)
	}
	return color.Channels{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
	}
}

// ToHex formats c as lowercase #rrggbb, clamping out-of-range channels.
func ToHex(c color.Channels) string {
	return fmt.Sprintf("#%02x%02x%02x",
		clampByte(float64(c.R)),
		clampByte(float64(c.G)),
		clampByte(float64(c.B)))
}

func clampByte(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(math.Round(v))
}

// EnsureContrast adjusts fg until its contrast against bg meets min.
// It blends toward whichever pole (white or black) gets there with the
// smallest shift. The second return is false when neither pole passes,
// in which case fg comes back unchanged.
func EnsureContrast(fg, bg color.Channels, min color.Threshold) (color.Channels, bool) {
	if color.MeetsThreshold(color.ChannelRatio(fg, bg), min) {
		return fg, true
	}

	var (
		best      color.Channels
		bestBlend float64
		found     bool
	)
	for _, target := range []color.Channels{white, black} {
		if !color.MeetsThreshold(color.ChannelRatio(target, bg), min) {
			continue
		}
		lo, hi := 0.0, 1.0
		for i := 0; i < 16; i++ {
			mid := (lo + hi) / 2
			if color.MeetsThreshold(color.ChannelRatio(Blend(fg, target, mid), bg), min) {
				hi = mid
			} else {
				lo = mid
			}
		}
		if !found || hi < bestBlend {
			found = true
			bestBlend = hi
			best = Blend(fg, target, hi)
		}
	}

	if !found {
		return fg, false
	}
	return best, true
}
