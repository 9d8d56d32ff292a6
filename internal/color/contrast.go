package color

import (
	"fmt"
	"math"
	"strings"
)

// Threshold is a minimum acceptable contrast ratio.
type Threshold float64

// WCAG thresholds.
const (
	Icon       Threshold = 3.1
	LargeText  Threshold = 3.1
	NormalText Threshold = 4.5
)

// Level pairs a WCAG threshold with its name.
type Level struct {
	Name      string
	Threshold Threshold
}

// Levels lists the named thresholds from least to most demanding.
var Levels = []Level{
	{"icon", Icon},
	{"largeText", LargeText},
	{"normalText", NormalText},
}

// ParseThreshold resolves a threshold name used in flags and config files.
func ParseThreshold(s string) (Threshold, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "icon":
		return Icon, nil
	case "largetext", "large-text", "large":
		return LargeText, nil
	case "normaltext", "normal-text", "normal":
		return NormalText, nil
	}
	return 0, fmt.Errorf("unknown contrast threshold %q (want icon, largeText or normalText)", s)
}

// Name returns the canonical name for t. Icon and LargeText share a
// value, so 3.1 is reported as "largeText".
func (t Threshold) Name() string {
	switch t {
	case NormalText:
		return "normalText"
	case LargeText:
		return "largeText"
	}
	return fmt.Sprintf("%.2f", float64(t))
}

// Luminance returns the relative luminance of c using sRGB linearization
// and BT.709 weights.
func Luminance(c Channels) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio between two luminances (1 to 21).
// Argument order does not matter.
func Ratio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ChannelRatio returns the contrast ratio between two colors.
func ChannelRatio(a, b Channels) float64 {
	return Ratio(Luminance(a), Luminance(b))
}

// MeetsThreshold reports whether ratio reaches t. The boundary is inclusive.
func MeetsThreshold(ratio float64, t Threshold) bool {
	return ratio >= float64(t)
}
