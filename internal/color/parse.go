package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Format tells Parse which textual shape to expect.
type Format string

const (
	Hex Format = "hex"
	RGB Format = "rgb"
)

var (
	// hexColorRegex accepts #rgb through #rrggbb.
	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{3,6}$`)
	// rgbColorRegex is unanchored: any text containing an rgb() literal passes.
	rgbColorRegex = regexp.MustCompile(`rgb\(\d{1,3}, \d{1,3}, \d{1,3}\)`)
	digitRuns     = regexp.MustCompile(`\d+`)
)

// Channels is a parsed red/green/blue triple. Values are nominally 0-255
// but rgb input is not clamped.
type Channels struct {
	R, G, B int
}

func (c Channels) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseFormat resolves a format name such as "hex" or "RGB".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case Hex:
		return Hex, nil
	case RGB:
		return RGB, nil
	}
	return "", fmt.Errorf("unknown color format %q (want hex or rgb)", s)
}

// Valid reports whether text has one of the two accepted color shapes.
// The format hint plays no part here.
func Valid(text string) bool {
	return hexColorRegex.MatchString(text) || rgbColorRegex.MatchString(text)
}

// Parse converts text into channels according to format. The second
// return is false when the text cannot be read in that format.
func Parse(text string, format Format) (Channels, bool) {
	switch format {
	case RGB:
		return parseRGB(text)
	default:
		return parseHex(text)
	}
}

func parseHex(text string) (Channels, bool) {
	if !strings.HasPrefix(text, "#") {
		return Channels{}, false
	}
	digits := text[1:]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) != 6 {
		return Channels{}, false
	}

	var vals [3]int
	for i := range vals {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Channels{}, false
		}
		vals[i] = int(v)
	}
	return Channels{R: vals[0], G: vals[1], B: vals[2]}, true
}

// parseRGB needs exactly three digit runs in text; "rgb(1, 2, 3) 4"
// passes Valid but is not parsed.
func parseRGB(text string) (Channels, bool) {
	runs := digitRuns.FindAllString(text, -1)
	if len(runs) != 3 {
		return Channels{}, false
	}

	var vals [3]int
	for i, run := range runs {
		v, err := strconv.Atoi(run)
		if err != nil {
			return Channels{}, false
		}
		vals[i] = v
	}
	return Channels{R: vals[0], G: vals[1], B: vals[2]}, true
}
