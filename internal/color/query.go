package color

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColor means a color matched neither accepted shape.
	ErrInvalidColor = errors.New("invalid color")
	// ErrUnparsable means a color passed validation but could not be read
	// in the requested format.
	ErrUnparsable = errors.New("color does not match format")
)

// Query is one foreground/background contrast check.
type Query struct {
	Foreground string    `json:"foreground"`
	Background string    `json:"background"`
	Format     Format    `json:"format"`
	Threshold  Threshold `json:"threshold"`
}

// NewQuery returns a query for fg on bg using hex input and the
// normal text threshold.
func NewQuery(fg, bg string) Query {
	return Query{
		Foreground: fg,
		Background: bg,
		Format:     Hex,
		Threshold:  NormalText,
	}
}

// normalized fills in defaults for zero-valued fields.
func (q Query) normalized() Query {
	if q.Format == "" {
		q.Format = Hex
	}
	if q.Threshold == 0 {
		q.Threshold = NormalText
	}
	return q
}

// Result is the full outcome of a successful check.
type Result struct {
	Query               Query    `json:"query"`
	Foreground          Channels `json:"foregroundChannels"`
	Background          Channels `json:"backgroundChannels"`
	ForegroundLuminance float64  `json:"foregroundLuminance"`
	BackgroundLuminance float64  `json:"backgroundLuminance"`
	Ratio               float64  `json:"ratio"`
	Pass                bool     `json:"pass"`
}

// Check runs the contrast pipeline and reports why it could not finish.
// Errors wrap ErrInvalidColor or ErrUnparsable.
func Check(q Query) (Result, error) {
	q = q.normalized()

	if !Valid(q.Foreground) {
		return Result{}, fmt.Errorf("foreground %q: %w", q.Foreground, ErrInvalidColor)
	}
	if !Valid(q.Background) {
		return Result{}, fmt.Errorf("background %q: %w", q.Background, ErrInvalidColor)
	}

	fg, ok := Parse(q.Foreground, q.Format)
	if !ok {
		return Result{}, fmt.Errorf("foreground %q as %s: %w", q.Foreground, q.Format, ErrUnparsable)
	}
	bg, ok := Parse(q.Background, q.Format)
	if !ok {
		return Result{}, fmt.Errorf("background %q as %s: %w", q.Background, q.Format, ErrUnparsable)
	}

	res := Result{
		Query:               q,
		Foreground:          fg,
		Background:          bg,
		ForegroundLuminance: Luminance(fg),
		BackgroundLuminance: Luminance(bg),
	}
	res.Ratio = Ratio(res.ForegroundLuminance, res.BackgroundLuminance)
	res.Pass = MeetsThreshold(res.Ratio, q.Threshold)
	return res, nil
}

// Evaluate reports whether fg on bg meets threshold. Malformed input
// never panics or errors; it simply does not pass.
func Evaluate(fg, bg string, format Format, threshold Threshold) bool {
	res, err := Check(Query{
		Foreground: fg,
		Background: bg,
		Format:     format,
		Threshold:  threshold,
	})
	if err != nil {
		return false
	}
	return res.Pass
}
