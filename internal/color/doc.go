// Package color parses hex and rgb() color text and checks foreground and
// background pairs against the WCAG contrast thresholds.
//
// Evaluate is the forgiving entry point: anything it cannot read simply
// fails. Check runs the same steps and returns the reason instead.
package color
