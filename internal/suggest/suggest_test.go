package suggest

import (
	"testing"

	"github.com/marcus/contrast/internal/color"
)

func TestBlend(t *testing.T) {
	got := Blend(black, white, 0.5)
	if got != (color.Channels{R: 128, G: 128, B: 128}) {
		t.Errorf("Blend black+white 50%% = %v, want 128 gray", got)
	}

	red := color.Channels{R: 255}
	blue := color.Channels{B: 255}
	if got := Blend(red, blue, 0); got != red {
		t.Errorf("Blend 0%% = %v, want red", got)
	}
	if got := Blend(red, blue, 1); got != blue {
		t.Errorf("Blend 100%% = %v, want blue", got)
	}
	if got := Blend(red, blue, 5); got != blue {
		t.Errorf("Blend t>1 should clamp, got %v", got)
	}
}

func TestToHex(t *testing.T) {
	tests := []struct {
		c    color.Channels
		want string
	}{
		{color.Channels{R: 255, G: 255, B: 255}, "#ffffff"},
		{color.Channels{R: 118, G: 118, B: 118}, "#767676"},
		{color.Channels{R: 300, G: -4, B: 16}, "#ff0010"},
	}
	for _, tt := range tests {
		if got := ToHex(tt.c); got != tt.want {
			t.Errorf("ToHex(%v) = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestEnsureContrast_AlreadyPasses(t *testing.T) {
	got, ok := EnsureContrast(black, white, color.NormalText)
	if !ok || got != black {
		t.Errorf("EnsureContrast(black, white) = %v, %v; want black, true", got, ok)
	}
}

func TestEnsureContrast_Adjusts(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
		min  color.Threshold
	}{
		{"gray on white", "#777777", "#ffffff", color.NormalText},
		{"gray on black", "#444444", "#000000", color.NormalText},
		{"same color", "#1e1e2e", "#1e1e2e", color.Icon},
		{"orange on white", "#f59e0b", "#ffffff", color.NormalText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, _ := color.Parse(tt.fg, color.Hex)
			bg, _ := color.Parse(tt.bg, color.Hex)
			got, ok := EnsureContrast(fg, bg, tt.min)
			if !ok {
				t.Fatalf("EnsureContrast(%s, %s) found nothing", tt.fg, tt.bg)
			}
			ratio := color.ChannelRatio(got, bg)
			if !color.MeetsThreshold(ratio, tt.min) {
				t.Errorf("EnsureContrast(%s, %s) = %s with ratio %.3f, below %v", tt.fg, tt.bg, ToHex(got), ratio, tt.min)
			}
		})
	}
}

func TestEnsureContrast_SmallShift(t *testing.T) {
	fg := color.Channels{R: 0x77, G: 0x77, B: 0x77}
	got, ok := EnsureContrast(fg, white, color.NormalText)
	if !ok {
		t.Fatal("expected a suggestion")
	}
	// #777777 is a hair under 4.5:1 on white; the fix should be a nudge darker.
	if got.R < 0x70 || got.R >= 0x77 {
		t.Errorf("suggestion %s moved too far from #777777", ToHex(got))
	}
}

func TestEnsureContrast_Impossible(t *testing.T) {
	// Mid gray: neither black nor white reaches 7:1 against it.
	bg := color.Channels{R: 0x76, G: 0x76, B: 0x76}
	fg := color.Channels{R: 0x80, G: 0x80, B: 0x80}
	got, ok := EnsureContrast(fg, bg, color.Threshold(7))
	if ok {
		t.Errorf("expected no suggestion, got %s", ToHex(got))
	}
	if got != fg {
		t.Errorf("fg should come back unchanged, got %s", ToHex(got))
	}
}
