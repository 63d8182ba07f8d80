package qr

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#000000", want: "#000000"},
		{in: "#0ea5e9", want: "#0EA5E9"},
		{in: "8B5CF6", want: "#8B5CF6"},
		{in: " #EC4899 ", want: "#EC4899"},
		{in: "#EF4444", want: "#EF4444"},
		{in: "#FFFFFF", wantErr: true},
		{in: "", wantErr: true},
		{in: "red", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPaletteIsFixed(t *testing.T) {
	if len(Palette) != 5 {
		t.Fatalf("expected 5 swatches, got %d", len(Palette))
	}
	if Palette[0] != DefaultColor {
		t.Errorf("expected first swatch to be the default color, got %s", Palette[0])
	}
}

func TestColorRGBA(t *testing.T) {
	got := Color("#0EA5E9").RGBA()
	want := color.RGBA{R: 0x0E, G: 0xA5, B: 0xE9, A: 0xFF}
	if got != want {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}
}

func TestSwatchesHighlightExactMatch(t *testing.T) {
	swatches := Swatches("#8B5CF6")
	selected := 0
	for _, s := range swatches {
		if s.Selected {
			selected++
			if s.Color != "#8B5CF6" {
				t.Errorf("wrong swatch selected: %s", s.Color)
			}
		}
	}
	if selected != 1 {
		t.Errorf("expected exactly one selected swatch, got %d", selected)
	}

	// equality is exact, lowercase input is not normalized here
	for _, s := range Swatches("#8b5cf6") {
		if s.Selected {
			t.Errorf("unexpected selection for non-canonical color: %s", s.Color)
		}
	}
}
