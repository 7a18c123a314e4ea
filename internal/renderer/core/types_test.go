package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FFD700", 255, 215, 0, false},
		{"#ffd700", 255, 215, 0, false},
		{"333333", 51, 51, 51, false},
		{"#FFF", 255, 255, 255, false},
		{" #000 ", 0, 0, 0, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
		{"", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := ColorFromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q) expected error, got %v", tt.hex, c)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q) unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("ColorFromHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex(\"nope\") did not panic")
		}
	}()
	MustHex("nope")
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(Color{Default: true, R: 9}) {
		t.Error("default colors should be equal regardless of RGB")
	}
	if ColorDefault.Equals(ColorFromRGB(0, 0, 0)) {
		t.Error("default should not equal black")
	}
	if !ColorFromRGB(1, 2, 3).Equals(ColorFromRGB(1, 2, 3)) {
		t.Error("equal RGB colors should be equal")
	}
	if got := ColorFromRGB(255, 215, 0).String(); got != "#FFD700" {
		t.Errorf("String() = %q", got)
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q", got)
	}
}

func TestColorBlend(t *testing.T) {
	black := ColorFromRGB(0, 0, 0)
	white := ColorFromRGB(255, 255, 255)

	if got := black.Blend(white, 0); !got.Equals(black) {
		t.Errorf("Blend(0) = %v, want black", got)
	}
	if got := black.Blend(white, 1); !got.Equals(white) {
		t.Errorf("Blend(1) = %v, want white", got)
	}
	mid := black.Blend(white, 0.5)
	if mid.R < 64 || mid.R > 192 {
		t.Errorf("Blend(0.5) = %v, want a mid gray", mid)
	}
	if got := ColorDefault.Blend(white, 0.2); !got.IsDefault() {
		t.Errorf("default blend below half should stay default, got %v", got)
	}
}

func TestCellsFromString(t *testing.T) {
	style := NewStyle(ColorFromRGB(255, 255, 255), ColorDefault)

	cells := CellsFromString("1. Zadanie", style)
	if len(cells) != 10 {
		t.Fatalf("len = %d, want 10", len(cells))
	}
	if got := StringFromCells(cells); got != "1. Zadanie" {
		t.Errorf("round trip = %q", got)
	}

	wide := CellsFromString("日x", style)
	if len(wide) != 3 {
		t.Fatalf("wide len = %d, want 3", len(wide))
	}
	if wide[0].Width != 2 || !wide[1].IsContinuation() || wide[2].Text != "x" {
		t.Errorf("wide cells = %+v", wide)
	}
	if StringWidth("日x") != 3 {
		t.Errorf("StringWidth = %d, want 3", StringWidth("日x"))
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().Bold().Reverse()
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) || s.Attributes.Has(AttrDim) {
		t.Errorf("attributes = %b", s.Attributes)
	}
	gold := ColorFromRGB(255, 215, 0)
	if !s.WithForeground(gold).Foreground.Equals(gold) {
		t.Error("WithForeground did not apply")
	}
	if s.Equals(s.Dim()) {
		t.Error("Dim should change the style")
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(2, 10, 1, 7)
	if r.Width() != 7 || r.Height() != 1 {
		t.Errorf("size = %dx%d", r.Width(), r.Height())
	}
	if !r.Contains(10, 2) || !r.Contains(16, 2) {
		t.Error("Contains should include the left and last columns")
	}
	if r.Contains(17, 2) || r.Contains(10, 3) || r.Contains(9, 2) {
		t.Error("Contains should exclude cells outside")
	}

	clip := r.Intersection(RectFromSize(0, 0, 10, 12))
	if clip.Right != 12 || clip.Left != 10 {
		t.Errorf("Intersection = %+v", clip)
	}
	if !r.Intersection(RectFromSize(5, 0, 1, 1)).IsEmpty() {
		t.Error("disjoint intersection should be empty")
	}
}
