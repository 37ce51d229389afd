package cmd

import (
	"testing"

	"github.com/h1romas4/sazan-imgkit/pkg/sazan"
)

func TestParseCropParam(t *testing.T) {
	crop, err := parseCropParam("1265x1265+1422+366")
	if err != nil {
		t.Fatalf("parseCropParam failed: %v", err)
	}
	want := sazan.Rect{Width: 1265, Height: 1265, X: 1422, Y: 366}
	if crop != want {
		t.Errorf("Got %+v, want %+v", crop, want)
	}
}

func TestParseCropParamInvalid(t *testing.T) {
	for _, s := range []string{"", "100x100", "100x100+5", "100x100+5+5+5", "axb+c+d", "100x100-5-5"} {
		if _, err := parseCropParam(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
}

func TestParseGridParam(t *testing.T) {
	grid, err := parseGridParam("4x2")
	if err != nil {
		t.Fatalf("parseGridParam failed: %v", err)
	}
	if grid.Cols != 4 || grid.Rows != 2 {
		t.Errorf("Got %+v, want 4x2", grid)
	}
}

func TestParseGridParamInvalid(t *testing.T) {
	for _, s := range []string{"", "3", "3x", "x3", "0x3", "3x0", "3x3x3"} {
		if _, err := parseGridParam(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
}

func TestParseSizeParam(t *testing.T) {
	w, h, err := parseSizeParam("50x40")
	if err != nil {
		t.Fatalf("parseSizeParam failed: %v", err)
	}
	if w != 50 || h != 40 {
		t.Errorf("Got %dx%d, want 50x40", w, h)
	}

	if _, _, err := parseSizeParam("0x40"); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestParseOffsetParam(t *testing.T) {
	x, y, err := parseOffsetParam("10, 20")
	if err != nil {
		t.Fatalf("parseOffsetParam failed: %v", err)
	}
	if x != 10 || y != 20 {
		t.Errorf("Got %d,%d, want 10,20", x, y)
	}

	for _, s := range []string{"", "10", "10,20,30", "-1,0", "a,b"} {
		if _, _, err := parseOffsetParam(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
}
