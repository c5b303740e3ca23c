package chart

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-flint/flint/pkg/core"
	flinttest "github.com/go-flint/flint/pkg/testing"
)

func TestLineChart_RasterizesAfterMount(t *testing.T) {
	rt := flinttest.NewRenderTester(t)
	rt.Mount(LineChartOf("Load", Series{Name: "cpu", Values: []float64{1, 3, 2, 5}}))

	canvas := rt.FindByTag("canvas").First()
	if w, _ := canvas.Attribute("width"); w != "320" {
		t.Errorf("expected default width attribute, got %q", w)
	}

	v, ok := canvas.Property("bitmap")
	if !ok {
		t.Fatal("expected bitmap property after mount")
	}
	img, ok := v.(*image.RGBA)
	if !ok {
		t.Fatalf("expected *image.RGBA bitmap, got %T", v)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 320, 180) {
		t.Errorf("expected 320x180 bitmap, got %v", got)
	}
}

func TestLineChart_CustomSize(t *testing.T) {
	rt := flinttest.NewRenderTester(t)
	rt.Mount(core.H(LineChart, core.Props{
		"width":  100,
		"height": 80,
		"series": []Series{{Values: []float64{0, 1}}},
	}))

	v, _ := rt.FindByTag("canvas").First().Property("bitmap")
	img := v.(*image.RGBA)
	if got := img.Bounds(); got != image.Rect(0, 0, 100, 80) {
		t.Errorf("expected 100x80 bitmap, got %v", got)
	}
}

func TestBarChart_DrawsBars(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	rt := flinttest.NewRenderTester(t)
	rt.Mount(BarChartOf("", Series{Values: []float64{4, 4, 4}, Color: red}))

	v, _ := rt.FindByTag("canvas").First().Property("bitmap")
	img := v.(*image.RGBA)

	plot := image.Rect(marginLeft, marginTop, defaultWidth-marginRight, defaultHeight-marginBottom)
	slotWidth := plot.Dx() / 3
	x := plot.Min.X + slotWidth/2
	y := plot.Max.Y - 2
	if got := img.RGBAAt(x, y); got != red {
		t.Errorf("expected bar pixel at (%d,%d) to be red, got %v", x, y, got)
	}
}

func TestLineChart_AppliesPaletteColor(t *testing.T) {
	rt := flinttest.NewRenderTester(t)
	rt.Mount(LineChartOf("", Series{Values: []float64{2, 2, 2, 2}}))

	v, _ := rt.FindByTag("canvas").First().Property("bitmap")
	img := v.(*image.RGBA)

	plot := image.Rect(marginLeft, marginTop, defaultWidth-marginRight, defaultHeight-marginBottom)
	// flat series with equal lo/hi renders along the bottom edge of the plot
	found := false
	for x := plot.Min.X; x <= plot.Max.X && !found; x++ {
		for y := plot.Min.Y; y <= plot.Max.Y && !found; y++ {
			if img.RGBAAt(x, y) == Palette[0] {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected at least one pixel in the first palette color")
	}
}

func TestValueRange(t *testing.T) {
	lo, hi := valueRange([]Series{
		{Values: []float64{3, -1, 7}},
		{Values: []float64{2}},
	})
	if lo != -1 || hi != 7 {
		t.Errorf("expected range [-1, 7], got [%v, %v]", lo, hi)
	}

	lo, hi = valueRange(nil)
	if lo != 0 || hi != 1 {
		t.Errorf("expected default range [0, 1], got [%v, %v]", lo, hi)
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-3, "-3"},
		{2.5, "2.5"},
		{-1.5, "-1.5"},
	}
	for _, tc := range cases {
		if got := formatValue(tc.in); got != tc.want {
			t.Errorf("formatValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
