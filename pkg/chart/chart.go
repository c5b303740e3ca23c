// Package chart provides chart-drawing components.
//
// Charts are ordinary functional components: they describe a canvas element
// and rasterize into it through the post-mount callback, once the node is
// attached and can hold a drawing surface. The finished image is stored on
// the node's "bitmap" property as an *image.RGBA.
package chart

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/host"
)

// Series is one named sequence of values.
type Series struct {
	Name   string
	Values []float64
	Color  color.RGBA
}

// Palette colors assigned to series without an explicit color.
var Palette = []color.RGBA{
	{R: 0x33, G: 0x66, B: 0xcc, A: 0xff},
	{R: 0xdc, G: 0x3a, B: 0x12, A: 0xff},
	{R: 0xff, G: 0x99, B: 0x00, A: 0xff},
	{R: 0x10, G: 0x96, B: 0x18, A: 0xff},
}

const (
	defaultWidth  = 320
	defaultHeight = 180
	marginLeft    = 32
	marginBottom  = 16
	marginTop     = 8
	marginRight   = 8
)

// LineChart renders its series as connected polylines.
//
// Props: "series" ([]Series), optional "width" and "height" (int),
// optional "title" (string).
func LineChart(p core.Props) core.Node {
	return canvasFor(p, drawLines)
}

// BarChart renders the first series as vertical bars.
//
// Props: same as LineChart.
func BarChart(p core.Props) core.Node {
	return canvasFor(p, drawBars)
}

// LineChartOf builds a LineChart descriptor.
func LineChartOf(title string, series ...Series) core.Node {
	return core.H(LineChart, core.Props{"title": title, "series": series})
}

// BarChartOf builds a BarChart descriptor.
func BarChartOf(title string, series ...Series) core.Node {
	return core.H(BarChart, core.Props{"title": title, "series": series})
}

type drawFunc func(img *image.RGBA, series []Series, plot image.Rectangle)

func canvasFor(p core.Props, drawSeries drawFunc) core.Node {
	width := intProp(p, "width", defaultWidth)
	height := intProp(p, "height", defaultHeight)
	series, _ := p["series"].([]Series)
	title, _ := p["title"].(string)

	return core.H("canvas", core.Props{
		"width":     width,
		"height":    height,
		"className": "chart",
		core.PropPostMount: func(n host.Node) {
			img := rasterize(width, height, title, series, drawSeries)
			n.SetProperty("bitmap", img)
		},
	})
}

func intProp(p core.Props, name string, fallback int) int {
	if v, ok := p[name].(int); ok && v > 0 {
		return v
	}
	return fallback
}

// rasterize fills the background, draws the axes and the series, and labels
// the value range with the bundled bitmap face.
func rasterize(width, height int, title string, series []Series, drawSeries drawFunc) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	plot := image.Rect(marginLeft, marginTop, width-marginRight, height-marginBottom)
	axis := color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	hline(img, plot.Min.X, plot.Max.X, plot.Max.Y, axis)
	vline(img, plot.Min.X, plot.Min.Y, plot.Max.Y, axis)

	for i := range series {
		if series[i].Color.A == 0 {
			series[i].Color = Palette[i%len(Palette)]
		}
	}
	drawSeries(img, series, plot)

	black := color.RGBA{A: 0xff}
	if title != "" {
		drawString(img, plot.Min.X, marginTop+10, title, black)
	}
	lo, hi := valueRange(series)
	drawString(img, 2, plot.Min.Y+8, formatValue(hi), axis)
	drawString(img, 2, plot.Max.Y, formatValue(lo), axis)
	return img
}

func drawLines(img *image.RGBA, series []Series, plot image.Rectangle) {
	lo, hi := valueRange(series)
	for _, s := range series {
		if len(s.Values) < 2 {
			continue
		}
		prevX, prevY := plotPoint(plot, 0, len(s.Values), s.Values[0], lo, hi)
		for i := 1; i < len(s.Values); i++ {
			x, y := plotPoint(plot, i, len(s.Values), s.Values[i], lo, hi)
			line(img, prevX, prevY, x, y, s.Color)
			prevX, prevY = x, y
		}
	}
}

func drawBars(img *image.RGBA, series []Series, plot image.Rectangle) {
	if len(series) == 0 || len(series[0].Values) == 0 {
		return
	}
	s := series[0]
	lo, hi := valueRange(series)
	if lo > 0 {
		lo = 0
	}
	count := len(s.Values)
	slotWidth := plot.Dx() / count
	barWidth := slotWidth * 3 / 4
	if barWidth < 1 {
		barWidth = 1
	}
	for i, v := range s.Values {
		x0 := plot.Min.X + i*slotWidth + (slotWidth-barWidth)/2
		_, top := plotPoint(plot, 0, 1, v, lo, hi)
		bar := image.Rect(x0, top, x0+barWidth, plot.Max.Y)
		draw.Draw(img, bar, image.NewUniform(s.Color), image.Point{}, draw.Src)
	}
}

// plotPoint maps (index, value) into pixel space within plot.
func plotPoint(plot image.Rectangle, index, count int, value, lo, hi float64) (int, int) {
	x := plot.Min.X
	if count > 1 {
		x += index * plot.Dx() / (count - 1)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	y := plot.Max.Y - int(float64(plot.Dy())*(value-lo)/span)
	if y < plot.Min.Y {
		y = plot.Min.Y
	}
	if y > plot.Max.Y {
		y = plot.Max.Y
	}
	return x, y
}

func valueRange(series []Series) (float64, float64) {
	lo, hi := 0.0, 1.0
	first := true
	for _, s := range series {
		for _, v := range s.Values {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// drawString renders text at the baseline (x, y) with the bundled 7x13 face.
func drawString(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func formatValue(v float64) string {
	if v < 0 {
		return "-" + formatValue(-v)
	}
	if v == float64(int64(v)) {
		return itoa(int64(v))
	}
	// one decimal is enough for axis hints
	scaled := int64(v * 10)
	return itoa(scaled/10) + "." + itoa(scaled%10)
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	pos := len(buf)
	for v > 0 {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// line draws a straight segment using integer DDA stepping.
func line(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(absInt(dx), absInt(dy))
	if steps == 0 {
		img.SetRGBA(x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		img.SetRGBA(x, y, c)
	}
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
