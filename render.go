// seehuhn.de/go/gradient - log-axis colour gradient images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gradient

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/gradient/raster"
)

// Extend selects the colour of columns whose position lies outside the
// range of the gradient table.
type Extend int

const (
	// ExtendNone leaves such columns at the background colour.
	ExtendNone Extend = iota

	// ExtendPad uses the colour of the nearest end stop.
	ExtendPad
)

func (e Extend) String() string {
	switch e {
	case ExtendNone:
		return "none"
	case ExtendPad:
		return "pad"
	default:
		return fmt.Sprintf("Extend(%d)", int(e))
	}
}

// Options control the appearance of a rendered gradient.
// Use [DefaultOptions] to obtain a ready-to-use value.
type Options struct {
	// Axis maps pixel columns to gradient positions.
	Axis LogAxis

	// Extend selects the colour of columns outside the table range.
	Extend Extend

	// Background is the colour of pixels not painted otherwise.
	Background color.RGBA

	// Labels enables the tick marks and percentage labels.
	Labels bool

	// LabelStep is the distance between labels, in gradient positions.
	// Must be > 0 if Labels is set.
	LabelStep float64

	// LabelOffset is the distance of the top of the label text from the
	// bottom of the image, in pixels.
	LabelOffset int

	// LabelColor is the colour of the label text.
	LabelColor color.RGBA

	// Face is used for the label text.  If nil, basicfont.Face7x13 is used.
	Face font.Face

	// TickLength is the length of the tick marks in pixels. Must be >= 0.
	TickLength float64

	// TickWidth is the line width of the tick marks in pixels. Must be > 0.
	TickWidth float64

	// TickCap is the line cap style of the tick marks.
	TickCap graphics.LineCapStyle

	// TickColor is the colour of the tick marks.
	TickColor color.RGBA
}

// DefaultOptions returns the options used when Render is called with nil
// options: the default axis, no padding, black background, and blue labels
// every 5% with white 10 pixel ticks.
func DefaultOptions() *Options {
	return &Options{
		Axis:        DefaultAxis,
		Extend:      ExtendNone,
		Background:  color.RGBA{A: 255},
		Labels:      true,
		LabelStep:   0.05,
		LabelOffset: 30,
		LabelColor:  colornames.Blue,
		Face:        basicfont.Face7x13,
		TickLength:  10,
		TickWidth:   1,
		TickCap:     graphics.LineCapButt,
		TickColor:   colornames.White,
	}
}

// Column describes the colour of one pixel column.
type Column struct {
	Pos    float64    // gradient position of the column
	Color  color.RGBA // only meaningful if Filled is true
	Filled bool       // false if the column keeps the background colour
}

// Label is a tick mark on the gradient axis.
type Label struct {
	Value float64 // gradient position
	Text  string  // the position in percent
	X     int     // pixel column, always inside the image
}

// Render draws the gradient tbl into a new image of the given size.
// If opt is nil, DefaultOptions() is used.
//
// Every column is filled with the table colour at the position given by
// opt.Axis.  Then, if enabled, tick marks and labels are drawn at linear
// intervals of opt.LabelStep, below the last stop position of tbl.
func Render(width, height int, tbl *Table, opt *Options) (*image.RGBA, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	if height < 1 {
		return nil, fmt.Errorf("gradient: height %d: %w", height, ErrInvalidInput)
	}
	cols, err := Columns(width, tbl, opt)
	if err != nil {
		return nil, err
	}
	var labels []Label
	if opt.Labels {
		if !(opt.TickLength >= 0) || !(opt.TickWidth > 0) {
			return nil, fmt.Errorf("gradient: tick length %g, width %g: %w",
				opt.TickLength, opt.TickWidth, ErrInvalidInput)
		}
		labels, err = Labels(width, tbl, opt)
		if err != nil {
			return nil, err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	// Paint the first row, then replicate it.
	for x, col := range cols {
		if col.Filled {
			img.SetRGBA(x, 0, col.Color)
		}
	}
	first := img.Pix[:4*width]
	for y := 1; y < height; y++ {
		copy(img.Pix[y*img.Stride:], first)
	}

	if len(labels) > 0 {
		drawLabels(img, labels, opt)
	}
	return img, nil
}

// Columns computes the colour of every pixel column of a gradient image
// with the given width.
func Columns(width int, tbl *Table, opt *Options) ([]Column, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	if width < 2 {
		return nil, fmt.Errorf("gradient: width %d: %w", width, ErrInvalidInput)
	}
	if tbl == nil {
		return nil, fmt.Errorf("gradient: missing table: %w", ErrInvalidInput)
	}
	if err := opt.Axis.Check(); err != nil {
		return nil, err
	}

	cols := make([]Column, width)
	var numBlank, numClamped int
	for x := range cols {
		pos := opt.Axis.ColumnPosition(x, width)
		c, clamped, ok := tbl.at(pos)
		if !ok && opt.Extend == ExtendPad {
			c, ok = tbl.Clamp(pos), true
		}
		cols[x] = Column{Pos: pos, Color: c, Filled: ok}
		if !ok {
			numBlank++
		}
		if clamped {
			numClamped++
		}
	}

	log := Logger()
	if numBlank > 0 {
		log.Debug("columns outside the gradient table",
			"count", numBlank, "extend", opt.Extend)
	}
	if numClamped > 0 {
		log.Debug("colour channels clamped", "columns", numClamped)
	}
	return cols, nil
}

// Labels returns the tick positions for a gradient image with the given
// width.  Labels are placed at 0, LabelStep, 2·LabelStep, ... for all values
// strictly below tbl.Max().  Labels which would fall outside the image are
// omitted.
func Labels(width int, tbl *Table, opt *Options) ([]Label, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	if width < 2 {
		return nil, fmt.Errorf("gradient: width %d: %w", width, ErrInvalidInput)
	}
	if tbl == nil {
		return nil, fmt.Errorf("gradient: missing table: %w", ErrInvalidInput)
	}
	if err := opt.Axis.Check(); err != nil {
		return nil, err
	}
	step := opt.LabelStep
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("gradient: label step %g: %w", step, ErrInvalidInput)
	}

	limit := tbl.Max()
	n := int(math.Ceil(limit / step))
	labels := make([]Label, 0, n)
	for i := range n {
		value := float64(i) * step
		if value >= limit {
			break
		}
		x := opt.Axis.Column(value, width)
		text := strconv.Itoa(int(math.Round(value * 100)))
		if x < 0 || x >= width {
			Logger().Debug("label outside the image", "label", text, "x", x)
			continue
		}
		labels = append(labels, Label{Value: value, Text: text, X: x})
	}
	return labels, nil
}

// drawLabels draws the label text and tick marks onto img.
func drawLabels(img *image.RGBA, labels []Label, opt *Options) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	face := opt.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opt.LabelColor),
		Face: face,
	}

	r := raster.NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
	r.Width = opt.TickWidth
	r.Cap = opt.TickCap
	emit := func(y, xMin int, coverage []float32) {
		raster.Composite(img, y, xMin, coverage, opt.TickColor)
	}

	for _, l := range labels {
		d.Dot = fixed.P(l.X, height-opt.LabelOffset+ascent)
		d.DrawString(l.Text)

		// pixel centres are at half-integer coordinates
		xc := float64(l.X) + 0.5
		top := vec.Vec2{X: xc, Y: float64(height) - opt.TickLength}
		bottom := vec.Vec2{X: xc, Y: float64(height)}
		r.StrokeLine(bottom, top, emit)
	}
}
