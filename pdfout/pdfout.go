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

// Package pdfout writes gradient images as vector PDF files.
//
// The page contains one filled rectangle per run of equally coloured pixel
// columns and the tick marks as stroked lines.  The label text is not
// included.
package pdfout

import (
	"fmt"
	imgcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gradient"
)

// Write renders tbl into a single-page PDF file of width×height points,
// using the same column colours and tick positions as [gradient.Render].
// If opt is nil, gradient.DefaultOptions() is used.
func Write(fname string, width, height int, tbl *gradient.Table, opt *gradient.Options) error {
	if opt == nil {
		opt = gradient.DefaultOptions()
	}
	if height < 1 {
		return fmt.Errorf("pdfout: height %d: %w", height, gradient.ErrInvalidInput)
	}
	cols, err := gradient.Columns(width, tbl, opt)
	if err != nil {
		return err
	}
	var labels []gradient.Label
	if opt.Labels {
		labels, err = gradient.Labels(width, tbl, opt)
		if err != nil {
			return err
		}
	}

	w, h := float64(width), float64(height)
	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if opt.Background.A != 0 {
		r, g, b := unit(opt.Background)
		page.SetFillColor(color.DeviceRGB{r, g, b})
		page.Rectangle(0, 0, w, h)
		page.Fill()
	}

	// PDF origin is bottom-left, image coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	for start := 0; start < len(cols); {
		end := start + 1
		for end < len(cols) && sameColor(cols[end], cols[start]) {
			end++
		}
		if cols[start].Filled {
			r, g, b := unit(cols[start].Color)
			page.SetFillColor(color.DeviceRGB{r, g, b})
			page.Rectangle(float64(start), 0, float64(end-start), h)
			page.Fill()
		}
		start = end
	}

	if len(labels) > 0 && opt.TickLength > 0 {
		r, g, b := unit(opt.TickColor)
		page.SetStrokeColor(color.DeviceRGB{r, g, b})
		page.SetLineWidth(opt.TickWidth)
		page.SetLineCap(opt.TickCap)
		for _, l := range labels {
			xc := float64(l.X) + 0.5
			page.MoveTo(xc, h)
			page.LineTo(xc, h-opt.TickLength)
		}
		page.Stroke()
	}

	return page.Close()
}

// unit converts an 8-bit colour to components in the range [0, 1].
func unit(c imgcolor.RGBA) (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

func sameColor(a, b gradient.Column) bool {
	return a.Filled == b.Filled && (!a.Filled || a.Color == b.Color)
}
