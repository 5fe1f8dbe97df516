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

package raster

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// LineOutline returns the closed outline of the straight line from a to b,
// drawn with the given width and cap style.
//
// A line of zero length has no direction; for square caps it is drawn as an
// axis-aligned square, for round caps as a circle and for butt caps the
// result is empty.
func LineOutline(a, b vec.Vec2, width float64, capStyle graphics.LineCapStyle) *path.Data {
	d := width / 2
	p := &path.Data{}

	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		if capStyle == graphics.LineCapButt || d <= 0 {
			return p
		}
		delta = vec.Vec2{X: 1, Y: 0}
		length = 1
		b = a
	}
	t := delta.Mul(1 / length)     // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal

	if capStyle == graphics.LineCapRound {
		p.MoveTo(a.Add(n.Mul(d))).LineTo(b.Add(n.Mul(d)))
		addHalfCircle(p, b, n, t, d)
		p.LineTo(a.Sub(n.Mul(d)))
		addHalfCircle(p, a, n.Mul(-1), t.Mul(-1), d)
		p.Close()
		return p
	}

	if capStyle == graphics.LineCapSquare {
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
	}
	p.MoveTo(a.Add(n.Mul(d))).
		LineTo(b.Add(n.Mul(d))).
		LineTo(b.Sub(n.Mul(d))).
		LineTo(a.Sub(n.Mul(d))).
		Close()
	return p
}

// addHalfCircle appends the half circle around center from center+d·n,
// through center+d·t, to center-d·n.  The start point must already be the
// current point of p.
func addHalfCircle(p *path.Data, center, n, t vec.Vec2, d float64) {
	for i := 1; i <= roundCapSegments; i++ {
		phi := math.Pi * float64(i) / roundCapSegments
		dir := n.Mul(math.Cos(phi)).Add(t.Mul(math.Sin(phi)))
		p.LineTo(center.Add(dir.Mul(d)))
	}
}

// Composite paints colour c into row y of dst, weighted by coverage, starting
// at column xMin.  This is the Porter-Duff "over" operator with the coverage
// as mask; pixels outside dst are ignored.
func Composite(dst *image.RGBA, y, xMin int, coverage []float32, c color.RGBA) {
	if y < dst.Rect.Min.Y || y >= dst.Rect.Max.Y {
		return
	}
	for i, cov := range coverage {
		x := xMin + i
		if x < dst.Rect.Min.X || x >= dst.Rect.Max.X || cov <= 0 {
			continue
		}
		o := dst.PixOffset(x, y)
		px := dst.Pix[o : o+4 : o+4]
		keep := 1 - float32(c.A)/255*cov
		px[0] = blend(c.R, px[0], cov, keep)
		px[1] = blend(c.G, px[1], cov, keep)
		px[2] = blend(c.B, px[2], cov, keep)
		px[3] = blend(c.A, px[3], cov, keep)
	}
}

// blend computes src·cov + dst·keep for premultiplied 8-bit values.
func blend(src, dst uint8, cov, keep float32) uint8 {
	v := float32(src)*cov + float32(dst)*keep
	return uint8(max(0, min(255, v+0.5)))
}
