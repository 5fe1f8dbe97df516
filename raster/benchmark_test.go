package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var tickHeights = []int{10, 100, 1000}

// BenchmarkStrokeTick benchmarks drawing a vertical tick mark with round caps.
func BenchmarkStrokeTick(b *testing.B) {
	for _, h := range tickHeights {
		b.Run(fmt.Sprintf("h%d", h), func(b *testing.B) {
			clip := rect.Rect{URx: 20, URy: float64(h)}
			r := NewRasterizer(clip)
			dst := image.NewRGBA(image.Rect(0, 0, 20, h))
			white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			emit := func(y, xMin int, coverage []float32) {
				Composite(dst, y, xMin, coverage, white)
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = 3
				r.Cap = graphics.LineCapRound
				r.StrokeLine(vec.Vec2{X: 10, Y: float64(h) - 2}, vec.Vec2{X: 10, Y: 2}, emit)
			}
		})
	}
}

// BenchmarkVectorTick draws the same tick outline with x/image/vector.
func BenchmarkVectorTick(b *testing.B) {
	for _, h := range tickHeights {
		b.Run(fmt.Sprintf("h%d", h), func(b *testing.B) {
			outline := LineOutline(vec.Vec2{X: 10, Y: float64(h) - 2}, vec.Vec2{X: 10, Y: 2},
				3, graphics.LineCapRound)
			r := vector.NewRasterizer(20, h)
			dst := image.NewRGBA(image.Rect(0, 0, 20, h))
			src := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(20, h)
				for i, pt := range outline.Coords {
					if i == 0 {
						r.MoveTo(float32(pt.X), float32(pt.Y))
					} else {
						r.LineTo(float32(pt.X), float32(pt.Y))
					}
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
