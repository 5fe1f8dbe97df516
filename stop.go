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
	"cmp"
	"fmt"
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Stop is a control point of a gradient.
type Stop struct {
	Pos   float64    // position on the gradient axis, finite and >= 0
	Color color.RGBA // opaque colour at Pos
}

// ParseColor parses a colour of the form "R,G,B", where each component is a
// decimal integer in the range 0 to 255.
func ParseColor(s string) (color.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("colour %q: need 3 components, got %d: %w",
			s, len(parts), ErrInvalidInput)
	}

	var c [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colour %q: %w", s, ErrInvalidInput)
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("colour %q: component %d out of range: %w",
				s, v, ErrInvalidInput)
		}
		c[i] = uint8(v)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, nil
}

// Table is an immutable gradient, given by at least two stops with strictly
// increasing positions.
type Table struct {
	stops []Stop
}

// NewTable returns a table containing the given stops.  The stops may be given
// in any order; the slice is copied and sorted by position.
func NewTable(stops ...Stop) (*Table, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("gradient table: need at least 2 stops, got %d: %w",
			len(stops), ErrInvalidInput)
	}

	sorted := slices.Clone(stops)
	for i := range sorted {
		pos := sorted[i].Pos
		if math.IsNaN(pos) || math.IsInf(pos, 0) || pos < 0 {
			return nil, fmt.Errorf("gradient table: invalid stop position %g: %w",
				pos, ErrInvalidInput)
		}
		sorted[i].Color.A = 255
	}
	slices.SortFunc(sorted, func(a, b Stop) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Pos == sorted[i-1].Pos {
			return nil, fmt.Errorf("gradient table: duplicate stop position %g: %w",
				sorted[i].Pos, ErrInvalidInput)
		}
	}

	return &Table{stops: sorted}, nil
}

// ParseTable builds a table from a map of positions to colours in "R,G,B"
// notation.
func ParseTable(m map[float64]string) (*Table, error) {
	stops := make([]Stop, 0, len(m))
	for pos, s := range m {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("stop %g: %w", pos, err)
		}
		stops = append(stops, Stop{Pos: pos, Color: c})
	}
	return NewTable(stops...)
}

// Stops returns a copy of the stops, in increasing order of position.
func (t *Table) Stops() []Stop {
	return slices.Clone(t.stops)
}

// Len returns the number of stops.
func (t *Table) Len() int {
	return len(t.stops)
}

// Min returns the position of the first stop.
func (t *Table) Min() float64 {
	return t.stops[0].Pos
}

// Max returns the position of the last stop.
func (t *Table) Max() float64 {
	return t.stops[len(t.stops)-1].Pos
}

// At returns the colour of the gradient at pos.
//
// The first pair of adjacent stops with s[i].Pos <= pos <= s[i+1].Pos is used
// and the colour is interpolated linearly between the two.  Each channel is
// truncated towards zero and clamped to 0-255.  If pos lies outside the
// range of the table, the second return value is false.
func (t *Table) At(pos float64) (color.RGBA, bool) {
	c, _, ok := t.at(pos)
	return c, ok
}

// Clamp is like At, but positions outside the table use the colour of the
// nearest end stop.
func (t *Table) Clamp(pos float64) color.RGBA {
	if pos < t.Min() {
		return t.stops[0].Color
	}
	if pos > t.Max() {
		return t.stops[len(t.stops)-1].Color
	}
	c, _ := t.At(pos)
	return c
}

// at does the work for At.  The middle return value reports whether any
// channel had to be clamped.
func (t *Table) at(pos float64) (c color.RGBA, clamped, ok bool) {
	for i := range len(t.stops) - 1 {
		s0, s1 := t.stops[i], t.stops[i+1]
		if s0.Pos <= pos && pos <= s1.Pos {
			ratio := (pos - s0.Pos) / (s1.Pos - s0.Pos)
			r, cr := lerpChannel(s0.Color.R, s1.Color.R, ratio)
			g, cg := lerpChannel(s0.Color.G, s1.Color.G, ratio)
			b, cb := lerpChannel(s0.Color.B, s1.Color.B, ratio)
			return color.RGBA{R: r, G: g, B: b, A: 255}, cr || cg || cb, true
		}
	}
	return color.RGBA{}, false, false
}

// lerpChannel interpolates a single 8-bit channel.  The result is truncated
// towards zero, like an integer cast, and then clamped.
func lerpChannel(a, b uint8, ratio float64) (uint8, bool) {
	v := math.Trunc(float64(a) + ratio*(float64(b)-float64(a)))
	switch {
	case v < 0:
		return 0, true
	case v > 255:
		return 255, true
	case math.IsNaN(v):
		return a, true
	}
	return uint8(v), false
}
