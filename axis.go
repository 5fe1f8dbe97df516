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
	"math"
)

// LogAxis maps the horizontal image axis to gradient positions.
//
// A linear fraction t in [0, 1] corresponds to the position
//
//	pos = 10^(log10(ε) + t·(log10(Max+ε) - log10(ε))) - ε
//
// so that t = 0 gives position 0 and t = 1 gives position Max.  Small
// positions get a much larger share of the axis than with a linear map.
type LogAxis struct {
	// Epsilon shifts positions away from zero before taking logarithms.
	// Must be > 0.
	Epsilon float64

	// Max is the position at the right end of the axis.  This is a fixed
	// anchor and need not agree with the last stop of the table.
	// Must be > 0.
	Max float64
}

// DefaultAxis is the axis used when no other axis is configured.
var DefaultAxis = LogAxis{Epsilon: 1e-4, Max: 0.6}

// AxisFor returns the default axis, but anchored at the last stop of tbl.
func AxisFor(tbl *Table) LogAxis {
	return LogAxis{Epsilon: DefaultAxis.Epsilon, Max: tbl.Max()}
}

// Check returns an error if the axis parameters cannot be used.
func (a LogAxis) Check() error {
	if !(a.Epsilon > 0) || math.IsInf(a.Epsilon, 0) {
		return fmt.Errorf("log axis: epsilon %g: %w", a.Epsilon, ErrInvalidInput)
	}
	if !(a.Max > 0) || math.IsInf(a.Max, 0) {
		return fmt.Errorf("log axis: max %g: %w", a.Max, ErrInvalidInput)
	}
	return nil
}

func (a LogAxis) logRange() (logMin, logMax float64) {
	return math.Log10(a.Epsilon), math.Log10(a.Max + a.Epsilon)
}

// Position returns the gradient position for the linear fraction t.
// The end points t <= 0 and t >= 1 map exactly to 0 and Max.
func (a LogAxis) Position(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return a.Max
	}
	logMin, logMax := a.logRange()
	logPos := logMin + t*(logMax-logMin)
	return math.Pow(10, logPos) - a.Epsilon
}

// Fraction is the inverse of Position.  Positions outside [0, Max] give
// fractions outside [0, 1].
func (a LogAxis) Fraction(pos float64) float64 {
	logMin, logMax := a.logRange()
	return (math.Log10(pos+a.Epsilon) - logMin) / (logMax - logMin)
}

// ColumnPosition returns the gradient position of pixel column x in an image
// of the given width.  The width must be at least 2.
func (a LogAxis) ColumnPosition(x, width int) float64 {
	return a.Position(float64(x) / float64(width-1))
}

// Column returns the pixel column closest to the gradient position pos in an
// image of the given width.  The result may lie outside [0, width).
func (a LogAxis) Column(pos float64, width int) int {
	return int(math.Round(a.Fraction(pos) * float64(width-1)))
}
