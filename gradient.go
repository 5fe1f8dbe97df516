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

// Package gradient renders horizontal colour gradients on a logarithmic axis.
//
// A gradient is given by a [Table] of colour stops.  [Render] maps every
// pixel column to a position in the table using a [LogAxis], so that most of
// the image width is spent on positions close to zero, fills the column with
// the linearly interpolated colour and finally marks the axis with ticks and
// percentage labels at fixed linear intervals.
//
// The package does not write any log output by default; see [SetLogger].
package gradient

import "errors"

// ErrInvalidInput is returned (wrapped) when the arguments of an operation
// cannot be used to render a gradient.  Use [errors.Is] to test for it.
var ErrInvalidInput = errors.New("invalid input")
