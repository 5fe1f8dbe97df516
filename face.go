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

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FaceNames lists the names accepted by LoadFace.
var FaceNames = []string{"basic", "goregular", "gomono"}

// LoadFace returns a font face for label text.  The name "basic" selects the
// fixed 7x13 bitmap font, and size is ignored.  The names "goregular" and
// "gomono" select the Go fonts at the given size in pixels.
func LoadFace(name string, size float64) (font.Face, error) {
	var ttf []byte
	switch name {
	case "basic", "":
		return basicfont.Face7x13, nil
	case "goregular":
		ttf = goregular.TTF
	case "gomono":
		ttf = gomono.TTF
	default:
		return nil, fmt.Errorf("font %q: %w", name, ErrInvalidInput)
	}
	if !(size > 0) {
		return nil, fmt.Errorf("font %q: size %g: %w", name, size, ErrInvalidInput)
	}

	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
