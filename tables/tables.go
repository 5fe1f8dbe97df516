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

// Package tables provides named gradient tables and reads tables from JSON
// files.
//
// Tables are written as maps from stop positions to colours in "R,G,B"
// notation, the same form as accepted by [gradient.ParseTable].
package tables

import (
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/gradient"
)

// Definition is a gradient table in textual form.
type Definition struct {
	Name  string             // lowercase a-z only
	Stops map[float64]string // stop position -> "R,G,B"
}

// Table parses the definition.
func (d Definition) Table() (*gradient.Table, error) {
	tbl, err := gradient.ParseTable(d.Stops)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", d.Name, err)
	}
	return tbl, nil
}

// Default is the name of the table used when no table is selected.
const Default = "redramp"

// All contains the built-in tables, by name.
var All = map[string]Definition{
	redRamp.Name:  redRamp,
	rgb.Name:      rgb,
	whiteRed.Name: whiteRed,
}

// Names returns the names of the built-in tables in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(All))
}

// Get returns the built-in table with the given name.
func Get(name string) (*gradient.Table, error) {
	d, ok := All[name]
	if !ok {
		return nil, fmt.Errorf("unknown table %q: %w", name, gradient.ErrInvalidInput)
	}
	return d.Table()
}
