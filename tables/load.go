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

package tables

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"seehuhn.de/go/gradient"
)

// Load reads a gradient table from a JSON object which maps stop positions
// to colours, for example
//
//	{"0.0": "255,255,255", "0.6": "255,0,0"}
func Load(r io.Reader) (*gradient.Table, error) {
	var raw map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("gradient table: %w", err)
	}

	stops := make(map[float64]string, len(raw))
	for key, c := range raw {
		pos, err := strconv.ParseFloat(key, 64)
		if err != nil {
			return nil, fmt.Errorf("gradient table: stop position %q: %w",
				key, gradient.ErrInvalidInput)
		}
		if _, dup := stops[pos]; dup {
			return nil, fmt.Errorf("gradient table: duplicate stop position %g: %w",
				pos, gradient.ErrInvalidInput)
		}
		stops[pos] = c
	}
	return gradient.ParseTable(stops)
}

// WriteJSON writes the definition in the format read by Load.
func (d Definition) WriteJSON(w io.Writer) error {
	raw := make(map[string]string, len(d.Stops))
	for pos, c := range d.Stops {
		raw[strconv.FormatFloat(pos, 'g', -1, 64)] = c
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

// LoadFile reads a gradient table from the named JSON file.
func LoadFile(fname string) (*gradient.Table, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	tbl, err := Load(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return tbl, nil
}

// Lookup returns the built-in table with the given name or, if there is no
// such table, reads the table from the named file.
func Lookup(nameOrFile string) (*gradient.Table, error) {
	if _, ok := All[nameOrFile]; ok {
		return Get(nameOrFile)
	}
	return LoadFile(nameOrFile)
}
