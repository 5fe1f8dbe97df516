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

// Command gradient renders a colour gradient on a logarithmic axis.
//
// Without arguments it renders the built-in "redramp" table at 500x100
// pixels and writes the result to gradient.png.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/pdfout"
	"seehuhn.de/go/gradient/tables"
)

func main() {
	out := flag.String("o", "gradient.png", "output file (.png, .bmp, .tif, .tiff or .pdf)")
	table := flag.String("table", tables.Default,
		"built-in table ("+strings.Join(tables.Names(), ", ")+") or JSON file")
	width := flag.Int("w", 500, "image width in pixels")
	height := flag.Int("h", 100, "image height in pixels")
	pad := flag.Bool("pad", false, "extend the end colours to columns outside the table")
	axisMax := flag.Float64("axis-max", gradient.DefaultAxis.Max,
		"gradient position at the right edge (0 = last stop of the table)")
	face := flag.String("font", "basic", "label font ("+strings.Join(gradient.FaceNames, ", ")+")")
	fontSize := flag.Float64("font-size", 11, "label font size in pixels for TrueType fonts")
	show := flag.Bool("show", false, "open the result in the default viewer")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gradient.SetLogger(logger)

	cfg := config{
		out:      *out,
		table:    *table,
		width:    *width,
		height:   *height,
		pad:      *pad,
		axisMax:  *axisMax,
		face:     *face,
		fontSize: *fontSize,
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "gradient:", err)
		os.Exit(1)
	}
	logger.Info("wrote gradient", "file", cfg.out, "table", cfg.table)

	if *show {
		if err := openViewer(cfg.out); err != nil {
			fmt.Fprintln(os.Stderr, "gradient:", err)
			os.Exit(1)
		}
	}
}

type config struct {
	out           string
	table         string
	width, height int
	pad           bool
	axisMax       float64
	face          string
	fontSize      float64
}

func run(cfg config) error {
	tbl, err := tables.Lookup(cfg.table)
	if err != nil {
		return err
	}

	opt := gradient.DefaultOptions()
	if cfg.axisMax == 0 {
		opt.Axis = gradient.AxisFor(tbl)
	} else {
		opt.Axis.Max = cfg.axisMax
	}
	if cfg.pad {
		opt.Extend = gradient.ExtendPad
	}
	opt.Face, err = gradient.LoadFace(cfg.face, cfg.fontSize)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(cfg.out), ".pdf") {
		return pdfout.Write(cfg.out, cfg.width, cfg.height, tbl, opt)
	}

	img, err := gradient.Render(cfg.width, cfg.height, tbl, opt)
	if err != nil {
		return err
	}
	return gradient.Save(cfg.out, img)
}

// openViewer shows the named file using the default application of the
// host system.
func openViewer(fname string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", fname)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", fname)
	default:
		cmd = exec.Command("xdg-open", fname)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Start()
}
