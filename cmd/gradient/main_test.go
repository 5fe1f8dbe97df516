package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cases := []config{
		{out: "gradient.png", table: "redramp", width: 500, height: 100, axisMax: 0.6, face: "basic"},
		{out: "rgb.bmp", table: "rgb", width: 100, height: 20, axisMax: 0, face: "gomono", fontSize: 10},
		{out: "pad.tiff", table: "whitered", width: 64, height: 64, pad: true, axisMax: 1, face: "basic"},
		{out: "gradient.pdf", table: "redramp", width: 500, height: 100, axisMax: 0.6, face: "basic"},
	}
	for _, cfg := range cases {
		t.Run(cfg.out, func(t *testing.T) {
			cfg.out = filepath.Join(dir, cfg.out)
			if err := run(cfg); err != nil {
				t.Fatal(err)
			}
			if fi, err := os.Stat(cfg.out); err != nil || fi.Size() == 0 {
				t.Errorf("no output: %v", err)
			}
		})
	}

	fd, err := os.Open(filepath.Join(dir, "gradient.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	cfg, err := png.DecodeConfig(fd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 500 || cfg.Height != 100 {
		t.Errorf("got %dx%d image", cfg.Width, cfg.Height)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]config{
		"table":  {out: filepath.Join(dir, "a.png"), table: "nonesuch", width: 500, height: 100, axisMax: 0.6, face: "basic"},
		"format": {out: filepath.Join(dir, "a.gif"), table: "redramp", width: 500, height: 100, axisMax: 0.6, face: "basic"},
		"font":   {out: filepath.Join(dir, "a.png"), table: "redramp", width: 500, height: 100, axisMax: 0.6, face: "comic"},
		"width":  {out: filepath.Join(dir, "a.png"), table: "redramp", width: 1, height: 100, axisMax: 0.6, face: "basic"},
		"axis":   {out: filepath.Join(dir, "a.png"), table: "redramp", width: 500, height: 100, axisMax: -1, face: "basic"},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if err := run(cfg); err == nil {
				t.Error("no error")
			}
		})
	}
}
