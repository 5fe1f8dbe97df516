package gradient

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func whiteRed(t testing.TB) *Table {
	t.Helper()
	tbl, err := NewTable(Stop{Pos: 0, Color: white}, Stop{Pos: 0.6, Color: red})
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestParseColor(t *testing.T) {
	good := []struct {
		in   string
		want color.RGBA
	}{
		{"255,227,227", color.RGBA{R: 255, G: 227, B: 227, A: 255}},
		{"0,0,0", color.RGBA{A: 255}},
		{" 1, 2 ,3 ", color.RGBA{R: 1, G: 2, B: 3, A: 255}},
	}
	for _, test := range good {
		got, err := ParseColor(test.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseColor(%q) = %v, want %v", test.in, got, test.want)
		}
	}

	bad := []string{"", "1,2", "1,2,3,4", "a,b,c", "256,0,0", "-1,0,0", "1.5,0,0"}
	for _, in := range bad {
		_, err := ParseColor(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseColor(%q): got error %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestNewTableSorts(t *testing.T) {
	tbl, err := NewTable(
		Stop{Pos: 1, Color: red},
		Stop{Pos: 0, Color: white},
		Stop{Pos: 0.5, Color: color.RGBA{G: 255}},
	)
	if err != nil {
		t.Fatal(err)
	}

	stops := tbl.Stops()
	for i := 1; i < len(stops); i++ {
		if stops[i-1].Pos >= stops[i].Pos {
			t.Errorf("stops not sorted: %v", stops)
		}
	}
	if tbl.Len() != 3 || tbl.Min() != 0 || tbl.Max() != 1 {
		t.Errorf("got len=%d min=%g max=%g", tbl.Len(), tbl.Min(), tbl.Max())
	}
	if stops[1].Color.A != 255 {
		t.Errorf("stop colour not opaque: %v", stops[1].Color)
	}

	// the copy returned by Stops must not alias the table
	stops[0].Color = red
	if c, _ := tbl.At(0); c != white {
		t.Errorf("table modified through Stops(): %v", c)
	}
}

func TestNewTableInvalid(t *testing.T) {
	cases := map[string][]Stop{
		"empty":     nil,
		"single":    {{Pos: 0, Color: white}},
		"duplicate": {{Pos: 0, Color: white}, {Pos: 0.3, Color: red}, {Pos: 0.3, Color: white}},
		"nan":       {{Pos: 0, Color: white}, {Pos: math.NaN(), Color: red}},
		"inf":       {{Pos: 0, Color: white}, {Pos: math.Inf(1), Color: red}},
		"negative":  {{Pos: -0.1, Color: white}, {Pos: 0.5, Color: red}},
	}
	for name, stops := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewTable(stops...)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got error %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestParseTable(t *testing.T) {
	tbl, err := ParseTable(map[float64]string{
		0.0: "255,255,255",
		0.6: "255,0,0",
	})
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := tbl.At(0.6); c != red {
		t.Errorf("At(0.6) = %v, want %v", c, red)
	}

	_, err = ParseTable(map[float64]string{0: "255,255,255", 1: "red"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got error %v, want ErrInvalidInput", err)
	}
}

func TestTableAt(t *testing.T) {
	tbl := whiteRed(t)

	cases := []struct {
		pos  float64
		want color.RGBA
		ok   bool
	}{
		{0, white, true},
		{0.6, red, true},
		{0.3, color.RGBA{R: 255, G: 127, B: 127, A: 255}, true}, // 127.5 is truncated
		{-0.01, color.RGBA{}, false},
		{0.61, color.RGBA{}, false},
	}
	for _, test := range cases {
		got, ok := tbl.At(test.pos)
		if ok != test.ok || got != test.want {
			t.Errorf("At(%g) = %v, %t, want %v, %t", test.pos, got, ok, test.want, test.ok)
		}
	}
}

func TestTableClamp(t *testing.T) {
	tbl, err := NewTable(Stop{Pos: 0.1, Color: white}, Stop{Pos: 0.5, Color: red})
	if err != nil {
		t.Fatal(err)
	}
	if c := tbl.Clamp(0); c != white {
		t.Errorf("Clamp(0) = %v, want %v", c, white)
	}
	if c := tbl.Clamp(1); c != red {
		t.Errorf("Clamp(1) = %v, want %v", c, red)
	}
	mid, _ := tbl.At(0.3)
	if c := tbl.Clamp(0.3); c != mid {
		t.Errorf("Clamp(0.3) = %v, want %v", c, mid)
	}
}

// TestTableMonotonic checks that colours change monotonically between two
// stops, without overshoot.
func TestTableMonotonic(t *testing.T) {
	tbl := whiteRed(t)

	prev, _ := tbl.At(0)
	for i := 1; i <= 1000; i++ {
		c, ok := tbl.At(0.6 * float64(i) / 1000)
		if !ok {
			t.Fatalf("no colour at step %d", i)
		}
		if c.R != 255 || c.G > prev.G || c.B > prev.B || c.G != c.B {
			t.Fatalf("step %d: %v after %v", i, c, prev)
		}
		prev = c
	}
	if prev != red {
		t.Errorf("last colour %v, want %v", prev, red)
	}
}

func TestLerpChannel(t *testing.T) {
	cases := []struct {
		a, b    uint8
		ratio   float64
		want    uint8
		clamped bool
	}{
		{0, 255, 0, 0, false},
		{0, 255, 1, 255, false},
		{0, 10, 0.99, 9, false}, // truncation, not rounding
		{0, 200, 2, 255, true},
		{200, 0, 2, 0, true},
		{10, 20, math.NaN(), 10, true},
	}
	for _, test := range cases {
		got, clamped := lerpChannel(test.a, test.b, test.ratio)
		if got != test.want || clamped != test.clamped {
			t.Errorf("lerpChannel(%d, %d, %g) = %d, %t, want %d, %t",
				test.a, test.b, test.ratio, got, clamped, test.want, test.clamped)
		}
	}
}
