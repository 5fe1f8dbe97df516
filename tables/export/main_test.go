package main

import (
	"path/filepath"
	"testing"

	"seehuhn.de/go/gradient/tables"
)

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tables")
	if err := export(dir); err != nil {
		t.Fatal(err)
	}
	for _, name := range tables.Names() {
		tbl, err := tables.LoadFile(filepath.Join(dir, name+".json"))
		if err != nil {
			t.Fatal(err)
		}
		if tbl.Len() != len(tables.All[name].Stops) {
			t.Errorf("%s: got %d stops", name, tbl.Len())
		}
	}
}
