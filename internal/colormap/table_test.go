// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"
)

func TestLoadTables(t *testing.T) {
	fsys := fstest.MapFS{
		"tables/README":    {Data: []byte("not a table\n")},
		"tables/one.txt":   {Data: []byte("# one\n1 0 0.5\n")},
		"tables/two.txt":   {Data: []byte("0 0 0\n0.25 0.5 0.75\n")},
		"other/three.txt":  {Data: []byte("0 0 0\n")},
		"tables/sub/x.txt": {Data: []byte("0 0 0\n")},
	}
	tab, err := loadTables(fsys, "tables")
	if err != nil {
		t.Fatal(err)
	}
	want := Table{
		"one": {{1, 0, 0.5}},
		"two": {{0, 0, 0}, {0.25, 0.5, 0.75}},
	}
	if !reflect.DeepEqual(tab, want) {
		t.Errorf("got %v, want %v", tab, want)
	}

	for _, bad := range []string{"", "1 2 3\n"} {
		fsys := fstest.MapFS{"tables/bad.txt": {Data: []byte(bad)}}
		if _, err := loadTables(fsys, "tables"); err == nil {
			t.Errorf("loadTables with %q succeeded", bad)
		}
	}
}

func TestTablesChain(t *testing.T) {
	tab := Table{"viridis": {{0.5, 0.5, 0.5}}}
	p := Chain{tab, NewGradients()}

	// The table shadows the gradient of the same name.
	pal, err := p.Resolve("viridis")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(pal, tab["viridis"]) {
		t.Errorf("viridis: got %d entries from gradients, want the table", len(pal))
	}

	// Names missing from the table fall back to gradients.
	if pal, err = p.Resolve("magma"); err != nil || len(pal) != DefaultSize {
		t.Errorf("magma: got %d entries, %v", len(pal), err)
	}
	if _, err = p.Resolve("not_a_real_colormap"); !errors.Is(err, ErrUnknown) {
		t.Errorf("want ErrUnknown, got %v", err)
	}
}

func TestTablesEmbedded(t *testing.T) {
	tab, err := Tables()
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name string
		i    int
		want RGB
	}{
		{"viridis", 0, RGB{0.267004, 0.004874, 0.329415}},
		{"viridis", 128, RGB{0.127568, 0.566949, 0.550556}},
		{"viridis", 255, RGB{0.993248, 0.906157, 0.143936}},
		{"magma", 0, RGB{0.001462, 0.000466, 0.013866}},
		{"magma", 128, RGB{0.709962, 0.212797, 0.477201}},
		{"magma", 255, RGB{0.987053, 0.991438, 0.749504}},
	} {
		pal, ok := tab[test.name]
		if !ok {
			t.Skipf("no exported table for %s; run go generate", test.name)
		}
		if len(pal) != DefaultSize {
			t.Fatalf("%s: got %d entries, want %d", test.name, len(pal), DefaultSize)
		}
		for j := range test.want {
			if d := pal[test.i][j] - test.want[j]; d > 1e-6 || d < -1e-6 {
				t.Errorf("%s[%d] = %v, want %v", test.name, test.i, pal[test.i], test.want)
				break
			}
		}
	}
}
