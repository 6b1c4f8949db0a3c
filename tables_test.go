/*
 * tables_test.go, part of gothermo.
 *
 * Copyright 2023 The gothermo developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package thermo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

//testMasses returns a full mass list with the hydrogen value of the
//curated reference, and defaults elsewhere.
func testMasses() []float64 {
	masses := make([]float64, NElements)
	for i := range masses {
		masses[i] = DefaultWeight(i + 1)
	}
	masses[0] = 1.00798
	return masses
}

func TestBuildTable(Te *testing.T) {
	masses := testMasses()
	for _, kind := range TableKinds {
		t, err := BuildTable(kind, masses)
		if err != nil {
			Te.Fatal(err)
		}
		if len(t.Rows) != NElements {
			Te.Errorf("%s has %d rows, want %d", kind, len(t.Rows), NElements)
		}
	}
	//column 1 of the entropy forward table is erg/g/K -> kB/atom, and
	//its hydrogen factor is the conversion of the value 1
	t, err := BuildTable(EntropyForward, masses)
	if err != nil {
		Te.Fatal(err)
	}
	if t.Columns[0].Start != ErgGK || t.Columns[0].End != KBAtom {
		Te.Fatalf("entropy forward column 1 is %s -> %s", t.Columns[0].Start, t.Columns[0].End)
	}
	want := SErgGK2KBAtom(1, 1.00798)
	if got := t.Rows[0].Factors[0]; got != want {
		Te.Errorf("hydrogen erg/g/K -> kB/atom factor is %v, want %v", got, want)
	}
}

func TestBuildTableNoMasses(Te *testing.T) {
	_, err := BuildTable(EntropyForward, nil)
	if ErrKind(err) != MissingDataFile {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), MissingDataFile)
	}
	_, err = BuildTable(EntropyForward, []float64{1, 2, 3})
	if ErrKind(err) != MalformedInput {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), MalformedInput)
	}
}

func TestTableFileLayout(Te *testing.T) {
	dir := Te.TempDir()
	t, err := BuildTable(EntropyForward, testMasses())
	if err != nil {
		Te.Fatal(err)
	}
	if err := t.WriteFile(dir); err != nil {
		Te.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, t.FileName()))
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	//two unit header lines, one label line, one data line per element
	if len(lines) != NElements+3 {
		Te.Fatalf("table has %d lines, want %d", len(lines), NElements+3)
	}
	if !strings.HasPrefix(lines[0], "Starting Unit") {
		Te.Errorf("first line is %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Ending Unit") {
		Te.Errorf("second line is %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Element") {
		Te.Errorf("third line is %q", lines[2])
	}
	//wide-range factors in scientific notation, linear ones fixed
	if !strings.Contains(lines[3], "E-") {
		Te.Errorf("hydrogen line has no scientific-notation factor: %q", lines[3])
	}
	if !strings.Contains(lines[3], "1.007980") {
		Te.Errorf("hydrogen line has no 6-decimal mass: %q", lines[3])
	}
}

func TestTableFileRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	masses := testMasses()
	for _, kind := range TableKinds {
		t, err := BuildTable(kind, masses)
		if err != nil {
			Te.Fatal(err)
		}
		if err := t.WriteFile(dir); err != nil {
			Te.Fatal(err)
		}
		read, err := ReadTableFile(filepath.Join(dir, t.FileName()))
		if err != nil {
			Te.Fatal(err)
		}
		if read.Kind != kind {
			Te.Errorf("read kind %s, want %s", read.Kind, kind)
		}
		if len(read.Rows) != len(t.Rows) {
			Te.Fatalf("%s: read %d rows, want %d", kind, len(read.Rows), len(t.Rows))
		}
		//the text format keeps 6 decimals / 7 significant digits
		for i, r := range t.Rows {
			for j := range r.Factors {
				if !scalar.EqualWithinRel(read.Rows[i].Factors[j], r.Factors[j], 1e-4) {
					Te.Errorf("%s row %d factor %d: wrote %v, read %v",
						kind, i+1, j+1, r.Factors[j], read.Rows[i].Factors[j])
				}
			}
		}
	}
}

//TestForwardReverseProduct checks that for every element the tabulated
//erg/g/K -> kB/atom factor times the kB/atom -> erg/g/K factor is 1.
func TestForwardReverseProduct(Te *testing.T) {
	masses := testMasses()
	fwd, err := BuildTable(EntropyForward, masses)
	if err != nil {
		Te.Fatal(err)
	}
	rev, err := BuildTable(EntropyReverse, masses)
	if err != nil {
		Te.Fatal(err)
	}
	for z := 1; z <= NElements; z++ {
		f, err := fwd.Factor(z, ErgGK, KBAtom)
		if err != nil {
			Te.Fatal(err)
		}
		r, err := rev.Factor(z, KBAtom, ErgGK)
		if err != nil {
			Te.Fatal(err)
		}
		if !scalar.EqualWithinRel(f*r, 1, roundTripTol) {
			Te.Errorf("element %d: forward*reverse = %v, want 1", z, f*r)
		}
	}
}

func TestFactorErrors(Te *testing.T) {
	t, err := BuildTable(EnergyForward, testMasses())
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := t.Factor(6, ErgGK, KBAtom); ErrKind(err) != ColumnNotFound {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), ColumnNotFound)
	}
	if _, err := t.Factor(300, JG, EVAtom); ErrKind(err) != ElementNotFound {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), ElementNotFound)
	}
}
