/*
 * masses_test.go, part of gothermo.
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
	"testing"
)

//writeRef writes a small curated reference file in the Howerton layout
//(atomic number, symbol, mass).
func writeRef(Te *testing.T, dir string) string {
	path := filepath.Join(dir, "howerton_atomic_masses.txt")
	ref := "1 H 1.00798\n6 C 12.011\n26 Fe 55.847\n"
	if err := os.WriteFile(path, []byte(ref), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestBuildMassList(Te *testing.T) {
	dir := Te.TempDir()
	masses, err := BuildMassList(writeRef(Te, dir))
	if err != nil {
		Te.Fatal(err)
	}
	if len(masses) != NElements {
		Te.Fatalf("got %d masses, want %d", len(masses), NElements)
	}
	//overrides take precedence over the defaults
	if masses[0] != 1.00798 {
		Te.Errorf("hydrogen mass is %v, want the override 1.00798", masses[0])
	}
	if masses[5] != 12.011 {
		Te.Errorf("carbon mass is %v, want the override 12.011", masses[5])
	}
	if masses[25] != 55.847 {
		Te.Errorf("iron mass is %v, want the override 55.847", masses[25])
	}
	//non-overridden entries keep the default weights
	if masses[7] != DefaultWeight(8) {
		Te.Errorf("oxygen mass is %v, want the default %v", masses[7], DefaultWeight(8))
	}
	for i, m := range masses {
		if m <= 0 {
			Te.Errorf("mass of element %d is %v, want positive", i+1, m)
		}
	}
}

func TestBuildMassListMissingReference(Te *testing.T) {
	_, err := BuildMassList(filepath.Join(Te.TempDir(), "nope.txt"))
	if err == nil {
		Te.Fatal("expected an error for a missing reference file")
	}
	if ErrKind(err) != MissingReferenceFile {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), MissingReferenceFile)
	}
}

func TestMassListRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	masses, err := BuildMassList(writeRef(Te, dir))
	if err != nil {
		Te.Fatal(err)
	}
	path := filepath.Join(dir, "atomic_masses_list.txt")
	if err := WriteMassList(path, masses); err != nil {
		Te.Fatal(err)
	}
	loaded, err := LoadMassList(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(loaded) != NElements {
		Te.Fatalf("loaded %d masses, want %d", len(loaded), NElements)
	}
	for i := range masses {
		if loaded[i] != masses[i] {
			Te.Errorf("element %d: wrote %v, read %v", i+1, masses[i], loaded[i])
		}
	}
}

func TestLoadMassListMissing(Te *testing.T) {
	_, err := LoadMassList(filepath.Join(Te.TempDir(), "nope.txt"))
	if ErrKind(err) != MissingDataFile {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), MissingDataFile)
	}
}

func TestLoadMassListMalformed(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "atomic_masses_list.txt")
	if err := os.WriteFile(path, []byte("1: 1.008\n2: banana\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err := LoadMassList(path)
	if ErrKind(err) != MalformedInput {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), MalformedInput)
	}
}
