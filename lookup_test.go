/*
 * lookup_test.go, part of gothermo.
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
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func testTableSet(Te *testing.T) *TableSet {
	ts, err := BuildTableSet(testMasses())
	if err != nil {
		Te.Fatal(err)
	}
	return ts
}

func TestLookupCarbon(Te *testing.T) {
	ts := testTableSet(Te)
	//1 J/mol/K = 1/12.011 J/g/K for carbon
	want := 1 / 12.011
	for _, id := range []string{"6", "C", "Carbon", "carbon"} {
		got, err := ts.Lookup(id, JMolK, JGK)
		if err != nil {
			Te.Fatalf("lookup for %q: %v", id, err)
		}
		if !scalar.EqualWithinRel(got, want, 1e-9) {
			Te.Errorf("lookup for %q gave %v, want %v", id, got, want)
		}
	}
}

func TestLookupDecisionTable(Te *testing.T) {
	cases := []struct {
		start, end Unit
		kind       TableKind
	}{
		{ErgGK, KBAtom, EntropyForward},
		{MbarCcGK, KBAtom, EntropyForward},
		{JMolK, JGK, EntropyForward},
		{JGK, KBAtom, EntropyForward},
		{JGK, JMolK, EntropyReverse},
		{KBAtom, ErgGK, EntropyReverse},
		{KBAtom, MbarCcGK, EntropyReverse},
		{JG, EVAtom, EnergyForward},
		{RyAtom, EVAtom, EnergyForward},
		{RyAtom, ErgG, EnergyForward},
		{ErgG, EVAtom, EnergyForward},
		{ErgG, RyAtom, EnergyReverse},
		{EVAtom, ErgG, EnergyReverse},
		{EVAtom, JG, EnergyReverse},
		{EVAtom, RyAtom, EnergyReverse},
	}
	for _, c := range cases {
		kind, err := tableForPair(c.start, c.end)
		if err != nil {
			Te.Errorf("%s -> %s: %v", c.start, c.end, err)
			continue
		}
		if kind != c.kind {
			Te.Errorf("%s -> %s went to %s, want %s", c.start, c.end, kind, c.kind)
		}
	}
}

//TestLookupConsistency cross-checks every supported pair in the
//decision table against the conversion functions directly.
func TestLookupConsistency(Te *testing.T) {
	ts := testTableSet(Te)
	m := 55.845 //iron
	cases := []struct {
		start, end Unit
		want       float64
	}{
		{ErgGK, KBAtom, SErgGK2KBAtom(1, m)},
		{JGK, KBAtom, SJGK2KBAtom(1, m)},
		{MbarCcGK, KBAtom, SMbarCcGK2KBAtom(1, m)},
		{JMolK, JGK, SJMolK2JGK(1, m)},
		{KBAtom, ErgGK, SKBAtom2ErgGK(1, m)},
		{KBAtom, JGK, SKBAtom2JGK(1, m)},
		{KBAtom, MbarCcGK, SKBAtom2MbarCcGK(1, m)},
		{JGK, JMolK, SJGK2JMolK(1, m)},
		{ErgG, EVAtom, EErgG2EVAtom(1, m)},
		{JG, EVAtom, EJG2EVAtom(1, m)},
		{RyAtom, EVAtom, ERyAtom2EVAtom(1)},
		{RyAtom, ErgG, ERyAtom2ErgG(1, m)},
		{EVAtom, ErgG, EEVAtom2ErgG(1, m)},
		{EVAtom, JG, EEVAtom2JG(1, m)},
		{EVAtom, RyAtom, EEVAtom2RyAtom(1)},
		{ErgG, RyAtom, EErgG2RyAtom(1, m)},
	}
	for _, c := range cases {
		got, err := ts.Lookup("Fe", c.start, c.end)
		if err != nil {
			Te.Errorf("%s -> %s: %v", c.start, c.end, err)
			continue
		}
		if got != c.want {
			Te.Errorf("%s -> %s gave %v, want %v", c.start, c.end, got, c.want)
		}
	}
}

func TestLookupUnsupportedPair(Te *testing.T) {
	ts := testTableSet(Te)
	//energy to entropy crosses families and must not silently hit a
	//wrong table
	_, err := ts.Lookup("6", EVAtom, MbarCcGK)
	if ErrKind(err) != UnitPairNotSupported {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), UnitPairNotSupported)
	}
	//entropy pair the tables don't tabulate
	_, err = ts.Lookup("6", ErgGK, JGK)
	if ErrKind(err) != ColumnNotFound {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), ColumnNotFound)
	}
}

func TestLookupBadElement(Te *testing.T) {
	ts := testTableSet(Te)
	if _, err := ts.Lookup("Unobtainium", JMolK, JGK); ErrKind(err) != ElementNotFound {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), ElementNotFound)
	}
	if _, err := ts.Lookup("119", JMolK, JGK); ErrKind(err) != ElementNotFound {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), ElementNotFound)
	}
}

func TestLookupQuery(Te *testing.T) {
	ts := testTableSet(Te)
	got, err := ts.LookupQuery("4 J/g/K kB/atom")
	if err != nil {
		Te.Fatal(err)
	}
	want := SJGK2KBAtom(1, DefaultWeight(4))
	if got != want {
		Te.Errorf("query gave %v, want %v", got, want)
	}
	if _, err := ts.LookupQuery("4 J/g/K"); ErrKind(err) != MalformedInput {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), MalformedInput)
	}
	if _, err := ts.LookupQuery("4 J/g/k kB/atom"); ErrKind(err) != UnitNotSupported {
		Te.Errorf("got error kind %q, want %q", ErrKind(err), UnitNotSupported)
	}
}

func TestLoadTableSet(Te *testing.T) {
	dir := Te.TempDir()
	ts := testTableSet(Te)
	if errs := ts.WriteAll(dir); errs != nil {
		Te.Fatal(errs[0])
	}
	loaded, err := LoadTableSet(dir)
	if err != nil {
		Te.Fatal(err)
	}
	got, err := loaded.Lookup("Carbon", JMolK, JGK)
	if err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinRel(got, 1/12.011, 1e-4) {
		Te.Errorf("lookup on the reloaded set gave %v, want about %v", got, 1/12.011)
	}
}
