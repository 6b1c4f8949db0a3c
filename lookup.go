/*
 * lookup.go, part of gothermo.
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
	"fmt"
	"strings"
)

//TableSet holds the four conversion tables as one explicit value, so
//callers decide when tables are (re)built instead of relying on
//whatever table files happen to sit on disk.
type TableSet struct {
	tables map[TableKind]*Table
}

//BuildTableSet generates all four conversion tables from a mass list
//as returned by LoadMassList.
func BuildTableSet(masses []float64) (*TableSet, error) {
	ts := &TableSet{tables: make(map[TableKind]*Table, len(TableKinds))}
	for _, kind := range TableKinds {
		t, err := BuildTable(kind, masses)
		if err != nil {
			return nil, errDecorate(err, "BuildTableSet")
		}
		ts.tables[kind] = t
	}
	return ts, nil
}

//LoadTableSet reads all four persisted tables back from dir.
func LoadTableSet(dir string) (*TableSet, error) {
	ts := &TableSet{tables: make(map[TableKind]*Table, len(TableKinds))}
	for _, kind := range TableKinds {
		t, err := ReadTableFile(fmt.Sprintf("%s/%s.txt", dir, kind))
		if err != nil {
			return nil, errDecorate(err, "LoadTableSet")
		}
		ts.tables[kind] = t
	}
	return ts, nil
}

//Table returns the table of the given kind, or nil for an unknown kind.
func (ts *TableSet) Table(kind TableKind) *Table {
	return ts.tables[kind]
}

//WriteAll persists every table under dir. Each table is an independent
//artifact: a failure on one does not stop the others, and all failures
//are returned. A nil return means every table was written.
func (ts *TableSet) WriteAll(dir string) []error {
	var errs []error
	for _, kind := range TableKinds {
		if err := ts.tables[kind].WriteFile(dir); err != nil {
			errs = append(errs, errDecorate(err, "WriteAll"))
		}
	}
	return errs
}

//tableForPair is the static decision table mapping a (starting unit,
//ending unit) pair to the table that holds its factor. J/g and Ry/atom
//dispatch independently; whether the ending unit actually has a column
//in the chosen table is left to the column match.
func tableForPair(start, end Unit) (TableKind, error) {
	switch {
	case start.IsEntropy() && end.IsEntropy():
		switch start {
		case ErgGK, MbarCcGK, JMolK:
			return EntropyForward, nil
		case JGK:
			if end == KBAtom {
				return EntropyForward, nil
			}
			return EntropyReverse, nil
		case KBAtom:
			return EntropyReverse, nil
		}
	case start.IsEnergy() && end.IsEnergy():
		switch start {
		case JG, RyAtom:
			return EnergyForward, nil
		case ErgG:
			if end == EVAtom {
				return EnergyForward, nil
			}
			return EnergyReverse, nil
		case EVAtom:
			return EnergyReverse, nil
		}
	}
	return "", CError{UnitPairNotSupported, fmt.Sprintf("no table converts %s to %s", start, end), "", []string{"tableForPair"}}
}

//Lookup resolves an element identifier (atomic number, symbol or name)
//and returns the stored conversion factor from the starting to the
//ending unit. Every failure is recoverable: the caller can report it
//and retry with a corrected query.
func (ts *TableSet) Lookup(elementID string, start, end Unit) (float64, error) {
	z, err := ResolveElement(elementID)
	if err != nil {
		return 0, errDecorate(err, "Lookup")
	}
	kind, err := tableForPair(start, end)
	if err != nil {
		return 0, errDecorate(err, "Lookup")
	}
	t := ts.tables[kind]
	if t == nil {
		return 0, CError{MissingDataFile, "table set has no " + string(kind), "", []string{"Lookup"}}
	}
	f, err := t.Factor(z, start, end)
	if err != nil {
		return 0, errDecorate(err, "Lookup")
	}
	return f, nil
}

//LookupQuery parses a free-text query of the form
//	<element> <starting unit> <ending unit>
//and runs the lookup. Wrong token counts and unknown units are
//MalformedInput / UnitNotSupported errors, never a crash.
func (ts *TableSet) LookupQuery(query string) (float64, error) {
	fields := strings.Fields(query)
	if len(fields) != 3 {
		return 0, CError{MalformedInput, fmt.Sprintf("query needs 3 fields, got %d", len(fields)), "", []string{"LookupQuery"}}
	}
	start, err := ParseUnit(fields[1])
	if err != nil {
		return 0, errDecorate(err, "LookupQuery")
	}
	end, err := ParseUnit(fields[2])
	if err != nil {
		return 0, errDecorate(err, "LookupQuery")
	}
	return ts.Lookup(fields[0], start, end)
}
