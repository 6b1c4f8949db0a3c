/*
 * tables.go, part of gothermo.
 *
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

//Conversion-factor tables. A table holds, for every element, the scalar
//that turns one unit of each starting unit into the paired ending unit.
//The column layout is fixed per table kind and shared between the
//builder, the writer, the reader and the lookup, so a factor is always
//addressed by its (starting unit, ending unit) pair and never by a
//re-derived text index.

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

//TableKind names one of the four conversion tables. The values double
//as the file stems the tables are persisted under.
type TableKind string

const (
	EntropyForward TableKind = "entropy_conversion_table"
	EntropyReverse TableKind = "entropy_conversion_table_reverse"
	EnergyForward  TableKind = "energy_conversion_table"
	EnergyReverse  TableKind = "energy_conversion_table_reverse"
)

//TableKinds lists the four table kinds in generation order.
var TableKinds = []TableKind{EntropyForward, EntropyReverse, EnergyForward, EnergyReverse}

//Column is one typed column of a conversion table: the unit pair it
//converts between, and whether its factors span a dynamic range that
//needs scientific notation in the persisted file.
type Column struct {
	Start Unit
	End   Unit
	sci   bool
}

//verb returns the fmt verb the column's factors are persisted with.
//Linear-scale factors use fixed 6-decimal notation, wide-range ones
//6-significant-digit scientific notation.
func (c Column) verb() string {
	if c.sci {
		return "%.6E"
	}
	return "%.6f"
}

//The fixed column layout of each table kind, and the conversion
//function behind each column. Mass-independent conversions ignore the
//mass argument.
var tableColumns = map[TableKind][4]Column{
	EntropyForward: {
		{ErgGK, KBAtom, true},
		{JGK, KBAtom, false},
		{MbarCcGK, KBAtom, true},
		{JMolK, JGK, false},
	},
	EntropyReverse: {
		{KBAtom, ErgGK, true},
		{KBAtom, JGK, false},
		{KBAtom, MbarCcGK, true},
		{JGK, JMolK, false},
	},
	EnergyForward: {
		{ErgG, EVAtom, true},
		{JG, EVAtom, true},
		{RyAtom, EVAtom, false},
		{RyAtom, ErgG, true},
	},
	EnergyReverse: {
		{EVAtom, ErgG, true},
		{EVAtom, JG, false},
		{EVAtom, RyAtom, false},
		{ErgG, RyAtom, true},
	},
}

var tableConvs = map[TableKind][4]func(v, m float64) float64{
	EntropyForward: {
		SErgGK2KBAtom,
		SJGK2KBAtom,
		SMbarCcGK2KBAtom,
		SJMolK2JGK,
	},
	EntropyReverse: {
		SKBAtom2ErgGK,
		SKBAtom2JGK,
		SKBAtom2MbarCcGK,
		SJGK2JMolK,
	},
	EnergyForward: {
		EErgG2EVAtom,
		EJG2EVAtom,
		func(v, m float64) float64 { return ERyAtom2EVAtom(v) },
		ERyAtom2ErgG,
	},
	EnergyReverse: {
		EEVAtom2ErgG,
		EEVAtom2JG,
		func(v, m float64) float64 { return EEVAtom2RyAtom(v) },
		EErgG2RyAtom,
	},
}

//Row is one element's worth of conversion factors.
type Row struct {
	Z       int //atomic number
	Mass    float64
	Factors [4]float64
}

//Table is one conversion table: its kind, its typed columns and one
//row per element.
type Table struct {
	Kind    TableKind
	Columns [4]Column
	Rows    []Row
}

//BuildTable generates the table of the given kind from a mass list as
//returned by LoadMassList (indexed by atomic number - 1). The factors
//are the conversion functions applied to the value 1. It fails with a
//MissingDataFile error if the mass list is empty and MalformedInput if
//it has the wrong length.
func BuildTable(kind TableKind, masses []float64) (*Table, error) {
	cols, ok := tableColumns[kind]
	if !ok {
		return nil, CError{MalformedInput, "unknown table kind " + string(kind), "", []string{"BuildTable"}}
	}
	if len(masses) == 0 {
		return nil, CError{MissingDataFile, "no atomic mass data, build the mass list first", "", []string{"BuildTable"}}
	}
	if len(masses) != NElements {
		return nil, CError{MalformedInput, fmt.Sprintf("mass list has %d entries, want %d", len(masses), NElements), "", []string{"BuildTable"}}
	}
	convs := tableConvs[kind]
	t := &Table{Kind: kind, Columns: cols, Rows: make([]Row, NElements)}
	for i, m := range masses {
		r := Row{Z: i + 1, Mass: m}
		for j, conv := range convs {
			r.Factors[j] = conv(1, m)
		}
		t.Rows[i] = r
	}
	return t, nil
}

//Factor returns the conversion factor stored for the element with
//atomic number z and the given unit pair. Both unit labels of a column
//must match jointly; the first matching column wins, so a unit
//appearing in several columns is not ambiguous. It fails with
//ColumnNotFound if no column converts start to end, and ElementNotFound
//if z has no row.
func (t *Table) Factor(z int, start, end Unit) (float64, error) {
	col := -1
	for i, c := range t.Columns {
		if c.Start == start && c.End == end {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, CError{ColumnNotFound, fmt.Sprintf("table %s has no %s -> %s column", t.Kind, start, end), "", []string{"Factor"}}
	}
	for _, r := range t.Rows {
		if r.Z == z {
			return r.Factors[col], nil
		}
	}
	return 0, CError{ElementNotFound, fmt.Sprintf("no row for atomic number %d", z), "", []string{"Factor"}}
}

//FileName returns the name the table is persisted under.
func (t *Table) FileName() string {
	return string(t.Kind) + ".txt"
}

//headerLine lays out one of the two unit header lines the way the
//reference tables have always been written: label, then the four unit
//names, tab-separated with short names double-tabbed for alignment.
func headerLine(label string, unit func(Column) Unit, cols [4]Column) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString("\t\t\t")
	for i, c := range cols {
		b.WriteString(string(unit(c)))
		if i == len(cols)-1 {
			b.WriteString("\n")
		} else if len(unit(c)) >= 8 {
			b.WriteString("\t")
		} else {
			b.WriteString("\t\t")
		}
	}
	return b.String()
}

//WriteFile persists the table under dir, in the fixed text layout: two
//unit header lines, one label line, then one data line per element with
//the atomic mass in 6-decimal notation and each factor formatted per
//its column. Failures are MissingOutputTarget or OutputWriteFailure
//errors; they concern this table only.
func (t *Table) WriteFile(dir string) error {
	path := filepath.Join(dir, t.FileName())
	f, err := os.Create(path)
	if err != nil {
		return CError{MissingOutputTarget, "can't create the table file", path, []string{"WriteFile"}}
	}
	w := bufio.NewWriter(f)
	w.WriteString(headerLine("Starting Unit", func(c Column) Unit { return c.Start }, t.Columns))
	w.WriteString(headerLine("Ending Unit", func(c Column) Unit { return c.End }, t.Columns))
	w.WriteString("Element\t\tAMass\n")
	for _, r := range t.Rows {
		fmt.Fprintf(w, "%d\t\t%.6f", r.Z, r.Mass)
		for j, c := range t.Columns {
			w.WriteString("\t")
			fmt.Fprintf(w, c.verb(), r.Factors[j])
		}
		w.WriteString("\n")
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return CError{OutputWriteFailure, err.Error(), path, []string{"WriteFile"}}
	}
	if err := f.Close(); err != nil {
		return CError{OutputWriteFailure, err.Error(), path, []string{"WriteFile"}}
	}
	return nil
}

//splitTabs splits a table line on tabs and drops the empty strings the
//alignment tabs produce.
func splitTabs(line string) []string {
	raw := strings.Split(strings.TrimRight(line, "\n"), "\t")
	fields := raw[:0]
	for _, s := range raw {
		if s != "" {
			fields = append(fields, s)
		}
	}
	return fields
}

//ReadTableFile reads a persisted conversion table back into the
//structured model. The kind is recovered by matching the header unit
//pairs against the known column layouts. Malformed headers or rows are
//MalformedInput errors; a missing file is a MissingDataFile error.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CError{MissingDataFile, "can't open the table file", path, []string{"ReadTableFile"}}
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	var start, end []string
	for scanner.Scan() {
		fields := splitTabs(scanner.Text())
		if len(fields) > 0 && fields[0] == "Starting Unit" {
			start = fields[1:]
		}
		if len(fields) > 0 && fields[0] == "Ending Unit" {
			end = fields[1:]
			break
		}
	}
	if len(start) != 4 || len(end) != 4 {
		return nil, CError{MalformedInput, "table has no valid unit headers", path, []string{"ReadTableFile"}}
	}
	var cols [4]Column
	for i := range cols {
		cols[i] = Column{Start: Unit(start[i]), End: Unit(end[i])}
	}
	kind := TableKind("")
	for k, known := range tableColumns {
		match := true
		for i := range known {
			if known[i].Start != cols[i].Start || known[i].End != cols[i].End {
				match = false
				break
			}
		}
		if match {
			kind = k
			cols = known //recover the formatting flags too
			break
		}
	}
	if kind == "" {
		return nil, CError{MalformedInput, "table headers match no known table kind", path, []string{"ReadTableFile"}}
	}
	t := &Table{Kind: kind, Columns: cols}
	for scanner.Scan() {
		fields := splitTabs(scanner.Text())
		if len(fields) == 0 || fields[0] == "Element" {
			continue
		}
		if len(fields) != 6 {
			return nil, CError{MalformedInput, "table row needs 6 fields: " + scanner.Text(), path, []string{"ReadTableFile"}}
		}
		z, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, CError{MalformedInput, "bad atomic number: " + fields[0], path, []string{"ReadTableFile"}}
		}
		r := Row{Z: z}
		if r.Mass, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, CError{MalformedInput, "bad atomic mass: " + fields[1], path, []string{"ReadTableFile"}}
		}
		for j := 0; j < 4; j++ {
			if r.Factors[j], err = strconv.ParseFloat(fields[j+2], 64); err != nil {
				return nil, CError{MalformedInput, "bad factor: " + fields[j+2], path, []string{"ReadTableFile"}}
			}
		}
		t.Rows = append(t.Rows, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{MalformedInput, err.Error(), path, []string{"ReadTableFile"}}
	}
	return t, nil
}
