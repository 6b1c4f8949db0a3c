/*
 * masses.go, part of gothermo.
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

//The atomic mass registry. The persisted mass list is the single input
//of the conversion table builders, so rebuilding it invalidates any
//previously generated table.

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//BuildMassList returns the atomic masses of the 118 elements, in g/mol,
//indexed by atomic number - 1. It starts from the default standard
//atomic weights and then overlays the values read from the curated
//reference file refpath, whose lines are
//	<atomic_number> <anything> <atomic_mass> ...
//with fields separated by blanks (the format of the Howerton atomic
//mass compilation this library was built against). An override for an
//atomic number out of 1..118 or an unparsable line is a MalformedInput
//error; a missing reference file is a MissingReferenceFile error.
func BuildMassList(refpath string) ([]float64, error) {
	masses := make([]float64, NElements)
	for i := range masses {
		masses[i] = elementWeights[i]
	}
	f, err := os.Open(refpath)
	if err != nil {
		return nil, CError{MissingReferenceFile, "can't open the atomic mass reference", refpath, []string{"BuildMassList"}}
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, CError{MalformedInput, "reference line needs at least 3 fields: " + line, refpath, []string{"BuildMassList"}}
		}
		z, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, CError{MalformedInput, "bad atomic number in reference line: " + line, refpath, []string{"BuildMassList"}}
		}
		m, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, CError{MalformedInput, "bad atomic mass in reference line: " + line, refpath, []string{"BuildMassList"}}
		}
		if z < 1 || z > NElements {
			return nil, CError{MalformedInput, fmt.Sprintf("atomic number %d out of range", z), refpath, []string{"BuildMassList"}}
		}
		masses[z-1] = m
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{MalformedInput, err.Error(), refpath, []string{"BuildMassList"}}
	}
	return masses, nil
}

//WriteMassList persists a mass list to path, one element per line, in
//the layout read back by LoadMassList:
//	<atomic_number>: <atomic_mass>
//It refuses a list whose length is not exactly NElements.
func WriteMassList(path string, masses []float64) error {
	if len(masses) != NElements {
		return CError{MalformedInput, fmt.Sprintf("mass list has %d entries, want %d", len(masses), NElements), path, []string{"WriteMassList"}}
	}
	f, err := os.Create(path)
	if err != nil {
		return CError{MissingOutputTarget, "can't create the mass list", path, []string{"WriteMassList"}}
	}
	w := bufio.NewWriter(f)
	for i, m := range masses {
		fmt.Fprintf(w, "%d: %s\n", i+1, strconv.FormatFloat(m, 'g', -1, 64))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return CError{OutputWriteFailure, err.Error(), path, []string{"WriteMassList"}}
	}
	if err := f.Close(); err != nil {
		return CError{OutputWriteFailure, err.Error(), path, []string{"WriteMassList"}}
	}
	return nil
}

//LoadMassList reads a persisted mass list back. The returned slice
//always has exactly NElements entries, indexed by atomic number - 1;
//anything else in the file is a MalformedInput error. A missing file is
//a MissingDataFile error.
func LoadMassList(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CError{MissingDataFile, "can't open the mass list", path, []string{"LoadMassList"}}
	}
	defer f.Close()
	masses := make([]float64, 0, NElements)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, CError{MalformedInput, "mass list line needs 2 fields: " + line, path, []string{"LoadMassList"}}
		}
		m, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || m <= 0 {
			return nil, CError{MalformedInput, "bad atomic mass: " + line, path, []string{"LoadMassList"}}
		}
		masses = append(masses, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{MalformedInput, err.Error(), path, []string{"LoadMassList"}}
	}
	if len(masses) != NElements {
		return nil, CError{MalformedInput, fmt.Sprintf("mass list has %d entries, want %d", len(masses), NElements), path, []string{"LoadMassList"}}
	}
	return masses, nil
}
