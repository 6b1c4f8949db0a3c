/*
 * units.go, part of gothermo.
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

//Unit labels a physical unit supported by the conversion tables. The
//set is closed: adding a unit means adding conversion functions and
//table columns for it.
type Unit string

const (
	ErgGK    Unit = "erg/g/K"     //cgs entropy
	MbarCcGK Unit = "Mbar-cc/g/K" //shock-physics entropy
	JGK      Unit = "J/g/K"       //SI entropy
	JMolK    Unit = "J/mol/K"     //molar entropy
	KBAtom   Unit = "kB/atom"     //per-atom entropy
	ErgG     Unit = "erg/g"       //cgs energy
	JG       Unit = "J/g"         //SI energy
	RyAtom   Unit = "Ry/atom"     //per-atom energy, Rydberg
	EVAtom   Unit = "eV/atom"     //per-atom energy, electronvolt
)

//units holds every supported unit. To be updated when adding units.
var units = []Unit{ErgGK, MbarCcGK, JGK, JMolK, KBAtom, ErgG, JG, RyAtom, EVAtom}

//ParseUnit checks that s names a supported unit and returns it as a
//Unit. The match is exact, including case: "J/g/K" is a unit, "j/g/k"
//is not.
func ParseUnit(s string) (Unit, error) {
	for _, u := range units {
		if string(u) == s {
			return u, nil
		}
	}
	return "", CError{UnitNotSupported, s + " is not a supported unit", "", []string{"ParseUnit"}}
}

//IsEntropy returns whether u is an entropy unit. The per-atom entropy
//unit kB/atom counts as entropy.
func (u Unit) IsEntropy() bool {
	switch u {
	case ErgGK, MbarCcGK, JGK, JMolK, KBAtom:
		return true
	}
	return false
}

//IsEnergy returns whether u is an energy unit.
func (u Unit) IsEnergy() bool {
	switch u {
	case ErgG, JG, RyAtom, EVAtom:
		return true
	}
	return false
}
