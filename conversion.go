/*
 * conversion.go, part of gothermo.
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
 *
 */

package thermo

//This provides the physical constants and the pairwise unit conversion
//functions for entropy and energy. Each conversion has its exact algebraic
//inverse defined next to it, so reverse(forward(x)) recovers x to double
//precision.

//Physical constants. CODATA values, except RydbergErg which is the
//fixed value the reference tables were produced with.
const (
	Boltzmann  = 1.380649e-23    //J/K
	Avogadro   = 6.02214076e23   //1/mol
	Charge     = 1.602176634e-19 //Elementary charge (C)
	Erg        = 1e-7            //J per erg
	RydbergErg = 2.17987e-11     //One Rydberg, in erg
	EVPerRy    = 13.6056         //eV per Rydberg
	MbarCc     = 1e5             //J per Mbar-cc
)

//Atomic masses are always in g/mol. None of the following functions
//validates its input: a non-positive atomic mass yields a nonsensical
//(possibly infinite) result, not an error.

//Entropy conversions.

//SJMolK2KBAtom converts entropy from J/mol/K to kB/atom.
func SJMolK2KBAtom(s float64) float64 {
	return s / (Boltzmann * Avogadro)
}

//SKBAtom2JMolK converts entropy from kB/atom to J/mol/K.
func SKBAtom2JMolK(s float64) float64 {
	return s * (Boltzmann * Avogadro)
}

//SErgGK2KBAtom converts entropy from erg/g/K (cgs) to kB/atom for an
//element of atomic mass m.
func SErgGK2KBAtom(s, m float64) float64 {
	return s * m / (Boltzmann / Erg * Avogadro)
}

//SKBAtom2ErgGK converts entropy from kB/atom to erg/g/K (cgs).
func SKBAtom2ErgGK(s, m float64) float64 {
	return s * Boltzmann / Erg * Avogadro / m
}

//SJGK2KBAtom converts entropy from J/g/K (SI) to kB/atom.
func SJGK2KBAtom(s, m float64) float64 {
	return s * m / (Boltzmann * Avogadro)
}

//SKBAtom2JGK converts entropy from kB/atom to J/g/K (SI).
func SKBAtom2JGK(s, m float64) float64 {
	return s * Boltzmann * Avogadro / m
}

//SMbarCcGK2KBAtom converts entropy from Mbar-cc/g/K to kB/atom.
func SMbarCcGK2KBAtom(s, m float64) float64 {
	return s * m * MbarCc / (Boltzmann * Avogadro)
}

//SKBAtom2MbarCcGK converts entropy from kB/atom to Mbar-cc/g/K.
func SKBAtom2MbarCcGK(s, m float64) float64 {
	return s * Boltzmann * Avogadro / (m * MbarCc)
}

//SJMolK2JGK converts entropy from J/mol/K to J/g/K.
func SJMolK2JGK(s, m float64) float64 {
	return s / m
}

//SJGK2JMolK converts entropy from J/g/K to J/mol/K.
func SJGK2JMolK(s, m float64) float64 {
	return s * m
}

//SJGK2ErgGK converts entropy from J/g/K to erg/g/K.
func SJGK2ErgGK(s float64) float64 {
	return s / Erg
}

//SErgGK2JGK converts entropy from erg/g/K to J/g/K.
func SErgGK2JGK(s float64) float64 {
	return s * Erg
}

//SMbarCcGK2JGK converts entropy from Mbar-cc/g/K to J/g/K.
func SMbarCcGK2JGK(s float64) float64 {
	return s * MbarCc
}

//SJGK2MbarCcGK converts entropy from J/g/K to Mbar-cc/g/K.
func SJGK2MbarCcGK(s float64) float64 {
	return s / MbarCc
}

//Energy conversions.

//EKJMol2MeVAtom converts energy from kJ/mol to meV/atom.
func EKJMol2MeVAtom(e float64) float64 {
	return 1000 * e / (Charge * Avogadro / 1000)
}

//EMeVAtom2KJMol converts energy from meV/atom to kJ/mol.
func EMeVAtom2KJMol(e float64) float64 {
	return e * (Charge * Avogadro / 1000) / 1000
}

//EEVAtom2ErgG converts energy from eV/atom to erg/g.
func EEVAtom2ErgG(e, m float64) float64 {
	return e * (Charge * Avogadro / Erg) / m
}

//EErgG2EVAtom converts energy from erg/g to eV/atom.
func EErgG2EVAtom(e, m float64) float64 {
	return e * m / (Charge * Avogadro / Erg)
}

//EJG2EVAtom converts energy from J/g to eV/atom.
func EJG2EVAtom(e, m float64) float64 {
	return e * m / (Charge * Avogadro)
}

//EEVAtom2JG converts energy from eV/atom to J/g.
func EEVAtom2JG(e, m float64) float64 {
	return e * Charge * Avogadro / m
}

//ERyAtom2ErgG converts energy from Ry/atom to erg/g.
func ERyAtom2ErgG(e, m float64) float64 {
	return e * RydbergErg * Avogadro / m
}

//EErgG2RyAtom converts energy from erg/g to Ry/atom.
func EErgG2RyAtom(e, m float64) float64 {
	return e * m / (RydbergErg * Avogadro)
}

//ERyAtom2EVAtom converts energy from Ry/atom to eV/atom.
func ERyAtom2EVAtom(e float64) float64 {
	return e * EVPerRy
}

//EEVAtom2RyAtom converts energy from eV/atom to Ry/atom.
func EEVAtom2RyAtom(e float64) float64 {
	return e / EVPerRy
}
