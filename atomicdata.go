/*
 * atomicdata.go, part of gothermo.
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

import (
	"strconv"
	"strings"
)

//NElements is the number of chemical elements known to the library.
//All per-element tables in this package have exactly this length and
//are indexed by atomic number - 1.
const NElements = 118

//Symbols of the elements, ordered by atomic number.
var elementSymbols = [NElements]string{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

//English names of the elements, ordered by atomic number.
var elementNames = [NElements]string{
	"Hydrogen", "Helium", "Lithium", "Beryllium", "Boron", "Carbon",
	"Nitrogen", "Oxygen", "Fluorine", "Neon", "Sodium", "Magnesium",
	"Aluminium", "Silicon", "Phosphorus", "Sulfur", "Chlorine", "Argon",
	"Potassium", "Calcium", "Scandium", "Titanium", "Vanadium", "Chromium",
	"Manganese", "Iron", "Cobalt", "Nickel", "Copper", "Zinc",
	"Gallium", "Germanium", "Arsenic", "Selenium", "Bromine", "Krypton",
	"Rubidium", "Strontium", "Yttrium", "Zirconium", "Niobium", "Molybdenum",
	"Technetium", "Ruthenium", "Rhodium", "Palladium", "Silver", "Cadmium",
	"Indium", "Tin", "Antimony", "Tellurium", "Iodine", "Xenon",
	"Caesium", "Barium", "Lanthanum", "Cerium", "Praseodymium", "Neodymium",
	"Promethium", "Samarium", "Europium", "Gadolinium", "Terbium", "Dysprosium",
	"Holmium", "Erbium", "Thulium", "Ytterbium", "Lutetium", "Hafnium",
	"Tantalum", "Tungsten", "Rhenium", "Osmium", "Iridium", "Platinum",
	"Gold", "Mercury", "Thallium", "Lead", "Bismuth", "Polonium",
	"Astatine", "Radon", "Francium", "Radium", "Actinium", "Thorium",
	"Protactinium", "Uranium", "Neptunium", "Plutonium", "Americium", "Curium",
	"Berkelium", "Californium", "Einsteinium", "Fermium", "Mendelevium",
	"Nobelium", "Lawrencium", "Rutherfordium", "Dubnium", "Seaborgium",
	"Bohrium", "Hassium", "Meitnerium", "Darmstadtium", "Roentgenium",
	"Copernicium", "Nihonium", "Flerovium", "Moscovium", "Livermorium",
	"Tennessine", "Oganesson",
}

//Standard atomic weights in g/mol, ordered by atomic number.
//For elements with no stable isotope the mass number of the most
//stable isotope is used, as in the usual periodic-table data sources.
var elementWeights = [NElements]float64{
	1.008, 4.002602, 6.94, 9.0121831, 10.81, 12.011,
	14.007, 15.999, 18.998403163, 20.1797, 22.98976928, 24.305,
	26.9815385, 28.085, 30.973761998, 32.06, 35.45, 39.948,
	39.0983, 40.078, 44.955908, 47.867, 50.9415, 51.9961,
	54.938044, 55.845, 58.933194, 58.6934, 63.546, 65.38,
	69.723, 72.63, 74.921595, 78.971, 79.904, 83.798,
	85.4678, 87.62, 88.90584, 91.224, 92.90637, 95.95,
	97.90721, 101.07, 102.9055, 106.42, 107.8682, 112.414,
	114.818, 118.71, 121.76, 127.6, 126.90447, 131.293,
	132.90545196, 137.327, 138.90547, 140.116, 140.90766, 144.242,
	144.91276, 150.36, 151.964, 157.25, 158.92535, 162.5,
	164.93033, 167.259, 168.93422, 173.045, 174.9668, 178.49,
	180.94788, 183.84, 186.207, 190.23, 192.217, 195.084,
	196.966569, 200.592, 204.38, 207.2, 208.9804, 209.0,
	210.0, 222.0, 223.0, 226.0, 227.0, 232.0377,
	231.03588, 238.02891, 237.0, 244.0, 243.0, 247.0,
	247.0, 251.0, 252.0, 257.0, 258.0, 259.0,
	262.0, 267.0, 268.0, 271.0, 274.0, 269.0,
	276.0, 281.0, 281.0, 285.0, 286.0, 289.0,
	289.0, 293.0, 293.0, 294.0,
}

//Symbol returns the symbol for the element with atomic number z,
//or an empty string if z is out of range.
func Symbol(z int) string {
	if z < 1 || z > NElements {
		return ""
	}
	return elementSymbols[z-1]
}

//ElementName returns the English name for the element with atomic
//number z, or an empty string if z is out of range.
func ElementName(z int) string {
	if z < 1 || z > NElements {
		return ""
	}
	return elementNames[z-1]
}

//DefaultWeight returns the standard atomic weight for the element with
//atomic number z, in g/mol, or 0 if z is out of range.
func DefaultWeight(z int) float64 {
	if z < 1 || z > NElements {
		return 0
	}
	return elementWeights[z-1]
}

//ResolveElement turns an element identifier into an atomic number. The
//identifier can be the atomic number itself ("26"), the symbol ("Fe",
//case significant in the usual chemical way) or the English name
//("Iron", case not significant). It returns an ElementNotFound error
//for anything else, and MalformedInput for an empty identifier.
func ResolveElement(id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, CError{MalformedInput, "empty element identifier", "", []string{"ResolveElement"}}
	}
	if z, err := strconv.Atoi(id); err == nil {
		if z < 1 || z > NElements {
			return 0, CError{ElementNotFound, "atomic number out of range: " + id, "", []string{"ResolveElement"}}
		}
		return z, nil
	}
	for i, s := range elementSymbols {
		if s == id {
			return i + 1, nil
		}
	}
	for i, n := range elementNames {
		if strings.EqualFold(n, id) {
			return i + 1, nil
		}
	}
	return 0, CError{ElementNotFound, "no element matches " + id, "", []string{"ResolveElement"}}
}
