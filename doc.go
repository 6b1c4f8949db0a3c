/*
 * doc.go, part of gothermo.
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

/*Package thermo converts thermodynamic properties of the chemical elements
between physical unit systems. It covers entropy and energy/enthalpy in SI,
cgs and per-atom bases, scaled by the atomic mass of each element.


	**gothermo capabilities**

    Closed-form, exactly invertible conversion functions for entropy
	(J/mol/K, J/g/K, erg/g/K, Mbar-cc/g/K, kB/atom) and energy
	(kJ/mol, J/g, erg/g, Ry/atom, eV/atom, meV/atom).

    An atomic mass registry for the 118 elements, built from the default
	standard atomic weights with overrides from a curated reference file,
	persisted as a plain text list.

    Generation of the four conversion-factor lookup tables (entropy and
	energy, forward and reverse), one row per element, in a fixed text
	layout, plus structural factor lookup by element and unit pair.

    Scraping and re-formatting of the NIST webbook condensed-phase
	thermochemistry tables (subpackage nist), annotating them with
	per-atom converted columns.

    Plotting of the imported temperature series (subpackage thermoplot).

The conversion functions themselves never fail; they require a positive
atomic mass, which is the caller's responsibility. Everything that touches
the filesystem or the network returns errors implementing the Error
interface of this package.
*/
package thermo
