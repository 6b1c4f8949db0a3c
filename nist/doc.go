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

//Package nist imports the condensed-phase thermochemistry tables of the
//NIST webbook (temperature, heat capacity, entropy, Gibbs energy
//function, enthalpy; one table per phase per element), writes them as
//plain text and rewrites them annotated with per-atom converted columns
//(entropy in kB/atom, enthalpy in meV/atom) using the conversion
//functions of the parent package.
//
//The raw table layout and the annotated .dat layout are fixed; files
//written by one version of this package are read back by any other.
//Fetched pages can be cached on disk, zstd-compressed.
package nist
