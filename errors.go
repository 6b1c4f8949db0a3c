/*
 * errors.go, part of gothermo.
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

import "fmt"

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	error
	Decorate(string) []string //Adds information when passing the error up. Each call returns the current "decoration" slice of strings. If passed an empty string, it just returns the current value without adding anything.
}

//Error kinds. Kind tells apart the failure classes without parsing the
//message text.
const (
	MissingReferenceFile = "missing reference file"
	MissingDataFile      = "missing data file"
	MissingOutputTarget  = "missing output target"
	OutputWriteFailure   = "output write failure"
	UnitNotSupported     = "unit not supported"
	UnitPairNotSupported = "unit pair not supported"
	ColumnNotFound       = "column not found"
	ElementNotFound      = "element not found"
	AmbiguousColumnMatch = "ambiguous column match"
	MalformedInput       = "malformed input"
)

//CError is the concrete error type of the library. It fulfills the Error
//interface. The zero filename means the error is not tied to any file.
type CError struct {
	kind     string
	message  string
	filename string
	deco     []string
}

func (err CError) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("thermo: %s: %s (file %s)", err.kind, err.message, err.filename)
	}
	return fmt.Sprintf("thermo: %s: %s", err.kind, err.message)
}

//Kind returns the failure class of the error, one of the constants
//defined in this file.
func (err CError) Kind() string { return err.kind }

//FileName returns the file the error is associated with, or an empty
//string.
func (err CError) FileName() string { return err.filename }

//Decorate adds new information to the error.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Calling it with anything else panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//ErrKind returns the Kind of err if it is a CError from this library,
//and an empty string otherwise.
func ErrKind(err error) string {
	if e, ok := err.(CError); ok {
		return e.Kind()
	}
	return ""
}
