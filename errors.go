/*
 * errors.go, part of gotorus.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package torus

import (
	"fmt"
	"strings"
)

//Kind identifies the class of a CError. Kinds can be used as
//targets for errors.Is.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	ErrMissingInputFile    Kind = "points file not found"
	ErrMissingSettingsFile Kind = "settings file not found"
	ErrInvalidRadius       Kind = "invalid torus radius"
	ErrMalformedSettings   Kind = "malformed settings file"
	ErrBadSampling         Kind = "bad surface sampling"
	ErrIO                  Kind = "input/output error"
	ErrIndexOutOfRange     Kind = "index out of range"
	ErrNonFinitePoint      Kind = "point with non-finite coordinates"
)

//CError is the general structure for gotorus errors. It fullfills Error and FileError.
//The underlying error, if any, can be retrieved with errors.Unwrap.
type CError struct {
	kind     Kind
	message  string
	filename string //the file that has problems, or empty string if none.
	err      error
	deco     []string
	critical bool
}

func (err *CError) Error() string {
	var b strings.Builder
	b.WriteString(string(err.kind))
	if err.filename != "" {
		fmt.Fprintf(&b, " (%s)", err.filename)
	}
	if err.message != "" {
		b.WriteString(": ")
		b.WriteString(err.message)
	}
	if err.err != nil {
		b.WriteString(": ")
		b.WriteString(err.err.Error())
	}
	return b.String()
}

//Decorate Adds new information to the error
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err *CError) Critical() bool { return err.critical }

//FileName returns the file associated to the error, or an empty string.
func (err *CError) FileName() string { return err.filename }

//Kind returns the class of the error.
func (err *CError) Kind() Kind { return err.kind }

//Is reports whether target is the Kind of the error.
func (err *CError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == err.kind
}

func (err *CError) Unwrap() error { return err.err }

func newError(kind Kind, filename, message string, cause error, critical bool, caller string) *CError {
	return &CError{kind: kind, message: message, filename: filename, err: cause, deco: []string{caller}, critical: critical}
}

//errDecorate decorates the error with the caller's name before returning it,
//if the error implements Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
