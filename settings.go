/*
 * settings.go, part of gotorus.
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
	"io"
	"strconv"
	"strings"
)

//Default radii used when the settings can't be read under the Defaulting policy.
const (
	DefaultMajor = 5.0
	DefaultMinor = 2.0
)

//Config contains the two radii that define a torus.
type Config struct {
	Major float64 //R, the distance from the center of the torus to the center of the tube.
	Minor float64 //r, the radius of the tube.
}

//DefaultConfig returns a Config with the default radii.
func DefaultConfig() Config {
	return Config{Major: DefaultMajor, Minor: DefaultMinor}
}

//Validate returns a critical error if either radius is not strictly positive.
func (c Config) Validate() error {
	if !(c.Major > 0) || !(c.Minor > 0) {
		return newError(ErrInvalidRadius, "", fmt.Sprintf("R=%g, r=%g, both must be positive", c.Major, c.Minor), nil, true, "Config.Validate")
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("R=%g, r=%g", c.Major, c.Minor)
}

//Policy is the way in which settings files are validated.
type Policy int

const (
	//Strict requires the settings file to exist and both radii to be positive.
	Strict Policy = iota
	//Defaulting falls back to DefaultConfig if the file is missing, and to the default
	//value of each radius missing from the file. Parsed values are not validated.
	Defaulting
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Defaulting:
		return "defaulting"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

//ParsePolicy returns the Policy named by s ("strict" or "defaulting").
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "defaulting", "default", "defaults":
		return Defaulting, nil
	}
	return Strict, fmt.Errorf("unknown settings policy %q, use strict or defaulting", s)
}

//ReadSettings reads the torus radii from a settings file with lines "R=<float>" and "r=<float>".
//Other lines are ignored and, if a key is repeated, the last occurrence wins.
//Under the Strict policy, a missing file and non-positive radii give critical errors.
//Under the Defaulting policy, a missing file gives DefaultConfig and a non-critical error
//of kind ErrMissingSettingsFile, which the caller may report and otherwise ignore.
//A value that is not a number gives a critical error under both policies.
func ReadSettings(name string, policy Policy) (Config, error) {
	r, err := openRead(name, ErrMissingSettingsFile, policy == Strict)
	if err != nil {
		if e, ok := err.(Error); ok && !e.Critical() {
			return DefaultConfig(), errDecorate(err, "ReadSettings")
		}
		return Config{}, errDecorate(err, "ReadSettings")
	}
	defer r.Close()
	c, err := SettingsRead(r, policy)
	if err != nil {
		if e, ok := err.(*CError); ok {
			e.filename = name
		}
		return c, errDecorate(err, "ReadSettings")
	}
	return c, nil
}

//SettingsRead reads the torus radii from r. See ReadSettings.
func SettingsRead(r io.Reader, policy Policy) (Config, error) {
	var c Config
	var haveMajor, haveMinor bool
	lineno := 0
	err := readLines(r, func(line string) error {
		lineno++
		var dest *float64
		switch {
		case strings.HasPrefix(line, "R="):
			dest = &c.Major
			haveMajor = true
		case strings.HasPrefix(line, "r="):
			dest = &c.Minor
			haveMinor = true
		default:
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line[2:]), 64)
		if err != nil {
			return newError(ErrMalformedSettings, "", fmt.Sprintf("line %d: %q", lineno, line), err, true, "SettingsRead")
		}
		*dest = v
		return nil
	})
	if err != nil {
		if _, ok := err.(*CError); ok {
			return Config{}, err
		}
		return Config{}, newError(ErrIO, "", "reading settings", err, true, "SettingsRead")
	}
	if policy == Defaulting {
		if !haveMajor {
			c.Major = DefaultMajor
		}
		if !haveMinor {
			c.Minor = DefaultMinor
		}
		return c, nil
	}
	if err := c.Validate(); err != nil {
		return Config{}, errDecorate(err, "SettingsRead")
	}
	return c, nil
}

//WriteSettings writes c to the file name in the format read by ReadSettings.
func WriteSettings(name string, c Config) error {
	w, err := openWrite(name)
	if err != nil {
		return errDecorate(err, "WriteSettings")
	}
	if err := SettingsWrite(w, c); err != nil {
		w.Close()
		return errDecorate(err, "WriteSettings")
	}
	if err := w.Close(); err != nil {
		return newError(ErrIO, name, "closing file", err, true, "WriteSettings")
	}
	return nil
}

//SettingsWrite writes c to w, as "R=<float>" and "r=<float>" lines.
func SettingsWrite(w io.Writer, c Config) error {
	_, err := fmt.Fprintf(w, "R=%s\nr=%s\n", strconv.FormatFloat(c.Major, 'g', -1, 64), strconv.FormatFloat(c.Minor, 'g', -1, 64))
	if err != nil {
		return newError(ErrIO, "", "writing settings", err, true, "SettingsWrite")
	}
	return nil
}
