/*
 * point.go, part of gotorus.
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
	"math"

	v3 "github.com/rmera/gotorus/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Point3D contains the cartesian coordinates of one point. All
//three components are finite.
type Point3D struct {
	X, Y, Z float64
}

//Vec returns the point as a gonum r3 vector.
func (P Point3D) Vec() r3.Vec {
	return r3.Vec{X: P.X, Y: P.Y, Z: P.Z}
}

//Finite returns true if none of the components is NaN or infinite.
func (P Point3D) Finite() bool {
	for _, v := range [3]float64{P.X, P.Y, P.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

//Coord returns the component named by axis, which must be one of
//'x', 'y' or 'z' (upper case is also accepted).
func (P Point3D) Coord(axis byte) (float64, error) {
	switch axis {
	case 'x', 'X':
		return P.X, nil
	case 'y', 'Y':
		return P.Y, nil
	case 'z', 'Z':
		return P.Z, nil
	}
	return 0, newError(ErrIndexOutOfRange, "", fmt.Sprintf("no coordinate %q", axis), nil, true, "Point3D.Coord")
}

func (P Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", P.X, P.Y, P.Z)
}

//PointSet is an ordered set of points. The order is the one in which
//the points were read or generated.
type PointSet []Point3D

//Len returns the number of points in the set
func (S PointSet) Len() int {
	return len(S)
}

//At returns the ith point, or an error if i is out of range.
func (S PointSet) At(i int) (Point3D, error) {
	if i < 0 || i >= len(S) {
		return Point3D{}, newError(ErrIndexOutOfRange, "", fmt.Sprintf("index %d, the set has %d points", i, len(S)), nil, true, "PointSet.At")
	}
	return S[i], nil
}

//Coords returns a copy of the coordinates of the set as a Nx3 matrix.
func (S PointSet) Coords() *v3.Matrix {
	M := v3.Zeros(len(S))
	for i, p := range S {
		M.SetVec(i, p.X, p.Y, p.Z)
	}
	return M
}
