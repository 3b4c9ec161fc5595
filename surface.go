/*
 * surface.go, part of gotorus.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Default number of samples for each angle of the surface.
const (
	DefaultUSamples = 50
	DefaultVSamples = 25
)

//Mesh is a sampled torus surface. X, Y and Z have one row per value of V
//and one column per value of U, so X.At(i, j) is the X coordinate for
//the angles V[i], U[j]. A Mesh should not be modified after it is built.
type Mesh struct {
	U, V    []float64 //angles around the axis of the torus and around the tube.
	X, Y, Z *mat.Dense
	Half    bool
}

//Dims returns the number of samples of V (rows) and U (columns)
func (M *Mesh) Dims() (int, int) {
	return len(M.V), len(M.U)
}

//At returns the point of the surface for the angles V[i], U[j].
func (M *Mesh) At(i, j int) Point3D {
	return Point3D{M.X.At(i, j), M.Y.At(i, j), M.Z.At(i, j)}
}

//Surface samples the surface of the torus defined by c. U is sampled uSamples times
//evenly from 0 to 2π and V vSamples times from 0 to π if half is true (upper half of the torus,
//all Z >= 0) or from 0 to 2π otherwise. In both cases the endpoints are included, so the
//mesh closes on itself. Both sample counts must be at least 2. The radii are not
//validated here.
//Surface is a pure function: the same arguments always give an identical Mesh.
func Surface(c Config, uSamples, vSamples int, half bool) (*Mesh, error) {
	if uSamples < 2 || vSamples < 2 {
		return nil, newError(ErrBadSampling, "", fmt.Sprintf("%d x %d samples, at least 2 x 2 needed", uSamples, vSamples), nil, true, "Surface")
	}
	vmax := 2 * math.Pi
	if half {
		vmax = math.Pi
	}
	M := &Mesh{
		U:    floats.Span(make([]float64, uSamples), 0, 2*math.Pi),
		V:    floats.Span(make([]float64, vSamples), 0, vmax),
		X:    mat.NewDense(vSamples, uSamples, nil),
		Y:    mat.NewDense(vSamples, uSamples, nil),
		Z:    mat.NewDense(vSamples, uSamples, nil),
		Half: half,
	}
	//the endpoints are set exactly, so sin(V) can't go below zero on the upper half.
	M.U[uSamples-1] = 2 * math.Pi
	M.V[vSamples-1] = vmax
	for i, v := range M.V {
		sinv, cosv := math.Sincos(v)
		ring := c.Major + c.Minor*cosv
		z := c.Minor * sinv
		for j, u := range M.U {
			sinu, cosu := math.Sincos(u)
			M.X.Set(i, j, ring*cosu)
			M.Y.Set(i, j, ring*sinu)
			M.Z.Set(i, j, z)
		}
	}
	return M, nil
}

//DefaultSurface returns the upper half of the torus c, sampled
//DefaultUSamples x DefaultVSamples times.
func DefaultSurface(c Config) (*Mesh, error) {
	M, err := Surface(c, DefaultUSamples, DefaultVSamples, true)
	return M, errDecorate(err, "DefaultSurface")
}
