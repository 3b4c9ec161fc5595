/*
 * generator.go, part of gotorus.
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
	"math/rand/v2"
)

//Generator produces random points in the volume of the upper half of a torus.
//A Generator is not safe for concurrent use.
type Generator struct {
	c   Config
	rnd *rand.Rand
}

//NewGenerator returns a Generator for the torus c, seeded with seed.
//Both radii must be positive, and the tube radius must be smaller than R.
func NewGenerator(c Config, seed uint64) (*Generator, error) {
	if err := c.Validate(); err != nil {
		return nil, errDecorate(err, "NewGenerator")
	}
	if c.Minor >= c.Major {
		return nil, newError(ErrInvalidRadius, "", fmt.Sprintf("r=%g must be smaller than R=%g", c.Minor, c.Major), nil, true, "NewGenerator")
	}
	return &Generator{c: c, rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}, nil
}

//Config returns the torus the generator samples.
func (G *Generator) Config() Config {
	return G.c
}

//Rnd returns a random point inside the upper half of the torus. The angle
//around the axis u is uniform in [0, 2π), the angle around the tube v in [0, π)
//and the distance to the center of the tube s in [0, r).
//Note that the points are uniform in (u, v, s), not in volume, so they are denser
//near the center of the tube.
func (G *Generator) Rnd() Point3D {
	u := G.rnd.Float64() * 2 * math.Pi
	v := G.rnd.Float64() * math.Pi
	s := G.rnd.Float64() * G.c.Minor
	sinv, cosv := math.Sincos(v)
	sinu, cosu := math.Sincos(u)
	ring := G.c.Major + s*cosv
	return Point3D{X: ring * cosu, Y: ring * sinu, Z: s * sinv}
}

//Points returns k random points from s. k must be at least 1.
func Points(s Sampler, k int) (PointSet, error) {
	if k < 1 {
		return nil, newError(ErrIndexOutOfRange, "", fmt.Sprintf("can't generate %d points", k), nil, true, "Points")
	}
	ps := make(PointSet, k)
	for i := range ps {
		ps[i] = s.Rnd()
	}
	return ps, nil
}

//Points returns k random points inside the upper half of the torus.
func (G *Generator) Points(k int) (PointSet, error) {
	ps, err := Points(G, k)
	return ps, errDecorate(err, "Generator.Points")
}
