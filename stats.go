/*
 * stats.go, part of gotorus.
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

	"github.com/rmera/gotorus/histo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

//ZBins is the number of bins of the Z histogram in a Summary.
const ZBins = 10

//appzero is the tolerance used when deciding if a point is inside the torus.
const appzero float64 = 1e-9

//AxisStats contains descriptive statistics for one coordinate of a point set.
type AxisStats struct {
	Min, Max, Mean, Std float64
}

//Summary contains descriptive statistics for a point set and the torus it was
//generated in.
type Summary struct {
	Config  Config
	N       int
	X, Y, Z AxisStats
	Inside  int         //points inside the (closed) volume of the torus.
	Upper   int         //points with Z >= 0.
	ZHisto  *histo.Data //distribution of Z over [0, r). nil if r <= 0.
}

func axisStats(x []float64) AxisStats {
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) < 2 {
		std = 0
	}
	return AxisStats{Min: floats.Min(x), Max: floats.Max(x), Mean: mean, Std: std}
}

//Inside returns true if p is inside the volume of the torus c, or on its surface.
func (c Config) Inside(p Point3D) bool {
	v := p.Vec()
	rho := r3.Norm(r3.Vec{X: v.X, Y: v.Y})
	d := r3.Norm(r3.Vec{X: rho - c.Major, Z: v.Z})
	return d <= c.Minor+appzero
}

//Stats returns descriptive statistics for ps, considering the torus c.
func Stats(ps PointSet, c Config) Summary {
	s := Summary{Config: c, N: ps.Len()}
	if s.N == 0 {
		return s
	}
	coords := ps.Coords()
	col := make([]float64, s.N)
	s.X = axisStats(coords.Col(col, 0))
	s.Y = axisStats(coords.Col(col, 1))
	z := coords.Col(nil, 2)
	s.Z = axisStats(z)
	for _, p := range ps {
		if c.Inside(p) {
			s.Inside++
		}
		if p.Z >= 0 {
			s.Upper++
		}
	}
	if c.Minor > 0 {
		s.ZHisto = histo.NewData(histo.Uniform(0, c.Minor, ZBins), z)
	}
	return s
}

//String returns the report printed after a visualization.
func (s Summary) String() string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(&b, "%s\nSTATISTICS:\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Torus parameters: R = %g, r = %g\n", s.Config.Major, s.Config.Minor)
	fmt.Fprintf(&b, "Total points: %d\n", s.N)
	if s.N == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "X range: [%.2f, %.2f]\n", s.X.Min, s.X.Max)
	fmt.Fprintf(&b, "Y range: [%.2f, %.2f]\n", s.Y.Min, s.Y.Max)
	fmt.Fprintf(&b, "Z range: [%.2f, %.2f]\n", s.Z.Min, s.Z.Max)
	fmt.Fprintf(&b, "Mean Z: %.2f (expected positive for the upper half)\n", s.Z.Mean)
	n := float64(s.N)
	fmt.Fprintf(&b, "Inside the torus: %d (%.1f%%), upper half: %d (%.1f%%)\n", s.Inside, 100*float64(s.Inside)/n, s.Upper, 100*float64(s.Upper)/n)
	if s.ZHisto != nil {
		fmt.Fprintf(&b, "Z distribution:\n%s\n", s.ZHisto.String())
	}
	return b.String()
}
