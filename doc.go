/*
 * doc.go, part of gotorus.
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

/*Package torus is the main package of gotorus, a small toolkit to check sets of points
generated inside the upper half of a torus.


	**gotorus Capabilities**


    Reads and writes point files (one "x y z" point per line), optionally
	zstd-compressed. Malformed lines are skipped.

    Reads and writes the torus settings file ("R=<float>" and "r=<float>"
	lines), with a strict or a defaulting validation policy.

    Samples the parametric surface of a torus, or of its upper half.

    Generates random points in the volume of the upper half of a torus.

    Computes descriptive statistics of a point set: ranges, means and
	standard deviations per axis, how many points are inside the torus
	and the distribution of Z.

The sub-package torusplot renders point sets against the torus surface,
using gonum/plot. The command torusviz puts everything together.

*/
package torus
