/*
 * v3_test.go, part of gotorus.
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

package v3

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if n := A.NVecs(); n != 3 {
		Te.Errorf("NVecs: got %d, want 3", n)
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("a slice not divisible by 3 should give an error")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("an empty slice should give an error")
	}
}

func TestVecView(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("changes in the view should be reflected in the matrix, got %v", A.At(1, 0))
	}
	A.SetVec(0, -1, -2, -3)
	if !floats.Equal(A.RawRowView(0), []float64{-1, -2, -3}) {
		Te.Errorf("SetVec: got %v", A.RawRowView(0))
	}
}

func TestCol(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	if err != nil {
		Te.Fatal(err)
	}
	z := A.Col(nil, 2)
	if !floats.Equal(z, []float64{3, 6, 9, 12}) {
		Te.Errorf("Col 2: got %v", z)
	}
	dst := make([]float64, 4)
	x := A.Col(dst, 0)
	if &x[0] != &dst[0] || !floats.Equal(x, []float64{1, 4, 7, 10}) {
		Te.Errorf("Col 0 should be written to dst, got %v", x)
	}
}

func TestZeros(Te *testing.T) {
	Z := Zeros(4)
	if Z.NVecs() != 4 {
		Te.Errorf("Zeros(4) has %d vectors", Z.NVecs())
	}
	E := Zeros(0)
	if E.NVecs() != 0 {
		Te.Errorf("Zeros(0) has %d vectors", E.NVecs())
	}
	if E.Col(nil, 1) != nil {
		Te.Error("Col of an empty matrix should be nil")
	}
	if E.String() != "" {
		Te.Errorf("String of an empty matrix: %q", E.String())
	}
}

func TestErrorDecorate(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2})
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("expected a *Error, got %T", err)
	}
	e.Decorate("Caller")
	deco := e.Decorate("")
	if len(deco) != 2 || deco[0] != "NewMatrix" || deco[1] != "Caller" {
		Te.Errorf("decorations should be kept, got %v", deco)
	}
	if !e.Critical() {
		Te.Error("the error should be critical")
	}
}
