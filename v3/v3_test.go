/*
 * v3_test.go, part of gonucleus.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < tol
}

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("expected 2 vectors, got %d", A.NVecs())
	}
	if !near(A.Vec(1), r3.Vec{X: 4, Y: 5, Z: 6}) {
		Te.Errorf("wrong second vector: %v", A.Vec(1))
	}
	if _, err = NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("a slice not divisible by 3 should fail")
	}
	E, err := NewMatrix(nil)
	if err != nil || E.NVecs() != 0 {
		Te.Error("an empty slice should give an empty matrix", err)
	}
}

func TestFromVecs(Te *testing.T) {
	A := FromVecs([]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}})
	if A.NVecs() != 3 || !near(A.Vec(2), r3.Vec{Z: 1}) {
		Te.Errorf("wrong matrix: %v", A)
	}
	if FromVecs(nil).NVecs() != 0 {
		Te.Error("no vectors should give an empty matrix")
	}
}

//Decorations accumulate on the same error value.
func TestErrorDecorate(Te *testing.T) {
	_, err := NewMatrix([]float64{1})
	E, ok := err.(*Error)
	if !ok {
		Te.Fatalf("expected *Error, got %T", err)
	}
	E.Decorate("XYZRead")
	if deco := E.Decorate("Caller"); len(deco) != 3 || deco[0] != "NewMatrix" || deco[2] != "Caller" {
		Te.Errorf("decorations were lost: %v", deco)
	}
	if !E.Critical() {
		Te.Error("shape errors are critical")
	}
}

func TestRotateZ(Te *testing.T) {
	A := FromVecs([]r3.Vec{{X: 1}, {X: 2}})
	A.RotateZ(math.Pi/2, []int{0})
	if !near(A.Vec(0), r3.Vec{Y: 1}) {
		Te.Errorf("rotated vector should lie on Y, got %v", A.Vec(0))
	}
	if !near(A.Vec(1), r3.Vec{X: 2}) {
		Te.Errorf("vectors outside the list must not move, got %v", A.Vec(1))
	}
	A.Rotate(r3.NewRotation(math.Pi, r3.Vec{Z: 1}), nil)
	if !near(A.Vec(0), r3.Vec{Y: -1}) || !near(A.Vec(1), r3.Vec{X: -2}) {
		Te.Errorf("nil list should rotate every vector, got %v", A)
	}
	C := A.Copy()
	C.SetVec(0, r3.Vec{})
	if near(A.Vec(0), r3.Vec{}) {
		Te.Error("Copy should not share memory")
	}
}
