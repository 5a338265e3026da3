/*
 * gonum.go, part of gonucleus.
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood that
//a "vector" is a row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs == 0 {
		//gonum does not allow empty Dense matrices, so we keep a nil one around.
		return &Matrix{}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return Zeros(0), nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//FromVecs builds a Matrix with one row per given vector.
func FromVecs(vecs []r3.Vec) *Matrix {
	M := Zeros(len(vecs))
	for i, v := range vecs {
		M.SetVec(i, v)
	}
	return M
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F.Dense == nil {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns a copy of the ith vector as an r3.Vec.
func (F *Matrix) Vec(i int) r3.Vec {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

//Copy returns a deep copy of F.
func (F *Matrix) Copy() *Matrix {
	if F.Dense == nil {
		return Zeros(0)
	}
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

//Rotate applies rot to the vectors of F with the indexes in clist.
//If clist is nil, every vector is rotated.
func (F *Matrix) Rotate(rot r3.Rotation, clist []int) {
	F.apply(rot.Rotate, clist)
}

//RotateZ rotates the given vectors of F by angle radians around the Z axis.
func (F *Matrix) RotateZ(angle float64, clist []int) {
	F.Rotate(r3.NewRotation(angle, r3.Vec{Z: 1}), clist)
}

func (F *Matrix) apply(f func(r3.Vec) r3.Vec, clist []int) {
	if clist == nil {
		for i := 0; i < F.NVecs(); i++ {
			F.SetVec(i, f(F.Vec(i)))
		}
		return
	}
	for _, i := range clist {
		F.SetVec(i, f(F.Vec(i)))
	}
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	if r == 0 {
		return "[ ]"
	}
	v := make([]string, 0, r+2)
	v = append(v, "\n[")
	for i := 0; i < r; i++ {
		c := F.Vec(i)
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", c.X, c.Y, c.Z))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}

//Errors

//Error is the error type for the v3 package. It satisfies the
//gonucleus Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("gonucleus/v3: A Matrix should have 3 columns")
	ErrIndexOutOfRange = PanicMsg("gonucleus/v3: index out of range")
)
