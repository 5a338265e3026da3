/*
 * token.go, part of gonucleus.
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

package formula

import (
	"fmt"
	"strconv"
	"strings"
)

//Class is the coarse category of a token, as seen by the layout rules.
type Class int

const (
	None Class = iota //no token (i.e. out of the sequence)
	P
	N
	X
	RingClass
)

func (C Class) String() string {
	switch C {
	case P:
		return "P"
	case N:
		return "N"
	case X:
		return "X"
	case RingClass:
		return "Ring"
	}
	return "None"
}

//Token is one unit of a formula. It is either an Axis or a Ring.
type Token interface {
	Class() Class
	String() string
}

//Species distinguishes the two kinds of particle.
type Species int

const (
	Proton Species = iota
	Neutron
)

func (S Species) String() string {
	if S == Neutron {
		return "neutron"
	}
	return "proton"
}

//Axis is a particle on the central axis, or a spacer, which takes
//an axis position but places nothing.
type Axis struct {
	Kind Class //P, N or X
}

func (A Axis) Class() Class { return A.Kind }

func (A Axis) String() string { return A.Kind.String() }

//Spacer returns true if the token only advances the axis.
func (A Axis) Spacer() bool { return A.Kind == X }

//Species returns the particle species of a non-spacer axis token.
func (A Axis) Species() Species {
	if A.Kind == N {
		return Neutron
	}
	return Proton
}

//Ring is a circular arrangement of protons and neutrons around the axis.
//For unified rings Protons and Neutrons are equal: each position
//in the ring carries one particle of each species.
//Only one of Tilt and ZOffset is set, depending on the grammar.
type Ring struct {
	Protons    int
	Neutrons   int
	Unified    bool
	Tilt       float64 //degrees
	ZOffset    float64
	FieldOuter float64 //0 means no field disk
}

func (R Ring) Class() Class { return RingClass }

//Count returns the number of particles in the ring.
func (R Ring) Count() int {
	return R.Protons + R.Neutrons
}

//String returns the canonical formula text for the ring.
func (R Ring) String() string {
	e := R.Tilt
	if R.ZOffset != 0 {
		e = R.ZOffset
	}
	es := strconv.FormatFloat(e, 'f', -1, 64)
	if R.Unified {
		return fmt.Sprintf("[R%dE%s]", R.Protons, es)
	}
	if R.FieldOuter > 0 {
		return fmt.Sprintf("[R%dN%dE%sF%s]", R.Protons, R.Neutrons, es, strconv.FormatFloat(R.FieldOuter, 'f', -1, 64))
	}
	return fmt.Sprintf("[R%dN%dE%s]", R.Protons, R.Neutrons, es)
}

//Format returns the formula text for a sequence of tokens.
func Format(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}

//Counts returns the number of tokens of each class in the sequence.
func Counts(tokens []Token) map[Class]int {
	ret := make(map[Class]int, 4)
	for _, t := range tokens {
		ret[t.Class()]++
	}
	return ret
}

//AxisCount returns the number of tokens that take a position on the axis,
//spacers included.
func AxisCount(tokens []Token) int {
	c := Counts(tokens)
	return c[P] + c[N] + c[X]
}
