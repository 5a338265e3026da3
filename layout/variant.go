/*
 * variant.go, part of gonucleus.
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

package layout

import (
	"fmt"

	"github.com/rmera/gonucleus/formula"
)

//Any matches every class in a Rule, including formula.None.
const Any formula.Class = -1

//Rule gives the offset of a ring's wrapper from the axis cursor, when the
//tokens around the ring match. Positions out of the token sequence have
//the class formula.None.
type Rule struct {
	Prev2, Prev1 formula.Class
	Next1, Next2 formula.Class
	Offset       float64
}

func matches(want, got formula.Class) bool {
	return want == Any || want == got
}

//Match returns true if the rule applies to the given neighbourhood.
func (R Rule) Match(prev2, prev1, next1, next2 formula.Class) bool {
	return matches(R.Prev2, prev2) && matches(R.Prev1, prev1) && matches(R.Next1, next1) && matches(R.Next2, next2)
}

//TiltMode says how a ring's tilt is turned into positions.
type TiltMode int

const (
	//Displace moves each member along Z by r*sin(tilt) and scales its planar
	//radius by cos(tilt).
	Displace TiltMode = iota
	//Rotate rotates the whole ring plane by the tilt around the local X axis.
	Rotate
)

//Variant is a grammar together with the layout rules that go with it.
type Variant struct {
	Grammar       formula.Grammar
	Rules         []Rule
	DefaultOffset float64
	TiltMode      TiltMode
	AxisFieldDisk bool //put a field disk around each axis proton
}

var (
	VariantA = Variant{
		Grammar: formula.GrammarA,
		Rules: []Rule{
			{Prev2: formula.P, Prev1: formula.N, Next1: formula.N, Next2: formula.P, Offset: -1},
			{Prev2: formula.P, Prev1: formula.N, Next1: formula.N, Next2: formula.N, Offset: -1},
		},
		DefaultOffset: -2,
		TiltMode:      Displace,
	}
	VariantB = Variant{
		Grammar: formula.GrammarB,
		Rules: []Rule{
			{Prev2: formula.P, Prev1: formula.N, Next1: formula.N, Next2: formula.P, Offset: -1},
			{Prev2: formula.P, Prev1: formula.N, Next1: formula.RingClass, Next2: Any, Offset: -3.5},
			{Prev2: Any, Prev1: formula.RingClass, Next1: formula.P, Next2: Any, Offset: -0.5},
		},
		DefaultOffset: -2,
		TiltMode:      Displace,
		AxisFieldDisk: true,
	}
	VariantC = Variant{
		Grammar:       formula.GrammarC,
		DefaultOffset: -1,
		TiltMode:      Rotate,
	}
)

//VariantByName returns the variant for the grammar with the given name.
func VariantByName(name string) (Variant, error) {
	g, err := formula.GrammarByName(name)
	if err != nil {
		return Variant{}, err
	}
	switch g.Name {
	case VariantA.Grammar.Name:
		return VariantA, nil
	case VariantB.Grammar.Name:
		return VariantB, nil
	case VariantC.Grammar.Name:
		return VariantC, nil
	}
	return Variant{}, fmt.Errorf("no layout variant for grammar %q", g.Name)
}

//Offset returns the wrapper offset for the ring at index i of tokens.
//The first matching rule wins.
func (V Variant) Offset(tokens []formula.Token, i int) float64 {
	get := func(j int) formula.Class {
		if j < 0 || j >= len(tokens) {
			return formula.None
		}
		return tokens[j].Class()
	}
	prev2, prev1, next1, next2 := get(i-2), get(i-1), get(i+1), get(i+2)
	for _, r := range V.Rules {
		if r.Match(prev2, prev1, next1, next2) {
			return r.Offset
		}
	}
	return V.DefaultOffset
}
