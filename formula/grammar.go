/*
 * grammar.go, part of gonucleus.
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
	"strings"
)

//ShiftKind says what the E field of a ring means.
type ShiftKind int

const (
	Tilt   ShiftKind = iota //degrees of rotation of the ring plane
	Offset                  //displacement of the proton ring along Z
)

//Grammar describes the shape of the ring tokens a formula uses.
type Grammar struct {
	Name       string
	Neutrons   bool //rings carry an N field
	Fractional bool //the E field may have a fractional part
	Field      bool //rings may carry an F field
	Unified    bool //a single count for both species
	Shift      ShiftKind
}

var (
	//GrammarA has rings of the form [R<int>N<int>E<int>], E being a tilt.
	GrammarA = Grammar{Name: "tilt", Neutrons: true, Shift: Tilt}
	//GrammarB has rings of the form [R<int>N<int>E<float>F<int>], E being a z offset.
	GrammarB = Grammar{Name: "offset", Neutrons: true, Fractional: true, Field: true, Shift: Offset}
	//GrammarC has rings of the form [R<int>E<int>], E being a tilt.
	GrammarC = Grammar{Name: "unified", Unified: true, Shift: Tilt}
)

//Grammars returns the known grammars.
func Grammars() []Grammar {
	return []Grammar{GrammarA, GrammarB, GrammarC}
}

//GrammarByName returns the grammar with the given name. The one-letter
//aliases "a", "b" and "c" are also accepted.
func GrammarByName(name string) (Grammar, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a", GrammarA.Name:
		return GrammarA, nil
	case "b", GrammarB.Name:
		return GrammarB, nil
	case "c", GrammarC.Name:
		return GrammarC, nil
	}
	return Grammar{}, fmt.Errorf("unknown formula grammar %q", name)
}
