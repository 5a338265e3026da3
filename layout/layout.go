/*
 * layout.go, part of gonucleus.
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

/*Package layout turns the tokens of an axis formula into a Plan: where each axis
particle goes, and, for each ring, where its wrapper sits and where its members
are in the wrapper's frame.

Axis tokens are placed on the Z axis, 2 units apart and centered on 0. Rings do not
take an axis position; their wrapper is put at the current axis position plus an
offset that depends on the tokens around the ring (see Variant and Rule).
*/
package layout

import (
	"math"

	"github.com/rmera/gonucleus/formula"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	AxisStep       = 2.0
	SphereRadius   = 1.0
	ProtonRadius   = 3.8
	NeutronRadius  = 1.4
	UnifiedRadius  = 3.5
	UnifiedSpacing = 2.2 //added to UnifiedRadius for the protons of unified rings

	AxisDiskInner = 2.5
	AxisDiskOuter = 5.0
	RingDiskInner = 4.8
)

//Colors, as 0xRRGGBB.
const (
	ProtonColor   uint32 = 0xff9933
	NeutronColor  uint32 = 0x66ccff
	AxisDiskColor uint32 = 0xffaa00
	RingDiskColor uint32 = 0x00ffff
)

//Color returns the color class of a species.
func Color(s formula.Species) uint32 {
	if s == formula.Neutron {
		return NeutronColor
	}
	return ProtonColor
}

//Disk is a flat annulus normal to Z, marking the extent of a field.
//It is decoration, not a particle.
type Disk struct {
	Inner   float64 `json:"inner"`
	Outer   float64 `json:"outer"`
	Center  r3.Vec  `json:"center"`
	Color   uint32  `json:"color"`
	Opacity float64 `json:"opacity"`
}

//AxisPlacement is a particle (or, for spacers, an empty position) on the axis.
type AxisPlacement struct {
	Spacer   bool            `json:"spacer,omitempty"`
	Species  formula.Species `json:"species"`
	Position r3.Vec          `json:"position"`
	Disk     *Disk           `json:"disk,omitempty"`
}

//SubRing is the set of members of one species in a ring. Members and the
//disk center are relative to Origin, which is relative to the wrapper.
type SubRing struct {
	Species formula.Species `json:"species"`
	Origin  r3.Vec          `json:"origin"`
	Radius  float64         `json:"radius"`
	Members []r3.Vec        `json:"members"`
	Disk    *Disk           `json:"disk,omitempty"`
}

//RingPlacement is the wrapper transform of a ring and its two sub-rings.
type RingPlacement struct {
	Wrapper r3.Vec  `json:"wrapper"`
	Offset  float64 `json:"offset"`
	TiltX   float64 `json:"tilt_x"` //radians around the local X axis, applied to both sub-rings
	Outer   SubRing `json:"outer"`
	Inner   SubRing `json:"inner"`
}

//Placement is the layout of one token.
type Placement struct {
	Index int            `json:"index"`
	Token formula.Token  `json:"-"`
	Text  string         `json:"token"`
	Axis  *AxisPlacement `json:"axis,omitempty"`
	Ring  *RingPlacement `json:"ring,omitempty"`
}

//Plan is the complete layout for one formula. It is not modified after Compute returns.
type Plan struct {
	Grammar    string      `json:"grammar"`
	Formula    string      `json:"formula"`
	Start      float64     `json:"start"`
	AxisZ      []float64   `json:"axis_z"`
	Placements []Placement `json:"placements"`
}

//StartZ returns the Z position of the first of n axis tokens.
func StartZ(n int) float64 {
	return -(float64(n-1) / 2) * AxisStep
}

//Layout parses src with the variant's grammar and computes its plan.
func Layout(src string, v Variant) *Plan {
	return Compute(formula.Parse(src, v.Grammar), v)
}

//Compute returns the plan for the given tokens. It never fails; an empty
//token sequence gives an empty plan.
func Compute(tokens []formula.Token, v Variant) *Plan {
	P := &Plan{
		Grammar:    v.Grammar.Name,
		Formula:    formula.Format(tokens),
		Start:      StartZ(formula.AxisCount(tokens)),
		Placements: make([]Placement, 0, len(tokens)),
	}
	z := P.Start
	for i, t := range tokens {
		pl := Placement{Index: i, Token: t, Text: t.String()}
		switch tok := t.(type) {
		case formula.Axis:
			pl.Axis = axisPlacement(tok, z, v)
			P.AxisZ = append(P.AxisZ, z)
			z += AxisStep
		case formula.Ring:
			off := v.Offset(tokens, i)
			pl.Ring = ringPlacement(tok, r3.Vec{Z: z + off}, v)
			pl.Ring.Offset = off
		}
		P.Placements = append(P.Placements, pl)
	}
	return P
}

func axisPlacement(t formula.Axis, z float64, v Variant) *AxisPlacement {
	a := &AxisPlacement{Spacer: t.Spacer(), Species: t.Species(), Position: r3.Vec{Z: z}}
	if !a.Spacer && a.Species == formula.Proton && v.AxisFieldDisk {
		a.Disk = &Disk{Inner: AxisDiskInner, Outer: AxisDiskOuter, Center: a.Position, Color: AxisDiskColor, Opacity: 0.12}
	}
	return a
}

func ringPlacement(t formula.Ring, wrapper r3.Vec, v Variant) *RingPlacement {
	tilt := t.Tilt * math.Pi / 180
	r := &RingPlacement{Wrapper: wrapper}
	if t.Unified {
		r.TiltX = tilt
		r.Inner = subRing(formula.Neutron, t.Neutrons, UnifiedRadius, 0)
		r.Outer = subRing(formula.Proton, t.Protons, UnifiedRadius+UnifiedSpacing, 0)
		return r
	}
	displace := 0.0
	if v.TiltMode == Rotate {
		r.TiltX = tilt
	} else {
		displace = tilt
	}
	r.Outer = subRing(formula.Proton, t.Protons, ProtonRadius, displace)
	r.Outer.Origin = r3.Vec{Z: t.ZOffset}
	if t.FieldOuter > 0 {
		r.Outer.Disk = &Disk{Inner: RingDiskInner, Outer: t.FieldOuter, Color: RingDiskColor, Opacity: 0.10}
	}
	r.Inner = subRing(formula.Neutron, t.Neutrons, NeutronRadius, displace)
	return r
}

//subRing places count members evenly on a circle of the given radius, starting
//at angle 0. A non-zero tilt (radians) lifts each member by radius*sin(tilt) and
//shrinks its planar radius by cos(tilt).
func subRing(s formula.Species, count int, radius, tilt float64) SubRing {
	sr := SubRing{Species: s, Radius: radius, Members: make([]r3.Vec, 0, count)}
	planar := radius * math.Cos(tilt)
	lift := radius * math.Sin(tilt)
	for j := 0; j < count; j++ {
		angle := float64(j) * 2 * math.Pi / float64(count)
		sr.Members = append(sr.Members, r3.Vec{X: math.Cos(angle) * planar, Y: math.Sin(angle) * planar, Z: lift})
	}
	return sr
}
