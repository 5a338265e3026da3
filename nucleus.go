/*
 * nucleus.go, part of gonucleus.
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

package nucleus

import (
	"fmt"
	"strings"

	"github.com/rmera/gonucleus/formula"
	"github.com/rmera/gonucleus/layout"
	v3 "github.com/rmera/gonucleus/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Particle contains the data of one sphere of the nucleus, except for the
//coordinates, which are in a v3.Matrix.
type Particle struct {
	Name      string
	Id        int
	Species   formula.Species
	Symbol    string //element symbol used in XYZ and PDB files
	Placement int    //index of the formula token the particle comes from
	RingGroup bool   //ring members spin around Z, axis particles don't
	Color     uint32
}

//Copy returns a copy of the Particle object.
func (P *Particle) Copy() *Particle {
	if P == nil {
		panic("Attempted to copy a nil particle")
	}
	n := *P
	return &n
}

//Symbols used for each species in the files written by this package.
//Oxygen and nitrogen are drawn red and blue by most viewers, which is close enough
//to the proton and neutron colors.
var Symbols = map[formula.Species]string{
	formula.Proton:  "O",
	formula.Neutron: "N",
}

//Nucleus is a set of particles and their coordinates, plus the field
//disks of the plan it was built from.
type Nucleus struct {
	Particles []*Particle
	Coords    *v3.Matrix
	Disks     []layout.WorldDisk
	Title     string
	Plan      *layout.Plan
}

//Build returns the nucleus described by plan. The coordinates are the rest
//positions, i.e. with the ring group not spun.
func Build(plan *layout.Plan, title string) *Nucleus {
	ps := plan.Particles()
	pos := make([]r3.Vec, len(ps))
	for i, p := range ps {
		pos[i] = p.Position
	}
	N := &Nucleus{
		Particles: make([]*Particle, len(ps)),
		Coords:    v3.FromVecs(pos),
		Disks:     plan.Disks(),
		Title:     strings.TrimSpace(title),
		Plan:      plan,
	}
	for i, p := range ps {
		N.Particles[i] = &Particle{
			Name:      particleName(p.Species, i),
			Id:        i + 1,
			Species:   p.Species,
			Symbol:    Symbols[p.Species],
			Placement: p.Placement,
			RingGroup: p.RingGroup,
			Color:     layout.Color(p.Species),
		}
	}
	return N
}

func particleName(s formula.Species, i int) string {
	if s == formula.Neutron {
		return fmt.Sprintf("N%d", i+1)
	}
	return fmt.Sprintf("P%d", i+1)
}

//Len returns the number of particles.
func (N *Nucleus) Len() int {
	return len(N.Particles)
}

//Particle returns the ith particle. Panics if out of range.
func (N *Nucleus) Particle(i int) *Particle {
	if i >= N.Len() {
		panic("Nucleus: Requested particle out of bounds")
	}
	return N.Particles[i]
}

//Count returns the number of particles of the given species.
func (N *Nucleus) Count(s formula.Species) int {
	n := 0
	for _, p := range N.Particles {
		if p.Species == s {
			n++
		}
	}
	return n
}

//MassNumber returns the number of protons plus neutrons.
func (N *Nucleus) MassNumber() int {
	return N.Len()
}

//RingMembers returns the indexes of the particles in the ring group.
func (N *Nucleus) RingMembers() []int {
	var ret []int
	for i, p := range N.Particles {
		if p.RingGroup {
			ret = append(ret, i)
		}
	}
	return ret
}

//Spin returns a copy of the coordinates with the ring group rotated
//by angle radians around Z.
func (N *Nucleus) Spin(angle float64) *v3.Matrix {
	c := N.Coords.Copy()
	if members := N.RingMembers(); len(members) > 0 {
		c.RotateZ(angle, members)
	}
	return c
}

//Corrupted returns an error if the coordinates and the particles don't match.
func (N *Nucleus) Corrupted() error {
	if N.Coords == nil {
		return &CError{"nil coordinates", []string{"Corrupted"}}
	}
	if N.Coords.NVecs() != N.Len() {
		return &CError{fmt.Sprintf("%d particles but %d coordinates", N.Len(), N.Coords.NVecs()), []string{"Corrupted"}}
	}
	return nil
}
