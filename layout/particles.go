/*
 * particles.go, part of gonucleus.
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
	"github.com/rmera/gonucleus/formula"
	"gonum.org/v1/gonum/spatial/r3"
)

//Particle is a sphere in world coordinates.
type Particle struct {
	Species   formula.Species
	Position  r3.Vec
	Placement int  //index of the placement (and token) the particle comes from
	RingGroup bool //true for ring members, which spin together around Z
}

//World returns the world position of a point given in the frame of the
//sub-ring s of the ring placement R.
func (R *RingPlacement) World(s *SubRing, p r3.Vec) r3.Vec {
	local := r3.Add(s.Origin, p)
	if R.TiltX != 0 {
		local = r3.NewRotation(R.TiltX, r3.Vec{X: 1}).Rotate(local)
	}
	return r3.Add(R.Wrapper, local)
}

//Particles returns every particle of the plan in world coordinates,
//in placement order. Within a ring, the outer sub-ring comes first.
func (P *Plan) Particles() []Particle {
	var ret []Particle
	for _, pl := range P.Placements {
		switch {
		case pl.Axis != nil:
			if pl.Axis.Spacer {
				continue
			}
			ret = append(ret, Particle{Species: pl.Axis.Species, Position: pl.Axis.Position, Placement: pl.Index})
		case pl.Ring != nil:
			for _, s := range []*SubRing{&pl.Ring.Outer, &pl.Ring.Inner} {
				for _, m := range s.Members {
					ret = append(ret, Particle{Species: s.Species, Position: pl.Ring.World(s, m), Placement: pl.Index, RingGroup: true})
				}
			}
		}
	}
	return ret
}

//WorldDisk is a field disk in world coordinates.
type WorldDisk struct {
	Disk
	Placement int
	RingGroup bool
}

//Disks returns every field disk of the plan, with world centers.
func (P *Plan) Disks() []WorldDisk {
	var ret []WorldDisk
	for _, pl := range P.Placements {
		switch {
		case pl.Axis != nil && pl.Axis.Disk != nil:
			ret = append(ret, WorldDisk{Disk: *pl.Axis.Disk, Placement: pl.Index})
		case pl.Ring != nil:
			for _, s := range []*SubRing{&pl.Ring.Outer, &pl.Ring.Inner} {
				if s.Disk == nil {
					continue
				}
				d := *s.Disk
				d.Center = pl.Ring.World(s, d.Center)
				ret = append(ret, WorldDisk{Disk: d, Placement: pl.Index, RingGroup: true})
			}
		}
	}
	return ret
}

//Rings returns the number of ring placements in the plan.
func (P *Plan) Rings() int {
	n := 0
	for _, pl := range P.Placements {
		if pl.Ring != nil {
			n++
		}
	}
	return n
}
