/*
 * anim.go, part of gonucleus.
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

/*Package anim keeps the animation state of a nucleus view: a camera orbiting
the nucleus on the XZ plane and the ring group spinning around Z.

The state is a Controller value owned by the caller, who feeds it the wall-clock
time of each frame. Time only accumulates while the animation runs, so pausing
and resuming does not make the view jump.
*/
package anim

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DefaultDistance  = 40.0
	DefaultOrbitRate = 0.3 //radians per second
	DefaultSpinRate  = 1.5 //radians per second
)

//Frame is the state of the scene at one moment.
type Frame struct {
	T         float64 `json:"t"` //seconds of animation time
	Camera    r3.Vec  `json:"camera"`
	LookAt    r3.Vec  `json:"look_at"`
	RingAngle float64 `json:"ring_angle"` //rotation of the ring group around Z, radians
}

//Controller is the pause flag and time accumulator of one view.
//The zero value is not usable, use New.
type Controller struct {
	Distance  float64
	OrbitRate float64
	SpinRate  float64

	paused      bool
	accumulated time.Duration
	last        time.Time
	hasLast     bool
}

//New returns a running controller for a camera at the given distance.
//A non-positive distance is replaced by DefaultDistance.
func New(distance float64) *Controller {
	if distance <= 0 || math.IsNaN(distance) {
		distance = DefaultDistance
	}
	return &Controller{Distance: distance, OrbitRate: DefaultOrbitRate, SpinRate: DefaultSpinRate}
}

//Paused returns true if the animation is paused.
func (C *Controller) Paused() bool { return C.paused }

//Elapsed returns the accumulated animation time.
func (C *Controller) Elapsed() time.Duration { return C.accumulated }

//Toggle pauses a running animation, or resumes a paused one. On resume
//the frame clock restarts at now, so the pause adds no time.
func (C *Controller) Toggle(now time.Time) {
	C.paused = !C.paused
	if !C.paused {
		C.last = now
		C.hasLast = true
	}
}

//Tick advances the animation to now and returns the frame to draw.
//It returns false, and does not advance, while paused. The first tick
//after New adds no time.
func (C *Controller) Tick(now time.Time) (Frame, bool) {
	if C.paused {
		return Frame{}, false
	}
	if !C.hasLast {
		C.last = now
		C.hasLast = true
	}
	if delta := now.Sub(C.last); delta > 0 {
		C.accumulated += delta
	}
	C.last = now
	return C.FrameAt(C.accumulated.Seconds()), true
}

//FrameAt returns the frame at t seconds of animation time.
func (C *Controller) FrameAt(t float64) Frame {
	a := t * C.OrbitRate
	return Frame{
		T:         t,
		Camera:    r3.Vec{X: math.Sin(a) * C.Distance, Z: math.Cos(a) * C.Distance},
		RingAngle: t * C.SpinRate,
	}
}
