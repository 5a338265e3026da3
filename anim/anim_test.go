/*
 * anim_test.go, part of gonucleus.
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

package anim

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestPauseDoesNotJump(Te *testing.T) {
	C := New(30)
	t0 := time.Unix(1000, 0)
	if _, ok := C.Tick(t0); !ok {
		Te.Fatal("a new controller should run")
	}
	if C.Elapsed() != 0 {
		Te.Errorf("the first tick adds no time, got %v", C.Elapsed())
	}
	C.Tick(t0.Add(2 * time.Second))
	C.Toggle(t0.Add(2 * time.Second))
	if !C.Paused() {
		Te.Fatal("Toggle should pause")
	}
	if _, ok := C.Tick(t0.Add(5 * time.Second)); ok {
		Te.Error("a paused controller should not give frames")
	}
	C.Toggle(t0.Add(10 * time.Second))
	f, ok := C.Tick(t0.Add(11 * time.Second))
	if !ok {
		Te.Fatal("Toggle should resume")
	}
	if C.Elapsed() != 3*time.Second {
		Te.Errorf("expected 3s of animation, got %v", C.Elapsed())
	}
	if math.Abs(f.RingAngle-4.5) > 1e-9 {
		Te.Errorf("expected ring angle 4.5, got %v", f.RingAngle)
	}
}

func TestFrameAt(Te *testing.T) {
	C := New(0)
	if C.Distance != DefaultDistance {
		Te.Errorf("expected default distance, got %v", C.Distance)
	}
	f := C.FrameAt(0)
	if r3.Norm(r3.Sub(f.Camera, r3.Vec{Z: DefaultDistance})) > 1e-9 {
		Te.Errorf("camera should start on +Z, got %v", f.Camera)
	}
	f = C.FrameAt(math.Pi / 2 / DefaultOrbitRate)
	if r3.Norm(r3.Sub(f.Camera, r3.Vec{X: DefaultDistance})) > 1e-9 {
		Te.Errorf("camera should be on +X after a quarter orbit, got %v", f.Camera)
	}
	if math.Abs(r3.Norm(f.Camera)-DefaultDistance) > 1e-9 {
		Te.Error("camera should stay at the given distance")
	}
}

func TestClockGoingBack(Te *testing.T) {
	C := New(10)
	t0 := time.Unix(0, 0)
	C.Tick(t0)
	C.Tick(t0.Add(-time.Second))
	if C.Elapsed() != 0 {
		Te.Errorf("negative deltas should be ignored, got %v", C.Elapsed())
	}
}
