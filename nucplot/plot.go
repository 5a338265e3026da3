/*
 * plot.go, part of gonucleus.
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

/*Package nucplot draws orthographic projections of a nucleus with gonum/plot.
Each particle is a dot in its species color, drawn back to front, and field
disks are drawn as their inner and outer edges.
*/
package nucplot

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	nucleus "github.com/rmera/gonucleus"
	"github.com/rmera/gonucleus/anim"
	"github.com/rmera/gonucleus/layout"
	v3 "github.com/rmera/gonucleus/v3"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Plane is a projection plane given by its horizontal (U) and vertical (V)
//unit vectors. Depth grows towards the viewer, along U x V.
type Plane struct {
	Name string
	U, V r3.Vec
}

var (
	//Top looks down the Z axis, so rings show as circles.
	Top = Plane{Name: "top", U: r3.Vec{X: 1}, V: r3.Vec{Y: 1}}
	//Side has the Z axis horizontal, as a camera on the Y axis sees it.
	Side = Plane{Name: "side", U: r3.Vec{Z: 1}, V: r3.Vec{X: 1}}
)

//CameraPlane returns the plane seen by the camera of the given frame,
//which looks at the origin with Y up.
func CameraPlane(f anim.Frame) Plane {
	a := math.Atan2(f.Camera.X, f.Camera.Z)
	return Plane{Name: "camera", U: r3.Vec{X: math.Cos(a), Z: -math.Sin(a)}, V: r3.Vec{Y: 1}}
}

//PlaneByName returns Top or Side.
func PlaneByName(name string) (Plane, error) {
	switch name {
	case Top.Name:
		return Top, nil
	case Side.Name:
		return Side, nil
	}
	return Plane{}, fmt.Errorf("unknown projection plane %q", name)
}

//Project returns the plane coordinates and the depth of p.
func (P Plane) Project(p r3.Vec) (x, y, depth float64) {
	return r3.Dot(p, P.U), r3.Dot(p, P.V), r3.Dot(p, r3.Cross(P.U, P.V))
}

func rgb(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255}
}

//Plot returns a plot of nucleus N with coordinates coords (which may be spun)
//projected on plane. The ring disks are drawn at rest, as they are symmetric around Z.
func Plot(N *nucleus.Nucleus, coords *v3.Matrix, plane Plane) (*plot.Plot, error) {
	if err := N.Corrupted(); err != nil {
		return nil, err
	}
	p := plot.New()
	if N.Title != "" {
		p.Title.Text = N.Title
		p.Title.Padding = 3 * vg.Millimeter
	}
	p.HideAxes()
	lim := 1.0
	for _, d := range N.Disks {
		outer := circle(d.Center, d.Outer, plane)
		inner := circle(d.Center, d.Inner, plane)
		for _, pts := range []plotter.XYs{outer, inner} {
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, err
			}
			c := rgb(d.Color)
			c.A = uint8(math.Round(255 * math.Max(d.Opacity*3, 0.2)))
			l.LineStyle.Color = c
			l.LineStyle.Width = vg.Points(1)
			p.Add(l)
			for _, xy := range pts {
				lim = math.Max(lim, math.Max(math.Abs(xy.X), math.Abs(xy.Y)))
			}
		}
	}
	type dot struct {
		x, y, depth float64
		color       uint32
	}
	dots := make([]dot, N.Len())
	for i, pt := range N.Particles {
		x, y, z := plane.Project(coords.Vec(i))
		dots[i] = dot{x, y, z, pt.Color}
		lim = math.Max(lim, math.Max(math.Abs(x), math.Abs(y))+layout.SphereRadius)
	}
	sort.SliceStable(dots, func(i, j int) bool { return dots[i].depth < dots[j].depth })
	temp := make(plotter.XYs, 1)
	for _, d := range dots {
		temp[0].X, temp[0].Y = d.x, d.y
		s, err := plotter.NewScatter(temp)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(6)
		s.GlyphStyle.Color = rgb(d.color)
		p.Add(s)
	}
	lim = math.Ceil(lim + 1)
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim
	return p, nil
}

//Save plots N as Plot does, and saves the result to filename. The format is
//taken from the extension (png, svg, pdf...).
func Save(N *nucleus.Nucleus, coords *v3.Matrix, plane Plane, filename string) error {
	p, err := Plot(N, coords, plane)
	if err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

//circle returns the projection of a circle of radius r normal to Z.
func circle(center r3.Vec, r float64, plane Plane) plotter.XYs {
	const n = 64
	pts := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		a := float64(i) * 2 * math.Pi / n
		pts[i].X, pts[i].Y, _ = plane.Project(r3.Add(center, r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}))
	}
	return pts
}
