/*
 * nucleus_test.go, part of gonucleus.
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
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/gonucleus/formula"
	"github.com/rmera/gonucleus/layout"
	v3 "github.com/rmera/gonucleus/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//The built-in formulas describe real nuclides, so the particle
//counts must give their atomic and mass numbers.
func TestNuclides(Te *testing.T) {
	cases := []struct {
		src     string
		v       layout.Variant
		protons int
		mass    int
	}{
		{"PN[R0N0E0]NP", layout.VariantA, 2, 4},
		{"PN[R5N6E-1F12]N[R8N8E1F12]P", layout.VariantB, 15, 31},
		{"PN[R4N4E-1]N[R8N8E1]P", layout.VariantB, 14, 28},
		{"PN[R1E-30][R1E-25][R1E-19][R1E-14][R1E-8][R1E-3][R1E3][R1E8][R1E14][R1E19][R1E25][R1E30]NP", layout.VariantC, 14, 28},
	}
	for _, c := range cases {
		N := Build(layout.Layout(c.src, c.v), "")
		if N.Count(formula.Proton) != c.protons || N.MassNumber() != c.mass {
			Te.Errorf("%s: expected Z=%d A=%d, got Z=%d A=%d", c.src, c.protons, c.mass, N.Count(formula.Proton), N.MassNumber())
		}
		if err := N.Corrupted(); err != nil {
			Te.Error(err)
		}
	}
}

func TestSpin(Te *testing.T) {
	N := Build(layout.Layout("PN[R4N4E-1]N[R8N8E1]P", layout.VariantB), "Silicon 14   Si-28")
	spun := N.Spin(math.Pi / 3)
	members := N.RingMembers()
	if len(members) != 24 {
		Te.Fatalf("expected 24 ring members, got %d", len(members))
	}
	for i, p := range N.Particles {
		before, after := N.Coords.Vec(i), spun.Vec(i)
		if !p.RingGroup {
			if r3.Norm(r3.Sub(before, after)) > 1e-9 {
				Te.Errorf("axis particle %d moved: %v -> %v", i, before, after)
			}
			continue
		}
		if math.Abs(math.Hypot(before.X, before.Y)-math.Hypot(after.X, after.Y)) > 1e-9 || math.Abs(before.Z-after.Z) > 1e-9 {
			Te.Errorf("ring member %d left its circle: %v -> %v", i, before, after)
		}
	}
	if r3.Norm(r3.Sub(N.Coords.Vec(members[0]), spun.Vec(members[0]))) < 1e-3 {
		Te.Error("ring members should move")
	}
}

func TestXYZIO(Te *testing.T) {
	N := Build(layout.Layout("PN[R5N6E-1F12]N[R8N8E1F12]P", layout.VariantB), "  Phosphorus 15   P-31 ")
	var buf bytes.Buffer
	if err := XYZWrite(&buf, N.Coords, N); err != nil {
		Te.Fatal(err)
	}
	if err := XYZWrite(&buf, N.Spin(1), N); err != nil {
		Te.Fatal(err)
	}
	symbols, frames, title, err := XYZRead(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if title != "Phosphorus 15   P-31" {
		Te.Errorf("wrong title %q", title)
	}
	if len(frames) != 2 || len(symbols) != N.Len() {
		Te.Fatalf("expected 2 frames of %d particles, got %d frames and %d symbols", N.Len(), len(frames), len(symbols))
	}
	for i := 0; i < N.Len(); i++ {
		if symbols[i] != N.Particles[i].Symbol {
			Te.Errorf("particle %d: expected symbol %s, got %s", i, N.Particles[i].Symbol, symbols[i])
		}
		if r3.Norm(r3.Sub(frames[0].Vec(i), N.Coords.Vec(i))) > 1e-3 {
			Te.Errorf("particle %d: coordinates changed in the round trip", i)
		}
	}
}

func TestXYZReadErrors(Te *testing.T) {
	bad := []string{
		"-1\ncomment\n",
		"two\ncomment\n",
		"2\ncomment\nO 0 0 0\n",
		"1\ncomment\nO 0 zero 0\n",
		"1\n",
	}
	for _, src := range bad {
		if _, _, _, err := XYZRead(strings.NewReader(src)); err == nil {
			Te.Errorf("%q should not be read", src)
		} else if _, ok := err.(Error); !ok {
			Te.Errorf("%q: expected an Error, got %T", src, err)
		}
	}
}

func TestXYZFile(Te *testing.T) {
	N := Build(layout.Layout("PN[R0N0E0]NP", layout.VariantA), "")
	name := filepath.Join(Te.TempDir(), "he4.xyz")
	if err := XYZFramesFileWrite(name, []*v3.Matrix{N.Coords, N.Spin(2)}, N); err != nil {
		Te.Fatal(err)
	}
	bad := v3.Zeros(2)
	if err := XYZFileWrite(name, bad, N); err == nil {
		Te.Error("writing the wrong number of coordinates should fail")
	}
}

func TestPDBWrite(Te *testing.T) {
	N := Build(layout.Layout("PN[R5N6E-1F12]N[R8N8E1F12]P", layout.VariantB), "Phosphorus 15   P-31")
	var buf bytes.Buffer
	if err := PDBWrite(&buf, []*v3.Matrix{N.Coords, N.Spin(0.5)}, N); err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "\nMODEL ") != 2 || strings.Count(out, "ENDMDL") != 2 {
		Te.Error("expected 2 models")
	}
	if strings.Count(out, "HETATM") != 2*N.Len() {
		Te.Errorf("expected %d HETATM records, got %d", 2*N.Len(), strings.Count(out, "HETATM"))
	}
	if strings.Count(out, "REMARK 250 DISK") != 4 {
		Te.Error("expected 4 disk remarks")
	}
	if !strings.HasPrefix(out, "TITLE     Phosphorus") {
		Te.Error("missing title record")
	}
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "HETATM") && len(l) != 80 {
			Te.Errorf("HETATM line should be 80 columns, got %d: %q", len(l), l)
			break
		}
	}
}

func TestErrDecorate(Te *testing.T) {
	err := errDecorate(&CError{"boom", nil}, "A")
	err = errDecorate(err, "B")
	if err.Error() != "boom (A < B)" {
		Te.Errorf("wrong decoration: %s", err)
	}
	if errDecorate(nil, "A") != nil {
		Te.Error("nil should stay nil")
	}
}

func TestBlankTitle(Te *testing.T) {
	N := Build(layout.Layout("PN[R0N0E0]NP", layout.VariantA), " \t ")
	if N.Title != "" {
		Te.Errorf("title should be empty, got %q", N.Title)
	}
	var buf bytes.Buffer
	if err := PDBWrite(&buf, []*v3.Matrix{N.Coords}, N); err != nil {
		Te.Fatal(err)
	}
	if strings.Contains(buf.String(), "TITLE") {
		Te.Error("untitled nuclei should have no TITLE record")
	}
}
