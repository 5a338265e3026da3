/*
 * stf_test.go, part of gonucleus.
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

package stf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	nucleus "github.com/rmera/gonucleus"
	"github.com/rmera/gonucleus/layout"
	v3 "github.com/rmera/gonucleus/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

func phosphorus() *nucleus.Nucleus {
	return nucleus.Build(layout.Layout("PN[R5N6E-1F12]N[R8N8E1F12]P", layout.VariantB), "Phosphorus 15   P-31")
}

//Tests writing and reading back with each compression.
func TestSTFRoundTrip(Te *testing.T) {
	N := phosphorus()
	for _, ext := range []string{"stf", "stz", "str"} {
		name := filepath.Join(Te.TempDir(), "p31."+ext)
		wtraj, err := NewWriter(name, N.Len(), map[string]string{"title": N.Title, "grammar": "offset"})
		if err != nil {
			Te.Fatal(err)
		}
		var written []*v3.Matrix
		for i := 0; i < 5; i++ {
			c := N.Spin(float64(i) * 0.3)
			written = append(written, c)
			if err := wtraj.WNext(c); err != nil {
				Te.Fatal(err)
			}
		}
		if wtraj.Frames() != 5 {
			Te.Errorf("expected 5 frames written, got %d", wtraj.Frames())
		}
		if err := wtraj.Close(); err != nil {
			Te.Fatal(err)
		}
		rtraj, header, err := New(name)
		if err != nil {
			Te.Fatal(err)
		}
		if header["title"] != N.Title || header["grammar"] != "offset" {
			Te.Errorf("%s: wrong header %v", ext, header)
		}
		if rtraj.Len() != N.Len() {
			Te.Fatalf("%s: expected %d particles, got %d", ext, N.Len(), rtraj.Len())
		}
		mat := v3.Zeros(rtraj.Len())
		i := 0
		for ; ; i++ {
			err := rtraj.Next(mat)
			if err != nil {
				if _, ok := err.(nucleus.LastFrameError); ok {
					break
				}
				Te.Fatal(err)
			}
			for j := 0; j < N.Len(); j++ {
				if r3.Norm(r3.Sub(mat.Vec(j), written[i].Vec(j))) > 0.01 {
					Te.Errorf("%s: frame %d particle %d: %v != %v", ext, i, j, mat.Vec(j), written[i].Vec(j))
				}
			}
		}
		if i != 5 {
			Te.Errorf("%s: expected 5 frames read, got %d", ext, i)
		}
		if rtraj.Readable() {
			Te.Error("the trajectory should be closed after the last frame")
		}
	}
}

func TestSTFPrecision(Te *testing.T) {
	N := phosphorus()
	name := filepath.Join(Te.TempDir(), "p31.stf")
	wtraj, err := NewWriter(name, N.Len(), map[string]string{"prec": "4"})
	if err != nil {
		Te.Fatal(err)
	}
	if err := wtraj.WNext(N.Coords); err != nil {
		Te.Fatal(err)
	}
	wtraj.Close()
	rtraj, _, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer rtraj.Close()
	mat := v3.Zeros(N.Len())
	if err := rtraj.Next(mat); err != nil {
		Te.Fatal(err)
	}
	for j := 0; j < N.Len(); j++ {
		if r3.Norm(r3.Sub(mat.Vec(j), N.Coords.Vec(j))) > 1e-3 {
			Te.Errorf("particle %d: %v != %v", j, mat.Vec(j), N.Coords.Vec(j))
		}
	}
}

func TestSTFWriteErrors(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "bad.stf")
	wtraj, err := NewWriter(name, 3, nil)
	if err != nil {
		Te.Fatal(err)
	}
	err = wtraj.WNext(v3.Zeros(2))
	E, ok := err.(nucleus.TrajError)
	if !ok {
		Te.Fatalf("wrong number of coordinates should fail with a TrajError, got %v", err)
	}
	E.Decorate("export")
	if deco := E.Decorate("animate"); len(deco) != 3 || deco[0] != "WNext" || deco[2] != "animate" {
		Te.Errorf("decorations were lost: %v", deco)
	}
	if err := wtraj.WNext(nil); err == nil {
		Te.Error("nil coordinates should fail")
	}
	wtraj.Close()
	if err := wtraj.WNext(v3.Zeros(3)); err == nil {
		Te.Error("writing to a closed trajectory should fail")
	}
	if _, _, err := New(filepath.Join(Te.TempDir(), "missing.stf")); err == nil {
		Te.Error("opening a missing file should fail")
	}
}

//The compressor comes from the last letter of the name, in any case,
//whatever the name contains before it.
func TestSTFCompressorByName(Te *testing.T) {
	dir := Te.TempDir()
	N := phosphorus()
	cases := []struct {
		name  string
		magic []byte
	}{
		{"UPPER.STZ", []byte{0x1f, 0x8b}},
		{"trajẞ", []byte{0x28, 0xb5, 0x2f, 0xfd}},
		{"İİİ.stf", []byte{0x28, 0xb5, 0x2f, 0xfd}},
	}
	for _, c := range cases {
		name := filepath.Join(dir, c.name)
		wtraj, err := NewWriter(name, N.Len(), nil)
		if err != nil {
			Te.Fatal(err)
		}
		if err := wtraj.WNext(N.Coords); err != nil {
			Te.Fatal(err)
		}
		if err := wtraj.Close(); err != nil {
			Te.Fatal(err)
		}
		data, err := os.ReadFile(name)
		if err != nil {
			Te.Fatal(err)
		}
		if !bytes.HasPrefix(data, c.magic) {
			Te.Errorf("%s: wrong compressor, file starts with % x", c.name, data[:4])
		}
		rtraj, _, err := New(name)
		if err != nil {
			Te.Fatal(err)
		}
		if err := rtraj.Next(v3.Zeros(N.Len())); err != nil {
			Te.Errorf("%s: %v", c.name, err)
		}
		rtraj.Close()
	}
}
