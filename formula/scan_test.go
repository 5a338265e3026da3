/*
 * scan_test.go, part of gonucleus.
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
	"reflect"
	"testing"
)

func TestParseHelium(Te *testing.T) {
	tokens := Parse("PN[R0N0E0]NP", GrammarA)
	if len(tokens) != 5 {
		Te.Fatalf("expected 5 tokens, got %d: %v", len(tokens), tokens)
	}
	want := []Class{P, N, RingClass, N, P}
	for i, t := range tokens {
		if t.Class() != want[i] {
			Te.Errorf("token %d: expected %v, got %v", i, want[i], t.Class())
		}
	}
	r := tokens[2].(Ring)
	if r.Protons != 0 || r.Neutrons != 0 || r.Tilt != 0 {
		Te.Errorf("wrong ring %+v", r)
	}
	if AxisCount(tokens) != 4 {
		Te.Errorf("expected 4 axis tokens, got %d", AxisCount(tokens))
	}
}

func TestParsePhosphorus(Te *testing.T) {
	tokens := Parse("PN[R5N6E-1F12]N[R8N8E1F12]P", GrammarB)
	var rings []Ring
	for _, t := range tokens {
		if r, ok := t.(Ring); ok {
			rings = append(rings, r)
		}
	}
	want := []Ring{
		{Protons: 5, Neutrons: 6, ZOffset: -1, FieldOuter: 12},
		{Protons: 8, Neutrons: 8, ZOffset: 1, FieldOuter: 12},
	}
	if !reflect.DeepEqual(rings, want) {
		Te.Errorf("expected %+v, got %+v", want, rings)
	}
}

func TestParseFractionalOffset(Te *testing.T) {
	tokens := Parse("P[R2N1E-1.25]N[R1N1E2F]", GrammarB)
	if len(tokens) != 4 {
		Te.Fatalf("expected 4 tokens, got %v", tokens)
	}
	if r := tokens[1].(Ring); r.ZOffset != -1.25 || r.FieldOuter != 0 {
		Te.Errorf("wrong ring %+v", r)
	}
	if r := tokens[3].(Ring); r.ZOffset != 2 || r.FieldOuter != 0 {
		Te.Errorf("an F without digits should mean no field, got %+v", r)
	}
	//Grammar A only takes integers.
	tokens, frags := Scan("P[R2N1E-1.25]N", GrammarA)
	if Format(tokens) != "PNN" || len(frags) != 1 {
		Te.Errorf("fractional tilt should be dropped in grammar A: %v %v", tokens, frags)
	}
}

func TestParseUnified(Te *testing.T) {
	tokens := Parse("PN[R1E-30][R1E-25][R1E3]NP", GrammarC)
	if len(tokens) != 7 {
		Te.Fatalf("expected 7 tokens, got %v", tokens)
	}
	r := tokens[2].(Ring)
	if !r.Unified || r.Protons != 1 || r.Neutrons != 1 || r.Tilt != -30 {
		Te.Errorf("wrong unified ring %+v", r)
	}
	//an N field is not part of grammar C, so only the N letter is read
	if tokens = Parse("[R1N1E3]", GrammarC); Format(tokens) != "N" {
		Te.Errorf("expected a single N, got %v", tokens)
	}
}

func TestMalformedFragments(Te *testing.T) {
	cases := []struct {
		src   string
		want  string
		frags []string
	}{
		{"PN[R5N]NP", "PNNNP", []string{"[R5N"}},
		{"P[RXN]N", "PXNN", []string{"[R"}},
		{"P[R1N1E]", "PN", []string{"[R1N1E"}},
		{"P[R1N1E2", "PN", []string{"[R1N1E2"}},
		{"P[R1N1E0[R2N2E0]P", "PN[R2N2E0]P", []string{"[R1N1E0"}},
		{"P[[R1N1E0]", "P[R1N1E0]", []string{"["}},
		{"P[x]", "P", []string{"["}},
		{"P?? N\tXq", "PNX", nil},
		{"", "", nil},
	}
	for _, c := range cases {
		tokens, frags := Scan(c.src, GrammarA)
		if got := Format(tokens); got != c.want {
			Te.Errorf("%q: expected %q, got %q", c.src, c.want, got)
		}
		if len(frags) != len(c.frags) {
			Te.Errorf("%q: expected fragments %v, got %v", c.src, c.frags, frags)
			continue
		}
		for i, f := range frags {
			if f.Text != c.frags[i] {
				Te.Errorf("%q: expected fragment %q, got %q", c.src, c.frags[i], f.Text)
			}
		}
	}
}

func TestFragmentOffset(Te *testing.T) {
	_, frags := Scan("PN[R1]N[R1N1E1]P[x]", GrammarA)
	if len(frags) != 2 {
		Te.Fatalf("expected 2 fragments, got %v", frags)
	}
	if frags[0].Offset != 2 || frags[1].Offset != 16 {
		Te.Errorf("wrong offsets %+v", frags)
	}
}

//Reading a formula again gives the same tokens, and so does reading
//the canonical text of the tokens.
func TestParseStable(Te *testing.T) {
	formulas := map[string]Grammar{
		"PN[R0N0E0]NP":                 GrammarA,
		"PN[R5N6E-1F12]N[R8N8E1F12]P":  GrammarB,
		"PN[R4N4E-1]N[R8N8E1]P":        GrammarB,
		"PN[R1E-30][R1E-25][R1E30]XNP": GrammarC,
	}
	for src, g := range formulas {
		first := Parse(src, g)
		if !reflect.DeepEqual(first, Parse(src, g)) {
			Te.Errorf("%q: parsing is not stable", src)
		}
		if again := Parse(Format(first), g); !reflect.DeepEqual(first, again) {
			Te.Errorf("%q: canonical text %q reads differently", src, Format(first))
		}
	}
}

func TestGrammarByName(Te *testing.T) {
	for _, name := range []string{"tilt", "B", " unified "} {
		if _, err := GrammarByName(name); err != nil {
			Te.Error(err)
		}
	}
	if _, err := GrammarByName("hexagonal"); err == nil {
		Te.Error("unknown grammar should fail")
	}
}
