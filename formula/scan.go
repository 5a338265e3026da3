/*
 * scan.go, part of gonucleus.
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
	"github.com/tdewolff/parse/v2"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

//Fragment is a piece of a formula that looked like a ring token but
//did not follow the grammar. Text runs from the '[' to the byte where
//reading failed. Only the '[' is dropped; axis letters after it are still read.
type Fragment struct {
	Offset int
	Text   string
}

//Parse returns the tokens of the formula src, read with the grammar g.
//Unreadable ring fragments are silently dropped.
func Parse(src string, g Grammar) []Token {
	tokens, _ := Scan(src, g)
	return tokens
}

//Scan works as Parse, but also returns the ring fragments that were dropped.
func Scan(src string, g Grammar) ([]Token, []Fragment) {
	s := &scanner{in: parse.NewInputString(src), g: g}
	return s.run()
}

type scanner struct {
	in     *parse.Input
	g      Grammar
	offset int //offset of the start of the current lexeme
}

func (s *scanner) run() ([]Token, []Fragment) {
	var tokens []Token
	var frags []Fragment
	for {
		c := s.in.Peek(0)
		if c == 0 && s.in.Err() != nil {
			break
		}
		switch c {
		case 'P':
			tokens = append(tokens, Axis{Kind: P})
			s.advance()
		case 'N':
			tokens = append(tokens, Axis{Kind: N})
			s.advance()
		case 'X':
			tokens = append(tokens, Axis{Kind: X})
			s.advance()
		case '[':
			if r, ok := s.ring(); ok {
				tokens = append(tokens, r)
				s.shift()
				continue
			}
			frags = append(frags, s.fragment())
		default:
			s.advance()
		}
	}
	return tokens, frags
}

//advance drops the current byte.
func (s *scanner) advance() {
	s.in.Move(1)
	s.shift()
}

func (s *scanner) shift() []byte {
	b := s.in.Shift()
	s.offset += len(b)
	return b
}

//fragment reports the text a failed ring read got through, then drops only
//the '[' so scanning resumes at the byte after it.
func (s *scanner) fragment() Fragment {
	f := Fragment{Offset: s.offset, Text: string(s.in.Lexeme())}
	s.in.Rewind(0)
	s.advance()
	return f
}

func (s *scanner) expect(c byte) bool {
	if s.in.Peek(0) != c {
		return false
	}
	s.in.Move(1)
	return true
}

//digits moves past a run of decimal digits and returns how many there were.
func (s *scanner) digits() int {
	n := 0
	for c := s.in.Peek(0); c >= '0' && c <= '9'; c = s.in.Peek(0) {
		s.in.Move(1)
		n++
	}
	return n
}

//number reads an integer (or, if fractional is true, a number with an optional
//fractional part), with a leading minus sign if signed is true.
func (s *scanner) number(signed, fractional bool) (float64, bool) {
	start := s.in.Pos()
	if signed && s.in.Peek(0) == '-' {
		s.in.Move(1)
	}
	if s.digits() == 0 {
		return 0, false
	}
	if fractional && s.in.Peek(0) == '.' && isDigit(s.in.Peek(1)) {
		s.in.Move(1)
		s.digits()
	}
	b := s.in.Lexeme()[start:]
	if !fractional {
		i, n := pstrconv.ParseInt(b)
		return float64(i), n == len(b)
	}
	f, n := pstrconv.ParseFloat(b)
	return f, n == len(b)
}

func (s *scanner) count() (int, bool) {
	f, ok := s.number(false, false)
	return int(f), ok
}

//ring reads a whole ring token, including the brackets.
func (s *scanner) ring() (Ring, bool) {
	var r Ring
	var ok bool
	if !s.expect('[') || !s.expect('R') {
		return r, false
	}
	if r.Protons, ok = s.count(); !ok {
		return r, false
	}
	if s.g.Neutrons {
		if !s.expect('N') {
			return r, false
		}
		if r.Neutrons, ok = s.count(); !ok {
			return r, false
		}
	}
	if s.g.Unified {
		r.Unified = true
		r.Neutrons = r.Protons
	}
	if !s.expect('E') {
		return r, false
	}
	e, ok := s.number(true, s.g.Fractional)
	if !ok {
		return r, false
	}
	if s.g.Shift == Offset {
		r.ZOffset = e
	} else {
		r.Tilt = e
	}
	if s.g.Field {
		s.expect('F')
		if isDigit(s.in.Peek(0)) {
			if r.FieldOuter, ok = s.number(false, false); !ok {
				return r, false
			}
		}
	}
	return r, s.expect(']')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
