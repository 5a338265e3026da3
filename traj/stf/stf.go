/*
 * stf.go, part of gonucleus.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gonucleus/v3"
)

const defaultPrec = 2

//Write!

//StfW is a handle to write an STF trajectory.
type StfW struct {
	f         *os.File
	h         io.WriteCloser
	b         *bufio.Writer
	natoms    int
	filename  string
	writeable bool
	prec      int
	frames    int
}

//Close flushes and closes the trajectory. It can not be used after this call.
func (S *StfW) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	err := S.b.Flush()
	if err2 := S.h.Close(); err == nil {
		err = err2
	}
	if err2 := S.f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return &Error{err.Error(), S.filename, []string{"Close"}, true}
	}
	return nil
}

//Len returns the number of particles in each frame.
func (S *StfW) Len() int {
	return S.natoms
}

//Frames returns the number of frames written so far.
func (S *StfW) Frames() int {
	return S.frames
}

//WNext writes coord as the next frame of the trajectory.
func (S *StfW) WNext(coord *v3.Matrix) error {
	if !S.writeable {
		return &Error{TrajUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return &Error{NilCoordinates, S.filename, []string{"WNext"}, true}
	}
	v := coord.NVecs()
	if v != S.natoms {
		return &Error{fmt.Sprintf("%d coordinates given, but %d expected", v, S.natoms), S.filename, []string{"WNext"}, true}
	}
	var floats [3]float64
	for i := 0; i < v; i++ {
		c := coord.Vec(i)
		floats[0], floats[1], floats[2] = c.X, c.Y, c.Z
		if _, err := S.b.WriteString(coordsEncode(floats, S.prec)); err != nil {
			return &Error{err.Error(), S.filename, []string{"WNext"}, true}
		}
	}
	if _, err := S.b.WriteString("*\n"); err != nil {
		return &Error{err.Error(), S.filename, []string{"WNext"}, true}
	}
	S.frames++
	return nil
}

//lastLetter returns the last byte of name, lowercased if it is an ASCII letter.
func lastLetter(name string) byte {
	if name == "" {
		return 0
	}
	c := name[len(name)-1]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

func writerFor(name string) func(io.Writer) (io.WriteCloser, error) {
	switch lastLetter(name) {
	case 'z':
		return func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, gzip.BestCompression) }
	case 'r':
		return func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, flate.BestCompression) }
	}
	return func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

//NewWriter creates the trajectory file name for natoms particles. The header
//entries are written in key order. A "prec" entry sets the number of decimals kept.
func NewWriter(name string, natoms int, header map[string]string) (*StfW, error) {
	if name == "" {
		return nil, &Error{UnableToOpen, name, []string{"NewWriter"}, true}
	}
	S := &StfW{filename: name, natoms: natoms, prec: defaultPrec}
	badprec := false
	if p, ok := header["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err == nil && prec > 0 {
			S.prec = prec
		} else {
			log.Warn("invalid precision for trajectory, will use the default", "file", name, "prec", p)
			badprec = true
		}
	}
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	S.h, err = writerFor(name)(S.f)
	if err != nil {
		S.f.Close()
		return nil, &Error{"Can't start compressor " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.b = bufio.NewWriter(S.h)
	keys := make([]string, 0, len(header))
	for k := range header {
		if k == "prec" && badprec {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(S.b, "%s=%v\n", k, header[k])
	}
	fmt.Fprintf(S.b, "** %d\n", S.natoms)
	S.writeable = true
	return S, nil
}

func coordsEncode(f [3]float64, prec int) string {
	p := math.Pow(10.0, float64(prec))
	var temp [3]int
	for i, v := range f {
		temp[i] = int(math.RoundToEven(v * p))
	}
	return fmt.Sprintf("%d %d %d\n", temp[0], temp[1], temp[2])
}

//Read!

//StfR is a handle to read an STF trajectory.
type StfR struct {
	f        *os.File
	dec      io.ReadCloser
	h        *bufio.Reader
	natoms   int
	filename string
	prec     int
	readable bool
}

func readerFor(name string) func(io.Reader) (io.ReadCloser, error) {
	switch lastLetter(name) {
	case 'z':
		return func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	case 'r':
		return func(a io.Reader) (io.ReadCloser, error) { return flate.NewReader(a), nil }
	}
	return func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return r.IOReadCloser(), nil
	}
}

//New opens an STF trajectory for reading, and returns a pointer
//to the handle, a map with the header (empty if there is none) and error or nil.
func New(name string) (*StfR, map[string]string, error) {
	S := &StfR{filename: name, natoms: -1, prec: defaultPrec}
	m := make(map[string]string)
	var err error
	S.f, err = os.Open(name)
	if err != nil {
		return nil, nil, &Error{err.Error(), name, []string{"New"}, true}
	}
	S.dec, err = readerFor(name)(bufio.NewReader(S.f))
	if err != nil {
		S.f.Close()
		return nil, nil, &Error{"Can't read header " + err.Error(), name, []string{"New"}, true}
	}
	S.h = bufio.NewReader(S.dec)
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			S.close()
			return nil, nil, &Error{"Can't read header " + err.Error(), name, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				S.close()
				return nil, nil, &Error{fmt.Sprintf("Can't read particle number from '%s'", str), name, []string{"New"}, true}
			}
			S.natoms, err = strconv.Atoi(nat[1])
			if err != nil {
				S.close()
				return nil, nil, &Error{fmt.Sprintf("Can't read particle number from '%s': %s", nat[1], err.Error()), name, []string{"New"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			S.close()
			return nil, nil, &Error{"Malformed header line " + str, name, []string{"New"}, true}
		}
		m[kv[0]] = kv[1]
	}
	if p, ok := m["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err == nil && prec > 0 {
			S.prec = prec
		} else {
			log.Warn("invalid precision for trajectory, will assume the default", "file", name, "prec", p)
		}
	}
	S.readable = true
	return S, m, nil
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (S *StfR) Readable() bool {
	return S.readable
}

//Len returns the number of particles in each frame of the trajectory.
func (S *StfR) Len() int {
	return S.natoms
}

func coordsDecode(str string, temp *[3]float64, prec int) error {
	p := math.Pow(10.0, float64(prec))
	s := strings.Fields(str)
	if len(s) != 3 {
		return fmt.Errorf("Ill formatted coordinates line in stf: %d fields: %s", len(s), str)
	}
	for i, v := range s {
		f, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("Can't parse coordinate %d (%s). Error: %s", i, v, err.Error())
		}
		temp[i] = float64(f) / p
	}
	return nil
}

//Next puts in c the coordinates of the next frame of the trajectory. If c is nil,
//the frame is read and checked, but discarded. When the trajectory ends, Next closes
//the handle and returns an error implementing nucleus.LastFrameError.
func (S *StfR) Next(c *v3.Matrix) error {
	if !S.readable {
		return &Error{TrajUnIniRead, S.filename, []string{"Next"}, true}
	}
	if c != nil && c.NVecs() != S.natoms {
		return &Error{fmt.Sprintf("matrix for %d coordinates given, but %d needed", c.NVecs(), S.natoms), S.filename, []string{"Next"}, true}
	}
	var temp [3]float64
	for i := 0; i < S.natoms; i++ {
		str, err := S.h.ReadString('\n')
		if err != nil {
			if err == io.EOF && i == 0 && str == "" {
				S.Close()
				return newlastFrameError(S.filename, "Next")
			}
			return &Error{err.Error(), S.filename, []string{"Next"}, true}
		}
		if err = coordsDecode(strings.TrimSuffix(str, "\n"), &temp, S.prec); err != nil {
			return &Error{err.Error(), S.filename, []string{"Next"}, true}
		}
		if c == nil {
			continue
		}
		for j, v := range temp {
			c.Set(i, j, v)
		}
	}
	s, err := S.h.ReadString('\n')
	if S.natoms == 0 && err == io.EOF && s == "" {
		S.Close()
		return newlastFrameError(S.filename, "Next")
	}
	if s == "" {
		return &Error{"Can't read the frame termination mark", S.filename, []string{"Next"}, true}
	}
	if s[0] != '*' {
		return &Error{WrongFormat, S.filename, []string{"Next"}, true}
	}
	return nil
}

func (S *StfR) close() {
	S.dec.Close()
	S.f.Close()
}

//Close closes the object, and marks it as unreadable
func (S *StfR) Close() {
	if !S.readable {
		return
	}
	S.close()
	S.readable = false
}

//Errors

//Error is the general structure for STF trajectory errors. It fulfills nucleus.Error and nucleus.TrajError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("stf file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err *Error) FileName() string { return err.filename }

//Format returns the format of the file (always "stf") associated to the error
func (err *Error) Format() string { return "stf" }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	UnableToOpen   = "Unable to open file"
	NilCoordinates = "Given nil coordinates"
	WrongFormat    = "Wrong format in the STF file or frame"
)

//lastFrameError implements nucleus.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "stf" }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	return &lastFrameError{fileName: filename, deco: []string{caller}}
}
