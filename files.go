/*
 * files.go, part of gonucleus.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rmera/gonucleus/formula"
	v3 "github.com/rmera/gonucleus/v3"
)

//XYZWrite writes the coordinates coords of nucleus N to out as one XYZ frame.
//The title, if any, goes in the comment line.
func XYZWrite(out io.Writer, coords *v3.Matrix, N *Nucleus) error {
	if err := N.Corrupted(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	if coords.NVecs() != N.Len() {
		return &CError{fmt.Sprintf("%d coordinates for %d particles", coords.NVecs(), N.Len()), []string{"XYZWrite"}}
	}
	if _, err := fmt.Fprintf(out, "%-4d\n%s\n", N.Len(), N.Title); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	for i, p := range N.Particles {
		c := coords.Vec(i)
		if _, err := fmt.Fprintf(out, "%-2s  %8.3f%8.3f%8.3f \n", p.Symbol, c.X, c.Y, c.Z); err != nil {
			return errDecorate(err, "XYZWrite")
		}
	}
	return nil
}

//XYZFileWrite writes the coordinates coords of nucleus N to an XYZ file with name
//xyzname, which will be created for that. If the file exist it will be overwritten.
func XYZFileWrite(xyzname string, coords *v3.Matrix, N *Nucleus) error {
	return XYZFramesFileWrite(xyzname, []*v3.Matrix{coords}, N)
}

//XYZFramesFileWrite writes several frames of nucleus N, one after the other,
//to the multi-XYZ file xyzname.
func XYZFramesFileWrite(xyzname string, frames []*v3.Matrix, N *Nucleus) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return errDecorate(err, "XYZFramesFileWrite")
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	for _, c := range frames {
		if err := XYZWrite(w, c, N); err != nil {
			return errDecorate(err, "XYZFramesFileWrite")
		}
	}
	if err := w.Flush(); err != nil {
		return errDecorate(err, "XYZFramesFileWrite")
	}
	return nil
}

//XYZRead reads every frame of a (multi-)XYZ stream. It returns the symbols of
//the first frame, the coordinates of each frame and the comment line of the first frame.
func XYZRead(in io.Reader) ([]string, []*v3.Matrix, string, error) {
	var symbols []string
	var frames []*v3.Matrix
	var title string
	scanner := bufio.NewScanner(in)
	for frame := 0; ; frame++ {
		if !scanner.Scan() {
			break
		}
		head := strings.TrimSpace(scanner.Text())
		if head == "" {
			continue
		}
		n, err := strconv.Atoi(head)
		if err != nil || n < 0 {
			return nil, nil, "", &CError{fmt.Sprintf("frame %d: bad particle number %q", frame, head), []string{"XYZRead"}}
		}
		if !scanner.Scan() {
			return nil, nil, "", &CError{fmt.Sprintf("frame %d: missing comment line", frame), []string{"XYZRead"}}
		}
		first := len(frames) == 0
		if first {
			title = strings.TrimSpace(scanner.Text())
		}
		//no preallocation, so a bogus count fails at the end of the input
		//rather than in a huge allocation.
		var data []float64
		for i := 0; i < n; i++ {
			if !scanner.Scan() {
				return nil, nil, "", &CError{fmt.Sprintf("frame %d: expected %d particles, got %d", frame, n, i), []string{"XYZRead"}}
			}
			fields := strings.Fields(scanner.Text())
			if len(fields) < 4 {
				return nil, nil, "", &CError{fmt.Sprintf("frame %d: ill formatted line %q", frame, scanner.Text()), []string{"XYZRead"}}
			}
			for _, field := range fields[1:4] {
				f, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, nil, "", &CError{fmt.Sprintf("frame %d: %s", frame, err.Error()), []string{"XYZRead"}}
				}
				data = append(data, f)
			}
			if first {
				symbols = append(symbols, fields[0])
			}
		}
		coords, err := v3.NewMatrix(data)
		if err != nil {
			return nil, nil, "", errDecorate(err, "XYZRead")
		}
		frames = append(frames, coords)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, "", errDecorate(err, "XYZRead")
	}
	return symbols, frames, title, nil
}

//PDBWrite writes the given frames of nucleus N to out, one MODEL per frame.
//Protons and neutrons are HETATM records of the residues PRO and NEU, with the
//placement (token) index as residue number. Field disks are written as REMARK lines.
func PDBWrite(out io.Writer, frames []*v3.Matrix, N *Nucleus) error {
	if err := N.Corrupted(); err != nil {
		return errDecorate(err, "PDBWrite")
	}
	w := bufio.NewWriter(out)
	if N.Title != "" {
		fmt.Fprintf(w, "TITLE     %s\n", N.Title)
	}
	for _, d := range N.Disks {
		fmt.Fprintf(w, "REMARK 250 DISK %8.3f%8.3f%8.3f %6.2f %6.2f\n", d.Center.X, d.Center.Y, d.Center.Z, d.Inner, d.Outer)
	}
	for j, coords := range frames {
		if coords.NVecs() != N.Len() {
			return &CError{fmt.Sprintf("frame %d: %d coordinates for %d particles", j, coords.NVecs(), N.Len()), []string{"PDBWrite"}}
		}
		if len(frames) > 1 {
			fmt.Fprintf(w, "MODEL %d\n", j+1)
		}
		for i, p := range N.Particles {
			c := coords.Vec(i)
			resname := "PRO"
			if p.Species == formula.Neutron {
				resname = "NEU"
			}
			chain := 'A'
			if p.RingGroup {
				chain = 'B'
			}
			_, err := fmt.Fprintf(w, "%-6s%5d %4s %3s %1c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", "HETATM", p.Id%100000, pdbName(p.Name), resname, chain,
				p.Placement+1, c.X, c.Y, c.Z, 1.0, 0.0, p.Symbol)
			if err != nil {
				return errDecorate(err, "PDBWrite")
			}
		}
		if len(frames) > 1 {
			fmt.Fprintf(w, "ENDMDL\n")
		}
	}
	fmt.Fprintf(w, "END\n")
	if err := w.Flush(); err != nil {
		return errDecorate(err, "PDBWrite")
	}
	return nil
}

//PDBFileWrite writes the given frames of nucleus N to the file pdbname.
func PDBFileWrite(pdbname string, frames []*v3.Matrix, N *Nucleus) error {
	out, err := os.Create(pdbname)
	if err != nil {
		return errDecorate(err, "PDBFileWrite")
	}
	defer out.Close()
	if err := PDBWrite(out, frames, N); err != nil {
		return errDecorate(err, "PDBFileWrite")
	}
	return nil
}

//pdbName keeps atom names within the 4 columns PDB allows.
func pdbName(name string) string {
	if len(name) > 4 {
		return name[:4]
	}
	return name
}
