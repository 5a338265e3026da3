/*
 * export.go, part of gonucleus.
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

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	nucleus "github.com/rmera/gonucleus"
	"github.com/rmera/gonucleus/anim"
	"github.com/rmera/gonucleus/config"
	"github.com/rmera/gonucleus/nucplot"
	"github.com/rmera/gonucleus/traj/stf"
	v3 "github.com/rmera/gonucleus/v3"
)

//frames returns n sets of coordinates of N, step seconds of animation apart.
func frames(N *nucleus.Nucleus, inst config.Instance, n int, step float64) []*v3.Matrix {
	C := anim.New(inst.Distance())
	ret := make([]*v3.Matrix, n)
	for i := range ret {
		ret[i] = N.Spin(C.FrameAt(float64(i) * step).RingAngle)
	}
	return ret
}

func newExportCmd(o *options) *cobra.Command {
	var (
		output string
		n      int
		step   float64
	)
	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Write a nucleus as an XYZ or PDB file",
		Long:  `Write a nucleus as an XYZ or PDB file. With --frames, the ring group is spun as in the animation and each frame is written as an XYZ frame or a PDB model.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return errors.New("--frames must be at least 1")
			}
			inst, err := o.instance(args)
			if err != nil {
				return err
			}
			N, err := build(cmd.Context(), inst)
			if err != nil {
				return err
			}
			if output == "" {
				output = inst.Name + ".xyz"
			}
			p := newProgress(loggerFromContext(cmd.Context()))
			fr := frames(N, inst, n, step)
			switch outputFormat(output) {
			case "xyz":
				err = nucleus.XYZFramesFileWrite(output, fr, N)
			case "pdb":
				err = nucleus.PDBFileWrite(output, fr, N)
			default:
				return fmt.Errorf("unknown output format for %q (use .xyz or .pdb)", output)
			}
			if err != nil {
				return err
			}
			p.done("exported", "file", output, "particles", N.Len(), "frames", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .xyz or .pdb (default <name>.xyz)")
	cmd.Flags().IntVar(&n, "frames", 1, "number of frames")
	cmd.Flags().Float64Var(&step, "step", 0.1, "seconds of animation between frames")
	return cmd
}

func newAnimateCmd(o *options) *cobra.Command {
	var (
		output string
		n      int
		fps    float64
		prec   int
	)
	cmd := &cobra.Command{
		Use:   "animate [name]",
		Short: "Write the animation of a nucleus as a compressed STF trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 || fps <= 0 {
				return errors.New("--frames and --fps must be positive")
			}
			inst, err := o.instance(args)
			if err != nil {
				return err
			}
			N, err := build(cmd.Context(), inst)
			if err != nil {
				return err
			}
			if output == "" {
				output = inst.Name + ".stf"
			}
			header := map[string]string{
				"title":    N.Title,
				"formula":  inst.Formula,
				"grammar":  inst.Grammar,
				"fps":      strconv.FormatFloat(fps, 'f', -1, 64),
				"distance": strconv.FormatFloat(inst.Distance(), 'f', -1, 64),
				"prec":     strconv.Itoa(prec),
			}
			p := newProgress(loggerFromContext(cmd.Context()))
			w, err := stf.NewWriter(output, N.Len(), header)
			if err != nil {
				return err
			}
			for _, c := range frames(N, inst, n, 1/fps) {
				if err := w.WNext(c); err != nil {
					w.Close()
					return err
				}
			}
			if err := w.Close(); err != nil {
				return err
			}
			p.done("animation written", "file", output, "frames", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; .stf (zstd), .stz (gzip) or .str (deflate)")
	cmd.Flags().IntVar(&n, "frames", 120, "number of frames")
	cmd.Flags().Float64Var(&fps, "fps", 30, "frames per second of animation time")
	cmd.Flags().IntVar(&prec, "prec", 2, "decimals kept for coordinates")
	return cmd
}

func newPlotCmd(o *options) *cobra.Command {
	var (
		output string
		plane  string
		t      float64
	)
	cmd := &cobra.Command{
		Use:   "plot [name]",
		Short: "Draw a projection of a nucleus",
		Long:  `Draw a projection of a nucleus at t seconds of animation. The plane is "top", "side", or "camera" for the view of the animated camera.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := o.instance(args)
			if err != nil {
				return err
			}
			N, err := build(cmd.Context(), inst)
			if err != nil {
				return err
			}
			f := anim.New(inst.Distance()).FrameAt(t)
			pl := nucplot.CameraPlane(f)
			if plane != "camera" {
				if pl, err = nucplot.PlaneByName(plane); err != nil {
					return err
				}
			}
			if output == "" {
				output = fmt.Sprintf("%s-%s.png", inst.Name, plane)
			}
			if err := nucplot.Save(N, N.Spin(f.RingAngle), pl, output); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("plot written", "file", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the extension sets the format (default <name>-<plane>.png)")
	cmd.Flags().StringVar(&plane, "plane", "camera", "projection plane: top, side or camera")
	cmd.Flags().Float64VarP(&t, "time", "t", 0, "seconds of animation")
	return cmd
}
