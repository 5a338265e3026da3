/*
 * commands.go, part of gonucleus.
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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rmera/gonucleus/formula"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9933"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the visualizations of the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := o.catalogue()
			if err != nil {
				return err
			}
			t := table.New().
				Headers("NAME", "TITLE", "GRAMMAR", "DISTANCE", "FORMULA").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return styleHeader
					}
					return lipgloss.NewStyle()
				})
			for _, n := range cat.Nuclei {
				t.Row(n.Name, n.Title, n.Grammar, strconv.FormatFloat(n.Distance(), 'f', -1, 64), n.Formula)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func newParseCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [name]",
		Short: "Show the tokens of a formula",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := o.instance(args)
			if err != nil {
				return err
			}
			v, err := inst.Variant()
			if err != nil {
				return err
			}
			tokens, frags := formula.Scan(inst.Formula, v.Grammar)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(inst.Formula))
			for i, t := range tokens {
				switch tok := t.(type) {
				case formula.Axis:
					fmt.Fprintf(out, "%3d  %-5s %s\n", i, "axis", tok)
				case formula.Ring:
					fmt.Fprintf(out, "%3d  %-5s %-16s protons=%d neutrons=%d tilt=%g offset=%g field=%g\n", i, "ring", tok, tok.Protons, tok.Neutrons, tok.Tilt, tok.ZOffset, tok.FieldOuter)
				}
			}
			for _, f := range frags {
				fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("skipped %q at %d", f.Text, f.Offset)))
			}
			return nil
		},
	}
}

func newLayoutCmd(o *options) *cobra.Command {
	var indent bool
	cmd := &cobra.Command{
		Use:   "layout [name]",
		Short: "Print the layout plan of a formula as JSON",
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
			enc := json.NewEncoder(cmd.OutOrStdout())
			if indent {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(N.Plan)
		},
	}
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the JSON output")
	return cmd
}
