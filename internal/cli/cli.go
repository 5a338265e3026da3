/*
 * cli.go, part of gonucleus.
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

//Package cli implements the nucleus command-line interface.
//
//Commands work on the visualizations of a TOML catalogue (the built-in one unless
//--config is given), or on a formula given with --formula and --grammar.
//
//	list     show the catalogue
//	parse    show the tokens of a formula
//	layout   print the layout plan as JSON
//	export   write XYZ or PDB files
//	animate  write a compressed STF trajectory of the animation
//	plot     draw a projection with gonum/plot
//	view     animate in the terminal; click or space pauses
//	serve    serve plans and frames over HTTP
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	nucleus "github.com/rmera/gonucleus"
	"github.com/rmera/gonucleus/config"
)

var version = "dev"

//SetVersion sets the version shown by --version.
func SetVersion(v string) {
	version = v
}

//options are the flags shared by every command.
type options struct {
	verbose    bool
	configPath string

	formula  string
	grammar  string
	title    string
	distance float64
}

//Execute runs the nucleus CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "nucleus",
		Short:         "nucleus lays out and animates simple models of atomic nuclei",
		Long:          `nucleus reads axis formulas, lines of protons and neutrons with rings around them, and turns them into 3D models that can be written to files or animated.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if o.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&o.configPath, "config", "c", "", "TOML catalogue of visualizations (default: built-in)")
	pf.StringVarP(&o.formula, "formula", "f", "", "axis formula to use instead of a catalogue entry")
	pf.StringVarP(&o.grammar, "grammar", "g", "offset", "grammar of --formula: tilt, offset or unified")
	pf.StringVar(&o.title, "title", "", "title for --formula")
	pf.Float64Var(&o.distance, "distance", 0, "camera distance for --formula (default 40)")

	root.AddCommand(newListCmd(o))
	root.AddCommand(newParseCmd(o))
	root.AddCommand(newLayoutCmd(o))
	root.AddCommand(newExportCmd(o))
	root.AddCommand(newAnimateCmd(o))
	root.AddCommand(newPlotCmd(o))
	root.AddCommand(newViewCmd(o))
	root.AddCommand(newServeCmd(o))
	return root
}

func (o *options) catalogue() (*config.Catalogue, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

//instance returns the catalogue entry named in args, or the formula given by flags.
func (o *options) instance(args []string) (config.Instance, error) {
	if o.formula != "" {
		if len(args) > 0 {
			return config.Instance{}, errors.New("give either a nucleus name or --formula, not both")
		}
		inst := config.Instance{Name: "formula", Title: o.title, Formula: o.formula, Grammar: o.grammar, CameraDistance: o.distance}
		if _, err := inst.Variant(); err != nil {
			return config.Instance{}, err
		}
		return inst, nil
	}
	if len(args) != 1 {
		return config.Instance{}, errors.New("expected one nucleus name (see 'nucleus list') or --formula")
	}
	cat, err := o.catalogue()
	if err != nil {
		return config.Instance{}, err
	}
	return cat.Get(args[0])
}

//build lays out inst and builds its nucleus, logging any dropped formula fragment.
func build(ctx context.Context, inst config.Instance) (*nucleus.Nucleus, error) {
	logger := loggerFromContext(ctx)
	plan, frags, err := inst.Plan()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inst.Name, err)
	}
	for _, f := range frags {
		logger.Debug("skipped ring fragment", "nucleus", inst.Name, "offset", f.Offset, "text", f.Text)
	}
	N := nucleus.Build(plan, inst.Title)
	logger.Debug("built nucleus", "nucleus", inst.Name, "particles", N.Len(), "rings", plan.Rings(), "disks", len(N.Disks))
	return N, nil
}

//outputFormat returns the lower case extension of name, without the dot.
func outputFormat(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
