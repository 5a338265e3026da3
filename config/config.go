/*
 * config.go, part of gonucleus.
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

//Package config reads the catalogue of nucleus visualizations from TOML.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rmera/gonucleus/anim"
	"github.com/rmera/gonucleus/formula"
	"github.com/rmera/gonucleus/layout"
)

//go:embed nuclei.toml
var defaultCatalogue []byte

//Instance is one visualization: a formula and how to show it.
type Instance struct {
	Name           string  `toml:"name" json:"name"`
	Title          string  `toml:"title" json:"title"`
	Formula        string  `toml:"formula" json:"formula"`
	Grammar        string  `toml:"grammar" json:"grammar"`
	CameraDistance float64 `toml:"camera_distance" json:"camera_distance"`
	Background     string  `toml:"background" json:"background"`
	AxisFieldDisks *bool   `toml:"axis_field_disks" json:"axis_field_disks,omitempty"`
}

//Catalogue is the set of known visualizations, in file order.
type Catalogue struct {
	Nuclei []Instance `toml:"nucleus"`
}

//Default returns the built-in catalogue.
func Default() *Catalogue {
	c, err := Parse(defaultCatalogue)
	if err != nil {
		panic("config: built-in catalogue is broken: " + err.Error())
	}
	return c
}

//Load reads a catalogue from the TOML file path.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

//Parse decodes and checks a TOML catalogue.
func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("unknown catalogue keys: %v", keys)
	}
	seen := make(map[string]bool, len(c.Nuclei))
	for i, n := range c.Nuclei {
		if strings.TrimSpace(n.Name) == "" {
			return nil, fmt.Errorf("nucleus %d has no name", i+1)
		}
		if seen[n.Name] {
			return nil, fmt.Errorf("nucleus %q defined twice", n.Name)
		}
		seen[n.Name] = true
		if _, err := n.Variant(); err != nil {
			return nil, fmt.Errorf("nucleus %q: %w", n.Name, err)
		}
	}
	return &c, nil
}

//Get returns the instance with the given name.
func (C *Catalogue) Get(name string) (Instance, error) {
	for _, n := range C.Nuclei {
		if n.Name == name {
			return n, nil
		}
	}
	return Instance{}, fmt.Errorf("no nucleus named %q", name)
}

//Names returns the names of the instances, in file order.
func (C *Catalogue) Names() []string {
	ret := make([]string, len(C.Nuclei))
	for i, n := range C.Nuclei {
		ret[i] = n.Name
	}
	return ret
}

//Variant returns the layout variant of the instance's grammar, with the
//axis field disk setting overridden if the instance gives one.
func (I Instance) Variant() (layout.Variant, error) {
	v, err := layout.VariantByName(I.Grammar)
	if err != nil {
		return v, err
	}
	if I.AxisFieldDisks != nil {
		v.AxisFieldDisk = *I.AxisFieldDisks
	}
	return v, nil
}

//Plan parses the formula and lays it out. The returned fragments are
//the parts of the formula that were dropped.
func (I Instance) Plan() (*layout.Plan, []formula.Fragment, error) {
	v, err := I.Variant()
	if err != nil {
		return nil, nil, err
	}
	tokens, frags := formula.Scan(I.Formula, v.Grammar)
	return layout.Compute(tokens, v), frags, nil
}

//Distance returns the camera distance, or the default one if none is set.
func (I Instance) Distance() float64 {
	if I.CameraDistance <= 0 {
		return anim.DefaultDistance
	}
	return I.CameraDistance
}
