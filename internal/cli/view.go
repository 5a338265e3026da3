/*
 * view.go, part of gonucleus.
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
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	nucleus "github.com/rmera/gonucleus"
	"github.com/rmera/gonucleus/anim"
	"github.com/rmera/gonucleus/formula"
	"github.com/rmera/gonucleus/layout"
	"github.com/rmera/gonucleus/nucplot"
)

const frameInterval = time.Second / 30

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

//viewModel is the bubbletea model of the terminal view. The controller
//holds all the animation state.
type viewModel struct {
	nuc    *nucleus.Nucleus
	ctrl   *anim.Controller
	frame  anim.Frame
	width  int
	height int
}

func newViewModel(N *nucleus.Nucleus, distance float64) viewModel {
	C := anim.New(distance)
	return viewModel{nuc: N, ctrl: C, frame: C.FrameAt(0), width: 80, height: 24}
}

func (m viewModel) Init() tea.Cmd {
	return tick()
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if f, ok := m.ctrl.Tick(time.Time(msg)); ok {
			m.frame = f
		}
		return m, tick()
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.ctrl.Toggle(time.Now())
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space", "p":
			m.ctrl.Toggle(time.Now())
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

var (
	styleProton  = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%06x", layout.ProtonColor)))
	styleNeutron = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%06x", layout.NeutronColor)))
)

func (m viewModel) View() string {
	var b strings.Builder
	rows := m.height - 2
	if m.nuc.Title != "" {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styleTitle.Render(m.nuc.Title)))
		b.WriteString("\n")
		rows--
	}
	b.WriteString(render(m.nuc, m.frame, m.ctrl.Distance, m.width, rows))
	b.WriteString("\n")
	status := fmt.Sprintf("t=%.1fs", m.frame.T)
	if m.ctrl.Paused() {
		status = "paused"
	}
	b.WriteString(styleDim.Render(status + "  click or space to pause/resume, q to quit"))
	return b.String()
}

//render draws the particles of N, as seen by the camera of frame f, on a
//width x rows grid of terminal cells. Terminal cells are about twice as tall
//as wide, so x is stretched.
func render(N *nucleus.Nucleus, f anim.Frame, distance float64, width, rows int) string {
	if width < 1 || rows < 1 {
		return ""
	}
	plane := nucplot.CameraPlane(f)
	coords := N.Spin(f.RingAngle)
	extent := 1.0
	for i := 0; i < N.Len(); i++ {
		extent = math.Max(extent, r3.Norm(coords.Vec(i))+layout.SphereRadius)
	}
	scale := math.Min(float64(width)/(4*extent), float64(rows)/(2*extent))
	type cell struct {
		depth   float64
		neutron bool
		set     bool
	}
	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, width)
	}
	for i, p := range N.Particles {
		x, y, depth := plane.Project(coords.Vec(i))
		persp := distance / math.Max(distance-depth, 1)
		col := int(math.Round(float64(width)/2 + 2*x*scale*persp))
		row := int(math.Round(float64(rows)/2 - y*scale*persp))
		if row < 0 || row >= rows || col < 0 || col >= width {
			continue
		}
		c := &grid[row][col]
		if c.set && c.depth > depth {
			continue
		}
		*c = cell{depth: depth, neutron: p.Species == formula.Neutron, set: true}
	}
	lines := make([]string, rows)
	for r, line := range grid {
		var b strings.Builder
		for _, c := range line {
			switch {
			case !c.set:
				b.WriteByte(' ')
			case c.neutron:
				b.WriteString(styleNeutron.Render("●"))
			default:
				b.WriteString(styleProton.Render("●"))
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func newViewCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "view [name]",
		Short: "Animate a nucleus in the terminal",
		Long:  `Animate a nucleus in the terminal: the camera orbits the nucleus while the rings spin. A mouse click or the space bar pauses and resumes the animation.`,
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
			p := tea.NewProgram(newViewModel(N, inst.Distance()), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}
