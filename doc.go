/*
 * doc.go, part of gonucleus.
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

/*Package nucleus is the main package of the gonucleus library. It builds simple
3D models of atomic nuclei from axis formulas: a line of protons and neutrons along
Z, and rings of protons and neutrons around that line.

	**gonucleus capabilities**

    Reads axis formulas in three grammars (package formula).

    Computes the placement of every particle and field disk (package layout).

    Builds a Nucleus: particles with cartesian coordinates in a v3.Matrix, which
	can be spun like the ring group of the animated views.

    Writes XYZ (also multi-frame) and PDB files, so a nucleus can be opened in any
	molecular viewer.

    Keeps the state of an animated view, pausable without jumps (package anim).

    Writes and reads compressed trajectories of animations (package traj/stf).

    Draws projections of a nucleus (package nucplot).

A minimal use:

	plan := layout.Layout("PN[R5N6E-1F12]N[R8N8E1F12]P", layout.VariantB)
	nuc := nucleus.Build(plan, "Phosphorus 15   P-31")
	err := nucleus.XYZFileWrite("p31.xyz", nuc.Coords, nuc)
*/
package nucleus
