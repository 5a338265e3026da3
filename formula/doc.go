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

/*Package formula reads axis formulas, the small language used to describe the
particles of a nucleus as a line of axis particles and rings around it.

A formula is a sequence of single-letter axis tokens, P (proton), N (neutron) and
X (spacer), and of bracketed ring tokens. The fields a ring token carries depend on
the Grammar:

	A (tilt)     [R<int>N<int>E<int>]             protons, neutrons, tilt in degrees
	B (offset)   [R<int>N<int>E<float>F<int>]     protons, neutrons, proton ring z offset, field radius (F optional)
	C (unified)  [R<int>E<int>]                   one count for both species, tilt in degrees

Reading is permissive: characters that do not start a token are ignored. A '['
that does not start a ring following the grammar is dropped by itself, and reading
goes on from the next byte, so axis letters and rings after it are still found.
Nothing in this package returns an error.
*/
package formula
