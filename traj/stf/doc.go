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

/*Package stf implements the Simple Trajectory Format, a compressed plain-text
format for the frames of an animated nucleus.

An STF file is a compressed text stream. It starts with optional key=value header
lines, followed by a "** N" line giving the number of particles. Each frame is then
N lines of three integers (the coordinates multiplied by 10^prec, prec being 2
unless the header says otherwise), and a line starting with "*" that closes the frame.

The compression is chosen from the last letter of the file name: "z" for gzip,
"r" for raw deflate, anything else (i.e. ".stf") for zstd.
*/
package stf
