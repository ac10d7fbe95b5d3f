/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package motifmark

/* -------------------------------------------------------------------------- */

import "errors"
import "fmt"

/* -------------------------------------------------------------------------- */

// Layout was already computed for this scene, coordinates are scaled.
var ErrAlreadyScaled = errors.New("Layout(): scene is already scaled")

// The longest gene has length one, no scale factor can be derived.
var ErrDegenerateLayout = errors.New("Layout(): longest gene has zero extent")

/* -------------------------------------------------------------------------- */

// Motif contains a letter that is neither a base nor an ambiguity code.
type CompilationError struct {
  Motif    string
  Position int
  Char     byte
}

func (err *CompilationError) Error() string {
  if err.Motif == "" {
    return "CompilePattern(): empty motif"
  }
  return fmt.Sprintf("CompilePattern(): motif `%s' has invalid letter `%c' at position %d",
    err.Motif, err.Char, err.Position)
}

/* -------------------------------------------------------------------------- */

// More distinct motifs than colors in the palette.
type PaletteExhaustedError struct {
  Motifs int
  Colors int
}

func (err *PaletteExhaustedError) Error() string {
  return fmt.Sprintf("AssignColors(): %d distinct motifs but only %d colors available",
    err.Motifs, err.Colors)
}

/* -------------------------------------------------------------------------- */

// Gene sequence without any run of unambiguous bases.
type MissingExonError struct {
  Gene string
}

func (err *MissingExonError) Error() string {
  return fmt.Sprintf("FindExon(): no exon found in gene `%s'", err.Gene)
}

/* -------------------------------------------------------------------------- */

// No gene records or no motifs left to work with.
type EmptyInputError struct {
  What string
}

func (err *EmptyInputError) Error() string {
  return fmt.Sprintf("empty input: no %s", err.What)
}
