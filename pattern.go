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

import "strings"

/* -------------------------------------------------------------------------- */

// Compiled degenerate motif. Position i of the pattern accepts any of the
// bases in Alternatives[i]; the length of the pattern always equals the
// length of the motif.
type Pattern struct {
  Motif        string
  Alternatives [][]byte
  masks        []uint8
}

/* constructor
 * -------------------------------------------------------------------------- */

func CompilePattern(motif string) (Pattern, error) {
  alphabet := MotifAlphabet{}
  motif     = strings.ToLower(motif)
  if len(motif) == 0 {
    return Pattern{}, &CompilationError{}
  }
  alternatives := make([][]byte, len(motif))
  masks        := make([]uint8,  len(motif))
  for i := 0; i < len(motif); i++ {
    bases, err := alphabet.Bases(motif[i])
    if err != nil {
      return Pattern{}, &CompilationError{Motif: motif, Position: i, Char: motif[i]}
    }
    for _, b := range bases {
      masks[i] |= alphabet.Code(b)
    }
    alternatives[i] = bases
  }
  return Pattern{Motif: motif, Alternatives: alternatives, masks: masks}, nil
}

/* -------------------------------------------------------------------------- */

func (p Pattern) Length() int {
  return len(p.masks)
}

// Test if the window matches the pattern position by position. The window
// must have the same length as the pattern.
func (p Pattern) Matches(window []byte) bool {
  if len(window) != len(p.masks) {
    return false
  }
  alphabet := MotifAlphabet{}
  for i, m := range p.masks {
    if alphabet.Code(window[i]) & m == 0 {
      return false
    }
  }
  return true
}

func (p Pattern) String() string {
  var builder strings.Builder
  for _, a := range p.Alternatives {
    if len(a) == 1 {
      builder.WriteByte(a[0])
    } else {
      builder.WriteByte('[')
      builder.Write(a)
      builder.WriteByte(']')
    }
  }
  return builder.String()
}
