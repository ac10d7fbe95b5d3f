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

import "fmt"

/* -------------------------------------------------------------------------- */

// Position of a motif within a sequence. By convention the first position
// is numbered 0 and both From and To are part of the occurrence, i.e. the
// interval is [From, To].
type Occurrence struct {
  From, To int
}

func (r Occurrence) Length() int {
  return r.To - r.From + 1
}

func (r Occurrence) String() string {
  return fmt.Sprintf("[%d %d]", r.From, r.To)
}

/* -------------------------------------------------------------------------- */

// Find all occurrences of the pattern in the sequence. The pattern is
// anchored at every position of the sequence, hence overlapping
// occurrences are all reported. Matching ignores case.
func (p Pattern) Scan(sequence []byte) []Occurrence {
  r := []Occurrence{}
  n := p.Length()
  if n == 0 {
    return r
  }
  for i := 0; i+n-1 < len(sequence); i++ {
    if p.Matches(sequence[i:i+n]) {
      r = append(r, Occurrence{i, i+n-1})
    }
  }
  return r
}

// Compile the motif and scan the sequence.
func FindMotif(sequence []byte, motif string) ([]Occurrence, error) {
  p, err := CompilePattern(motif)
  if err != nil {
    return nil, err
  }
  return p.Scan(sequence), nil
}
