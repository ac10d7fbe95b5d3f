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

// Alphabet of degenerate motifs. DNA and RNA letters are interchangeable,
// i.e. t and u match each other wherever one of them is allowed.
type MotifAlphabet struct {
}

// Set of literal bases an ambiguity code stands for. Upper and lower case
// letters are treated equally, the result is always lower case.
func (MotifAlphabet) Bases(i byte) ([]byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return []byte{'a'}, nil
  case 'C': fallthrough
  case 'c': return []byte{'c'}, nil
  case 'G': fallthrough
  case 'g': return []byte{'g'}, nil
  case 'T': fallthrough
  case 't': return []byte{'t', 'u'}, nil
  case 'U': fallthrough
  case 'u': return []byte{'t', 'u'}, nil
  case 'Y': fallthrough
  case 'y': return []byte{'c', 't', 'u'}, nil
  case 'R': fallthrough
  case 'r': return []byte{'a', 'g'}, nil
  case 'M': fallthrough
  case 'm': return []byte{'a', 'c'}, nil
  case 'K': fallthrough
  case 'k': return []byte{'g', 't'}, nil
  case 'S': fallthrough
  case 's': return []byte{'g', 'c'}, nil
  case 'W': fallthrough
  case 'w': return []byte{'a', 't'}, nil
  case 'H': fallthrough
  case 'h': return []byte{'a', 'c', 't'}, nil
  case 'B': fallthrough
  case 'b': return []byte{'c', 'g', 't'}, nil
  case 'V': fallthrough
  case 'v': return []byte{'a', 'c', 'g'}, nil
  case 'D': fallthrough
  case 'd': return []byte{'a', 'g', 't'}, nil
  case 'N': fallthrough
  case 'n': return []byte{'a', 't', 'c', 'g', 'u'}, nil
  default:  return nil, fmt.Errorf("Bases(): `%c' is not part of the alphabet", i)
  }
}

// Code of a literal sequence letter as a bit mask. Letters that are not
// one of a, c, g, t, u (e.g. an `n' inside a sequence) have code zero and
// never match.
func (MotifAlphabet) Code(i byte) uint8 {
  switch i {
  case 'A': fallthrough
  case 'a': return 1 << 0
  case 'C': fallthrough
  case 'c': return 1 << 1
  case 'G': fallthrough
  case 'g': return 1 << 2
  case 'T': fallthrough
  case 't': return 1 << 3
  case 'U': fallthrough
  case 'u': return 1 << 4
  default:  return 0
  }
}

// Returns true if the letter is one of the unambiguous bases A, C, G, T, U.
// Lower case letters are accepted only if ignoreCase is set.
func (MotifAlphabet) IsUnambiguous(i byte, ignoreCase bool) bool {
  switch i {
  case 'A', 'C', 'G', 'T', 'U':
    return true
  case 'a', 'c', 'g', 't', 'u':
    return ignoreCase
  default:
    return false
  }
}

func (MotifAlphabet) String() string {
  return "degenerate motif alphabet"
}
