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

// Locate the first maximal run of unambiguous bases (A, C, G, T, U). With
// ignoreCase unset only upper case bases count, for inputs that mark
// introns in lower case.
func FindExon(name string, sequence []byte, ignoreCase bool) (Exon, error) {
  alphabet := MotifAlphabet{}
  for i := 0; i < len(sequence); i++ {
    if alphabet.IsUnambiguous(sequence[i], ignoreCase) {
      j := i
      for j+1 < len(sequence) && alphabet.IsUnambiguous(sequence[j+1], ignoreCase) {
        j++
      }
      return Exon{Start: float64(i), Stop: float64(j)}, nil
    }
  }
  return Exon{}, &MissingExonError{Gene: name}
}
