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

import "bufio"
import "io"
import "strings"

/* -------------------------------------------------------------------------- */

// Read one motif per line. Blank lines are skipped and repeated motifs are
// kept only once, at the position of their first occurrence.
func ReadMotifs(reader io.Reader) ([]string, error) {
  scanner := bufio.NewScanner(reader)
  motifs  := []string{}
  seen    := map[string]bool{}
  for scanner.Scan() {
    motif := strings.TrimSpace(scanner.Text())
    if motif == "" || seen[motif] {
      continue
    }
    seen[motif] = true
    motifs      = append(motifs, motif)
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return motifs, nil
}

func ImportMotifs(filename string) ([]string, error) {
  f, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  return ReadMotifs(f)
}
