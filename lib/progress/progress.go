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

package progress

/* -------------------------------------------------------------------------- */

import "fmt"
import "io"
import "strings"

/* -------------------------------------------------------------------------- */

// Progress bar for N items, redrawn every K items.
type Progress struct {
  N, K, LineWidth int
  Label           string
  Writer          io.Writer
}

/* -------------------------------------------------------------------------- */

// New progress bar for n items that is redrawn about k times.
func New(writer io.Writer, label string, n, k int) Progress {
  progress := Progress{N: n, K: 1, LineWidth: 40, Label: label, Writer: writer}
  if k > 0 && k <= n {
    progress.K = n/k
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const lineDelete = "\033[2K\r"

func (progress Progress) Format(i int) string {
  var builder strings.Builder

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  // width of the bar without the borders
  w := progress.LineWidth-2
  k := int(p*float64(w))
  if k > w {
    k = w
  }
  fmt.Fprintf(&builder, "%s%s |%s%s| %6.2f%% (%d/%d)", lineDelete, progress.Label,
    strings.Repeat(">", k), strings.Repeat(" ", w-k), p*100, i, progress.N)
  // add newline if finished
  if i >= progress.N {
    builder.WriteString("\n")
  }
  return builder.String()
}

func (progress Progress) Print(i int) {
  if i == 0 || i >= progress.N || (i % progress.K == 0) {
    fmt.Fprint(progress.Writer, progress.Format(i))
  }
}
