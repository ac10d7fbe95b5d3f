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

import   "bytes"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestProgress1(t *testing.T) {
  p := New(&bytes.Buffer{}, "Scanning", 10, 5)
  if p.K != 2 {
    t.Error("TestProgress1 failed")
  }
  s := p.Format(5)
  if !strings.Contains(s, "50.00%") || !strings.Contains(s, "(5/10)") {
    t.Error("TestProgress1 failed")
  }
  if strings.HasSuffix(s, "\n") {
    t.Error("TestProgress1 failed")
  }
  if !strings.HasSuffix(p.Format(10), "\n") {
    t.Error("TestProgress1 failed")
  }
}

func TestProgress2(t *testing.T) {
  buffer := bytes.Buffer{}
  p := New(&buffer, "Scanning", 4, 2)
  for i := 0; i <= 4; i++ {
    p.Print(i)
  }
  // drawn for 0, 2 and 4
  if n := strings.Count(buffer.String(), lineDelete); n != 3 {
    t.Errorf("TestProgress2 failed: %d", n)
  }
}
