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

import   "errors"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestExon1(t *testing.T) {
  exon, err := FindExon("gene", []byte("atgCGTAcgATG"), false)
  if err != nil {
    t.Fatal(err)
  }
  if exon.Start != 3 || exon.Stop != 6 {
    t.Errorf("TestExon1 failed: %v", exon)
  }
}

func TestExon2(t *testing.T) {
  _, err := FindExon("gene", []byte("acgtnnacgu"), false)
  var e *MissingExonError
  if !errors.As(err, &e) || e.Gene != "gene" {
    t.Error("TestExon2 failed")
  }
}

func TestExon3(t *testing.T) {
  exon, err := FindExon("gene", []byte("NNacgUN"), true)
  if err != nil {
    t.Fatal(err)
  }
  if exon.Start != 2 || exon.Stop != 5 {
    t.Errorf("TestExon3 failed: %v", exon)
  }
  // exon at the very end
  exon, err = FindExon("gene", []byte("aaaaU"), false)
  if err != nil || exon.Start != 4 || exon.Stop != 4 {
    t.Errorf("TestExon3 failed: %v", exon)
  }
}
