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
import   "math/rand"
import   "reflect"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestPattern1(t *testing.T) {
  p, err := CompilePattern("YGCU")
  if err != nil {
    t.Fatal(err)
  }
  if p.Motif != "ygcu" || p.Length() != 4 {
    t.Error("TestPattern1 failed")
  }
  if s := p.String(); s != "[ctu]gc[tu]" {
    t.Errorf("TestPattern1 failed: %s", s)
  }
}

func TestPattern2(t *testing.T) {
  _, err := CompilePattern("acxg")
  var e *CompilationError
  if !errors.As(err, &e) {
    t.Fatal("TestPattern2 failed")
  }
  if e.Motif != "acxg" || e.Position != 2 || e.Char != 'x' {
    t.Error("TestPattern2 failed")
  }
  if _, err := CompilePattern(""); !errors.As(err, &e) {
    t.Error("TestPattern2 failed")
  }
}

/* -------------------------------------------------------------------------- */

func TestScan1(t *testing.T) {
  r, err := FindMotif([]byte("aaa"), "aa")
  if err != nil {
    t.Fatal(err)
  }
  if !reflect.DeepEqual(r, []Occurrence{{0, 1}, {1, 2}}) {
    t.Errorf("TestScan1 failed: %v", r)
  }
}

func TestScan2(t *testing.T) {
  r, _ := FindMotif([]byte("act"), "ryh")
  if !reflect.DeepEqual(r, []Occurrence{{0, 2}}) {
    t.Errorf("TestScan2 failed: %v", r)
  }
  // case insensitive
  r, _ = FindMotif([]byte("ggACTgg"), "RYH")
  if !reflect.DeepEqual(r, []Occurrence{{2, 4}}) {
    t.Errorf("TestScan2 failed: %v", r)
  }
}

func TestScan3(t *testing.T) {
  // t and u are interchangeable on both sides
  if r, _ := FindMotif([]byte("gcAUg"), "cat"); len(r) != 1 || r[0] != (Occurrence{1, 3}) {
    t.Errorf("TestScan3 failed: %v", r)
  }
  if r, _ := FindMotif([]byte("catg"), "cau"); len(r) != 1 {
    t.Errorf("TestScan3 failed: %v", r)
  }
  // an n in the sequence is not a base
  if r, _ := FindMotif([]byte("acn"), "acn"); len(r) != 0 {
    t.Errorf("TestScan3 failed: %v", r)
  }
}

func TestScan4(t *testing.T) {
  // no partial windows at the tail
  if r, _ := FindMotif([]byte("acg"), "acgt"); len(r) != 0 {
    t.Errorf("TestScan4 failed: %v", r)
  }
  if r, _ := FindMotif([]byte(""), "a"); len(r) != 0 {
    t.Errorf("TestScan4 failed: %v", r)
  }
  if r, _ := FindMotif([]byte("gcgcg"), "gcg"); !reflect.DeepEqual(r, []Occurrence{{0, 2}, {2, 4}}) {
    t.Errorf("TestScan4 failed: %v", r)
  }
}

func TestScan5(t *testing.T) {
  // literal motifs are found exactly where a case-insensitive comparison
  // succeeds
  rng     := rand.New(rand.NewSource(42))
  letters := "acgACG"
  random  := func(n int) string {
    b := make([]byte, n)
    for i := range b {
      b[i] = letters[rng.Intn(len(letters))]
    }
    return string(b)
  }
  for k := 0; k < 200; k++ {
    seq   := random(1+rng.Intn(30))
    motif := random(1+rng.Intn(3))
    expected := []Occurrence{}
    for i := 0; i+len(motif) <= len(seq); i++ {
      if strings.EqualFold(seq[i:i+len(motif)], motif) {
        expected = append(expected, Occurrence{i, i+len(motif)-1})
      }
    }
    r, err := FindMotif([]byte(seq), motif)
    if err != nil {
      t.Fatal(err)
    }
    if !reflect.DeepEqual(r, expected) {
      t.Errorf("TestScan5 failed for `%s' in `%s': %v != %v", motif, seq, r, expected)
    }
  }
}
