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

import   "bytes"
import   "os"
import   "path/filepath"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

const testFasta = `>INSR chr19:7150261-7150808 (reverse complement)
atgtccacatgtag
tcacgtttgacatc

>MBNL chr3:152446461-152447003
ttgcatgtt
ACGATTGCATG
`

func TestFasta1(t *testing.T) {
  records, err := ReadFasta(strings.NewReader(testFasta))
  if err != nil {
    t.Fatal(err)
  }
  if len(records) != 2 {
    t.Fatal("TestFasta1 failed")
  }
  if records[0].Name != "INSR chr19:7150261-7150808 (reverse complement)" || string(records[0].Sequence) != "atgtccacatgtagtcacgtttgacatc" {
    t.Errorf("TestFasta1 failed: %v", records[0])
  }
  if records[1].Name != "MBNL chr3:152446461-152447003" || string(records[1].Sequence) != "ttgcatgttACGATTGCATG" {
    t.Errorf("TestFasta1 failed: %v", records[1])
  }
}

func TestFasta2(t *testing.T) {
  if _, err := ReadFasta(strings.NewReader("acgt\n>gene\nacgt\n")); err == nil {
    t.Error("TestFasta2 failed")
  }
  if err := NormalizeFasta(strings.NewReader("acgt\n>gene\nacgt\n"), &bytes.Buffer{}); err == nil {
    t.Error("TestFasta2 failed")
  }
}

func TestFasta3(t *testing.T) {
  buffer := bytes.Buffer{}
  if err := NormalizeFasta(strings.NewReader(testFasta), &buffer); err != nil {
    t.Fatal(err)
  }
  expected := ">INSR chr19:7150261-7150808 (reverse complement)\natgtccacatgtagtcacgtttgacatc\n>MBNL chr3:152446461-152447003\nttgcatgttACGATTGCATG\n"
  if buffer.String() != expected {
    t.Errorf("TestFasta3 failed: %q", buffer.String())
  }
}

func TestFasta4(t *testing.T) {
  dir := t.TempDir()
  filenameIn  := filepath.Join(dir, "genes.fa")
  filenameOut := filepath.Join(dir, "oneline_genes.fa.gz")
  if err := os.WriteFile(filenameIn, []byte(testFasta), 0666); err != nil {
    t.Fatal(err)
  }
  if err := ExportOneLineFasta(filenameIn, filenameOut); err != nil {
    t.Fatal(err)
  }
  if !isGzip(filenameOut) {
    t.Error("TestFasta4 failed")
  }
  records, err := ImportFasta(filenameOut)
  if err != nil {
    t.Fatal(err)
  }
  if len(records) != 2 || string(records[1].Sequence) != "ttgcatgttACGATTGCATG" {
    t.Errorf("TestFasta4 failed: %v", records)
  }
}

func TestFasta5(t *testing.T) {
  if s := OneLineFilename("data/genes.fa"); s != filepath.Join("data", "oneline_genes.fa") {
    t.Errorf("TestFasta5 failed: %s", s)
  }
  if s := OneLineFilename("genes.fa"); s != "oneline_genes.fa" {
    t.Errorf("TestFasta5 failed: %s", s)
  }
  if s := OutputFilename("data/genes.fa.gz"); s != filepath.Join("data", "genes.png") {
    t.Errorf("TestFasta5 failed: %s", s)
  }
  if s := OutputFilename("genes"); s != "genes.png" {
    t.Errorf("TestFasta5 failed: %s", s)
  }
}
