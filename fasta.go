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
import "fmt"
import "io"
import "path/filepath"
import "strings"

/* -------------------------------------------------------------------------- */

// Named gene sequence. The name is the full header line without the
// leading `>'.
type GeneRecord struct {
  Name     string
  Sequence []byte
}

func (obj GeneRecord) String() string {
  return fmt.Sprintf("%s (%d bp)", obj.Name, len(obj.Sequence))
}

/* -------------------------------------------------------------------------- */

func newFastaScanner(reader io.Reader) *bufio.Scanner {
  scanner := bufio.NewScanner(reader)
  // sequence lines of one-line fasta files can be long
  scanner.Buffer(make([]byte, 64*1024), 1 << 30)
  return scanner
}

// Read all records in the order they appear in the file. Multi-line
// sequences are concatenated.
func ReadFasta(reader io.Reader) ([]GeneRecord, error) {
  scanner := newFastaScanner(reader)
  records := []GeneRecord{}

  // current sequence
  name := ""
  seq  := []byte{}
  open := false

  for scanner.Scan() {
    line := strings.TrimRight(scanner.Text(), "\r")
    if len(strings.TrimSpace(line)) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data from previous entry
      if open {
        records = append(records, GeneRecord{name, seq})
      }
      name = strings.TrimSpace(line[1:])
      seq  = []byte{}
      open = true
    } else {
      // data
      if !open {
        return nil, fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      seq = append(seq, strings.TrimSpace(line)...)
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  if open {
    records = append(records, GeneRecord{name, seq})
  }
  return records, nil
}

func ImportFasta(filename string) ([]GeneRecord, error) {
  f, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  return ReadFasta(f)
}

/* -------------------------------------------------------------------------- */

// Rewrite a fasta file such that every record consists of one header line
// and one sequence line. Header lines are copied verbatim.
func NormalizeFasta(reader io.Reader, writer io.Writer) error {
  scanner := newFastaScanner(reader)
  first   := true
  for scanner.Scan() {
    line := strings.TrimRight(scanner.Text(), "\r")
    if len(line) > 0 && line[0] == '>' {
      if !first {
        if _, err := io.WriteString(writer, "\n"); err != nil {
          return err
        }
      }
      if _, err := fmt.Fprintf(writer, "%s\n", line); err != nil {
        return err
      }
      first = false
    } else {
      if first && len(strings.TrimSpace(line)) > 0 {
        return fmt.Errorf("NormalizeFasta(): invalid fasta file")
      }
      if _, err := io.WriteString(writer, strings.TrimSpace(line)); err != nil {
        return err
      }
    }
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  if !first {
    if _, err := io.WriteString(writer, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func ExportOneLineFasta(filenameIn, filenameOut string) error {
  r, err := openFile(filenameIn)
  if err != nil {
    return err
  }
  defer r.Close()

  w, err := createFile(filenameOut)
  if err != nil {
    return err
  }
  if err := NormalizeFasta(r, w); err != nil {
    w.Close()
    return err
  }
  return w.Close()
}

/* file names
 * -------------------------------------------------------------------------- */

// Name of the one-line fasta file, which is placed next to the input.
func OneLineFilename(filenameFasta string) string {
  dir, base := filepath.Split(filenameFasta)
  return filepath.Join(dir, "oneline_"+base)
}

// Name of the image, i.e. the input name up to its first dot with suffix
// `.png'.
func OutputFilename(filenameFasta string) string {
  dir, base := filepath.Split(filenameFasta)
  if i := strings.Index(base, "."); i >= 0 {
    base = base[:i]
  }
  return filepath.Join(dir, base+".png")
}
