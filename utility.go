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
import "os"
import "strings"

import "github.com/klauspost/pgzip"

/* -------------------------------------------------------------------------- */

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

type readCloser struct {
  io.Reader
  closers []io.Closer
}

func (obj readCloser) Close() error {
  var err error
  for i := len(obj.closers)-1; i >= 0; i-- {
    if e := obj.closers[i].Close(); e != nil && err == nil {
      err = e
    }
  }
  return err
}

// Open a file for reading, gzip compressed files are decompressed on the
// fly.
func openFile(filename string) (io.ReadCloser, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  if isGzip(filename) {
    g, err := pgzip.NewReader(f)
    if err != nil {
      f.Close()
      return nil, err
    }
    return readCloser{g, []io.Closer{f, g}}, nil
  }
  return f, nil
}

/* -------------------------------------------------------------------------- */

type writeCloser struct {
  *bufio.Writer
  closers []io.Closer
}

func (obj writeCloser) Close() error {
  err := obj.Flush()
  for i := len(obj.closers)-1; i >= 0; i-- {
    if e := obj.closers[i].Close(); e != nil && err == nil {
      err = e
    }
  }
  return err
}

// Create a buffered file for writing. Files with a `.gz' suffix are gzip
// compressed.
func createFile(filename string) (io.WriteCloser, error) {
  f, err := os.Create(filename)
  if err != nil {
    return nil, err
  }
  if strings.HasSuffix(filename, ".gz") {
    g := pgzip.NewWriter(f)
    return writeCloser{bufio.NewWriter(g), []io.Closer{f, g}}, nil
  }
  return writeCloser{bufio.NewWriter(f), []io.Closer{f}}, nil
}
