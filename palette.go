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
import "image/color"
import "math/rand"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

type Palette []color.NRGBA

// Five colors that remain distinguishable when motifs overlap.
func DefaultPalette() Palette {
  return Palette{
    color.NRGBA{ 14, 184, 187, 255},
    color.NRGBA{120,  94, 240, 255},
    color.NRGBA{220,  38, 127, 255},
    color.NRGBA{254,  97,   0, 255},
    color.NRGBA{255, 176,   0, 255} }
}

// Parse a comma separated list of colors in `#rrggbb' notation.
func ParsePalette(str string) (Palette, error) {
  p := Palette{}
  m := map[color.NRGBA]bool{}
  for _, field := range strings.Split(str, ",") {
    field = strings.TrimPrefix(strings.TrimSpace(field), "#")
    if len(field) == 0 {
      continue
    }
    if len(field) != 6 {
      return nil, fmt.Errorf("ParsePalette(): invalid color `%s'", field)
    }
    v, err := strconv.ParseUint(field, 16, 32)
    if err != nil {
      return nil, fmt.Errorf("ParsePalette(): invalid color `%s'", field)
    }
    // skip duplicates so that no color is handed out twice
    if c := (color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}); !m[c] {
      m[c] = true
      p    = append(p, c)
    }
  }
  if len(p) == 0 {
    return nil, fmt.Errorf("ParsePalette(): no colors given")
  }
  return p, nil
}

/* -------------------------------------------------------------------------- */

// Hands out the colors of a palette in random order, each color at most
// once.
type ColorAllocator struct {
  pool     []color.NRGBA
  rng      *rand.Rand
  size     int
  requests int
}

func NewColorAllocator(palette Palette, rng *rand.Rand) *ColorAllocator {
  pool := make([]color.NRGBA, len(palette))
  copy(pool, palette)
  return &ColorAllocator{pool: pool, rng: rng, size: len(palette)}
}

func (obj *ColorAllocator) Remaining() int {
  return len(obj.pool)
}

// Select one of the remaining colors uniformly at random and remove it
// from the pool.
func (obj *ColorAllocator) Allocate() (color.NRGBA, error) {
  obj.requests++
  if len(obj.pool) == 0 {
    return color.NRGBA{}, &PaletteExhaustedError{Motifs: obj.requests, Colors: obj.size}
  }
  i := obj.rng.Intn(len(obj.pool))
  c := obj.pool[i]
  obj.pool[i] = obj.pool[len(obj.pool)-1]
  obj.pool    = obj.pool[:len(obj.pool)-1]
  return c, nil
}

/* -------------------------------------------------------------------------- */

// Fixed mapping of motifs to colors. Motifs keeps the order in which they
// were read.
type ColorAssignment struct {
  Motifs []string
  Colors map[string]color.NRGBA
}

func (obj ColorAssignment) Length() int {
  return len(obj.Motifs)
}

func (obj ColorAssignment) Get(motif string) (color.NRGBA, bool) {
  c, ok := obj.Colors[motif]
  return c, ok
}

// Assign a distinct color to every distinct motif. Fails if there are
// more distinct motifs than colors. Motifs are compared literally, so
// `ygcy' and `YGCY' receive two colors although they match the same
// sites.
func AssignColors(motifs []string, palette Palette, rng *rand.Rand) (ColorAssignment, error) {
  r := ColorAssignment{Colors: make(map[string]color.NRGBA)}
  for _, motif := range motifs {
    if _, ok := r.Colors[motif]; !ok {
      r.Motifs = append(r.Motifs, motif)
      r.Colors[motif] = color.NRGBA{}
    }
  }
  if len(r.Motifs) > len(palette) {
    return ColorAssignment{}, &PaletteExhaustedError{Motifs: len(r.Motifs), Colors: len(palette)}
  }
  allocator := NewColorAllocator(palette, rng)
  for _, motif := range r.Motifs {
    c, err := allocator.Allocate()
    if err != nil {
      return ColorAssignment{}, err
    }
    r.Colors[motif] = c
  }
  return r, nil
}
