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

import "image/color"
import "io"

import "gonum.org/v1/plot/font"
import "gonum.org/v1/plot/font/liberation"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/vgimg"

/* -------------------------------------------------------------------------- */

// Raster canvas backed by gonum's vg. One point equals one pixel.
type ImageCanvas struct {
  canvas *vgimg.Canvas
  fonts  *font.Cache
  height float64
}

func NewImageCanvas(width, height int) *ImageCanvas {
  c := vgimg.NewWith(
    vgimg.UseWH(vg.Length(width), vg.Length(height)),
    vgimg.UseDPI(72),
    vgimg.UseBackgroundColor(color.White))
  return &ImageCanvas{
    canvas: c,
    fonts : font.NewCache(liberation.Collection()),
    height: float64(height) }
}

/* -------------------------------------------------------------------------- */

// vg has its origin in the bottom left corner
func (obj *ImageCanvas) point(x, y float64) vg.Point {
  return vg.Point{X: vg.Length(x), Y: vg.Length(obj.height-y)}
}

func (obj *ImageCanvas) Line(x0, y0, x1, y1, width float64, c color.Color) {
  var path vg.Path
  path.Move(obj.point(x0, y0))
  path.Line(obj.point(x1, y1))
  obj.canvas.SetLineWidth(vg.Length(width))
  obj.canvas.SetColor(c)
  obj.canvas.Stroke(path)
}

func (obj *ImageCanvas) Rect(x, y, w, h float64, c color.Color) {
  var path vg.Path
  path.Move(obj.point(x  , y  ))
  path.Line(obj.point(x+w, y  ))
  path.Line(obj.point(x+w, y+h))
  path.Line(obj.point(x  , y+h))
  path.Close()
  obj.canvas.SetColor(c)
  obj.canvas.Fill(path)
}

func (obj *ImageCanvas) Text(x, y, size float64, text string, c color.Color) {
  face := obj.fonts.Lookup(font.Font{Typeface: "Liberation", Variant: "Sans"}, vg.Length(size))
  obj.canvas.SetColor(c)
  obj.canvas.FillString(face, obj.point(x, y), text)
}

/* i/o
 * -------------------------------------------------------------------------- */

func (obj *ImageCanvas) WritePNG(writer io.Writer) error {
  _, err := vgimg.PngCanvas{Canvas: obj.canvas}.WriteTo(writer)
  return err
}

func (obj *ImageCanvas) ExportPNG(filename string) error {
  w, err := createFile(filename)
  if err != nil {
    return err
  }
  if err := obj.WritePNG(w); err != nil {
    w.Close()
    return err
  }
  return w.Close()
}
