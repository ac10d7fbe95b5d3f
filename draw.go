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

import "errors"
import "image/color"

/* -------------------------------------------------------------------------- */

// Drawing backend. Coordinates are pixels with the origin in the top left
// corner; text is placed with its baseline at y.
type Painter interface {
  Line(x0, y0, x1, y1, width float64, c color.Color)
  Rect(x, y, w, h float64, c color.Color)
  Text(x, y, size float64, text string, c color.Color)
}

var ErrNotScaled = errors.New("Draw(): scene has no layout")

/* -------------------------------------------------------------------------- */

const (
  geneLineWidth      =  2.0
  geneNameSize       = 18.0
  geneNameOffset     = 20.0
  exonHeight         = 10.0
  motifHeight        = 10.0
  motifOpacity       =  0.7
  legendX            =  5.0
  legendRectWidth    = 30.0
  legendRectHeight   = 10.0
  legendTextSize     = 10.0
  legendTextOffset   =  3.0
  legendGeneSpacing  = 100.0
  legendItemSpacing  = 130.0
)

var black = color.NRGBA{0, 0, 0, 255}

func withOpacity(c color.NRGBA, alpha float64) color.NRGBA {
  c.A = uint8(alpha*255)
  return c
}

/* -------------------------------------------------------------------------- */

func (obj Gene) draw(p Painter, x, y float64) {
  p.Line(x+obj.Start, y, x+obj.Stop, y, geneLineWidth, black)
  p.Text(x+obj.Start, y-geneNameOffset, geneNameSize, obj.Name, black)
}

func (obj Exon) draw(p Painter, x, y float64) {
  p.Rect(x+obj.Start, y-exonHeight/2, obj.Stop-obj.Start, exonHeight, black)
}

func (obj Motif) draw(p Painter, x, y float64) {
  w := obj.Stop - obj.Start
  // single-base motifs still get one pixel
  if w < 1 {
    w = 1
  }
  p.Rect(x+obj.Start, y-motifHeight/2, w, motifHeight, withOpacity(obj.Color, motifOpacity))
}

func (group *GeneGroup) draw(p Painter, x, y float64) {
  group.Gene.draw(p, x, y)
  group.Exon.draw(p, x, y)
  for _, motif := range group.Motifs {
    motif.draw(p, x, y)
  }
}

/* -------------------------------------------------------------------------- */

// Paint all rows and the legend. The scene must have been laid out.
func (scene *Scene) Draw(layout Layout, p Painter) error {
  if !scene.scaled {
    return ErrNotScaled
  }
  if len(layout.Rows) != len(scene.Groups) {
    return errors.New("Draw(): layout does not match scene")
  }
  for i, group := range scene.Groups {
    group.draw(p, layout.XPadding, layout.Rows[i])
  }
  scene.drawLegend(p, layout.LegendY)
  return nil
}

func (scene *Scene) drawLegend(p Painter, y float64) {
  x := legendX
  p.Line(x, y, x+legendRectWidth, y, geneLineWidth, black)
  p.Text(x+legendRectWidth+legendTextOffset, y+3, legendTextSize, "Gene", black)
  x += legendGeneSpacing

  p.Rect(x, y-legendRectHeight/2, legendRectWidth, legendRectHeight, black)
  p.Text(x+legendRectWidth+legendTextOffset, y+3, legendTextSize, "Exon", black)
  x += legendItemSpacing

  for _, motif := range scene.Colors.Motifs {
    c, _ := scene.Colors.Get(motif)
    p.Rect(x, y-legendRectHeight/2, legendRectWidth, legendRectHeight, c)
    p.Text(x+legendRectWidth+legendTextOffset, y+3, legendTextSize, motif, black)
    x += legendItemSpacing
  }
}
