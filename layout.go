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

/* -------------------------------------------------------------------------- */

// Canvas geometry in pixels.
type LayoutConfig struct {
  Width         int
  XPadding      int
  YPadding      int
  RowSpacing    int
  BaseHeight    int
  LegendPadding int
}

func DefaultLayoutConfig() LayoutConfig {
  return LayoutConfig{
    Width        : 1000,
    XPadding     :   50,
    YPadding     :   50,
    RowSpacing   :   70,
    BaseHeight   :  100,
    LegendPadding:   50 }
}

/* -------------------------------------------------------------------------- */

type Layout struct {
  Width         int
  Height        int
  XPadding      float64
  MaxGeneLength float64
  ScaleFactor   float64
  // vertical position of each row
  Rows          []float64
  LegendY       float64
}

/* -------------------------------------------------------------------------- */

// Derive a single scale factor from the longest gene, rescale all
// drawables in place and place the rows below each other. A scene can be
// laid out only once.
func (scene *Scene) Layout(config LayoutConfig) (Layout, error) {
  if scene.scaled {
    return Layout{}, ErrAlreadyScaled
  }
  if len(scene.Groups) == 0 {
    return Layout{}, &EmptyInputError{What: "gene groups"}
  }
  if config.Width - 2*config.XPadding <= 0 {
    return Layout{}, fmt.Errorf("Layout(): canvas width %d too small for padding %d", config.Width, config.XPadding)
  }
  maxGeneLength := scene.Groups[0].Gene.Stop
  for _, group := range scene.Groups[1:] {
    if group.Gene.Stop > maxGeneLength {
      maxGeneLength = group.Gene.Stop
    }
  }
  if maxGeneLength <= 0 {
    return Layout{}, ErrDegenerateLayout
  }
  scaleFactor := float64(config.Width - 2*config.XPadding) / maxGeneLength

  rows := make([]float64, len(scene.Groups))
  for i, group := range scene.Groups {
    group.scale(scaleFactor)
    rows[i] = float64(config.YPadding + i*config.RowSpacing)
  }
  scene.scaled = true

  legendY := rows[len(rows)-1] + float64(config.LegendPadding)
  height  := config.BaseHeight + len(scene.Groups)*config.RowSpacing
  // grow the canvas if the legend would be clipped
  if h := int(legendY) + config.LegendPadding; h > height {
    height = h
  }
  return Layout{
    Width        : config.Width,
    Height       : height,
    XPadding     : float64(config.XPadding),
    MaxGeneLength: maxGeneLength,
    ScaleFactor  : scaleFactor,
    Rows         : rows,
    LegendY      : legendY }, nil
}

func (group *GeneGroup) scale(f float64) {
  group.Gene.Start *= f
  group.Gene.Stop  *= f
  group.Exon.Start *= f
  group.Exon.Stop  *= f
  for i := range group.Motifs {
    group.Motifs[i].Start *= f
    group.Motifs[i].Stop  *= f
  }
}
