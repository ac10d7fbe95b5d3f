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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "math/rand"
import   "os"
import   "time"

import   "github.com/fatih/color"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/motifmark"
import   "github.com/pbenner/motifmark/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  Layout   LayoutConfig
  Scene    SceneConfig
  Palette  Palette
  Seed     int64
  OneLine  string
  Output   string
  Verbose  int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

var warning = color.New(color.FgYellow, color.Bold)

func PrintWarning(format string, args ...interface{}) {
  warning.Fprint(os.Stderr, "warning: ")
  fmt.Fprintf(os.Stderr, format, args...)
}

/* -------------------------------------------------------------------------- */

func normalizeFasta(config Config, filenameIn, filenameOut string) {
  PrintStderr(config, 1, "Writing one-line fasta file `%s'... ", filenameOut)
  if err := ExportOneLineFasta(filenameIn, filenameOut); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

func importFasta(config Config, filename string) []GeneRecord {
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  records, err := ImportFasta(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done (%d records)\n", len(records))
  return records
}

func importMotifs(config Config, filename string) []string {
  PrintStderr(config, 1, "Reading motifs `%s'... ", filename)
  motifs, err := ImportMotifs(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done (%d motifs)\n", len(motifs))
  return motifs
}

func exportPNG(config Config, canvas *ImageCanvas, filename string) {
  PrintStderr(config, 1, "Writing image `%s'... ", filename)
  if err := canvas.ExportPNG(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func assignColors(config Config, motifs []string) ColorAssignment {
  if len(motifs) == 0 {
    log.Fatal(&EmptyInputError{What: "motifs"})
  }
  seed := config.Seed
  if seed == 0 {
    seed = time.Now().UnixNano()
  }
  assignment, err := AssignColors(motifs, config.Palette, rand.New(rand.NewSource(seed)))
  if err != nil {
    log.Fatal(err)
  }
  for _, motif := range assignment.Motifs {
    c, _ := assignment.Get(motif)
    PrintStderr(config, 2, "Motif `%s' has color #%02x%02x%02x\n", motif, c.R, c.G, c.B)
  }
  return assignment
}

func buildScene(config Config, records []GeneRecord, assignment ColorAssignment) *Scene {
  if config.Verbose >= 2 {
    p := progress.New(os.Stderr, "Scanning genes", len(records), 100)
    config.Scene.Progress = func(done, total int) {
      p.Print(done)
    }
  }
  scene, skipped, err := BuildScene(records, assignment, config.Scene)
  for _, e := range skipped {
    PrintWarning("%v, gene is not drawn\n", e)
  }
  if err != nil {
    log.Fatal(err)
  }
  return scene
}

func motifMark(config Config, filenameFasta, filenameMotifs string) {
  // patterns are compiled before anything is written
  assignment := assignColors(config, importMotifs(config, filenameMotifs))
  if _, err := CompileMotifs(assignment); err != nil {
    log.Fatal(err)
  }
  normalizeFasta(config, filenameFasta, config.OneLine)

  records := importFasta(config, config.OneLine)
  scene   := buildScene(config, records, assignment)

  layout, err := scene.Layout(config.Layout)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 2, "Longest gene has %g bp, scale factor is %g\n", layout.MaxGeneLength+1, layout.ScaleFactor)

  canvas := NewImageCanvas(layout.Width, layout.Height)
  if err := scene.Draw(layout, canvas); err != nil {
    log.Fatal(err)
  }
  exportPNG(config, canvas, config.Output)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  layout  := DefaultLayoutConfig()
  options := getopt.New()

  optFasta       := options. StringLong("fasta",        'f', "",        "input fasta file")
  optMotifs      := options. StringLong("motifs",       'm', "",        "input motifs file, one motif per line")
  optOutput      := options. StringLong("output",       'o', "",        "output png file [default: <FASTA-STEM>.png]")
  optOneLine     := options. StringLong("oneline",       0 , "",        "one-line fasta file [default: oneline_<FASTA>]")
  optWidth       := options.    IntLong("width",         0 , layout.Width,      "image width")
  optXPadding    := options.    IntLong("x-padding",     0 , layout.XPadding,   "horizontal padding")
  optYPadding    := options.    IntLong("y-padding",     0 , layout.YPadding,   "vertical position of the first gene")
  optRowSpacing  := options.    IntLong("row-spacing",   0 , layout.RowSpacing, "vertical distance between genes")
  optBaseHeight  := options.    IntLong("base-height",   0 , layout.BaseHeight, "image height without genes")
  optPalette     := options. StringLong("palette",       0 , "",        "comma separated list of colors [#rrggbb,...]")
  optSeed        := options.    IntLong("seed",          0 , 0,         "seed for selecting motif colors [default: random]")
  optMissingExon := options. StringLong("missing-exon",  0 , "skip",    "genes without exon [skip (default), abort]")
  optUpperCase   := options.   BoolLong("exon-upper-case", 0 ,          "exons consist of upper case letters only")
  optThreads     := options.    IntLong("threads",       0 , 1,         "number of threads [default: 1]")
  optVerbose     := options.CounterLong("verbose",      'v',            "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",         'h',            "print help")

  options.SetParameters("")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if *optFasta == "" || *optMotifs == "" || len(options.Args()) != 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  layout.Width      = *optWidth
  layout.XPadding   = *optXPadding
  layout.YPadding   = *optYPadding
  layout.RowSpacing = *optRowSpacing
  layout.BaseHeight = *optBaseHeight
  config.Layout     = layout

  config.Scene               = DefaultSceneConfig()
  config.Scene.Threads       = *optThreads
  config.Scene.UpperCaseExon = *optUpperCase
  if policy, err := ParseMissingExonPolicy(*optMissingExon); err != nil {
    log.Fatal(err)
  } else {
    config.Scene.MissingExon = policy
  }
  if *optPalette == "" {
    config.Palette = DefaultPalette()
  } else if palette, err := ParsePalette(*optPalette); err != nil {
    log.Fatal(err)
  } else {
    config.Palette = palette
  }
  config.Seed    = int64(*optSeed)
  config.Verbose = *optVerbose

  config.OneLine = *optOneLine
  if config.OneLine == "" {
    config.OneLine = OneLineFilename(*optFasta)
  }
  config.Output = *optOutput
  if config.Output == "" {
    config.Output = OutputFilename(*optFasta)
  }
  motifMark(config, *optFasta, *optMotifs)
}
