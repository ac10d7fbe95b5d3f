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
import "fmt"
import "image/color"
import "sync"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// Gene line; Start is always 0 and Stop the last position of the sequence.
type Gene struct {
  Start, Stop float64
  Name        string
}

type Exon struct {
  Start, Stop float64
}

// One occurrence of a motif.
type Motif struct {
  Start, Stop float64
  Motif       string
  Color       color.NRGBA
}

func (obj Motif) String() string {
  return fmt.Sprintf("%s [%g %g]", obj.Motif, obj.Start, obj.Stop)
}

/* -------------------------------------------------------------------------- */

// Drawables of a single gene.
type GeneGroup struct {
  Gene   Gene
  Exon   Exon
  Motifs []Motif
}

// Scan the record for every motif and detect its exon. Motifs are
// collected in the order of the assignment, occurrences of the same motif
// from left to right.
func NewGeneGroup(record GeneRecord, patterns []Pattern, assignment ColorAssignment, ignoreCase bool) (*GeneGroup, error) {
  if len(patterns) != assignment.Length() {
    return nil, fmt.Errorf("NewGeneGroup(): invalid number of patterns")
  }
  exon, err := FindExon(record.Name, record.Sequence, ignoreCase)
  if err != nil {
    return nil, err
  }
  motifs := []Motif{}
  for i, p := range patterns {
    name := assignment.Motifs[i]
    c, _ := assignment.Get(name)
    for _, r := range p.Scan(record.Sequence) {
      motifs = append(motifs, Motif{Start: float64(r.From), Stop: float64(r.To), Motif: name, Color: c})
    }
  }
  gene := Gene{Start: 0, Stop: float64(len(record.Sequence)-1), Name: record.Name}
  return &GeneGroup{Gene: gene, Exon: exon, Motifs: motifs}, nil
}

/* -------------------------------------------------------------------------- */

type MissingExonPolicy int

const (
  SkipMissingExon MissingExonPolicy = iota
  AbortOnMissingExon
)

func ParseMissingExonPolicy(str string) (MissingExonPolicy, error) {
  switch str {
  case "skip":
    return SkipMissingExon, nil
  case "abort":
    return AbortOnMissingExon, nil
  }
  return SkipMissingExon, fmt.Errorf("invalid missing exon policy `%s'", str)
}

type SceneConfig struct {
  MissingExon   MissingExonPolicy
  // exons consist of upper case bases only, lower case marks introns
  UpperCaseExon bool
  Threads       int
  // called whenever a gene record was scanned
  Progress      func(done, total int)
}

func DefaultSceneConfig() SceneConfig {
  return SceneConfig{MissingExon: SkipMissingExon, Threads: 1}
}

/* -------------------------------------------------------------------------- */

// Ordered collection of gene groups, the order is the vertical order of
// the rows in the image.
type Scene struct {
  Groups []*GeneGroup
  Colors ColorAssignment
  scaled bool
}

func (scene *Scene) Length() int {
  return len(scene.Groups)
}

func (scene *Scene) Scaled() bool {
  return scene.scaled
}

/* -------------------------------------------------------------------------- */

func CompileMotifs(assignment ColorAssignment) ([]Pattern, error) {
  patterns := make([]Pattern, assignment.Length())
  for i, motif := range assignment.Motifs {
    p, err := CompilePattern(motif)
    if err != nil {
      return nil, err
    }
    patterns[i] = p
  }
  return patterns, nil
}

// Scan all records, one job per record. Results are stored by index, so
// the order of the records is preserved regardless of the number of
// threads.
func ScanGenes(records []GeneRecord, patterns []Pattern, assignment ColorAssignment, config SceneConfig) ([]*GeneGroup, []error, error) {
  threads := config.Threads
  if threads < 1 {
    threads = 1
  }
  pool   := threadpool.New(threads, 100*threads)
  groups := make([]*GeneGroup, len(records))
  errs   := make([]error,      len(records))

  mtx  := sync.Mutex{}
  done := 0

  if err := pool.RangeJob(0, len(records), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    groups[i], errs[i] = NewGeneGroup(records[i], patterns, assignment, !config.UpperCaseExon)
    if config.Progress != nil {
      mtx.Lock()
      done++
      config.Progress(done, len(records))
      mtx.Unlock()
    }
    return nil
  }); err != nil {
    return nil, nil, err
  }
  return groups, errs, nil
}

// Build the scene from all gene records. Genes without exon are dropped
// and returned separately, or abort the construction, depending on the
// policy.
func BuildScene(records []GeneRecord, assignment ColorAssignment, config SceneConfig) (*Scene, []*MissingExonError, error) {
  if len(records) == 0 {
    return nil, nil, &EmptyInputError{What: "gene records"}
  }
  if assignment.Length() == 0 {
    return nil, nil, &EmptyInputError{What: "motifs"}
  }
  patterns, err := CompileMotifs(assignment)
  if err != nil {
    return nil, nil, err
  }
  groups, errs, err := ScanGenes(records, patterns, assignment, config)
  if err != nil {
    return nil, nil, err
  }
  scene   := &Scene{Colors: assignment}
  skipped := []*MissingExonError{}
  for i := 0; i < len(groups); i++ {
    if errs[i] == nil {
      scene.Groups = append(scene.Groups, groups[i])
      continue
    }
    var e *MissingExonError
    if errors.As(errs[i], &e) && config.MissingExon == SkipMissingExon {
      skipped = append(skipped, e)
      continue
    }
    return nil, nil, errs[i]
  }
  if len(scene.Groups) == 0 {
    return nil, skipped, &EmptyInputError{What: "genes with exon"}
  }
  return scene, skipped, nil
}
