package find

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/dshills/quarry/internal/engine/textrun"
	"github.com/dshills/quarry/internal/engine/tracking"
)

// DefaultHighlightClass is the decoration class given to search hits.
const DefaultHighlightClass = "pm-find-text"

// Range is one search hit: the half-open span [From, To) in document
// positions. From < To always holds.
type Range struct {
	From int
	To   int
}

// Len returns the length of the range.
func (r Range) Len() int {
	return r.To - r.From
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.From, r.To)
}

// Decoration is an inline highlight for the host to render.
type Decoration struct {
	From  int
	To    int
	Class string
}

// ResultSet is an immutable, position-ordered set of non-overlapping ranges.
type ResultSet struct {
	ranges []Range
}

var emptyResults = &ResultSet{}

// scanRuns runs p over every text run and collects the hits in document
// order. A zero-length match ends the scan of its run.
func scanRuns(runs []textrun.Run, p pattern) *ResultSet {
	var ranges []Range
	for _, run := range runs {
		for _, loc := range p.findAll(run.Text) {
			r := Range{From: run.Start + loc[0], To: run.Start + loc[1]}
			if r.Len() == 0 {
				break
			}
			ranges = append(ranges, r)
		}
	}
	if len(ranges) == 0 {
		return emptyResults
	}
	return &ResultSet{ranges: ranges}
}

// Len returns the number of ranges.
func (s *ResultSet) Len() int {
	return len(s.ranges)
}

// All returns a copy of every range in order.
func (s *ResultSet) All() []Range {
	return slices.Clone(s.ranges)
}

// Between returns the ranges that touch [start, end]: those with
// To >= start and From <= end, in document order.
func (s *ResultSet) Between(start, end int) []Range {
	i := sort.Search(len(s.ranges), func(i int) bool {
		return s.ranges[i].To >= start
	})
	j := i
	for j < len(s.ranges) && s.ranges[j].From <= end {
		j++
	}
	if i == j {
		return nil
	}
	return slices.Clone(s.ranges[i:j])
}

// From returns the ranges that end at or after start.
func (s *ResultSet) From(start int) []Range {
	return s.Between(start, math.MaxInt)
}

// Map repositions every range through m without rescanning. Ranges that
// collapse to nothing or leave [0, size] are dropped. Range starts stick
// right and ends stick left, so text typed at either edge is not absorbed.
func (s *ResultSet) Map(m *tracking.Mapping, size int) *ResultSet {
	if m.IsIdentity() || len(s.ranges) == 0 {
		return s
	}
	ranges := make([]Range, 0, len(s.ranges))
	for _, r := range s.ranges {
		mapped := Range{From: m.Map(r.From, tracking.AssocRight), To: m.Map(r.To, tracking.AssocLeft)}
		if mapped.Len() <= 0 || mapped.From < 0 || mapped.To > size {
			continue
		}
		ranges = append(ranges, mapped)
	}
	if len(ranges) == 0 {
		return emptyResults
	}
	return &ResultSet{ranges: ranges}
}

// Decorations returns one decoration per range with the given class.
func (s *ResultSet) Decorations(class string) []Decoration {
	if len(s.ranges) == 0 {
		return nil
	}
	out := make([]Decoration, len(s.ranges))
	for i, r := range s.ranges {
		out[i] = Decoration{From: r.From, To: r.To, Class: class}
	}
	return out
}
