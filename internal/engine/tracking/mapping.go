package tracking

import (
	"fmt"
	"slices"
)

// Association biases.
const (
	AssocLeft  = -1
	AssocRight = 1
)

// StepMap describes a single replaced span: OldSize positions starting at
// Start were replaced by NewSize positions.
type StepMap struct {
	Start   int
	OldSize int
	NewSize int
}

// NewStepMap creates a step map.
func NewStepMap(start, oldSize, newSize int) StepMap {
	return StepMap{Start: start, OldSize: oldSize, NewSize: newSize}
}

// String returns a human-readable representation of the step map.
func (m StepMap) String() string {
	return fmt.Sprintf("Step(%d, -%d, +%d)", m.Start, m.OldSize, m.NewSize)
}

// Delta returns the change in document size caused by the step.
func (m StepMap) Delta() int {
	return m.NewSize - m.OldSize
}

// IsIdentity returns true if the step leaves every position in place.
func (m StepMap) IsIdentity() bool {
	return m.OldSize == 0 && m.NewSize == 0
}

// MapResult is the outcome of mapping a single position.
type MapResult struct {
	Pos     int
	Deleted bool // the position was strictly inside a replaced span
}

// MapResult maps pos through the step with the given association.
//
// Transformation rules:
//   - Before the span: unchanged
//   - After the span: shifted by Delta
//   - At the span start: stays at Start (unless inserting with AssocRight)
//   - At the span end: moves to the end of the replacement
//   - Inside the span: deleted, moves to either edge of the replacement
func (m StepMap) MapResult(pos, assoc int) MapResult {
	end := m.Start + m.OldSize
	if pos < m.Start {
		return MapResult{Pos: pos}
	}
	if pos > end {
		return MapResult{Pos: pos + m.Delta()}
	}

	side := assoc
	switch {
	case m.OldSize == 0:
	case pos == m.Start:
		side = AssocLeft
	case pos == end:
		side = AssocRight
	}

	result := MapResult{Pos: m.Start, Deleted: pos != m.Start && pos != end}
	if side > 0 {
		result.Pos = m.Start + m.NewSize
	}
	return result
}

// Map maps pos through the step with the given association.
func (m StepMap) Map(pos, assoc int) int {
	return m.MapResult(pos, assoc).Pos
}

// Mapping is an ordered list of step maps.
// The zero value is an empty mapping that leaves positions unchanged.
type Mapping struct {
	maps []StepMap
}

// NewMapping creates a mapping from step maps given in application order.
func NewMapping(maps ...StepMap) *Mapping {
	return &Mapping{maps: slices.Clone(maps)}
}

// Append adds a step map applied after all existing steps.
func (m *Mapping) Append(step StepMap) {
	m.maps = append(m.maps, step)
}

// Len returns the number of steps.
func (m *Mapping) Len() int {
	return len(m.maps)
}

// IsIdentity reports whether no step moves any position.
func (m *Mapping) IsIdentity() bool {
	for _, step := range m.maps {
		if !step.IsIdentity() {
			return false
		}
	}
	return true
}

// MapResult maps pos through every step; Deleted is set if any step deleted it.
func (m *Mapping) MapResult(pos, assoc int) MapResult {
	var deleted bool
	for _, step := range m.maps {
		r := step.MapResult(pos, assoc)
		pos = r.Pos
		deleted = deleted || r.Deleted
	}
	return MapResult{Pos: pos, Deleted: deleted}
}

// Map maps pos through every step.
func (m *Mapping) Map(pos, assoc int) int {
	return m.MapResult(pos, assoc).Pos
}

// TotalDelta returns the combined change in document size.
func (m *Mapping) TotalDelta() int {
	delta := 0
	for _, step := range m.maps {
		delta += step.Delta()
	}
	return delta
}
