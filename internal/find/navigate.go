package find

import (
	"math"

	"github.com/dshills/quarry/internal/engine"
	"github.com/dshills/quarry/internal/engine/cursor"
)

// SelectFirst returns a command that selects the first result in the document.
func (s *Session) SelectFirst() engine.Command {
	return func(state engine.State, dispatch engine.DispatchFunc) bool {
		ranges := s.results.From(0)
		if len(ranges) == 0 {
			return false
		}
		if dispatch != nil {
			dispatch(selectResult(state.Tr(), ranges[0]))
		}
		return true
	}
}

// SelectNext returns a command that selects the first result after the
// selection. When the selection is itself a match the search starts one
// position past it. With Wrap set, a miss retries from the document start up
// to the selection.
func (s *Session) SelectNext() engine.Command {
	return func(state engine.State, dispatch engine.DispatchFunc) bool {
		sel := state.Selection()
		atMatch := s.selectionMatches(state)

		searchFrom := sel.To()
		if atMatch {
			searchFrom++
		}
		ranges := s.results.Between(searchFrom, math.MaxInt)
		if len(ranges) == 0 {
			if !s.search.Options.Wrap {
				return false
			}
			searchTo := sel.From()
			if atMatch {
				searchTo--
			}
			ranges = s.results.Between(0, searchTo)
			if len(ranges) == 0 {
				return false
			}
		}

		if dispatch != nil {
			dispatch(selectResult(state.Tr(), ranges[0]))
		}
		return true
	}
}

// SelectPrevious returns a command that selects the closest result before
// the selection, mirroring SelectNext. With Wrap set, a miss selects the last
// result after the selection.
func (s *Session) SelectPrevious() engine.Command {
	return func(state engine.State, dispatch engine.DispatchFunc) bool {
		sel := state.Selection()
		atMatch := s.selectionMatches(state)

		searchTo := sel.From()
		if atMatch {
			searchTo--
		}
		ranges := s.results.Between(0, searchTo)
		if len(ranges) == 0 {
			if !s.search.Options.Wrap {
				return false
			}
			searchFrom := sel.To()
			if atMatch {
				searchFrom++
			}
			ranges = s.results.Between(searchFrom, math.MaxInt)
			if len(ranges) == 0 {
				return false
			}
		}

		if dispatch != nil {
			dispatch(selectResult(state.Tr(), lastByFrom(ranges)))
		}
		return true
	}
}

// lastByFrom returns the candidate with the largest From; on ties the later
// one wins.
func lastByFrom(ranges []Range) Range {
	best := ranges[0]
	for _, r := range ranges[1:] {
		if r.From >= best.From {
			best = r
		}
	}
	return best
}

func selectResult(tr *engine.Transaction, r Range) *engine.Transaction {
	return tr.SetSelection(cursor.NewSelection(r.From, r.To)).ScrollIntoView()
}
