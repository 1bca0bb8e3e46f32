package find

import (
	"github.com/dshills/quarry/internal/engine"
	"github.com/dshills/quarry/internal/engine/cursor"
	"github.com/dshills/quarry/internal/engine/tracking"
)

// Replace returns a command that replaces the selection with text. It only
// succeeds when the selection is exactly a match for the active search;
// afterwards the inserted text is selected and the document is rescanned.
func (s *Session) Replace(text string) engine.Command {
	return func(state engine.State, dispatch engine.DispatchFunc) bool {
		if !s.search.Active() || !s.selectionMatches(state) {
			return false
		}

		sel := state.Selection()
		start := sel.From()
		tr := state.Tr()
		if err := tr.ReplaceText(start, sel.To(), text); err != nil {
			s.logger.Warn("replace failed", "range", sel, "err", err)
			return false
		}
		tr.SetSelection(cursor.NewSelection(start, start+len(text))).ScrollIntoView()

		if dispatch != nil {
			dispatch(markSearch(tr))
		}
		return true
	}
}

// ReplaceAll returns a command that replaces every current result with text
// in a single transaction, then leaves a cursor where the old selection
// started and rescans the document. It fails when no search is active.
func (s *Session) ReplaceAll(text string) engine.Command {
	return func(state engine.State, dispatch engine.DispatchFunc) bool {
		if !s.search.Active() {
			return false
		}

		tr := state.Tr()
		oldSel := state.Selection().From()
		for _, r := range s.results.All() {
			m := tr.Mapping()
			from := m.Map(r.From, tracking.AssocRight)
			to := m.Map(r.To, tracking.AssocRight)
			if err := tr.ReplaceText(from, to, text); err != nil {
				s.logger.Warn("replace all aborted", "range", r, "err", err)
				return false
			}
		}
		newSel := tr.Mapping().Map(oldSel, tracking.AssocRight)
		tr.SetSelection(cursor.NewCursorSelection(newSel)).ScrollIntoView()

		if dispatch != nil {
			dispatch(markSearch(tr))
		}
		return true
	}
}
