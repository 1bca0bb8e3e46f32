package find

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/quarry/internal/engine"
	"github.com/dshills/quarry/internal/engine/doc"
	"github.com/dshills/quarry/internal/engine/textrun"
)

// Session holds the search state and results for one document. Register it
// with the document's engine so it sees every transaction:
//
//	s := find.NewSession()
//	e := engine.New(engine.WithDoc(d), engine.WithPlugins(s))
//
// Session methods return engine commands; run them with e.Run or dry-run them
// with e.Can. A Session is driven by its engine's dispatch and is not safe
// for concurrent use on its own.
type Session struct {
	id     string
	logger *log.Logger

	patternEngine PatternEngine
	class         string
	defaults      SearchOptions

	search  SearchState
	pattern pattern // nil while inactive
	results *ResultSet
}

// NewSession creates a session with no active search.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:            uuid.NewString(),
		logger:        log.New(io.Discard),
		patternEngine: EngineRE2,
		class:         DefaultHighlightClass,
		results:       emptyResults,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current search state.
func (s *Session) State() SearchState {
	return s.search
}

// Defaults returns the options used when a search does not specify any.
func (s *Session) Defaults() SearchOptions {
	return s.defaults
}

// PatternEngine returns the regular expression engine in use.
func (s *Session) PatternEngine() PatternEngine {
	return s.patternEngine
}

// MatchCount returns the number of current results.
func (s *Session) MatchCount() int {
	return s.results.Len()
}

// Results returns a copy of the current results in document order.
func (s *Session) Results() []Range {
	return s.results.All()
}

// Decorations returns the highlight decorations for the current results.
func (s *Session) Decorations() []Decoration {
	return s.results.Decorations(s.class)
}

// Apply brings the results up to date with a dispatched transaction.
// Search-originated edits rescan the new document; other document edits
// only reposition the existing results, so text typed after a search is not
// matched until the next Find. Selection-only transactions change nothing.
func (s *Session) Apply(tr *engine.Transaction, _, newState engine.State) {
	switch {
	case OriginOf(tr) == OriginSearch:
		s.results = s.scan(newState.Doc())
		s.logger.Debug("results recomputed", "term", s.search.Term, "count", s.results.Len())
	case tr.DocChanged():
		before := s.results.Len()
		m := tr.Mapping()
		s.results = s.results.Map(m, newState.Doc().ContentSize())
		s.logger.Debug("results repositioned", "before", before, "after", s.results.Len(), "delta", m.TotalDelta())
	}
}

func (s *Session) scan(d *doc.Node) *ResultSet {
	if s.pattern == nil {
		return emptyResults
	}
	return scanRuns(textrun.Merged(d), s.pattern)
}

// Find returns a command that makes term the active search and rescans the
// document. Unless opts.Regex is set, term is matched literally. An invalid
// pattern is reported as a *PatternError and leaves the session untouched.
func (s *Session) Find(term string, opts SearchOptions) (engine.Command, error) {
	stored := storedTerm(term, opts.Regex)
	if stored != "" {
		p, err := compilePattern(s.patternEngine, stored, opts.CaseSensitive)
		if err != nil {
			s.logger.Warn("invalid search pattern", "term", term, "err", err)
			return nil, err
		}
		p.close()
	}

	return func(state engine.State, dispatch engine.DispatchFunc) bool {
		if dispatch == nil {
			return true
		}
		var p pattern
		if stored != "" {
			var err error
			if p, err = compilePattern(s.patternEngine, stored, opts.CaseSensitive); err != nil {
				return false
			}
		}
		s.setSearch(SearchState{Term: stored, Options: opts}, p)
		dispatch(markSearch(state.Tr()))
		return true
	}, nil
}

// Clear returns a command that ends the active search and drops all results.
func (s *Session) Clear() engine.Command {
	return func(state engine.State, dispatch engine.DispatchFunc) bool {
		if dispatch != nil {
			s.setSearch(SearchState{}, nil)
			dispatch(markSearch(state.Tr()))
		}
		return true
	}
}

func (s *Session) setSearch(search SearchState, p pattern) {
	if s.pattern != nil {
		s.pattern.close()
	}
	s.search = search
	s.pattern = p
}

// selectionMatches reports whether the selected text, taken as a whole, is a
// match for the active pattern.
func (s *Session) selectionMatches(state engine.State) bool {
	if s.pattern == nil || state.Selection().IsEmpty() {
		return false
	}
	return s.pattern.matchesAll(state.SelectedText())
}
