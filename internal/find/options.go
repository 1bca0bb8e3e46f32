package find

import (
	"github.com/charmbracelet/log"

	"github.com/dshills/quarry/internal/config"
	"github.com/dshills/quarry/internal/engine"
)

// SearchOptions modify how a term is interpreted and navigated.
type SearchOptions struct {
	// Regex treats the term as a regular expression instead of literal text.
	Regex bool
	// CaseSensitive matches case exactly; searches ignore case by default.
	CaseSensitive bool
	// Wrap lets navigation cycle past the start or end of the document.
	Wrap bool
}

// SearchState is the active search. Term is the pattern source: literal
// terms are stored with every metacharacter escaped.
type SearchState struct {
	Term    string
	Options SearchOptions
}

// Active reports whether a search is in effect.
func (s SearchState) Active() bool {
	return len(s.Term) > 0
}

// EditOrigin tells the session how to bring its results up to date after a
// transaction.
type EditOrigin uint8

const (
	// OriginExternal edits reposition existing results through the edit mapping.
	OriginExternal EditOrigin = iota
	// OriginSearch edits (find, clear, replace, replace all) rescan the document.
	OriginSearch
)

// String returns the origin name.
func (o EditOrigin) String() string {
	switch o {
	case OriginSearch:
		return "search"
	default:
		return "external"
	}
}

// MetaOrigin is the transaction metadata key holding an EditOrigin.
const MetaOrigin = "find.origin"

// OriginOf returns the origin recorded on tr; untagged transactions are external.
func OriginOf(tr *engine.Transaction) EditOrigin {
	v, ok := tr.Meta(MetaOrigin)
	if !ok {
		return OriginExternal
	}
	o, ok := v.(EditOrigin)
	if !ok {
		return OriginExternal
	}
	return o
}

func markSearch(tr *engine.Transaction) *engine.Transaction {
	return tr.SetMeta(MetaOrigin, OriginSearch)
}

// Option configures a Session during creation.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPatternEngine selects the regular expression engine.
func WithPatternEngine(kind PatternEngine) Option {
	return func(s *Session) {
		if kind.Valid() {
			s.patternEngine = kind
		}
	}
}

// WithHighlightClass sets the class attached to result decorations.
func WithHighlightClass(class string) Option {
	return func(s *Session) {
		if class != "" {
			s.class = class
		}
	}
}

// WithDefaults sets the options used by searches that do not specify any.
func WithDefaults(opts SearchOptions) Option {
	return func(s *Session) {
		s.defaults = opts
	}
}

// WithConfig applies the [find] configuration section.
func WithConfig(cfg config.Find) Option {
	return func(s *Session) {
		WithPatternEngine(PatternEngine(cfg.Engine))(s)
		WithHighlightClass(cfg.HighlightClass)(s)
		WithDefaults(SearchOptions{
			Regex:         cfg.Regex,
			CaseSensitive: cfg.CaseSensitive,
			Wrap:          cfg.Wrap,
		})(s)
	}
}
