package find

import "github.com/dshills/quarry/internal/engine"

// Finder runs a Session's commands against one engine.
type Finder struct {
	engine  *engine.Engine
	session *Session
}

// NewFinder creates a session and registers it with e.
func NewFinder(e *engine.Engine, opts ...Option) *Finder {
	s := NewSession(opts...)
	e.AddPlugin(s)
	return &Finder{engine: e, session: s}
}

// Session returns the underlying session.
func (f *Finder) Session() *Session {
	return f.session
}

// Engine returns the engine the finder edits.
func (f *Finder) Engine() *engine.Engine {
	return f.engine
}

// Defaults returns the options FindDefault uses.
func (f *Finder) Defaults() SearchOptions {
	return f.session.Defaults()
}

// Find makes term the active search using opts.
func (f *Finder) Find(term string, opts SearchOptions) error {
	cmd, err := f.session.Find(term, opts)
	if err != nil {
		return err
	}
	f.engine.Run(cmd)
	return nil
}

// FindDefault makes term the active search using the session defaults.
func (f *Finder) FindDefault(term string) error {
	return f.Find(term, f.session.Defaults())
}

// Active reports whether a search is in effect.
func (f *Finder) Active() bool {
	return f.session.State().Active()
}

// MatchCount returns the number of current results.
func (f *Finder) MatchCount() int {
	return f.session.MatchCount()
}

// Results returns the current results in document order.
func (f *Finder) Results() []Range {
	return f.session.Results()
}

// Decorations returns the highlight decorations for the current results.
func (f *Finder) Decorations() []Decoration {
	return f.session.Decorations()
}

// SelectFirst selects the first result.
func (f *Finder) SelectFirst() bool {
	return f.engine.Run(f.session.SelectFirst())
}

// SelectNext selects the next result.
func (f *Finder) SelectNext() bool {
	return f.engine.Run(f.session.SelectNext())
}

// SelectPrevious selects the previous result.
func (f *Finder) SelectPrevious() bool {
	return f.engine.Run(f.session.SelectPrevious())
}

// Replace replaces the selected match with text.
func (f *Finder) Replace(text string) bool {
	return f.engine.Run(f.session.Replace(text))
}

// ReplaceAll replaces every result with text.
func (f *Finder) ReplaceAll(text string) bool {
	return f.engine.Run(f.session.ReplaceAll(text))
}

// Clear ends the active search.
func (f *Finder) Clear() {
	f.engine.Run(f.session.Clear())
}
