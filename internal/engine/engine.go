package engine

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dshills/quarry/internal/engine/cursor"
	"github.com/dshills/quarry/internal/engine/doc"
)

// DispatchFunc applies a transaction.
type DispatchFunc func(tr *Transaction)

// Command is an editing operation over a state. With a nil dispatch it only
// reports whether it would succeed.
type Command func(state State, dispatch DispatchFunc) bool

// Plugin observes dispatched transactions.
type Plugin interface {
	Apply(tr *Transaction, oldState, newState State)
}

// PluginFunc adapts a function to the Plugin interface.
type PluginFunc func(tr *Transaction, oldState, newState State)

// Apply calls f.
func (f PluginFunc) Apply(tr *Transaction, oldState, newState State) {
	f(tr, oldState, newState)
}

// Engine is the editing surface: it owns the current state and applies
// transactions to it.
//
// All operations are thread-safe and can be called from multiple goroutines.
type Engine struct {
	mu sync.RWMutex

	state    State
	plugins  []Plugin
	onScroll func(cursor.Selection)
	logger   *log.Logger

	// Initialization
	initDoc *doc.Node
	initSel cursor.Selection
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:  log.New(io.Discard),
		initDoc: doc.Doc(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = NewState(e.initDoc, e.initSel)
	return e
}

// AddPlugin registers a plugin after the existing ones.
func (e *Engine) AddPlugin(p Plugin) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.plugins = append(e.plugins, p)
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Doc returns the current document.
func (e *Engine) Doc() *doc.Node {
	return e.State().Doc()
}

// Selection returns the current selection.
func (e *Engine) Selection() cursor.Selection {
	return e.State().Selection()
}

// Text returns the text content of the current document.
func (e *Engine) Text() string {
	return e.Doc().TextContent()
}

// Len returns the content size of the document.
func (e *Engine) Len() int {
	return e.Doc().ContentSize()
}

// Apply applies tr and notifies plugins. It fails with ErrStaleTransaction if
// tr was not started from the current state's document.
func (e *Engine) Apply(tr *Transaction) error {
	scroll, sel, err := e.apply(tr)
	if err != nil {
		return err
	}
	if scroll && e.onScroll != nil {
		e.onScroll(sel)
	}
	return nil
}

func (e *Engine) apply(tr *Transaction) (bool, cursor.Selection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tr.before.doc != e.state.doc {
		return false, cursor.Selection{}, ErrStaleTransaction
	}

	oldState := e.state
	e.state = tr.state()
	for _, p := range e.plugins {
		p.Apply(tr, oldState, e.state)
	}
	return tr.scroll, e.state.selection, nil
}

// Dispatch applies tr. A stale transaction is dropped and logged.
func (e *Engine) Dispatch(tr *Transaction) {
	if err := e.Apply(tr); err != nil {
		e.logger.Warn("transaction dropped", "err", err)
	}
}

// Run executes cmd against the current state and reports its result.
func (e *Engine) Run(cmd Command) bool {
	return cmd(e.State(), e.Dispatch)
}

// Can reports whether cmd would succeed, without dispatching anything.
func (e *Engine) Can(cmd Command) bool {
	return cmd(e.State(), nil)
}

// Insert inserts text at offset as a standalone edit.
func (e *Engine) Insert(offset int, text string) error {
	return e.Replace(offset, offset, text)
}

// Delete removes [start, end) as a standalone edit.
func (e *Engine) Delete(start, end int) error {
	return e.Replace(start, end, "")
}

// Replace replaces [start, end) with text as a standalone edit.
func (e *Engine) Replace(start, end int, text string) error {
	tr := e.State().Tr()
	if err := tr.ReplaceText(start, end, text); err != nil {
		return err
	}
	return e.Apply(tr)
}

// SetSelection changes only the selection.
func (e *Engine) SetSelection(sel cursor.Selection) error {
	tr := e.State().Tr()
	tr.SetSelection(sel)
	return e.Apply(tr)
}
