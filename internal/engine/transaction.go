package engine

import (
	"github.com/dshills/quarry/internal/engine/cursor"
	"github.com/dshills/quarry/internal/engine/doc"
	"github.com/dshills/quarry/internal/engine/tracking"
)

// State is an immutable snapshot of the document and its selection.
type State struct {
	doc       *doc.Node
	selection cursor.Selection
}

// NewState creates a state; the selection is clamped to the document.
func NewState(d *doc.Node, sel cursor.Selection) State {
	if d == nil {
		d = doc.Doc()
	}
	return State{doc: d, selection: sel.Clamp(d.ContentSize())}
}

// Doc returns the document.
func (s State) Doc() *doc.Node {
	return s.doc
}

// Selection returns the selection.
func (s State) Selection() cursor.Selection {
	return s.selection
}

// SelectedText returns the text covered by the selection.
func (s State) SelectedText() string {
	return s.doc.TextBetween(s.selection.From(), s.selection.To())
}

// Tr starts a transaction from this state.
func (s State) Tr() *Transaction {
	return &Transaction{before: s, doc: s.doc}
}

// Transaction accumulates edits, a selection change and metadata that are
// applied to an engine as one unit by Dispatch.
type Transaction struct {
	before       State
	doc          *doc.Node
	mapping      tracking.Mapping
	selection    cursor.Selection
	selectionSet bool
	scroll       bool
	meta         map[string]any
}

// Before returns the state the transaction started from.
func (tr *Transaction) Before() State {
	return tr.before
}

// Doc returns the document with all edits so far applied.
func (tr *Transaction) Doc() *doc.Node {
	return tr.doc
}

// Mapping returns the mapping from the starting document to the current one.
func (tr *Transaction) Mapping() *tracking.Mapping {
	return &tr.mapping
}

// DocChanged returns true if any edit step was added.
func (tr *Transaction) DocChanged() bool {
	return tr.mapping.Len() > 0
}

// Selection returns the explicitly set selection, or the starting selection
// mapped through the edits so far.
func (tr *Transaction) Selection() cursor.Selection {
	if tr.selectionSet {
		return tr.selection
	}
	return tr.before.selection.Map(&tr.mapping)
}

// ReplaceText replaces [from, to) in the current document with text.
func (tr *Transaction) ReplaceText(from, to int, text string) error {
	next, err := tr.doc.ReplaceText(from, to, text)
	if err != nil {
		return err
	}
	tr.step(next, tracking.NewStepMap(from, to-from, len(text)))
	return nil
}

// InsertText replaces the current selection with text and leaves a cursor
// after it.
func (tr *Transaction) InsertText(text string) error {
	sel := tr.Selection()
	if err := tr.ReplaceText(sel.From(), sel.To(), text); err != nil {
		return err
	}
	tr.SetSelection(cursor.NewCursorSelection(sel.From() + len(text)))
	return nil
}

// Delete removes [from, to) inside a single textblock.
func (tr *Transaction) Delete(from, to int) error {
	return tr.ReplaceText(from, to, "")
}

// ReplaceBlocks replaces the blocks between two sibling boundaries.
func (tr *Transaction) ReplaceBlocks(from, to int, blocks ...*doc.Node) error {
	next, err := tr.doc.ReplaceBlocks(from, to, blocks...)
	if err != nil {
		return err
	}
	size := 0
	for _, b := range blocks {
		size += b.NodeSize()
	}
	tr.step(next, tracking.NewStepMap(from, to-from, size))
	return nil
}

func (tr *Transaction) step(next *doc.Node, m tracking.StepMap) {
	if tr.selectionSet {
		tr.selection = tr.selection.Map(tracking.NewMapping(m))
	}
	tr.doc = next
	tr.mapping.Append(m)
}

// SetSelection sets the selection the transaction will leave behind.
// Later edit steps map it forward.
func (tr *Transaction) SetSelection(sel cursor.Selection) *Transaction {
	tr.selection = sel.Clamp(tr.doc.ContentSize())
	tr.selectionSet = true
	return tr
}

// SelectionSet returns true if SetSelection was called.
func (tr *Transaction) SelectionSet() bool {
	return tr.selectionSet
}

// ScrollIntoView requests that the host scroll the resulting selection into view.
func (tr *Transaction) ScrollIntoView() *Transaction {
	tr.scroll = true
	return tr
}

// ScrolledIntoView returns true if ScrollIntoView was requested.
func (tr *Transaction) ScrolledIntoView() bool {
	return tr.scroll
}

// SetMeta attaches a value to the transaction under key.
func (tr *Transaction) SetMeta(key string, value any) *Transaction {
	if tr.meta == nil {
		tr.meta = make(map[string]any)
	}
	tr.meta[key] = value
	return tr
}

// Meta returns the value stored under key.
func (tr *Transaction) Meta(key string) (any, bool) {
	v, ok := tr.meta[key]
	return v, ok
}

// state returns the state the transaction produces.
func (tr *Transaction) state() State {
	return NewState(tr.doc, tr.Selection())
}
