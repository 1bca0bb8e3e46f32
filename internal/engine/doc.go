// Package engine provides the editing surface the search core runs against.
//
// The engine holds an immutable [State] (document tree plus selection) and
// replaces it by dispatching [Transaction] values. Every transaction carries
// the position [tracking.Mapping] of its edits, so anything that stores
// document positions can follow an edit without re-reading the document.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - doc: immutable structured document tree with ProseMirror-style positions
//   - textrun: flattening of a document into searchable text runs
//   - tracking: step maps and position mappings
//   - cursor: anchor/head selections
//
// # Transactions
//
//	e := engine.New(engine.WithContent("Hello, World!"))
//
//	tr := e.State().Tr()
//	tr.ReplaceText(7, 12, "Go")
//	tr.SetSelection(cursor.NewSelection(7, 9)).ScrollIntoView()
//	tr.SetMeta("origin", "paste")
//	e.Dispatch(tr)
//
//	e.Text() // "Hello, Go!"
//
// # Commands
//
// A [Command] inspects a state and, when given a dispatch function, applies a
// transaction. Passing a nil dispatch asks whether the command could run
// without changing anything:
//
//	if e.Can(cmd) {
//	    e.Run(cmd)
//	}
//
// # Plugins
//
// Plugins observe every dispatched transaction. Apply is called
// synchronously, in registration order, before Dispatch returns, so plugin
// state is always consistent with the engine's state. Plugins must not call
// back into the engine from Apply.
//
// # Thread Safety
//
// All Engine operations are thread-safe. Dispatch is serialized by a mutex
// and State returns an immutable snapshot.
package engine
