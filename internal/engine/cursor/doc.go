// Package cursor provides the selection value type used by the engine.
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The selection can extend forward (head > anchor) or
// backward (head < anchor), preserving the user's selection direction.
//
// Basic usage:
//
//	sel := cursor.NewCursorSelection(10) // Cursor at offset 10
//	sel = sel.Extend(20)                 // Select from 10 to 20
//
//	// Follow an edit
//	m := tracking.NewMapping(tracking.NewStepMap(0, 0, 5))
//	sel = sel.Map(m) // Selection(15→25)
//
// Thread Safety:
//
// Selection is an immutable value type and safe for concurrent use.
package cursor
