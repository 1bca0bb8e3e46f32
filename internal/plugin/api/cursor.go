package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quarry/internal/engine/cursor"
)

// CursorModule implements the ks.cursor API module.
type CursorModule struct {
	ctx *Context
}

// NewCursorModule creates a new cursor module.
func NewCursorModule(ctx *Context) *CursorModule {
	return &CursorModule{ctx: ctx}
}

// Name returns the module name.
func (m *CursorModule) Name() string {
	return "cursor"
}

// RequiredCapability returns the capability required for this module.
func (m *CursorModule) RequiredCapability() Capability {
	return CapabilityCursor
}

// Register registers the module into the Lua state.
func (m *CursorModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "set", L.NewFunction(m.set))
	L.SetField(mod, "selection", L.NewFunction(m.selection))
	L.SetField(mod, "set_selection", L.NewFunction(m.setSelection))

	L.SetGlobal("_ks_cursor", mod)
	return nil
}

// get() -> offset
// Returns the selection head.
func (m *CursorModule) get(L *lua.LState) int {
	if m.ctx.Cursor == nil {
		L.Push(lua.LNumber(0))
		return 1
	}

	L.Push(lua.LNumber(m.ctx.Cursor.Selection().Head))
	return 1
}

// set(offset) -> nil
// Collapses the selection to a cursor at offset.
func (m *CursorModule) set(L *lua.LState) int {
	offset := L.CheckInt(1)

	if offset < 0 {
		L.ArgError(1, "offset must be non-negative")
		return 0
	}

	if m.ctx.Cursor == nil {
		L.RaiseError("set: no cursor available")
		return 0
	}

	if err := m.ctx.Cursor.SetSelection(cursor.NewCursorSelection(offset)); err != nil {
		L.RaiseError("set: %v", err)
	}
	return 0
}

// selection() -> {from, to} or nil
// Returns the selected range, or nil if the selection is empty.
func (m *CursorModule) selection(L *lua.LState) int {
	if m.ctx.Cursor == nil {
		L.Push(lua.LNil)
		return 1
	}

	sel := m.ctx.Cursor.Selection()
	if sel.IsEmpty() {
		L.Push(lua.LNil)
		return 1
	}

	L.Push(rangeTable(L, sel.From(), sel.To()))
	return 1
}

// set_selection(anchor, head) -> nil
func (m *CursorModule) setSelection(L *lua.LState) int {
	anchor := L.CheckInt(1)
	head := L.CheckInt(2)

	if anchor < 0 {
		L.ArgError(1, "anchor must be non-negative")
		return 0
	}
	if head < 0 {
		L.ArgError(2, "head must be non-negative")
		return 0
	}

	if m.ctx.Cursor == nil {
		L.RaiseError("set_selection: no cursor available")
		return 0
	}

	if err := m.ctx.Cursor.SetSelection(cursor.NewSelection(anchor, head)); err != nil {
		L.RaiseError("set_selection: %v", err)
	}
	return 0
}

func rangeTable(L *lua.LState, from, to int) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "from", lua.LNumber(from))
	L.SetField(tbl, "to", lua.LNumber(to))
	return tbl
}
