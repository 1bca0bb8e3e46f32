package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quarry/internal/find"
)

// FindModule implements the ks.find API module.
type FindModule struct {
	ctx *Context
}

// NewFindModule creates a new find module.
func NewFindModule(ctx *Context) *FindModule {
	return &FindModule{ctx: ctx}
}

// Name returns the module name.
func (m *FindModule) Name() string {
	return "find"
}

// RequiredCapability returns the capability required for this module.
func (m *FindModule) RequiredCapability() Capability {
	return CapabilityFind
}

// Register registers the module into the Lua state.
func (m *FindModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "find", L.NewFunction(m.find))
	L.SetField(mod, "active", L.NewFunction(m.active))
	L.SetField(mod, "count", L.NewFunction(m.count))
	L.SetField(mod, "results", L.NewFunction(m.results))
	L.SetField(mod, "first", L.NewFunction(m.nav(func(f FindProvider) bool { return f.SelectFirst() })))
	L.SetField(mod, "next", L.NewFunction(m.nav(func(f FindProvider) bool { return f.SelectNext() })))
	L.SetField(mod, "prev", L.NewFunction(m.nav(func(f FindProvider) bool { return f.SelectPrevious() })))
	L.SetField(mod, "replace", L.NewFunction(m.replace))
	L.SetField(mod, "replace_all", L.NewFunction(m.replaceAll))
	L.SetField(mod, "clear", L.NewFunction(m.clear))

	L.SetGlobal("_ks_find", mod)
	return nil
}

// find(term [, {regex=, case_sensitive=, wrap=}]) -> true or nil, err
// Options not given in the table keep their configured defaults. An invalid
// pattern is returned as an error message, not raised.
func (m *FindModule) find(L *lua.LState) int {
	term := L.CheckString(1)
	optsTbl := L.OptTable(2, nil)

	if m.ctx.Find == nil {
		L.RaiseError("find: no finder available")
		return 0
	}

	opts := m.ctx.Find.Defaults()
	if optsTbl != nil {
		opts.Regex = optBool(optsTbl, "regex", opts.Regex)
		opts.CaseSensitive = optBool(optsTbl, "case_sensitive", opts.CaseSensitive)
		opts.Wrap = optBool(optsTbl, "wrap", opts.Wrap)
	}

	if err := m.ctx.Find.Find(term, opts); err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(lua.LTrue)
	return 1
}

func optBool(tbl *lua.LTable, key string, def bool) bool {
	switch v := tbl.RawGetString(key).(type) {
	case lua.LBool:
		return bool(v)
	default:
		return def
	}
}

// active() -> bool
func (m *FindModule) active(L *lua.LState) int {
	L.Push(lua.LBool(m.ctx.Find != nil && m.ctx.Find.Active()))
	return 1
}

// count() -> number
func (m *FindModule) count(L *lua.LState) int {
	if m.ctx.Find == nil {
		L.Push(lua.LNumber(0))
		return 1
	}

	L.Push(lua.LNumber(m.ctx.Find.MatchCount()))
	return 1
}

// results() -> {{from, to}, ...}
func (m *FindModule) results(L *lua.LState) int {
	tbl := L.NewTable()
	if m.ctx.Find != nil {
		for i, r := range m.ctx.Find.Results() {
			tbl.RawSetInt(i+1, rangeTable(L, r.From, r.To))
		}
	}

	L.Push(tbl)
	return 1
}

// first() / next() / prev() -> bool
func (m *FindModule) nav(fn func(FindProvider) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LBool(m.ctx.Find != nil && fn(m.ctx.Find)))
		return 1
	}
}

// replace(text) -> bool
func (m *FindModule) replace(L *lua.LState) int {
	text := L.CheckString(1)
	L.Push(lua.LBool(m.ctx.Find != nil && m.ctx.Find.Replace(text)))
	return 1
}

// replace_all(text) -> bool
func (m *FindModule) replaceAll(L *lua.LState) int {
	text := L.CheckString(1)
	L.Push(lua.LBool(m.ctx.Find != nil && m.ctx.Find.ReplaceAll(text)))
	return 1
}

// clear() -> nil
func (m *FindModule) clear(L *lua.LState) int {
	if m.ctx.Find != nil {
		m.ctx.Find.Clear()
	}
	return 0
}

var _ FindProvider = (*find.Finder)(nil)
