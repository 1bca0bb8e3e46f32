package api

import lua "github.com/yuin/gopher-lua"

// NewScriptState creates a Lua state with only the safe standard libraries
// open and every permitted module of reg injected. The caller closes it.
func NewScriptState(reg *Registry, allowed Allowed) (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	if err := reg.InjectAll(L, allowed); err != nil {
		L.Close()
		return nil, err
	}
	return L, nil
}

// openSafeLibraries opens base, table, string and math. require comes from
// package but only resolves preloaded modules.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenPackage(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}
}
