// Package api exposes a document and its search session to Lua scripts.
//
// Scripts reach the editor through the "ks" module, which aggregates:
//
//   - ks.buf: document text and edits (text, len, insert, delete, replace)
//   - ks.cursor: the selection (get, set, selection, set_selection)
//   - ks.find: search (find, count, results, first, next, prev, replace,
//     replace_all, clear, active)
//
// Each module declares a [Capability]. [Registry.InjectAll] only registers
// modules whose capability the script was granted.
//
// # Usage
//
//	e := engine.New(engine.WithContent("cat bat cat"))
//	ctx := &api.Context{Buffer: e, Cursor: e, Find: find.NewFinder(e)}
//
//	reg, _ := api.DefaultRegistry(ctx)
//	L, err := api.NewScriptState(reg, api.AllowAll)
//	if err != nil {
//	    return err
//	}
//	defer L.Close()
//
// From Lua:
//
//	local ks = require("ks")
//
//	local ok, err = ks.find.find("c.t", {regex = true})
//	if not ok then print(err) end
//
//	ks.find.next()
//	ks.find.replace_all("dog")
//	print(ks.buf.text(), ks.find.count())
//
// find returns nil and an error message for an invalid pattern. Navigation
// and replace functions return false when there is nothing to do.
package api
