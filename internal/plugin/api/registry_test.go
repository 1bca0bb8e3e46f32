package api

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quarry/internal/engine"
	"github.com/dshills/quarry/internal/find"
)

func newTestContext(content string) (*Context, *engine.Engine) {
	e := engine.New(engine.WithContent(content))
	return &Context{Buffer: e, Cursor: e, Find: find.NewFinder(e)}, e
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(NewFindModule(&Context{})); err != nil {
		t.Fatalf("Register error = %v", err)
	}
	if err := r.Register(NewFindModule(&Context{})); err == nil {
		t.Error("duplicate Register should fail")
	}
	if _, ok := r.Get("find"); !ok {
		t.Error("Get(find) should succeed")
	}
	if _, ok := r.Get("buf"); ok {
		t.Error("Get(buf) should fail")
	}
}

func TestDefaultRegistry(t *testing.T) {
	ctx, _ := newTestContext("")
	r, err := DefaultRegistry(ctx)
	if err != nil {
		t.Fatalf("DefaultRegistry error = %v", err)
	}

	want := []string{"buf", "cursor", "find"}
	if diff := cmp.Diff(want, r.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestInjectAllCapabilities(t *testing.T) {
	ctx, _ := newTestContext("cat")
	r, err := DefaultRegistry(ctx)
	if err != nil {
		t.Fatal(err)
	}

	L := lua.NewState()
	defer L.Close()

	onlyFind := func(c Capability) bool { return c == CapabilityFind }
	if err := r.InjectAll(L, onlyFind); err != nil {
		t.Fatalf("InjectAll error = %v", err)
	}

	err = L.DoString(`
		local ks = require("ks")
		has_find = ks.find ~= nil
		has_buf = ks.buf ~= nil
		version = ks.api_version
		leaked = _ks_find ~= nil
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	if L.GetGlobal("has_find") != lua.LTrue {
		t.Error("ks.find should be injected")
	}
	if L.GetGlobal("has_buf") != lua.LFalse {
		t.Error("ks.buf should not be injected without the buffer capability")
	}
	if L.GetGlobal("leaked") != lua.LFalse {
		t.Error("_ks_find global should be removed")
	}
	if L.GetGlobal("version").(lua.LNumber) != 1 {
		t.Errorf("api_version = %v", L.GetGlobal("version"))
	}
}

func TestInjectAllNilAllowed(t *testing.T) {
	ctx, _ := newTestContext("")
	r, _ := DefaultRegistry(ctx)

	L := lua.NewState()
	defer L.Close()
	if err := r.InjectAll(L, nil); err != nil {
		t.Fatal(err)
	}
	if err := L.DoString(`assert(require("ks").find == nil)`); err != nil {
		t.Errorf("no module should be injected: %v", err)
	}
}
