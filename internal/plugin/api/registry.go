package api

import (
	"fmt"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quarry/internal/engine"
	"github.com/dshills/quarry/internal/engine/cursor"
	"github.com/dshills/quarry/internal/find"
)

// Capability names a permission a script must hold to use a module.
type Capability string

// Capabilities required by the built-in modules.
const (
	CapabilityBuffer Capability = "buffer"
	CapabilityCursor Capability = "cursor"
	CapabilityFind   Capability = "find"
)

// Allowed reports whether a script holds a capability.
type Allowed func(Capability) bool

// AllowAll grants every capability.
func AllowAll(Capability) bool { return true }

// Module represents a Lua API module.
type Module interface {
	// Name returns the module name (e.g., "buf", "cursor", "find").
	Name() string

	// RequiredCapability returns the capability required to use this module.
	// Returns empty string if no capability is required.
	RequiredCapability() Capability

	// Register registers the module functions into the Lua state.
	// The module should register itself under _ks_<name> global.
	Register(L *lua.LState) error
}

// Registry manages API modules and their registration.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates a new API registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds a module to the registry.
func (r *Registry) Register(mod Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[mod.Name()]; exists {
		return fmt.Errorf("module %q already registered", mod.Name())
	}

	r.modules[mod.Name()] = mod
	return nil
}

// Get returns a module by name.
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mod, ok := r.modules[name]
	return mod, ok
}

// List returns all registered module names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InjectAll registers every permitted module into the Lua state and makes
// them available through require("ks"). If allowed is nil, only modules with
// no required capability are injected.
func (r *Registry) InjectAll(L *lua.LState, allowed Allowed) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var injected []string
	for name, mod := range r.modules {
		if reqCap := mod.RequiredCapability(); reqCap != "" {
			if allowed == nil || !allowed(reqCap) {
				continue
			}
		}

		if err := mod.Register(L); err != nil {
			return fmt.Errorf("failed to register module %q: %w", name, err)
		}
		injected = append(injected, name)
	}

	installKSLoader(L, injected)
	return nil
}

// installKSLoader moves the _ks_<name> globals into a ks module table.
// Scripts use: local ks = require("ks")
func installKSLoader(L *lua.LState, names []string) {
	ksModule := L.NewTable()
	for _, name := range names {
		globalName := "_ks_" + name
		val := L.GetGlobal(globalName)
		if val != lua.LNil {
			L.SetField(ksModule, name, val)
			L.SetGlobal(globalName, lua.LNil)
		}
	}

	L.SetField(ksModule, "api_version", lua.LNumber(1))

	L.PreloadModule("ks", func(L *lua.LState) int {
		L.Push(ksModule)
		return 1
	})
}

// DefaultRegistry creates a registry with all standard modules registered.
func DefaultRegistry(ctx *Context) (*Registry, error) {
	r := NewRegistry()

	modules := []Module{
		NewBufferModule(ctx),
		NewCursorModule(ctx),
		NewFindModule(ctx),
	}

	for _, mod := range modules {
		if err := r.Register(mod); err != nil {
			return nil, fmt.Errorf("failed to register module %q: %w", mod.Name(), err)
		}
	}

	return r, nil
}

// Context gives API modules access to one document. An *engine.Engine
// serves as both Buffer and Cursor; a *find.Finder serves as Find.
type Context struct {
	Buffer BufferProvider
	Cursor CursorProvider
	Find   FindProvider
}

// BufferProvider defines the document editing operations.
type BufferProvider interface {
	// Text returns the document text.
	Text() string

	// Len returns the document size in positions.
	Len() int

	// Insert inserts text at the given position.
	Insert(offset int, text string) error

	// Delete deletes the given range.
	Delete(start, end int) error

	// Replace replaces the given range with text.
	Replace(start, end int, text string) error
}

// CursorProvider defines the selection operations.
type CursorProvider interface {
	Selection() cursor.Selection
	SetSelection(sel cursor.Selection) error
}

// FindProvider defines the search operations.
type FindProvider interface {
	Defaults() find.SearchOptions
	Find(term string, opts find.SearchOptions) error
	Active() bool
	MatchCount() int
	Results() []find.Range
	SelectFirst() bool
	SelectNext() bool
	SelectPrevious() bool
	Replace(text string) bool
	ReplaceAll(text string) bool
	Clear()
}

var (
	_ BufferProvider = (*engine.Engine)(nil)
	_ CursorProvider = (*engine.Engine)(nil)
)
