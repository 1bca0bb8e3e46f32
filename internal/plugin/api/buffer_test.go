package api

import (
	"errors"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

// mockBufferProvider implements BufferProvider for testing.
type mockBufferProvider struct {
	text string
}

func (m *mockBufferProvider) Text() string { return m.text }
func (m *mockBufferProvider) Len() int     { return len(m.text) }
func (m *mockBufferProvider) Insert(offset int, text string) error {
	return m.Replace(offset, offset, text)
}
func (m *mockBufferProvider) Delete(start, end int) error {
	return m.Replace(start, end, "")
}
func (m *mockBufferProvider) Replace(start, end int, text string) error {
	if start < 0 || end > len(m.text) || start > end {
		return errors.New("invalid range")
	}
	m.text = m.text[:start] + text + m.text[end:]
	return nil
}

func setupBufferTest(t *testing.T, buf BufferProvider) (*lua.LState, *BufferModule) {
	t.Helper()

	ctx := &Context{Buffer: buf}
	mod := NewBufferModule(ctx)

	L := lua.NewState()
	t.Cleanup(func() { L.Close() })

	if err := mod.Register(L); err != nil {
		t.Fatalf("Register error = %v", err)
	}

	return L, mod
}

func TestBufferModuleName(t *testing.T) {
	mod := NewBufferModule(&Context{})
	if mod.Name() != "buf" {
		t.Errorf("Name() = %q, want %q", mod.Name(), "buf")
	}
	if mod.RequiredCapability() != CapabilityBuffer {
		t.Errorf("RequiredCapability() = %q, want %q", mod.RequiredCapability(), CapabilityBuffer)
	}
}

func TestBufferTextAndLen(t *testing.T) {
	L, _ := setupBufferTest(t, &mockBufferProvider{text: "hello world"})

	err := L.DoString(`
		text = _ks_buf.text()
		size = _ks_buf.len()
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	if got := L.GetGlobal("text").String(); got != "hello world" {
		t.Errorf("text() = %q, want %q", got, "hello world")
	}
	if got := L.GetGlobal("size").(lua.LNumber); got != 11 {
		t.Errorf("len() = %v, want 11", got)
	}
}

func TestBufferEdits(t *testing.T) {
	buf := &mockBufferProvider{text: "hello world"}
	L, _ := setupBufferTest(t, buf)

	err := L.DoString(`
		_ks_buf.insert(5, ",")
		_ks_buf.replace(7, 12, "there")
		_ks_buf.delete(0, 1)
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	if buf.text != "ello, there" {
		t.Errorf("text = %q, want %q", buf.text, "ello, there")
	}
}

func TestBufferEditErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{name: "negative insert", script: `_ks_buf.insert(-1, "x")`},
		{name: "reversed delete", script: `_ks_buf.delete(3, 1)`},
		{name: "out of range", script: `_ks_buf.replace(0, 99, "x")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L, _ := setupBufferTest(t, &mockBufferProvider{text: "abc"})
			if err := L.DoString(tt.script); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBufferNoProvider(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	if err := NewBufferModule(&Context{}).Register(L); err != nil {
		t.Fatal(err)
	}

	if err := L.DoString(`text = _ks_buf.text()`); err != nil {
		t.Fatalf("DoString error = %v", err)
	}
	if L.GetGlobal("text").String() != "" {
		t.Error("text() without buffer should be empty")
	}
	if err := L.DoString(`_ks_buf.insert(0, "x")`); err == nil {
		t.Error("insert without buffer should fail")
	}
}
