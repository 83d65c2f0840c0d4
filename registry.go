package hxsel

import (
	"fmt"
	"sync"
)

// Registry holds named selector expressions for reuse across templates.
//
// Applications that reference the same targets from many components can
// define each selector once, register it under a semantic name, and look it
// up where needed. Registration panics on name collisions so duplicates are
// caught at startup, not during requests.
type Registry struct {
	mu    sync.RWMutex
	exprs map[string]string
}

// NewRegistry creates an empty selector registry.
func NewRegistry() *Registry {
	return &Registry{
		exprs: make(map[string]string),
	}
}

// Add registers a selector expression under the given name.
//
// The expression is rendered once at registration time; a selector with a
// latched validation error or a duplicate name panics. Call Add from
// component setup code:
//
//	reg.Add("toast-area", hxsel.ID("toasts"))
//	reg.Add("row", hxsel.Closest(hxsel.Element("tr")))
func (reg *Registry) Add(name string, e Expr) {
	if s, ok := e.(*Selector); ok {
		if err := s.Err(); err != nil {
			panic(fmt.Sprintf("hxsel: invalid selector for %q: %v", name, err))
		}
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.exprs[name]; exists {
		panic(fmt.Sprintf("hxsel: name collision for %q", name))
	}
	reg.exprs[name] = e.String()
}

// Get returns the expression registered under name.
func (reg *Registry) Get(name string) (string, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	expr, ok := reg.exprs[name]
	return expr, ok
}

// MustGet returns the expression registered under name, panicking if absent.
func (reg *Registry) MustGet(name string) string {
	expr, ok := reg.Get(name)
	if !ok {
		panic(fmt.Sprintf("hxsel: no selector registered for %q", name))
	}
	return expr
}

// Names returns the registered names in no particular order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.exprs))
	for name := range reg.exprs {
		names = append(names, name)
	}
	return names
}
