package bot

import "sync"

// Registry collects modules as they self-register. Registration happens from
// init() functions, before the bot starts reading from it.
type Registry struct {
	mu      sync.RWMutex
	modules []Module
}

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make([]Module, 0),
	}
}

// Register appends a module. Modules are kept in registration order, which
// is also the order their catch-all update handlers run in.
func (r *Registry) Register(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = append(r.modules, m)
}

// Modules returns a copy of the registered modules so callers cannot mutate
// the registry's backing slice.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Module, len(r.modules))
	copy(result, r.modules)
	return result
}

// The process-wide registry that module init() functions register into.
var globalRegistry = NewRegistry()

// Register adds a module to the global registry. Called from module init()
// functions via a blank import in main.
func Register(m Module) {
	globalRegistry.Register(m)
}

// Modules returns all modules from the global registry.
func Modules() []Module {
	return globalRegistry.Modules()
}

// ResetGlobalRegistry replaces the global registry with an empty one.
// Tests use this to isolate registration state.
func ResetGlobalRegistry() {
	globalRegistry = NewRegistry()
}
