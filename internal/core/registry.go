package core

// Binding is the room/name pair a connection is currently assigned to.
type Binding struct {
	Room string
	Name string
}

// Registry tracks every live connection and its current binding.
// A connection belongs to at most one room at a time; an entry with a nil
// binding is connected but not yet joined anywhere.
//
// Registry is not safe for concurrent use; the hub serializes access.
type Registry struct {
	conns map[string]*Binding
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]*Binding)}
}

// RegisterConnect records a newly connected, unbound connection.
// Idempotent: re-registering a known connection keeps its binding.
func (r *Registry) RegisterConnect(id string) {
	if _, ok := r.conns[id]; ok {
		return
	}
	r.conns[id] = nil
}

// Assign binds the connection to a room under a display name, overwriting
// any prior binding. Blank room or name makes it a no-op.
func (r *Registry) Assign(id, room, name string) bool {
	if room == "" || name == "" {
		return false
	}
	r.conns[id] = &Binding{Room: room, Name: name}
	return true
}

// Unassign clears the connection's binding and returns what it was.
func (r *Registry) Unassign(id string) (Binding, bool) {
	b, ok := r.conns[id]
	if !ok || b == nil {
		return Binding{}, false
	}
	r.conns[id] = nil
	return *b, true
}

// Lookup returns the connection's current binding, if any.
func (r *Registry) Lookup(id string) (Binding, bool) {
	b, ok := r.conns[id]
	if !ok || b == nil {
		return Binding{}, false
	}
	return *b, true
}

// Forget removes the connection entirely on transport teardown and
// returns the binding it held, if any.
func (r *Registry) Forget(id string) (Binding, bool) {
	b, ok := r.conns[id]
	delete(r.conns, id)
	if !ok || b == nil {
		return Binding{}, false
	}
	return *b, true
}

// Known reports whether the connection has been registered.
func (r *Registry) Known(id string) bool {
	_, ok := r.conns[id]
	return ok
}
