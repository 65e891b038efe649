package observable

// Property is a writable observable value of type T.
//
// Listeners are notified only when Set stores a value that differs from the
// current one according to the property's equality function.
type Property[T any] struct {
	name      string
	value     T
	equal     func(a, b T) bool
	listeners listenerList
}

// NewProperty returns a property for a comparable type using == to detect
// changes.
func NewProperty[T comparable](name string, initial T) *Property[T] {
	return NewPropertyFunc(name, initial, func(a, b T) bool { return a == b })
}

// NewPropertyFunc returns a property that uses equal to detect changes.
// A nil equal makes every Set a change.
func NewPropertyFunc[T any](name string, initial T, equal func(a, b T) bool) *Property[T] {
	if equal == nil {
		equal = func(T, T) bool { return false }
	}
	return &Property[T]{name: name, value: initial, equal: equal}
}

// Name returns the name the property was created with. Convenience checks use
// it to build message texts.
func (p *Property[T]) Name() string {
	return p.name
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.value
}

// Value returns the current value as any.
func (p *Property[T]) Value() any {
	return p.value
}

// Set stores v and notifies listeners if the value changed. It reports
// whether a change happened.
func (p *Property[T]) Set(v T) bool {
	if p.equal(p.value, v) {
		return false
	}
	old := p.value
	p.value = v
	p.listeners.notify(old, v)
	return true
}

// Subscribe registers l for change notifications.
func (p *Property[T]) Subscribe(l Listener) Subscription {
	return p.listeners.add(l)
}

// Listeners returns the number of registered listeners.
func (p *Property[T]) Listeners() int {
	return p.listeners.len()
}

// ReadOnly returns a view of p that cannot be written.
func (p *Property[T]) ReadOnly() ReadOnly[T] {
	return readOnly[T]{p: p}
}

type readOnly[T any] struct {
	p *Property[T]
}

func (r readOnly[T]) Get() T                            { return r.p.Get() }
func (r readOnly[T]) Value() any                        { return r.p.Value() }
func (r readOnly[T]) Subscribe(l Listener) Subscription { return r.p.Subscribe(l) }
