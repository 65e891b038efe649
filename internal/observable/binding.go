package observable

// Binding is a read-only value computed from other observables. It is
// recomputed every time one of its dependencies changes and notifies its own
// listeners only when the computed value differs from the previous one.
type Binding[T any] struct {
	compute func() T
	value   *Property[T]
	subs    []Subscription
}

// NewBinding creates a binding over a comparable value type.
func NewBinding[T comparable](compute func() T, deps ...Observable) *Binding[T] {
	return NewBindingFunc(compute, func(a, b T) bool { return a == b }, deps...)
}

// NewBindingFunc creates a binding that compares computed values with equal.
func NewBindingFunc[T any](compute func() T, equal func(a, b T) bool, deps ...Observable) *Binding[T] {
	b := &Binding[T]{
		compute: compute,
		value:   NewPropertyFunc("", compute(), equal),
	}
	for _, dep := range deps {
		b.subs = append(b.subs, dep.Subscribe(func(_, _ any) {
			b.Invalidate()
		}))
	}
	return b
}

// Get returns the last computed value.
func (b *Binding[T]) Get() T {
	return b.value.Get()
}

// Value returns the last computed value as any.
func (b *Binding[T]) Value() any {
	return b.value.Value()
}

// Subscribe registers l for changes of the computed value.
func (b *Binding[T]) Subscribe(l Listener) Subscription {
	return b.value.Subscribe(l)
}

// Invalidate recomputes the value.
func (b *Binding[T]) Invalidate() {
	b.value.Set(b.compute())
}

// Dispose detaches the binding from its dependencies. The last value stays
// readable but is no longer updated.
func (b *Binding[T]) Dispose() {
	for _, s := range b.subs {
		s.Unsubscribe()
	}
	b.subs = nil
}
