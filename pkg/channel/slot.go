package channel

// Slot is the capability of channel type C to read and write one value of type T.
// Set must be a pure functional update: the returned channel equals c in every slot
// except this one.
type Slot[C, T any] interface {
	Get(c C) T
	Set(c C, value T) C
}

// Named is implemented by slots that carry a human-readable name.
type Named interface {
	Name() string
}

// FieldSlot is a Slot backed by accessor functions.
type FieldSlot[C, T any] struct {
	name string
	get  func(C) T
	set  func(C, T) C
}

// Field creates a slot from a getter and a setter.
// The setter receives a copy of the channel and must return it with only the
// field replaced.
func Field[C, T any](name string, get func(C) T, set func(C, T) C) FieldSlot[C, T] {
	return FieldSlot[C, T]{name: name, get: get, set: set}
}

func (f FieldSlot[C, T]) Get(c C) T { return f.get(c) }

func (f FieldSlot[C, T]) Set(c C, value T) C { return f.set(c, value) }

// Name returns the field name the slot was declared with.
func (f FieldSlot[C, T]) Name() string { return f.name }

// Get reads the value behind slot from c.
func Get[C, T any](c C, slot Slot[C, T]) T {
	return slot.Get(c)
}

// Set returns a copy of c with the slot replaced by value.
func Set[C, T any](c C, slot Slot[C, T], value T) C {
	return slot.Set(c, value)
}

// Update reads the slot, applies fn and writes the result back.
func Update[C, T any](c C, slot Slot[C, T], fn func(T) T) C {
	return slot.Set(c, fn(slot.Get(c)))
}

// NameOf returns the slot's name, or "?" for anonymous slots.
func NameOf(slot any) string {
	if n, ok := slot.(Named); ok {
		return n.Name()
	}
	return "?"
}

type nested[C, M, T any] struct {
	outer Slot[C, M]
	inner Slot[M, T]
}

// Nest composes two slots so that a field of an embedded aggregate can be used
// directly on the outer channel.
func Nest[C, M, T any](outer Slot[C, M], inner Slot[M, T]) Slot[C, T] {
	return nested[C, M, T]{outer: outer, inner: inner}
}

func (n nested[C, M, T]) Get(c C) T {
	return n.inner.Get(n.outer.Get(c))
}

func (n nested[C, M, T]) Set(c C, value T) C {
	return n.outer.Set(c, n.inner.Set(n.outer.Get(c), value))
}

func (n nested[C, M, T]) Name() string {
	return NameOf(n.outer) + "." + NameOf(n.inner)
}
