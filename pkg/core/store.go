package core

import (
	"fmt"
	"reflect"

	"github.com/go-flint/flint/pkg/errors"
)

// Store maps component identity to its ordered list of state slots.
//
// Slots grow lazily, persist for the lifetime of the store once a component
// has rendered, and are never torn down: there is no unmount hook in this
// design. The store is accessed only from the single render thread; a
// multi-threaded host must serialize all renders through one exclusive
// section.
type Store struct {
	slots        map[uintptr][]any
	cursor       cursor
	onInvalidate func()
}

// cursor is the transient render cursor: (component identity, slot index).
// It is valid only during an active render pass.
type cursor struct {
	owner  uintptr
	index  int
	active bool
}

// NewStore creates an empty state store.
func NewStore() *Store {
	return &Store{slots: make(map[uintptr][]any)}
}

// OnInvalidate registers the callback fired when a slot value changes.
// The mount controller uses this to trigger a full re-render.
func (s *Store) OnInvalidate(fn func()) {
	s.onInvalidate = fn
}

// SlotCount reports the number of slots recorded for a component.
func (s *Store) SlotCount(fn Component) int {
	return len(s.slots[identityOf(fn)])
}

// active is the store hook calls resolve against. It is set for the duration
// of a render pass by the renderer. Single logical thread of control, so no
// locking.
var active *Store

// Activate marks s as the store hook calls resolve against and returns a
// restore function for the previous binding.
func (s *Store) Activate() func() {
	prev := active
	active = s
	return func() { active = prev }
}

// BeginComponent resets the render cursor to (fn, slot 0) and returns a
// restore function for the previous cursor. The renderer calls this on entry
// to every component invocation and runs the restore on exit, including when
// the invocation panics, so the cursor never leaks into unrelated renders.
func (s *Store) BeginComponent(fn Component) func() {
	prev := s.cursor
	s.cursor = cursor{owner: identityOf(fn), active: true}
	return func() { s.cursor = prev }
}

// identityOf returns the stable identity token for a component function.
// Go func values are not comparable, so the code pointer stands in for the
// function value itself.
func identityOf(fn Component) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// UseState registers a positional state slot for the component currently
// being rendered and returns a getter and a setter for it.
//
// On the first call at a given slot the slot is initialized to initial;
// subsequent renders ignore initial. The getter reads the slot at call time,
// so every call reflects the latest value. The setter is a no-op when the
// new value is equal to the current one under a shallow equality check;
// otherwise it updates the slot and synchronously triggers a full re-render
// through the mount controller.
//
// Slot identity is purely positional: a component must call UseState the
// same number of times, in the same order, on every render. Calling UseState
// with no active render cursor panics with a typed *errors.RuntimeError.
func UseState[T any](initial T) (func() T, func(T)) {
	s := active
	if s == nil || !s.cursor.active {
		panic(errors.New("core.UseState", errors.KindHookOutsideRender,
			fmt.Errorf("hook called outside a component render")))
	}
	id := s.cursor.owner
	index := s.cursor.index
	s.cursor.index++

	list := s.slots[id]
	if index >= len(list) {
		list = append(list, initial)
		s.slots[id] = list
	}

	get := func() T {
		v, ok := s.slots[id][index].(T)
		if !ok {
			var zero T
			return zero
		}
		return v
	}
	set := func(v T) {
		s.setSlot(id, index, v)
	}
	return get, set
}

// setSlot writes a slot and notifies the controller unless the value is
// unchanged.
func (s *Store) setSlot(id uintptr, index int, v any) {
	current := s.slots[id][index]
	if shallowEqual(current, v) {
		return
	}
	s.slots[id][index] = v
	if s.onInvalidate != nil {
		s.onInvalidate()
	}
}

// shallowEqual reports whether two slot values are identical under Go's ==.
// Non-comparable values (slices, maps, funcs) never compare equal, so
// writing one always re-renders.
func shallowEqual(a, b any) bool {
	if !isComparable(a) || !isComparable(b) {
		return false
	}
	return a == b
}

// isComparable reports whether v can be used with ==.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
