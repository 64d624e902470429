package list

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrEmpty is the panic value (wrapped) of Front, Back, PopFront and PopBack on an empty list.
	ErrEmpty = errors.New("empty list")
	// ErrEnd is the panic value (wrapped) of dereferencing or erasing the end position.
	ErrEnd = errors.New("end position")
)

type node[V any] struct {
	value  V
	next   *node[V]
	prev   *node[V]
	isRoot bool
}

// List represents a doubly linked list.
//
// The zero value is an empty list ready to use. A List must not be copied
// after first use; use Clone or Move instead.
type List[V any] struct {
	n   int
	end *node[V]
}

// New returns a new list holding values in order.
func New[V any](values ...V) *List[V] {
	l := new(List[V])
	l.lazyInit()

	for _, v := range values {
		l.addNode(l.end.prev, l.end, v)
	}

	return l
}

// Collect returns a new list holding the values yielded by seq in order.
func Collect[V any](seq iter.Seq[V]) *List[V] {
	l := New[V]()

	for v := range seq {
		l.addNode(l.end.prev, l.end, v)
	}

	return l
}

func newSentinel[V any]() *node[V] {
	root := &node[V]{isRoot: true}
	root.next = root
	root.prev = root

	return root
}

func (l *List[V]) lazyInit() {
	if l.end == nil {
		l.end = newSentinel[V]()
	}
}

// addNode links a new node holding v between before and after.
func (l *List[V]) addNode(before, after *node[V], v V) *node[V] {
	return l.link(&node[V]{value: v}, before, after)
}

// addNodeFunc links a new node between before and after and lets init
// construct the value inside it.
func (l *List[V]) addNodeFunc(before, after *node[V], init func(*V)) *node[V] {
	e := &node[V]{}
	if init != nil {
		init(&e.value)
	}

	return l.link(e, before, after)
}

func (l *List[V]) link(e, before, after *node[V]) *node[V] {
	e.prev = before
	e.next = after
	before.next = e
	after.prev = e
	l.n++

	return e
}

// deleteNode unlinks e and returns its value. e must not be the sentinel.
func (l *List[V]) deleteNode(e *node[V]) V { //nolint:ireturn
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil

	l.n--

	return e.value
}

// relink moves e between before and after.
func (l *List[V]) relink(e, before, after *node[V]) {
	if e == before || e == after {
		return
	}

	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = before
	e.next = after
	before.next = e
	after.prev = e
}

// Len returns the number of elements of list.
func (l *List[V]) Len() int { return l.n }

// Empty reports whether the list holds no elements.
func (l *List[V]) Empty() bool { return l.n == 0 }

// Front returns the first element. It panics with ErrEmpty if the list is empty.
func (l *List[V]) Front() V { //nolint:ireturn
	if l.n == 0 {
		panic(fmt.Errorf("front: %w", ErrEmpty))
	}

	return l.end.next.value
}

// Back returns the last element. It panics with ErrEmpty if the list is empty.
func (l *List[V]) Back() V { //nolint:ireturn
	if l.n == 0 {
		panic(fmt.Errorf("back: %w", ErrEmpty))
	}

	return l.end.prev.value
}

// PushBack inserts v at the back.
func (l *List[V]) PushBack(v V) Iterator[V] {
	l.lazyInit()

	return Iterator[V]{l.addNode(l.end.prev, l.end, v)}
}

// PushFront inserts v at the front.
func (l *List[V]) PushFront(v V) Iterator[V] {
	l.lazyInit()

	return Iterator[V]{l.addNode(l.end, l.end.next, v)}
}

// PopBack removes the last element and returns it.
// It panics with ErrEmpty if the list is empty.
func (l *List[V]) PopBack() V { //nolint:ireturn
	if l.n == 0 {
		panic(fmt.Errorf("pop back: %w", ErrEmpty))
	}

	return l.deleteNode(l.end.prev)
}

// PopFront removes the first element and returns it.
// It panics with ErrEmpty if the list is empty.
func (l *List[V]) PopFront() V { //nolint:ireturn
	if l.n == 0 {
		panic(fmt.Errorf("pop front: %w", ErrEmpty))
	}

	return l.deleteNode(l.end.next)
}

// Insert inserts v immediately before pos and returns an iterator to it.
// pos may be End, which appends.
func (l *List[V]) Insert(pos Position[V], v V) Iterator[V] {
	at := pos.position()

	return Iterator[V]{l.addNode(at.prev, at, v)}
}

// EmplaceBack appends a new element constructed in place by init and
// returns a pointer to it. A nil init leaves the zero value.
func (l *List[V]) EmplaceBack(init func(*V)) *V {
	l.lazyInit()

	return &l.addNodeFunc(l.end.prev, l.end, init).value
}

// EmplaceFront prepends a new element constructed in place by init and
// returns a pointer to it. A nil init leaves the zero value.
func (l *List[V]) EmplaceFront(init func(*V)) *V {
	l.lazyInit()

	return &l.addNodeFunc(l.end, l.end.next, init).value
}

// Emplace inserts a new element constructed in place by init immediately
// before pos.
func (l *List[V]) Emplace(pos Position[V], init func(*V)) Iterator[V] {
	at := pos.position()

	return Iterator[V]{l.addNodeFunc(at.prev, at, init)}
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it. It panics with ErrEnd if pos is End.
func (l *List[V]) Erase(pos Position[V]) Iterator[V] {
	e := pos.position()
	if e.isRoot {
		panic(fmt.Errorf("erase: %w", ErrEnd))
	}

	next := e.next
	l.deleteNode(e)

	return Iterator[V]{next}
}

// EraseRange removes the elements in [first, last) and returns last.
// last must be reachable from first; it panics with ErrEnd when the walk
// reaches the end of the list before last.
func (l *List[V]) EraseRange(first, last Position[V]) Iterator[V] {
	stop := last.position()

	for e := first.position(); e != stop; {
		if e.isRoot {
			panic(fmt.Errorf("erase range: %w", ErrEnd))
		}

		next := e.next
		l.deleteNode(e)
		e = next
	}

	return Iterator[V]{stop}
}

// Clear removes all elements.
func (l *List[V]) Clear() {
	l.ClearFunc(nil)
}

// ClearFunc removes all elements, calling release for each of them in order.
func (l *List[V]) ClearFunc(release func(V)) {
	if l.end == nil {
		return
	}

	for e := l.end.next; e != l.end; {
		next := e.next
		e.prev = nil
		e.next = nil

		if release != nil {
			release(e.value)
		}

		e = next
	}

	l.end.next = l.end
	l.end.prev = l.end
	l.n = 0
}

// Reverse reverses the order of the elements in place.
func (l *List[V]) Reverse() {
	if l.end == nil {
		return
	}

	for e := l.end; ; {
		next := e.next
		e.next, e.prev = e.prev, next

		if next == l.end {
			return
		}

		e = next
	}
}

// Swap exchanges the contents of l and other.
// Iterators keep referring to the same elements, now owned by the other list.
func (l *List[V]) Swap(other *List[V]) {
	l.lazyInit()
	other.lazyInit()

	l.end, other.end = other.end, l.end
	l.n, other.n = other.n, l.n
}

// Swap exchanges the contents of a and b.
func Swap[V any](a, b *List[V]) {
	a.Swap(b)
}

// Clone returns a copy of the list. Values are copied by assignment.
func (l *List[V]) Clone() *List[V] {
	return l.CloneFunc(nil)
}

// CloneFunc returns a copy of the list with every value copied by clone.
// A nil clone copies by assignment.
func (l *List[V]) CloneFunc(clone func(V) V) *List[V] {
	c := New[V]()

	if l.end == nil {
		return c
	}

	for e := l.end.next; e != l.end; e = e.next {
		v := e.value
		if clone != nil {
			v = clone(v)
		}

		c.addNode(c.end.prev, c.end, v)
	}

	return c
}

// Move returns a new list owning the elements of l and leaves l empty.
func (l *List[V]) Move() *List[V] {
	m := New[V]()
	m.Swap(l)

	return m
}

// MoveFrom discards the elements of l and takes over the elements of src,
// leaving src empty.
func (l *List[V]) MoveFrom(src *List[V]) {
	if l == src {
		return
	}

	l.Clear()
	l.Swap(src)
}

// MoveToFront moves the element at it to the front.
func (l *List[V]) MoveToFront(it Iterator[V]) {
	l.relink(it.e, l.end, l.end.next)
}

// MoveToBack moves the element at it to the back.
func (l *List[V]) MoveToBack(it Iterator[V]) {
	l.relink(it.e, l.end.prev, l.end)
}

// MoveBefore moves the element at it before mark.
func (l *List[V]) MoveBefore(it Iterator[V], mark Position[V]) {
	at := mark.position()
	l.relink(it.e, at.prev, at)
}

// MoveAfter moves the element at it after mark.
func (l *List[V]) MoveAfter(it Iterator[V], mark Position[V]) {
	at := mark.position()
	l.relink(it.e, at, at.next)
}

// Values returns the elements in order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.n)

	for v := range l.All() {
		values = append(values, v)
	}

	return values
}

// All returns an iterator over the values from front to back.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		if l.end == nil {
			return
		}

		for e := l.end.next; e != l.end; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from back to front.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		if l.end == nil {
			return
		}

		for e := l.end.prev; e != l.end; e = e.prev {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Iterators returns an iterator over positions from front to back.
// The yielded position may be erased; iteration continues with its successor.
func (l *List[V]) Iterators() iter.Seq[Iterator[V]] {
	return func(yield func(Iterator[V]) bool) {
		if l.end == nil {
			return
		}

		for e := l.end.next; e != l.end; {
			next := e.next
			if !yield(Iterator[V]{e}) {
				return
			}

			e = next
		}
	}
}
