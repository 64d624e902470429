package list

import "fmt"

// Position is a list position usable as an anchor for Insert, Emplace and Erase.
// It is implemented by Iterator and ConstIterator.
type Position[V any] interface {
	position() *node[V]
}

// Iterator is a position in a list through which the element can be modified.
// Iterators compare equal iff they refer to the same position.
type Iterator[V any] struct {
	e *node[V]
}

// Value returns the element at it. It panics with ErrEnd at the end position.
func (it Iterator[V]) Value() V { //nolint:ireturn
	return *it.Ptr()
}

// Ptr returns a pointer to the element at it. It panics with ErrEnd at the end position.
func (it Iterator[V]) Ptr() *V {
	if it.e.isRoot {
		panic(fmt.Errorf("dereference: %w", ErrEnd))
	}

	return &it.e.value
}

// Set replaces the element at it.
func (it Iterator[V]) Set(v V) {
	*it.Ptr() = v
}

// Next returns the following position.
func (it Iterator[V]) Next() Iterator[V] { return Iterator[V]{it.e.next} }

// Prev returns the preceding position.
func (it Iterator[V]) Prev() Iterator[V] { return Iterator[V]{it.e.prev} }

// Const returns a read-only iterator at the same position.
func (it Iterator[V]) Const() ConstIterator[V] { return ConstIterator[V]{it.e} }

// Reverse returns a reverse iterator at the same position.
func (it Iterator[V]) Reverse() ReverseIterator[V] { return ReverseIterator[V](it) }

func (it Iterator[V]) position() *node[V] { return it.e }

// ConstIterator is a read-only position in a list.
// Its field differs from Iterator's so that the conversion only widens.
type ConstIterator[V any] struct {
	c *node[V]
}

// Value returns the element at it. It panics with ErrEnd at the end position.
func (it ConstIterator[V]) Value() V { //nolint:ireturn
	if it.c.isRoot {
		panic(fmt.Errorf("dereference: %w", ErrEnd))
	}

	return it.c.value
}

func (it ConstIterator[V]) Next() ConstIterator[V] { return ConstIterator[V]{it.c.next} }

func (it ConstIterator[V]) Prev() ConstIterator[V] { return ConstIterator[V]{it.c.prev} }

// Reverse returns a read-only reverse iterator at the same position.
func (it ConstIterator[V]) Reverse() ConstReverseIterator[V] { return ConstReverseIterator[V](it) }

func (it ConstIterator[V]) position() *node[V] { return it.c }

// ReverseIterator is a mutable position that walks the list back to front:
// Next follows the previous link and Prev the next one.
type ReverseIterator[V any] struct {
	e *node[V]
}

func (it ReverseIterator[V]) Value() V { return it.Forward().Value() } //nolint:ireturn

func (it ReverseIterator[V]) Ptr() *V { return it.Forward().Ptr() }

func (it ReverseIterator[V]) Set(v V) { it.Forward().Set(v) }

func (it ReverseIterator[V]) Next() ReverseIterator[V] { return ReverseIterator[V]{it.e.prev} }

func (it ReverseIterator[V]) Prev() ReverseIterator[V] { return ReverseIterator[V]{it.e.next} }

// Forward returns the forward iterator at the same position.
func (it ReverseIterator[V]) Forward() Iterator[V] { return Iterator[V](it) }

// Const returns a read-only reverse iterator at the same position.
func (it ReverseIterator[V]) Const() ConstReverseIterator[V] { return ConstReverseIterator[V]{it.e} }

// ConstReverseIterator is a read-only position that walks the list back to front.
type ConstReverseIterator[V any] struct {
	c *node[V]
}

func (it ConstReverseIterator[V]) Value() V { return it.Forward().Value() } //nolint:ireturn

func (it ConstReverseIterator[V]) Next() ConstReverseIterator[V] {
	return ConstReverseIterator[V]{it.c.prev}
}

func (it ConstReverseIterator[V]) Prev() ConstReverseIterator[V] {
	return ConstReverseIterator[V]{it.c.next}
}

// Forward returns the read-only forward iterator at the same position.
func (it ConstReverseIterator[V]) Forward() ConstIterator[V] { return ConstIterator[V](it) }

// Begin returns an iterator to the first element, or End if the list is empty.
func (l *List[V]) Begin() Iterator[V] {
	l.lazyInit()

	return Iterator[V]{l.end.next}
}

// End returns the position one past the last element.
func (l *List[V]) End() Iterator[V] {
	l.lazyInit()

	return Iterator[V]{l.end}
}

func (l *List[V]) ConstBegin() ConstIterator[V] { return l.Begin().Const() }

func (l *List[V]) ConstEnd() ConstIterator[V] { return l.End().Const() }

// RBegin returns a reverse iterator to the last element, or REnd if the list is empty.
func (l *List[V]) RBegin() ReverseIterator[V] {
	l.lazyInit()

	return ReverseIterator[V]{l.end.prev}
}

// REnd returns the position one before the first element.
// It refers to the same position as End.
func (l *List[V]) REnd() ReverseIterator[V] {
	l.lazyInit()

	return ReverseIterator[V]{l.end}
}

func (l *List[V]) ConstRBegin() ConstReverseIterator[V] { return l.RBegin().Const() }

func (l *List[V]) ConstREnd() ConstReverseIterator[V] { return l.REnd().Const() }
