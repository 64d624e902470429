/*
Package list implements a generic doubly linked list.

The list is a circular chain anchored by a single sentinel node. The sentinel
is the position returned by End (and REnd); its next link is the first element
and its prev link the last one, and an empty list is a sentinel linked to
itself. Every insertion splices a new node between two neighbours and every
removal unlinks one, so the ends of the list need no special handling.

Nodes are never moved or reallocated. An iterator stays valid until the element
it refers to is removed, regardless of what else happens to the list,
including Reverse, Swap and the Move* operations.

The list is not safe for concurrent use.

# Iterators

There are four iterator kinds:

  - Iterator: mutable, walks front to back.
  - ConstIterator: read-only, walks front to back.
  - ReverseIterator: mutable, walks back to front.
  - ConstReverseIterator: read-only, walks back to front.

A mutable iterator widens to its read-only counterpart with Const; there is no
conversion in the other direction. Reversing an iterator keeps its position
and only swaps which link Next and Prev follow. Iterators compare equal with ==
iff they refer to the same position.

Both Iterator and ConstIterator satisfy Position, the anchor type accepted by
Insert, Emplace, Erase and EraseRange.

# Preconditions

Front, Back, PopFront and PopBack on an empty list panic with an error wrapping
ErrEmpty. Dereferencing or erasing the end position panics with an error
wrapping ErrEnd. Using an iterator after its element was removed, or mixing
positions of different lists, is a programming error and is not detected.

# Example Usage

	l := list.New(1, 2)

	// Insert 3 before 2.
	l.Insert(l.Begin().Next(), 3)

	for it := l.Begin(); it != l.End(); it = it.Next() {
		fmt.Println(it.Value()) // 1, 3, 2
	}

	for v := range l.Backward() {
		fmt.Println(v) // 2, 3, 1
	}

	// Erase returns the successor, which makes erase-while-iterating safe.
	for it := l.Begin(); it != l.End(); {
		if it.Value()%2 == 1 {
			it = l.Erase(it)
			continue
		}

		it = it.Next()
	}
*/
package list
