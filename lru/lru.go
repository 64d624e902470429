package lru

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.expect.digital/container/list"
)

const defaultSize = 1024

var ErrNotFound = errors.New("not found")

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

type getterResult[V any] struct {
	err   error
	value V
}

type entry[K comparable, V any] struct {
	key K
	val V
	exp time.Time
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return !e.exp.IsZero() && !e.exp.After(now)
}

// Cache is a least recently used cache.
//
// The most recently used entry is at the front of the list, the eviction
// candidate at the back.
type Cache[K comparable, V any] struct {
	n       int
	ttl     time.Duration
	getter  Getter[K, V]
	onEvict OnEvict[V]
	entries *list.List[entry[K, V]]
	lookup  map[K]list.Iterator[entry[K, V]]
	pending map[K][]chan getterResult[V]
	mu      sync.RWMutex
}

// Size returns the max size of the cache.
func (c *Cache[K, V]) Size() int {
	return c.n
}

// Len returns the length of the values stored in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entries.Len()
}

// Keys returns the keys from the most to the least recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]K, 0, c.entries.Len())

	for e := range c.entries.All() {
		keys = append(keys, e.key)
	}

	return keys
}

// Get returns the value associated with the key from the cache. If the value is not found,
// the value is populated by the getter.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) { //nolint:ireturn
	c.mu.Lock()

	it, ok := c.lookup[key]
	if !ok {
		c.mu.Unlock()

		return c.populateByGetter(ctx, key)
	}

	if e := it.Ptr(); !e.expired(time.Now()) {
		c.entries.MoveToFront(it)
		v := e.val
		c.mu.Unlock()

		return v, nil
	}

	err := c.evict(ctx, it)
	c.mu.Unlock()

	if err != nil {
		return zeroValue[V](), fmt.Errorf("evict expired value: %w", err)
	}

	return c.populateByGetter(ctx, key)
}

// Peek returns the value associated with the key without changing its recency
// and without calling the getter.
func (c *Cache[K, V]) Peek(key K) (V, bool) { //nolint:ireturn
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.lookup[key]
	if !ok || it.Ptr().expired(time.Now()) {
		return zeroValue[V](), false
	}

	return it.Value().val, true
}

func (c *Cache[K, V]) populateByGetter(ctx context.Context, key K) (V, error) { //nolint:ireturn
	if c.getter == nil {
		return zeroValue[V](), fmt.Errorf("value not found for key: %v: %w", key, ErrNotFound)
	}

	c.mu.Lock()

	ch := make(chan getterResult[V], 1)

	c.pending[key] = append(c.pending[key], ch)
	n := len(c.pending[key])

	c.mu.Unlock()

	if n == 1 {
		go c.execGetter(ctx, key)
	}

	var msg getterResult[V]

	select {
	case msg = <-ch:
	case <-ctx.Done():
		return zeroValue[V](), fmt.Errorf("wait getter for key: %v: %w", key, ctx.Err())
	}

	if msg.err != nil {
		return zeroValue[V](), msg.err
	}

	// Add the new value to the cache.
	if err := c.Set(ctx, key, msg.value); err != nil {
		return zeroValue[V](), fmt.Errorf("set value for key: %v: %w", key, err)
	}

	return msg.value, nil
}

func (c *Cache[K, V]) execGetter(ctx context.Context, key K) {
	var (
		v   V
		err error
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("exec getter for key: %v: %v", key, r) //nolint:goerr113
		}

		c.mu.Lock()

		// Waiters' channels are buffered, so a waiter that gave up does not block us.
		for _, ch := range c.pending[key] {
			ch <- getterResult[V]{value: v, err: err}
		}

		delete(c.pending, key)
		c.mu.Unlock()
	}()

	v, err = c.getter(ctx, key)
	if err != nil {
		err = fmt.Errorf("get value by getter for key: %v: %w", key, err)
	}
}

// Set adds the value to the cache or replaces the existing one, making it the most recently used.
func (c *Cache[K, V]) Set(ctx context.Context, key K, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var exp time.Time
	if c.ttl > 0 {
		exp = time.Now().Add(c.ttl)
	}

	// If the key already exists, update the value and exp, and move the element to the front of the list.
	if it, ok := c.lookup[key]; ok {
		it.Set(entry[K, V]{key: key, val: value, exp: exp})

		c.entries.MoveToFront(it)

		return nil
	}

	c.lookup[key] = c.entries.PushFront(entry[K, V]{key: key, val: value, exp: exp})

	// In favor of optimizing the speed of Set, evicting happens only when the cache is full.
	if c.entries.Len() <= c.n {
		return nil
	}

	if err := c.evictExpired(ctx); err != nil {
		return fmt.Errorf("evict expired values: %w", err)
	}

	if c.entries.Len() <= c.n {
		return nil
	}

	return c.evict(ctx, c.entries.RBegin().Forward())
}

// Delete removes the key from the cache. The on-evict function is not called.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.lookup[key]
	if !ok {
		return false
	}

	c.entries.Erase(it)
	delete(c.lookup, key)

	return true
}

// Purge removes all values from the cache. The on-evict function is not called.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Clear()
	clear(c.lookup)
}

// evict removes the element from the cache and calls the on-evict function.
func (c *Cache[K, V]) evict(ctx context.Context, it list.Iterator[entry[K, V]]) (err error) {
	e := it.Value()

	c.entries.Erase(it)
	delete(c.lookup, e.key)

	if c.onEvict == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evict value for key: %v: %v", e.key, r) //nolint:goerr113
		}
	}()

	err = c.onEvict(ctx, e.val)
	if err != nil {
		return fmt.Errorf("evict value for key: %v: %w", e.key, err)
	}

	return nil
}

// evictExpired removes expired values from the cache.
// If ttl is 0, evictExpired is a no-op.
func (c *Cache[K, V]) evictExpired(ctx context.Context) error {
	if c.ttl == 0 {
		return nil
	}

	now := time.Now()

	for it := range c.entries.Iterators() {
		if !it.Ptr().expired(now) {
			continue
		}

		if err := c.evict(ctx, it); err != nil {
			return err
		}
	}

	return nil
}

type Option[K comparable, V any] func(*Cache[K, V])

// WithSize sets the max size of the cache.
// If the cache is full, the least recently used value is evicted.
func WithSize[K comparable, V any](n int) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.n = n
	}
}

// WithTTL sets the time to live for the cached values.
func WithTTL[K comparable, V any](ttl time.Duration) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.ttl = ttl
	}
}

type OnEvict[V any] func(ctx context.Context, v V) error

// WithOnEvict sets a function to be called after evicting a value from the cache.
func WithOnEvict[K comparable, V any](onEvict OnEvict[V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = onEvict
	}
}

type Getter[K comparable, V any] func(ctx context.Context, key K) (V, error)

// WithGetter sets a function to be used to populate the cache.
// If the getter is set and no value found in the cache, the cache will populate the cache
// with the value returned by the getter.
func WithGetter[K comparable, V any](getter Getter[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.getter = getter
	}
}

func New[K comparable, V any](options ...Option[K, V]) *Cache[K, V] {
	c := new(Cache[K, V])

	for _, f := range options {
		f(c)
	}

	if c.n <= 0 {
		c.n = defaultSize
	}

	c.entries = list.New[entry[K, V]]()
	c.lookup = make(map[K]list.Iterator[entry[K, V]])
	c.pending = make(map[K][]chan getterResult[V])

	return c
}
