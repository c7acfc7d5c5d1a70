package store

import "sync"

// Page selects a window of a store's enumeration order. Size 0 selects
// everything from the skip offset on.
type Page struct {
	Number int
	Size   int
}

var All = Page{}

func (p Page) bounds(n int) (int, int) {
	if p.Number < 0 || p.Size < 0 {
		return 0, 0
	}
	if p.Size == 0 {
		return 0, n
	}
	if n == 0 || p.Number > (n-1)/p.Size {
		return n, n
	}
	skip := p.Number * p.Size
	if p.Size > n-skip {
		return skip, n
	}
	return skip, skip + p.Size
}

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Memory is an in-process keyed collection. Every exported method is a
// single critical section; enumeration follows insertion order.
type Memory[K comparable, V any] struct {
	mu       sync.RWMutex
	items    map[K]V
	order    []K
	newKey   func() K
	clone    func(V) V
	revision uint64
}

// NewMemory builds an empty store. clone may be nil when V holds no
// reference types.
func NewMemory[K comparable, V any](newKey func() K, clone func(V) V) *Memory[K, V] {
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return &Memory[K, V]{
		items:  make(map[K]V),
		newKey: newKey,
		clone:  clone,
	}
}

func (m *Memory[K, V]) Add(build func(K) V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.newKey()
	for {
		if _, taken := m.items[id]; !taken {
			break
		}
		id = m.newKey()
	}

	v := build(id)
	m.items[id] = m.clone(v)
	m.order = append(m.order, id)
	m.revision++
	return m.clone(v)
}

func (m *Memory[K, V]) Get(id K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[id]
	if !ok {
		var zero V
		return zero, false
	}
	return m.clone(v), true
}

// Delete removes id and reports whether it was present.
func (m *Memory[K, V]) Delete(id K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return false
	}
	delete(m.items, id)
	for i, k := range m.order {
		if k == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.revision++
	return true
}

func (m *Memory[K, V]) Find(p Page) []V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start, end := p.bounds(len(m.order))
	out := make([]V, 0, end-start)
	for _, id := range m.order[start:end] {
		out = append(out, m.clone(m.items[id]))
	}
	return out
}

func (m *Memory[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// Revision increases with every mutation. Equal revisions mean equal
// contents for the same store.
func (m *Memory[K, V]) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revision
}

func (m *Memory[K, V]) Entries() []Entry[K, V] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Entry[K, V], 0, len(m.order))
	for _, id := range m.order {
		out = append(out, Entry[K, V]{Key: id, Value: m.clone(m.items[id])})
	}
	return out
}

// Replace swaps the whole contents for entries, keeping their order. A key
// repeated in entries keeps its first position and its last value.
func (m *Memory[K, V]) Replace(entries []Entry[K, V]) {
	items := make(map[K]V, len(entries))
	order := make([]K, 0, len(entries))
	for _, e := range entries {
		if _, seen := items[e.Key]; !seen {
			order = append(order, e.Key)
		}
		items[e.Key] = m.clone(e.Value)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
	m.order = order
	m.revision++
}

// Update runs fn while holding the write lock. Changes made through tx are
// applied only when fn returns nil.
func (m *Memory[K, V]) Update(fn func(tx *Tx[K, V]) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &Tx[K, V]{m: m, pending: map[K]V{}}
	if err := fn(tx); err != nil {
		return err
	}
	if len(tx.pending) == 0 {
		return nil
	}
	for id, v := range tx.pending {
		m.items[id] = v
	}
	m.revision++
	return nil
}

// View runs fn while holding the read lock.
func (m *Memory[K, V]) View(fn func(v View[K, V]) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(View[K, V]{m: m})
}

type View[K comparable, V any] struct {
	m *Memory[K, V]
}

func (v View[K, V]) Get(id K) (V, bool) {
	item, ok := v.m.items[id]
	if !ok {
		var zero V
		return zero, false
	}
	return v.m.clone(item), true
}

type Tx[K comparable, V any] struct {
	m       *Memory[K, V]
	pending map[K]V
}

func (tx *Tx[K, V]) Get(id K) (V, bool) {
	if v, ok := tx.pending[id]; ok {
		return tx.m.clone(v), true
	}
	item, ok := tx.m.items[id]
	if !ok {
		var zero V
		return zero, false
	}
	return tx.m.clone(item), true
}

// Put replaces an existing record. It reports false, and stages nothing,
// when id is not present.
func (tx *Tx[K, V]) Put(id K, v V) bool {
	if _, ok := tx.m.items[id]; !ok {
		return false
	}
	tx.pending[id] = tx.m.clone(v)
	return true
}
