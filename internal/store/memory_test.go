package store

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int
	Tags []string
}

func newRecordStore() *Memory[int, record] {
	next := 0
	return NewMemory(func() int {
		next++
		return next
	}, func(r record) record {
		r.Tags = append([]string(nil), r.Tags...)
		return r
	})
}

func addN(m *Memory[int, record], n int) []record {
	out := make([]record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, m.Add(func(id int) record { return record{ID: id} }))
	}
	return out
}

func TestMemory_AddThenGet(t *testing.T) {
	m := newRecordStore()

	added := m.Add(func(id int) record { return record{ID: id, Tags: []string{"go"}} })
	got, ok := m.Get(added.ID)

	require.True(t, ok)
	assert.Equal(t, added, got)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_AddSkipsTakenKeys(t *testing.T) {
	keys := []int{1, 1, 1, 2}
	m := NewMemory(func() int {
		k := keys[0]
		keys = keys[1:]
		return k
	}, func(r record) record { return r })

	first := m.Add(func(id int) record { return record{ID: id} })
	second := m.Add(func(id int) record { return record{ID: id} })

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestMemory_GetMissing(t *testing.T) {
	m := newRecordStore()

	got, ok := m.Get(42)

	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestMemory_DeleteIsIdempotent(t *testing.T) {
	m := newRecordStore()
	r := m.Add(func(id int) record { return record{ID: id} })

	assert.True(t, m.Delete(r.ID))
	rev := m.Revision()
	assert.False(t, m.Delete(r.ID))

	_, ok := m.Get(r.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, rev, m.Revision())
}

func TestMemory_FindPaginates(t *testing.T) {
	m := newRecordStore()
	all := addN(m, 5)

	tests := []struct {
		name string
		page Page
		want []record
	}{
		{name: "second page of two", page: Page{Number: 1, Size: 2}, want: all[2:4]},
		{name: "first page", page: Page{Number: 0, Size: 2}, want: all[0:2]},
		{name: "short last page", page: Page{Number: 2, Size: 2}, want: all[4:5]},
		{name: "past the end", page: Page{Number: 3, Size: 2}, want: []record{}},
		{name: "size zero means all", page: All, want: all},
		{name: "negative page", page: Page{Number: -1, Size: 2}, want: []record{}},
		{name: "huge page number", page: Page{Number: 1 << 62, Size: 4}, want: []record{}},
		{name: "huge page size", page: Page{Number: 1, Size: math.MaxInt}, want: []record{}},
		{name: "huge size first page", page: Page{Number: 0, Size: math.MaxInt}, want: all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Find(tt.page))
		})
	}
}

func TestMemory_FindKeepsInsertionOrderAfterDelete(t *testing.T) {
	m := newRecordStore()
	all := addN(m, 4)

	m.Delete(all[1].ID)

	assert.Equal(t, []record{all[0], all[2], all[3]}, m.Find(All))
}

func TestMemory_ReturnsCopies(t *testing.T) {
	m := newRecordStore()
	r := m.Add(func(id int) record { return record{ID: id, Tags: []string{"a"}} })

	r.Tags[0] = "mutated"
	got, _ := m.Get(r.ID)
	got.Tags = append(got.Tags, "b")

	again, _ := m.Get(r.ID)
	assert.Equal(t, []string{"a"}, again.Tags)
}

func TestMemory_ReplaceKeepsOrder(t *testing.T) {
	m := newRecordStore()
	addN(m, 2)

	m.Replace([]Entry[int, record]{
		{Key: 9, Value: record{ID: 9}},
		{Key: 3, Value: record{ID: 3}},
		{Key: 9, Value: record{ID: 9, Tags: []string{"last"}}},
	})

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 9, entries[0].Key)
	assert.Equal(t, []string{"last"}, entries[0].Value.Tags)
	assert.Equal(t, 3, entries[1].Key)
	_, ok := m.Get(1)
	assert.False(t, ok)
}

func TestMemory_UpdateAppliesOnSuccess(t *testing.T) {
	m := newRecordStore()
	r := m.Add(func(id int) record { return record{ID: id} })
	rev := m.Revision()

	err := m.Update(func(tx *Tx[int, record]) error {
		cur, ok := tx.Get(r.ID)
		require.True(t, ok)
		cur.Tags = append(cur.Tags, "x")
		assert.True(t, tx.Put(r.ID, cur))
		assert.False(t, tx.Put(999, cur))
		return nil
	})

	require.NoError(t, err)
	got, _ := m.Get(r.ID)
	assert.Equal(t, []string{"x"}, got.Tags)
	assert.Greater(t, m.Revision(), rev)
}

func TestMemory_UpdateDiscardsOnError(t *testing.T) {
	m := newRecordStore()
	r := m.Add(func(id int) record { return record{ID: id} })
	rev := m.Revision()
	boom := errors.New("boom")

	err := m.Update(func(tx *Tx[int, record]) error {
		tx.Put(r.ID, record{ID: r.ID, Tags: []string{"x"}})
		return boom
	})

	assert.ErrorIs(t, err, boom)
	got, _ := m.Get(r.ID)
	assert.Empty(t, got.Tags)
	assert.Equal(t, rev, m.Revision())
}

func TestMemory_ConcurrentAdds(t *testing.T) {
	var mu sync.Mutex
	next := 0
	m := NewMemory(func() int {
		mu.Lock()
		defer mu.Unlock()
		next++
		return next
	}, (func(record) record)(nil))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Add(func(id int) record { return record{ID: id} })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, m.Len())
	assert.Len(t, m.Find(All), 50)
}

func TestMemory_ConcurrentDeleteReportsOnce(t *testing.T) {
	m := newRecordStore()
	r := m.Add(func(id int) record { return record{ID: id} })

	var removed int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Delete(r.ID) {
				mu.Lock()
				removed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, removed)
}
