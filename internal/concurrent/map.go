// Package concurrent provides the sharded accumulator used by the parallel
// scorer. Keys are routed to a fixed number of shards, each guarded by its
// own mutex, so concurrent updates contend only within a shard.
package concurrent

import (
	"sync"

	"github.com/huandu/skiplist"
)

// Map is a sharded int32→float64 accumulator. A key lives in exactly one
// shard, chosen by key mod shard count.
type Map struct {
	shards []shard
}

type shard struct {
	mu      sync.Mutex
	entries map[int32]*float64
}

// NewMap creates a Map with the given number of shards.
func NewMap(shardCount int) *Map {
	m := &Map{shards: make([]shard, shardCount)}
	for i := range m.shards {
		m.shards[i].entries = make(map[int32]*float64)
	}
	return m
}

// Access is a scoped handle to one accumulator slot. It holds the shard's
// mutex from Get until Release; Value stays valid for that window only.
type Access struct {
	mu    *sync.Mutex
	Value *float64
}

// Release unlocks the shard. The handle must not be used afterwards.
func (a Access) Release() {
	a.mu.Unlock()
}

// Get locks the shard owning key and returns a handle to its slot,
// zero-initialized if absent.
func (m *Map) Get(key int32) Access {
	s := &m.shards[uint32(key)%uint32(len(m.shards))]
	s.mu.Lock()
	v, ok := s.entries[key]
	if !ok {
		v = new(float64)
		s.entries[key] = v
	}
	return Access{mu: &s.mu, Value: v}
}

// BuildOrdinaryMap merges all shards into a single list ordered by key. It
// locks shards one at a time and must not run concurrently with live
// handles.
func (m *Map) BuildOrdinaryMap() *skiplist.SkipList {
	result := skiplist.New(skiplist.Int32)
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		for key, value := range s.entries {
			result.Set(key, *value)
		}
		s.mu.Unlock()
	}
	return result
}
