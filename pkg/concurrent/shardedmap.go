// Package concurrent provides the sharded map and padded counter types the
// legal-board graph builder uses to share state across worker goroutines
// without a single global lock becoming the bottleneck.
package concurrent

import "sync"

// defaultShardBits is used by NewShardedMap; callers that want to tune
// shard count for a particular workload size use NewShardedMapN, e.g.
// pkg/boardgraph's Options.ShardBits.
const defaultShardBits = 6

// HashFunc maps a key to a shard-selecting hash. Callers own hash quality
// and distribution; a poor hash just concentrates load on fewer shards, it
// never causes incorrect results.
type HashFunc[K comparable] func(K) uint64

// ShardedMap is a concurrent map split into a fixed number of independently
// locked shards, so that goroutines touching different keys rarely block
// each other.
type ShardedMap[K comparable, V any] struct {
	hash   HashFunc[K]
	mask   uint64
	shards []shard[K, V]
}

type shard[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]V
}

// NewShardedMap constructs an empty ShardedMap with a fixed, generally
// sensible number of shards (64) that shards keys using hash.
func NewShardedMap[K comparable, V any](hash HashFunc[K]) *ShardedMap[K, V] {
	return NewShardedMapN[K, V](hash, defaultShardBits)
}

// NewShardedMapN constructs an empty ShardedMap with 2^shardBits shards.
// More shards reduce contention under heavy concurrent writes at the cost
// of more per-shard map overhead; callers with a good estimate of worker
// count and key cardinality (e.g. pkg/boardgraph's Options.ShardBits) can
// tune it directly instead of living with the default.
func NewShardedMapN[K comparable, V any](hash HashFunc[K], shardBits uint) *ShardedMap[K, V] {
	sm := &ShardedMap[K, V]{hash: hash, mask: 1<<shardBits - 1, shards: make([]shard[K, V], 1<<shardBits)}
	for i := range sm.shards {
		sm.shards[i].m = make(map[K]V)
	}
	return sm
}

func (sm *ShardedMap[K, V]) shardFor(key K) *shard[K, V] {
	return &sm.shards[sm.hash(key)&sm.mask]
}

// Insert stores (key, value), returning the previous value and whether one
// existed.
func (sm *ShardedMap[K, V]) Insert(key K, value V) (V, bool) {
	s := sm.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.m[key]
	s.m[key] = value
	return old, ok
}

// GetOrInsert returns the existing value for key if present, otherwise
// stores and returns value. The second result reports whether the value was
// already present.
func (sm *ShardedMap[K, V]) GetOrInsert(key K, value V) (V, bool) {
	s := sm.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.m[key]; ok {
		return old, true
	}
	s.m[key] = value
	return value, false
}

// Update applies fn to the current value for key (the zero value and
// false if absent) under the shard's lock, and stores the result. It is the
// building block for read-modify-write entries such as appending to a
// per-key predecessor list.
func (sm *ShardedMap[K, V]) Update(key K, fn func(old V, existed bool) V) {
	s := sm.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.m[key]
	s.m[key] = fn(old, ok)
}

// Get looks up key, returning its value and whether it was present.
func (sm *ShardedMap[K, V]) Get(key K) (V, bool) {
	s := sm.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.m[key]
	return v, ok
}

// Len returns the total number of entries across all shards. Callers must
// ensure no concurrent writer is active; it takes each shard's lock in turn
// rather than a single consistent snapshot.
func (sm *ShardedMap[K, V]) Len() int {
	n := 0
	for i := range sm.shards {
		sm.shards[i].mu.Lock()
		n += len(sm.shards[i].m)
		sm.shards[i].mu.Unlock()
	}
	return n
}

// Freeze converts sm into a FrozenMap, which serves concurrent reads without
// any locking. sm must not be used afterwards.
func (sm *ShardedMap[K, V]) Freeze() *FrozenMap[K, V] {
	fm := &FrozenMap[K, V]{hash: sm.hash, mask: sm.mask, shards: make([]map[K]V, len(sm.shards))}
	for i := range sm.shards {
		fm.shards[i] = sm.shards[i].m
	}
	return fm
}

// FrozenMap is the immutable counterpart to ShardedMap: once built, it is
// safe for unsynchronized concurrent reads from any number of goroutines.
type FrozenMap[K comparable, V any] struct {
	hash   HashFunc[K]
	mask   uint64
	shards []map[K]V
}

// Get looks up key, returning its value and whether it was present.
func (fm *FrozenMap[K, V]) Get(key K) (V, bool) {
	v, ok := fm.shards[fm.hash(key)&fm.mask][key]
	return v, ok
}

// Len returns the total number of entries across all shards.
func (fm *FrozenMap[K, V]) Len() int {
	n := 0
	for _, s := range fm.shards {
		n += len(s)
	}
	return n
}

// Range calls f for every (key, value) pair, stopping early if f returns
// false. Order is unspecified.
func (fm *FrozenMap[K, V]) Range(f func(K, V) bool) {
	for _, s := range fm.shards {
		for k, v := range s {
			if !f(k, v) {
				return
			}
		}
	}
}
