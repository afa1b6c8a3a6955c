// Package cache provides the memoization used by layout nodes.
//
// A layout pass may ask a node for its size more than once with the same
// inputs. Nodes keep the last answer in a [Slot] keyed by everything the
// answer depends on (container extent, content and style, compared by
// value); a query with a different key recomputes and replaces the slot,
// which is how a changed container or content invalidates it.
//
// [Hash] fingerprints raw input bytes, such as a decoded document.
package cache

// Slot is a single-entry memo. The zero value is empty and ready to use.
//
// A Slot is owned by one node and is not safe for concurrent use.
type Slot[K comparable, V any] struct {
	key    K
	value  V
	filled bool
	stats  Stats
}

// Stats counts lookups against a slot.
type Stats struct {
	Hits   int
	Misses int
}

// Get returns the stored value if the slot holds key.
func (s *Slot[K, V]) Get(key K) (V, bool) {
	if s.filled && s.key == key {
		s.stats.Hits++
		return s.value, true
	}
	s.stats.Misses++
	var zero V
	return zero, false
}

// Set replaces the slot's contents.
func (s *Slot[K, V]) Set(key K, value V) {
	s.key, s.value, s.filled = key, value, true
}

// GetOrCompute returns the value for key, calling compute on a miss.
// A failed computation leaves the slot empty.
func (s *Slot[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		s.Reset()
		return v, err
	}
	s.Set(key, v)
	return v, nil
}

// Last returns the most recently stored value regardless of key.
func (s *Slot[K, V]) Last() (V, bool) {
	return s.value, s.filled
}

// Reset empties the slot. Counters are kept.
func (s *Slot[K, V]) Reset() {
	var zeroK K
	var zeroV V
	s.key, s.value, s.filled = zeroK, zeroV, false
}

// Stats returns the hit and miss counts since the slot was created.
func (s *Slot[K, V]) Stats() Stats { return s.stats }
