// Package pqueue implements a bucket-indexed priority multiset: many items
// share a priority (a bucket), the current minimum priority is cached, and
// add/remove/min are O(1) except when the minimum bucket empties and a new
// minimum must be found by scanning the remaining bucket keys.
//
// Grounded on the Python prototype's SparseBucketPriorityQueue: same
// bucket/item_to_priority/min_priority bookkeeping, translated to Go maps
// and sets (map[int]struct{}).
package pqueue

// Multiset is a priority multiset of int items with float64 priorities.
//
// Not safe for concurrent use; not reentrant under mutation during
// iteration. Use Clone to take an isolated snapshot before speculative
// mutation.
type Multiset struct {
	buckets      map[float64]map[int]struct{}
	itemPriority map[int]float64
	minPriority  float64
	minValid     bool
}

// New returns an empty Multiset.
func New() *Multiset {
	return &Multiset{
		buckets:      make(map[float64]map[int]struct{}),
		itemPriority: make(map[int]float64),
	}
}

// AddOrUpdate inserts item with priority, or moves it from its prior
// bucket if already present.
func (m *Multiset) AddOrUpdate(item int, priority float64) {
	if old, ok := m.itemPriority[item]; ok {
		m.removeFromBucket(item, old)
	}
	bucket, ok := m.buckets[priority]
	if !ok {
		bucket = make(map[int]struct{})
		m.buckets[priority] = bucket
	}
	bucket[item] = struct{}{}
	m.itemPriority[item] = priority

	if !m.minValid || priority < m.minPriority {
		m.minPriority = priority
		m.minValid = true
	}
}

// Remove deletes item if present; a no-op otherwise.
func (m *Multiset) Remove(item int) {
	priority, ok := m.itemPriority[item]
	if !ok {
		return
	}
	m.removeFromBucket(item, priority)
	delete(m.itemPriority, item)
}

func (m *Multiset) removeFromBucket(item int, priority float64) {
	bucket := m.buckets[priority]
	delete(bucket, item)
	if len(bucket) == 0 {
		delete(m.buckets, priority)
		if m.minValid && priority == m.minPriority {
			m.rescanMin()
		}
	}
}

func (m *Multiset) rescanMin() {
	m.minValid = false
	for p := range m.buckets {
		if !m.minValid || p < m.minPriority {
			m.minPriority = p
			m.minValid = true
		}
	}
}

// Min returns an arbitrary item at the minimum priority, and whether the
// multiset is non-empty.
func (m *Multiset) Min() (item int, ok bool) {
	if !m.minValid {
		return 0, false
	}
	for it := range m.buckets[m.minPriority] {
		return it, true
	}
	return 0, false
}

// MinPriority returns the current minimum priority, and whether the
// multiset is non-empty.
func (m *Multiset) MinPriority() (p float64, ok bool) {
	return m.minPriority, m.minValid
}

// Len returns the number of items currently held.
func (m *Multiset) Len() int {
	return len(m.itemPriority)
}

// Clone returns a deep, independent copy of m.
func (m *Multiset) Clone() *Multiset {
	c := &Multiset{
		buckets:      make(map[float64]map[int]struct{}, len(m.buckets)),
		itemPriority: make(map[int]float64, len(m.itemPriority)),
		minPriority:  m.minPriority,
		minValid:     m.minValid,
	}
	for p, items := range m.buckets {
		bucket := make(map[int]struct{}, len(items))
		for it := range items {
			bucket[it] = struct{}{}
		}
		c.buckets[p] = bucket
	}
	for it, p := range m.itemPriority {
		c.itemPriority[it] = p
	}
	return c
}
