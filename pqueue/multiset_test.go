package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qcompiler/telesabre/pqueue"
)

func TestMultiset_EmptyHasNoMin(t *testing.T) {
	m := pqueue.New()
	_, ok := m.Min()
	assert.False(t, ok)
}

func TestMultiset_AddOrUpdate_MinTracksLowestPriority(t *testing.T) {
	m := pqueue.New()
	m.AddOrUpdate(1, 5.0)
	m.AddOrUpdate(2, 2.0)
	m.AddOrUpdate(3, 8.0)

	item, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, 2, item)
	p, ok := m.MinPriority()
	assert.True(t, ok)
	assert.Equal(t, 2.0, p)
}

func TestMultiset_Update_MovesBucketAndReseeksMin(t *testing.T) {
	m := pqueue.New()
	m.AddOrUpdate(1, 1.0)
	m.AddOrUpdate(2, 5.0)
	m.AddOrUpdate(1, 9.0) // 1 moves out of the min bucket; 2 becomes min

	item, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, 2, item)
}

func TestMultiset_Remove_MinItem_RescansRemainingBuckets(t *testing.T) {
	m := pqueue.New()
	m.AddOrUpdate(1, 1.0)
	m.AddOrUpdate(2, 5.0)
	m.Remove(1)

	item, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, 2, item)
}

func TestMultiset_Remove_LastItem_EmptiesMultiset(t *testing.T) {
	m := pqueue.New()
	m.AddOrUpdate(1, 1.0)
	m.Remove(1)
	_, ok := m.Min()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMultiset_Remove_Nonexistent_IsNoop(t *testing.T) {
	m := pqueue.New()
	m.AddOrUpdate(1, 1.0)
	m.Remove(99)
	assert.Equal(t, 1, m.Len())
}

func TestMultiset_Clone_IsIndependent(t *testing.T) {
	m := pqueue.New()
	m.AddOrUpdate(1, 1.0)
	clone := m.Clone()
	m.AddOrUpdate(2, 0.5)

	_, ok := clone.Min()
	assert.True(t, ok)
	item, _ := clone.Min()
	assert.Equal(t, 1, item)
	assert.Equal(t, 1, clone.Len())
	assert.Equal(t, 2, m.Len())
}

func TestMultiset_SharedPriorityBucket(t *testing.T) {
	m := pqueue.New()
	m.AddOrUpdate(1, 3.0)
	m.AddOrUpdate(2, 3.0)
	m.Remove(1)
	item, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, 2, item)
}
