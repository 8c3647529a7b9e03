package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testInt int

func (a testInt) Cmp(b testInt) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestNewSortedSetDedupesAndSorts(t *testing.T) {
	s := NewSortedSet(testInt(3), testInt(1), testInt(2), testInt(1))
	assert.Equal(t, []testInt{1, 2, 3}, s.ToArray())
}

func TestSortedSetContainsAndFind(t *testing.T) {
	s := NewSortedSet(testInt(1), testInt(5), testInt(9))

	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(6))
	assert.Equal(t, uint(1), s.Find(5))
}

func TestSortedSetInsert(t *testing.T) {
	s := NewSortedSet(testInt(1), testInt(3))

	inserted := s.Insert(2)
	assert.Equal(t, []testInt{1, 2, 3}, inserted.ToArray())

	noop := inserted.Insert(2)
	assert.Equal(t, inserted, noop)
}

func TestSortedSetCmp(t *testing.T) {
	a := NewSortedSet(testInt(1), testInt(2))
	b := NewSortedSet(testInt(1), testInt(2))
	c := NewSortedSet(testInt(1), testInt(3))

	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, -1, a.Cmp(c))
}
