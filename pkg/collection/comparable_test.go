package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSlices(t *testing.T) {
	assert.Equal(t, 0, Compare([]testInt{1, 2}, []testInt{1, 2}))
	assert.Equal(t, -1, Compare([]testInt{1, 2}, []testInt{1, 3}))
	assert.Equal(t, 1, Compare([]testInt{1, 3}, []testInt{1, 2}))
	assert.Equal(t, -1, Compare([]testInt{1}, []testInt{1, 2}))
	assert.Equal(t, 1, Compare([]testInt{1, 2}, []testInt{1}))
}
