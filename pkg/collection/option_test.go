package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionSome(t *testing.T) {
	o := Some(42)

	assert.True(t, o.HasValue())
	assert.Equal(t, 42, o.Unwrap())
}

func TestOptionNone(t *testing.T) {
	o := None[int]()
	assert.False(t, o.HasValue())
}

func TestOptionUnwrapPanicsWhenEmpty(t *testing.T) {
	assert.Panics(t, func() {
		None[string]().Unwrap()
	})
}
