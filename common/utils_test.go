package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "fallback", Coalesce("", "fallback"))
	assert.Equal(t, "value", Coalesce("value", "fallback"))
	assert.Equal(t, 800, Coalesce(0, 800))
	assert.Equal(t, 1024, Coalesce(1024, 800))
	assert.Equal(t, 0, Coalesce(0, 0))
}
