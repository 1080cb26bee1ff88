package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert.NotNil(t, Default())

	l, err := NewLogWithOptions(&Options{Level: "debug", Format: "json"})
	require.NoError(t, err)

	prev := Default()
	SetDefault(l)
	assert.Same(t, l, Default())

	SetDefault(nil)
	assert.Same(t, l, Default())

	SetDefault(prev)
}
