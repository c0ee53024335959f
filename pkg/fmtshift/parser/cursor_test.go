package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineCursor(t *testing.T) {
	c := newLineCursor([]string{"a", "b", "c"})

	assert.False(t, c.Done())
	assert.Equal(t, "a", c.Peek())
	assert.Equal(t, "a", c.Next())
	assert.Equal(t, 1, c.Pos())

	c.Advance(5)
	assert.True(t, c.Done())
	assert.Equal(t, 3, c.Pos())
	assert.Equal(t, "", c.Peek())
	assert.Equal(t, "", c.Next())
}

func TestLineCursorEmpty(t *testing.T) {
	c := newLineCursor(nil)
	assert.True(t, c.Done())
	assert.Equal(t, "", c.Peek())
}
