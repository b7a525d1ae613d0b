package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidTrend_Current_PassesThrough(t *testing.T) {
	m := NewMidTrend(Current)
	assert.Equal(t, Long, m.Update(Long))
	assert.Equal(t, Short, m.Update(Short))
	assert.Equal(t, 1, m.Maturity())
}

func TestMidTrend_Previous_DelaysByOne(t *testing.T) {
	m := NewMidTrend(Previous)
	assert.Equal(t, 2, m.Maturity())
	assert.Equal(t, None, m.Update(Long))
	assert.Equal(t, Long, m.Update(Short))
	assert.Equal(t, Short, m.Update(Long))
}

func TestMidTrend_Ignore_SuppressesUntilFirstTransition(t *testing.T) {
	m := NewMidTrend(Ignore)
	assert.Equal(t, None, m.Update(Long))
	assert.Equal(t, None, m.Update(Long))
	assert.Equal(t, None, m.Update(Long))
	assert.Equal(t, Short, m.Update(Short))
	assert.Equal(t, Long, m.Update(Long))
}

func TestMidTrend_Ignore_DisabledPermanentlyAfterTransition(t *testing.T) {
	m := NewMidTrend(Ignore)
	m.Update(Long)
	m.Update(Short)
	assert.Equal(t, Long, m.Update(Long))
	assert.Equal(t, Short, m.Update(Short))
}

func TestMidTrend_Mature(t *testing.T) {
	m := NewMidTrend(Previous)
	assert.False(t, m.Mature())
	m.Update(Long)
	assert.False(t, m.Mature())
	m.Update(Long)
	assert.True(t, m.Mature())
}
