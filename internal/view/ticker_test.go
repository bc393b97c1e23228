package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicker_DefaultInterval(t *testing.T) {
	assert.Equal(t, DefaultRefreshInterval, NewTicker(0).Interval())
	assert.Equal(t, time.Second, NewTicker(time.Second).Interval())
}

func TestTicker_RestartOrphansPreviousChain(t *testing.T) {
	ticker := NewTicker(time.Millisecond)

	first := ticker.Restart()
	second := ticker.Restart()
	require.NotNil(t, first)
	require.NotNil(t, second)

	stale, ok := first().(TickMsg)
	require.True(t, ok)
	live, ok := second().(TickMsg)
	require.True(t, ok)

	assert.False(t, ticker.Accept(stale))
	assert.True(t, ticker.Accept(live))
}

func TestTicker_NextKeepsGeneration(t *testing.T) {
	ticker := NewTicker(time.Millisecond)
	ticker.Restart()
	gen := ticker.Generation()

	msg, ok := ticker.Next()().(TickMsg)
	require.True(t, ok)
	assert.Equal(t, gen, msg.Gen)
	assert.True(t, ticker.Accept(msg))
}

func TestTicker_Stop(t *testing.T) {
	ticker := NewTicker(time.Millisecond)
	msg := ticker.Restart()().(TickMsg)

	ticker.Stop()
	assert.False(t, ticker.Accept(msg))
}
