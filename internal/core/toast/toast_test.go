package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_AddPreservesOrder(t *testing.T) {
	c := NewChannel(0)

	c.Add("first", LevelInfo)
	c.Add("second", LevelSuccess)
	c.Add("third", LevelError)

	notices := c.Notices()
	require.Len(t, notices, 3)
	assert.Equal(t, "first", notices[0].Message)
	assert.Equal(t, "second", notices[1].Message)
	assert.Equal(t, "third", notices[2].Message)
}

func TestChannel_UniqueIDs(t *testing.T) {
	c := NewChannel(0)

	seen := make(map[string]bool)
	for range 100 {
		id := c.Add("msg", LevelInfo)
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate notice id %s", id)
		seen[id] = true
	}
}

func TestChannel_Remove(t *testing.T) {
	c := NewChannel(0)
	a := c.Add("a", LevelInfo)
	b := c.Add("b", LevelInfo)

	c.Remove(a)

	notices := c.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, b, notices[0].ID)
}

func TestChannel_RemoveUnknownIsNoop(t *testing.T) {
	c := NewChannel(0)
	c.Add("a", LevelInfo)

	c.Remove("nope")

	assert.Len(t, c.Notices(), 1)
}

func TestChannel_Clear(t *testing.T) {
	c := NewChannel(0)
	c.Add("a", LevelInfo)
	c.Add("b", LevelError)

	c.Clear()

	assert.Empty(t, c.Notices())
}

func TestChannel_Prune(t *testing.T) {
	c := NewChannel(time.Second)
	c.Add("old", LevelInfo)
	c.Add("new", LevelInfo)

	require.Len(t, c.Notices(), 2)

	c.Prune(time.Now())
	assert.Len(t, c.Notices(), 2, "nothing expired yet")

	c.Prune(time.Now().Add(2 * time.Second))
	assert.Empty(t, c.Notices())
}

func TestChannel_DefaultDuration(t *testing.T) {
	c := NewChannel(0)
	c.Success("done")

	notices := c.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, DefaultDuration, notices[0].Duration)
	assert.Equal(t, LevelSuccess, notices[0].Level)
}

func TestChannel_ConfiguredDuration(t *testing.T) {
	c := NewChannel(2 * time.Second)
	c.Error("oops")

	notices := c.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, 2*time.Second, notices[0].Duration)
	assert.Equal(t, LevelError, notices[0].Level)
}
