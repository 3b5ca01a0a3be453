package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishQueuesJSON(t *testing.T) {
	h := NewHub()
	require.NoError(t, h.Publish(map[string]any{"type": "change", "seq": 3}))

	msg := <-h.Broadcast
	var got map[string]any
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, "change", got["type"])
	assert.Equal(t, 3.0, got["seq"])
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	h := NewHub()
	for i := 0; i < cap(h.Broadcast)+5; i++ {
		require.NoError(t, h.Publish(i))
	}
	assert.Len(t, h.Broadcast, cap(h.Broadcast))
}

func TestStopEndsRun(t *testing.T) {
	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()
	h.Stop()
	<-done
	assert.Equal(t, 0, h.ClientCount())
}

func TestJoinAndLeaveAfterStopReturn(t *testing.T) {
	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()
	h.Leave(nil)
	h.Stop()
	<-done

	returned := make(chan bool)
	go func() {
		joined := h.Join(nil)
		h.Leave(nil)
		returned <- joined
	}()
	select {
	case joined := <-returned:
		assert.False(t, joined)
	case <-time.After(time.Second):
		t.Fatal("Join/Leave blocked after Stop")
	}
}

func TestPublishRejectsUnencodable(t *testing.T) {
	assert.Error(t, NewHub().Publish(func() {}))
}
