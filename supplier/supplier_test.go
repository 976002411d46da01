package supplier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/vid2ascii"
)

func frame(width int) *vid2ascii.FrameBuffer {
	return vid2ascii.NewFrameBuffer(width, 1, make([]byte, width*4))
}

func TestPublishThenNext(t *testing.T) {
	s := New()
	f := frame(4)
	s.Publish(f)

	got, ok := s.Next(context.Background())
	require.True(t, ok)
	assert.Same(t, f, got)
}

func TestOverwriteKeepsLatestOnly(t *testing.T) {
	s := New()
	s.Publish(frame(1))
	s.Publish(frame(2))
	latest := frame(3)
	s.Publish(latest)

	got, ok := s.Next(context.Background())
	require.True(t, ok)
	assert.Same(t, latest, got, "consumer must see the newest frame")

	stats := s.Stats()
	assert.Equal(t, uint64(3), stats.Published)
	assert.Equal(t, uint64(2), stats.Dropped)
	assert.Equal(t, uint64(1), stats.Consumed)
}

func TestNextBlocksUntilPublish(t *testing.T) {
	s := New()
	f := frame(4)

	done := make(chan *vid2ascii.FrameBuffer)
	go func() {
		got, _ := s.Next(context.Background())
		done <- got
	}()

	// Give the consumer a moment to block, then publish.
	time.Sleep(20 * time.Millisecond)
	s.Publish(f)

	select {
	case got := <-done:
		assert.Same(t, f, got)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake after Publish")
	}
}

func TestNextHonorsContextCancel(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		_, ok := s.Next(ctx)
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake on context cancellation")
	}
}

func TestCloseWakesConsumer(t *testing.T) {
	s := New()

	done := make(chan bool)
	go func() {
		_, ok := s.Next(context.Background())
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	s.Close()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake on Close")
	}
}

func TestCloseDrainsPendingFrame(t *testing.T) {
	s := New()
	f := frame(4)
	s.Publish(f)
	s.Close()

	// The frame already in the slot is still delivered.
	got, ok := s.Next(context.Background())
	require.True(t, ok)
	assert.Same(t, f, got)

	// After draining, the closed supplier reports shutdown.
	_, ok = s.Next(context.Background())
	assert.False(t, ok)
}

func TestPublishAfterCloseIsNoOp(t *testing.T) {
	s := New()
	s.Close()
	s.Publish(frame(4))

	stats := s.Stats()
	assert.Zero(t, stats.Published)

	_, ok := s.Next(context.Background())
	assert.False(t, ok)
}

func TestPublishNilIsNoOp(t *testing.T) {
	s := New()
	s.Publish(nil)
	assert.Zero(t, s.Stats().Published)
}
