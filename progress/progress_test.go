package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPushThenNextFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Phase: Started})
	q.Push(Event{Phase: CreatingDirectory})

	ev1, ok := q.Next(context.Background())
	require.True(t, ok)
	require.Equal(t, Started, ev1.Phase)

	ev2, ok := q.Next(context.Background())
	require.True(t, ok)
	require.Equal(t, CreatingDirectory, ev2.Phase)
}

func TestPushNeverBlocksProducerWithNoConsumer(t *testing.T) {
	q := NewQueue()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			q.Push(Event{Phase: ProcessingSheet, SheetIndex: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Push blocked with no consumer draining")
	}
}

func TestNextBlocksUntilPush(t *testing.T) {
	q := NewQueue()
	result := make(chan Event, 1)
	go func() {
		ev, ok := q.Next(context.Background())
		if ok {
			result <- ev
		}
	}()

	time.Sleep(20 * time.Millisecond)
	q.Push(Event{Phase: Completed})

	select {
	case ev := <-result:
		require.Equal(t, Completed, ev.Phase)
	case <-time.After(time.Second):
		t.Fatal("Next did not unblock after Push")
	}
}

func TestNextRespectsContextCancellation(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan bool, 1)
	go func() {
		_, ok := q.Next(ctx)
		result <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case ok := <-result:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Next did not unblock after cancellation")
	}
}

func TestCloseDrainsRemainingThenReportsDone(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Phase: Completed})
	q.Close()

	ev, ok := q.Next(context.Background())
	require.True(t, ok)
	require.Equal(t, Completed, ev.Phase)

	_, ok = q.Next(context.Background())
	require.False(t, ok)
}

func TestPushAfterCloseIsSilentNoOp(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Push(Event{Phase: Failed})

	_, ok := q.Next(context.Background())
	require.False(t, ok)
}
