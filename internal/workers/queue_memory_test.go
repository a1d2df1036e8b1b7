package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMailQueue_EnqueueConsume(t *testing.T) {
	q := NewMemoryMailQueue(4)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, models.MailJob{ID: "1"}))
	require.NoError(t, q.Enqueue(ctx, models.MailJob{ID: "2"}))
	require.NoError(t, q.Close())

	var got []string
	err := q.Consume(ctx, func(_ context.Context, job models.MailJob) error {
		got = append(got, job.ID)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestMemoryMailQueue_Full(t *testing.T) {
	q := NewMemoryMailQueue(1)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, models.MailJob{ID: "1"}))
	assert.ErrorIs(t, q.Enqueue(ctx, models.MailJob{ID: "2"}), ErrQueueFull)
}

func TestMemoryMailQueue_EnqueueAfterClose(t *testing.T) {
	q := NewMemoryMailQueue(1)
	require.NoError(t, q.Close())
	require.NoError(t, q.Close())

	assert.ErrorIs(t, q.Enqueue(context.Background(), models.MailJob{}), ErrQueueClosed)
}

func TestMemoryMailQueue_EnqueueCanceledContext(t *testing.T) {
	q := NewMemoryMailQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, q.Enqueue(ctx, models.MailJob{}), context.Canceled)
}

func TestMemoryMailQueue_ConsumeStopsOnCancel(t *testing.T) {
	q := NewMemoryMailQueue(1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- q.Consume(ctx, func(context.Context, models.MailJob) error { return nil })
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Consume did not return after cancel")
	}
}

func TestMemoryMailQueue_HandlerErrorDoesNotStopConsumer(t *testing.T) {
	q := NewMemoryMailQueue(2)
	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, models.MailJob{ID: "bad"}))
	require.NoError(t, q.Enqueue(ctx, models.MailJob{ID: "good"}))
	require.NoError(t, q.Close())

	calls := 0
	err := q.Consume(ctx, func(_ context.Context, job models.MailJob) error {
		calls++
		if job.ID == "bad" {
			return assert.AnError
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestNewMailQueue(t *testing.T) {
	q, err := NewMailQueue(configWorkers("memory"), nil)
	require.NoError(t, err)
	assert.IsType(t, &memoryMailQueue{}, q)

	_, err = NewMailQueue(configWorkers("kafka"), nil)
	assert.ErrorIs(t, err, ErrUnknownQueue)
}
