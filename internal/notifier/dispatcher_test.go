package notifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	kind     EventType
	orderID  string
	previous entities.OrderStatus
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sent
	err  error
}

func (s *recordingSender) SendOrderConfirmation(_ context.Context, order entities.Order) error {
	return s.record(sent{kind: EventOrderConfirmation, orderID: order.ID})
}

func (s *recordingSender) SendOrderStatusUpdate(_ context.Context, order entities.Order, previous entities.OrderStatus) error {
	return s.record(sent{kind: EventOrderStatusUpdate, orderID: order.ID, previous: previous})
}

func (s *recordingSender) record(e sent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, e)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(queue int) config.Notifier {
	return config.Notifier{Workers: 2, QueueSize: queue, SendTimeout: time.Second}
}

func TestDispatcher_Delivers(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(testLogger(), sender, testConfig(16))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- d.Start(ctx) }()

	d.NotifyOrderConfirmation(entities.Order{ID: "order-1"})
	d.NotifyStatusUpdate(entities.Order{ID: "order-1", Status: entities.StatusConfirmed}, entities.StatusPending)

	assert.Eventually(t, func() bool { return sender.count() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.ElementsMatch(t, []sent{
		{kind: EventOrderConfirmation, orderID: "order-1"},
		{kind: EventOrderStatusUpdate, orderID: "order-1", previous: entities.StatusPending},
	}, sender.sent)
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(testLogger(), sender, testConfig(1))

	// Воркеры ещё не запущены, поэтому второе уведомление не помещается в очередь.
	d.NotifyOrderConfirmation(entities.Order{ID: "order-1"})
	d.NotifyOrderConfirmation(entities.Order{ID: "order-2"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Start(ctx))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "order-1", sender.sent[0].orderID)
}

func TestDispatcher_SenderErrorIsSwallowed(t *testing.T) {
	sender := &recordingSender{err: errors.New("broker unavailable")}
	d := NewDispatcher(testLogger(), sender, testConfig(4))

	d.NotifyStatusUpdate(entities.Order{ID: "order-1"}, entities.StatusPending)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Start(ctx))
	assert.Equal(t, 0, sender.count())
	assert.Empty(t, d.jobs)
}

func TestDispatcher_DropsAfterStop(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(testLogger(), sender, testConfig(4))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Start(ctx))

	d.NotifyOrderConfirmation(entities.Order{ID: "order-1"})
	assert.Empty(t, d.jobs)
}

func TestDispatcher_EnqueueRacingStopIsAccounted(t *testing.T) {
	const total = 200

	dropped := notificationsDropped.WithLabelValues(string(EventOrderConfirmation))
	droppedBefore := testutil.ToFloat64(dropped)
	queuedBefore := testutil.ToFloat64(queueLength)

	sender := &recordingSender{}
	d := NewDispatcher(testLogger(), sender, testConfig(total))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error)
	go func() { done <- d.Start(ctx) }()

	var wg sync.WaitGroup
	for i := range total {
		wg.Go(func() {
			d.NotifyOrderConfirmation(entities.Order{ID: fmt.Sprintf("order-%d", i)})
		})
		if i == total/2 {
			cancel()
		}
	}
	wg.Wait()
	require.NoError(t, <-done)

	// каждое уведомление либо отправлено, либо посчитано как потерянное
	lost := int(testutil.ToFloat64(dropped) - droppedBefore)
	assert.Equal(t, total, sender.count()+lost)
	assert.Equal(t, queuedBefore, testutil.ToFloat64(queueLength))
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(testLogger(), &recordingSender{}, testConfig(4))

	d.close()
	assert.NotPanics(t, d.close)

	d.NotifyStatusUpdate(entities.Order{ID: "order-1"}, entities.StatusPending)
	assert.Empty(t, d.jobs)
}
