package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
)

type Sender interface {
	SendOrderConfirmation(ctx context.Context, order entities.Order) error
	SendOrderStatusUpdate(ctx context.Context, order entities.Order, previous entities.OrderStatus) error
}

type job struct {
	kind    EventType
	orderID string
	send    func(ctx context.Context) error
}

// Dispatcher отправляет уведомления в фоне. Вызывающий код никогда не ждёт отправки
// и не получает её ошибок: при переполнении очереди уведомление теряется.
type Dispatcher struct {
	logger  *slog.Logger
	sender  Sender
	jobs    chan job
	workers int
	timeout time.Duration

	// mu закрывает приём: после closed в jobs никто не пишет и канал закрыт.
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *slog.Logger, sender Sender, cfg config.Notifier) *Dispatcher {
	return &Dispatcher{
		logger:  logger.With(slog.String("service", "notifier")),
		sender:  sender,
		jobs:    make(chan job, cfg.QueueSize),
		workers: max(cfg.Workers, 1),
		timeout: cfg.SendTimeout,
	}
}

func (d *Dispatcher) NotifyOrderConfirmation(order entities.Order) {
	d.enqueue(job{
		kind:    EventOrderConfirmation,
		orderID: order.ID,
		send: func(ctx context.Context) error {
			return d.sender.SendOrderConfirmation(ctx, order)
		},
	})
}

func (d *Dispatcher) NotifyStatusUpdate(order entities.Order, previous entities.OrderStatus) {
	d.enqueue(job{
		kind:    EventOrderStatusUpdate,
		orderID: order.ID,
		send: func(ctx context.Context) error {
			return d.sender.SendOrderStatusUpdate(ctx, order, previous)
		},
	})
}

func (d *Dispatcher) enqueue(j job) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(j, "dispatcher stopped")
		return
	}

	select {
	case d.jobs <- j:
		queueLength.Inc()
	default:
		d.drop(j, "queue is full")
	}
}

func (d *Dispatcher) drop(j job, reason string) {
	notificationsDropped.WithLabelValues(string(j.kind)).Inc()
	d.logger.Warn("notification dropped",
		slog.String("type", string(j.kind)),
		slog.String("order_id", j.orderID),
		slog.String("reason", reason),
	)
}

// Start запускает воркеры и блокируется до отмены ctx. После отмены приём
// закрывается, а уже принятые уведомления дописываются.
func (d *Dispatcher) Start(ctx context.Context) error {
	var wg sync.WaitGroup
	for range d.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.work()
		}()
	}

	<-ctx.Done()
	d.close()
	wg.Wait()
	return nil
}

// close ждёт завершения начатых enqueue, поэтому каждое уведомление
// либо попадает в канал до его закрытия, либо учитывается как потерянное.
func (d *Dispatcher) close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
}

func (d *Dispatcher) work() {
	for j := range d.jobs {
		d.process(j)
	}
}

func (d *Dispatcher) process(j job) {
	queueLength.Dec()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := j.send(ctx); err != nil {
		notificationsFailed.WithLabelValues(string(j.kind)).Inc()
		d.logger.Error("failed to send notification",
			slog.String("type", string(j.kind)),
			slog.String("order_id", j.orderID),
			slog.Any("error", err),
		)
		return
	}

	notificationsSent.WithLabelValues(string(j.kind)).Inc()
	d.logger.Debug("notification sent", slog.String("type", string(j.kind)), slog.String("order_id", j.orderID))
}
