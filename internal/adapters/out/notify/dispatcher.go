package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"market/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 5 * time.Second

// AsyncDispatcher hands each notification to a transport in its own
// goroutine and returns immediately. Failures are logged and counted, never
// returned. The request context is detached so that the send outlives the
// HTTP request.
type AsyncDispatcher struct {
	next      ports.Notifier
	transport string
	timeout   time.Duration
	counter   *prometheus.CounterVec
	logger    *slog.Logger

	wg sync.WaitGroup
}

func NewAsyncDispatcher(
	next ports.Notifier,
	transport string,
	timeout time.Duration,
	counter *prometheus.CounterVec,
	logger *slog.Logger,
) *AsyncDispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &AsyncDispatcher{
		next:      next,
		transport: transport,
		timeout:   timeout,
		counter:   counter,
		logger:    logger.With("component", "notification_dispatcher", "transport", transport),
	}
}

func (d *AsyncDispatcher) Notify(ctx context.Context, notification ports.StatusNotification) error {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.next.Notify(sendCtx, notification); err != nil {
			d.counter.WithLabelValues(d.transport, "failed").Inc()
			d.logger.ErrorContext(sendCtx, "Failed to send status notification",
				"order_id", notification.OrderID,
				"delivery_status", notification.Status,
				"error", err,
			)
			return
		}

		d.counter.WithLabelValues(d.transport, "sent").Inc()
		d.logger.DebugContext(sendCtx, "Status notification sent",
			"order_id", notification.OrderID,
			"delivery_status", notification.Status,
		)
	}()

	return nil
}

// Wait blocks until every in-flight notification is done. It is called on
// shutdown before the transport is closed.
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}
