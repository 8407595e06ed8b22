package email

import (
	"context"
	"log/slog"
	"sync"
)

// Dispatcher sends mail off the request path. Delivery errors are logged and
// never reach the caller.
type Dispatcher struct {
	EmailService
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewDispatcher(svc EmailService, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{EmailService: svc, logger: logger}
}

// Go runs send in its own goroutine. kind only labels the log line.
func (d *Dispatcher) Go(ctx context.Context, kind, to string, send func(EmailService) error) {
	if d == nil || d.EmailService == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := send(d.EmailService); err != nil {
			d.logger.ErrorContext(ctx, "failed to send email",
				slog.String("kind", kind),
				slog.String("to", to),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until every dispatched send has returned.
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}
