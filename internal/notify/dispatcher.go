package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/models"
)

const (
	// queueSize bounds how many undelivered claims may wait for the
	// gateway before new codes are dropped instead of blocking the
	// request path.
	queueSize = 64

	// deliveryTimeout bounds a single gateway call made by the worker.
	deliveryTimeout = 30 * time.Second
)

// Dispatcher decouples claim-code delivery from the request path: opening a
// claim only enqueues the codes, and a background worker drains the queue
// against the real gateway. A slow or unreachable provider therefore never
// holds up the public claim endpoint.
//
// Dispatcher implements [Notifier] on the producer side and
// [workers.Worker] on the consumer side.
type Dispatcher struct {
	notifier Notifier
	queue    chan models.Claim
	done     chan struct{}
	logger   *logger.Logger
}

// NewDispatcher wraps notifier with an asynchronous delivery queue. Call
// Run to start the worker and Close to drain and stop it.
func NewDispatcher(notifier Notifier, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		queue:    make(chan models.Claim, queueSize),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// SendClaimCodes enqueues the claim for background delivery. A full queue
// rejects the claim rather than blocking; the caller already treats
// delivery failure as non-fatal.
func (d *Dispatcher) SendClaimCodes(_ context.Context, claim models.Claim) error {
	select {
	case d.queue <- claim:
		return nil
	default:
		return fmt.Errorf("delivery queue is full, codes for claim %s dropped", claim.ID)
	}
}

// Run starts the delivery worker and returns immediately.
func (d *Dispatcher) Run() {
	go d.loop()
}

func (d *Dispatcher) loop() {
	defer close(d.done)

	for claim := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		if err := d.notifier.SendClaimCodes(ctx, claim); err != nil {
			d.logger.Warn().Err(err).Str("claim_id", claim.ID).Msg("claim code delivery failed")
		}
		cancel()
	}
}

// Close stops accepting new claims, waits for the queue to drain, and stops
// the worker. Only call after Run.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
