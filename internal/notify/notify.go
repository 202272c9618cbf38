// Package notify delivers claim codes to claimants through an external
// messaging gateway. The service layer only depends on the [Notifier]
// interface; delivery failures never abort the claim flow.
package notify

import (
	"context"

	"github.com/idfinder-gh/idfinder/models"
)

// Notifier hands claim codes to an out-of-band delivery channel.
type Notifier interface {
	// SendClaimCodes delivers the reference and one-time codes of a freshly
	// opened claim to the claimant's contact channel.
	SendClaimCodes(ctx context.Context, claim models.Claim) error
}

// NopNotifier discards every message. Used when no gateway is configured
// and in tests.
type NopNotifier struct {
}

func NewNopNotifier() *NopNotifier {
	return &NopNotifier{}
}

// SendClaimCodes implements [Notifier] as a no-op.
func (n *NopNotifier) SendClaimCodes(ctx context.Context, claim models.Claim) error {
	return nil
}
