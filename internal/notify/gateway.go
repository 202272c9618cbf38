package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/idfinder-gh/idfinder/internal/config"
	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/models"
)

// claimMessage is the JSON payload posted to the delivery gateway. The
// gateway decides the channel from which contact fields are present.
type claimMessage struct {
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	ReferenceCode string `json:"referenceCode"`
	OTPCode       string `json:"otpCode"`
	ExpiresAt     string `json:"expiresAt"`
}

// gatewayNotifier implements [Notifier] against an HTTP messaging gateway.
type gatewayNotifier struct {
	client *resty.Client
	logger *logger.Logger
}

// NewGatewayNotifier constructs a [Notifier] posting to the gateway described
// by cfg. When cfg.GatewayURL is empty a [NopNotifier] is returned instead,
// so callers never need to special-case a missing gateway.
func NewGatewayNotifier(cfg config.Notify, log *logger.Logger) Notifier {
	if cfg.GatewayURL == "" {
		log.Warn().Msg("no delivery gateway configured, claim codes will not be sent")
		return NewNopNotifier()
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.GatewayURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		cli.SetHeader("X-Api-Key", cfg.APIKey)
	}

	return &gatewayNotifier{client: cli, logger: log}
}

// SendClaimCodes posts the claim's codes to the gateway's /messages endpoint.
// Any non-2xx response is an error; the caller decides whether that aborts
// the surrounding operation.
func (g *gatewayNotifier) SendClaimCodes(ctx context.Context, claim models.Claim) error {
	log := logger.FromContext(ctx)

	msg := claimMessage{
		Email:         claim.ContactEmail,
		Phone:         claim.ContactPhone,
		ReferenceCode: claim.ReferenceCode,
		OTPCode:       claim.OTPCode,
		ExpiresAt:     claim.OTPExpiresAt.Format(time.RFC3339),
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post("/messages")
	if err != nil {
		log.Err(err).
			Str("func", "*gatewayNotifier.SendClaimCodes").
			Str("claim_id", claim.ID).
			Msg("failed to reach delivery gateway")
		return fmt.Errorf("delivery gateway request: %w", err)
	}

	if resp.IsError() {
		log.Error().
			Str("func", "*gatewayNotifier.SendClaimCodes").
			Str("claim_id", claim.ID).
			Int("status", resp.StatusCode()).
			Msg("delivery gateway rejected message")
		return fmt.Errorf("delivery gateway responded with status %d", resp.StatusCode())
	}

	return nil
}
