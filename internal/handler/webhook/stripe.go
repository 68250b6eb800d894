// Package webhook receives asynchronous payment verdicts from the payment
// provider and routes them into the ledger.
package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"

	"github.com/fieldhouse/ledger/internal/billing"
	"github.com/fieldhouse/ledger/internal/domain"
	"github.com/fieldhouse/ledger/internal/handler"
	"github.com/fieldhouse/ledger/internal/telemetry"
)

// StripeHandler handles Stripe webhook events. Signature verification is the
// gateway's job; it holds the signing secret.
type StripeHandler struct {
	gateway  billing.Gateway
	payments domain.PaymentProcessor
	metrics  *telemetry.BillingMetrics
	logger   zerolog.Logger
}

// NewStripeHandler creates a new Stripe webhook handler.
func NewStripeHandler(gateway billing.Gateway, payments domain.PaymentProcessor, metrics *telemetry.BillingMetrics, logger zerolog.Logger) *StripeHandler {
	return &StripeHandler{
		gateway:  gateway,
		payments: payments,
		metrics:  metrics,
		logger:   logger.With().Str("component", "stripe_webhook").Logger(),
	}
}

// HandleWebhook processes incoming Stripe webhook events.
//
// Stripe CLI testing:
//
//	stripe listen --forward-to localhost:8080/webhooks/stripe
//	stripe trigger payment_intent.succeeded
func (h *StripeHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return handler.ErrorResponse(c, domain.Invalid("webhook.stripe", "error reading request body"))
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if signature == "" {
		return handler.ErrorResponse(c, domain.Invalid("webhook.stripe", "missing Stripe-Signature header"))
	}

	if err := h.gateway.VerifyWebhookSignature(payload, signature); err != nil {
		h.logger.Warn().Err(err).Msg("webhook signature verification failed")
		return handler.ErrorResponse(c, domain.Errorf(domain.EUNAUTHORIZED, "webhook.stripe", "invalid signature"))
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return handler.ErrorResponse(c, domain.Invalid("webhook.stripe", "invalid JSON"))
	}

	h.logger.Info().Str("event_type", string(event.Type)).Str("event_id", event.ID).Msg("webhook event received")
	h.metrics.WebhookReceived.WithLabelValues(string(event.Type)).Inc()

	switch event.Type {
	case "payment_intent.succeeded":
		h.handlePaymentIntentSucceeded(c, event)

	case "payment_intent.payment_failed":
		h.handlePaymentIntentFailed(c, event)

	case "payment_intent.created", "payment_intent.canceled":
		// Monitoring only; the ledger acts on terminal verdicts.

	default:
		h.logger.Debug().Str("event_type", string(event.Type)).Msg("unhandled event type")
	}

	// Always acknowledge receipt; Stripe retries on non-2xx and a retried
	// succeeded event would double-finalize an attempt.
	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

// handlePaymentIntentSucceeded finalizes the attempt named in the intent's
// metadata as succeeded, which settles its invoice.
func (h *StripeHandler) handlePaymentIntentSucceeded(c echo.Context, event stripe.Event) {
	attemptID, ok := h.attemptFromEvent(event)
	if !ok {
		return
	}

	result, err := h.payments.FinalizePayment(c.Request().Context(), attemptID, domain.OutcomeSucceeded, "")
	if err != nil {
		h.logger.Error().Err(err).Str("attempt_id", attemptID.String()).Msg("failed to finalize succeeded payment")
		h.metrics.WebhookFailed.WithLabelValues(string(event.Type)).Inc()
		return
	}

	h.logger.Info().
		Str("attempt_id", attemptID.String()).
		Str("invoice_id", result.Attempt.InvoiceID.String()).
		Msg("payment finalized from webhook")
}

// handlePaymentIntentFailed finalizes the attempt as failed with the
// decline reason from the intent.
func (h *StripeHandler) handlePaymentIntentFailed(c echo.Context, event stripe.Event) {
	attemptID, ok := h.attemptFromEvent(event)
	if !ok {
		return
	}

	var intent stripe.PaymentIntent
	reason := "payment failed"
	if err := json.Unmarshal(event.Data.Raw, &intent); err == nil && intent.LastPaymentError != nil {
		reason = intent.LastPaymentError.Msg
	}

	if _, err := h.payments.FinalizePayment(c.Request().Context(), attemptID, domain.OutcomeFailed, reason); err != nil {
		h.logger.Error().Err(err).Str("attempt_id", attemptID.String()).Msg("failed to finalize failed payment")
		h.metrics.WebhookFailed.WithLabelValues(string(event.Type)).Inc()
		return
	}

	h.logger.Info().Str("attempt_id", attemptID.String()).Str("reason", reason).Msg("payment failure recorded from webhook")
}

// attemptFromEvent extracts the ledger attempt id from the payment intent's
// metadata. Intents opened outside this service carry no attempt id and are
// skipped.
func (h *StripeHandler) attemptFromEvent(event stripe.Event) (uuid.UUID, bool) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		h.logger.Error().Err(err).Str("event_id", event.ID).Msg("error parsing payment intent from webhook")
		h.metrics.WebhookFailed.WithLabelValues(string(event.Type)).Inc()
		return uuid.Nil, false
	}

	raw, ok := intent.Metadata["attempt_id"]
	if !ok {
		h.logger.Debug().Str("payment_intent_id", intent.ID).Msg("payment intent has no attempt id, skipping")
		return uuid.Nil, false
	}

	attemptID, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Error().Str("payment_intent_id", intent.ID).Str("attempt_id", raw).Msg("malformed attempt id in intent metadata")
		h.metrics.WebhookFailed.WithLabelValues(string(event.Type)).Inc()
		return uuid.Nil, false
	}

	return attemptID, true
}
