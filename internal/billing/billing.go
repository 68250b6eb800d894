package billing

import (
	"context"
)

// Gateway defines the interface for the external payment provider.
// Implementations can use Stripe, Square, etc. The ledger records attempts
// and settlements locally; the gateway only moves the money.
type Gateway interface {
	// CreatePaymentIntent opens a payment with the provider for an invoice.
	// The returned client secret is handed to the frontend for confirmation;
	// the verdict comes back asynchronously through the webhook.
	CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)

	// GetPaymentIntent retrieves an existing payment intent by provider id.
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)

	// VerifyWebhookSignature verifies that a webhook request is authentic
	// against the signing secret the gateway was configured with.
	VerifyWebhookSignature(payload []byte, signature string) error
}

// CreatePaymentIntentParams describes the payment to open with the provider.
// Metadata round-trips through the provider and back on the webhook; the
// ledger uses it to route the verdict to the right attempt.
type CreatePaymentIntentParams struct {
	AmountCents int64
	Currency    string
	Metadata    map[string]string
}

// PaymentIntent is the provider's record of an in-flight payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountCents  int64
	Currency     string
	Metadata     map[string]string
}
