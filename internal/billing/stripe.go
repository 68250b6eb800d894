package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Stripe's minimum charge in cents for USD.
const minimumAmountCents = 50

// StripeGateway implements Gateway using the Stripe API.
type StripeGateway struct {
	webhookSecret string
}

// NewStripeGateway creates a new Stripe gateway. The API key is installed
// process-wide, matching how the Stripe SDK expects to be configured.
func NewStripeGateway(apiKey, webhookSecret string) (*StripeGateway, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}
	stripe.Key = apiKey

	return &StripeGateway{webhookSecret: webhookSecret}, nil
}

// CreatePaymentIntent opens a Stripe payment intent with automatic payment
// methods enabled.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	if params.AmountCents < minimumAmountCents {
		return nil, ErrAmountTooSmall
	}

	piParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.AmountCents),
		Currency: stripe.String(params.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	piParams.Context = ctx
	for k, v := range params.Metadata {
		piParams.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(piParams)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return paymentIntentFromStripe(pi), nil
}

// GetPaymentIntent retrieves a payment intent by id.
func (g *StripeGateway) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(paymentIntentID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return nil, ErrPaymentIntentNotFound
		}
		return nil, fmt.Errorf("get payment intent %s: %w", paymentIntentID, err)
	}

	return paymentIntentFromStripe(pi), nil
}

// VerifyWebhookSignature verifies a Stripe webhook signature against the
// signing secret.
func (g *StripeGateway) VerifyWebhookSignature(payload []byte, signature string) error {
	if _, err := webhook.ConstructEvent(payload, signature, g.webhookSecret); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWebhookSignature, err)
	}
	return nil
}

func paymentIntentFromStripe(pi *stripe.PaymentIntent) *PaymentIntent {
	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		Metadata:     pi.Metadata,
	}
}
