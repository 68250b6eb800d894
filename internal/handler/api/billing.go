// Package api exposes the billing ledger over JSON HTTP.
package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fieldhouse/ledger/internal/billing"
	"github.com/fieldhouse/ledger/internal/domain"
	"github.com/fieldhouse/ledger/internal/handler"
)

// BillingHandler serves the subscription, invoice, and payment endpoints.
type BillingHandler struct {
	subscriptions domain.SubscriptionManager
	invoices      domain.InvoiceLedger
	payments      domain.PaymentProcessor
	gateway       billing.Gateway
	logger        zerolog.Logger
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(
	subscriptions domain.SubscriptionManager,
	invoices domain.InvoiceLedger,
	payments domain.PaymentProcessor,
	gateway billing.Gateway,
	logger zerolog.Logger,
) *BillingHandler {
	return &BillingHandler{
		subscriptions: subscriptions,
		invoices:      invoices,
		payments:      payments,
		gateway:       gateway,
		logger:        logger.With().Str("component", "billing_handler").Logger(),
	}
}

// Register mounts the billing routes on g.
func (h *BillingHandler) Register(g *echo.Group) {
	g.POST("/subscriptions", h.CreateSubscription)
	g.GET("/subscriptions", h.ListSubscriptions)
	g.GET("/subscriptions/:subscriptionId", h.GetSubscription)
	g.POST("/subscriptions/:subscriptionId/cancel", h.CancelSubscription)

	g.GET("/invoices/pending/:accountId", h.GetPendingInvoices)
	g.GET("/accounts/:accountId/invoices/:invoiceId", h.GetInvoice)

	g.POST("/payments/intent", h.CreatePaymentIntent)
	g.POST("/payments/attempts", h.RecordPaymentAttempt)
	g.POST("/payments/attempts/:attemptId/finalize", h.FinalizePayment)
}

type createSubscriptionRequest struct {
	AccountID        uuid.UUID  `json:"account_id" validate:"required"`
	ProfileID        uuid.UUID  `json:"profile_id" validate:"required"`
	MembershipPlanID *uuid.UUID `json:"membership_plan_id"`
	ServicePlanID    *uuid.UUID `json:"service_plan_id"`
}

// CreateSubscription handles POST /subscriptions. Exactly one of
// membership_plan_id or service_plan_id selects the plan.
func (h *BillingHandler) CreateSubscription(c echo.Context) error {
	var req createSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.create_subscription", "invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handler.ErrorResponse(c, err)
	}

	var kind domain.SubscriptionKind
	switch {
	case req.MembershipPlanID != nil && req.ServicePlanID != nil:
		return handler.ErrorResponse(c, domain.Invalid("billing.create_subscription", "provide membership_plan_id or service_plan_id, not both"))
	case req.MembershipPlanID != nil:
		kind = domain.Membership(*req.MembershipPlanID)
	case req.ServicePlanID != nil:
		kind = domain.Addon(*req.ServicePlanID)
	default:
		return handler.ErrorResponse(c, domain.Invalid("billing.create_subscription", "either membership_plan_id or service_plan_id is required"))
	}

	result, err := h.subscriptions.CreateSubscription(c.Request().Context(), domain.CreateSubscriptionParams{
		AccountID: req.AccountID,
		ProfileID: req.ProfileID,
		Kind:      kind,
	})
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":      true,
		"subscription": result.Subscription,
		"invoice":      result.Invoice,
	})
}

// ListSubscriptions handles GET /subscriptions?account_id=...
func (h *BillingHandler) ListSubscriptions(c echo.Context) error {
	accountID, err := uuid.Parse(c.QueryParam("account_id"))
	if err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.list_subscriptions", "account_id query parameter is required"))
	}

	subs, err := h.subscriptions.ListSubscriptionsForAccount(c.Request().Context(), accountID)
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"subscriptions": subs,
	})
}

// GetSubscription handles GET /subscriptions/:subscriptionId.
func (h *BillingHandler) GetSubscription(c echo.Context) error {
	id, err := uuid.Parse(c.Param("subscriptionId"))
	if err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.get_subscription", "invalid subscription id"))
	}

	sub, err := h.subscriptions.GetSubscription(c.Request().Context(), id)
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"subscription": sub,
	})
}

type cancelSubscriptionRequest struct {
	Immediately bool `json:"immediately"`
}

// CancelSubscription handles POST /subscriptions/:subscriptionId/cancel.
func (h *BillingHandler) CancelSubscription(c echo.Context) error {
	id, err := uuid.Parse(c.Param("subscriptionId"))
	if err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.cancel_subscription", "invalid subscription id"))
	}

	var req cancelSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.cancel_subscription", "invalid request body"))
	}

	sub, err := h.subscriptions.CancelSubscription(c.Request().Context(), id, req.Immediately)
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}

	message := "Subscription will be canceled at period end"
	if req.Immediately {
		message = "Subscription canceled immediately"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"message":      message,
		"subscription": sub,
	})
}

// GetPendingInvoices handles GET /invoices/pending/:accountId.
func (h *BillingHandler) GetPendingInvoices(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.get_pending_invoices", "invalid account id"))
	}

	invoices, err := h.invoices.GetPendingInvoices(c.Request().Context(), accountID)
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"invoices": invoices,
	})
}

// GetInvoice handles GET /accounts/:accountId/invoices/:invoiceId.
func (h *BillingHandler) GetInvoice(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.get_invoice", "invalid account id"))
	}
	invoiceID, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.get_invoice", "invalid invoice id"))
	}

	invoice, err := h.invoices.GetInvoiceByID(c.Request().Context(), invoiceID, accountID)
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"invoice": invoice,
	})
}

type createPaymentIntentRequest struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
	InvoiceID uuid.UUID `json:"invoice_id" validate:"required"`
}

// CreatePaymentIntent handles POST /payments/intent. It opens a payment
// with the gateway for the invoice's outstanding amount and records the
// matching pending attempt, so the webhook can route the verdict back by
// attempt id.
func (h *BillingHandler) CreatePaymentIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.create_payment_intent", "invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handler.ErrorResponse(c, err)
	}

	ctx := c.Request().Context()

	invoice, err := h.invoices.GetInvoiceByID(ctx, req.InvoiceID, req.AccountID)
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}
	if invoice.Status != domain.InvoiceOpen {
		return handler.ErrorResponse(c, domain.Invalid("billing.create_payment_intent", "invoice is not open"))
	}

	outstanding := invoice.AmountDue.Sub(invoice.AmountPaid)
	amountCents := outstanding.Shift(2).IntPart()

	// The attempt is recorded first so its id can ride along in the intent
	// metadata; the webhook routes the provider's verdict back by that id.
	attempt, err := h.payments.RecordPaymentAttempt(ctx, domain.RecordPaymentAttemptParams{
		InvoiceID: invoice.ID,
		Provider:  "stripe",
		Amount:    outstanding,
	})
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}

	intent, err := h.gateway.CreatePaymentIntent(ctx, billing.CreatePaymentIntentParams{
		AmountCents: amountCents,
		Currency:    "usd",
		Metadata: map[string]string{
			"attempt_id": attempt.ID.String(),
			"invoice_id": invoice.ID.String(),
			"account_id": invoice.AccountID.String(),
		},
	})
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, domain.WrapError(err, domain.EPAYMENT, "billing.create_payment_intent", "payment provider rejected the request"))
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":       true,
		"attempt":       attempt,
		"client_secret": intent.ClientSecret,
	})
}

type recordPaymentAttemptRequest struct {
	InvoiceID         uuid.UUID       `json:"invoice_id" validate:"required"`
	Provider          string          `json:"provider" validate:"required"`
	Amount            decimal.Decimal `json:"amount" validate:"required"`
	ProviderPaymentID string          `json:"provider_payment_id"`
}

// RecordPaymentAttempt handles POST /payments/attempts for providers that
// are driven manually (checks, bank transfer) rather than through the
// gateway intent flow.
func (h *BillingHandler) RecordPaymentAttempt(c echo.Context) error {
	var req recordPaymentAttemptRequest
	if err := c.Bind(&req); err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.record_payment_attempt", "invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handler.ErrorResponse(c, err)
	}

	attempt, err := h.payments.RecordPaymentAttempt(c.Request().Context(), domain.RecordPaymentAttemptParams{
		InvoiceID:         req.InvoiceID,
		Provider:          req.Provider,
		Amount:            req.Amount,
		ProviderPaymentID: req.ProviderPaymentID,
	})
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"attempt": attempt,
	})
}

type finalizePaymentRequest struct {
	Outcome       string `json:"outcome" validate:"required,oneof=succeeded failed"`
	FailureReason string `json:"failure_reason"`
}

// FinalizePayment handles POST /payments/attempts/:attemptId/finalize for
// manually driven providers. Gateway-driven attempts are finalized by the
// webhook instead.
func (h *BillingHandler) FinalizePayment(c echo.Context) error {
	attemptID, err := uuid.Parse(c.Param("attemptId"))
	if err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.finalize_payment", "invalid attempt id"))
	}

	var req finalizePaymentRequest
	if err := c.Bind(&req); err != nil {
		return handler.ErrorResponse(c, domain.Invalid("billing.finalize_payment", "invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handler.ErrorResponse(c, err)
	}

	result, err := h.payments.FinalizePayment(c.Request().Context(), attemptID, domain.FinalizeOutcome(req.Outcome), req.FailureReason)
	if err != nil {
		h.logError(c, err)
		return handler.ErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": result.Success,
		"attempt": result.Attempt,
	})
}

func (h *BillingHandler) logError(c echo.Context, err error) {
	h.logger.Error().Err(err).
		Str("op", domain.ErrorOp(err)).
		Str("path", c.Request().URL.Path).
		Msg("request failed")
}
