package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fieldhouse/ledger/internal/domain"
	"github.com/fieldhouse/ledger/internal/events"
	"github.com/fieldhouse/ledger/internal/repository"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

// txStore satisfies repository.Store over a MockQuerier, running transaction
// callbacks against the same mock so expectations cover both paths.
type txStore struct {
	*repository.MockQuerier
}

func (s txStore) ExecTx(_ context.Context, fn func(repository.Querier) error) error {
	return fn(s.MockQuerier)
}

func newProcessor(store repository.Store) domain.PaymentProcessor {
	return NewPaymentProcessor(store, events.NewNoopPublisher(), newTestMetrics(), testLogger())
}

func testAttemptRow(invoiceID pgtype.UUID, amount, status string) repository.PaymentAttempt {
	return repository.PaymentAttempt{
		PaymentAttemptID: newUUID(),
		InvoiceID:        invoiceID,
		Provider:         "stripe",
		ProviderPaymentID: pgtype.Text{
			String: "pi_" + uuid.NewString(),
			Valid:  true,
		},
		AmountAttempted: numeric(amount),
		Status:          status,
		CreatedAt:       pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true},
	}
}

// =============================================================================
// TEST: RecordPaymentAttempt
// =============================================================================

func Test_RecordPaymentAttempt_ValidatesParams(t *testing.T) {
	tests := []struct {
		name   string
		params domain.RecordPaymentAttemptParams
	}{
		{
			name: "missing invoice id",
			params: domain.RecordPaymentAttemptParams{
				Provider: "stripe",
				Amount:   decimal.RequireFromString("10.00"),
			},
		},
		{
			name: "missing provider",
			params: domain.RecordPaymentAttemptParams{
				InvoiceID: uuid.New(),
				Amount:    decimal.RequireFromString("10.00"),
			},
		},
		{
			name: "zero amount",
			params: domain.RecordPaymentAttemptParams{
				InvoiceID: uuid.New(),
				Provider:  "stripe",
			},
		},
		{
			name: "negative amount",
			params: domain.RecordPaymentAttemptParams{
				InvoiceID: uuid.New(),
				Provider:  "stripe",
				Amount:    decimal.RequireFromString("-5.00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			processor := newProcessor(txStore{repository.NewMockQuerier(ctrl)})

			_, err := processor.RecordPaymentAttempt(context.Background(), tt.params)
			require.Error(t, err)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		})
	}
}

func Test_RecordPaymentAttempt_UnknownInvoiceIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	invoiceID := uuid.New()
	mockRepo.EXPECT().
		GetInvoiceByID(gomock.Any(), repository.PgUUID(invoiceID)).
		Return(repository.Invoice{}, pgx.ErrNoRows)

	processor := newProcessor(txStore{mockRepo})

	_, err := processor.RecordPaymentAttempt(context.Background(), domain.RecordPaymentAttemptParams{
		InvoiceID: invoiceID,
		Provider:  "stripe",
		Amount:    decimal.RequireFromString("10.00"),
	})
	require.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func Test_RecordPaymentAttempt_CreatesPendingAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	invoiceID := uuid.New()
	pgInvoiceID := repository.PgUUID(invoiceID)

	mockRepo.EXPECT().
		GetInvoiceByID(gomock.Any(), pgInvoiceID).
		Return(testInvoiceRow(newUUID(), "INV-TESTPAY001", "75.00", "0", "open"), nil)
	mockRepo.EXPECT().
		CreatePaymentAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreatePaymentAttemptParams) (repository.PaymentAttempt, error) {
			assert.Equal(t, pgInvoiceID, arg.InvoiceID)
			assert.Equal(t, "stripe", arg.Provider)
			assert.Equal(t, "pi_abc123", arg.ProviderPaymentID.String)
			assert.True(t, repository.DecimalFromNumeric(arg.AmountAttempted).Equal(money("75.00")))

			row := testAttemptRow(arg.InvoiceID, "75.00", string(domain.AttemptPending))
			row.ProviderPaymentID = arg.ProviderPaymentID
			return row, nil
		})

	processor := newProcessor(txStore{mockRepo})

	attempt, err := processor.RecordPaymentAttempt(context.Background(), domain.RecordPaymentAttemptParams{
		InvoiceID:         invoiceID,
		Provider:          "stripe",
		Amount:            decimal.RequireFromString("75.00"),
		ProviderPaymentID: "pi_abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AttemptPending, attempt.Status)
	assert.Equal(t, invoiceID, attempt.InvoiceID)
	assert.Equal(t, "pi_abc123", attempt.ProviderPaymentID)
	assert.True(t, attempt.AmountAttempted.Equal(money("75.00")))
}

// =============================================================================
// TEST: FinalizePayment
// =============================================================================

func Test_FinalizePayment_RejectsUnknownOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	processor := newProcessor(txStore{repository.NewMockQuerier(ctrl)})

	_, err := processor.FinalizePayment(context.Background(), uuid.New(), domain.FinalizeOutcome("maybe"), "")
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.ErrorIs(t, err, ErrInvalidOutcome)
}

func Test_FinalizePayment_UnknownAttemptIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	mockRepo.EXPECT().
		GetPaymentAttemptByID(gomock.Any(), gomock.Any()).
		Return(repository.PaymentAttempt{}, pgx.ErrNoRows)

	processor := newProcessor(txStore{mockRepo})

	_, err := processor.FinalizePayment(context.Background(), uuid.New(), domain.OutcomeSucceeded, "")
	require.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func Test_FinalizePayment_FailedMarksAttemptWithReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	attemptRow := testAttemptRow(newUUID(), "40.00", string(domain.AttemptPending))

	mockRepo.EXPECT().
		GetPaymentAttemptByID(gomock.Any(), attemptRow.PaymentAttemptID).
		Return(attemptRow, nil)
	mockRepo.EXPECT().
		UpdatePaymentAttemptStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpdatePaymentAttemptStatusParams) (repository.PaymentAttempt, error) {
			assert.Equal(t, attemptRow.PaymentAttemptID, arg.PaymentAttemptID)
			assert.Equal(t, string(domain.AttemptFailed), arg.Status)
			assert.Equal(t, "card_declined", arg.FailureReason.String)

			updated := attemptRow
			updated.Status = arg.Status
			updated.FailureReason = arg.FailureReason
			return updated, nil
		})

	processor := newProcessor(txStore{mockRepo})

	result, err := processor.FinalizePayment(
		context.Background(),
		repository.UUIDValue(attemptRow.PaymentAttemptID),
		domain.OutcomeFailed,
		"card_declined",
	)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, domain.AttemptFailed, result.Attempt.Status)
	assert.Equal(t, "card_declined", result.Attempt.FailureReason)
}

func Test_FinalizePayment_SucceededClosesInvoiceInOneTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	accountID := newUUID()
	invoiceRow := testInvoiceRow(accountID, "INV-TESTPAY002", "120.00", "0", "open")
	attemptRow := testAttemptRow(invoiceRow.InvoiceID, "120.00", string(domain.AttemptPending))

	mockRepo.EXPECT().
		GetPaymentAttemptByID(gomock.Any(), attemptRow.PaymentAttemptID).
		Return(attemptRow, nil)
	mockRepo.EXPECT().
		GetInvoiceByID(gomock.Any(), invoiceRow.InvoiceID).
		Return(invoiceRow, nil)

	// All three writes run inside the transaction callback.
	mockRepo.EXPECT().
		UpdatePaymentAttemptStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpdatePaymentAttemptStatusParams) (repository.PaymentAttempt, error) {
			assert.Equal(t, string(domain.AttemptSucceeded), arg.Status)
			assert.False(t, arg.FailureReason.Valid)

			updated := attemptRow
			updated.Status = arg.Status
			return updated, nil
		})
	mockRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreatePaymentParams) (repository.Payment, error) {
			assert.Equal(t, invoiceRow.InvoiceID, arg.InvoiceID)
			assert.Equal(t, accountID, arg.AccountID)
			assert.Equal(t, attemptRow.PaymentAttemptID, arg.PaymentAttemptID)
			assert.Equal(t, "stripe", arg.PaymentMethod)
			assert.Equal(t, attemptRow.ProviderPaymentID, arg.ReferenceID)
			assert.True(t, repository.DecimalFromNumeric(arg.Amount).Equal(money("120.00")))

			return repository.Payment{
				PaymentID:        newUUID(),
				InvoiceID:        arg.InvoiceID,
				AccountID:        arg.AccountID,
				PaymentAttemptID: arg.PaymentAttemptID,
				Amount:           arg.Amount,
				PaymentMethod:    arg.PaymentMethod,
				PaymentDate:      arg.PaymentDate,
				ReferenceID:      arg.ReferenceID,
			}, nil
		})
	mockRepo.EXPECT().
		MarkInvoicePaid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.MarkInvoicePaidParams) (repository.Invoice, error) {
			assert.Equal(t, invoiceRow.InvoiceID, arg.InvoiceID)
			assert.True(t, repository.DecimalFromNumeric(arg.AmountPaid).Equal(money("120.00")))

			paid := invoiceRow
			paid.Status = "paid"
			paid.AmountPaid = arg.AmountPaid
			return paid, nil
		})

	processor := newProcessor(txStore{mockRepo})

	result, err := processor.FinalizePayment(
		context.Background(),
		repository.UUIDValue(attemptRow.PaymentAttemptID),
		domain.OutcomeSucceeded,
		"",
	)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, domain.AttemptSucceeded, result.Attempt.Status)
}

func Test_FinalizePayment_TransactionFailureIsConsistencyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	invoiceRow := testInvoiceRow(newUUID(), "INV-TESTPAY003", "60.00", "0", "open")
	attemptRow := testAttemptRow(invoiceRow.InvoiceID, "60.00", string(domain.AttemptPending))

	mockRepo.EXPECT().
		GetPaymentAttemptByID(gomock.Any(), attemptRow.PaymentAttemptID).
		Return(attemptRow, nil)
	mockRepo.EXPECT().
		GetInvoiceByID(gomock.Any(), invoiceRow.InvoiceID).
		Return(invoiceRow, nil)
	mockRepo.EXPECT().
		UpdatePaymentAttemptStatus(gomock.Any(), gomock.Any()).
		Return(repository.PaymentAttempt{}, errors.New("serialization failure"))

	processor := newProcessor(txStore{mockRepo})

	_, err := processor.FinalizePayment(
		context.Background(),
		repository.UUIDValue(attemptRow.PaymentAttemptID),
		domain.OutcomeSucceeded,
		"",
	)
	require.Error(t, err)
	assert.Equal(t, domain.ECONSISTENCY, domain.ErrorCode(err))
}
