package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// PgUUID converts a uuid.UUID into its pgtype wire representation.
func PgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// UUIDValue converts a pgtype.UUID back to a uuid.UUID. Null columns map to
// uuid.Nil.
func UUIDValue(id pgtype.UUID) uuid.UUID {
	if !id.Valid {
		return uuid.Nil
	}
	return uuid.UUID(id.Bytes)
}

// NumericFromDecimal converts a decimal amount into pgtype.Numeric without
// passing through a float.
func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// DecimalFromNumeric converts a pgtype.Numeric column back into a decimal.
// Null columns map to zero.
func DecimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// PgText wraps a non-empty string; the empty string maps to NULL.
func PgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// TextValue unwraps a nullable text column to a plain string.
func TextValue(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// PgTimestamptz wraps a time.Time for a timestamptz column.
func PgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// PgDate wraps a time.Time for a date column.
func PgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

// TimePtr converts a nullable timestamptz to a *time.Time.
func TimePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
