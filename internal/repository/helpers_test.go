package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UUID_RoundTrip(t *testing.T) {
	id := uuid.New()

	pg := PgUUID(id)
	assert.True(t, pg.Valid)
	assert.Equal(t, id, UUIDValue(pg))
}

func Test_UUIDValue_NullIsNil(t *testing.T) {
	assert.Equal(t, uuid.Nil, UUIDValue(pgtype.UUID{}))
}

func Test_Numeric_RoundTripKeepsScale(t *testing.T) {
	tests := []string{"0", "0.01", "19.99", "120.50", "-5.25", "1234567.89"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			want := decimal.RequireFromString(s)

			got := DecimalFromNumeric(NumericFromDecimal(want))
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func Test_NumericFromDecimal_DoesNotPassThroughFloat(t *testing.T) {
	// A value that loses precision in binary floating point.
	want := decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))

	got := DecimalFromNumeric(NumericFromDecimal(want))
	require.True(t, got.Equal(decimal.RequireFromString("0.3")))
}

func Test_DecimalFromNumeric_NullIsZero(t *testing.T) {
	assert.True(t, DecimalFromNumeric(pgtype.Numeric{}).IsZero())
}

func Test_PgText_EmptyStringIsNull(t *testing.T) {
	assert.False(t, PgText("").Valid)

	pg := PgText("pi_abc123")
	assert.True(t, pg.Valid)
	assert.Equal(t, "pi_abc123", TextValue(pg))
	assert.Equal(t, "", TextValue(pgtype.Text{}))
}

func Test_TimePtr(t *testing.T) {
	assert.Nil(t, TimePtr(pgtype.Timestamptz{}))

	now := time.Now().UTC()
	got := TimePtr(PgTimestamptz(now))
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))
}
