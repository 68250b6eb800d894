package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.Port)
	assert.NotEmpty(t, cfg.DatabaseUrl)
}

func Test_NewConfig_ReadsPort(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.Port)
}

func Test_NewConfig_RejectsOutOfRangePort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"above range", "70000"},
		{"zero", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)

			_, err := NewConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "PORT")
		})
	}
}

func Test_NewConfig_RequiresStripeKeyInProd(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("STRIPE_SECRET_KEY", "")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")
}
