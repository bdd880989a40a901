package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, config.StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "18", cfg.Tax.LRGSTRate.String())
	assert.Equal(t, "5", cfg.Tax.FreightGSTRate.String())
	assert.Equal(t, "5000", cfg.Invoice.DefaultUnloading.String())
	assert.Equal(t, "2000", cfg.Invoice.DefaultDetention.String())
	assert.Equal(t, "INV", cfg.Invoice.NumberPrefix)
	assert.Equal(t, 15*time.Minute, cfg.Expiry.MonitorInterval)
	assert.Empty(t, cfg.Expiry.AlertRecipients)
	assert.Equal(t, "noop", cfg.Email.Provider)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FREIGHTDESK_STORAGE_DRIVER", "Memory")
	t.Setenv("FREIGHTDESK_TAX_FREIGHT_GST_RATE", "12")
	t.Setenv("FREIGHTDESK_TAX_SUPPLIER_GSTIN", " 27aabcu9603r1zm ")
	t.Setenv("FREIGHTDESK_EXPIRY_ALERT_RECIPIENTS", "ops@example.com, dispatch@example.com")
	t.Setenv("FREIGHTDESK_CORS_ALLOWED_ORIGINS", "https://desk.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "12", cfg.Tax.FreightGSTRate.String())
	assert.Equal(t, "27AABCU9603R1ZM", cfg.Tax.SupplierGSTIN)
	assert.Equal(t, []string{"ops@example.com", "dispatch@example.com"}, cfg.Expiry.AlertRecipients)
	assert.Equal(t, []string{"https://desk.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)

	t.Setenv("FREIGHTDESK_SERVER_PORT", ":7070")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"negative_gst", "FREIGHTDESK_TAX_LR_GST_RATE", "-1"},
		{"garbage_gst", "FREIGHTDESK_TAX_FREIGHT_GST_RATE", "five"},
		{"zero_interval", "FREIGHTDESK_EXPIRY_MONITOR_INTERVAL", "0s"},
		{"unknown_driver", "FREIGHTDESK_STORAGE_DRIVER", "mongo"},
		{"negative_detention", "FREIGHTDESK_INVOICE_DEFAULT_DETENTION", "-10"},
		{"unknown_email_provider", "FREIGHTDESK_EMAIL_PROVIDER", "sendgrid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_DSN(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@db:5433/n?sslmode=require", db.DSN())
}
