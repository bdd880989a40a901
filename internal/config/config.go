package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Storage StorageConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Tax     TaxConfig
	Invoice InvoiceConfig
	Expiry  ExpiryConfig
	Email   EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// Storage drivers and email providers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	EmailProviderNoop = "noop"
	EmailProviderSES  = "ses"
)

// StorageConfig selects the data provider behind the repositories.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

// S3Config holds AWS S3 settings for invoice exports.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TaxConfig holds GST defaults.
type TaxConfig struct {
	LRGSTRate      decimal.Decimal `mapstructure:"lr_gst_rate"`
	FreightGSTRate decimal.Decimal `mapstructure:"freight_gst_rate"`
	SupplierGSTIN  string          `mapstructure:"supplier_gstin"`
}

// InvoiceConfig holds invoice numbering and default extra charges.
type InvoiceConfig struct {
	NumberPrefix     string          `mapstructure:"number_prefix"`
	DefaultUnloading decimal.Decimal `mapstructure:"default_unloading"`
	DefaultDetention decimal.Decimal `mapstructure:"default_detention"`
}

// ExpiryConfig holds e-way bill monitor settings.
type ExpiryConfig struct {
	MonitorEnabled  bool          `mapstructure:"monitor_enabled"`
	MonitorInterval time.Duration `mapstructure:"monitor_interval"`
	AlertRecipients []string      `mapstructure:"alert_recipients"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// Load reads configuration from environment variables with the FREIGHTDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FREIGHTDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "freightdesk")
	v.SetDefault("db.password", "freightdesk_secret")
	v.SetDefault("db.name", "freightdesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	v.SetDefault("storage.driver", StorageDriverPostgres)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "freightdesk-exports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Tax defaults
	v.SetDefault("tax.lr_gst_rate", "18")
	v.SetDefault("tax.freight_gst_rate", "5")
	v.SetDefault("tax.supplier_gstin", "")

	// Invoice defaults
	v.SetDefault("invoice.number_prefix", "INV")
	v.SetDefault("invoice.default_unloading", "5000")
	v.SetDefault("invoice.default_detention", "2000")

	// Expiry monitor defaults
	v.SetDefault("expiry.monitor_enabled", true)
	v.SetDefault("expiry.monitor_interval", "15m")
	v.SetDefault("expiry.alert_recipients", "")

	// Email defaults
	v.SetDefault("email.provider", EmailProviderNoop)
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "alerts@freightdesk.in")
	v.SetDefault("email.from_name", "FreightDesk")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "FREIGHTDESK_SERVER_PORT",
		"server.read_timeout":       "FREIGHTDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "FREIGHTDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":        "FREIGHTDESK_SERVER_ENVIRONMENT",
		"db.host":                   "FREIGHTDESK_DB_HOST",
		"db.port":                   "FREIGHTDESK_DB_PORT",
		"db.user":                   "FREIGHTDESK_DB_USER",
		"db.password":               "FREIGHTDESK_DB_PASSWORD",
		"db.name":                   "FREIGHTDESK_DB_NAME",
		"db.sslmode":                "FREIGHTDESK_DB_SSLMODE",
		"db.max_open":               "FREIGHTDESK_DB_MAX_OPEN",
		"db.max_idle":               "FREIGHTDESK_DB_MAX_IDLE",
		"storage.driver":            "FREIGHTDESK_STORAGE_DRIVER",
		"s3.region":                 "FREIGHTDESK_S3_REGION",
		"s3.bucket":                 "FREIGHTDESK_S3_BUCKET",
		"s3.endpoint":               "FREIGHTDESK_S3_ENDPOINT",
		"s3.access_key":             "FREIGHTDESK_S3_ACCESS_KEY",
		"s3.secret_key":             "FREIGHTDESK_S3_SECRET_KEY",
		"s3.presign_expiry":         "FREIGHTDESK_S3_PRESIGN_EXPIRY",
		"log.level":                 "FREIGHTDESK_LOG_LEVEL",
		"log.format":                "FREIGHTDESK_LOG_FORMAT",
		"cors.allowed_origins":      "FREIGHTDESK_CORS_ALLOWED_ORIGINS",
		"tax.lr_gst_rate":           "FREIGHTDESK_TAX_LR_GST_RATE",
		"tax.freight_gst_rate":      "FREIGHTDESK_TAX_FREIGHT_GST_RATE",
		"tax.supplier_gstin":        "FREIGHTDESK_TAX_SUPPLIER_GSTIN",
		"invoice.number_prefix":     "FREIGHTDESK_INVOICE_NUMBER_PREFIX",
		"invoice.default_unloading": "FREIGHTDESK_INVOICE_DEFAULT_UNLOADING",
		"invoice.default_detention": "FREIGHTDESK_INVOICE_DEFAULT_DETENTION",
		"expiry.monitor_enabled":    "FREIGHTDESK_EXPIRY_MONITOR_ENABLED",
		"expiry.monitor_interval":   "FREIGHTDESK_EXPIRY_MONITOR_INTERVAL",
		"expiry.alert_recipients":   "FREIGHTDESK_EXPIRY_ALERT_RECIPIENTS",
		"email.provider":            "FREIGHTDESK_EMAIL_PROVIDER",
		"email.region":              "FREIGHTDESK_EMAIL_REGION",
		"email.from_address":        "FREIGHTDESK_EMAIL_FROM_ADDRESS",
		"email.from_name":           "FREIGHTDESK_EMAIL_FROM_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Render set a PORT env var. Use it if FREIGHTDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FREIGHTDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Storage = StorageConfig{
		Driver: strings.ToLower(v.GetString("storage.driver")),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	var err error
	if cfg.Tax.LRGSTRate, err = decimalKey(v, "tax.lr_gst_rate"); err != nil {
		return nil, err
	}
	if cfg.Tax.FreightGSTRate, err = decimalKey(v, "tax.freight_gst_rate"); err != nil {
		return nil, err
	}
	cfg.Tax.SupplierGSTIN = strings.ToUpper(strings.TrimSpace(v.GetString("tax.supplier_gstin")))

	cfg.Invoice.NumberPrefix = v.GetString("invoice.number_prefix")
	if cfg.Invoice.DefaultUnloading, err = decimalKey(v, "invoice.default_unloading"); err != nil {
		return nil, err
	}
	if cfg.Invoice.DefaultDetention, err = decimalKey(v, "invoice.default_detention"); err != nil {
		return nil, err
	}

	cfg.Expiry = ExpiryConfig{
		MonitorEnabled:  v.GetBool("expiry.monitor_enabled"),
		MonitorInterval: v.GetDuration("expiry.monitor_interval"),
		AlertRecipients: splitList(v.GetString("expiry.alert_recipients")),
	}

	cfg.Email = EmailConfig{
		Provider:    strings.ToLower(v.GetString("email.provider")),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Tax.LRGSTRate.IsNegative() {
		errs = append(errs, errors.New("tax.lr_gst_rate must not be negative"))
	}
	if c.Tax.FreightGSTRate.IsNegative() {
		errs = append(errs, errors.New("tax.freight_gst_rate must not be negative"))
	}
	if c.Invoice.DefaultUnloading.IsNegative() || c.Invoice.DefaultDetention.IsNegative() {
		errs = append(errs, errors.New("invoice default charges must not be negative"))
	}
	if strings.TrimSpace(c.Invoice.NumberPrefix) == "" {
		errs = append(errs, errors.New("invoice.number_prefix is required"))
	}
	if c.Expiry.MonitorEnabled && c.Expiry.MonitorInterval <= 0 {
		errs = append(errs, errors.New("expiry.monitor_interval must be positive"))
	}
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q is not supported", c.Storage.Driver))
	}
	switch c.Email.Provider {
	case EmailProviderNoop, EmailProviderSES:
	default:
		errs = append(errs, fmt.Errorf("email.provider %q is not supported", c.Email.Provider))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func decimalKey(v *viper.Viper, key string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
