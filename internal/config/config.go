package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort       = "8080"
	defaultFeeBps     = 1000
	defaultDataPath   = "data/db.json"
	defaultCurrency   = "jpy"
	defaultAuditTopic = "audit_logs"
)

// Config is read once at startup; the core never re-reads the
// environment afterwards.
type Config struct {
	Port    string
	BaseURL string

	// DatabaseURL selects the gorm snapshot store; when empty the JSON
	// file store at DataPath is used instead.
	DatabaseURL string
	DataPath    string

	JWTSecret string
	AdminKeys []string

	PlatformFeeBps int64
	Currency       string

	StripeSecretKey     string
	StripeWebhookSecret string

	KafkaBrokers []string
	AuditTopic   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", defaultPort),
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DataPath:            getEnv("DATA_PATH", defaultDataPath),
		JWTSecret:           strings.TrimSpace(os.Getenv("JWT_SECRET")),
		Currency:            getEnv("CURRENCY", defaultCurrency),
		StripeSecretKey:     strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		StripeWebhookSecret: strings.TrimSpace(os.Getenv("STRIPE_WEBHOOK_SECRET")),
		AuditTopic:          getEnv("KAFKA_AUDIT_TOPIC", defaultAuditTopic),
	}

	cfg.BaseURL = getEnv("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port)

	bps, err := parseIntEnv("PLATFORM_FEE_BPS", defaultFeeBps)
	if err != nil {
		return nil, err
	}
	if bps < 0 || bps > 10000 {
		return nil, fmt.Errorf("PLATFORM_FEE_BPS out of range: %d", bps)
	}
	cfg.PlatformFeeBps = bps

	for _, name := range []string{"ADMIN_KEY", "SECOND_ADMIN_KEY"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			cfg.AdminKeys = append(cfg.AdminKeys, v)
		}
	}

	if brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func parseIntEnv(name string, def int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}
