package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Mail     MailConfig
	Cooldown CooldownConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Address       string
	AllowedOrigin string
}

type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	AdminEmail        string
	AdminPasswordHash string
}

type MailConfig struct {
	Enabled     bool
	SMTPHost    string
	SMTPPort    int
	Username    string
	Password    string
	FromEmail   string
	FromName    string
	SalesEmail  string
	SendTimeout time.Duration
}

type CooldownConfig struct {
	Window time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	DB       int
}

// LoadAll reads configuration from environment variables. All problems are
// collected and returned together so a misconfigured deployment fails with
// one complete message.
func LoadAll() (*Config, error) {
	var errs []error

	jwtSecret, err := requireEnv("JWT_SECRET")
	if err != nil {
		errs = append(errs, err)
	}

	tokenTTL, err := getEnvInt("TOKEN_TTL_MINUTES", 60)
	if err != nil {
		errs = append(errs, err)
	}
	smtpPort, err := getEnvInt("SMTP_PORT", 587)
	if err != nil {
		errs = append(errs, err)
	}
	mailTimeout, err := getEnvInt("MAIL_SEND_TIMEOUT_SECONDS", 10)
	if err != nil {
		errs = append(errs, err)
	}
	cooldownHours, err := getEnvInt("COOLDOWN_HOURS", 24)
	if err != nil {
		errs = append(errs, err)
	}
	mailEnabled, err := getEnvBool("MAIL_ENABLED", false)
	if err != nil {
		errs = append(errs, err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Address:       getEnv("SERVER_ADDRESS", ":8080"),
			AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
		},
		Auth: AuthConfig{
			JWTSecret:         jwtSecret,
			TokenTTL:          time.Duration(tokenTTL) * time.Minute,
			AdminEmail:        getEnv("ADMIN_EMAIL", ""),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Mail: MailConfig{
			Enabled:     mailEnabled,
			SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:    smtpPort,
			Username:    getEnv("SMTP_USERNAME", ""),
			Password:    getEnv("SMTP_PASSWORD", ""),
			FromEmail:   getEnv("MAIL_FROM", "noreply@brightcover.in"),
			FromName:    getEnv("MAIL_FROM_NAME", "BrightCover Insurance"),
			SalesEmail:  getEnv("SALES_EMAIL", "leads@brightcover.in"),
			SendTimeout: time.Duration(mailTimeout) * time.Second,
		},
		Cooldown: CooldownConfig{
			Window: time.Duration(cooldownHours) * time.Hour,
		},
		Redis: loadRedisConfig(&errs),
	}

	errs = append(errs, validate(cfg)...)

	if err := joinErrors(errs); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadRedisConfig(errs *[]error) RedisConfig {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return RedisConfig{Enabled: false}
	}

	db, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		*errs = append(*errs, err)
	}

	return RedisConfig{
		Enabled:  true,
		Address:  addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
}

func validate(cfg *Config) []error {
	var errs []error
	if cfg.Cooldown.Window <= 0 {
		errs = append(errs, errors.New("COOLDOWN_HOURS must be > 0"))
	}
	if cfg.Mail.SendTimeout <= 0 {
		errs = append(errs, errors.New("MAIL_SEND_TIMEOUT_SECONDS must be > 0"))
	}
	if cfg.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL_MINUTES must be > 0"))
	}
	if cfg.Mail.Enabled && (cfg.Mail.SMTPHost == "" || cfg.Mail.Username == "" || cfg.Mail.Password == "") {
		errs = append(errs, errors.New("MAIL_ENABLED requires SMTP_HOST, SMTP_USERNAME and SMTP_PASSWORD"))
	}
	return errs
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("missing required env var: %s", key)
	}
	return v, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for env %s: %s", key, v)
	}
	return i, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid bool for env %s: %s", key, v)
	}
	return b, nil
}

func joinErrors(errs []error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	return errors.Join(nonNil...)
}
