package config

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	defaultPort      = "8080"
	minSecretKeySize = 32
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	SecretKey       string `envconfig:"SECRET_KEY"`
	DBPath          string `envconfig:"DB_PATH" default:"data/mariage.db"`
	Port            string `envconfig:"PORT" default:"8080"`
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"fr"`
	TZ              string `envconfig:"TZ" default:"UTC"`
	CookieSecure    bool   `envconfig:"COOKIE_SECURE" default:"false"`
	UploadDir       string `envconfig:"UPLOAD_DIR" default:"data/uploads"`
	TrialDays       int    `envconfig:"TRIAL_DAYS" default:"15"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	MailFrom     string `envconfig:"MAIL_FROM" default:"Mariage <no-reply@mariage.local>"`
}

// Load reads the configuration and validates it for serving.
func Load(envFile string) (Config, error) {
	cfg, err := Read(envFile)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read loads envFile when it exists, then the process environment, without
// validation. Values already present in the environment win over the file.
func Read(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err == nil {
			log.Printf("loaded environment from %s", envFile)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = defaultPort
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if err := validateSecretKey(cfg.SecretKey); err != nil {
		return err
	}
	if err := validatePort(cfg.Port); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("DB_PATH is required")
	}
	if strings.TrimSpace(cfg.UploadDir) == "" {
		return errors.New("UPLOAD_DIR is required")
	}
	if cfg.TrialDays < 1 {
		return fmt.Errorf("TRIAL_DAYS must be positive, got %d", cfg.TrialDays)
	}
	if cfg.SMTPHost != "" && (cfg.SMTPPort < 1 || cfg.SMTPPort > 65535) {
		return fmt.Errorf("SMTP_PORT must be in range 1..65535, got %d", cfg.SMTPPort)
	}
	return nil
}

// Location falls back to UTC for an unknown zone name.
func (cfg Config) Location() *time.Location {
	location, err := time.LoadLocation(cfg.TZ)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", cfg.TZ)
		return time.UTC
	}
	return location
}

func (cfg Config) SMTPConfigured() bool {
	return strings.TrimSpace(cfg.SMTPHost) != ""
}

func validateSecretKey(raw string) error {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[secret]; insecure {
		return errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeySize {
		return fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeySize)
	}
	return nil
}

func validatePort(raw string) error {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("PORT must be numeric: %w", err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be in range 1..65535, got %d", port)
	}
	return nil
}
