package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Eursukkul/regi-nexus/internal/query"
	"github.com/Eursukkul/regi-nexus/pkg/database"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
)

type Config struct {
	ServerPort    string        `validate:"required,numeric"`
	ServerTimeout time.Duration `validate:"gt=0"`
	MaxBodySize   string        `validate:"bytesize"`

	DBHost            string `validate:"required"`
	DBPort            string `validate:"required,numeric"`
	DBUser            string `validate:"required"`
	DBPassword        string
	DBName            string `validate:"required"`
	DBSSLMode         string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxOpenConns    int    `validate:"gte=1"`
	DBMaxIdleConns    int    `validate:"gte=0,ltefield=DBMaxOpenConns"`
	DBConnMaxLifetime time.Duration
	DBConnMaxIdleTime time.Duration

	// RabbitURL is optional; publishing is disabled when it is empty.
	RabbitURL string `validate:"omitempty,url"`

	EventsTable          string `validate:"identifier"`
	AttendeesTable       string `validate:"identifier"`
	EventsOrderColumn    string `validate:"identifier"`
	AttendeesOrderColumn string `validate:"identifier"`
	AllowTableOverride   bool

	LogLevel  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `validate:"oneof=json text"`
}

// Load reads an optional .env file, then the process environment, and
// validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var errs []error
	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MaxBodySize: getEnv("MAX_BODY_SIZE", "1M"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "regi_nexus"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RabbitURL: os.Getenv("RABBITMQ_URL"),

		EventsTable:          getEnv("EVENTS_TABLE", "Events"),
		AttendeesTable:       getEnv("ATTENDEES_TABLE", "Attendees"),
		EventsOrderColumn:    getEnv("EVENTS_ORDER_COLUMN", "created_at"),
		AttendeesOrderColumn: getEnv("ATTENDEES_ORDER_COLUMN", "registered_at"),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	cfg.ServerTimeout = getDuration("SERVER_TIMEOUT", 30*time.Second, &errs)
	cfg.DBMaxOpenConns = getInt("DB_MAX_OPEN_CONNS", 25, &errs)
	cfg.DBMaxIdleConns = getInt("DB_MAX_IDLE_CONNS", 10, &errs)
	cfg.DBConnMaxLifetime = getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute, &errs)
	cfg.DBConnMaxIdleTime = getDuration("DB_CONN_MAX_IDLE_TIME", time.Minute, &errs)
	cfg.AllowTableOverride = getBool("ALLOW_TABLE_OVERRIDE", false, &errs)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return query.IsSafeIdentifier(fl.Field().String())
	}); err != nil {
		return err
	}
	// Same parser as echo's BodyLimit, which panics on values it rejects.
	if err := v.RegisterValidation("bytesize", func(fl validator.FieldLevel) bool {
		n, err := bytes.Parse(fl.Field().String())
		return err == nil && n > 0
	}); err != nil {
		return err
	}

	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %w", err)
		}
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func (c *Config) Pool() database.PoolConfig {
	return database.PoolConfig{
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
		ConnMaxIdleTime: c.DBConnMaxIdleTime,
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int, errs *[]error) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not an integer", key, raw))
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a duration", key, raw))
		return fallback
	}
	return d
}

func getBool(key string, fallback bool, errs *[]error) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a boolean", key, raw))
		return fallback
	}
	return b
}
