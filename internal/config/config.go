package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xhit/go-str2duration/v2"
)

type Config struct {
	Host string
	Port int

	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	DatabaseURL     string
	DatabaseLogging bool

	LogLevel string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	accessTTL, err := ParseTTL(EnvDefault("JWT_ACCESS_EXPIRES_IN", "15m"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_ACCESS_EXPIRES_IN: %w", err)
	}
	refreshTTL, err := ParseTTL(EnvDefault("JWT_REFRESH_EXPIRES_IN", "7d"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_REFRESH_EXPIRES_IN: %w", err)
	}

	cfg := Config{
		Host: EnvDefault("HOST", "0.0.0.0"),
		Port: EnvIntDefault("PORT", 3000),

		AccessSecret:  []byte(os.Getenv("SECRET_FOR_ACCESS_TOKEN")),
		RefreshSecret: []byte(os.Getenv("SECRET_FOR_REFRESH_TOKEN")),
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,

		DatabaseURL:     databaseURL(),
		DatabaseLogging: EnvBool("DATABASE_LOGGING"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "ideas"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.AccessSecret) == 0 {
		return errors.New("missing required env SECRET_FOR_ACCESS_TOKEN")
	}
	if len(c.RefreshSecret) == 0 {
		return errors.New("missing required env SECRET_FOR_REFRESH_TOKEN")
	}
	if string(c.AccessSecret) == string(c.RefreshSecret) {
		return errors.New("SECRET_FOR_ACCESS_TOKEN and SECRET_FOR_REFRESH_TOKEN must differ")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(EnvDefault("DATABASE_USER", "postgres"), os.Getenv("DATABASE_PASSWORD")),
		Host:     net.JoinHostPort(EnvDefault("DATABASE_HOST", "localhost"), EnvDefault("DATABASE_PORT", "5432")),
		Path:     "/" + EnvDefault("DATABASE_NAME", "idea_board"),
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// ParseTTL accepts bare seconds ("900") or a duration string such as
// "15m", "1h" or "7d".
func ParseTTL(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("ttl must be positive, got %q", v)
		}
		return time.Duration(n) * time.Second, nil
	}

	d, err := str2duration.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse ttl %q: %w", v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("ttl must be positive, got %q", v)
	}
	return d, nil
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
