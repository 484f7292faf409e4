package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_FOR_ACCESS_TOKEN", "access-secret")
	t.Setenv("SECRET_FOR_REFRESH_TOKEN", "refresh-secret")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{
		"HOST", "PORT", "JWT_ACCESS_EXPIRES_IN", "JWT_REFRESH_EXPIRES_IN",
		"DATABASE_URL", "DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER",
		"DATABASE_PASSWORD", "DATABASE_NAME", "DATABASE_LOGGING", "LOG_LEVEL",
		"KAFKA_BROKERS", "ES_URL", "ES_INDEX",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, "postgres://postgres:@localhost:5432/idea_board?sslmode=disable", cfg.DatabaseURL)
	assert.False(t, cfg.DatabaseLogging)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.KafkaBrokers)
	assert.Empty(t, cfg.ESURL)
	assert.Equal(t, "ideas", cfg.ESIndex)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "60")
	t.Setenv("JWT_REFRESH_EXPIRES_IN", "1d")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("DATABASE_LOGGING", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("ES_URL", "http://es:9200")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Addr())
	assert.Equal(t, time.Minute, cfg.AccessTTL)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DatabaseURL)
	assert.True(t, cfg.DatabaseLogging)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "http://es:9200", cfg.ESURL)
}

func TestFromEnv_DSNFromParts(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_PORT", "6543")
	t.Setenv("DATABASE_USER", "app")
	t.Setenv("DATABASE_PASSWORD", "p@ss")
	t.Setenv("DATABASE_NAME", "board")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:p%40ss@db:6543/board?sslmode=disable", cfg.DatabaseURL)
}

func TestFromEnv_Secrets(t *testing.T) {
	tests := []struct {
		name    string
		access  string
		refresh string
		wantErr string
	}{
		{name: "missing access", access: "", refresh: "r", wantErr: "SECRET_FOR_ACCESS_TOKEN"},
		{name: "missing refresh", access: "a", refresh: "", wantErr: "SECRET_FOR_REFRESH_TOKEN"},
		{name: "equal secrets", access: "same", refresh: "same", wantErr: "must differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SECRET_FOR_ACCESS_TOKEN", tt.access)
			t.Setenv("SECRET_FOR_REFRESH_TOKEN", tt.refresh)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromEnv_BadTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "soon")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_ACCESS_EXPIRES_IN")
}

func TestParseTTL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "900", want: 900 * time.Second},
		{in: "15m", want: 15 * time.Minute},
		{in: "1h30m", want: 90 * time.Minute},
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "0", wantErr: true},
		{in: "-5m", wantErr: true},
		{in: "", wantErr: true},
		{in: "later", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTTL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSV(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a", "b"}, CSV(" a ,,b "))
}
