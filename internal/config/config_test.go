package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "booking"
sslmode = "disable"
max_open_conns = 20
max_idle_conns = 5
conn_max_lifetime = 300

[redis]
addr = "localhost:6379"
db = 0

[logs]
file = "logs/service.log"
level = "info"

[metrics]
enabled = true
service_name = "booking-service"
path = "/metrics"

[booking]
advance_booking_days = 30
min_booking_notice_minutes = 60
selection_ttl_seconds = 900
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 30, cfg.Booking.AdvanceBookingDays)
	assert.Equal(t, 60, cfg.Booking.MinBookingNoticeMinutes)
	assert.Equal(t, 900, cfg.Booking.SelectionTTLSeconds)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=booking password=secret dbname=booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutator func(string) string
	}{
		{
			name:    "zero http port",
			mutator: func(s string) string { return replaceLine(s, "http_port = 8080", "http_port = 0") },
		},
		{
			name:    "missing dbname",
			mutator: func(s string) string { return replaceLine(s, `dbname = "booking"`, `dbname = ""`) },
		},
		{
			name:    "missing redis addr",
			mutator: func(s string) string { return replaceLine(s, `addr = "localhost:6379"`, `addr = ""`) },
		},
		{
			name: "zero selection ttl",
			mutator: func(s string) string {
				return replaceLine(s, "selection_ttl_seconds = 900", "selection_ttl_seconds = 0")
			},
		},
		{
			name: "negative advance days",
			mutator: func(s string) string {
				return replaceLine(s, "advance_booking_days = 30", "advance_booking_days = -1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutator(validConfig)))
			assert.Error(t, err)
		})
	}
}

func replaceLine(content, old, new string) string {
	return strings.Replace(content, old, new, 1)
}
