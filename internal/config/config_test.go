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

[logs]
file = "logs/test.log"
level = "info"

[metrics]
enabled = false
service_name = "test-service"
path = "/metrics"

[venue]
name = "Test Venue"
booking_window_days = 30
hold_timeout_minutes = 5
sweep_interval_seconds = 30

[[catalog.sports]]
name = "badminton"
hourly_rate_usd = 10.0
courts = ["B01", "B02"]

[[accounts.users]]
username = "user1"
balance_usd = 100.0

[[accounts.admins]]
username = "admin"
balance_usd = 0.0
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
	assert.Equal(t, 30, cfg.Venue.BookingWindowDays)
	assert.Equal(t, 5, cfg.Venue.HoldTimeoutMinutes)
	require.Len(t, cfg.Catalog.Sports, 1)
	assert.Equal(t, []string{"B01", "B02"}, cfg.Catalog.Sports[0].Courts)
	require.Len(t, cfg.Accounts.Users, 1)
	require.Len(t, cfg.Accounts.Admins, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  string
		replace string
	}{
		{"invalid port", "http_port = 8080", "http_port = 0"},
		{"negative window", "booking_window_days = 30", "booking_window_days = -1"},
		{"zero hold timeout", "hold_timeout_minutes = 5", "hold_timeout_minutes = 0"},
		{"zero sweep interval", "sweep_interval_seconds = 30", "sweep_interval_seconds = 0"},
		{"negative rate", "hourly_rate_usd = 10.0", "hourly_rate_usd = -1.0"},
		{"negative balance", "balance_usd = 100.0", "balance_usd = -5.0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			broken := strings.Replace(validConfig, tc.mutate, tc.replace, 1)

			_, err := Load(writeConfig(t, broken))
			assert.Error(t, err)
		})
	}
}

func TestLoad_DuplicateCourtAcrossSports(t *testing.T) {
	broken := validConfig + `
[[catalog.sports]]
name = "pickleball"
hourly_rate_usd = 40.0
courts = ["B01"]
`
	_, err := Load(writeConfig(t, broken))
	assert.Error(t, err)
}

func TestLoad_DuplicateAccount(t *testing.T) {
	broken := validConfig + `
[[accounts.users]]
username = "admin"
balance_usd = 10.0
`
	_, err := Load(writeConfig(t, broken))
	assert.Error(t, err)
}
