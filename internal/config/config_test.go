package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "calendar"

[business_service]
url = "http://business:8080"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5, cfg.BusinessService.Timeout)
	assert.Equal(t, "UTC", cfg.Calendar.DefaultTimezone)
	assert.Equal(t, "host=localhost port=5432 user= password= dbname=calendar sslmode=disable", cfg.Database.DSN())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "calendar"
user = "calendar"

[metrics]
enabled = true

[business_service]
url = "http://business:8080"
timeout = 2

[redis]
enabled = true
addr = "redis:6379"
ttl = 60

[calendar]
default_timezone = "Europe/Moscow"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 60, cfg.Redis.TTL)

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing dbname",
			content: `
[business_service]
url = "http://business:8080"
`,
		},
		{
			name: "missing business service url",
			content: `
[database]
dbname = "calendar"
`,
		},
		{
			name: "unknown timezone",
			content: `
[database]
dbname = "calendar"
[business_service]
url = "http://business:8080"
[calendar]
default_timezone = "Mars/Olympus"
`,
		},
		{
			name: "bad port",
			content: `
[server]
http_port = 70000
[database]
dbname = "calendar"
[business_service]
url = "http://business:8080"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
