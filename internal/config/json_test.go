package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJson(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	tests := []struct {
		name        string
		body        string
		expected    func() *Config
		expectPanic bool
	}{
		{
			name: "overlay present keys",
			body: `{"storage":"memory","redis_dial_timeout":"2s","password_hasher":"argon2id","seed_demo_data":false}`,
			expected: func() *Config {
				c := &Config{}
				c.LoadDefaults()
				c.Storage = StorageMemory
				c.RedisDialTimeout = 2 * time.Second
				c.PasswordHasher = "argon2id"
				c.SeedDemoData = false
				return c
			},
		},
		{
			name: "nanosecond duration",
			body: `{"redis_dial_timeout":1000000}`,
			expected: func() *Config {
				c := &Config{}
				c.LoadDefaults()
				c.RedisDialTimeout = time.Millisecond
				return c
			},
		},
		{name: "broken json", body: `{"storage":`, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempJSON(t, tt.body)
			os.Args = []string{"cmd", "-config=" + path}

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseJson(cfg) })
				return
			}
			require.NotPanics(t, func() { parseJson(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected(), cfg))
		})
	}
}

func TestParseJson_NoFlag(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-s", "memory"}

	cfg := &Config{Storage: StorageSQLite}
	parseJson(cfg)
	assert.Equal(t, StorageSQLite, cfg.Storage)
}

func TestParseJson_MissingFile(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "nope.json")}

	require.Panics(t, func() { parseJson(&Config{}) })
}
