package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/demomarket/internal/timex"
)

// JsonConfig is the on-disk shape. Pointer fields tell a missing key from a
// zero value.
type JsonConfig struct {
	Storage          *string         `json:"storage"`
	SQLitePath       *string         `json:"sqlite_path"`
	PostgresDSN      *string         `json:"postgres_dsn"`
	RedisAddr        *string         `json:"redis_addr"`
	RedisPassword    *string         `json:"redis_password"`
	RedisDB          *int            `json:"redis_db"`
	RedisDialTimeout *timex.Duration `json:"redis_dial_timeout"`
	PasswordHasher   *string         `json:"password_hasher"`
	SeedDemoData     *bool           `json:"seed_demo_data"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Read or decode errors panic.
func parseJson(cfg *Config) {
	path := jsonConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setIf(&cfg.Storage, jc.Storage)
	setIf(&cfg.SQLitePath, jc.SQLitePath)
	setIf(&cfg.PostgresDSN, jc.PostgresDSN)
	setIf(&cfg.RedisAddr, jc.RedisAddr)
	setIf(&cfg.RedisPassword, jc.RedisPassword)
	setIf(&cfg.RedisDB, jc.RedisDB)
	setIf(&cfg.PasswordHasher, jc.PasswordHasher)
	setIf(&cfg.SeedDemoData, jc.SeedDemoData)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.RedisDialTimeout != nil {
		cfg.RedisDialTimeout = jc.RedisDialTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
