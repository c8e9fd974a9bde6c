package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies RENTORACLE_* environment variable overrides, and
// returns the final Config. A missing file is not an error: the CLI works out
// of the box on defaults plus environment. The returned Config has NOT been
// validated; the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known RENTORACLE_* environment variables and
// overwrites the corresponding Config fields when a variable is set (i.e. not
// empty). This lets operators inject secrets without touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	// ── Dataset ──
	setStr(&cfg.Dataset.Source, "RENTORACLE_DATASET_SOURCE")
	setStr(&cfg.Dataset.Path, "RENTORACLE_DATASET_PATH")
	setStr(&cfg.Dataset.Key, "RENTORACLE_DATASET_KEY")

	// ── Postgres ──
	setStr(&cfg.Postgres.DSN, "RENTORACLE_POSTGRES_DSN")
	setStr(&cfg.Postgres.Host, "RENTORACLE_POSTGRES_HOST")
	setInt(&cfg.Postgres.Port, "RENTORACLE_POSTGRES_PORT")
	setStr(&cfg.Postgres.Database, "RENTORACLE_POSTGRES_DATABASE")
	setStr(&cfg.Postgres.User, "RENTORACLE_POSTGRES_USER")
	setStr(&cfg.Postgres.Password, "RENTORACLE_POSTGRES_PASSWORD")
	setStr(&cfg.Postgres.SSLMode, "RENTORACLE_POSTGRES_SSLMODE")
	setInt(&cfg.Postgres.PoolMaxConns, "RENTORACLE_POSTGRES_POOL_MAX_CONNS")
	setInt(&cfg.Postgres.PoolMinConns, "RENTORACLE_POSTGRES_POOL_MIN_CONNS")
	setBool(&cfg.Postgres.RunMigrations, "RENTORACLE_POSTGRES_RUN_MIGRATIONS")

	// ── S3 ──
	setStr(&cfg.S3.Endpoint, "RENTORACLE_S3_ENDPOINT")
	setStr(&cfg.S3.Region, "RENTORACLE_S3_REGION")
	setStr(&cfg.S3.Bucket, "RENTORACLE_S3_BUCKET")
	setStr(&cfg.S3.AccessKey, "RENTORACLE_S3_ACCESS_KEY")
	setStr(&cfg.S3.SecretKey, "RENTORACLE_S3_SECRET_KEY")
	setBool(&cfg.S3.UseSSL, "RENTORACLE_S3_USE_SSL")
	setBool(&cfg.S3.ForcePathStyle, "RENTORACLE_S3_FORCE_PATH_STYLE")

	// ── Top-level ──
	setStr(&cfg.LogLevel, "RENTORACLE_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
