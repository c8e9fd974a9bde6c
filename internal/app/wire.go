package app

import (
	"context"
	"fmt"
	"strings"

	s3blob "github.com/lagosrent/rentoracle/internal/blob/s3"
	"github.com/lagosrent/rentoracle/internal/config"
	"github.com/lagosrent/rentoracle/internal/dataset"
	"github.com/lagosrent/rentoracle/internal/domain"
	"github.com/lagosrent/rentoracle/internal/store/postgres"
)

// wireSource constructs the concrete dataset source selected by the
// configuration. The caller owns the returned source and must Close it once
// the dataset has been fetched.
func wireSource(ctx context.Context, cfg *config.Config) (domain.DatasetSource, error) {
	switch strings.ToLower(cfg.Dataset.Source) {
	case "file":
		return dataset.NewFileSource(cfg.Dataset.Path), nil

	case "s3":
		client, err := s3blob.New(ctx, s3blob.ClientConfig{
			Endpoint:       cfg.S3.Endpoint,
			Region:         cfg.S3.Region,
			Bucket:         cfg.S3.Bucket,
			AccessKey:      cfg.S3.AccessKey,
			SecretKey:      cfg.S3.SecretKey,
			UseSSL:         cfg.S3.UseSSL,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("wire: s3: %w", err)
		}
		return s3blob.NewSource(client, cfg.Dataset.Key), nil

	case "postgres":
		client, err := postgres.New(ctx, postgres.ClientConfig{
			DSN:      cfg.Postgres.DSN,
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			Database: cfg.Postgres.Database,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			SSLMode:  cfg.Postgres.SSLMode,
			MaxConns: cfg.Postgres.PoolMaxConns,
			MinConns: cfg.Postgres.PoolMinConns,
		})
		if err != nil {
			return nil, fmt.Errorf("wire: postgres: %w", err)
		}
		if cfg.Postgres.RunMigrations {
			if err := client.RunMigrations(ctx); err != nil {
				client.Close()
				return nil, fmt.Errorf("wire: postgres migrations: %w", err)
			}
		}
		return postgres.NewAreaStore(client), nil

	default:
		return nil, fmt.Errorf("wire: unsupported dataset source %q", cfg.Dataset.Source)
	}
}
