package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// NewSecretStore opens the backend selected by cfg.Backend. Paths are
// expected to be resolved already (see [config.StructuredConfig.ApplyNamespace]).
func NewSecretStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (SecretStore, error) {
	log.Info().Str("backend", cfg.Backend).Msg("opening secret store...")

	switch cfg.Backend {
	case config.BackendFiles, "":
		return NewFileSecretStore(cfg.Files.SecretsDir, log)
	case config.BackendSQLite:
		return NewSQLiteSecretStore(ctx, cfg.DB.DSN, log)
	case config.BackendBadger:
		return NewBadgerSecretStore(cfg.Badger.Dir, log)
	case config.BackendS3:
		s3, err := NewS3SecretStore(cfg.S3, log)
		if err != nil {
			return nil, err
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s3, nil
	default:
		return nil, storageErr("open", fmt.Errorf("unknown backend %q", cfg.Backend))
	}
}
