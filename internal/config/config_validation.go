// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.BaseDir == "" {
		return fmt.Errorf("%w: empty base dir", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Backend {
	case BackendFiles, BackendSQLite, BackendBadger:
	case BackendS3:
		if cfg.Storage.S3.Endpoint == "" || cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 backend needs endpoint and bucket", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.App.TickInterval <= 0 || cfg.App.OperationTimeout <= 0 {
		return fmt.Errorf("%w: tick interval and operation timeout must be positive", ErrInvalidAppConfigs)
	}

	if !models.ExportFormat(cfg.App.ExportFormat).Valid() {
		return fmt.Errorf("%w: unknown export format %q", ErrInvalidAppConfigs, cfg.App.ExportFormat)
	}

	return nil
}
