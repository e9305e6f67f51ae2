// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Nested sections are
// addressed through their envPrefix tags, so the private key path is read
// from KEYS_PRIVATE_KEY_PATH and the bucket from STORAGE_S3_BUCKET. An
// empty variable leaves the zero value, which the merge step treats as unset.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("read vault settings from environment: %w", err)
	}

	return nil
}
