// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAMESPACE":         "work",
		"APP_TICK_INTERVAL":     "16ms",
		"APP_OPERATION_TIMEOUT": "5s",
		"APP_EXPORT_FORMAT":     "v2",
		"APP_TERMINATE_PAGES":   "list,search_body",

		"STORAGE_BASE_DIR":          "/vault",
		"STORAGE_BACKEND":           "s3",
		"STORAGE_FILES_SECRETS_DIR": "/vault/secrets",
		"STORAGE_DB_DSN":            "/vault/vault.db",
		"STORAGE_BADGER_DIR":        "/vault/badger",

		"STORAGE_S3_ENDPOINT":          "localhost:9000",
		"STORAGE_S3_BUCKET":            "vault",
		"STORAGE_S3_ACCESS_KEY_ID":     "minio",
		"STORAGE_S3_SECRET_ACCESS_KEY": "minio123",
		"STORAGE_S3_USE_SSL":           "true",

		"KEYS_PRIVATE_KEY_PATH": "/vault/.private_1",
		"KEYS_EXPORT_PATH":      "/backup/key.export",

		"LOG_PATH":  "/var/log/vault.log",
		"LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "work", cfg.App.Namespace)
	assert.Equal(t, 16*time.Millisecond, cfg.App.TickInterval)
	assert.Equal(t, 5*time.Second, cfg.App.OperationTimeout)
	assert.Equal(t, "v2", cfg.App.ExportFormat)
	assert.Equal(t, []string{"list", "search_body"}, cfg.App.TerminatePages)

	assert.Equal(t, "/vault", cfg.Storage.BaseDir)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "/vault/secrets", cfg.Storage.Files.SecretsDir)
	assert.Equal(t, "/vault/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/vault/badger", cfg.Storage.Badger.Dir)

	assert.Equal(t, "localhost:9000", cfg.Storage.S3.Endpoint)
	assert.Equal(t, "vault", cfg.Storage.S3.Bucket)
	assert.Equal(t, "minio", cfg.Storage.S3.AccessKeyID)
	assert.Equal(t, "minio123", cfg.Storage.S3.SecretAccessKey)
	assert.True(t, cfg.Storage.S3.UseSSL)

	assert.Equal(t, "/vault/.private_1", cfg.Keys.PrivateKeyPath)
	assert.Equal(t, "/backup/key.export", cfg.Keys.ExportPath)

	assert.Equal(t, "/var/log/vault.log", cfg.Log.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"STORAGE_BACKEND": "sqlite",
		"APP_NAMESPACE":   "work",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "work", cfg.App.Namespace)

	// Others untouched
	assert.Empty(t, cfg.Storage.BaseDir)
	assert.Zero(t, cfg.App.TickInterval)
	assert.Empty(t, cfg.Keys)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_TICK_INTERVAL": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"milliseconds", "8ms", 8 * time.Millisecond},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{
				"APP_OPERATION_TIMEOUT": tt.envValue,
			})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.App.OperationTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_NAMESPACE",
		"APP_TICK_INTERVAL",
		"APP_OPERATION_TIMEOUT",
		"APP_EXPORT_FORMAT",
		"APP_TERMINATE_PAGES",

		"STORAGE_BASE_DIR",
		"STORAGE_BACKEND",
		"STORAGE_FILES_SECRETS_DIR",
		"STORAGE_DB_DSN",
		"STORAGE_BADGER_DIR",
		"STORAGE_S3_ENDPOINT",
		"STORAGE_S3_BUCKET",
		"STORAGE_S3_PREFIX",
		"STORAGE_S3_REGION",
		"STORAGE_S3_ACCESS_KEY_ID",
		"STORAGE_S3_SECRET_ACCESS_KEY",
		"STORAGE_S3_USE_SSL",

		"KEYS_PRIVATE_KEY_PATH",
		"KEYS_EXPORT_PATH",

		"LOG_PATH",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
