// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging command-line flags, environment variables, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session behaviour: namespace, event cadence and timeouts.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the secret store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Keys holds master key and export locations.
	Keys Keys `envPrefix:"KEYS_"`

	// Log controls where the client log file lives and its verbosity.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings for the interactive session.
type App struct {
	// Namespace is the vault namespace to open. Empty means the default
	// namespace recorded in the base directory's .config.toml.
	// Env: APP_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// TickInterval is the period of Tick events driving list refreshes.
	// Env: APP_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// OperationTimeout bounds every vault call made on behalf of a key press.
	// Env: APP_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`

	// ExportFormat is "legacy" or "v2".
	// Env: APP_EXPORT_FORMAT
	ExportFormat string `env:"EXPORT_FORMAT"`

	// TerminatePages lists the pages on which q and Ctrl+c end the session.
	// Env: APP_TERMINATE_PAGES (comma separated)
	TerminatePages []string `env:"TERMINATE_PAGES" envSeparator:","`
}

// Storage groups the configuration for all secret store backends.
type Storage struct {
	// BaseDir is the vault root holding namespace configs, keys and secrets.
	// Env: STORAGE_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// Backend is one of "files", "sqlite", "badger" or "s3".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Files holds the file backend settings.
	Files Files `envPrefix:"FILES_"`

	// DB holds the sqlite backend settings.
	DB DB `envPrefix:"DB_"`

	// Badger holds the badger backend settings.
	Badger Badger `envPrefix:"BADGER_"`

	// S3 holds the object store backend settings.
	S3 S3 `envPrefix:"S3_"`
}

// Files holds file-system settings for the default secret store.
type Files struct {
	// SecretsDir is the directory with one ciphertext file per secret.
	// Defaults to the namespace's secrets_dir.
	// Env: STORAGE_FILES_SECRETS_DIR
	SecretsDir string `env:"SECRETS_DIR"`
}

// DB holds connection settings for the sqlite backend.
type DB struct {
	// DSN is the sqlite database path or file: URI.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Badger holds settings for the badger backend.
type Badger struct {
	// Dir is the badger database directory.
	// Env: STORAGE_BADGER_DIR
	Dir string `env:"DIR"`
}

// S3 holds settings for an S3-compatible object store.
type S3 struct {
	// Env: STORAGE_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: STORAGE_S3_BUCKET
	Bucket string `env:"BUCKET"`
	// Prefix is prepended to every object name.
	// Env: STORAGE_S3_PREFIX
	Prefix string `env:"PREFIX"`
	// Env: STORAGE_S3_REGION
	Region string `env:"REGION"`
	// Env: STORAGE_S3_ACCESS_KEY_ID
	AccessKeyID string `env:"ACCESS_KEY_ID"`
	// Env: STORAGE_S3_SECRET_ACCESS_KEY
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	// Env: STORAGE_S3_USE_SSL
	UseSSL bool `env:"USE_SSL"`
}

// Keys holds the master key locations.
type Keys struct {
	// PrivateKeyPath is the armored master key file. Defaults to the
	// namespace's private_key_path.
	// Env: KEYS_PRIVATE_KEY_PATH
	PrivateKeyPath string `env:"PRIVATE_KEY_PATH"`

	// ExportPath is the location prefilled on the export page.
	// Env: KEYS_EXPORT_PATH
	ExportPath string `env:"EXPORT_PATH"`
}

// Log holds client logging settings.
type Log struct {
	// Env: LOG_PATH
	Path string `env:"PATH"`
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. flags holds the values bound with [BindFlags]; it may be nil.
//
// Sources are consulted in priority order (the first non-zero value wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// Load builds the structured config and resolves the vault namespace on
// disk, creating the base directory and namespace files on first run. The
// namespace's key path and secrets directory fill settings left empty.
func Load(flags *StructuredConfig) (*StructuredConfig, *Namespace, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, nil, err
	}

	ns, err := ResolveNamespace(cfg.Storage.BaseDir, cfg.App.Namespace)
	if err != nil {
		return nil, nil, err
	}
	cfg.ApplyNamespace(ns)

	return cfg, ns, nil
}
