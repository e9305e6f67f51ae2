// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// DefaultBaseDir is the vault root used when nothing else is configured.
	DefaultBaseDir = "./.passm"
	// DefaultNamespace is the namespace created on first run.
	DefaultNamespace = "default"
	// DefaultPrivateKeyName is the master key file name inside the base dir.
	DefaultPrivateKeyName = ".private_1"
	// DefaultExportName is the file name prefilled on the export page.
	DefaultExportName = "passm_private_key.export"

	BackendFiles  = "files"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendS3     = "s3"
)

// Defaults returns the lowest-priority configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TickInterval:     8 * time.Millisecond,
			OperationTimeout: 10 * time.Second,
			ExportFormat:     "legacy",
			TerminatePages:   []string{"list"},
		},
		Storage: Storage{
			BaseDir: DefaultBaseDir,
			Backend: BackendFiles,
		},
		Log: Log{
			Level: "info",
		},
	}
}
