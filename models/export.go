// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExportFormat selects the codec used when the master key is exported.
type ExportFormat string

const (
	// ExportFormatLegacy is PBKDF2-HMAC-SHA256 with a zero salt and 256
	// iterations feeding AES-256-CBC with a zero IV. Bundles are deterministic
	// for a given passphrase; kept so existing backups keep importing.
	ExportFormatLegacy ExportFormat = "legacy"

	// ExportFormatV2 is Argon2id with a random salt feeding AES-256-GCM,
	// prefixed with a version marker.
	ExportFormatV2 ExportFormat = "v2"
)

// Valid reports whether f names a supported format.
func (f ExportFormat) Valid() bool {
	return f == ExportFormatLegacy || f == ExportFormatV2
}

// ExportBundle is a wrapped master key ready to be written to disk.
type ExportBundle struct {
	Format     ExportFormat
	Ciphertext []byte
}
