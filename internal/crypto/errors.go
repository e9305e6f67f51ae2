// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Master key errors.
var (
	// ErrWrongPassphrase is returned when a passphrase does not unlock the
	// master key.
	ErrWrongPassphrase = errors.New("wrong passphrase")

	// ErrKeyFormat is returned when persisted key material cannot be parsed
	// or its self-signatures do not verify.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrEncrypt is returned when a secret cannot be encrypted to the key.
	ErrEncrypt = errors.New("encryption failed")

	// ErrDecrypt is returned when a ciphertext is malformed, tampered with or
	// was not encrypted to this key.
	ErrDecrypt = errors.New("decryption failed")
)

// Export bundle errors.
var (
	// ErrWrongExportPassphrase is returned when a bundle does not decrypt
	// under the given export passphrase.
	ErrWrongExportPassphrase = errors.New("wrong export passphrase")

	// ErrUnsupportedBundle is returned for a versioned bundle this build
	// cannot read.
	ErrUnsupportedBundle = errors.New("unsupported export bundle version")
)
