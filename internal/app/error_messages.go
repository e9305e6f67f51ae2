// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// page machine and the command-line entry points.
//
// All Msg* constants are human-readable messages shown to the operator in
// the error bar of the interactive session or printed by the CLI. Keeping
// them in one place ensures consistent wording throughout the tool.
package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

const (
	// MsgWrongPassphrase is shown when a passphrase does not unlock the
	// master key.
	MsgWrongPassphrase = "wrong passphrase"

	// MsgWrongExportPassphrase is shown when an export bundle does not open
	// under the given export passphrase.
	MsgWrongExportPassphrase = "wrong export passphrase"

	// MsgInvalidKeyFile is shown when the persisted master key cannot be
	// parsed.
	MsgInvalidKeyFile = "master key file is corrupted"

	// MsgDecryptFailed is shown when a secret cannot be decrypted.
	MsgDecryptFailed = "secret could not be decrypted"

	// MsgEncryptFailed is shown when a secret cannot be encrypted.
	MsgEncryptFailed = "secret could not be encrypted"

	// MsgSecretNotFound is shown when the selected secret disappeared from
	// the store.
	MsgSecretNotFound = "secret not found"

	// MsgInvalidSecretName is shown when a name cannot be used as a
	// storage key.
	MsgInvalidSecretName = "invalid secret name"

	// MsgStorageFailed is shown for any other backend failure.
	MsgStorageFailed = "storage error"

	// MsgTimedOut is shown when a vault operation exceeded its timeout.
	MsgTimedOut = "operation timed out"

	// MsgUnsupportedBundle is shown for an export bundle of an unknown
	// version.
	MsgUnsupportedBundle = "unsupported export bundle"

	// MsgBusy is shown while a timed-out operation is still finishing.
	MsgBusy = "previous operation still running, try again"
)

// UserMessage returns the operator-facing text for err. Errors not known to
// this package are described by their own message.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimedOut
	case errors.Is(err, service.ErrOperationInFlight):
		return MsgBusy
	case errors.Is(err, crypto.ErrWrongPassphrase):
		return MsgWrongPassphrase
	case errors.Is(err, crypto.ErrWrongExportPassphrase):
		return MsgWrongExportPassphrase
	case errors.Is(err, crypto.ErrUnsupportedBundle):
		return MsgUnsupportedBundle
	case errors.Is(err, crypto.ErrKeyFormat):
		return MsgInvalidKeyFile
	case errors.Is(err, crypto.ErrDecrypt):
		return MsgDecryptFailed
	case errors.Is(err, crypto.ErrEncrypt):
		return MsgEncryptFailed
	case errors.Is(err, store.ErrSecretNotFound):
		return MsgSecretNotFound
	case errors.Is(err, store.ErrInvalidSecretName):
		return MsgInvalidSecretName
	case errors.Is(err, store.ErrStorage):
		return MsgStorageFailed
	default:
		return err.Error()
	}
}
