// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

// wrapper is the [Wrapper] implementation. It writes bundles in one format
// and reads both.
type wrapper struct {
	format models.ExportFormat
	v2     *v2Codec
}

// NewWrapper constructs a [Wrapper] writing bundles in format. An unknown
// format falls back to [models.ExportFormatLegacy].
func NewWrapper(format models.ExportFormat) Wrapper {
	if !format.Valid() {
		format = models.ExportFormatLegacy
	}

	return &wrapper{
		format: format,
		v2:     newV2Codec(rand.Reader),
	}
}

// Wrap implements [Wrapper].
func (w *wrapper) Wrap(material, passphrase []byte) ([]byte, error) {
	switch w.format {
	case models.ExportFormatV2:
		return w.v2.seal(material, passphrase)
	default:
		return legacySeal(material, passphrase)
	}
}

// Unwrap implements [Wrapper].
func (w *wrapper) Unwrap(bundle, passphrase []byte) ([]byte, error) {
	if bytes.HasPrefix(bundle, v2Magic) {
		return w.v2.open(bundle, passphrase)
	}
	return legacyOpen(bundle, passphrase)
}

// DetectFormat reports which codec produced bundle.
func DetectFormat(bundle []byte) models.ExportFormat {
	if bytes.HasPrefix(bundle, v2Magic) {
		return models.ExportFormatV2
	}
	return models.ExportFormatLegacy
}

func randomBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	return b, nil
}
