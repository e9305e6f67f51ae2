// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Secret is a single vault entry as it is persisted: the entry name and the
// OpenPGP ciphertext of its body. Plaintext never lives in this type.
type Secret struct {
	// Name is the storage key of the secret. It must be usable as a single
	// path component.
	Name string

	// Ciphertext is the public-key encryption of the UTF-8 secret body.
	Ciphertext []byte
}

// SecretDraft is a plaintext secret being saved from the edit flow.
type SecretDraft struct {
	// Name is the name the secret is saved under.
	Name string
	// Body is the plaintext secret.
	Body string
	// OriginalName is set when an existing secret is being edited. When it
	// differs from Name, the old entry is removed after the new one is written.
	OriginalName string
}

// Renamed reports whether saving the draft replaces an entry stored under a
// different name.
func (d SecretDraft) Renamed() bool {
	return d.OriginalName != "" && d.OriginalName != d.Name
}
