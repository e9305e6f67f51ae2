// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"fmt"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// MasterKey is a parsed, locked OpenPGP private key together with the armored
// form it was read from. The private material inside entity is never
// decrypted; unlocking always happens on a fresh copy parsed from armored.
type MasterKey struct {
	armored []byte
	entity  *openpgp.Entity
}

// Armored returns a copy of the armored private key.
func (k *MasterKey) Armored() []byte {
	return bytes.Clone(k.armored)
}

// Fingerprint returns the primary key fingerprint in upper-case hex.
func (k *MasterKey) Fingerprint() string {
	return fmt.Sprintf("%X", k.entity.PrimaryKey.Fingerprint)
}

// Protected reports whether the private keys are passphrase encrypted.
func (k *MasterKey) Protected() bool {
	if k.entity.PrivateKey != nil && k.entity.PrivateKey.Encrypted {
		return true
	}
	for _, sub := range k.entity.Subkeys {
		if sub.PrivateKey != nil && sub.PrivateKey.Encrypted {
			return true
		}
	}
	return false
}

// UserID returns the name of the key's first identity.
func (k *MasterKey) UserID() string {
	for name := range k.entity.Identities {
		return name
	}
	return ""
}
