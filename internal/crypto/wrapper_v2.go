// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
)

const (
	v2Version = 2
	v2SaltLen = 16
)

// v2Magic opens every versioned bundle; the version byte follows it.
var v2Magic = []byte("GPVB")

// v2Codec writes magic ‖ version ‖ salt ‖ nonce ‖ AES-256-GCM(material).
// The header is authenticated as additional data.
type v2Codec struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	rand io.Reader
}

// newV2Codec uses the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func newV2Codec(rand io.Reader) *v2Codec {
	return &v2Codec{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		rand:         rand,
	}
}

func (c *v2Codec) deriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, c.argonTime, c.argonMemory, c.argonThreads, c.argonKeyLen)
}

func (c *v2Codec) seal(material, passphrase []byte) ([]byte, error) {
	salt, err := randomBytes(c.rand, v2SaltLen)
	if err != nil {
		return nil, err
	}

	key := c.deriveKey(passphrase, salt)
	defer memguard.WipeBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(c.rand, gcm.NonceSize())
	if err != nil {
		return nil, err
	}

	header := make([]byte, 0, len(v2Magic)+1+v2SaltLen+len(nonce))
	header = append(header, v2Magic...)
	header = append(header, v2Version)
	header = append(header, salt...)
	header = append(header, nonce...)

	return gcm.Seal(header, nonce, material, header), nil
}

func (c *v2Codec) open(bundle, passphrase []byte) ([]byte, error) {
	prefix := len(v2Magic) + 1
	if len(bundle) < prefix {
		return nil, fmt.Errorf("%w: truncated header", ErrWrongExportPassphrase)
	}
	if bundle[len(v2Magic)] != v2Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBundle, bundle[len(v2Magic)])
	}

	if len(bundle) < prefix+v2SaltLen {
		return nil, fmt.Errorf("%w: truncated header", ErrWrongExportPassphrase)
	}
	salt := bundle[prefix : prefix+v2SaltLen]

	key := c.deriveKey(passphrase, salt)
	defer memguard.WipeBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	headerLen := prefix + v2SaltLen + gcm.NonceSize()
	if len(bundle) < headerLen+gcm.Overhead() {
		return nil, fmt.Errorf("%w: truncated bundle", ErrWrongExportPassphrase)
	}

	header := bundle[:headerLen]
	nonce := bundle[prefix+v2SaltLen : headerLen]

	// An authentication failure almost always means a wrong passphrase.
	material, err := gcm.Open(nil, nonce, bundle[headerLen:], header)
	if err != nil {
		return nil, ErrWrongExportPassphrase
	}

	return material, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
