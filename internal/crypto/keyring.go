// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	stdcrypto "crypto"
	"crypto/rsa"
	"errors"
	"fmt"
	"io"
	"math/big"
	"slices"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	keyBits    = 2048
	keyName    = "Me"
	keyEmail   = "me@mail.com"
	keyComment = ""
)

// keyRing is the OpenPGP implementation of [KeyRing].
type keyRing struct {
	config *packet.Config
	log    *logger.Logger
}

// NewKeyRing constructs a [KeyRing] producing RSA-2048 keys that prefer
// AES-256 and SHA-256.
func NewKeyRing(log *logger.Logger) KeyRing {
	return &keyRing{
		config: &packet.Config{
			Algorithm:     packet.PubKeyAlgoRSA,
			RSABits:       keyBits,
			DefaultHash:   stdcrypto.SHA256,
			DefaultCipher: packet.CipherAES256,
			Time:          time.Now,
		},
		log: log,
	}
}

// Generate implements [KeyRing].
func (k *keyRing) Generate(passphrase []byte) (*MasterKey, error) {
	entity, err := openpgp.NewEntity(keyName, keyComment, keyEmail, k.config)
	if err != nil {
		return nil, fmt.Errorf("generate entity: %w", err)
	}

	if len(passphrase) > 0 {
		if err = entity.EncryptPrivateKeys(passphrase, k.config); err != nil {
			return nil, fmt.Errorf("protect private keys: %w", err)
		}
	}

	armored, err := armorPrivate(entity, k.config)
	if err != nil {
		return nil, err
	}

	key := &MasterKey{armored: armored, entity: entity}
	k.log.Info().
		Str("func", "keyRing.Generate").
		Str("fingerprint", key.Fingerprint()).
		Bool("protected", key.Protected()).
		Msg("master key generated")

	return key, nil
}

// Parse implements [KeyRing].
func (k *keyRing) Parse(armored []byte) (*MasterKey, error) {
	entity, err := readEntity(armored)
	if err != nil {
		return nil, err
	}

	return &MasterKey{armored: bytes.Clone(armored), entity: entity}, nil
}

// VerifyPassphrase implements [KeyRing].
func (k *keyRing) VerifyPassphrase(key *MasterKey, passphrase []byte) error {
	return k.withUnlocked(key, passphrase, func(*openpgp.Entity) error { return nil })
}

// Encrypt implements [KeyRing].
func (k *keyRing) Encrypt(key *MasterKey, plaintext []byte) ([]byte, error) {
	if key == nil {
		return nil, ErrKeyFormat
	}

	var buf bytes.Buffer
	w, err := openpgp.Encrypt(&buf, []*openpgp.Entity{key.entity}, nil, nil, k.config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncrypt, err)
	}
	if _, err = w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncrypt, err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncrypt, err)
	}

	return buf.Bytes(), nil
}

// Decrypt implements [KeyRing].
func (k *keyRing) Decrypt(key *MasterKey, passphrase, ciphertext []byte) ([]byte, error) {
	var plaintext []byte
	err := k.withUnlocked(key, passphrase, func(unlocked *openpgp.Entity) error {
		md, err := openpgp.ReadMessage(bytes.NewReader(ciphertext), openpgp.EntityList{unlocked}, nil, k.config)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecrypt, err)
		}
		// a bare literal message parses fine but proves nothing
		if !md.IsEncrypted || !encryptedTo(md, unlocked) {
			return fmt.Errorf("%w: message is not encrypted to this key", ErrDecrypt)
		}

		// The integrity check runs when the body is read to EOF.
		out, err := io.ReadAll(md.UnverifiedBody)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecrypt, err)
		}

		plaintext = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

// ExportPrivate implements [KeyRing].
func (k *keyRing) ExportPrivate(key *MasterKey, passphrase []byte) ([]byte, error) {
	if err := k.VerifyPassphrase(key, passphrase); err != nil {
		return nil, err
	}
	return key.Armored(), nil
}

// withUnlocked parses a private copy of key, decrypts it with passphrase and
// hands it to fn. The decrypted private values of the copy are zeroed on
// every exit path. passphrase belongs to the caller and is left as is.
func (k *keyRing) withUnlocked(key *MasterKey, passphrase []byte, fn func(*openpgp.Entity) error) error {
	if key == nil {
		return ErrKeyFormat
	}

	entity, err := readEntity(key.armored)
	if err != nil {
		return err
	}
	defer wipeEntity(entity)

	if err = unlock(entity, passphrase); err != nil {
		k.log.Debug().Str("func", "keyRing.withUnlocked").Msg("unlock rejected")
		return err
	}

	return fn(entity)
}

// encryptedTo reports whether md was addressed to one of entity's keys.
func encryptedTo(md *openpgp.MessageDetails, entity *openpgp.Entity) bool {
	ids := []uint64{entity.PrimaryKey.KeyId}
	for _, sub := range entity.Subkeys {
		ids = append(ids, sub.PublicKey.KeyId)
	}

	for _, id := range md.EncryptedToKeyIds {
		if slices.Contains(ids, id) {
			return true
		}
	}
	return false
}

// wipeEntity zeroes the decrypted RSA values of entity and drops them.
func wipeEntity(entity *openpgp.Entity) {
	wipePrivateKey(entity.PrivateKey)
	for _, sub := range entity.Subkeys {
		wipePrivateKey(sub.PrivateKey)
	}
}

func wipePrivateKey(pk *packet.PrivateKey) {
	if pk == nil || pk.PrivateKey == nil {
		return
	}

	if priv, ok := pk.PrivateKey.(*rsa.PrivateKey); ok {
		wipeInt(priv.D)
		for _, p := range priv.Primes {
			wipeInt(p)
		}
		wipeInt(priv.Precomputed.Dp)
		wipeInt(priv.Precomputed.Dq)
		wipeInt(priv.Precomputed.Qinv)
	}
	pk.PrivateKey = nil
}

func wipeInt(n *big.Int) {
	if n == nil {
		return
	}
	clear(n.Bits())
	n.SetInt64(0)
}

// unlock decrypts every private key of entity. A non-empty passphrase
// against an unprotected key is rejected as well.
func unlock(entity *openpgp.Entity, passphrase []byte) error {
	keys := []*packet.PrivateKey{entity.PrivateKey}
	for _, sub := range entity.Subkeys {
		keys = append(keys, sub.PrivateKey)
	}

	protected := false
	for _, pk := range keys {
		if pk != nil && pk.Encrypted {
			protected = true
		}
	}

	if !protected {
		if len(passphrase) > 0 {
			return ErrWrongPassphrase
		}
		return nil
	}
	if len(passphrase) == 0 {
		return ErrWrongPassphrase
	}

	for _, pk := range keys {
		if pk == nil || !pk.Encrypted {
			continue
		}
		if err := pk.Decrypt(passphrase); err != nil {
			return fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
		}
	}

	return nil
}

// readEntity parses exactly one armored private key and verifies its
// self-signatures.
func readEntity(armored []byte) (*openpgp.Entity, error) {
	list, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(armored))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFormat, err)
	}
	if len(list) != 1 {
		return nil, fmt.Errorf("%w: expected one key, got %d", ErrKeyFormat, len(list))
	}

	entity := list[0]
	if entity.PrivateKey == nil {
		return nil, fmt.Errorf("%w: no private key", ErrKeyFormat)
	}
	if err = verifySelfSignatures(entity); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFormat, err)
	}

	return entity, nil
}

func verifySelfSignatures(entity *openpgp.Entity) error {
	if len(entity.Identities) == 0 {
		return errors.New("no identities")
	}

	primary := entity.PrimaryKey
	for name, id := range entity.Identities {
		if id.SelfSignature == nil {
			return fmt.Errorf("identity %q is not self-signed", name)
		}
		if err := primary.VerifyUserIdSignature(name, primary, id.SelfSignature); err != nil {
			return fmt.Errorf("identity %q: %w", name, err)
		}
	}

	for _, sub := range entity.Subkeys {
		if sub.Sig == nil {
			return errors.New("unsigned subkey")
		}
		if err := primary.VerifyKeySignature(sub.PublicKey, sub.Sig); err != nil {
			return fmt.Errorf("subkey binding: %w", err)
		}
	}

	return nil
}

func armorPrivate(entity *openpgp.Entity, config *packet.Config) ([]byte, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		return nil, fmt.Errorf("armor encode: %w", err)
	}
	if err = entity.SerializePrivateWithoutSigning(w, config); err != nil {
		return nil, fmt.Errorf("serialize private key: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("armor close: %w", err)
	}

	return buf.Bytes(), nil
}
