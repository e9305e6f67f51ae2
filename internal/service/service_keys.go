package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type keyService struct {
	path    string
	keyring crypto.KeyRing
	wrapper crypto.Wrapper

	logger *logger.Logger
}

// NewKeyService manages the armored master key stored at path.
func NewKeyService(path string, keyring crypto.KeyRing, wrapper crypto.Wrapper, logger *logger.Logger) KeyService {
	return &keyService{
		path:    path,
		keyring: keyring,
		wrapper: wrapper,
		logger:  logger,
	}
}

func (k *keyService) Exists() (bool, error) {
	_, err := os.Stat(k.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrKeyFile, err)
	}
	return true, nil
}

func (k *keyService) Create(passphrase []byte) (*crypto.MasterKey, error) {
	exists, err := k.Exists()
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrKeyExists, k.path)
	}

	key, err := k.keyring.Generate(passphrase)
	if err != nil {
		k.logger.Err(err).Str("func", "keyService.Create").Msg("failed to generate master key")
		return nil, fmt.Errorf("generate master key: %w", err)
	}

	if err = writePrivateFile(k.path, key.Armored()); err != nil {
		k.logger.Err(err).Str("func", "keyService.Create").Str("path", k.path).Msg("failed to persist master key")
		return nil, fmt.Errorf("%w: %w", ErrKeyFile, err)
	}

	k.logger.Info().Str("fingerprint", key.Fingerprint()).Str("path", k.path).Msg("master key created")
	return key, nil
}

func (k *keyService) Unlock(passphrase []byte) (*crypto.MasterKey, error) {
	armored, err := os.ReadFile(k.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, k.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFile, err)
	}

	key, err := k.keyring.Parse(armored)
	if err != nil {
		k.logger.Err(err).Str("func", "keyService.Unlock").Str("path", k.path).Msg("failed to parse master key")
		return nil, err
	}

	if err = k.keyring.VerifyPassphrase(key, passphrase); err != nil {
		return nil, err
	}

	return key, nil
}

func (k *keyService) Import(bundle, exportPassphrase, keyPassphrase []byte, force bool) (*crypto.MasterKey, error) {
	exists, err := k.Exists()
	if err != nil {
		return nil, err
	}
	if exists && !force {
		return nil, fmt.Errorf("%w: %s (use --force to replace it)", ErrKeyExists, k.path)
	}

	material, err := k.wrapper.Unwrap(bundle, exportPassphrase)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(material)

	key, err := k.keyring.Parse(material)
	if err != nil {
		return nil, err
	}
	if err = k.keyring.VerifyPassphrase(key, keyPassphrase); err != nil {
		return nil, err
	}

	if err = writePrivateFile(k.path, key.Armored()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFile, err)
	}

	k.logger.Info().
		Str("fingerprint", key.Fingerprint()).
		Str("format", string(crypto.DetectFormat(bundle))).
		Bool("replaced", exists).
		Msg("master key imported")

	return key, nil
}
