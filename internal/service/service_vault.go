package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/awnumar/memguard"
	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	key     *crypto.MasterKey
	keyring crypto.KeyRing
	wrapper crypto.Wrapper
	store   store.SecretStore

	// passphrase is sealed for the whole session and opened per call.
	passphrase *memguard.Enclave
	timeout    time.Duration

	// busy is held while a call runs, including a call abandoned after
	// its timeout.
	busy *semaphore.Weighted

	logger *logger.Logger
}

// NewVaultService seals passphrase into an enclave; the caller's slice is
// wiped. A non-positive timeout selects [DefaultOperationTimeout].
func NewVaultService(
	key *crypto.MasterKey,
	passphrase []byte,
	keyring crypto.KeyRing,
	wrapper crypto.Wrapper,
	secrets store.SecretStore,
	timeout time.Duration,
	logger *logger.Logger,
) VaultService {
	if timeout <= 0 {
		timeout = DefaultOperationTimeout
	}

	return &vaultService{
		key:     key,
		keyring: keyring,
		wrapper: wrapper,
		store:   secrets,
		// NewEnclave returns nil for an empty passphrase
		passphrase: memguard.NewEnclave(passphrase),
		timeout:    timeout,
		busy:       semaphore.NewWeighted(1),
		logger:     logger,
	}
}

// exclusive runs fn under the operation timeout, one call at a time. A call
// made while a previous one is still running (usually one that timed out)
// fails at once with [ErrOperationInFlight].
func exclusive[T any](ctx context.Context, s *vaultService, kind error, fn func(ctx context.Context) (T, error)) (T, error) {
	if !s.busy.TryAcquire(1) {
		var zero T
		return zero, fmt.Errorf("%w: %w", store.ErrStorage, ErrOperationInFlight)
	}

	return withTimeout(ctx, s.timeout, kind, func(ctx context.Context) (T, error) {
		defer s.busy.Release(1)
		return fn(ctx)
	})
}

// withPassphrase opens the session passphrase for the duration of fn.
func (s *vaultService) withPassphrase(fn func(passphrase []byte) error) error {
	if s.passphrase == nil {
		return fn(nil)
	}

	buf, err := s.passphrase.Open()
	if err != nil {
		return fmt.Errorf("open session passphrase: %w", err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

func (s *vaultService) List(ctx context.Context) ([]string, error) {
	return exclusive(ctx, s, store.ErrStorage, func(ctx context.Context) ([]string, error) {
		return s.store.List(ctx)
	})
}

func (s *vaultService) Reveal(ctx context.Context, name string) (string, error) {
	return exclusive(ctx, s, crypto.ErrDecrypt, func(ctx context.Context) (string, error) {
		ciphertext, err := s.store.Read(ctx, name)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}

		var body string
		err = s.withPassphrase(func(passphrase []byte) error {
			plaintext, err := s.keyring.Decrypt(s.key, passphrase, ciphertext)
			if err != nil {
				return err
			}
			body = string(plaintext)
			memguard.WipeBytes(plaintext)
			return nil
		})
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "vaultService.Reveal").Str("name", name).Msg("failed to decrypt secret")
			return "", fmt.Errorf("decrypt secret: %w", err)
		}

		return body, nil
	})
}

func (s *vaultService) Save(ctx context.Context, draft models.SecretDraft) error {
	_, err := exclusive(ctx, s, store.ErrStorage, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.save(ctx, draft)
	})
	return err
}

func (s *vaultService) save(ctx context.Context, draft models.SecretDraft) error {
	log := logger.FromContext(ctx)

	if err := store.ValidateName(draft.Name); err != nil {
		return err
	}

	plaintext := []byte(draft.Body)
	ciphertext, err := s.keyring.Encrypt(s.key, plaintext)
	memguard.WipeBytes(plaintext)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Save").Str("name", draft.Name).Msg("failed to encrypt secret")
		return fmt.Errorf("encrypt secret: %w", err)
	}

	if err = s.store.Write(ctx, draft.Name, ciphertext); err != nil {
		return fmt.Errorf("write secret: %w", err)
	}

	if draft.Renamed() {
		err = s.store.Delete(ctx, draft.OriginalName)
		if err != nil && !errors.Is(err, store.ErrSecretNotFound) {
			log.Err(err).Str("func", "vaultService.Save").Str("name", draft.OriginalName).Msg("failed to remove renamed secret")
			return fmt.Errorf("remove old secret %q: %w", draft.OriginalName, err)
		}
	}

	log.Debug().Str("func", "vaultService.Save").Str("name", draft.Name).Bool("renamed", draft.Renamed()).Msg("secret saved")
	return nil
}

func (s *vaultService) Delete(ctx context.Context, name string) error {
	_, err := exclusive(ctx, s, store.ErrStorage, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.store.Delete(ctx, name)
	})
	return err
}

func (s *vaultService) Export(ctx context.Context, location string, exportPassphrase []byte) error {
	// the caller wipes its buffer on return; an abandoned export keeps a copy
	passphrase := bytes.Clone(exportPassphrase)

	_, err := exclusive(ctx, s, crypto.ErrEncrypt, func(ctx context.Context) (struct{}, error) {
		defer memguard.WipeBytes(passphrase)
		return struct{}{}, s.export(ctx, location, passphrase)
	})
	return err
}

func (s *vaultService) export(ctx context.Context, location string, exportPassphrase []byte) error {
	log := logger.FromContext(ctx)

	var bundle []byte
	err := s.withPassphrase(func(passphrase []byte) error {
		material, err := s.keyring.ExportPrivate(s.key, passphrase)
		if err != nil {
			return err
		}
		defer memguard.WipeBytes(material)

		bundle, err = s.wrapper.Wrap(material, exportPassphrase)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "vaultService.Export").Msg("failed to wrap master key")
		return fmt.Errorf("wrap master key: %w", err)
	}

	if err = writePrivateFile(location, bundle); err != nil {
		log.Err(err).Str("func", "vaultService.Export").Str("location", location).Msg("failed to write export bundle")
		return fmt.Errorf("%w: %w", ErrExportWrite, err)
	}

	log.Info().Str("location", location).Msg("master key exported")
	return nil
}

// writePrivateFile replaces path with data readable by the owner only,
// creating missing parent directories. The previous content stays intact
// until the new one is synced.
func writePrivateFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	return store.WriteFileAtomic(dir, filepath.Base(path), data)
}
