package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService runs the vault operations of one unlocked session. Every call
// is bounded by the operation timeout.
type VaultService interface {
	// List returns the stored secret names in ascending order.
	List(ctx context.Context) ([]string, error)
	// Reveal decrypts the secret stored under name.
	Reveal(ctx context.Context, name string) (string, error)
	// Save encrypts draft.Body and stores it under draft.Name. A renamed
	// draft also removes the entry stored under draft.OriginalName.
	Save(ctx context.Context, draft models.SecretDraft) error
	Delete(ctx context.Context, name string) error
	// Export writes the master key, wrapped under exportPassphrase, to location.
	Export(ctx context.Context, location string, exportPassphrase []byte) error
}

// KeyService manages the master key file.
type KeyService interface {
	// Exists reports whether the master key file is present.
	Exists() (bool, error)
	// Create generates a new master key protected by passphrase and persists it.
	Create(passphrase []byte) (*crypto.MasterKey, error)
	// Unlock loads the persisted key and checks passphrase against it.
	Unlock(passphrase []byte) (*crypto.MasterKey, error)
	// Import restores a master key from an export bundle. The key's own
	// passphrase must unlock it before anything is written.
	Import(bundle, exportPassphrase, keyPassphrase []byte, force bool) (*crypto.MasterKey, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
}
