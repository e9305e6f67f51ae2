package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Services groups what the client needs before a session is unlocked.
// The [VaultService] is built later with [Services.OpenVault].
type Services struct {
	KeyRing        crypto.KeyRing
	Wrapper        crypto.Wrapper
	KeyService     KeyService
	AppInfoService AppInfoService

	cfg    *config.StructuredConfig
	logger *logger.Logger
}

func NewServices(cfg *config.StructuredConfig, info models.AppBuildInfo, logger *logger.Logger) *Services {
	keyring := crypto.NewKeyRing(logger)
	wrapper := crypto.NewWrapper(models.ExportFormat(cfg.App.ExportFormat))

	return &Services{
		KeyRing:        keyring,
		Wrapper:        wrapper,
		KeyService:     NewKeyService(cfg.Keys.PrivateKeyPath, keyring, wrapper, logger),
		AppInfoService: NewAppInfoService(info, logger),
		cfg:            cfg,
		logger:         logger,
	}
}

// OpenVault starts a session over secrets with an unlocked key. passphrase
// is sealed and wiped.
func (s *Services) OpenVault(key *crypto.MasterKey, passphrase []byte, secrets store.SecretStore) VaultService {
	return NewVaultService(key, passphrase, s.KeyRing, s.Wrapper, secrets, s.cfg.App.OperationTimeout, s.logger)
}
