package machine

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/machine_mock.go -package=mock

// Vault is the set of vault operations a transition can trigger.
type Vault interface {
	List(ctx context.Context) ([]string, error)
	Reveal(ctx context.Context, name string) (string, error)
	Save(ctx context.Context, draft models.SecretDraft) error
	Delete(ctx context.Context, name string) error
	Export(ctx context.Context, location string, exportPassphrase []byte) error
}

// Clipboard receives revealed secrets.
type Clipboard interface {
	WriteAll(text string) error
}
