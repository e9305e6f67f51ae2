package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecretStore maps secret names to opaque ciphertext blobs.
// Implementations never see plaintext.
type SecretStore interface {
	// List returns every stored secret name in ascending order.
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, name string) ([]byte, error)
	// Write creates or replaces the blob stored under name.
	Write(ctx context.Context, name string, ciphertext []byte) error
	Delete(ctx context.Context, name string) error
	Close() error
}
