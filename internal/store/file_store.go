package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	secretFileMode os.FileMode = 0o600
	secretDirMode  os.FileMode = 0o700
	tempFilePrefix             = ".tmp-"
)

// fileSecretStore keeps one file per secret inside dir. The file name is the
// secret name and the content is the raw ciphertext.
type fileSecretStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileSecretStore creates dir when it is missing and returns a
// [SecretStore] backed by it.
func NewFileSecretStore(dir string, log *logger.Logger) (SecretStore, error) {
	if dir == "" {
		return nil, storageErr("open", errors.New("secrets directory is empty"))
	}

	if err := os.MkdirAll(dir, secretDirMode); err != nil {
		log.Err(err).Str("func", "NewFileSecretStore").Str("dir", dir).Msg("error creating secrets directory")
		return nil, storageErr("create secrets directory", err)
	}

	log.Debug().Str("func", "NewFileSecretStore").Str("dir", dir).Msg("file secret store is ready")

	return &fileSecretStore{dir: dir, logger: log}, nil
}

func (f *fileSecretStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageErr("list", err)
	}

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileSecretStore.List").Msg("error reading secrets directory")
		return nil, storageErr("list", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		// hidden entries cover both dotfiles and unfinished temp writes
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

func (f *fileSecretStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, storageErr("read", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, storageErr("read", err)
	}

	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileSecretStore.Read").Str("name", name).Msg("error reading secret file")
		return nil, storageErr("read", err)
	}

	return data, nil
}

func (f *fileSecretStore) Write(ctx context.Context, name string, ciphertext []byte) error {
	if err := ValidateName(name); err != nil {
		return storageErr("write", err)
	}
	if err := ctx.Err(); err != nil {
		return storageErr("write", err)
	}

	if err := WriteFileAtomic(f.dir, name, ciphertext); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileSecretStore.Write").Str("name", name).Msg("error writing secret file")
		return storageErr("write", err)
	}

	return nil
}

func (f *fileSecretStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return storageErr("delete", err)
	}
	if err := ctx.Err(); err != nil {
		return storageErr("delete", err)
	}

	err := os.Remove(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return notFound(name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileSecretStore.Delete").Str("name", name).Msg("error removing secret file")
		return storageErr("delete", err)
	}

	return nil
}

func (f *fileSecretStore) Close() error {
	return nil
}

// WriteFileAtomic writes data with mode 0600 to a uuid-named temp file in
// dir, syncs it and renames it over dir/name. Readers never observe a partial
// file and an existing dir/name survives any failure before the rename.
func WriteFileAtomic(dir, name string, data []byte) error {
	tmpPath := filepath.Join(dir, tempFilePrefix+uuid.NewString())

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, secretFileMode)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	ok := false
	defer func() {
		if !ok {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Chmod(secretFileMode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	ok = true

	return nil
}
