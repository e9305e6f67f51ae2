package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func newTestFileStore(t *testing.T) (SecretStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "default")
	s, err := NewFileSecretStore(dir, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, dir
}

func TestFileSecretStore_Contract(t *testing.T) {
	s, _ := newTestFileStore(t)
	exerciseSecretStore(t, s)
}

func TestNewFileSecretStore_CreatesDirectory(t *testing.T) {
	_, dir := newTestFileStore(t)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, secretDirMode, info.Mode().Perm())
}

func TestNewFileSecretStore_EmptyDir(t *testing.T) {
	_, err := NewFileSecretStore("", logger.Nop())
	assert.ErrorIs(t, err, ErrStorage)
}

func TestFileSecretStore_LayoutIsRawCiphertext(t *testing.T) {
	s, dir := newTestFileStore(t)

	require.NoError(t, s.Write(testContext(), "github", []byte("-----BEGIN PGP MESSAGE-----")))

	raw, err := os.ReadFile(filepath.Join(dir, "github"))
	require.NoError(t, err)
	assert.Equal(t, "-----BEGIN PGP MESSAGE-----", string(raw))

	info, err := os.Stat(filepath.Join(dir, "github"))
	require.NoError(t, err)
	assert.Equal(t, secretFileMode, info.Mode().Perm())
}

func TestFileSecretStore_ListSkipsHiddenTempAndDirs(t *testing.T) {
	s, dir := newTestFileStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "github"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, tempFilePrefix+"abc"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

	names, err := s.List(testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"github"}, names)
}

func TestFileSecretStore_WriteLeavesNoTempFiles(t *testing.T) {
	s, dir := newTestFileStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Write(testContext(), "github", []byte{byte(i)}))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "github", entries[0].Name())
}

func TestFileSecretStore_CancelledContext(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrStorage)

	err = s.Write(ctx, "github", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSecretStore_ListMissingDirectory(t *testing.T) {
	s, dir := newTestFileStore(t)
	require.NoError(t, os.RemoveAll(dir))

	_, err := s.List(testContext())
	assert.ErrorIs(t, err, ErrStorage)
}
