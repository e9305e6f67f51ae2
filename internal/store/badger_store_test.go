package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func TestBadgerSecretStore_Contract(t *testing.T) {
	s, err := NewBadgerSecretStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseSecretStore(t, s)
}

func TestBadgerSecretStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBadgerSecretStore(dir, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Write(testContext(), "github", []byte("blob")))
	require.NoError(t, s.Close())

	s, err = NewBadgerSecretStore(dir, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	data, err := s.Read(testContext(), "github")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), data)
}

func TestNewBadgerSecretStore_EmptyDir(t *testing.T) {
	_, err := NewBadgerSecretStore("", logger.Nop())
	assert.ErrorIs(t, err, ErrStorage)
}

func TestBadgerKey(t *testing.T) {
	assert.Equal(t, []byte("secret/github"), badgerKey("github"))
}
