package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// exerciseSecretStore runs the behaviour every backend shares.
func exerciseSecretStore(t *testing.T, s SecretStore) {
	t.Helper()
	ctx := testContext()

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.Write(ctx, "netflix", []byte("n-1")))
	require.NoError(t, s.Write(ctx, "github", []byte("g-1")))
	require.NoError(t, s.Write(ctx, "gitlab", []byte{0x00, 0xff, 0x10}))

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"github", "gitlab", "netflix"}, names)

	data, err := s.Read(ctx, "gitlab")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, data)

	// overwrite
	require.NoError(t, s.Write(ctx, "github", []byte("g-2")))
	data, err = s.Read(ctx, "github")
	require.NoError(t, err)
	assert.Equal(t, []byte("g-2"), data)

	require.NoError(t, s.Delete(ctx, "netflix"))
	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"github", "gitlab"}, names)

	_, err = s.Read(ctx, "netflix")
	assert.ErrorIs(t, err, ErrSecretNotFound)
	assert.ErrorIs(t, err, ErrStorage)

	err = s.Delete(ctx, "netflix")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	err = s.Write(ctx, "../escape", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidSecretName)
	assert.ErrorIs(t, err, ErrStorage)

	_, err = s.Read(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidSecretName)
}
