package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 9000},
			expected: "localhost:9000",
		},
		{
			name:     "IPv6 address with port",
			addr:     NetAddress{Host: "::1", Port: 9000},
			expected: "[::1]:9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		wantHost    string
		wantPort    int
	}{
		{name: "hostname", input: "minio.internal:9000", wantHost: "minio.internal", wantPort: 9000},
		{name: "ip", input: "127.0.0.1:443", wantHost: "127.0.0.1", wantPort: 443},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:abc", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "empty host", input: ":9000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

// TestBindFlags_ParsesAll verifies that every flag writes into the returned
// config.
func TestBindFlags_ParsesAll(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"-c", "/etc/vault.json",
		"-n", "work",
		"-b", "/vault",
		"--backend", "s3",
		"--secrets-dir", "/vault/work",
		"-d", "/vault/work.db",
		"--badger-dir", "/vault/badger",
		"--s3-endpoint", "localhost:9000",
		"--s3-bucket", "secrets",
		"--s3-prefix", "team",
		"--s3-ssl",
		"-k", "/vault/.private_1",
		"--export-path", "/backup/key.export",
		"--export-format", "v2",
		"--tick", "16ms",
		"--timeout", "3s",
		"--terminate-pages", "list,search_body",
		"--log-file", "/tmp/vault.log",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/vault.json", cfg.JSONFilePath)
	assert.Equal(t, "work", cfg.App.Namespace)
	assert.Equal(t, "/vault", cfg.Storage.BaseDir)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "/vault/work", cfg.Storage.Files.SecretsDir)
	assert.Equal(t, "/vault/work.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/vault/badger", cfg.Storage.Badger.Dir)
	assert.Equal(t, "localhost:9000", cfg.Storage.S3.Endpoint)
	assert.Equal(t, "secrets", cfg.Storage.S3.Bucket)
	assert.Equal(t, "team", cfg.Storage.S3.Prefix)
	assert.True(t, cfg.Storage.S3.UseSSL)
	assert.Equal(t, "/vault/.private_1", cfg.Keys.PrivateKeyPath)
	assert.Equal(t, "/backup/key.export", cfg.Keys.ExportPath)
	assert.Equal(t, "v2", cfg.App.ExportFormat)
	assert.Equal(t, 16*time.Millisecond, cfg.App.TickInterval)
	assert.Equal(t, 3*time.Second, cfg.App.OperationTimeout)
	assert.Equal(t, []string{"list", "search_body"}, cfg.App.TerminatePages)
	assert.Equal(t, "/tmp/vault.log", cfg.Log.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestBindFlags_RejectsBadEndpoint verifies that the endpoint flag is validated
// at parse time.
func TestBindFlags_RejectsBadEndpoint(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	err := fs.Parse([]string{"--s3-endpoint", "no-port"})
	assert.Error(t, err)
}

// TestBindFlags_DefaultsAreZero verifies that unset flags leave zero values so
// lower-priority layers can fill them.
func TestBindFlags_DefaultsAreZero(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, cfg)
}
