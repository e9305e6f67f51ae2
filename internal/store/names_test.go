package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain", input: "github", wantErr: false},
		{name: "spaces and unicode", input: "my bank ü", wantErr: false},
		{name: "dots inside", input: "mail.example.com", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "hidden", input: ".config.toml", wantErr: true},
		{name: "dot", input: ".", wantErr: true},
		{name: "dot dot", input: "..", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
		{name: "nul", input: "a\x00b", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 256), wantErr: true},
		{name: "max length", input: strings.Repeat("a", 255), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSecretName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotFound_WrapsStorage(t *testing.T) {
	err := notFound("github")

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, ErrSecretNotFound)
	assert.Contains(t, err.Error(), `"github"`)
}
