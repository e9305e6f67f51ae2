// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
)

const maxSecretNameLen = 255

// ValidateName reports whether name can be used as a storage key. A valid
// name is a single, visible path component of at most 255 bytes.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidSecretName)
	case len(name) > maxSecretNameLen:
		return fmt.Errorf("%w: name is longer than %d bytes", ErrInvalidSecretName, maxSecretNameLen)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q is hidden", ErrInvalidSecretName, name)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q is not a single path component", ErrInvalidSecretName, name)
	}

	return nil
}

func notFound(name string) error {
	return fmt.Errorf("%w: %w: %q", ErrStorage, ErrSecretNotFound, name)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
