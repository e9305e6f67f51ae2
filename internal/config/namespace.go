// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

const mainConfigName = ".config.toml"

// MainConfig is the base directory's .config.toml: the known namespaces and
// the one opened when none is requested.
type MainConfig struct {
	Configurations []string `toml:"configurations"`
	Default        string   `toml:"default"`
}

// Namespace is a .<name>.config.toml file describing one vault.
type Namespace struct {
	Name           string `toml:"name"`
	PrivateKeyPath string `toml:"private_key_path"`
	SecretsDir     string `toml:"secrets_dir,omitempty"`

	// BaseDir is the directory the namespace was resolved in. Not persisted.
	BaseDir string `toml:"-"`
}

// ResolveNamespace opens namespace name under baseDir, creating the base
// directory, the main config and the namespace config when they are missing.
// An empty name selects the main config's default namespace.
func ResolveNamespace(baseDir, name string) (*Namespace, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: create base dir: %w", ErrNamespaceConfig, err)
	}

	mainPath := filepath.Join(baseDir, mainConfigName)
	main := &MainConfig{}
	if err := loadTOML(mainPath, main); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: read %s: %w", ErrNamespaceConfig, mainPath, err)
		}
	}

	if name == "" {
		name = main.Default
	}
	if name == "" {
		name = DefaultNamespace
	}
	if err := validateNamespaceName(name); err != nil {
		return nil, err
	}

	ns, err := loadOrCreateNamespace(baseDir, name)
	if err != nil {
		return nil, err
	}

	changed := false
	if !slices.Contains(main.Configurations, name) {
		main.Configurations = append(main.Configurations, name)
		changed = true
	}
	if main.Default == "" {
		main.Default = name
		changed = true
	}
	if changed {
		if err = saveTOML(mainPath, main); err != nil {
			return nil, fmt.Errorf("%w: write %s: %w", ErrNamespaceConfig, mainPath, err)
		}
	}

	return ns, nil
}

func loadOrCreateNamespace(baseDir, name string) (*Namespace, error) {
	nsPath := filepath.Join(baseDir, "."+name+".config.toml")
	ns := &Namespace{}

	err := loadTOML(nsPath, ns)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		ns.Name = name
	default:
		return nil, fmt.Errorf("%w: read %s: %w", ErrNamespaceConfig, nsPath, err)
	}

	dirty := err != nil
	if ns.PrivateKeyPath == "" {
		ns.PrivateKeyPath = filepath.Join(baseDir, privateKeyName(name))
		dirty = true
	}
	// Files written by older versions carry no secrets_dir.
	if ns.SecretsDir == "" {
		ns.SecretsDir = filepath.Join(baseDir, name)
		dirty = true
	}

	if dirty {
		if err = saveTOML(nsPath, ns); err != nil {
			return nil, fmt.Errorf("%w: write %s: %w", ErrNamespaceConfig, nsPath, err)
		}
	}

	ns.BaseDir = baseDir
	return ns, nil
}

// ApplyNamespace fills location settings the operator left empty with the
// namespace's values and scopes the object store prefix to the namespace.
func (cfg *StructuredConfig) ApplyNamespace(ns *Namespace) {
	if cfg.Keys.PrivateKeyPath == "" {
		cfg.Keys.PrivateKeyPath = ns.PrivateKeyPath
	}
	if cfg.Storage.Files.SecretsDir == "" {
		cfg.Storage.Files.SecretsDir = ns.SecretsDir
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(ns.BaseDir, "."+ns.Name+".db")
	}
	if cfg.Storage.Badger.Dir == "" {
		cfg.Storage.Badger.Dir = filepath.Join(ns.BaseDir, "."+ns.Name+".badger")
	}
	cfg.Storage.S3.Prefix = path.Join(cfg.Storage.S3.Prefix, ns.Name)

	if cfg.Keys.ExportPath == "" {
		cfg.Keys.ExportPath = DefaultExportName
		if abs, err := filepath.Abs(DefaultExportName); err == nil {
			cfg.Keys.ExportPath = abs
		}
	}
}

func privateKeyName(namespace string) string {
	if namespace == DefaultNamespace {
		return DefaultPrivateKeyName
	}
	return "." + namespace + DefaultPrivateKeyName
}

func validateNamespaceName(name string) error {
	if strings.ContainsAny(name, `/\ `) || name == "." || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, name)
	}
	if len(name) > 100 {
		return fmt.Errorf("%w: name too long", ErrInvalidNamespace)
	}
	return nil
}

func saveTOML(filePath string, data any) error {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

func loadTOML(filePath string, data any) error {
	_, err := toml.DecodeFile(filePath, data)
	return err
}
