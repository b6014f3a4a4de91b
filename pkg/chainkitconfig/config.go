// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package chainkitconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"chainkit.dev/x/chainkit/pkg/manifest"
	"chainkit.dev/x/chainkit/pkg/resolution"
	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"chainkit.dev/x/chainkit/pkg/utils"
)

// Config is the process-level configuration, read from the environment once per invocation
type Config struct {
	// ManifestDir overrides manifest discovery
	ManifestDir string
	// Mnemonic replaces the manifest's test mnemonic when set
	Mnemonic string
	Strict   bool
}

func Get() (*Config, error) {
	config := Config{}

	if dir, ok := os.LookupEnv(ManifestDirEnvVar); ok && dir != "" {
		config.ManifestDir = dir
	}

	if mnemonic, ok := os.LookupEnv(MnemonicEnvVar); ok {
		config.Mnemonic = mnemonic
	}

	strict, ok, err := utils.BoolEnvVar(StrictEnvVar)
	if err != nil {
		return nil, err
	}
	if ok {
		config.Strict = strict
	}

	return &config, nil
}

// ManifestPath locates chainkit.yaml: in ManifestDir if set, otherwise in the
// working directory or the closest ancestor that has one
func (c *Config) ManifestPath() (absPath string, found bool, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, err
	}

	if c.ManifestDir != "" {
		dir := utils.ResolvePath(cwd, c.ManifestDir)
		ok, err := utils.DirExists(dir)
		if err != nil || !ok {
			return "", false, err
		}
		return filepath.Join(dir, ManifestFileName), true, nil
	}

	return findInAncestors(cwd, ManifestFileName)
}

// LoadManifest reads the manifest in scope and applies the environment overrides
func (c *Config) LoadManifest() (*manifest.Manifest, error) {
	p, found, err := c.ManifestPath()
	if err != nil {
		return nil, fmt.Errorf("error looking for %s: %w", ManifestFileName, err)
	}
	if !found && c.ManifestDir != "" {
		return nil, resolutionerrors.NewManifestNotFoundError(
			fmt.Errorf("%s=%q is not a directory", ManifestDirEnvVar, c.ManifestDir))
	}
	if !found {
		cwd, _ := os.Getwd()
		return nil, resolutionerrors.NewManifestNotFoundError(
			fmt.Errorf("no %s found in %q or any of its parent directories", ManifestFileName, cwd))
	}

	m, err := manifest.Read(p, manifest.ReadOptions{Strict: c.Strict})
	if errors.Is(err, os.ErrNotExist) {
		return nil, resolutionerrors.NewManifestNotFoundError(err)
	}
	if errors.Is(err, manifest.ErrInvalidManifest) {
		return nil, resolutionerrors.NewMalformedManifestError(err)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded manifest", "path", p, "project", m.Name, "dependencies", len(m.Dependencies))

	if c.Mnemonic != "" {
		if m.Test == nil {
			slog.Warn(MnemonicEnvVar+" is set but the manifest has no 'test' section", "path", p)
		} else {
			m.Test.Mnemonic = c.Mnemonic
		}
	}
	return m, nil
}

func (c *Config) LoadResolver() (*resolution.Resolver, error) {
	m, err := c.LoadManifest()
	if err != nil {
		return nil, err
	}
	return resolution.NewResolver(m), nil
}

// ResolverLoader hands out the project's Resolver, loading the manifest on first call
type ResolverLoader func() (*resolution.Resolver, error)

// Loader memoizes LoadResolver so every command of one invocation shares a Resolver
func (c *Config) Loader() ResolverLoader {
	return sync.OnceValues(c.LoadResolver)
}

func findInAncestors(startDir, filename string) (absolutePath string, ok bool, err error) {
	p, ok, err := doFindInAncestors(startDir, filename)
	if err != nil {
		return
	}
	if !ok {
		return "", false, nil
	}
	absolutePath, err = filepath.Abs(p)
	return
}

func doFindInAncestors(startDir, filename string) (string, bool, error) {
	f := filepath.Join(startDir, filename)

	info, err := os.Stat(f)
	if err == nil && !info.IsDir() {
		return f, true, nil
	}

	parent := filepath.Dir(startDir)
	if parent == startDir {
		return "", false, nil
	}

	return doFindInAncestors(parent, filename)
}
