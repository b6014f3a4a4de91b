// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// WriteManifest writes a chainkit.yaml into dir and returns its path
func WriteManifest(t *testing.T, dir string, contents []byte) string {
	require.NoError(t, os.MkdirAll(dir, 0o755))
	p := filepath.Join(dir, chainkitconfig.ManifestFileName)
	require.NoError(t, os.WriteFile(p, contents, 0o644))
	return p
}

// ProjectSuite gives every test a fresh project directory as working directory,
// and clears chainkit's env vars so the host environment can't leak in
type ProjectSuite struct {
	suite.Suite
	ProjectDir string
}

func (s *ProjectSuite) SetupTest() {
	t := s.T()
	for _, v := range chainkitconfig.EnvVars {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	s.ProjectDir = dir
	t.Chdir(dir)
}

func Context(t *testing.T) context.Context {
	ctx, stopFn := context.WithCancel(context.Background())
	t.Cleanup(stopFn)
	return ctx
}
