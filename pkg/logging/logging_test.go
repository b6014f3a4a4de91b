// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	t.Setenv(chainkitconfig.LogLevelEnvVar, "debug")
	require.NoError(t, InitLogging(&buf))
	slog.Debug("resolved", "scopes", 3)
	assert.Contains(t, buf.String(), "level=DEBUG msg=resolved scopes=3")

	buf.Reset()
	t.Setenv(chainkitconfig.LogLevelEnvVar, "warn")
	require.NoError(t, InitLogging(&buf))
	slog.Info("hidden")
	assert.Empty(t, buf.String())

	t.Setenv(chainkitconfig.LogLevelEnvVar, "loud")
	assert.ErrorContains(t, InitLogging(&buf), chainkitconfig.LogLevelEnvVar)
}
