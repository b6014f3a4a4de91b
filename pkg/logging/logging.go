// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
)

func InitLogging(w io.Writer) error {
	logLevel, ok := os.LookupEnv(chainkitconfig.LogLevelEnvVar)
	if !ok || logLevel == "" {
		return initLogging(w, "info")
	}
	return initLogging(w, logLevel)
}

func initLogging(w io.Writer, logLevel string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid value for '%s' env var: %w", chainkitconfig.LogLevelEnvVar, err)
	}

	slogHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(slogHandler))
	return nil
}
