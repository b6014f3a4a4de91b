// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// App carries the process streams and arguments a command tree runs against
type App struct {
	Stderr, Stdout io.Writer
	Stdin          io.Reader
	ExitFn         func(exitCode int)
	// must contain at least one argument, namely the chainkit binary name, similar to os.Args
	OsArgs []string
}

func (a *App) SetOutputStreams(cmd *cobra.Command) {
	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)
	cmd.SetIn(a.Stdin)

	lo.ForEach(cmd.Commands(), func(sub *cobra.Command, _ int) {
		a.SetOutputStreams(sub)
	})
}

// Exit calls ExitFn when one is set
func (a *App) Exit(code int) {
	if a.ExitFn != nil {
		a.ExitFn(code)
	}
}
