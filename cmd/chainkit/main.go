// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	chainkit "chainkit.dev/x/chainkit/cmd/chainkit/cmd"
	"chainkit.dev/x/chainkit/pkg/app"
)

func main() {
	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancelFn()

	a := app.App{
		Stderr: os.Stderr,
		Stdout: os.Stdout,
		Stdin:  os.Stdin,
		ExitFn: os.Exit,
		OsArgs: os.Args,
	}
	cmd, err := chainkit.RootCmd(ctx, &a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		a.Exit(1)
		return
	}
	if err := cmd.ExecuteContext(ctx); err != nil {
		a.Exit(1)
	}
}
