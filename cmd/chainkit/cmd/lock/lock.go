// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package lock

import (
	"chainkit.dev/x/chainkit/pkg/builtincommand"
	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
	"chainkit.dev/x/chainkit/pkg/packagelock"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func Cmd(load chainkitconfig.ResolverLoader) *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   string(builtincommand.Lock),
		Short: "update (or create) the pin lockfile",
		Long: `update (or create) the pin lockfile

	chainkit.lock records every dependency's source and pin next to chainkit.yaml.
	Versions recorded by the fetcher are kept as long as they still satisfy their range.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := load()
			if err != nil {
				return err
			}
			res, err := r.Resolution()
			if err != nil {
				return err
			}

			op := packagelock.Regular
			if checkOnly {
				op = packagelock.CheckOnly
			}

			locker := packagelock.New(op)
			lock, err := locker.EnsureLockfile(cmd.Context(), res, r.Manifest().Dir())
			if err != nil {
				return err
			}

			if checkOnly {
				cmd.Printf("%s is up to date\n", color.GreenString(packagelock.FileName))
			} else {
				cmd.Printf("wrote %s with %d dependencies\n", color.GreenString(packagelock.FileName), len(lock.Dependencies))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkOnly, "check", false, "check existing lockfile but don't update it")

	return cmd
}
