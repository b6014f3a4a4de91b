// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package remap

import (
	"chainkit.dev/x/chainkit/pkg/builtincommand"
	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
	"chainkit.dev/x/chainkit/pkg/resolution"
	"github.com/spf13/cobra"
)

func Cmd(load chainkitconfig.ResolverLoader) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Remap) + " <import>",
		Short: "rewrite an import path through a scope's remappings",
		Long: `rewrite an import path through a scope's remappings

	the longest matching alias wins, and the rewritten path is not remapped again.
`,
		Example: `  chainkit remap @openzeppelin/contracts/token/ERC20/ERC20.sol
  chainkit remap forge-std/Test.sol --scope forge-std`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := load()
			if err != nil {
				return err
			}
			res, err := r.Resolution()
			if err != nil {
				return err
			}

			target, err := res.ResolveImport(scope, args[0])
			if err != nil {
				return err
			}
			cmd.Println(target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scope, "scope", "s", resolution.RootScope, `dependency whose remappings apply, "." for the project itself`)
	return cmd
}
