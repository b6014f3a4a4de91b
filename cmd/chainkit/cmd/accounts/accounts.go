// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package accounts

import (
	"encoding/json"
	"fmt"

	"chainkit.dev/x/chainkit/pkg/builtincommand"
	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
	"chainkit.dev/x/chainkit/pkg/testenv"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func Cmd(load chainkitconfig.ResolverLoader) *cobra.Command {
	var output string
	var showKeys bool

	cmd := &cobra.Command{
		Use:   string(builtincommand.Accounts),
		Short: "derive the test accounts of the project's test environment",
		Long: `derive the test accounts of the project's test environment

	accounts are derived from the test mnemonic along the configured HD path, the last
	path component being the account index. Set CHAINKIT_MNEMONIC to override the mnemonic.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := load()
			if err != nil {
				return err
			}
			accs, err := r.Accounts()
			if err != nil {
				return err
			}
			env := r.Manifest().Test

			switch output {
			case "table":
				cmd.Printf("chain %s (%s), path %s\n",
					color.CyanString("%d", env.ChainID),
					testenv.ChainName(env.ChainID),
					color.YellowString(env.Path()))
				cmd.Println(accs.Table(showKeys))
			case "json":
				data, err := json.MarshalIndent(accs.Views(showKeys), "", "    ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			default:
				return fmt.Errorf("output format not supported: %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json")
	cmd.Flags().BoolVar(&showKeys, "show-keys", false, "include private keys in the output")
	return cmd
}
