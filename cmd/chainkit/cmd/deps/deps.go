// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package deps

import (
	"encoding/json"
	"fmt"

	"chainkit.dev/x/chainkit/pkg/builtincommand"
	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
	"github.com/spf13/cobra"
)

func Cmd(load chainkitconfig.ResolverLoader) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Deps),
		Short: "list dependencies with their source, pin and effective compiler settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := load()
			if err != nil {
				return err
			}
			res, err := r.Resolution()
			if err != nil {
				return err
			}

			switch output {
			case "table":
				if res.Len() == 1 {
					cmd.Println("no dependencies")
					return nil
				}
				cmd.Println(res.DependencyTable())
			case "json":
				data, err := json.MarshalIndent(res.Dependencies(), "", "    ")
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
	return cmd
}
