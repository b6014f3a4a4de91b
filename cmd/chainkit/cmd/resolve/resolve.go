// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"chainkit.dev/x/chainkit/pkg/builtincommand"
	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func Cmd(load chainkitconfig.ResolverLoader) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Resolve),
		Short: "print the effective compiler configuration of every scope",
		Long: `print the effective compiler configuration of every scope

	the root scope "." comes first, followed by one scope per dependency in manifest order.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := load()
			if err != nil {
				return err
			}
			res, err := r.Resolution()
			if err != nil {
				slog.ErrorContext(cmd.Context(), "failed to resolve manifest", "path", r.Manifest().AbsPath)
				return err
			}

			var data []byte
			switch output {
			case "yaml":
				data, err = yaml.Marshal(res.Document())
			case "json":
				data, err = json.MarshalIndent(res.Document(), "", "    ")
			default:
				return fmt.Errorf("output format not supported: %s", output)
			}
			if err != nil {
				return err
			}

			cmd.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml, json")
	return cmd
}
