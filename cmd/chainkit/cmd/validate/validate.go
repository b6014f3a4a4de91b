// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"errors"
	"fmt"
	"log/slog"

	"chainkit.dev/x/chainkit/pkg/builtincommand"
	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var ErrValidationFailed = errors.New("manifest is invalid")

func Cmd(load chainkitconfig.ResolverLoader) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Validate),
		Short: "check the manifest and report every problem found",
		Long: `check the manifest and report every problem found

	this resolves every scope and validates the test environment. Problems are reported
	together, each with a stable code.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := check(load)

			switch output {
			case "text":
				if len(problems) == 0 {
					cmd.Println(color.GreenString("OK"))
					return nil
				}
				for _, p := range problems {
					subject := ""
					if p.Subject != "" {
						subject = fmt.Sprintf(" [%s]", p.Subject)
					}
					cmd.Printf("%s%s: %v\n", color.RedString(p.Code), subject, p.Cause)
				}
			case "yaml":
				data, err := yaml.Marshal(map[string]any{"problems": problems})
				if err != nil {
					return err
				}
				cmd.Print(string(data))
			default:
				return fmt.Errorf("output format not supported: %s", output)
			}

			if len(problems) > 0 {
				cmd.SilenceErrors = true
				return fmt.Errorf("%w: %d problem(s)", ErrValidationFailed, len(problems))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml")
	return cmd
}

func check(load chainkitconfig.ResolverLoader) []*resolutionerrors.ResolutionError {
	r, err := load()
	if err != nil {
		return resolutionerrors.StandardizeAll(err)
	}

	for _, p := range r.Manifest().Plugins {
		if builtincommand.IsBuiltin(p) {
			slog.Warn("plugin name shadows a chainkit command", "plugin", p)
		}
	}

	_, err = r.Resolution()
	return resolutionerrors.StandardizeAll(err)
}
