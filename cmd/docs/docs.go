// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	chainkit "chainkit.dev/x/chainkit/cmd/chainkit/cmd"
	"chainkit.dev/x/chainkit/pkg/app"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func main() {
	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancelFn()

	if err := docsCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func docsCmd() *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:          "docs <output dir>",
		Short:        "generate the chainkit CLI reference as markdown",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := genMarkdown(cmd.Context(), args[0], parent); err != nil {
				return err
			}
			cmd.Printf("successfully generated at %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "CLI reference", "front-matter parent page of every generated page")
	return cmd
}

func genMarkdown(ctx context.Context, dir, parent string) error {
	root, err := chainkit.RootCmd(ctx, &app.App{Stdout: os.Stdout, Stderr: os.Stderr, OsArgs: []string{chainkit.ChainkitName}})
	if err != nil {
		return err
	}
	root.DisableAutoGenTag = true

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	frontMatter := func(filename string) string {
		title := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(filename), ".md"), "_", " ")
		return fmt.Sprintf("---\nlayout: default\ntitle: %s\nparent: %s\n---\n\n", title, parent)
	}
	return doc.GenMarkdownTreeCustom(root, dir, frontMatter, func(s string) string { return s })
}
