// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"

	"chainkit.dev/x/chainkit/cmd/chainkit/cmd/accounts"
	"chainkit.dev/x/chainkit/cmd/chainkit/cmd/deps"
	"chainkit.dev/x/chainkit/cmd/chainkit/cmd/lock"
	"chainkit.dev/x/chainkit/cmd/chainkit/cmd/remap"
	"chainkit.dev/x/chainkit/cmd/chainkit/cmd/resolve"
	"chainkit.dev/x/chainkit/cmd/chainkit/cmd/schema"
	"chainkit.dev/x/chainkit/cmd/chainkit/cmd/validate"
	"chainkit.dev/x/chainkit/cmd/chainkit/cmd/version"
	"chainkit.dev/x/chainkit/pkg/app"
	"chainkit.dev/x/chainkit/pkg/chainkitconfig"
	"chainkit.dev/x/chainkit/pkg/logging"
	"chainkit.dev/x/chainkit/pkg/versioninfo"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const (
	metaGroupId    = "meta"
	projectGroupId = "project"
	ChainkitName   = "chainkit"
)

func RootCmd(ctx context.Context, a *app.App) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   ChainkitName,
		Short: "resolve compiler settings, import remappings and test accounts of a contracts project",
		// problems are reported by the failing command itself
		SilenceUsage: true,
	}
	cmd.SetContext(ctx)

	defer a.SetOutputStreams(cmd)

	if len(a.OsArgs) == 0 {
		return nil, fmt.Errorf("App.OsArgs must contain at least one entry similar to os.Args")
	}

	cmd.SetArgs(a.OsArgs[1:])
	cmd.AddGroup(&cobra.Group{
		ID:    projectGroupId,
		Title: "Project Commands",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    metaGroupId,
		Title: "Meta Commands",
	})

	if err := logging.InitLogging(a.Stderr); err != nil {
		return nil, err
	}

	config, err := chainkitconfig.Get()
	if err != nil {
		return nil, err
	}
	load := config.Loader()

	cmd.AddCommand(
		setCmdGroup(projectGroupId, resolve.Cmd(load)),
		setCmdGroup(projectGroupId, deps.Cmd(load)),
		setCmdGroup(projectGroupId, remap.Cmd(load)),
		setCmdGroup(projectGroupId, accounts.Cmd(load)),
		setCmdGroup(projectGroupId, validate.Cmd(load)),
		setCmdGroup(projectGroupId, lock.Cmd(load)),
		setCmdGroup(metaGroupId, schema.Cmd()),
		setCmdGroup(metaGroupId, version.Cmd()),
	)

	v, err := yaml.Marshal(versioninfo.Get())
	if err != nil {
		return nil, err
	}
	cmd.Version = string(v)
	cmd.SetVersionTemplate("{{.Version}}")

	return cmd, nil
}

func setCmdGroup(groupId string, cmd *cobra.Command) *cobra.Command {
	cmd.GroupID = groupId
	return cmd
}
