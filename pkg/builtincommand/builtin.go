// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package builtincommand

import (
	"github.com/samber/lo"
)

type BuiltinCommand string

const (
	Resolve  BuiltinCommand = "resolve"
	Deps     BuiltinCommand = "deps"
	Remap    BuiltinCommand = "remap"
	Accounts BuiltinCommand = "accounts"
	Validate BuiltinCommand = "validate"
	Lock     BuiltinCommand = "lock"
	Schema   BuiltinCommand = "schema"
	Version  BuiltinCommand = "version"
	Help     BuiltinCommand = "help"
)

var BuiltinCommands = []BuiltinCommand{Resolve, Deps, Remap, Accounts, Validate, Lock, Schema, Version, Help}

// IsBuiltin reports whether name is taken by a chainkit command
func IsBuiltin(name string) bool {
	return lo.Contains(BuiltinCommands, BuiltinCommand(name))
}
