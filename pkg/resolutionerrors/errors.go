// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolutionerrors

import (
	"fmt"
	"strings"
)

type DuplicateDependencyError struct {
	Name string
}

func (e *DuplicateDependencyError) Error() string {
	return fmt.Sprintf("dependency %q is declared more than once", e.Name)
}

func (e *DuplicateDependencyError) Code() string    { return DuplicateDependency }
func (e *DuplicateDependencyError) Subject() string { return e.Name }

// AmbiguousRevisionError is raised when a dependency pins zero, or more than one, of branch/tag/version.
// Fields lists the pin fields that were set.
type AmbiguousRevisionError struct {
	Dependency string
	Fields     []string
}

func (e *AmbiguousRevisionError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("dependency %q has no revision pin. Must set exactly one of 'branch', 'tag' or 'version'", e.Dependency)
	}
	return fmt.Sprintf("dependency %q sets more than one revision pin (%s). Must set exactly one of 'branch', 'tag' or 'version'",
		e.Dependency, strings.Join(e.Fields, ", "))
}

func (e *AmbiguousRevisionError) Code() string    { return AmbiguousRevision }
func (e *AmbiguousRevisionError) Subject() string { return e.Dependency }

type InvalidRevisionError struct {
	Dependency string
	Field      string
	Value      string
	Cause      error
}

func (e *InvalidRevisionError) Error() string {
	return fmt.Sprintf("dependency %q has an invalid %s %q: %v", e.Dependency, e.Field, e.Value, e.Cause)
}

func (e *InvalidRevisionError) Code() string    { return InvalidRevision }
func (e *InvalidRevisionError) Subject() string { return e.Dependency }
func (e *InvalidRevisionError) Unwrap() error   { return e.Cause }

type InvalidSourceError struct {
	Dependency string
	Cause      error
}

func (e *InvalidSourceError) Error() string {
	return fmt.Sprintf("dependency %q has an invalid source: %v", e.Dependency, e.Cause)
}

func (e *InvalidSourceError) Code() string    { return InvalidSource }
func (e *InvalidSourceError) Subject() string { return e.Dependency }
func (e *InvalidSourceError) Unwrap() error   { return e.Cause }

// RemappingConflictError is raised when a merged remapping list ends up with a repeated alias
type RemappingConflictError struct {
	Alias string
}

func (e *RemappingConflictError) Error() string {
	return fmt.Sprintf("alias %q appears more than once in the merged remappings", e.Alias)
}

func (e *RemappingConflictError) Code() string    { return RemappingConflict }
func (e *RemappingConflictError) Subject() string { return e.Alias }

type ConflictingAliasError struct {
	Alias   string
	Targets []string
}

func (e *ConflictingAliasError) Error() string {
	return fmt.Sprintf("alias %q is remapped to different targets: %s", e.Alias, strings.Join(e.Targets, ", "))
}

func (e *ConflictingAliasError) Code() string    { return ConflictingAlias }
func (e *ConflictingAliasError) Subject() string { return e.Alias }

type UnresolvedAliasError struct {
	Import string
}

func (e *UnresolvedAliasError) Error() string {
	return fmt.Sprintf("no remapping matches import %q", e.Import)
}

func (e *UnresolvedAliasError) Code() string    { return UnresolvedAlias }
func (e *UnresolvedAliasError) Subject() string { return e.Import }

type InvalidCompilerConfigError struct {
	Scope string
	Field string
	Cause error
}

func (e *InvalidCompilerConfigError) Error() string {
	return fmt.Sprintf("compiler config of scope %q: invalid '%s': %v", e.Scope, e.Field, e.Cause)
}

func (e *InvalidCompilerConfigError) Code() string    { return InvalidCompilerConfig }
func (e *InvalidCompilerConfigError) Subject() string { return e.Field }
func (e *InvalidCompilerConfigError) Unwrap() error   { return e.Cause }

type UnsafeChainIdError struct {
	ChainID uint64
	Network string
}

func (e *UnsafeChainIdError) Error() string {
	return fmt.Sprintf("chain-id %d is reserved for the %s production network and can't be used for tests", e.ChainID, e.Network)
}

func (e *UnsafeChainIdError) Code() string    { return UnsafeChainId }
func (e *UnsafeChainIdError) Subject() string { return "chain-id" }

type InvalidAccountCountError struct {
	Count int
	Max   int
}

func (e *InvalidAccountCountError) Error() string {
	return fmt.Sprintf("invalid account count %d. Must be between 1 and %d", e.Count, e.Max)
}

func (e *InvalidAccountCountError) Code() string    { return InvalidAccountCount }
func (e *InvalidAccountCountError) Subject() string { return "accounts" }

// InvalidMnemonicError never carries the mnemonic itself
type InvalidMnemonicError struct {
	Words int
}

func (e *InvalidMnemonicError) Error() string {
	return fmt.Sprintf("mnemonic (%d words) is not a valid BIP-39 seed phrase", e.Words)
}

func (e *InvalidMnemonicError) Code() string    { return InvalidMnemonic }
func (e *InvalidMnemonicError) Subject() string { return "mnemonic" }

var (
	_ Coded = (*DuplicateDependencyError)(nil)
	_ Coded = (*AmbiguousRevisionError)(nil)
	_ Coded = (*InvalidRevisionError)(nil)
	_ Coded = (*InvalidSourceError)(nil)
	_ Coded = (*RemappingConflictError)(nil)
	_ Coded = (*ConflictingAliasError)(nil)
	_ Coded = (*UnresolvedAliasError)(nil)
	_ Coded = (*InvalidCompilerConfigError)(nil)
	_ Coded = (*UnsafeChainIdError)(nil)
	_ Coded = (*InvalidAccountCountError)(nil)
	_ Coded = (*InvalidMnemonicError)(nil)
)
