// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolutionerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardize(t *testing.T) {
	assert.Nil(t, Standardize(nil))

	wrapped := fmt.Errorf("scope %q: %w", "contracts", &ConflictingAliasError{Alias: "@oz", Targets: []string{"a", "b"}})
	r := Standardize(wrapped)
	assert.Equal(t, ConflictingAlias, r.Code)
	assert.Equal(t, "@oz", r.Subject)
	assert.ErrorIs(t, r, wrapped)

	r = Standardize(errors.New("boom"))
	assert.Equal(t, UnknownError, r.Code)

	notFound := NewManifestNotFoundError(errors.New("nope"))
	assert.Same(t, notFound, Standardize(fmt.Errorf("loading: %w", notFound)))
}

func TestStandardizeAll(t *testing.T) {
	err := errors.Join(
		&DuplicateDependencyError{Name: "a"},
		&AmbiguousRevisionError{Dependency: "b"},
		errors.Join(&UnsafeChainIdError{ChainID: 1, Network: "ethereum"}),
	)

	all := StandardizeAll(err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{DuplicateDependency, AmbiguousRevision, UnsafeChainId},
		[]string{all[0].Code, all[1].Code, all[2].Code})
	assert.Equal(t, []string{"a", "b", "chain-id"},
		[]string{all[0].Subject, all[1].Subject, all[2].Subject})

	assert.Nil(t, StandardizeAll(nil))
}

func TestResolutionErrorYaml(t *testing.T) {
	in := Standardize(&UnresolvedAliasError{Import: "@fx/Tunnel.sol"})

	out, err := yaml.Marshal(in)
	require.NoError(t, err)

	var back ResolutionError
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, UnresolvedAlias, back.Code)
	assert.Equal(t, "@fx/Tunnel.sol", back.Subject)
	assert.Equal(t, in.Cause.Error(), back.Cause.Error())
}

func TestAmbiguousRevisionMessage(t *testing.T) {
	assert.Contains(t, (&AmbiguousRevisionError{Dependency: "x"}).Error(), "has no revision pin")
	assert.Contains(t, (&AmbiguousRevisionError{Dependency: "x", Fields: []string{"branch", "tag"}}).Error(), "(branch, tag)")
}
