// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolution

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"chainkit.dev/x/chainkit/pkg/compiler"
	"chainkit.dev/x/chainkit/pkg/manifest"
	"chainkit.dev/x/chainkit/pkg/resolution/testdata"
	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"chainkit.dev/x/chainkit/pkg/revision"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func read(t *testing.T, contents []byte) *manifest.Manifest {
	m, err := manifest.ReadFromContents(contents, manifest.ReadOptions{Strict: true})
	require.NoError(t, err)
	return m
}

func names(scopes []Scope) []string {
	return lo.Map(scopes, func(s Scope, _ int) string { return s.Name })
}

func TestBuildEndToEnd(t *testing.T) {
	m := read(t, testdata.EndToEnd)

	res, err := Build(m)
	require.NoError(t, err)
	assert.Equal(t, len(m.Dependencies)+1, res.Len())
	assert.Equal(t, []string{RootScope, "contracts", "fx-portal", "forge-std"}, names(res.Scopes()))
	assert.Equal(t, "fx-bridge", res.Project())

	contracts, ok := res.Scope("contracts")
	require.True(t, ok)
	assert.Equal(t, "0.8.23", contracts.Compiler.Version.String())
	assert.Equal(t, compiler.Paris, contracts.Compiler.EVMVersion)
	assert.ElementsMatch(t, []string{"@oz", "@fx"}, contracts.Compiler.Remappings.Aliases())
	assert.NoError(t, contracts.Compiler.Remappings.EnsureUnique())
	assert.Equal(t, "github:OpenZeppelin/openzeppelin-contracts", contracts.Source)
	assert.Equal(t, "tag:v5.0.0", contracts.Pin.String())

	// no override: the default, by value
	portal, ok := res.Scope("fx-portal")
	require.True(t, ok)
	assert.Equal(t, res.Root().Compiler, portal.Compiler)
	assert.Equal(t, revision.Pin{Version: "^1.0.5"}, *portal.Pin)

	forge, ok := res.Scope("forge-std")
	require.True(t, ok)
	assert.Equal(t, "0.8.20", forge.Compiler.Version.String())
	assert.Equal(t, compiler.Shanghai, forge.Compiler.EVMVersion)
	assert.Equal(t, []string{"@oz=openzeppelin/v5.0.0", "forge-std/=lib/forge-std/src/"}, forge.Compiler.Remappings.Strings())

	root := res.Root()
	assert.True(t, root.IsRoot())
	assert.Nil(t, root.Pin)
	assert.Empty(t, root.Source)

	_, ok = res.Scope("missing")
	assert.False(t, ok)
}

func TestBuildDoesNotShareState(t *testing.T) {
	m := read(t, testdata.EndToEnd)
	res, err := Build(m)
	require.NoError(t, err)

	contracts, _ := res.Scope("contracts")
	contracts.Compiler.Remappings[0].Target = "changed"
	contracts.Pin.Tag = "changed"

	again, _ := res.Scope("contracts")
	assert.Equal(t, "openzeppelin/v5.0.0", again.Compiler.Remappings[0].Target)
	assert.Equal(t, "v5.0.0", again.Pin.Tag)
	assert.Equal(t, "openzeppelin/v5.0.0", m.Compiler.Remappings[0].Target)

	portal, _ := res.Scope("fx-portal")
	portal.Compiler.Remappings[0].Target = "changed"
	assert.Equal(t, "openzeppelin/v5.0.0", res.Root().Compiler.Remappings[0].Target)
}

func TestResolveImport(t *testing.T) {
	res, err := Build(read(t, testdata.EndToEnd))
	require.NoError(t, err)

	p, err := res.ResolveImport("contracts", "@fx/tunnel/FxBaseRootTunnel.sol")
	require.NoError(t, err)
	assert.Equal(t, "fx-portal/v1.0.5/tunnel/FxBaseRootTunnel.sol", p)

	// the root scope has no @fx remapping
	_, err = res.ResolveImport(RootScope, "@fx/tunnel/FxBaseRootTunnel.sol")
	var unresolved *resolutionerrors.UnresolvedAliasError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "@fx/tunnel/FxBaseRootTunnel.sol", unresolved.Import)

	_, err = res.ResolveImport("nope", "@oz/token/ERC20/ERC20.sol")
	assert.ErrorIs(t, err, ErrUnknownScope)
}

func TestBuildDuplicateDependency(t *testing.T) {
	_, err := Build(read(t, testdata.DuplicateDependency))

	var dup *resolutionerrors.DuplicateDependencyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "contracts", dup.Name)
	// reported once however many times it's repeated
	assert.Len(t, resolutionerrors.StandardizeAll(err), 1)
}

func TestBuildAmbiguousRevision(t *testing.T) {
	_, err := Build(read(t, testdata.AmbiguousRevision))

	all := resolutionerrors.StandardizeAll(err)
	require.Len(t, all, 2)
	for _, e := range all {
		assert.Equal(t, resolutionerrors.AmbiguousRevision, e.Code)
	}
	assert.Equal(t, []string{"unpinned", "overpinned"}, lo.Map(all, func(e *resolutionerrors.ResolutionError, _ int) string {
		return e.Subject
	}))
}

func TestBuildConflictingOverride(t *testing.T) {
	_, err := Build(read(t, testdata.ConflictingOverride))

	var conflict *resolutionerrors.ConflictingAliasError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "@fx", conflict.Alias)
	assert.ErrorContains(t, err, `dependency "contracts"`)
}

func TestBuildReportsEveryError(t *testing.T) {
	_, err := Build(read(t, testdata.Invalid))
	require.Error(t, err)

	assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
	codes := lo.Map(resolutionerrors.StandardizeAll(err), func(e *resolutionerrors.ResolutionError, _ int) string {
		return e.Code
	})
	assert.ElementsMatch(t, []string{
		resolutionerrors.InvalidCompilerConfig,
		resolutionerrors.InvalidCompilerConfig,
		resolutionerrors.UnknownError,
		resolutionerrors.InvalidSource,
		resolutionerrors.InvalidRevision,
		resolutionerrors.UnsafeChainId,
		resolutionerrors.InvalidAccountCount,
	}, codes)
}

func TestScopeCount(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		t.Run(fmt.Sprintf("%d dependencies", n), func(t *testing.T) {
			m := read(t, testdata.EndToEnd)
			m.Dependencies = lo.Times(n, func(i int) *manifest.DependencySpec {
				return &manifest.DependencySpec{
					Name:   fmt.Sprintf("dep-%d", i),
					GitHub: fmt.Sprintf("org/dep-%d", i),
					Tag:    "v1.0.0",
				}
			})

			res, err := Build(m)
			require.NoError(t, err)
			assert.Equal(t, n+1, res.Len())
			assert.Len(t, res.Dependencies(), n)
		})
	}
}

func TestDocument(t *testing.T) {
	res, err := Build(read(t, testdata.EndToEnd))
	require.NoError(t, err)

	out, err := yaml.Marshal(res.Document())
	require.NoError(t, err)

	var decoded struct {
		APIVersion string `yaml:"apiVersion"`
		Kind       string `yaml:"kind"`
		Scopes     []struct {
			Name     string          `yaml:"name"`
			Pin      string          `yaml:"pin"`
			Compiler compiler.Config `yaml:"compiler"`
		} `yaml:"scopes"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, APIVersion, decoded.APIVersion)
	assert.Equal(t, Kind, decoded.Kind)
	require.Len(t, decoded.Scopes, 4)
	assert.Equal(t, "tag:v5.0.0", decoded.Scopes[1].Pin)
	assert.Equal(t, []string{"@oz=openzeppelin/v5.0.0", "@fx=fx-portal/v1.0.5"}, decoded.Scopes[1].Compiler.Remappings.Strings())

	js, err := json.Marshal(res.Document())
	require.NoError(t, err)
	assert.Contains(t, string(js), `"evm-version":"paris"`)
	assert.Contains(t, string(js), `"pin":"version:^1.0.5"`)
}

func TestDependencyTable(t *testing.T) {
	res, err := Build(read(t, testdata.EndToEnd))
	require.NoError(t, err)

	out := res.DependencyTable()
	for _, s := range []string{"contracts", "npm:@maticnetwork/fx-portal", "tag:v5.0.0", "0.8.20/shanghai", "@oz, @fx"} {
		assert.Contains(t, out, s)
	}
}

func TestResolverIsCachedAndConcurrencySafe(t *testing.T) {
	r := NewResolver(read(t, testdata.EndToEnd))

	var wg sync.WaitGroup
	results := make([]*Resolution, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.Resolution()
			assert.NoError(t, err)
			results[i] = res
		}()
	}
	wg.Wait()

	for _, res := range results {
		assert.Same(t, results[0], res)
	}

	scope, err := r.Scope("contracts")
	require.NoError(t, err)
	assert.Equal(t, "contracts", scope.Name)

	_, err = r.Scope("nope")
	assert.ErrorIs(t, err, ErrUnknownScope)
}

func TestResolverAccounts(t *testing.T) {
	r := NewResolver(read(t, testdata.EndToEnd))

	accs, err := r.Accounts()
	require.NoError(t, err)
	assert.Len(t, accs, 30)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", accs[0].Address.Hex())

	m := read(t, testdata.DuplicateDependency)
	_, err = NewResolver(m).Accounts()
	assert.ErrorIs(t, err, ErrNoTestEnvironment)
}
