// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"testing"

	"chainkit.dev/x/chainkit/pkg/remapping"
	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rm(t *testing.T, specs ...string) remapping.Remappings {
	rs := remapping.Remappings{}
	for _, s := range specs {
		r, err := remapping.Parse(s)
		require.NoError(t, err)
		rs = append(rs, r)
	}
	return rs
}

func defaultConfig(t *testing.T) Config {
	return Config{
		Version:    MustSemVer("0.8.23"),
		EVMVersion: Paris,
		Remappings: rm(t, "@oz=openzeppelin/v5.0.0", "@ds=ds-test/src"),
	}
}

func TestMergeIdentity(t *testing.T) {
	def := defaultConfig(t)

	merged, err := Merge(def, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(def, merged); diff != "" {
		t.Errorf("Merge(def, nil) mismatch (-want +got):\n%s", diff)
	}

	// the result is an independent copy
	merged.Remappings[0].Target = "changed"
	*merged.Version = *MustSemVer("0.7.0")
	assert.Equal(t, "openzeppelin/v5.0.0", def.Remappings[0].Target)
	assert.Equal(t, "0.8.23", def.Version.String())
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	def := defaultConfig(t)
	defBefore := def.Clone()
	override := &Config{
		Version:    MustSemVer("0.8.24"),
		Remappings: rm(t, "@oz=openzeppelin/v5.1.0", "@fx=fx-portal/v1.0.5"),
	}
	overrideBefore := override.Clone()

	merged, err := Merge(def, override)
	require.NoError(t, err)
	merged.Remappings[0].Target = "changed"
	*merged.Version = *MustSemVer("0.1.0")

	if diff := cmp.Diff(defBefore, def); diff != "" {
		t.Errorf("default was mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(overrideBefore, *override); diff != "" {
		t.Errorf("override was mutated (-want +got):\n%s", diff)
	}
}

func TestMergePartialOverride(t *testing.T) {
	tests := []struct {
		name     string
		override *Config
		want     Config
	}{
		{
			name:     "empty override",
			override: &Config{},
			want:     defaultConfig(t),
		},
		{
			name:     "version only",
			override: &Config{Version: MustSemVer("0.8.20")},
			want: Config{
				Version:    MustSemVer("0.8.20"),
				EVMVersion: Paris,
				Remappings: rm(t, "@oz=openzeppelin/v5.0.0", "@ds=ds-test/src"),
			},
		},
		{
			name:     "evm version only",
			override: &Config{EVMVersion: Shanghai},
			want: Config{
				Version:    MustSemVer("0.8.23"),
				EVMVersion: Shanghai,
				Remappings: rm(t, "@oz=openzeppelin/v5.0.0", "@ds=ds-test/src"),
			},
		},
		{
			name:     "remappings replaced by alias and appended",
			override: &Config{Remappings: rm(t, "@fx=fx-portal/v1.0.5", "@oz=openzeppelin/v4.9.0")},
			want: Config{
				Version:    MustSemVer("0.8.23"),
				EVMVersion: Paris,
				Remappings: rm(t, "@oz=openzeppelin/v4.9.0", "@ds=ds-test/src", "@fx=fx-portal/v1.0.5"),
			},
		},
		{
			name:     "repeated identical override entry is collapsed",
			override: &Config{Remappings: rm(t, "@fx=fx-portal/v1.0.5", "@fx=fx-portal/v1.0.5")},
			want: Config{
				Version:    MustSemVer("0.8.23"),
				EVMVersion: Paris,
				Remappings: rm(t, "@oz=openzeppelin/v5.0.0", "@ds=ds-test/src", "@fx=fx-portal/v1.0.5"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(defaultConfig(t), tt.override)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeConflictingAlias(t *testing.T) {
	def := defaultConfig(t)

	_, err := Merge(def, &Config{Remappings: rm(t, "@fx=a", "@fx=b")})
	var conflict *resolutionerrors.ConflictingAliasError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "@fx", conflict.Alias)

	def.Remappings = append(def.Remappings, rm(t, "@oz=elsewhere")...)
	_, err = Merge(def, nil)
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "@oz", conflict.Alias)
}

func TestMergeEndToEndRemappings(t *testing.T) {
	def := Config{
		Version:    MustSemVer("0.8.23"),
		EVMVersion: Paris,
		Remappings: rm(t, "@oz=openzeppelin/v5.0.0"),
	}
	override := &Config{Remappings: rm(t, "@oz=openzeppelin/v5.0.0", "@fx=fx-portal/v1.0.5")}

	got, err := Merge(def, override)
	require.NoError(t, err)
	assert.Equal(t, "0.8.23", got.Version.String())
	assert.Equal(t, Paris, got.EVMVersion)
	assert.Equal(t, []string{"@oz", "@fx"}, got.Remappings.Aliases())
	assert.NoError(t, got.Remappings.EnsureUnique())
}

func TestValidateComplete(t *testing.T) {
	assert.NoError(t, defaultConfig(t).ValidateComplete("."))

	err := Config{}.ValidateComplete(".")
	var invalid *resolutionerrors.InvalidCompilerConfigError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "'version'")
	assert.Contains(t, err.Error(), "'evm-version'")
}
