// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package revision

import (
	"testing"

	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinValidate(t *testing.T) {
	tests := []struct {
		name       string
		pin        Pin
		ambiguous  bool
		invalid    bool
		wantString string
	}{
		{name: "branch", pin: Pin{Branch: "main"}, wantString: "branch:main"},
		{name: "tag", pin: Pin{Tag: "v5.0.0"}, wantString: "tag:v5.0.0"},
		{name: "version range", pin: Pin{Version: "^1.2.0"}, wantString: "version:^1.2.0"},
		{name: "none", pin: Pin{}, ambiguous: true},
		{name: "branch and version", pin: Pin{Branch: "main", Version: "1.0.0"}, ambiguous: true},
		{name: "all three", pin: Pin{Branch: "main", Tag: "v1", Version: "1.0.0"}, ambiguous: true},
		{name: "bad branch", pin: Pin{Branch: "feature..x"}, invalid: true},
		{name: "bad tag", pin: Pin{Tag: "v1 beta"}, invalid: true},
		{name: "bad range", pin: Pin{Version: "one-point-oh"}, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pin.Validate("dep")
			switch {
			case tt.ambiguous:
				var ambiguous *resolutionerrors.AmbiguousRevisionError
				require.ErrorAs(t, err, &ambiguous)
				assert.Equal(t, "dep", ambiguous.Dependency)
				assert.Empty(t, tt.pin.String())
			case tt.invalid:
				var invalid *resolutionerrors.InvalidRevisionError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "dep", invalid.Dependency)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantString, tt.pin.String())
			}
		})
	}
}

func TestAmbiguousRevisionFields(t *testing.T) {
	err := Pin{Branch: "main", Version: "1.0.0"}.Validate("contracts")
	var ambiguous *resolutionerrors.AmbiguousRevisionError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{"branch", "version"}, ambiguous.Fields)
}

func TestPinConstraint(t *testing.T) {
	c, err := Pin{Version: ">=4.9.0 <5.0.0"}.Constraint()
	require.NoError(t, err)
	assert.True(t, c.Check(semver.MustParse("4.9.6")))
	assert.False(t, c.Check(semver.MustParse("5.0.0")))

	_, err = Pin{Tag: "v1"}.Constraint()
	assert.Error(t, err)
}

func TestParsePin(t *testing.T) {
	for _, p := range []Pin{{Branch: "release/5.x"}, {Tag: "v5.0.0"}, {Version: "^1.0.5"}} {
		parsed, err := ParsePin(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	for _, s := range []string{"", "tag", "tag:", "commit:abc123"} {
		_, err := ParsePin(s)
		assert.Error(t, err, s)
	}

	assert.True(t, Pin{Branch: "main"}.IsFloating())
	assert.True(t, Pin{Version: "^1.0.0"}.IsFloating())
	assert.False(t, Pin{Tag: "v1.0.0"}.IsFloating())
}

func TestSourceValidate(t *testing.T) {
	tests := []struct {
		name    string
		source  Source
		locator string
		valid   bool
	}{
		{name: "github", source: Source{GitHub: "OpenZeppelin/openzeppelin-contracts"}, locator: "github:OpenZeppelin/openzeppelin-contracts", valid: true},
		{name: "npm scoped", source: Source{Npm: "@openzeppelin/contracts"}, locator: "npm:@openzeppelin/contracts", valid: true},
		{name: "oci", source: Source{Oci: "oci://ghcr.io/acme/contracts"}, locator: "oci://ghcr.io/acme/contracts", valid: true},
		{name: "oci without scheme", source: Source{Oci: "ghcr.io/acme/contracts"}, locator: "oci://ghcr.io/acme/contracts", valid: true},
		{name: "local", source: Source{Local: "../shared"}, locator: "local:../shared", valid: true},
		{name: "url", source: Source{URL: "https://github.com/0xPolygon/fx-portal.git"}, locator: "https://github.com/0xPolygon/fx-portal.git", valid: true},
		{name: "none", source: Source{}},
		{name: "two", source: Source{GitHub: "a/b", Npm: "b"}},
		{name: "github without repo", source: Source{GitHub: "acme"}},
		{name: "npm uppercase", source: Source{Npm: "OpenZeppelin"}},
		{name: "url scheme", source: Source{URL: "ftp://example.com/x"}},
		{name: "relative url", source: Source{URL: "example.com/x"}},
		{name: "blank local", source: Source{Local: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.source.Validate("dep")
			if !tt.valid {
				var invalid *resolutionerrors.InvalidSourceError
				require.ErrorAs(t, err, &invalid)
				assert.ErrorIs(t, err, ErrInvalidSource)
				assert.Equal(t, "dep", invalid.Dependency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.locator, tt.source.Locator())
		})
	}
}

func TestSourceKind(t *testing.T) {
	k, ok := Source{Npm: "ds-test"}.Kind()
	assert.True(t, ok)
	assert.Equal(t, NpmSource, k)

	_, ok = Source{Npm: "ds-test", Local: "x"}.Kind()
	assert.False(t, ok)
	assert.Empty(t, Source{}.Locator())
}
