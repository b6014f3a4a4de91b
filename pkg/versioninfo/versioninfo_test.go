// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package versioninfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := Get()
	assert.NotEmpty(t, v.Version)
	assert.NotEmpty(t, v.Build)
	assert.NotEmpty(t, v.GoVersion)

	Version, Build = "1.2.3", "abc123"
	t.Cleanup(func() { Version, Build = "", "" })
	v = Get()
	assert.Equal(t, "1.2.3", v.Version)
	assert.Equal(t, "abc123", v.Build)
}
