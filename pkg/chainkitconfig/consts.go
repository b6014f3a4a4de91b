// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package chainkitconfig

import (
	"chainkit.dev/x/chainkit/pkg/manifest"
	"chainkit.dev/x/chainkit/pkg/packagelock"
)

const (
	ManifestFileName = manifest.FileName
	LockFileName     = packagelock.FileName
)
