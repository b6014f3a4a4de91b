// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testdata

import _ "embed"

//go:embed end-to-end.yaml
var EndToEnd []byte

//go:embed duplicate-dependency.yaml
var DuplicateDependency []byte

//go:embed ambiguous-revision.yaml
var AmbiguousRevision []byte

//go:embed conflicting-override.yaml
var ConflictingOverride []byte

//go:embed invalid.yaml
var Invalid []byte
