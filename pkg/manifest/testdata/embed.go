// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testdata

import _ "embed"

//go:embed valid.yaml
var Valid []byte

//go:embed empty.yaml
var Empty []byte

//go:embed unknown-field.yaml
var UnknownField []byte

//go:embed wrong-kind.yaml
var WrongKind []byte

//go:embed unknown-evm-version.yaml
var UnknownEVMVersion []byte

//go:embed env.yaml
var Env []byte
