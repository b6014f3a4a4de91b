// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"chainkit.dev/x/chainkit/pkg/schema"
	"github.com/invopop/jsonschema"
)

// JSONSchema describes the chainkit.yaml document
func JSONSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&Manifest{})
	s.Title = "chainkit manifest"

	schema.ManifestMeta{APIVersion: APIVersion, Kind: Kind}.JSONSchemaProperties(s)
	return s
}
