// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package compiler

// Merge computes the effective config of a scope from the manifest default and the scope's optional override.
//
// Without an override the result is an independent copy of def. Otherwise every scalar set in the
// override replaces the default's, and remappings are merged by alias (see remapping.Remappings.Overlay).
// Both inputs must be free of conflicting aliases; exact repeats are collapsed. Neither input is modified.
func Merge(def Config, override *Config) (Config, error) {
	defRemappings, err := def.Remappings.Normalize()
	if err != nil {
		return Config{}, err
	}

	merged := def.Clone()
	merged.Remappings = defRemappings
	if override == nil {
		return merged, nil
	}

	overrideRemappings, err := override.Remappings.Normalize()
	if err != nil {
		return Config{}, err
	}

	if override.Version != nil {
		merged.Version = override.Version.clone()
	}
	if override.EVMVersion.IsSet() {
		merged.EVMVersion = override.EVMVersion
	}
	merged.Remappings = defRemappings.Overlay(overrideRemappings)

	if err := merged.Remappings.EnsureUnique(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
