// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"errors"
	"fmt"

	"chainkit.dev/x/chainkit/pkg/remapping"
	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
)

var errMissing = errors.New("required field is missing")

// Config is a compiler configuration. As a manifest default it must be complete;
// as a dependency override any subset of fields can be set.
type Config struct {
	Version    *SemVer              `yaml:"version,omitempty" json:"version,omitempty"`
	EVMVersion EVMVersion           `yaml:"evm-version,omitempty" json:"evm-version,omitempty"`
	Remappings remapping.Remappings `yaml:"remappings,omitempty" json:"remappings,omitempty"`
}

// Clone returns a deep copy
func (c Config) Clone() Config {
	return Config{
		Version:    c.Version.clone(),
		EVMVersion: c.EVMVersion,
		Remappings: c.Remappings.Clone(),
	}
}

func (c Config) IsZero() bool {
	return c.Version == nil && !c.EVMVersion.IsSet() && len(c.Remappings) == 0
}

// ValidateComplete checks that every scalar is set and the remappings don't conflict.
// scope only labels errors.
func (c Config) ValidateComplete(scope string) error {
	var errs []error
	if c.Version == nil {
		errs = append(errs, &resolutionerrors.InvalidCompilerConfigError{Scope: scope, Field: "version", Cause: errMissing})
	}
	if !c.EVMVersion.IsSet() {
		errs = append(errs, &resolutionerrors.InvalidCompilerConfigError{Scope: scope, Field: "evm-version",
			Cause: fmt.Errorf("%w. Must be one of %q", errMissing, KnownEVMVersions())})
	}
	if err := c.Remappings.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
