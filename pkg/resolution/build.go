// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolution

import (
	"errors"
	"fmt"
	"log/slog"

	"chainkit.dev/x/chainkit/pkg/compiler"
	"chainkit.dev/x/chainkit/pkg/manifest"
	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"chainkit.dev/x/chainkit/pkg/utils/stringset"
)

// Build computes the effective scope of the root project and of every dependency.
//
// Every problem in the manifest is reported at once, joined with errors.Join.
// A manifest that builds successfully has a valid test environment too, if it declares one.
func Build(m *manifest.Manifest) (*Resolution, error) {
	var errs []error

	root, rootErr := buildRoot(m)
	if rootErr != nil {
		errs = append(errs, rootErr)
	}

	seen, reported := stringset.New(), stringset.New()
	deps := make([]Scope, 0, len(m.Dependencies))

	for i, d := range m.Dependencies {
		switch {
		case d.Name == "":
			errs = append(errs, fmt.Errorf("%w: 'name' of dependency #%d", manifest.ErrMissingManifestField, i+1))
			continue
		case d.Name == RootScope:
			errs = append(errs, fmt.Errorf("%w: dependency name %q is reserved", manifest.ErrInvalidManifest, RootScope))
			continue
		case !seen.AddIfAbsent(d.Name):
			if reported.AddIfAbsent(d.Name) {
				errs = append(errs, &resolutionerrors.DuplicateDependencyError{Name: d.Name})
			}
			continue
		}

		scope, err := buildDependency(m, d, rootErr == nil)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		deps = append(deps, scope)
	}

	if m.Test != nil {
		if err := m.Test.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slog.Debug("resolved manifest", "project", m.Name, "scopes", len(deps)+1)
	return newResolution(m.Name, root, deps), nil
}

func buildRoot(m *manifest.Manifest) (Scope, error) {
	if err := m.Compiler.ValidateComplete(RootScope); err != nil {
		return Scope{}, err
	}
	merged, err := compiler.Merge(m.Compiler, nil)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Name: RootScope, Compiler: merged}, nil
}

// buildDependency skips merging when the default config is itself invalid, as that's already reported
func buildDependency(m *manifest.Manifest, d *manifest.DependencySpec, mergeable bool) (Scope, error) {
	var errs []error

	pin := d.Pin()
	if err := pin.Validate(d.Name); err != nil {
		errs = append(errs, err)
	}
	source := d.Source()
	if err := source.Validate(d.Name); err != nil {
		errs = append(errs, err)
	}

	var merged compiler.Config
	if mergeable {
		var err error
		merged, err = compiler.Merge(m.Compiler, d.Compiler)
		if err != nil {
			errs = append(errs, fmt.Errorf("compiler config of dependency %q: %w", d.Name, err))
		}
	}

	if len(errs) > 0 {
		return Scope{}, errors.Join(errs...)
	}

	slog.Debug("resolved dependency scope", "dependency", d.Name, "source", source.Locator(), "pin", pin.String(),
		"overridden", d.Compiler != nil)
	return Scope{
		Name:     d.Name,
		Source:   source.Locator(),
		Pin:      &pin,
		Compiler: merged,
	}, nil
}
