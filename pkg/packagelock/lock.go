// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package packagelock

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"chainkit.dev/x/chainkit/pkg/resolution"
	"chainkit.dev/x/chainkit/pkg/revision"
	"chainkit.dev/x/chainkit/pkg/schema"
	"chainkit.dev/x/chainkit/pkg/utils/stringset"
	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
)

const (
	FileName          = "chainkit.lock"
	PinLockKind       = "PinLock"
	PinLockVersion    = "v1"
	PinLockAPIVersion = schema.APIGroup + "/" + PinLockVersion
)

var ErrInvalidPinLock = fmt.Errorf("invalid pin lock")

// PinLock records where every dependency comes from and which revision it's pinned to,
// so sources can be fetched before compilation.
type PinLock struct {
	schema.ManifestMeta `yaml:",inline"`
	Project             string   `yaml:"project"`
	Dependencies        []*Entry `yaml:"dependencies"`
}

type Entry struct {
	Name   string       `yaml:"name"`
	Source string       `yaml:"source"`
	Pin    revision.Pin `yaml:"pin"`
	// Resolved is the concrete version or commit a fetcher settled on for a floating pin.
	// chainkit never sets it but keeps it across rewrites while the pin is unchanged.
	Resolved string `yaml:"resolved,omitempty"`
}

func Read(filePath string) (*PinLock, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	bytes, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	return ReadContents(bytes)
}

func ReadContents(contents []byte) (*PinLock, error) {
	var l PinLock
	if err := yaml.Unmarshal(contents, &l); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPinLock, err)
	}

	s := schema.ManifestMeta{
		APIVersion: PinLockAPIVersion,
		Kind:       PinLockKind,
	}
	if err := s.ValidateSchema(l.ManifestMeta); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPinLock, err.Error())
	}

	for i, e := range l.Dependencies {
		if e == nil {
			return nil, fmt.Errorf("%w: dependency #%d is empty", ErrInvalidPinLock, i+1)
		}
	}

	return &l, nil
}

// FromResolution computes the expected lock of a resolved manifest, sorted by dependency name
func FromResolution(res *resolution.Resolution) *PinLock {
	entries := lo.Map(res.Dependencies(), func(s resolution.Scope, _ int) *Entry {
		return &Entry{
			Name:   s.Name,
			Source: s.Source,
			Pin:    *s.Pin,
		}
	})
	slices.SortFunc(entries, func(a, b *Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &PinLock{
		ManifestMeta: schema.ManifestMeta{
			APIVersion: PinLockAPIVersion,
			Kind:       PinLockKind,
		},
		Project:      res.Project(),
		Dependencies: entries,
	}
}

func (l *PinLock) byName() map[string]*Entry {
	return lo.SliceToMap(l.Dependencies, func(e *Entry) (string, *Entry) {
		return e.Name, e
	})
}

// isInSync checks whether this (existing) lockfile matches an expected lockfile.
// A resolved version recorded for a version range must still satisfy that range.
func (l *PinLock) isInSync(expected *PinLock) (bool, error) {
	existing := l.byName()
	names := stringset.New(lo.Map(l.Dependencies, func(e *Entry, _ int) string {
		return e.Name
	})...)

	if l.Project != expected.Project {
		return false, nil
	}
	if len(names) != len(l.Dependencies) || len(names) != len(expected.Dependencies) {
		return false, nil
	}

	for _, want := range expected.Dependencies {
		if !names.Contains(want.Name) {
			return false, nil
		}
		got := existing[want.Name]
		if got.Source != want.Source || got.Pin != want.Pin {
			return false, nil
		}

		if kind, _ := got.Pin.Kind(); kind == revision.VersionPin && got.Resolved != "" {
			ok, err := satisfies(got.Pin, got.Resolved)
			if err != nil {
				return false, fmt.Errorf("dependency %q: %w", got.Name, err)
			}
			if !ok {
				return false, nil
			}
		}
	}

	return true, nil
}

func satisfies(pin revision.Pin, resolved string) (bool, error) {
	c, err := pin.Constraint()
	if err != nil {
		return false, err
	}
	v, err := semver.NewVersion(resolved)
	if err != nil {
		return false, fmt.Errorf("invalid resolved version %q: %w", resolved, err)
	}
	return c.Check(v), nil
}

// carryResolved copies resolved revisions from an older lock for entries whose pin hasn't changed
func (l *PinLock) carryResolved(previous *PinLock) {
	if previous == nil {
		return
	}
	old := previous.byName()
	for _, e := range l.Dependencies {
		if o, ok := old[e.Name]; ok && o.Source == e.Source && o.Pin == e.Pin {
			e.Resolved = o.Resolved
		}
	}
}
