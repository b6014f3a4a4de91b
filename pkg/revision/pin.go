// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package revision

import (
	"fmt"
	"strings"

	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5/plumbing"
)

type PinKind string

const (
	BranchPin  PinKind = "branch"
	TagPin     PinKind = "tag"
	VersionPin PinKind = "version"
)

// Pin identifies which snapshot of a dependency to use.
// Exactly one of Branch, Tag or Version must be set; Version is a semver range.
type Pin struct {
	Branch  string
	Tag     string
	Version string
}

func (p Pin) setFields() []string {
	var fields []string
	if p.Branch != "" {
		fields = append(fields, string(BranchPin))
	}
	if p.Tag != "" {
		fields = append(fields, string(TagPin))
	}
	if p.Version != "" {
		fields = append(fields, string(VersionPin))
	}
	return fields
}

// Kind returns the single kind of this pin, or false if the pin is ambiguous
func (p Pin) Kind() (PinKind, bool) {
	fields := p.setFields()
	if len(fields) != 1 {
		return "", false
	}
	return PinKind(fields[0]), true
}

func (p Pin) Value() string {
	switch k, _ := p.Kind(); k {
	case BranchPin:
		return p.Branch
	case TagPin:
		return p.Tag
	case VersionPin:
		return p.Version
	default:
		return ""
	}
}

// String renders the pin as '<kind>:<value>', e.g. 'tag:v5.0.0'
func (p Pin) String() string {
	k, ok := p.Kind()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%s", k, p.Value())
}

// ParsePin is the inverse of Pin.String
func ParsePin(s string) (Pin, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok || value == "" {
		return Pin{}, fmt.Errorf("invalid pin %q. Must be of the form '<branch|tag|version>:<value>'", s)
	}
	switch PinKind(kind) {
	case BranchPin:
		return Pin{Branch: value}, nil
	case TagPin:
		return Pin{Tag: value}, nil
	case VersionPin:
		return Pin{Version: value}, nil
	default:
		return Pin{}, fmt.Errorf("invalid pin %q: unknown kind %q", s, kind)
	}
}

func (p Pin) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pin) UnmarshalText(text []byte) error {
	parsed, err := ParsePin(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// IsFloating reports whether the pin can point at different snapshots over time
func (p Pin) IsFloating() bool {
	k, _ := p.Kind()
	return k == BranchPin || k == VersionPin
}

// Constraint parses a version pin's semver range
func (p Pin) Constraint() (*semver.Constraints, error) {
	if k, _ := p.Kind(); k != VersionPin {
		return nil, fmt.Errorf("pin %q is not a version range", p.String())
	}
	return semver.NewConstraint(p.Version)
}

// Validate checks that exactly one revision is pinned and that it's well-formed.
// dependency is only used to label errors.
func (p Pin) Validate(dependency string) error {
	fields := p.setFields()
	if len(fields) != 1 {
		return &resolutionerrors.AmbiguousRevisionError{Dependency: dependency, Fields: fields}
	}

	switch PinKind(fields[0]) {
	case BranchPin:
		if err := plumbing.NewBranchReferenceName(p.Branch).Validate(); err != nil {
			return &resolutionerrors.InvalidRevisionError{Dependency: dependency, Field: string(BranchPin), Value: p.Branch, Cause: err}
		}
	case TagPin:
		if err := plumbing.NewTagReferenceName(p.Tag).Validate(); err != nil {
			return &resolutionerrors.InvalidRevisionError{Dependency: dependency, Field: string(TagPin), Value: p.Tag, Cause: err}
		}
	case VersionPin:
		if _, err := semver.NewConstraint(p.Version); err != nil {
			return &resolutionerrors.InvalidRevisionError{Dependency: dependency, Field: string(VersionPin), Value: p.Version, Cause: err}
		}
	}
	return nil
}
