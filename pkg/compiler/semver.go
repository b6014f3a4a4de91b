// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
)

// SemVer is a strict 'MAJOR.MINOR.PATCH' language version, e.g. 0.8.23
type SemVer semver.Version

func NewSemVer(s string) (*SemVer, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version %q: %w", s, err)
	}
	return AsSemVer(v), nil
}

func MustSemVer(s string) *SemVer {
	v, err := NewSemVer(s)
	if err != nil {
		panic(err)
	}
	return v
}

func AsSemVer(v *semver.Version) *SemVer {
	a := SemVer(*v)
	return &a
}

func (v *SemVer) Value() semver.Version {
	return (semver.Version)(*v)
}

func (v *SemVer) String() string {
	if v == nil {
		return ""
	}
	val := v.Value()
	return val.String()
}

// Equal treats two nil versions as equal
func (v *SemVer) Equal(o *SemVer) bool {
	if v == nil || o == nil {
		return v == nil && o == nil
	}
	a, b := v.Value(), o.Value()
	return a.Equal(&b)
}

func (v *SemVer) clone() *SemVer {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (v *SemVer) UnmarshalYAML(data []byte) error {
	var versionStr string
	if err := yaml.Unmarshal(data, &versionStr); err != nil {
		return fmt.Errorf("failed to unmarshal 'version': %w", err)
	}
	parsed, err := NewSemVer(versionStr)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

func (v SemVer) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

func (v SemVer) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *SemVer) UnmarshalText(text []byte) error {
	parsed, err := NewSemVer(string(text))
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

func (SemVer) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "string",
		Pattern:  `^\d+\.\d+\.\d+$`,
		Examples: []interface{}{"0.8.23"},
	}
}

var _ yaml.BytesUnmarshaler = (*SemVer)(nil)
var _ yaml.InterfaceMarshaler = SemVer{}
