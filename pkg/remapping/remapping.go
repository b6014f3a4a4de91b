// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package remapping

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

var ErrInvalidRemapping = errors.New("invalid remapping")

// Remapping maps an import prefix (Alias) to the path it stands for (Target)
type Remapping struct {
	Alias  string
	Target string
}

// Parse reads the 'alias=target' form
func Parse(s string) (Remapping, error) {
	alias, target, ok := strings.Cut(s, "=")
	if !ok {
		return Remapping{}, fmt.Errorf("%w %q: must be of the form '<alias>=<target>'", ErrInvalidRemapping, s)
	}
	return New(alias, target)
}

func New(alias, target string) (Remapping, error) {
	alias, target = strings.TrimSpace(alias), strings.TrimSpace(target)
	if alias == "" {
		return Remapping{}, fmt.Errorf("%w: alias can't be empty", ErrInvalidRemapping)
	}
	if target == "" {
		return Remapping{}, fmt.Errorf("%w: target of alias %q can't be empty", ErrInvalidRemapping, alias)
	}
	return Remapping{Alias: alias, Target: target}, nil
}

func (r Remapping) String() string {
	return r.Alias + "=" + r.Target
}

// UnmarshalYAML accepts either "alias=target" or a single-entry {alias: target} mapping
func (r *Remapping) UnmarshalYAML(data []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal remapping: %w", err)
	}

	switch v := raw.(type) {
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*r = parsed
	case map[string]interface{}:
		if len(v) != 1 {
			return fmt.Errorf("%w: a remapping mapping must have exactly one entry, got %d", ErrInvalidRemapping, len(v))
		}
		for alias, target := range v {
			t, ok := target.(string)
			if !ok {
				return fmt.Errorf("%w: target of alias %q must be a string", ErrInvalidRemapping, alias)
			}
			parsed, err := New(alias, t)
			if err != nil {
				return err
			}
			*r = parsed
		}
	default:
		return fmt.Errorf("%w: must be a string or a mapping", ErrInvalidRemapping)
	}
	return nil
}

func (r Remapping) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

func (r Remapping) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Remapping) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (Remapping) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{
				Type:        "string",
				Pattern:     `^[^=]+=.+$`,
				Description: "<alias>=<target>",
			},
			{
				Type:          "object",
				MinProperties: lo.ToPtr(uint64(1)),
				MaxProperties: lo.ToPtr(uint64(1)),
				Description:   "{<alias>: <target>}",
			},
		},
	}
}

var _ yaml.BytesUnmarshaler = (*Remapping)(nil)
var _ yaml.InterfaceMarshaler = Remapping{}

// Remappings is an ordered remapping list
type Remappings []Remapping

func (rs Remappings) Clone() Remappings {
	if rs == nil {
		return nil
	}
	return slices.Clone(rs)
}

func (rs Remappings) Lookup(alias string) (Remapping, bool) {
	return lo.Find(rs, func(r Remapping) bool {
		return r.Alias == alias
	})
}

func (rs Remappings) Aliases() []string {
	return lo.Map(rs, func(r Remapping, _ int) string { return r.Alias })
}

func (rs Remappings) Strings() []string {
	return lo.Map(rs, func(r Remapping, _ int) string { return r.String() })
}

// Validate rejects aliases that are remapped to more than one target.
// Conflicts are reported sorted by alias so the result doesn't depend on declaration order.
func (rs Remappings) Validate() error {
	targets := make(map[string][]string)
	for _, r := range rs {
		if !lo.Contains(targets[r.Alias], r.Target) {
			targets[r.Alias] = append(targets[r.Alias], r.Target)
		}
	}

	conflicting := lo.Filter(lo.Keys(targets), func(alias string, _ int) bool {
		return len(targets[alias]) > 1
	})
	slices.Sort(conflicting)

	errs := lo.Map(conflicting, func(alias string, _ int) error {
		ts := slices.Clone(targets[alias])
		slices.Sort(ts)
		return &resolutionerrors.ConflictingAliasError{Alias: alias, Targets: ts}
	})
	return errors.Join(errs...)
}

// Normalize validates the list and drops exact repeats, keeping first occurrences
func (rs Remappings) Normalize() (Remappings, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	if rs == nil {
		return nil, nil
	}
	return lo.UniqBy(rs, func(r Remapping) string { return r.Alias }), nil
}

// EnsureUnique fails on the first repeated alias, whatever its target
func (rs Remappings) EnsureUnique() error {
	dups := lo.FindDuplicates(rs.Aliases())
	if len(dups) > 0 {
		return &resolutionerrors.RemappingConflictError{Alias: dups[0]}
	}
	return nil
}

// Overlay merges override into rs by alias: matching aliases are replaced in place,
// new aliases are appended in override order, and the rest of rs is kept.
// Neither input is modified.
func (rs Remappings) Overlay(override Remappings) Remappings {
	if len(override) == 0 {
		return rs.Clone()
	}

	byAlias := lo.SliceToMap(override, func(r Remapping) (string, Remapping) {
		return r.Alias, r
	})

	merged := make(Remappings, 0, len(rs)+len(override))
	for _, r := range rs {
		if o, ok := byAlias[r.Alias]; ok {
			merged = append(merged, o)
			continue
		}
		merged = append(merged, r)
	}

	base := lo.SliceToMap(rs, func(r Remapping) (string, struct{}) {
		return r.Alias, struct{}{}
	})
	for _, o := range override {
		if _, ok := base[o.Alias]; !ok {
			merged = append(merged, o)
		}
	}
	return merged
}

// Match returns the remapping whose alias is the longest prefix of importPath
func (rs Remappings) Match(importPath string) (Remapping, bool) {
	var best Remapping
	found := false
	for _, r := range rs {
		if !strings.HasPrefix(importPath, r.Alias) {
			continue
		}
		if !found || len(r.Alias) > len(best.Alias) {
			best, found = r, true
		}
	}
	return best, found
}

// Resolve rewrites importPath through the longest matching alias.
// The result is never resolved again, so remappings can't form cycles.
func (rs Remappings) Resolve(importPath string) (string, error) {
	r, ok := rs.Match(importPath)
	if !ok {
		return "", &resolutionerrors.UnresolvedAliasError{Import: importPath}
	}
	return r.Target + strings.TrimPrefix(importPath, r.Alias), nil
}
