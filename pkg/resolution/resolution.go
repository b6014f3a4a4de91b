// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolution

import (
	"errors"
	"fmt"

	"chainkit.dev/x/chainkit/pkg/compiler"
	"chainkit.dev/x/chainkit/pkg/revision"
	"chainkit.dev/x/chainkit/pkg/schema"
	"github.com/samber/lo"
)

const (
	SchemaVersion = "v1"
	Kind          = "Resolution"
	APIVersion    = schema.APIGroup + "/" + SchemaVersion

	// RootScope is the name of the project's own scope
	RootScope = "."
)

var ErrUnknownScope = errors.New("unknown scope")

// Scope is the effective configuration of the root project or of one dependency
type Scope struct {
	Name string `yaml:"name" json:"name"`
	// Source is the dependency's canonical locator, empty for the root scope
	Source   string          `yaml:"source,omitempty" json:"source,omitempty"`
	Pin      *revision.Pin   `yaml:"pin,omitempty" json:"pin,omitempty"`
	Compiler compiler.Config `yaml:"compiler" json:"compiler"`
}

func (s Scope) IsRoot() bool {
	return s.Name == RootScope
}

// ResolveImport maps an import path through this scope's remappings
func (s Scope) ResolveImport(importPath string) (string, error) {
	return s.Compiler.Remappings.Resolve(importPath)
}

func (s Scope) clone() Scope {
	c := s
	c.Compiler = s.Compiler.Clone()
	if s.Pin != nil {
		pin := *s.Pin
		c.Pin = &pin
	}
	return c
}

// Resolution holds one effective scope per dependency plus the root scope.
// It is never modified after Build; accessors hand out copies.
type Resolution struct {
	project string
	// root first, then dependencies in declaration order
	scopes []Scope
	index  map[string]int
}

func newResolution(project string, root Scope, deps []Scope) *Resolution {
	scopes := append([]Scope{root}, deps...)
	return &Resolution{
		project: project,
		scopes:  scopes,
		index: lo.SliceToMap(lo.Range(len(scopes)), func(i int) (string, int) {
			return scopes[i].Name, i
		}),
	}
}

func (r *Resolution) Project() string {
	return r.project
}

func (r *Resolution) Len() int {
	return len(r.scopes)
}

// Scopes lists the root scope followed by the dependencies in declaration order
func (r *Resolution) Scopes() []Scope {
	return lo.Map(r.scopes, func(s Scope, _ int) Scope { return s.clone() })
}

func (r *Resolution) Dependencies() []Scope {
	return r.Scopes()[1:]
}

func (r *Resolution) Root() Scope {
	return r.scopes[0].clone()
}

func (r *Resolution) Scope(name string) (Scope, bool) {
	i, ok := r.index[name]
	if !ok {
		return Scope{}, false
	}
	return r.scopes[i].clone(), true
}

func (r *Resolution) ResolveImport(scope, importPath string) (string, error) {
	i, ok := r.index[scope]
	if !ok {
		return "", fmt.Errorf("%w %q. Must be %q or one of %q", ErrUnknownScope, scope, RootScope, r.dependencyNames())
	}
	return r.scopes[i].ResolveImport(importPath)
}

func (r *Resolution) dependencyNames() []string {
	return lo.Map(r.scopes[1:], func(s Scope, _ int) string { return s.Name })
}

// Document is the serializable form of a Resolution
type Document struct {
	schema.ManifestMeta `yaml:",inline"`
	Project             string  `yaml:"project" json:"project"`
	Scopes              []Scope `yaml:"scopes" json:"scopes"`
}

func (r *Resolution) Document() *Document {
	return &Document{
		ManifestMeta: schema.ManifestMeta{
			APIVersion: APIVersion,
			Kind:       Kind,
		},
		Project: r.project,
		Scopes:  r.Scopes(),
	}
}
