// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chainkit.dev/x/chainkit/pkg/compiler"
	"chainkit.dev/x/chainkit/pkg/revision"
	"chainkit.dev/x/chainkit/pkg/schema"
	"chainkit.dev/x/chainkit/pkg/testenv"
	"chainkit.dev/x/chainkit/pkg/utils"
	"github.com/goccy/go-yaml"
)

var ErrInvalidManifest = fmt.Errorf("invalid manifest")
var ErrMissingManifestField = fmt.Errorf("%w: a required field is missing", ErrInvalidManifest)

const (
	FileName      = "chainkit.yaml"
	Kind          = "Manifest"
	SchemaVersion = "v1"
	APIVersion    = schema.APIGroup + "/" + SchemaVersion
)

// Manifest is the root configuration of a build/test pipeline.
// It is read once and must not be mutated afterwards.
type Manifest struct {
	schema.ManifestMeta `yaml:",inline"`
	Name                string            `yaml:"name" json:"name" jsonschema:"required"`
	Plugins             []string          `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Compiler            compiler.Config   `yaml:"compiler" json:"compiler" jsonschema:"required"`
	Dependencies        []*DependencySpec `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Test                *testenv.Config   `yaml:"test,omitempty" json:"test,omitempty"`

	// AbsPath is the file this manifest was read from, empty when read from memory
	AbsPath string `yaml:"-" json:"-"`
}

// DependencySpec is an external project pinned to a revision.
// Exactly one source field and exactly one of branch, tag or version must be set.
type DependencySpec struct {
	Name string `yaml:"name" json:"name" jsonschema:"required"`

	GitHub string `yaml:"github,omitempty" json:"github,omitempty" jsonschema:"oneof_required=github,example=OpenZeppelin/openzeppelin-contracts"`
	Npm    string `yaml:"npm,omitempty" json:"npm,omitempty" jsonschema:"oneof_required=npm,example=@openzeppelin/contracts"`
	Oci    string `yaml:"oci,omitempty" json:"oci,omitempty" jsonschema:"oneof_required=oci"`
	Local  string `yaml:"local,omitempty" json:"local,omitempty" jsonschema:"oneof_required=local"`
	URL    string `yaml:"url,omitempty" json:"url,omitempty" jsonschema:"oneof_required=url"`

	Branch  string `yaml:"branch,omitempty" json:"branch,omitempty"`
	Tag     string `yaml:"tag,omitempty" json:"tag,omitempty"`
	Version string `yaml:"version,omitempty" json:"version,omitempty" jsonschema:"example=^5.0.0"`

	// Compiler overrides the manifest's default compiler config for this dependency
	Compiler *compiler.Config `yaml:"compiler,omitempty" json:"compiler,omitempty"`
}

func (d *DependencySpec) Source() revision.Source {
	return revision.Source{
		GitHub: d.GitHub,
		Npm:    d.Npm,
		Oci:    d.Oci,
		Local:  d.Local,
		URL:    d.URL,
	}
}

func (d *DependencySpec) Pin() revision.Pin {
	return revision.Pin{
		Branch:  d.Branch,
		Tag:     d.Tag,
		Version: d.Version,
	}
}

// Dir is the directory holding the manifest, or the working directory for in-memory manifests
func (m *Manifest) Dir() string {
	if m.AbsPath == "" {
		return "."
	}
	return filepath.Dir(m.AbsPath)
}

type ReadOptions struct {
	// Strict rejects unknown fields
	Strict bool
}

func Read(filePath string, opts ReadOptions) (*Manifest, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	m, err := ReadFromContents(bytes, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	if m.AbsPath, err = filepath.Abs(filePath); err != nil {
		return nil, err
	}
	return m, nil
}

func ReadFromContents(contents []byte, opts ReadOptions) (*Manifest, error) {
	expanded, err := expandEnv(contents)
	if err != nil {
		return nil, errors.Join(ErrInvalidManifest, err)
	}

	var yamlOpts []yaml.DecodeOption
	if opts.Strict {
		yamlOpts = append(yamlOpts, yaml.Strict())
	}

	var m Manifest
	if err := yaml.UnmarshalWithOptions(expanded, &m, yamlOpts...); err != nil {
		return nil, errors.Join(ErrInvalidManifest, err)
	}

	s := schema.ManifestMeta{
		APIVersion: APIVersion,
		Kind:       Kind,
	}
	if err := s.ValidateSchema(m.ManifestMeta); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidManifest, err.Error())
	}

	if m.Name == "" {
		return nil, fmt.Errorf("%w: 'name'", ErrMissingManifestField)
	}
	for i, d := range m.Dependencies {
		if d == nil {
			return nil, fmt.Errorf("%w: dependency #%d is empty", ErrInvalidManifest, i+1)
		}
	}

	return &m, nil
}

func expandEnv(contents []byte) ([]byte, error) {
	var undefinedVars, invalidVars []string

	out := os.Expand(string(contents), func(key string) string {
		if !utils.IsValidEnvVarIdentifier(key) {
			invalidVars = append(invalidVars, key)
			return ""
		}
		val, ok := os.LookupEnv(key)
		if !ok {
			undefinedVars = append(undefinedVars, key)
			return ""
		}
		return val
	})

	if len(invalidVars) > 0 {
		return []byte{}, fmt.Errorf("invalid environment variable names in %s: %q", FileName, invalidVars)
	}
	if len(undefinedVars) > 0 {
		return []byte{}, fmt.Errorf("environment variables used in %s are not set: %v", FileName, undefinedVars)
	}
	return []byte(out), nil
}
