// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// EVMVersion is the target execution environment a scope is compiled for.
// The zero value means "not set" and is only valid in overrides.
type EVMVersion int

const (
	Unset EVMVersion = iota
	Homestead
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	Berlin
	London
	Paris
	Shanghai
	Cancun
	Prague
)

var evmVersionNames = []string{
	Homestead:        "homestead",
	TangerineWhistle: "tangerineWhistle",
	SpuriousDragon:   "spuriousDragon",
	Byzantium:        "byzantium",
	Constantinople:   "constantinople",
	Petersburg:       "petersburg",
	Istanbul:         "istanbul",
	Berlin:           "berlin",
	London:           "london",
	Paris:            "paris",
	Shanghai:         "shanghai",
	Cancun:           "cancun",
	Prague:           "prague",
}

func KnownEVMVersions() []string {
	return evmVersionNames[Homestead:]
}

func ParseEVMVersion(s string) (EVMVersion, error) {
	i := lo.IndexOf(evmVersionNames, s)
	if i <= int(Unset) {
		return Unset, fmt.Errorf("unknown evm-version %q. Must be one of %q", s, KnownEVMVersions())
	}
	return EVMVersion(i), nil
}

func (e EVMVersion) IsSet() bool {
	return e > Unset && int(e) < len(evmVersionNames)
}

func (e EVMVersion) String() string {
	if !e.IsSet() {
		return "unset"
	}
	return evmVersionNames[e]
}

func (e *EVMVersion) UnmarshalYAML(data []byte) error {
	var unmarshalled string
	if err := yaml.Unmarshal(data, &unmarshalled); err != nil {
		return fmt.Errorf("failed to unmarshal evm-version: %w", err)
	}
	v, err := ParseEVMVersion(unmarshalled)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EVMVersion) MarshalYAML() (interface{}, error) {
	if !e.IsSet() {
		return nil, fmt.Errorf("invalid evm-version enum value %d", e)
	}
	return e.String(), nil
}

func (e EVMVersion) MarshalText() ([]byte, error) {
	if !e.IsSet() {
		return nil, fmt.Errorf("invalid evm-version enum value %d", e)
	}
	return []byte(e.String()), nil
}

func (e *EVMVersion) UnmarshalText(text []byte) error {
	v, err := ParseEVMVersion(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (EVMVersion) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		Enum: lo.Map(KnownEVMVersions(), func(s string, _ int) interface{} { return s }),
	}
}

var _ yaml.BytesUnmarshaler = (*EVMVersion)(nil)
var _ yaml.InterfaceMarshaler = EVMVersion(0)
