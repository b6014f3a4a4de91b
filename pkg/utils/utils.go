// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// BoolEnvVar reads key as a bool. ok is false when key is unset; an empty value counts as unset.
func BoolEnvVar(key string) (val bool, ok bool, err error) {
	raw, set := os.LookupEnv(key)
	if !set || raw == "" {
		return false, false, nil
	}
	val, err = strconv.ParseBool(raw)
	if err != nil {
		return false, true, fmt.Errorf("invalid value %q for '%s' env var. Must be one of ('true', 'false')", raw, key)
	}
	return val, true, nil
}

var envVarIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidEnvVarIdentifier reports whether key can be referenced as ${key} in chainkit.yaml
func IsValidEnvVarIdentifier(key string) bool {
	return envVarIdentifier.MatchString(key)
}
