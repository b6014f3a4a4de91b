// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package chainkitconfig

const envVarPrefix = "CHAINKIT_"

const (
	// ManifestDirEnvVar
	// CHAINKIT_MANIFEST is a path to the directory holding chainkit.yaml.
	// This allows running a command against a project without changing directory
	ManifestDirEnvVar = envVarPrefix + "MANIFEST"

	// LogLevelEnvVar
	// CHAINKIT_LOG_LEVEL sets the log level.
	// 	Default: info
	//  Possible values: debug info warn error
	LogLevelEnvVar = envVarPrefix + "LOG_LEVEL"

	// MnemonicEnvVar
	// CHAINKIT_MNEMONIC replaces the test mnemonic of the manifest, e.g. with a CI secret
	MnemonicEnvVar = envVarPrefix + "MNEMONIC"

	// StrictEnvVar
	// CHAINKIT_STRICT rejects unknown fields in chainkit.yaml.
	// 	Default: false
	StrictEnvVar = envVarPrefix + "STRICT"
)

var EnvVars = []string{ManifestDirEnvVar, LogLevelEnvVar, MnemonicEnvVar, StrictEnvVar}
