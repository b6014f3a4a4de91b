// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolutionerrors

import "errors"

const (
	DuplicateDependency   = "DUPLICATE_DEPENDENCY"
	AmbiguousRevision     = "AMBIGUOUS_REVISION"
	InvalidRevision       = "INVALID_REVISION"
	InvalidSource         = "INVALID_SOURCE"
	RemappingConflict     = "REMAPPING_CONFLICT"
	ConflictingAlias      = "CONFLICTING_ALIAS"
	UnresolvedAlias       = "UNRESOLVED_ALIAS"
	InvalidCompilerConfig = "INVALID_COMPILER_CONFIG"
	UnsafeChainId         = "UNSAFE_CHAIN_ID"
	InvalidAccountCount   = "INVALID_ACCOUNT_COUNT"
	InvalidMnemonic       = "INVALID_MNEMONIC"
	MalformedManifest     = "MALFORMED_MANIFEST"
	ManifestNotFound      = "MANIFEST_NOT_FOUND"
	UnknownError          = "UNKNOWN_ERROR"
)

// Coded is implemented by every error of the resolution taxonomy.
// Subject is the offending identifier: a dependency name, an alias, or a field.
type Coded interface {
	error
	Code() string
	Subject() string
}

// ResolutionError is the serializable form of any error raised while resolving a manifest
type ResolutionError struct {
	Code    string
	Subject string
	Cause   error
}

func (r *ResolutionError) Error() string {
	if r.Cause != nil {
		return r.Code + ": " + r.Cause.Error()
	}
	return r.Code
}

func (r *ResolutionError) MarshalYAML() (interface{}, error) {
	var causeStr string
	if r.Cause != nil {
		causeStr = r.Cause.Error()
	}
	out := map[string]interface{}{
		"code":  r.Code,
		"cause": causeStr,
	}
	if r.Subject != "" {
		out["subject"] = r.Subject
	}
	return out, nil
}

func (r *ResolutionError) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var aux struct {
		Code    string `yaml:"code"`
		Subject string `yaml:"subject"`
		Cause   string `yaml:"cause"`
	}
	if err := unmarshal(&aux); err != nil {
		return err
	}
	r.Code = aux.Code
	r.Subject = aux.Subject
	if aux.Cause != "" {
		r.Cause = errors.New(aux.Cause)
	}
	return nil
}

func (r *ResolutionError) Unwrap() error {
	return r.Cause
}

var _ error = (*ResolutionError)(nil)

func NewMalformedManifestError(cause error) *ResolutionError {
	return &ResolutionError{
		Code:  MalformedManifest,
		Cause: cause,
	}
}

func NewManifestNotFoundError(cause error) *ResolutionError {
	return &ResolutionError{
		Code:  ManifestNotFound,
		Cause: cause,
	}
}

func NewUnknownError(cause error) *ResolutionError {
	return &ResolutionError{
		Code:  UnknownError,
		Cause: cause,
	}
}

func Standardize(err error) *ResolutionError {
	if err == nil {
		return nil
	}

	var resErr *ResolutionError
	if errors.As(err, &resErr) {
		return resErr
	}

	var coded Coded
	if errors.As(err, &coded) {
		return &ResolutionError{
			Code:    coded.Code(),
			Subject: coded.Subject(),
			Cause:   err,
		}
	}

	return NewUnknownError(err)
}

// StandardizeAll flattens errors produced by errors.Join and standardizes each of them
func StandardizeAll(err error) []*ResolutionError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*ResolutionError
		for _, e := range joined.Unwrap() {
			out = append(out, StandardizeAll(e)...)
		}
		return out
	}
	return []*ResolutionError{Standardize(err)}
}
