// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolution

import (
	"errors"
	"fmt"
	"sync"

	"chainkit.dev/x/chainkit/pkg/manifest"
	"chainkit.dev/x/chainkit/pkg/testenv"
)

var ErrNoTestEnvironment = errors.New("the manifest has no 'test' section")

// Resolver computes a manifest's resolution and test accounts once, on first use.
// It's safe for concurrent use. The manifest must not be modified once handed to a Resolver.
type Resolver struct {
	manifest   *manifest.Manifest
	resolution func() (*Resolution, error)
	accounts   func() (testenv.Accounts, error)
}

func NewResolver(m *manifest.Manifest) *Resolver {
	r := &Resolver{manifest: m}
	r.resolution = sync.OnceValues(func() (*Resolution, error) {
		return Build(m)
	})
	r.accounts = sync.OnceValues(func() (testenv.Accounts, error) {
		if m.Test == nil {
			return nil, ErrNoTestEnvironment
		}
		return testenv.DeriveAccounts(*m.Test)
	})
	return r
}

func (r *Resolver) Manifest() *manifest.Manifest {
	return r.manifest
}

func (r *Resolver) Resolution() (*Resolution, error) {
	return r.resolution()
}

func (r *Resolver) Scope(name string) (Scope, error) {
	res, err := r.resolution()
	if err != nil {
		return Scope{}, err
	}
	s, ok := res.Scope(name)
	if !ok {
		return Scope{}, fmt.Errorf("%w %q", ErrUnknownScope, name)
	}
	return s, nil
}

// Accounts derives the test accounts. The returned slice is a copy; the keys are shared and must not be modified.
func (r *Resolver) Accounts() (testenv.Accounts, error) {
	accs, err := r.accounts()
	if err != nil {
		return nil, err
	}
	return append(testenv.Accounts(nil), accs...), nil
}
