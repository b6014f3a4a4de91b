// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testenv

import (
	"errors"
	"fmt"
	"strings"

	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/tyler-smith/go-bip39"
)

const (
	MaxAccounts   = 1000
	DefaultHDPath = "m/44'/60'/0'/0/0"
)

var ErrMissingChainID = errors.New("'chain-id' must be set")

// Config describes the local chain tests run against and the accounts they sign with
type Config struct {
	ChainID  uint64 `yaml:"chain-id" json:"chain-id" jsonschema:"required,minimum=1"`
	Mnemonic string `yaml:"mnemonic" json:"mnemonic" jsonschema:"required"`
	Accounts int    `yaml:"accounts" json:"accounts" jsonschema:"required,minimum=1,maximum=1000"`
	// Passphrase is the optional BIP-39 passphrase ("25th word")
	Passphrase string `yaml:"passphrase,omitempty" json:"passphrase,omitempty"`
	// HDPath is the path of the first account. Later accounts increment its last component.
	HDPath string `yaml:"hd-path,omitempty" json:"hd-path,omitempty" jsonschema:"default=m/44'/60'/0'/0/0"`
}

// Validate checks the chain id, account count, mnemonic and derivation path, in that order,
// and returns every problem found.
func (c Config) Validate() error {
	var errs []error
	if err := ValidateChainID(c.ChainID); err != nil {
		errs = append(errs, err)
	}
	if c.Accounts < 1 || c.Accounts > MaxAccounts {
		errs = append(errs, &resolutionerrors.InvalidAccountCountError{Count: c.Accounts, Max: MaxAccounts})
	}
	if !bip39.IsMnemonicValid(c.normalizedMnemonic()) {
		errs = append(errs, &resolutionerrors.InvalidMnemonicError{Words: len(strings.Fields(c.Mnemonic))})
	}
	if _, err := c.basePath(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ValidateChainID rejects unset ids and ids of production networks
func ValidateChainID(id uint64) error {
	if id == 0 {
		return ErrMissingChainID
	}
	if network, ok := IsReserved(id); ok {
		return &resolutionerrors.UnsafeChainIdError{ChainID: id, Network: network}
	}
	return nil
}

func (c Config) Path() string {
	if c.HDPath == "" {
		return DefaultHDPath
	}
	return c.HDPath
}

func (c Config) basePath() (accounts.DerivationPath, error) {
	path, err := accounts.ParseDerivationPath(c.Path())
	if err != nil {
		return nil, fmt.Errorf("invalid 'hd-path' %q: %w", c.Path(), err)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("invalid 'hd-path' %q: empty path", c.Path())
	}
	last := uint64(path[len(path)-1])
	if c.Accounts > 0 && last+uint64(c.Accounts)-1 > uint64(^uint32(0)) {
		return nil, fmt.Errorf("invalid 'hd-path' %q: %d accounts overflow the last path component", c.Path(), c.Accounts)
	}
	return path, nil
}

// bip39 splits words on single spaces
func (c Config) normalizedMnemonic() string {
	return strings.Join(strings.Fields(c.Mnemonic), " ")
}
