// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testenv

import (
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/tyler-smith/go-bip39"
)

type Account struct {
	Index      int
	Path       accounts.DerivationPath
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}

func (a Account) PrivateKeyHex() string {
	return hexutil.Encode(crypto.FromECDSA(a.PrivateKey))
}

type Accounts []Account

// DeriveAccounts validates cfg and derives cfg.Accounts keys from its mnemonic.
// The same config always yields the same accounts in the same order.
func DeriveAccounts(cfg Config) (Accounts, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := cfg.basePath()
	if err != nil {
		return nil, err
	}

	seed := bip39.NewSeed(cfg.normalizedMnemonic(), cfg.Passphrase)
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, err
	}
	parent, err := derive(master, base[:len(base)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to derive %s: %w", base, err)
	}

	next := accounts.DefaultIterator(base)
	out := make(Accounts, 0, cfg.Accounts)
	for i := range cfg.Accounts {
		// the iterator reuses its slice
		path := append(accounts.DerivationPath{}, next()...)

		node, err := parent.Derive(path[len(path)-1])
		if err != nil {
			return nil, fmt.Errorf("failed to derive account %s: %w", path, err)
		}
		key, err := privateKey(node)
		if err != nil {
			return nil, fmt.Errorf("failed to derive account %s: %w", path, err)
		}
		out = append(out, Account{
			Index:      i,
			Path:       path,
			Address:    crypto.PubkeyToAddress(key.PublicKey),
			PrivateKey: key,
		})
	}

	slog.Debug("derived test accounts", "count", len(out), "base-path", base.String())
	return out, nil
}

func derive(key *hdkeychain.ExtendedKey, path accounts.DerivationPath) (*hdkeychain.ExtendedKey, error) {
	for _, index := range path {
		child, err := key.Derive(index)
		if err != nil {
			return nil, err
		}
		key = child
	}
	return key, nil
}

func privateKey(key *hdkeychain.ExtendedKey) (*ecdsa.PrivateKey, error) {
	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, err
	}
	return crypto.ToECDSA(priv.Serialize())
}

func (a Accounts) Addresses() []common.Address {
	return lo.Map(a, func(acc Account, _ int) common.Address { return acc.Address })
}

// AccountView is the serializable form of an Account
type AccountView struct {
	Index      int    `json:"index" yaml:"index"`
	Path       string `json:"path" yaml:"path"`
	Address    string `json:"address" yaml:"address"`
	PrivateKey string `json:"private-key,omitempty" yaml:"private-key,omitempty"`
}

func (a Accounts) Views(showKeys bool) []AccountView {
	return lo.Map(a, func(acc Account, _ int) AccountView {
		v := AccountView{
			Index:   acc.Index,
			Path:    acc.Path.String(),
			Address: acc.Address.Hex(),
		}
		if showKeys {
			v.PrivateKey = acc.PrivateKeyHex()
		}
		return v
	})
}

func (a Accounts) Table(showKeys bool) string {
	headers := []string{"#", "ADDRESS", "PATH"}
	if showKeys {
		headers = append(headers, "PRIVATE KEY")
	}

	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers(headers...).
		Rows(lo.Map(a.Views(showKeys), func(v AccountView, _ int) []string {
			row := []string{
				strconv.Itoa(v.Index),
				lipgloss.NewStyle().Bold(true).Render(v.Address),
				lipgloss.NewStyle().Faint(true).Render(v.Path),
			}
			if showKeys {
				row = append(row, v.PrivateKey)
			}
			return row
		})...).
		String()
}
