// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testenv

import (
	"fmt"
	"maps"
	"slices"
)

// reservedChains are production networks whose chain ids must never be used for tests.
// A transaction signed for one of these is replayable on the live chain.
var reservedChains = map[uint64]string{
	1:      "Ethereum",
	10:     "Optimism",
	56:     "BNB Smart Chain",
	100:    "Gnosis",
	137:    "Polygon",
	250:    "Fantom",
	324:    "zkSync Era",
	8453:   "Base",
	42161:  "Arbitrum One",
	43114:  "Avalanche C-Chain",
	59144:  "Linea",
	534352: "Scroll",
}

var testChains = map[uint64]string{
	1337:     "Ganache",
	17000:    "Holesky",
	31337:    "Anvil",
	80002:    "Amoy",
	11155111: "Sepolia",
}

// IsReserved reports whether id belongs to a production network, and which one
func IsReserved(id uint64) (string, bool) {
	name, ok := reservedChains[id]
	return name, ok
}

func ReservedChainIDs() []uint64 {
	return slices.Sorted(maps.Keys(reservedChains))
}

// ChainName gives a display name for id
func ChainName(id uint64) string {
	if name, ok := reservedChains[id]; ok {
		return name
	}
	if name, ok := testChains[id]; ok {
		return name
	}
	return fmt.Sprintf("chain %d", id)
}
