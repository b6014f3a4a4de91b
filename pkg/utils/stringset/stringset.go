// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package stringset

type StringSet map[string]struct{}

func New(items ...string) StringSet {
	ss := make(StringSet, len(items))
	for _, s := range items {
		ss.Add(s)
	}
	return ss
}

func (ss StringSet) Add(s string) StringSet {
	ss[s] = struct{}{}
	return ss
}

func (ss StringSet) Contains(s string) bool {
	_, ok := ss[s]
	return ok
}

// AddIfAbsent adds s and reports whether it wasn't there yet
func (ss StringSet) AddIfAbsent(s string) bool {
	if ss.Contains(s) {
		return false
	}
	ss.Add(s)
	return true
}
