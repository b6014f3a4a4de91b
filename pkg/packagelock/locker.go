// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package packagelock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"chainkit.dev/x/chainkit/pkg/resolution"
	"chainkit.dev/x/chainkit/pkg/utils"
	"github.com/goccy/go-yaml"
)

var ErrLockfileOutOfSync = errors.New(FileName + " needs to be updated; please run 'chainkit lock'")

type Locker struct {
	op Operation
}

type Operation int

const (
	CheckOnly Operation = iota
	Regular
)

func New(op Operation) *Locker {
	return &Locker{op: op}
}

// EnsureLockfile checks or (re)writes the lockfile in dir for the given resolution
func (l *Locker) EnsureLockfile(ctx context.Context, res *resolution.Resolution, dir string) (*PinLock, error) {
	expected := FromResolution(res)
	lockfilePath := filepath.Join(dir, FileName)

	if l.op == CheckOnly {
		return nil, l.checkLockfile(expected, lockfilePath)
	}

	var written *PinLock
	err := utils.WithFileLock(ctx, lockfilePath+".lk", func() error {
		var err error
		written, err = l.create(expected, lockfilePath)
		return err
	})
	return written, err
}

func (l *Locker) checkLockfile(expectedLockfile *PinLock, lockfilePath string) error {
	existingLockfile, err := Read(lockfilePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrLockfileOutOfSync, err)
	}
	if err != nil {
		return err
	}

	inSync, err := existingLockfile.isInSync(expectedLockfile)
	if err != nil {
		return err
	}

	if inSync {
		return nil
	}

	return ErrLockfileOutOfSync
}

func (l *Locker) create(expected *PinLock, lockfilePath string) (*PinLock, error) {
	previous, err := Read(lockfilePath)
	switch {
	case err == nil:
		expected.carryResolved(previous)
	case os.IsNotExist(err):
	default:
		slog.Warn("ignoring unreadable lockfile", "file", lockfilePath, "err", err.Error())
	}

	data, err := yaml.Marshal(expected)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(lockfilePath, data, 0644); err != nil {
		return nil, err
	}
	slog.Debug("wrote lockfile", "file", lockfilePath, "dependencies", len(expected.Dependencies))
	return expected, nil
}
