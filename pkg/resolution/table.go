// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolution

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
)

// DependencyTable renders each dependency's locator, pin and effective compiler settings.
// Floating pins (branches and version ranges) are highlighted.
func (r *Resolution) DependencyTable() string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers("NAME", "SOURCE", "PIN", "COMPILER", "REMAPPINGS").
		Rows(lo.Map(r.Dependencies(), func(s Scope, _ int) []string {
			pin := s.Pin.String()
			if s.Pin.IsFloating() {
				pin = lipgloss.NewStyle().
					Foreground(lipgloss.Color("3")).
					Render(pin)
			}

			return []string{
				lipgloss.NewStyle().Bold(true).Render(s.Name),
				s.Source,
				pin,
				s.Compiler.Version.String() + "/" + s.Compiler.EVMVersion.String(),
				strings.Join(s.Compiler.Remappings.Aliases(), ", "),
			}
		})...).
		String()
}
