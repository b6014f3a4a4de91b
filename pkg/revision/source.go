// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package revision

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"chainkit.dev/x/chainkit/pkg/resolutionerrors"
	"github.com/samber/lo"
	"oras.land/oras-go/v2/registry"
)

type SourceKind string

const (
	GitHubSource SourceKind = "github"
	NpmSource    SourceKind = "npm"
	OciSource    SourceKind = "oci"
	LocalSource  SourceKind = "local"
	URLSource    SourceKind = "url"
)

const ociPrefix = "oci://"

var ErrInvalidSource = errors.New("invalid source locator")

var (
	githubRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
	npmRegex    = regexp.MustCompile(`^(@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)

	urlSchemes = []string{"http", "https", "git", "ssh"}
)

// Source is where a dependency's source tree comes from.
// Exactly one field must be set.
type Source struct {
	GitHub string
	Npm    string
	Oci    string
	Local  string
	URL    string
}

func (s Source) set() map[SourceKind]string {
	all := map[SourceKind]string{
		GitHubSource: s.GitHub,
		NpmSource:    s.Npm,
		OciSource:    s.Oci,
		LocalSource:  s.Local,
		URLSource:    s.URL,
	}
	return lo.PickBy(all, func(_ SourceKind, v string) bool {
		return v != ""
	})
}

// Kind returns the kind of this source, or false if zero or several locators are set
func (s Source) Kind() (SourceKind, bool) {
	set := s.set()
	if len(set) != 1 {
		return "", false
	}
	return lo.Keys(set)[0], true
}

// Locator renders the source in canonical form, e.g. 'github:OpenZeppelin/openzeppelin-contracts'
func (s Source) Locator() string {
	k, ok := s.Kind()
	if !ok {
		return ""
	}
	switch k {
	case OciSource:
		return ociPrefix + strings.TrimPrefix(s.Oci, ociPrefix)
	case URLSource:
		return s.URL
	default:
		return fmt.Sprintf("%s:%s", k, s.set()[k])
	}
}

func (s Source) Validate(dependency string) error {
	set := s.set()
	if len(set) != 1 {
		kinds := lo.Map(lo.Keys(set), func(k SourceKind, _ int) string { return string(k) })
		if len(kinds) == 0 {
			return &resolutionerrors.InvalidSourceError{Dependency: dependency,
				Cause: fmt.Errorf("%w: one of %q must be set", ErrInvalidSource, allKinds())}
		}
		return &resolutionerrors.InvalidSourceError{Dependency: dependency,
			Cause: fmt.Errorf("%w: only one of %q can be set", ErrInvalidSource, sortedStrings(kinds))}
	}

	if err := s.validateLocator(); err != nil {
		return &resolutionerrors.InvalidSourceError{Dependency: dependency, Cause: err}
	}
	return nil
}

func (s Source) validateLocator() error {
	k, _ := s.Kind()
	switch k {
	case GitHubSource:
		if !githubRegex.MatchString(s.GitHub) {
			return fmt.Errorf("%w: github source %q must be of the form '<owner>/<repo>'", ErrInvalidSource, s.GitHub)
		}
	case NpmSource:
		if !npmRegex.MatchString(s.Npm) {
			return fmt.Errorf("%w: %q isn't a valid npm package name", ErrInvalidSource, s.Npm)
		}
	case OciSource:
		if _, err := registry.ParseReference(strings.TrimPrefix(s.Oci, ociPrefix)); err != nil {
			return fmt.Errorf("%w: couldn't parse oci reference %q: %w", ErrInvalidSource, s.Oci, err)
		}
	case LocalSource:
		if strings.TrimSpace(s.Local) == "" {
			return fmt.Errorf("%w: local source must be a non-empty path", ErrInvalidSource)
		}
	case URLSource:
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("%w: couldn't parse url %q: %w", ErrInvalidSource, s.URL, err)
		}
		if !lo.Contains(urlSchemes, u.Scheme) || u.Host == "" {
			return fmt.Errorf("%w: url %q must be absolute with one of the schemes %q", ErrInvalidSource, s.URL, urlSchemes)
		}
	}
	return nil
}

func allKinds() []string {
	return []string{string(GitHubSource), string(NpmSource), string(OciSource), string(LocalSource), string(URLSource)}
}

func sortedStrings(xs []string) []string {
	order := allKinds()
	return lo.Filter(order, func(k string, _ int) bool {
		return lo.Contains(xs, k)
	})
}
