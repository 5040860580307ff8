package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"pom-version-checker/internal/types"
)

// mavenPreRelease matches a pre-release qualifier such as -RC1, .M2,
// -alpha-1 or -SNAPSHOT.
var mavenPreRelease = regexp.MustCompile(`(?i)[.-](alpha|beta|milestone|snapshot|rc|cr|a|b|m)(?:[.-]?(\d+))?\b`)

var preReleaseAliases = map[string]string{
	"a":         "alpha",
	"b":         "beta",
	"milestone": "m",
	"cr":        "rc",
}

// VersionComparator orders version strings under one scheme. Parsed
// versions are memoized for the lifetime of a run.
type VersionComparator struct {
	scheme types.VersionScheme
	deb    map[string]debversion.Version
	pep    map[string]pep440.Version
}

func NewVersionComparator(scheme string) (*VersionComparator, error) {
	normalized := types.VersionScheme(strings.ToLower(strings.TrimSpace(scheme)))
	switch normalized {
	case "":
		normalized = types.VersionSchemeDeb
	case types.VersionSchemeDeb, types.VersionSchemePEP440:
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported version scheme: %s", scheme))
	}
	return &VersionComparator{
		scheme: normalized,
		deb:    map[string]debversion.Version{},
		pep:    map[string]pep440.Version{},
	}, nil
}

func (c *VersionComparator) Scheme() types.VersionScheme {
	return c.scheme
}

// Compare returns -1, 0 or 1. Versions the scheme cannot parse are
// compared lexically.
func (c *VersionComparator) Compare(a string, b string) int {
	if a == b {
		return 0
	}
	switch c.scheme {
	case types.VersionSchemePEP440:
		v1, err1 := c.pepVersion(a)
		v2, err2 := c.pepVersion(b)
		if err1 == nil && err2 == nil {
			return sign(v1.Compare(v2))
		}
	default:
		v1, err1 := c.debVersion(a)
		v2, err2 := c.debVersion(b)
		if err1 == nil && err2 == nil {
			return sign(v1.Compare(v2))
		}
	}
	return strings.Compare(a, b)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// debianForm rewrites Maven pre-release qualifiers with Debian's tilde so
// they sort below the release: 2.0.0-RC1 becomes 2.0.0~rc1. Qualifiers
// are lowercased and aliased so alpha < beta < m < rc < snapshot.
func debianForm(value string) string {
	return mavenPreRelease.ReplaceAllStringFunc(value, func(match string) string {
		parts := mavenPreRelease.FindStringSubmatch(match)
		qualifier := strings.ToLower(parts[1])
		if alias, ok := preReleaseAliases[qualifier]; ok {
			qualifier = alias
		}
		return "~" + qualifier + parts[2]
	})
}

// UpToDate reports whether resolved needs no attention given latest. An
// empty latest means nothing is known; the unresolved sentinel is never
// current.
func (c *VersionComparator) UpToDate(resolved string, latest string) bool {
	if latest == "" {
		return true
	}
	if resolved == types.UnresolvedVersion || resolved == "" {
		return false
	}
	if resolved == latest {
		return true
	}
	return c.Compare(resolved, latest) >= 0
}

func (c *VersionComparator) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(debianForm(value))
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

func (c *VersionComparator) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}
