// Package repository resolves package repository URLs for supported
// Linux distributions.
package repository

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Family is the packaging ecosystem of a distribution. It determines the
// package-manager command syntax and the shape of repository URLs.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyRPM
	FamilyDebian
)

func (f Family) String() string {
	switch f {
	case FamilyRPM:
		return "rpm"
	case FamilyDebian:
		return "debian"
	default:
		return "unknown"
	}
}

// repoURLs maps a distribution identifier (optionally with a "-testing"
// suffix for pre-release channels) to its package repository URL.
//
// RPM entries point at a release package and keep the $(rpm -E %dist)
// placeholder literal — the target host's shell expands it at install
// time. Debian entries are repository base URLs with a literal $(ARCH)
// placeholder, likewise expanded host-side.
var repoURLs = map[string]string{
	"fedora-20":            "https://clusterhq-archive.s3.amazonaws.com/fedora/clusterhq-release$(rpm -E %dist).noarch.rpm",
	"fedora-20-testing":    "https://clusterhq-archive.s3.amazonaws.com/fedora-testing/clusterhq-release$(rpm -E %dist).noarch.rpm",
	"centos-7":             "https://clusterhq-archive.s3.amazonaws.com/centos/clusterhq-release$(rpm -E %dist).noarch.rpm",
	"centos-7-testing":     "https://clusterhq-archive.s3.amazonaws.com/centos-testing/clusterhq-release$(rpm -E %dist).noarch.rpm",
	"ubuntu-14.04":         "https://clusterhq-archive.s3.amazonaws.com/ubuntu/14.04/$(ARCH)",
	"ubuntu-14.04-testing": "https://clusterhq-archive.s3.amazonaws.com/ubuntu-testing/14.04/$(ARCH)",
}

// UnsupportedDistributionError indicates a distribution identifier with
// no repository table entry.
type UnsupportedDistributionError struct {
	Distribution string
}

func (e *UnsupportedDistributionError) Error() string {
	return fmt.Sprintf("unsupported distribution '%s'", e.Distribution)
}

// releaseVersion matches a clean X.Y.Z release string. Anything else —
// a dev or pre-release suffix — selects the testing channel.
var releaseVersion = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)

// FamilyOf returns the packaging family for a distribution identifier,
// derived from the prefix before the first '-'. FamilyUnknown means the
// prefix is not a recognized family; it does not imply the identifier
// has a repository entry.
func FamilyOf(distribution string) Family {
	prefix, _, _ := strings.Cut(distribution, "-")
	switch prefix {
	case "fedora", "centos":
		return FamilyRPM
	case "ubuntu":
		return FamilyDebian
	default:
		return FamilyUnknown
	}
}

// URL returns the package repository URL for a distribution. An empty
// version, or a clean X.Y.Z release, resolves the stable channel; any
// other version string resolves the testing channel. Placeholders in the
// returned URL are left intact for host-side expansion.
func URL(distribution, version string) (string, error) {
	key := distribution
	if version != "" && !releaseVersion.MatchString(version) {
		key += "-testing"
	}
	url, ok := repoURLs[key]
	if !ok {
		return "", &UnsupportedDistributionError{Distribution: distribution}
	}
	return url, nil
}

// Supported returns the stable distribution identifiers in the table,
// sorted for stable output.
func Supported() []string {
	names := make([]string, 0, len(repoURLs))
	for key := range repoURLs {
		if strings.HasSuffix(key, "-testing") {
			continue
		}
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}
