// Package tasks builds installation plans for flocker nodes.
//
// A task is a pure function from a distribution identifier (and,
// optionally, a PackageSource) to an effect.Sequence. Nothing here
// executes; the produced plan is handed to an executor.Target
// downstream.
package tasks

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/isabella232/flocker/internal/effect"
	"github.com/isabella232/flocker/internal/repository"
)

// DefaultBuildServer hosts branch builds when a PackageSource names a
// branch without naming a server.
const DefaultBuildServer = "http://build.clusterhq.com"

// nodePackage is the package installed on every node.
const nodePackage = "clusterhq-flocker-node"

const buildRepoPath = "/etc/yum.repos.d/clusterhq-build.repo"

const aptPinPath = "/etc/apt/preferences.d/buildbot-900"

// PackageSource describes where to get the flocker package from.
//
// The zero value means "latest stable release from the distribution's
// standard repository". Branch selects the build-server install path;
// BuildServer without Branch has no effect.
type PackageSource struct {
	// OSVersion pins an explicit package version, in the packaging
	// system's native syntax (e.g. "1.2.3-1").
	OSVersion string

	// Branch names a development branch whose latest build should be
	// installed instead of a released version.
	Branch string

	// BuildServer overrides DefaultBuildServer as the base URL for
	// branch builds.
	BuildServer string
}

func (s PackageSource) buildServer() string {
	if s.BuildServer != "" {
		return s.BuildServer
	}
	return DefaultBuildServer
}

// buildBranchURL joins the build server base URL with the results path
// for a branch build of the given distribution.
func buildBranchURL(server, branch, distribution string) string {
	return fmt.Sprintf("%s/results/omnibus/%s/%s",
		strings.TrimRight(server, "/"), branch, distribution)
}

// buildServerHost extracts the host of a build server URL for use in an
// apt pin's origin line.
func buildServerHost(server string) string {
	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return strings.TrimRight(server, "/")
	}
	return u.Host
}

// yumBuildRepoConfig renders the repo definition enabling yum to pull
// branch builds from baseURL.
func yumBuildRepoConfig(baseURL string) string {
	return fmt.Sprintf(`[clusterhq-build]
name=clusterhq-build
baseurl=%s
gpgcheck=0
enabled=0
`, baseURL)
}

// aptPinConfig renders the preferences entry raising packages from the
// build host above the stable repository.
func aptPinConfig(host string) string {
	return fmt.Sprintf("Package:  *\nPin: origin %s\nPin-Priority: 900\n", host)
}

// InstallFlocker returns the plan that installs flocker on a node of the
// given distribution. It either returns a complete plan or an error —
// never a truncated one. An unrecognized distribution yields
// *repository.UnsupportedDistributionError.
func InstallFlocker(distribution string, source PackageSource) (effect.Sequence, error) {
	repoURL, err := repository.URL(distribution, "")
	if err != nil {
		return nil, err
	}

	switch repository.FamilyOf(distribution) {
	case repository.FamilyRPM:
		return installRPM(distribution, source, repoURL), nil
	case repository.FamilyDebian:
		return installDebian(distribution, source, repoURL), nil
	default:
		return nil, &repository.UnsupportedDistributionError{Distribution: distribution}
	}
}

// installRPM builds the yum-based plan. The release repository is always
// installed first; a branch adds a build-server repo definition and
// enables it for the final install.
func installRPM(distribution string, source PackageSource, repoURL string) effect.Sequence {
	commands := effect.NewSequence(
		effect.Run{Command: "yum install -y " + repoURL},
	)

	pkg := nodePackage
	if source.OSVersion != "" {
		pkg += "-" + source.OSVersion
	}

	if source.Branch != "" {
		baseURL := buildBranchURL(source.buildServer(), source.Branch, distribution)
		return effect.NewSequence(
			commands,
			effect.Put{Content: yumBuildRepoConfig(baseURL), Path: buildRepoPath},
			effect.Run{Command: "yum install --enablerepo=clusterhq-build -y " + pkg},
		)
	}

	return effect.NewSequence(
		commands,
		effect.Run{Command: "yum install -y " + pkg},
	)
}

// installDebian builds the apt-based plan. Prerequisites and the stable
// repository are always added; a branch adds the build-server repository
// plus a pin file raising its priority above the stable repository, in
// which case the final install carries no version pin.
func installDebian(distribution string, source PackageSource, repoURL string) effect.Sequence {
	commands := effect.NewSequence(
		effect.Run{Command: "apt-get -y install apt-transport-https software-properties-common"},
		effect.Run{Command: "add-apt-repository -y ppa:james-page/docker"},
		effect.Run{Command: fmt.Sprintf("add-apt-repository -y 'deb %s /'", repoURL)},
	)

	pkg := nodePackage
	if source.Branch != "" {
		baseURL := buildBranchURL(source.buildServer(), source.Branch, distribution)
		commands = effect.NewSequence(
			commands,
			effect.Run{Command: fmt.Sprintf("add-apt-repository -y 'deb %s /'", baseURL)},
			effect.Put{
				Content: aptPinConfig(buildServerHost(source.buildServer())),
				Path:    aptPinPath,
			},
		)
	} else if source.OSVersion != "" {
		pkg += "=" + source.OSVersion
	}

	return effect.NewSequence(
		commands,
		effect.Run{Command: "apt-get update"},
		effect.Run{Command: "apt-get -y --force-yes install " + pkg},
	)
}
