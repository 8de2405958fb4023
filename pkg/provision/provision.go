// Package provision provides the public Go library API for
// flocker-provision.
//
// flocker-provision generates declarative, host-independent installation
// plans: ordered sequences of effects (run a command, write a file) that
// install flocker on a node of a given distribution. Plan generation is
// pure — no network, no host access — so plans can be compared as data
// and applied later over any transport.
//
// # Basic Usage
//
//	plan, err := provision.InstallFlocker("centos-7", provision.PackageSource{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply against any Target implementation.
//	rec := &provision.Recorder{}
//	_ = provision.Apply(ctx, rec, plan)
package provision

import (
	"context"

	"github.com/isabella232/flocker/internal/effect"
	"github.com/isabella232/flocker/internal/executor"
	"github.com/isabella232/flocker/internal/repository"
	"github.com/isabella232/flocker/internal/tasks"
)

// NewSequence builds a Sequence from effects and/or nested sequences,
// flattened in argument order.
func NewSequence(effects ...Effect) Sequence {
	return effect.NewSequence(effects...)
}

// InstallFlocker returns the plan that installs flocker on a node of
// the given distribution.
func InstallFlocker(distribution string, source PackageSource) (Sequence, error) {
	return tasks.InstallFlocker(distribution, source)
}

// ProvisionNode returns the install plan followed by the selected
// post-install tasks.
func ProvisionNode(distribution string, source PackageSource, opts ProvisionOptions) (Sequence, error) {
	return tasks.ProvisionNode(distribution, source, opts)
}

// RepositoryURL resolves the package repository URL for a distribution
// and flocker version. Placeholders in the URL are left for host-side
// expansion.
func RepositoryURL(distribution, version string) (string, error) {
	return repository.URL(distribution, version)
}

// FamilyOf returns the packaging family of a distribution identifier.
func FamilyOf(distribution string) Family {
	return repository.FamilyOf(distribution)
}

// Supported returns the supported stable distribution identifiers.
func Supported() []string {
	return repository.Supported()
}

// Apply applies a plan to a target in order, stopping at the first
// error.
func Apply(ctx context.Context, target Target, seq Sequence) error {
	return executor.Apply(ctx, target, seq)
}
