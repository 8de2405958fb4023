package provision

import (
	"github.com/isabella232/flocker/internal/effect"
	"github.com/isabella232/flocker/internal/executor"
	"github.com/isabella232/flocker/internal/repository"
	"github.com/isabella232/flocker/internal/tasks"
)

// Type aliases re-export the internal plan types as the public API.
// Users import "github.com/isabella232/flocker/pkg/provision" and use
// provision.Sequence, provision.PackageSource, etc.

type Effect = effect.Effect
type Run = effect.Run
type Put = effect.Put
type Sequence = effect.Sequence

type PackageSource = tasks.PackageSource
type ProvisionOptions = tasks.ProvisionOptions

type Family = repository.Family
type UnsupportedDistributionError = repository.UnsupportedDistributionError

const (
	FamilyUnknown = repository.FamilyUnknown
	FamilyRPM     = repository.FamilyRPM
	FamilyDebian  = repository.FamilyDebian
)

type Target = executor.Target
type Recorder = executor.Recorder
