package tasks

import (
	"github.com/isabella232/flocker/internal/effect"
	"github.com/isabella232/flocker/internal/repository"
)

// EnableDocker returns the plan that enables and starts the docker
// service on a node.
func EnableDocker() effect.Sequence {
	return effect.NewSequence(
		effect.Run{Command: "systemctl enable docker.service"},
		effect.Run{Command: "systemctl start docker.service"},
	)
}

// DisableFirewall returns the plan that disables firewalld so that
// cluster agents can reach each other.
func DisableFirewall() effect.Sequence {
	return effect.NewSequence(
		effect.Run{Command: "systemctl disable firewalld"},
		effect.Run{Command: "systemctl stop firewalld"},
	)
}

// CreateFlockerPoolFile returns the plan that backs the flocker ZFS pool
// with a 10G sparse file. Suitable for test and demo nodes without a
// spare block device.
func CreateFlockerPoolFile() effect.Sequence {
	return effect.NewSequence(
		effect.Run{Command: "mkdir -p /var/opt/flocker"},
		effect.Run{Command: "truncate --size 10G /var/opt/flocker/pool-vdev"},
		effect.Run{Command: "zpool create flocker /var/opt/flocker/pool-vdev"},
	)
}

// UpgradeKernel returns the plan that upgrades the node kernel and
// reboots into it. Only RPM-family distributions are supported.
func UpgradeKernel(distribution string) (effect.Sequence, error) {
	if repository.FamilyOf(distribution) != repository.FamilyRPM {
		return nil, &repository.UnsupportedDistributionError{Distribution: distribution}
	}
	return effect.NewSequence(
		effect.Run{Command: "yum upgrade -y kernel"},
	), nil
}

// ProvisionOptions selects the post-install tasks ProvisionNode appends
// after the flocker install.
type ProvisionOptions struct {
	EnableDocker    bool
	DisableFirewall bool
	CreatePoolFile  bool
}

// ProvisionNode composes the full node-provisioning plan: the flocker
// install followed by the selected post-install tasks, flattened into a
// single sequence.
func ProvisionNode(distribution string, source PackageSource, opts ProvisionOptions) (effect.Sequence, error) {
	install, err := InstallFlocker(distribution, source)
	if err != nil {
		return nil, err
	}

	parts := []effect.Effect{install}
	if opts.EnableDocker {
		parts = append(parts, EnableDocker())
	}
	if opts.DisableFirewall {
		parts = append(parts, DisableFirewall())
	}
	if opts.CreatePoolFile {
		parts = append(parts, CreateFlockerPoolFile())
	}
	return effect.NewSequence(parts...), nil
}
