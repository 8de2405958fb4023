package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func resetPlanFlags() {
	planDistribution = ""
	planOSVersion = ""
	planBranch = ""
	planBuildServer = ""
	planConfigPath = ""
	planFormat = "script"
	planPostInstall = nil
}

func TestPostInstallOptions(t *testing.T) {
	opts, err := postInstallOptions([]string{"enable-docker", "create-pool"})
	if err != nil {
		t.Fatalf("postInstallOptions: %v", err)
	}
	if !opts.EnableDocker || !opts.CreatePoolFile || opts.DisableFirewall {
		t.Errorf("opts = %+v", opts)
	}
}

func TestPostInstallOptionsUnknownTask(t *testing.T) {
	_, err := postInstallOptions([]string{"format-disk"})
	if err == nil {
		t.Fatal("expected error for unknown task")
	}
}

func TestPlanRequestFromFlags(t *testing.T) {
	resetPlanFlags()
	planDistribution = "centos-7"
	planBranch = "branch-1"
	defer resetPlanFlags()

	req, err := planRequest()
	if err != nil {
		t.Fatalf("planRequest: %v", err)
	}
	if req.Distribution != "centos-7" {
		t.Errorf("distribution = %q", req.Distribution)
	}
	if req.PackageSource.Branch != "branch-1" {
		t.Errorf("branch = %q", req.PackageSource.Branch)
	}
}

func TestPlanRequestFlagsOverrideConfig(t *testing.T) {
	resetPlanFlags()
	defer resetPlanFlags()

	dir := t.TempDir()
	path := filepath.Join(dir, "provision.yaml")
	content := "distribution: ubuntu-14.04\npackage_source:\n  os_version: \"1.0.0-1\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	planConfigPath = path
	planOSVersion = "2.0.0-1"

	req, err := planRequest()
	if err != nil {
		t.Fatalf("planRequest: %v", err)
	}
	if req.Distribution != "ubuntu-14.04" {
		t.Errorf("distribution = %q", req.Distribution)
	}
	if req.PackageSource.OSVersion != "2.0.0-1" {
		t.Errorf("os_version = %q, want flag override 2.0.0-1", req.PackageSource.OSVersion)
	}
}

func TestPlanRequestMissingDistribution(t *testing.T) {
	resetPlanFlags()
	defer resetPlanFlags()

	_, err := planRequest()
	if err == nil {
		t.Fatal("expected validation error without distribution")
	}
}
