package provision

import (
	"context"
	"testing"
)

func TestInstallPlanRoundTrip(t *testing.T) {
	plan, err := InstallFlocker("centos-7", PackageSource{})
	if err != nil {
		t.Fatalf("InstallFlocker: %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("plan length = %d, want 2", len(plan))
	}

	rec := &Recorder{}
	if err := Apply(context.Background(), rec, plan); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !rec.Applied.Equal(plan) {
		t.Errorf("applied = %#v, want %#v", rec.Applied, plan)
	}
}

func TestRepositoryURL(t *testing.T) {
	url, err := RepositoryURL("ubuntu-14.04", "0.3.0")
	if err != nil {
		t.Fatalf("RepositoryURL: %v", err)
	}
	want := "https://clusterhq-archive.s3.amazonaws.com/ubuntu/14.04/$(ARCH)"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}

func TestSupportedAndFamilies(t *testing.T) {
	for _, name := range Supported() {
		if FamilyOf(name) == FamilyUnknown {
			t.Errorf("FamilyOf(%q) is unknown", name)
		}
	}
}
