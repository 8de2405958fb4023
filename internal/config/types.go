package config

// Request represents a provision.yaml plan request file.
type Request struct {
	Distribution  string        `yaml:"distribution"`
	PackageSource PackageSource `yaml:"package_source,omitempty"`
	PostInstall   []string      `yaml:"post_install,omitempty"`
}

// PackageSource mirrors the builder's package source fields in yaml form.
type PackageSource struct {
	OSVersion   string `yaml:"os_version,omitempty"`
	Branch      string `yaml:"branch,omitempty"`
	BuildServer string `yaml:"build_server,omitempty"`
}

// PostInstallTasks are the task names accepted in post_install.
var PostInstallTasks = []string{"create-pool", "disable-firewall", "enable-docker"}
