package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isabella232/flocker/internal/config"
	"github.com/isabella232/flocker/internal/render"
	"github.com/isabella232/flocker/internal/tasks"
)

var (
	planDistribution string
	planOSVersion    string
	planBranch       string
	planBuildServer  string
	planConfigPath   string
	planFormat       string
	planPostInstall  []string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate an installation plan for a distribution",
	Long: `Generates the ordered effect plan that installs flocker on a node of
the given distribution, optionally followed by post-install tasks.
The plan is printed — never executed.

Either pass --distribution (with optional source flags) or --config
pointing at a provision.yaml plan request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := planRequest()
		if err != nil {
			return err
		}

		opts, err := postInstallOptions(req.PostInstall)
		if err != nil {
			return err
		}

		source := tasks.PackageSource{
			OSVersion:   req.PackageSource.OSVersion,
			Branch:      req.PackageSource.Branch,
			BuildServer: req.PackageSource.BuildServer,
		}

		seq, err := tasks.ProvisionNode(req.Distribution, source, opts)
		if err != nil {
			return err
		}

		detail("plan for %s: %d effects", req.Distribution, len(seq))

		switch planFormat {
		case "script":
			fmt.Print(render.Script(seq))
		case "yaml":
			out, err := render.YAML(seq)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		default:
			return fmt.Errorf("unknown format '%s' — must be one of: script, yaml", planFormat)
		}
		return nil
	},
}

// planRequest builds the effective plan request from --config or flags.
// Flags override fields of a loaded config file.
func planRequest() (*config.Request, error) {
	req := &config.Request{}
	if planConfigPath != "" {
		loaded, err := config.Load(planConfigPath)
		if err != nil {
			return nil, err
		}
		req = loaded
	}

	if planDistribution != "" {
		req.Distribution = planDistribution
	}
	if planOSVersion != "" {
		req.PackageSource.OSVersion = planOSVersion
	}
	if planBranch != "" {
		req.PackageSource.Branch = planBranch
	}
	if planBuildServer != "" {
		req.PackageSource.BuildServer = planBuildServer
	}
	if len(planPostInstall) > 0 {
		req.PostInstall = planPostInstall
	}

	if errs := config.Validate(req); len(errs) > 0 {
		return nil, &config.ValidationError{Errors: errs}
	}
	return req, nil
}

func postInstallOptions(names []string) (tasks.ProvisionOptions, error) {
	var opts tasks.ProvisionOptions
	for _, name := range names {
		switch name {
		case "enable-docker":
			opts.EnableDocker = true
		case "disable-firewall":
			opts.DisableFirewall = true
		case "create-pool":
			opts.CreatePoolFile = true
		default:
			return opts, fmt.Errorf("unknown post-install task '%s'", name)
		}
	}
	return opts, nil
}

func init() {
	planCmd.Flags().StringVar(&planDistribution, "distribution", "", "target distribution identifier (e.g. centos-7)")
	planCmd.Flags().StringVar(&planOSVersion, "os-version", "", "pin an explicit package version")
	planCmd.Flags().StringVar(&planBranch, "branch", "", "install the latest build of a development branch")
	planCmd.Flags().StringVar(&planBuildServer, "build-server", "", "base URL of the branch build server")
	planCmd.Flags().StringVar(&planConfigPath, "config", "", "path to a provision.yaml plan request")
	planCmd.Flags().StringVar(&planFormat, "format", "script", "output format: script or yaml")
	planCmd.Flags().StringSliceVar(&planPostInstall, "post-install", nil, "post-install tasks: enable-docker, disable-firewall, create-pool")
	rootCmd.AddCommand(planCmd)
}
