package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a plan request file.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan request %s: %w", path, err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing plan request %s: %w", path, err)
	}

	if errs := Validate(&req); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &req, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("plan request validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Request for semantic correctness. Returns a list of
// validation error messages (empty if valid).
func Validate(req *Request) []string {
	var errs []string

	if req.Distribution == "" {
		errs = append(errs, "'distribution' is required")
	}

	for _, name := range req.PostInstall {
		if !knownPostInstall(name) {
			errs = append(errs, fmt.Sprintf("unknown post_install task '%s' — must be one of: %s",
				name, strings.Join(PostInstallTasks, ", ")))
		}
	}

	return errs
}

func knownPostInstall(name string) bool {
	for _, known := range PostInstallTasks {
		if name == known {
			return true
		}
	}
	return false
}
