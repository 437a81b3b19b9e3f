// ABOUTME: Environment capture via the spack command-line tool
// ABOUTME: Per-operation timeouts; degrades to partial snapshots with warnings

package services

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// Capture timeouts. Listing installed packages dominates on large
// environments; the other operations read local configuration.
const (
	DefaultFindTimeout    = 120 * time.Second
	DefaultConfigTimeout  = 30 * time.Second
	DefaultStatusTimeout  = 10 * time.Second
	DefaultCaptureTimeout = 180 * time.Second
)

// Capturer extracts an environment snapshot. Implementations must degrade
// to a partial EnvironmentSpec plus warnings rather than fail the pipeline;
// the error return is reserved for context cancellation.
type Capturer interface {
	Capture(ctx context.Context, envName string) (models.EnvironmentSpec, []string, error)
}

// SpackCapturer shells out to spack. Concurrent captures of the same
// environment are deduplicated with singleflight.
type SpackCapturer struct {
	bin           string
	findTimeout   time.Duration
	configTimeout time.Duration
	group         singleflight.Group
}

// NewSpackCapturer creates a capturer using the given spack binary path
// (empty means "spack" on PATH).
func NewSpackCapturer(bin string) *SpackCapturer {
	if bin == "" {
		bin = "spack"
	}
	return &SpackCapturer{
		bin:           bin,
		findTimeout:   DefaultFindTimeout,
		configTimeout: DefaultConfigTimeout,
	}
}

// WithTimeouts overrides the per-operation timeouts. Zero values keep the
// defaults. Call before the first Capture; not safe concurrently with it.
func (c *SpackCapturer) WithTimeouts(find, config time.Duration) *SpackCapturer {
	if find > 0 {
		c.findTimeout = find
	}
	if config > 0 {
		c.configTimeout = config
	}
	return c
}

type captureOutcome struct {
	spec     models.EnvironmentSpec
	warnings []string
}

// Capture snapshots one environment. Each sub-capture that fails records a
// warning and leaves its section empty; the pipeline proceeds on whatever
// subset was obtained.
func (c *SpackCapturer) Capture(ctx context.Context, envName string) (models.EnvironmentSpec, []string, error) {
	v, err, _ := c.group.Do(envName, func() (interface{}, error) {
		return c.capture(ctx, envName)
	})
	if err != nil {
		return models.EnvironmentSpec{}, nil, err
	}
	outcome := v.(captureOutcome)
	return outcome.spec, outcome.warnings, nil
}

func (c *SpackCapturer) capture(ctx context.Context, envName string) (captureOutcome, error) {
	spec := models.EnvironmentSpec{
		Name:         envName,
		SourceSystem: "spack",
		CapturedAt:   time.Now().UTC(),
	}
	var warnings []string

	if _, err := exec.LookPath(c.bin); err != nil {
		warnings = append(warnings, fmt.Sprintf("spack binary %q not found; producing an empty snapshot", c.bin))
		return captureOutcome{spec: spec, warnings: warnings}, nil
	}

	if out, err := c.run(ctx, c.findTimeout, "-e", envName, "find", "--format", "{name}@{version}"); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return captureOutcome{}, ctxErr
		}
		warnings = append(warnings, fmt.Sprintf("package listing failed: %v", err))
	} else {
		spec.Packages = parsePackages(out)
	}

	if out, err := c.run(ctx, c.configTimeout, "compiler", "list"); err != nil {
		warnings = append(warnings, fmt.Sprintf("compiler listing failed: %v", err))
	} else {
		spec.Compilers = parseCompilers(out)
	}

	if out, err := c.run(ctx, c.configTimeout, "repo", "list"); err != nil {
		warnings = append(warnings, fmt.Sprintf("repo listing failed: %v", err))
	} else {
		spec.Repos = parseRepos(out)
	}

	if out, err := c.run(ctx, c.configTimeout, "mirror", "list"); err != nil {
		warnings = append(warnings, fmt.Sprintf("mirror listing failed: %v", err))
	} else {
		spec.Mirrors = parseMirrors(out)
	}

	return captureOutcome{spec: spec, warnings: warnings}, nil
}

// run executes one spack invocation under its own timeout.
func (c *SpackCapturer) run(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(opCtx, c.bin, args...)
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(opCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("timed out after %s", timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("exit status %d: %s", exitErr.ExitCode(), firstLine(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}

// parsePackages reads "{name}@{version}" lines from spack find.
func parsePackages(out string) []models.PackageRef {
	var packages []models.PackageRef
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "==>") || strings.HasPrefix(line, "--") {
			continue
		}
		name, version, _ := strings.Cut(line, "@")
		if name == "" {
			continue
		}
		ref := models.PackageRef{Name: name}
		if version != "" {
			ref.Spec = "@" + version
		}
		packages = append(packages, ref)
	}
	return packages
}

// parseCompilers reads "name@version" entries from spack compiler list,
// skipping section headers.
func parseCompilers(out string) []models.CompilerSpec {
	var compilers []models.CompilerSpec
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "==>") || strings.HasPrefix(line, "--") {
			continue
		}
		for _, field := range strings.Fields(line) {
			name, version, found := strings.Cut(field, "@")
			if !found || name == "" {
				continue
			}
			compilers = append(compilers, models.CompilerSpec{Name: name, Version: version})
		}
	}
	return compilers
}

// parseRepos reads the namespace column from spack repo list.
func parseRepos(out string) []string {
	var repos []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "==>") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			repos = append(repos, fields[0])
		}
	}
	return repos
}

// parseMirrors reads "name url" rows from spack mirror list.
func parseMirrors(out string) []models.MirrorSpec {
	var mirrors []models.MirrorSpec
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "==>") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		mirrors = append(mirrors, models.MirrorSpec{Name: fields[0], URL: fields[len(fields)-1]})
	}
	return mirrors
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
