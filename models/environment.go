// ABOUTME: Environment snapshot types produced by the capture step
// ABOUTME: Describes a Spack environment: packages, compilers, repos, mirrors

package models

import "time"

// PackageRef identifies a single package in the environment.
// Spec is the optional version/variant string as reported by spack
// (e.g. "@4.1.5 +cuda"), empty when the capture could not resolve it.
type PackageRef struct {
	Name string `json:"name"`
	Spec string `json:"spec,omitempty"`
}

// CompilerSpec identifies a compiler available in the environment.
type CompilerSpec struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// MirrorSpec describes a configured binary-cache mirror.
type MirrorSpec struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EnvironmentSpec is the snapshot of a package environment handed to the
// analysis pipeline. Immutable once produced; the engine never mutates it.
type EnvironmentSpec struct {
	Name         string         `json:"name"`
	Packages     []PackageRef   `json:"packages"`
	Compilers    []CompilerSpec `json:"compilers"`
	Repos        []string       `json:"repos"`
	SourceSystem string         `json:"source_system"`
	Mirrors      []MirrorSpec   `json:"binary_cache_mirrors,omitempty"`
	CapturedAt   time.Time      `json:"captured_at"`
}

// HasS3Mirror reports whether the environment already pushes to an S3-backed
// binary cache, which changes the cache migration strategy.
func (e *EnvironmentSpec) HasS3Mirror() bool {
	for _, m := range e.Mirrors {
		if len(m.URL) >= 5 && m.URL[:5] == "s3://" {
			return true
		}
	}
	return false
}
