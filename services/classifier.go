// ABOUTME: Package classifier deriving resource requirements from package names
// ABOUTME: Keyword matching plus threshold rules for memory and storage sizing

package services

import (
	"strings"

	"github.com/scttfrdmn/aws-research-wizard-sub000/catalog"
	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// Baseline requirements for an empty or unclassified environment.
const (
	BaselineMemoryGB  = 8
	BaselineStorageGB = 100
)

// PackageClassifier buckets packages into resource categories and derives
// a requirement profile. Pure function over the injected keyword lists.
type PackageClassifier struct {
	keywords catalog.Keywords
}

// NewPackageClassifier creates a classifier using the given keyword lists.
func NewPackageClassifier(keywords catalog.Keywords) *PackageClassifier {
	return &PackageClassifier{keywords: keywords}
}

// Classify derives the requirement profile for a package list. Categories
// are non-exclusive; unmatched packages contribute only to the total count.
func (c *PackageClassifier) Classify(packages []models.PackageRef) models.RequirementProfile {
	profile := models.RequirementProfile{
		TotalPackages: len(packages),
	}

	for _, pkg := range packages {
		name := strings.ToLower(pkg.Name)
		if matchesAny(name, c.keywords.MemoryIntensive) {
			profile.MemoryIntensiveCount++
		}
		if matchesAny(name, c.keywords.GPUAccelerated) {
			profile.GPUAcceleratedCount++
		}
		if matchesAny(name, c.keywords.MPIEnabled) {
			profile.MPIEnabledCount++
		}
		if matchesAny(name, c.keywords.IOIntensive) {
			profile.IOIntensiveCount++
		}
	}

	profile.GPURequired = profile.GPUAcceleratedCount > 0
	profile.MPIEnabled = profile.MPIEnabledCount > 0

	// Memory sizing: start at the baseline, raise to the highest floor any
	// rule establishes, then scale for heavily memory-bound environments.
	memory := BaselineMemoryGB
	if profile.MemoryIntensiveCount > 0 || profile.GPUAcceleratedCount > 0 {
		memory = maxInt(memory, 32)
	}
	if profile.MPIEnabled {
		memory = maxInt(memory, 16)
	}
	if profile.MemoryIntensiveCount > 3 {
		memory *= 2
	}
	if profile.MPIEnabled && profile.MemoryIntensiveCount > 3 {
		// Distributed memory-bound codes need headroom per rank.
		memory = maxInt(memory, 64)
	}
	profile.MemoryRequirementGB = memory

	// Storage sizing: I/O-heavy formats imply large working datasets.
	storage := BaselineStorageGB
	if profile.IOIntensiveCount > 0 {
		storage = maxInt(storage, 500)
	}
	if profile.IOIntensiveCount > 2 {
		storage *= 2
	}
	profile.StorageRequirementGB = storage

	return profile
}

// matchesAny reports whether name contains any of the keywords.
func matchesAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
