// ABOUTME: Graviton compatibility analyzer for captured package lists
// ABOUTME: Applies deny/allow lists and the performance boost table

package services

import (
	"strings"

	"github.com/scttfrdmn/aws-research-wizard-sub000/catalog"
	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// GravitonSavingsFraction is the compute cost reduction assumed when an
// environment can run entirely on arm64 instances.
const GravitonSavingsFraction = 0.20

// CompatibilityAnalyzer checks whether an environment can move to the
// Graviton architecture and estimates the performance effect.
type CompatibilityAnalyzer struct {
	rules catalog.ArchitectureRules
}

// NewCompatibilityAnalyzer creates an analyzer with the given rules.
func NewCompatibilityAnalyzer(rules catalog.ArchitectureRules) *CompatibilityAnalyzer {
	return &CompatibilityAnalyzer{rules: rules}
}

// Analyze classifies every package even after the first deny match, so the
// incompatible list is complete. One deny match makes the whole result
// incompatible regardless of allow matches.
func (a *CompatibilityAnalyzer) Analyze(packages []models.PackageRef) models.CompatibilityResult {
	result := models.CompatibilityResult{
		Compatible:               true,
		IncompatiblePackages:     []string{},
		NativePackages:           []string{},
		Boosts:                   []models.PackageBoost{},
		EstimatedPerformanceGain: 1.0,
	}

	for _, pkg := range packages {
		name := strings.ToLower(pkg.Name)

		if matchesAny(name, a.rules.Deny) {
			result.Compatible = false
			result.IncompatiblePackages = append(result.IncompatiblePackages, pkg.Name)
			continue
		}

		if !matchesAny(name, a.rules.Allow) {
			continue
		}
		result.NativePackages = append(result.NativePackages, pkg.Name)

		if factor, ok := a.lookupBoost(name); ok {
			result.Boosts = append(result.Boosts, models.PackageBoost{
				Package: pkg.Name,
				Factor:  factor,
			})
			if factor > result.EstimatedPerformanceGain {
				result.EstimatedPerformanceGain = factor
			}
		}
	}

	if result.Compatible {
		result.CostSavingsFraction = GravitonSavingsFraction
	}

	return result
}

// lookupBoost finds the boost factor for name. When several table keys
// match, the largest factor wins so repeated runs stay deterministic.
func (a *CompatibilityAnalyzer) lookupBoost(name string) (float64, bool) {
	var best float64
	found := false
	for key, factor := range a.rules.Boosts {
		if strings.Contains(name, key) && factor > best {
			best = factor
			found = true
		}
	}
	return best, found
}
