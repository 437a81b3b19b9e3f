// ABOUTME: Graviton architecture compatibility result types
// ABOUTME: Records incompatible/native packages and expected performance gain

package models

// PackageBoost pairs a package with its expected performance boost factor
// on the Graviton (arm64) architecture relative to x86_64.
type PackageBoost struct {
	Package string  `json:"package"`
	Factor  float64 `json:"factor"`
}

// CompatibilityResult is the outcome of checking an environment against the
// arm64 deny/allow lists. A single deny-list match makes the whole
// environment incompatible regardless of how many packages run natively.
type CompatibilityResult struct {
	Compatible           bool           `json:"compatible"`
	IncompatiblePackages []string       `json:"incompatible_packages"`
	NativePackages       []string       `json:"native_packages"`
	Boosts               []PackageBoost `json:"performance_boosts"`

	// EstimatedPerformanceGain is the maximum boost factor observed,
	// 1.0 when no boost applies.
	EstimatedPerformanceGain float64 `json:"estimated_performance_gain"`

	// CostSavingsFraction is 0.20 when the environment can move to
	// Graviton, 0 otherwise.
	CostSavingsFraction float64 `json:"cost_savings_fraction"`
}
