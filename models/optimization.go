// ABOUTME: Optimization result and analysis report envelope types
// ABOUTME: Aggregates selection, compatibility, and cost into one record

package models

import "time"

// OptimizationResult is the infrastructure recommendation for an environment.
type OptimizationResult struct {
	Selection     InstanceSelection   `json:"selection"`
	Profile       RequirementProfile  `json:"profile"`
	Compatibility CompatibilityResult `json:"compatibility"`
	Cost          CostEstimate        `json:"cost"`

	BinaryCacheStrategy string   `json:"binary_cache_strategy"`
	ContainerStrategy   string   `json:"container_strategy,omitempty"`
	OptimizationNotes   []string `json:"optimization_notes"`
	RecommendedServices []string `json:"recommended_services"`
}

// AnalysisReport is the envelope written by serve mode and the exporter:
// one pipeline run plus any warnings the capture step recorded.
type AnalysisReport struct {
	ReportID    string             `json:"report_id"`
	Environment string             `json:"environment"`
	Result      OptimizationResult `json:"result"`
	Plan        MigrationPlan      `json:"plan"`
	Warnings    []string           `json:"warnings,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}
