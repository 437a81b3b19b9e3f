// ABOUTME: Migration plan types: phases, sub-plans, and validation tests
// ABOUTME: Rendered by the exporter into the human-readable migration guide

package models

import "time"

// SourceSummary describes the environment being migrated.
type SourceSummary struct {
	EnvironmentName string    `json:"environment_name"`
	SourceSystem    string    `json:"source_system"`
	TotalPackages   int       `json:"total_packages"`
	Compilers       []string  `json:"compilers"`
	CapturedAt      time.Time `json:"captured_at"`
}

// TargetSummary describes the recommended cloud configuration.
type TargetSummary struct {
	InstanceType  string `json:"instance_type"`
	InstanceCount int    `json:"instance_count"`
	Architecture  string `json:"architecture"`
	MemoryGB      int    `json:"memory_gb"`
	StorageGB     int    `json:"storage_gb"`
}

// BinaryCachePlan describes how the binary cache moves to S3.
type BinaryCachePlan struct {
	Strategy        string   `json:"strategy"`
	ExistingMirrors []string `json:"existing_mirrors,omitempty"`
	Steps           []string `json:"steps"`
}

// ContainerPlan describes the optional containerized deployment path.
type ContainerPlan struct {
	Recommended bool   `json:"recommended"`
	Strategy    string `json:"strategy,omitempty"`
	BaseImage   string `json:"base_image,omitempty"`
	Registry    string `json:"registry,omitempty"`
}

// PerformanceSummary compares expected performance on the target.
type PerformanceSummary struct {
	ExpectedGain   float64 `json:"expected_gain"`
	NativePackages int     `json:"native_packages"`
	Summary        string  `json:"summary"`
}

// CostSummary carries the cost figures the migration guide cites.
type CostSummary struct {
	HourlyCost      float64 `json:"hourly_cost"`
	MonthlyAt30Pct  float64 `json:"monthly_at_30pct"`
	SpotHourly      float64 `json:"spot_hourly"`
	ReservedHourly  float64 `json:"reserved_hourly"`
	SavingsFraction float64 `json:"savings_fraction"`
}

// PlanPhase is one ordered phase of the migration with its steps.
type PlanPhase struct {
	Name     string   `json:"name"`
	Duration string   `json:"duration"`
	Steps    []string `json:"steps"`
}

// MigrationPlan is the full phased plan for moving an environment to AWS.
type MigrationPlan struct {
	Source          SourceSummary      `json:"source"`
	Target          TargetSummary      `json:"target"`
	BinaryCache     BinaryCachePlan    `json:"binary_cache"`
	Container       ContainerPlan      `json:"container"`
	Performance     PerformanceSummary `json:"performance"`
	Cost            CostSummary        `json:"cost"`
	Phases          []PlanPhase        `json:"phases"`
	ValidationTests []string           `json:"validation_tests"`
}
