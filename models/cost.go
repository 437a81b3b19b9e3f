// ABOUTME: Cost estimate types for the selected instance configuration
// ABOUTME: Hourly breakdown, monthly projection, and alternate pricing scenarios

package models

// Scenario keys present in CostEstimate.Scenarios.
const (
	ScenarioSpot            = "spot"
	ScenarioReserved1Yr     = "reserved_1yr"
	ScenarioGravitonSavings = "graviton_savings"
	ScenarioUtilization10   = "utilization_10"
	ScenarioUtilization30   = "utilization_30"
	ScenarioUtilization70   = "utilization_70"
	ScenarioUtilization100  = "utilization_100"
)

// CostBreakdown splits the hourly rate into its components.
type CostBreakdown struct {
	ComputeHourly float64 `json:"compute_hourly"`
	StorageHourly float64 `json:"storage_hourly"`
	NetworkHourly float64 `json:"network_hourly"`
}

// CostEstimate projects the running cost of the selected configuration.
// MonthlyEstimate assumes 30% utilization, typical for research workloads
// that run in bursts rather than continuously.
type CostEstimate struct {
	HourlyCost      float64            `json:"hourly_cost"`
	MonthlyEstimate float64            `json:"monthly_estimate"`
	Breakdown       CostBreakdown      `json:"breakdown"`
	Scenarios       map[string]float64 `json:"scenarios"`
}
