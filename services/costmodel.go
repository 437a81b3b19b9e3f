// ABOUTME: Parametric cost model for the selected instance configuration
// ABOUTME: Hourly breakdown, 30% utilization monthly estimate, and scenarios

package services

import (
	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// Cost model constants. Prices are held locally; this is a rule-based
// estimate for human review, not a billing prediction.
const (
	// EBSMonthlyPerGB is gp3 storage cost per GB-month.
	EBSMonthlyPerGB = 0.08
	// FSxMonthlyPerGB is FSx for Lustre cost per GB-month, applied when a
	// multi-node MPI workload needs a shared filesystem.
	FSxMonthlyPerGB = 0.125
	// FSxMinimumGB is the smallest practical Lustre filesystem.
	FSxMinimumGB = 1200
	// NetworkHourlyPerInstance is a flat data-transfer estimate.
	NetworkHourlyPerInstance = 0.01
	// HoursPerMonth converts GB-month prices to hourly.
	HoursPerMonth = 730

	// DefaultUtilization converts hourly cost to a representative monthly
	// figure for intermittently-used research workloads.
	DefaultUtilization = 0.30

	// SpotFraction and ReservedFraction are applied to the on-demand rate.
	SpotFraction     = 0.30
	ReservedFraction = 0.60
)

// CostModel turns a selection and profile into a cost estimate.
type CostModel struct{}

// NewCostModel creates a cost model.
func NewCostModel() *CostModel {
	return &CostModel{}
}

// Estimate computes the hourly breakdown, the monthly estimate at 30%
// utilization, and the alternate pricing scenarios.
func (m *CostModel) Estimate(selection models.InstanceSelection, profile models.RequirementProfile) models.CostEstimate {
	compute := selection.Instance.HourlyPrice * float64(selection.InstanceCount)

	storageGB := float64(profile.StorageRequirementGB)
	storage := storageGB * EBSMonthlyPerGB / HoursPerMonth
	if profile.MPIEnabled && selection.InstanceCount > 1 {
		shared := storageGB
		if shared < FSxMinimumGB {
			shared = FSxMinimumGB
		}
		storage += FSxMonthlyPerGB * shared / HoursPerMonth
	}

	network := NetworkHourlyPerInstance * float64(selection.InstanceCount)

	hourly := compute + storage + network
	monthly := hourly * 24 * 30 * DefaultUtilization

	gravitonSavings := 0.0
	if selection.Instance.Graviton {
		gravitonSavings = hourly * GravitonSavingsFraction
	}

	return models.CostEstimate{
		HourlyCost:      hourly,
		MonthlyEstimate: monthly,
		Breakdown: models.CostBreakdown{
			ComputeHourly: compute,
			StorageHourly: storage,
			NetworkHourly: network,
		},
		Scenarios: map[string]float64{
			models.ScenarioSpot:            hourly * SpotFraction,
			models.ScenarioReserved1Yr:     hourly * ReservedFraction,
			models.ScenarioGravitonSavings: gravitonSavings,
			models.ScenarioUtilization10:   hourly * 24 * 30 * 0.10,
			models.ScenarioUtilization30:   hourly * 24 * 30 * 0.30,
			models.ScenarioUtilization70:   hourly * 24 * 30 * 0.70,
			models.ScenarioUtilization100:  hourly * 24 * 30 * 1.00,
		},
	}
}
