// ABOUTME: Migration plan assembler producing the phased plan and result
// ABOUTME: Fixed five-phase skeleton with conditional notes and services

package services

import (
	"fmt"

	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// Binary cache strategies emitted in the optimization result.
const (
	CacheStrategyReuseMirror = "reuse-existing-s3-mirror"
	CacheStrategyNewBucket   = "provision-s3-binary-cache"
)

// containerMaxPackages is the largest environment still worth
// containerizing instead of running on a dedicated instance fleet.
const containerMaxPackages = 15

// PlanAssembler builds the optimization result and migration plan from the
// outputs of the earlier pipeline stages.
type PlanAssembler struct{}

// NewPlanAssembler creates a plan assembler.
func NewPlanAssembler() *PlanAssembler {
	return &PlanAssembler{}
}

// Assemble deterministically emits the optimization result and the phased
// migration plan. Same inputs always produce byte-identical output.
func (p *PlanAssembler) Assemble(
	env models.EnvironmentSpec,
	profile models.RequirementProfile,
	compat models.CompatibilityResult,
	selection models.InstanceSelection,
	cost models.CostEstimate,
) (models.OptimizationResult, models.MigrationPlan) {
	result := models.OptimizationResult{
		Selection:           selection,
		Profile:             profile,
		Compatibility:       compat,
		Cost:                cost,
		BinaryCacheStrategy: cacheStrategy(env),
		ContainerStrategy:   containerStrategy(profile),
		OptimizationNotes:   p.notes(profile, compat, selection),
		RecommendedServices: p.services(profile, selection),
	}

	plan := models.MigrationPlan{
		Source:          sourceSummary(env, profile),
		Target:          targetSummary(profile, selection),
		BinaryCache:     binaryCachePlan(env, result.BinaryCacheStrategy),
		Container:       containerPlan(env, profile),
		Performance:     performanceSummary(compat),
		Cost:            costSummary(compat, cost),
		Phases:          p.phases(env, selection),
		ValidationTests: p.validationTests(profile, selection),
	}

	return result, plan
}

func cacheStrategy(env models.EnvironmentSpec) string {
	if env.HasS3Mirror() {
		return CacheStrategyReuseMirror
	}
	return CacheStrategyNewBucket
}

func containerStrategy(profile models.RequirementProfile) string {
	if profile.TotalPackages > 0 && profile.TotalPackages <= containerMaxPackages && !profile.MPIEnabled {
		return "Build a container image with spack containerize and deploy via ECS"
	}
	return ""
}

// notes appends conditional optimization advice. Order is fixed so repeated
// runs on the same input produce identical output.
func (p *PlanAssembler) notes(profile models.RequirementProfile, compat models.CompatibilityResult, selection models.InstanceSelection) []string {
	var notes []string

	if compat.Compatible {
		notes = append(notes, fmt.Sprintf(
			"Environment is Graviton-compatible: arm64 instances reduce compute cost by ~%.0f%% with an estimated %.2fx performance factor",
			compat.CostSavingsFraction*100, compat.EstimatedPerformanceGain))
	}
	if profile.MPIEnabled {
		notes = append(notes,
			"MPI workload detected: place instances in a cluster placement group and enable EFA networking")
		if selection.InstanceCount > 1 {
			notes = append(notes, fmt.Sprintf(
				"Workload scales horizontally across %d instances; size MPI ranks to %d vCPUs total",
				selection.InstanceCount, selection.Instance.VCPUs*selection.InstanceCount))
		}
	}
	if profile.MemoryIntensiveCount > 0 {
		notes = append(notes, fmt.Sprintf(
			"%d memory-intensive package(s) found: provisioned %d GB per instance",
			profile.MemoryIntensiveCount, selection.Instance.MemoryGB))
	}
	if profile.GPURequired {
		notes = append(notes,
			"GPU packages present: selected a GPU instance; install the NVIDIA driver via the deep learning AMI or package manager")
	}
	if profile.StorageRequirementGB > 1000 {
		notes = append(notes, fmt.Sprintf(
			"Large storage footprint (%d GB): tier cold data to S3 and keep hot data on gp3",
			profile.StorageRequirementGB))
	}

	notes = append(notes,
		"Use an S3 binary cache to avoid rebuilding packages from source on every instance")
	notes = append(notes, fmt.Sprintf(
		"Spot instances reduce compute cost by ~%.0f%% for interruption-tolerant build and batch jobs",
		(1-SpotFraction)*100))

	return notes
}

// services builds the recommended AWS service list: fixed baseline plus
// conditional additions.
func (p *PlanAssembler) services(profile models.RequirementProfile, selection models.InstanceSelection) []string {
	services := []string{"EC2", "EBS", "S3", "VPC", "CloudWatch"}

	if profile.MPIEnabled {
		services = append(services, "EFA", "Cluster Placement Groups")
	}
	if profile.MPIEnabled && selection.InstanceCount > 1 {
		services = append(services, "FSx for Lustre")
	}
	if profile.GPURequired {
		services = append(services, "NVIDIA Driver AMI")
	}
	if profile.TotalPackages > 50 {
		services = append(services, "S3 Binary Cache", "ECR")
	}

	return services
}

func sourceSummary(env models.EnvironmentSpec, profile models.RequirementProfile) models.SourceSummary {
	compilers := make([]string, 0, len(env.Compilers))
	for _, c := range env.Compilers {
		name := c.Name
		if c.Version != "" {
			name += "@" + c.Version
		}
		compilers = append(compilers, name)
	}
	return models.SourceSummary{
		EnvironmentName: env.Name,
		SourceSystem:    env.SourceSystem,
		TotalPackages:   profile.TotalPackages,
		Compilers:       compilers,
		CapturedAt:      env.CapturedAt,
	}
}

func targetSummary(profile models.RequirementProfile, selection models.InstanceSelection) models.TargetSummary {
	return models.TargetSummary{
		InstanceType:  selection.Instance.Name,
		InstanceCount: selection.InstanceCount,
		Architecture:  selection.Architecture,
		MemoryGB:      selection.TotalMemoryGB,
		StorageGB:     profile.StorageRequirementGB,
	}
}

func binaryCachePlan(env models.EnvironmentSpec, strategy string) models.BinaryCachePlan {
	plan := models.BinaryCachePlan{Strategy: strategy}
	for _, m := range env.Mirrors {
		plan.ExistingMirrors = append(plan.ExistingMirrors, m.URL)
	}

	if strategy == CacheStrategyReuseMirror {
		plan.Steps = []string{
			"Grant the instance role read access to the existing S3 mirror bucket",
			"Add the mirror to the target environment with spack mirror add",
			"Trust the buildcache signing keys with spack buildcache keys --install --trust",
		}
	} else {
		plan.Steps = []string{
			"Create an S3 bucket for the binary cache",
			"Push existing builds with spack buildcache push",
			"Add the bucket as a mirror on the target instances",
			"Trust the buildcache signing keys with spack buildcache keys --install --trust",
		}
	}
	return plan
}

func containerPlan(env models.EnvironmentSpec, profile models.RequirementProfile) models.ContainerPlan {
	strategy := containerStrategy(profile)
	if strategy == "" {
		return models.ContainerPlan{Recommended: false}
	}
	return models.ContainerPlan{
		Recommended: true,
		Strategy:    strategy,
		BaseImage:   "ubuntu:24.04",
		Registry:    "ECR",
	}
}

func performanceSummary(compat models.CompatibilityResult) models.PerformanceSummary {
	summary := "Performance parity expected on x86_64 instances"
	if compat.Compatible && compat.EstimatedPerformanceGain > 1.0 {
		summary = fmt.Sprintf("Up to %.2fx speedup expected on Graviton for %d natively-supported package(s)",
			compat.EstimatedPerformanceGain, len(compat.NativePackages))
	} else if compat.Compatible {
		summary = "Graviton-compatible with performance parity expected"
	}
	return models.PerformanceSummary{
		ExpectedGain:   compat.EstimatedPerformanceGain,
		NativePackages: len(compat.NativePackages),
		Summary:        summary,
	}
}

func costSummary(compat models.CompatibilityResult, cost models.CostEstimate) models.CostSummary {
	return models.CostSummary{
		HourlyCost:      cost.HourlyCost,
		MonthlyAt30Pct:  cost.MonthlyEstimate,
		SpotHourly:      cost.Scenarios[models.ScenarioSpot],
		ReservedHourly:  cost.Scenarios[models.ScenarioReserved1Yr],
		SavingsFraction: compat.CostSavingsFraction,
	}
}

// phases emits the fixed five-phase skeleton parameterized by the selected
// instance configuration.
func (p *PlanAssembler) phases(env models.EnvironmentSpec, selection models.InstanceSelection) []models.PlanPhase {
	instance := selection.Instance.Name
	count := selection.InstanceCount
	arch := selection.Architecture

	return []models.PlanPhase{
		{
			Name:     "Assessment",
			Duration: "1-2 days",
			Steps: []string{
				fmt.Sprintf("Review the captured snapshot of environment %q", env.Name),
				"Confirm package versions and compiler requirements with the research team",
				"Identify licensed software that needs separate migration handling",
				"Validate the recommended configuration against expected workload sizes",
			},
		},
		{
			Name:     "Infrastructure Setup",
			Duration: "1 day",
			Steps: []string{
				"Provision the VPC, subnets, and security groups from the generated Terraform",
				fmt.Sprintf("Launch %d %s instance(s) (%s)", count, instance, arch),
				"Attach gp3 volumes sized to the storage requirement",
				"Configure IAM roles for S3 binary cache access",
			},
		},
		{
			Name:     "Environment Migration",
			Duration: "2-5 days",
			Steps: []string{
				"Install spack on the target instance(s)",
				"Register the binary cache mirror",
				"Concretize the environment for the target architecture",
				"Install the environment, preferring buildcache binaries over source builds",
			},
		},
		{
			Name:     "Testing and Validation",
			Duration: "2-3 days",
			Steps: []string{
				"Run the validation tests listed in this plan",
				"Compare benchmark results against the source system baseline",
				"Verify data paths and shared filesystem throughput",
			},
		},
		{
			Name:     "Production Deployment",
			Duration: "1 day",
			Steps: []string{
				"Snapshot the configured instance into an AMI",
				"Set up CloudWatch alarms for cost and utilization",
				"Document the runbook and hand over to the research team",
				"Decommission source capacity once parity is confirmed",
			},
		},
	}
}

// validationTests lists the checks run during the testing phase.
func (p *PlanAssembler) validationTests(profile models.RequirementProfile, selection models.InstanceSelection) []string {
	tests := []string{
		"spack find reports every package from the source environment",
		"Compiler toolchain builds a hello-world for the target architecture",
		"Representative workload completes with output matching the source system",
	}
	if profile.MPIEnabled {
		tests = append(tests, "MPI ring benchmark runs across all ranks")
		if selection.InstanceCount > 1 {
			tests = append(tests, "Multi-node latency stays within placement-group expectations")
		}
	}
	if profile.GPURequired {
		tests = append(tests, "nvidia-smi reports the expected GPU count and driver version")
	}
	if profile.IOIntensiveCount > 0 {
		tests = append(tests, "I/O benchmark sustains the required throughput on the data volume")
	}
	return tests
}
