// ABOUTME: Tests for the migration plan assembler
// ABOUTME: Validates conditional notes, services, phases, and sub-plans

package services

import (
	"strings"
	"testing"
	"time"

	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

func testEnv(packages ...string) models.EnvironmentSpec {
	return models.EnvironmentSpec{
		Name:         "climate-prod",
		Packages:     refs(packages...),
		Compilers:    []models.CompilerSpec{{Name: "gcc", Version: "13.2.0"}},
		SourceSystem: "spack",
		CapturedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func assembleFor(env models.EnvironmentSpec, profile models.RequirementProfile, compat models.CompatibilityResult, sel models.InstanceSelection) (models.OptimizationResult, models.MigrationPlan) {
	cost := NewCostModel().Estimate(sel, profile)
	return NewPlanAssembler().Assemble(env, profile, compat, sel, cost)
}

func TestAssemble_FivePhases(t *testing.T) {
	profile := models.RequirementProfile{TotalPackages: 4, MemoryRequirementGB: 32, StorageRequirementGB: 500}
	sel := selection(0.50, 1, false)

	_, plan := assembleFor(testEnv("gcc"), profile, compatible(), sel)

	if len(plan.Phases) != 5 {
		t.Fatalf("Expected 5 phases, got %d", len(plan.Phases))
	}
	wantOrder := []string{"Assessment", "Infrastructure Setup", "Environment Migration", "Testing and Validation", "Production Deployment"}
	for i, phase := range plan.Phases {
		if phase.Name != wantOrder[i] {
			t.Errorf("Phase %d: expected %q, got %q", i, wantOrder[i], phase.Name)
		}
		if len(phase.Steps) == 0 {
			t.Errorf("Phase %q has no steps", phase.Name)
		}
	}
}

func TestAssemble_StepsParameterized(t *testing.T) {
	profile := models.RequirementProfile{TotalPackages: 10, MemoryRequirementGB: 32, StorageRequirementGB: 100}
	sel := selection(0.50, 2, false)
	sel.Instance.Name = "hpc6a.48xlarge"

	_, plan := assembleFor(testEnv("gcc"), profile, compatible(), sel)

	var found bool
	for _, step := range plan.Phases[1].Steps {
		if strings.Contains(step, "hpc6a.48xlarge") && strings.Contains(step, "2 ") {
			found = true
		}
	}
	if !found {
		t.Error("Infrastructure phase steps do not mention the selected instance type and count")
	}
}

func TestAssemble_ConditionalNotes(t *testing.T) {
	// MPI + multi-instance + memory-intensive + large storage: the
	// corresponding notes all appear, plus the two always-present ones.
	profile := models.RequirementProfile{
		TotalPackages:        40,
		MemoryIntensiveCount: 6,
		MemoryRequirementGB:  64,
		StorageRequirementGB: 2000,
		MPIEnabled:           true,
	}
	sel := selection(1.00, 2, false)

	result, _ := assembleFor(testEnv("wrf", "openmpi"), profile, compatible(), sel)

	wantFragments := []string{
		"Graviton-compatible",
		"placement group",
		"scales horizontally",
		"memory-intensive",
		"tier cold data",
		"binary cache",
		"Spot instances",
	}
	for _, fragment := range wantFragments {
		if !notesContain(result.OptimizationNotes, fragment) {
			t.Errorf("Expected a note containing %q, notes: %v", fragment, result.OptimizationNotes)
		}
	}
}

func TestAssemble_IncompatibleSkipsArchitectureNote(t *testing.T) {
	profile := models.RequirementProfile{TotalPackages: 2, MemoryRequirementGB: 8, StorageRequirementGB: 100}
	sel := selection(0.50, 1, false)

	result, _ := assembleFor(testEnv("intel-mkl"), profile, incompatible(), sel)

	if notesContain(result.OptimizationNotes, "Graviton-compatible") {
		t.Error("Architecture note should be absent for incompatible environments")
	}
}

func TestAssemble_GPUNote(t *testing.T) {
	profile := models.RequirementProfile{TotalPackages: 3, GPURequired: true, MemoryRequirementGB: 32, StorageRequirementGB: 100}
	sel := selection(2.50, 1, false)

	result, _ := assembleFor(testEnv("cuda"), profile, incompatible(), sel)

	if !notesContain(result.OptimizationNotes, "GPU") {
		t.Errorf("Expected a GPU note, notes: %v", result.OptimizationNotes)
	}
}

func TestAssemble_ServiceList(t *testing.T) {
	// Baseline services always present; MPI multi-node adds EFA,
	// placement groups, and FSx; >50 packages adds cache and registry.
	profile := models.RequirementProfile{
		TotalPackages:        60,
		MemoryRequirementGB:  64,
		StorageRequirementGB: 500,
		MPIEnabled:           true,
	}
	sel := selection(1.00, 2, false)

	result, _ := assembleFor(testEnv("openmpi"), profile, compatible(), sel)

	want := []string{"EC2", "EBS", "S3", "VPC", "CloudWatch", "EFA", "Cluster Placement Groups", "FSx for Lustre", "S3 Binary Cache", "ECR"}
	for _, svc := range want {
		if !contains(result.RecommendedServices, svc) {
			t.Errorf("Expected service %q, got %v", svc, result.RecommendedServices)
		}
	}
}

func TestAssemble_BaselineServicesOnly(t *testing.T) {
	profile := models.RequirementProfile{TotalPackages: 5, MemoryRequirementGB: 8, StorageRequirementGB: 100}
	sel := selection(0.20, 1, false)

	result, _ := assembleFor(testEnv("gcc"), profile, compatible(), sel)

	if len(result.RecommendedServices) != 5 {
		t.Errorf("Expected only the 5 baseline services, got %v", result.RecommendedServices)
	}
}

func TestAssemble_ContainerStrategy(t *testing.T) {
	// Small serial environment: containerization recommended.
	small := models.RequirementProfile{TotalPackages: 10, MemoryRequirementGB: 8, StorageRequirementGB: 100}
	result, plan := assembleFor(testEnv("python"), small, compatible(), selection(0.20, 1, false))

	if result.ContainerStrategy == "" {
		t.Error("Expected a container strategy for a small serial environment")
	}
	if !plan.Container.Recommended {
		t.Error("Expected container plan to be recommended")
	}

	// MPI environments never containerize.
	mpi := models.RequirementProfile{TotalPackages: 10, MPIEnabled: true, MemoryRequirementGB: 16, StorageRequirementGB: 100}
	result, plan = assembleFor(testEnv("openmpi"), mpi, compatible(), selection(0.20, 1, false))

	if result.ContainerStrategy != "" {
		t.Errorf("Expected no container strategy for MPI, got %q", result.ContainerStrategy)
	}
	if plan.Container.Recommended {
		t.Error("Container plan should not be recommended for MPI")
	}
}

func TestAssemble_BinaryCacheStrategy(t *testing.T) {
	profile := models.RequirementProfile{TotalPackages: 2, MemoryRequirementGB: 8, StorageRequirementGB: 100}
	sel := selection(0.20, 1, false)

	// No mirrors: provision a new bucket.
	result, _ := assembleFor(testEnv("gcc"), profile, compatible(), sel)
	if result.BinaryCacheStrategy != CacheStrategyNewBucket {
		t.Errorf("Expected %q, got %q", CacheStrategyNewBucket, result.BinaryCacheStrategy)
	}

	// Existing S3 mirror: reuse it.
	env := testEnv("gcc")
	env.Mirrors = []models.MirrorSpec{{Name: "lab-cache", URL: "s3://lab-spack-cache"}}
	result, plan := assembleFor(env, profile, compatible(), sel)
	if result.BinaryCacheStrategy != CacheStrategyReuseMirror {
		t.Errorf("Expected %q, got %q", CacheStrategyReuseMirror, result.BinaryCacheStrategy)
	}
	if len(plan.BinaryCache.ExistingMirrors) != 1 {
		t.Errorf("Expected existing mirror recorded, got %v", plan.BinaryCache.ExistingMirrors)
	}
}

func TestAssemble_ValidationTests(t *testing.T) {
	profile := models.RequirementProfile{
		TotalPackages:        40,
		MemoryRequirementGB:  64,
		StorageRequirementGB: 500,
		MPIEnabled:           true,
		GPURequired:          true,
		IOIntensiveCount:     2,
	}
	sel := selection(1.00, 2, false)

	_, plan := assembleFor(testEnv("openmpi", "cuda", "hdf5"), profile, incompatible(), sel)

	// 3 base + MPI + multi-node + GPU + I/O = 7 tests.
	if len(plan.ValidationTests) != 7 {
		t.Errorf("Expected 7 validation tests, got %d: %v", len(plan.ValidationTests), plan.ValidationTests)
	}
}

func TestAssemble_SourceAndTargetSummaries(t *testing.T) {
	profile := models.RequirementProfile{TotalPackages: 4, MemoryRequirementGB: 32, StorageRequirementGB: 500}
	sel := selection(0.50, 1, false)

	_, plan := assembleFor(testEnv("gcc", "wrf", "openmpi", "netcdf-c"), profile, compatible(), sel)

	if plan.Source.EnvironmentName != "climate-prod" {
		t.Errorf("Expected source environment climate-prod, got %s", plan.Source.EnvironmentName)
	}
	if plan.Source.TotalPackages != 4 {
		t.Errorf("Expected 4 source packages, got %d", plan.Source.TotalPackages)
	}
	if len(plan.Source.Compilers) != 1 || plan.Source.Compilers[0] != "gcc@13.2.0" {
		t.Errorf("Expected compilers [gcc@13.2.0], got %v", plan.Source.Compilers)
	}
	if plan.Target.InstanceType != sel.Instance.Name {
		t.Errorf("Expected target instance %s, got %s", sel.Instance.Name, plan.Target.InstanceType)
	}
	if plan.Target.StorageGB != 500 {
		t.Errorf("Expected target storage 500, got %d", plan.Target.StorageGB)
	}
}

func notesContain(notes []string, fragment string) bool {
	for _, n := range notes {
		if strings.Contains(n, fragment) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
