// ABOUTME: Tests for the artifact exporter
// ABOUTME: Renders real reports into a temp dir and inspects the files

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/scttfrdmn/aws-research-wizard-sub000/catalog"
	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
	"github.com/scttfrdmn/aws-research-wizard-sub000/services"
)

func reportFor(t *testing.T, packages ...string) models.AnalysisReport {
	t.Helper()
	refs := make([]models.PackageRef, len(packages))
	for i, p := range packages {
		refs[i] = models.PackageRef{Name: p}
	}
	env := models.EnvironmentSpec{
		Name:         "climate-prod",
		Packages:     refs,
		SourceSystem: "spack",
		CapturedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	return services.NewEngine(catalog.Default()).Report(env, nil)
}

func TestWriteAll_Artifacts(t *testing.T) {
	// MPI environment with > 15 packages worth of signal: no Dockerfile.
	report := reportFor(t, "gcc", "openmpi", "netcdf-c", "wrf", "hdf5", "petsc",
		"fftw", "openblas", "cmake", "python", "zlib", "boost",
		"scalapack", "ucx", "libfabric", "darshan")
	dir := t.TempDir()

	if err := NewExporter("us-east-1").WriteAll(dir, report); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	for _, name := range []string{"main.tf", "deploy.sh", "MIGRATION_GUIDE.md", "cost-analysis.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected artifact %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "Dockerfile")); !os.IsNotExist(err) {
		t.Error("Expected no Dockerfile for an MPI environment")
	}
}

func TestWriteAll_DockerfileWhenRecommended(t *testing.T) {
	// Small serial environment: the container plan kicks in.
	report := reportFor(t, "python", "cmake", "zlib")
	dir := t.TempDir()

	if err := NewExporter("us-east-1").WriteAll(dir, report); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	if err != nil {
		t.Fatalf("Expected a Dockerfile: %v", err)
	}
	if !strings.Contains(string(data), "spack") {
		t.Error("Dockerfile does not reference spack")
	}
}

func TestWriteAll_TerraformContent(t *testing.T) {
	report := reportFor(t, "gcc", "wrf")
	dir := t.TempDir()

	if err := NewExporter("eu-west-1").WriteAll(dir, report); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "main.tf"))
	if err != nil {
		t.Fatalf("reading main.tf: %v", err)
	}
	tf := string(data)
	if !strings.Contains(tf, report.Result.Selection.Instance.Name) {
		t.Error("main.tf does not reference the selected instance type")
	}
	if !strings.Contains(tf, "eu-west-1") {
		t.Error("main.tf does not reference the exporter region")
	}
	if !strings.Contains(tf, "gp3") {
		t.Error("main.tf does not provision gp3 storage")
	}
}

func TestWriteAll_DeployScriptExecutable(t *testing.T) {
	report := reportFor(t, "gcc")
	dir := t.TempDir()

	if err := NewExporter("us-east-1").WriteAll(dir, report); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "deploy.sh"))
	if err != nil {
		t.Fatalf("stat deploy.sh: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("deploy.sh is not executable: %v", info.Mode())
	}
}

func TestWriteAll_CostJSON(t *testing.T) {
	report := reportFor(t, "gcc", "openmpi", "wrf")
	dir := t.TempDir()

	if err := NewExporter("us-east-1").WriteAll(dir, report); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cost-analysis.json"))
	if err != nil {
		t.Fatalf("reading cost-analysis.json: %v", err)
	}
	var out struct {
		ReportID    string              `json:"report_id"`
		Environment string              `json:"environment"`
		Region      string              `json:"region"`
		Cost        models.CostEstimate `json:"cost"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("cost-analysis.json is not valid JSON: %v", err)
	}
	if out.ReportID != report.ReportID {
		t.Errorf("Expected report ID %s, got %s", report.ReportID, out.ReportID)
	}
	if out.Environment != "climate-prod" {
		t.Errorf("Expected environment climate-prod, got %s", out.Environment)
	}
	if out.Cost.HourlyCost <= 0 {
		t.Error("Expected a positive hourly cost in the export")
	}
	if len(out.Cost.Scenarios) == 0 {
		t.Error("Expected cost scenarios in the export")
	}
}

func TestWriteAll_GuideMentionsPhases(t *testing.T) {
	report := reportFor(t, "gcc", "openmpi", "wrf")
	dir := t.TempDir()

	if err := NewExporter("us-east-1").WriteAll(dir, report); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "MIGRATION_GUIDE.md"))
	if err != nil {
		t.Fatalf("reading MIGRATION_GUIDE.md: %v", err)
	}
	guide := string(data)
	for _, phase := range report.Plan.Phases {
		if !strings.Contains(guide, phase.Name) {
			t.Errorf("Guide is missing phase %q", phase.Name)
		}
	}
	if !strings.Contains(guide, "climate-prod") {
		t.Error("Guide does not name the environment")
	}
}

func TestWriteAll_CreatesDirectory(t *testing.T) {
	report := reportFor(t, "gcc")
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if err := NewExporter("us-east-1").WriteAll(dir, report); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "main.tf")); err != nil {
		t.Errorf("Expected artifacts in the created directory: %v", err)
	}
}
