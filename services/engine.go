// ABOUTME: Analysis engine wiring the pipeline stages together
// ABOUTME: Pure per-call: classify, check compatibility, select, cost, plan

package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/scttfrdmn/aws-research-wizard-sub000/catalog"
	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// Engine runs the capture-to-plan pipeline. It holds only the read-only
// catalogs, so independent analyses can run concurrently without locking.
type Engine struct {
	classifier *PackageClassifier
	analyzer   *CompatibilityAnalyzer
	selector   *InstanceSelector
	costModel  *CostModel
	assembler  *PlanAssembler
}

// NewEngine creates an engine over the given catalog. The catalog is never
// mutated; pass a synthetic one in tests.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		classifier: NewPackageClassifier(cat.Keywords),
		analyzer:   NewCompatibilityAnalyzer(cat.Architecture),
		selector:   NewInstanceSelector(cat.Instances),
		costModel:  NewCostModel(),
		assembler:  NewPlanAssembler(),
	}
}

// Analyze runs every pipeline stage over one environment snapshot.
func (e *Engine) Analyze(env models.EnvironmentSpec) (models.OptimizationResult, models.MigrationPlan) {
	profile := e.classifier.Classify(env.Packages)
	compat := e.analyzer.Analyze(env.Packages)
	selection := e.selector.Select(profile, compat)
	cost := e.costModel.Estimate(selection, profile)
	return e.assembler.Assemble(env, profile, compat, selection, cost)
}

// Report wraps an analysis in the envelope written by serve mode and the
// exporter, attaching capture warnings and a fresh report ID.
func (e *Engine) Report(env models.EnvironmentSpec, warnings []string) models.AnalysisReport {
	result, plan := e.Analyze(env)
	return models.AnalysisReport{
		ReportID:    uuid.NewString(),
		Environment: env.Name,
		Result:      result,
		Plan:        plan,
		Warnings:    warnings,
		CreatedAt:   time.Now().UTC(),
	}
}
