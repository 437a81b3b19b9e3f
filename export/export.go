// ABOUTME: Renders an analysis report into migration artifacts on disk
// ABOUTME: Terraform, Dockerfile, deploy script, guide, and cost JSON

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// Exporter writes the text artifacts for one analysis report.
type Exporter struct {
	region string
}

// NewExporter creates an exporter labeling artifacts with the pricing region.
func NewExporter(region string) *Exporter {
	return &Exporter{region: region}
}

// templateData is the context every template renders against.
type templateData struct {
	Report models.AnalysisReport
	Plan   models.MigrationPlan
	Region string
}

// WriteAll renders every artifact into dir, creating it if needed.
// The Dockerfile is only written when the plan recommends containers.
func (e *Exporter) WriteAll(dir string, report models.AnalysisReport) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	data := templateData{
		Report: report,
		Plan:   report.Plan,
		Region: e.region,
	}

	artifacts := []struct {
		name string
		tmpl *template.Template
	}{
		{"main.tf", terraformTmpl},
		{"deploy.sh", deployScriptTmpl},
		{"MIGRATION_GUIDE.md", guideTmpl},
	}
	if report.Plan.Container.Recommended {
		artifacts = append(artifacts, struct {
			name string
			tmpl *template.Template
		}{"Dockerfile", dockerfileTmpl})
	}

	for _, a := range artifacts {
		if err := e.render(filepath.Join(dir, a.name), a.tmpl, data); err != nil {
			return err
		}
	}

	if err := e.writeCostJSON(filepath.Join(dir, "cost-analysis.json"), report); err != nil {
		return err
	}

	slog.Info("Artifacts written", "dir", dir, "environment", report.Environment)
	return nil
}

func (e *Exporter) render(path string, tmpl *template.Template, data templateData) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}
	mode := os.FileMode(0o644)
	if filepath.Ext(path) == ".sh" {
		mode = 0o755
	}
	if err := os.WriteFile(path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeCostJSON emits the cost estimate and scenario table as data.
func (e *Exporter) writeCostJSON(path string, report models.AnalysisReport) error {
	out := struct {
		ReportID    string              `json:"report_id"`
		Environment string              `json:"environment"`
		Region      string              `json:"region"`
		Cost        models.CostEstimate `json:"cost"`
	}{
		ReportID:    report.ReportID,
		Environment: report.Environment,
		Region:      e.region,
		Cost:        report.Result.Cost,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling cost analysis: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
