// ABOUTME: Text templates for the exported migration artifacts
// ABOUTME: Terraform, Dockerfile, deploy script, and migration guide

package export

import "text/template"

var terraformTmpl = template.Must(template.New("terraform").Parse(`# Generated by aws-research-wizard for environment "{{.Plan.Source.EnvironmentName}}"
# Region: {{.Region}}

provider "aws" {
  region = "{{.Region}}"
}

resource "aws_instance" "research" {
  count         = {{.Plan.Target.InstanceCount}}
  instance_type = "{{.Plan.Target.InstanceType}}"
  ami           = data.aws_ami.base.id

  root_block_device {
    volume_type = "gp3"
    volume_size = {{.Plan.Target.StorageGB}}
  }

  tags = {
    Name        = "{{.Plan.Source.EnvironmentName}}-{{"${count.index}"}}"
    Environment = "{{.Plan.Source.EnvironmentName}}"
    ManagedBy   = "aws-research-wizard"
  }
}

data "aws_ami" "base" {
  most_recent = true
  owners      = ["amazon"]

  filter {
    name   = "name"
    values = ["al2023-ami-*"]
  }

  filter {
    name   = "architecture"
    values = ["{{.Plan.Target.Architecture}}"]
  }
}
{{- if gt .Plan.Target.InstanceCount 1}}

resource "aws_placement_group" "mpi" {
  name     = "{{.Plan.Source.EnvironmentName}}-pg"
  strategy = "cluster"
}
{{- end}}
`))

var dockerfileTmpl = template.Must(template.New("dockerfile").Parse(`# Generated by aws-research-wizard for environment "{{.Plan.Source.EnvironmentName}}"
FROM {{.Plan.Container.BaseImage}}

RUN apt-get update && apt-get install -y build-essential git python3 curl \
    && rm -rf /var/lib/apt/lists/*

RUN git clone --depth=1 https://github.com/spack/spack.git /opt/spack
ENV PATH=/opt/spack/bin:$PATH

COPY spack.yaml /env/spack.yaml
WORKDIR /env
RUN spack env activate . && spack install --no-check-signature

ENTRYPOINT ["spack", "env", "activate", "."]
`))

var deployScriptTmpl = template.Must(template.New("deploy").Parse(`#!/usr/bin/env bash
# Generated by aws-research-wizard for environment "{{.Plan.Source.EnvironmentName}}"
set -euo pipefail

INSTANCE_TYPE="{{.Plan.Target.InstanceType}}"
INSTANCE_COUNT={{.Plan.Target.InstanceCount}}
ARCH="{{.Plan.Target.Architecture}}"

echo "Provisioning ${INSTANCE_COUNT}x ${INSTANCE_TYPE} (${ARCH})"
terraform init
terraform apply -auto-approve

echo "Bootstrapping spack on target instance(s)"
# See MIGRATION_GUIDE.md for the per-phase steps.
{{- range .Plan.BinaryCache.Steps}}
echo "TODO: {{.}}"
{{- end}}
`))

var guideTmpl = template.Must(template.New("guide").Parse(`# Migration Guide: {{.Plan.Source.EnvironmentName}}

Report {{.Report.ReportID}}, generated {{.Report.CreatedAt.Format "2006-01-02 15:04 MST"}}.

## Source environment

- System: {{.Plan.Source.SourceSystem}}
- Packages: {{.Plan.Source.TotalPackages}}
- Compilers: {{range $i, $c := .Plan.Source.Compilers}}{{if $i}}, {{end}}{{$c}}{{end}}

## Target configuration

- Instance: {{.Plan.Target.InstanceCount}}x {{.Plan.Target.InstanceType}} ({{.Plan.Target.Architecture}})
- Memory: {{.Plan.Target.MemoryGB}} GB total
- Storage: {{.Plan.Target.StorageGB}} GB gp3

## Performance

{{.Plan.Performance.Summary}}

## Cost

- Hourly: ${{printf "%.2f" .Plan.Cost.HourlyCost}}
- Monthly at 30% utilization: ${{printf "%.2f" .Plan.Cost.MonthlyAt30Pct}}
- Spot hourly: ${{printf "%.2f" .Plan.Cost.SpotHourly}}
- 1-year reserved hourly: ${{printf "%.2f" .Plan.Cost.ReservedHourly}}

## Optimization notes
{{range .Report.Result.OptimizationNotes}}
- {{.}}
{{- end}}

## Recommended services

{{range $i, $s := .Report.Result.RecommendedServices}}{{if $i}}, {{end}}{{$s}}{{end}}

## Phases
{{range .Plan.Phases}}
### {{.Name}} ({{.Duration}})
{{range .Steps}}
1. {{.}}
{{- end}}
{{end}}
## Validation tests
{{range .Plan.ValidationTests}}
- [ ] {{.}}
{{- end}}
{{- if .Report.Warnings}}

## Capture warnings
{{range .Report.Warnings}}
- {{.}}
{{- end}}
{{- end}}
`))
