// ABOUTME: Built-in EC2 instance catalog with on-demand pricing
// ABOUTME: Covers general, compute, memory, HPC, Graviton, and GPU families

package catalog

import "github.com/scttfrdmn/aws-research-wizard-sub000/models"

// FallbackInstance is returned by the selector when no catalog entry
// survives filtering: a general-purpose instance with moderate memory.
var FallbackInstance = models.InstanceType{
	Name:         "m6i.2xlarge",
	VCPUs:        8,
	MemoryGB:     32,
	Architecture: models.ArchX86,
	HourlyPrice:  0.384,
	Category:     models.CategoryCompute,
}

// defaultInstances returns the built-in catalog. Prices are us-east-1
// on-demand Linux rates, rounded; override via a catalog file to re-price.
func defaultInstances() []models.InstanceType {
	return []models.InstanceType{
		// General purpose / compute, x86_64
		{Name: "m6i.xlarge", VCPUs: 4, MemoryGB: 16, Architecture: models.ArchX86, HourlyPrice: 0.192, Category: models.CategoryCompute},
		{Name: "m6i.2xlarge", VCPUs: 8, MemoryGB: 32, Architecture: models.ArchX86, HourlyPrice: 0.384, Category: models.CategoryCompute},
		{Name: "m6i.4xlarge", VCPUs: 16, MemoryGB: 64, Architecture: models.ArchX86, HourlyPrice: 0.768, Category: models.CategoryCompute},
		{Name: "c6i.4xlarge", VCPUs: 16, MemoryGB: 32, Architecture: models.ArchX86, HourlyPrice: 0.680, Category: models.CategoryCompute},
		{Name: "c6i.8xlarge", VCPUs: 32, MemoryGB: 64, Architecture: models.ArchX86, HourlyPrice: 1.360, Category: models.CategoryCompute},

		// Memory optimized, x86_64
		{Name: "r6i.2xlarge", VCPUs: 8, MemoryGB: 64, Architecture: models.ArchX86, HourlyPrice: 0.504, Category: models.CategoryMemory},
		{Name: "r6i.4xlarge", VCPUs: 16, MemoryGB: 128, Architecture: models.ArchX86, HourlyPrice: 1.008, Category: models.CategoryMemory},
		{Name: "r6i.8xlarge", VCPUs: 32, MemoryGB: 256, Architecture: models.ArchX86, HourlyPrice: 2.016, Category: models.CategoryMemory},
		{Name: "r6i.16xlarge", VCPUs: 64, MemoryGB: 512, Architecture: models.ArchX86, HourlyPrice: 4.032, Category: models.CategoryMemory},

		// HPC
		{Name: "hpc6a.48xlarge", VCPUs: 96, MemoryGB: 384, Architecture: models.ArchX86, HourlyPrice: 2.880, Category: models.CategoryHPC},
		{Name: "hpc7g.16xlarge", VCPUs: 64, MemoryGB: 128, Architecture: models.ArchARM64, HourlyPrice: 1.683, Category: models.CategoryHPC, Graviton: true},

		// Graviton general/compute/memory
		{Name: "m7g.4xlarge", VCPUs: 16, MemoryGB: 64, Architecture: models.ArchARM64, HourlyPrice: 0.653, Category: models.CategoryCompute, Graviton: true},
		{Name: "c7g.8xlarge", VCPUs: 32, MemoryGB: 64, Architecture: models.ArchARM64, HourlyPrice: 1.160, Category: models.CategoryCompute, Graviton: true},
		{Name: "c7g.16xlarge", VCPUs: 64, MemoryGB: 128, Architecture: models.ArchARM64, HourlyPrice: 2.320, Category: models.CategoryCompute, Graviton: true},
		{Name: "r7g.4xlarge", VCPUs: 16, MemoryGB: 128, Architecture: models.ArchARM64, HourlyPrice: 0.857, Category: models.CategoryMemory, Graviton: true},
		{Name: "r7g.8xlarge", VCPUs: 32, MemoryGB: 256, Architecture: models.ArchARM64, HourlyPrice: 1.714, Category: models.CategoryMemory, Graviton: true},

		// GPU, x86_64
		{Name: "g4dn.xlarge", VCPUs: 4, MemoryGB: 16, Architecture: models.ArchX86, HourlyPrice: 0.526, Category: models.CategoryGPU,
			GPU: &models.GPUSpec{Model: "NVIDIA T4", Count: 1, MemoryGB: 16}},
		{Name: "g4dn.12xlarge", VCPUs: 48, MemoryGB: 192, Architecture: models.ArchX86, HourlyPrice: 3.912, Category: models.CategoryGPU,
			GPU: &models.GPUSpec{Model: "NVIDIA T4", Count: 4, MemoryGB: 64}},
		{Name: "g5.8xlarge", VCPUs: 32, MemoryGB: 128, Architecture: models.ArchX86, HourlyPrice: 2.448, Category: models.CategoryGPU,
			GPU: &models.GPUSpec{Model: "NVIDIA A10G", Count: 1, MemoryGB: 24}},
		{Name: "p3.8xlarge", VCPUs: 32, MemoryGB: 244, Architecture: models.ArchX86, HourlyPrice: 12.240, Category: models.CategoryGPU,
			GPU: &models.GPUSpec{Model: "NVIDIA V100", Count: 4, MemoryGB: 64}},
	}
}
