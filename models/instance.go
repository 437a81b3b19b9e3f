// ABOUTME: Instance catalog entry and selection result types
// ABOUTME: Describes EC2 candidates and the chosen instance configuration

package models

// Instance architecture tags. ArchX86 is the default family; ArchARM64
// (Graviton) is the lower-cost alternate, subject to compatibility.
const (
	ArchX86   = "x86_64"
	ArchARM64 = "arm64"
)

// Instance category tags used by the selection filters.
const (
	CategoryCompute = "compute"
	CategoryMemory  = "memory"
	CategoryHPC     = "hpc"
	CategoryGPU     = "gpu"
)

// GPUSpec describes the accelerator attached to a GPU instance.
type GPUSpec struct {
	Model    string `json:"model"`
	Count    int    `json:"count"`
	MemoryGB int    `json:"memory_gb"`
}

// InstanceType is a static catalog entry for one EC2 instance type.
// Catalog entries are loaded once at engine construction and never mutated.
type InstanceType struct {
	Name         string   `json:"name"`
	VCPUs        int      `json:"vcpus"`
	MemoryGB     int      `json:"memory_gb"`
	Architecture string   `json:"architecture"`
	HourlyPrice  float64  `json:"hourly_price"`
	Category     string   `json:"category"`
	GPU          *GPUSpec `json:"gpu,omitempty"`

	// Graviton marks the preferred (lower-cost) architecture family.
	Graviton bool `json:"graviton"`
}

// InstanceSelection is the chosen instance configuration for an environment.
type InstanceSelection struct {
	Instance      InstanceType `json:"instance"`
	InstanceCount int          `json:"instance_count"`

	// Echoed for downstream consumers (cost model, plan assembler).
	TotalMemoryGB int    `json:"total_memory_gb"`
	Architecture  string `json:"architecture"`
}
