// ABOUTME: Requirement profile derived from package classification
// ABOUTME: Aggregates per-category counts into memory/storage/GPU/MPI needs

package models

// RequirementProfile summarizes the resource demands of an environment.
// Derived fields never decrease as more qualifying packages are added.
type RequirementProfile struct {
	TotalPackages int `json:"total_packages"`

	// Per-category package counts. Categories are non-exclusive: one
	// package may contribute to several counts.
	MemoryIntensiveCount int `json:"memory_intensive_count"`
	GPUAcceleratedCount  int `json:"gpu_accelerated_count"`
	MPIEnabledCount      int `json:"mpi_enabled_count"`
	IOIntensiveCount     int `json:"io_intensive_count"`

	MemoryRequirementGB  int  `json:"memory_requirement_gb"`
	StorageRequirementGB int  `json:"storage_requirement_gb"`
	GPURequired          bool `json:"gpu_required"`
	MPIEnabled           bool `json:"mpi_enabled"`
}
