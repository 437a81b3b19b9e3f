// ABOUTME: Tests for the package classifier
// ABOUTME: Validates category counts, sizing rules, and monotonicity

package services

import (
	"testing"

	"github.com/scttfrdmn/aws-research-wizard-sub000/catalog"
	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

func refs(names ...string) []models.PackageRef {
	out := make([]models.PackageRef, len(names))
	for i, n := range names {
		out[i] = models.PackageRef{Name: n}
	}
	return out
}

func newClassifier() *PackageClassifier {
	return NewPackageClassifier(catalog.Default().Keywords)
}

func TestClassify_EmptyEnvironment(t *testing.T) {
	// Empty package list yields the baseline profile.
	profile := newClassifier().Classify(nil)

	if profile.TotalPackages != 0 {
		t.Errorf("Expected TotalPackages 0, got %d", profile.TotalPackages)
	}
	if profile.MemoryRequirementGB != 8 {
		t.Errorf("Expected baseline MemoryRequirementGB 8, got %d", profile.MemoryRequirementGB)
	}
	if profile.StorageRequirementGB != 100 {
		t.Errorf("Expected baseline StorageRequirementGB 100, got %d", profile.StorageRequirementGB)
	}
	if profile.GPURequired {
		t.Error("Expected GPURequired false for empty environment")
	}
	if profile.MPIEnabled {
		t.Error("Expected MPIEnabled false for empty environment")
	}
}

func TestClassify_WeatherModelEnvironment(t *testing.T) {
	// gcc: no category. openmpi: MPI ("mpi" substring).
	// netcdf-c: I/O ("netcdf"). wrf: memory-intensive.
	// Memory: base 8 -> 32 (memory-intensive present); MPI floor 16 is
	// below 32; only 1 memory-intensive package, so no doubling. = 32
	// Storage: 1 I/O package -> 500; no doubling. = 500
	profile := newClassifier().Classify(refs("gcc", "openmpi", "netcdf-c", "wrf"))

	if profile.TotalPackages != 4 {
		t.Errorf("Expected TotalPackages 4, got %d", profile.TotalPackages)
	}
	if !profile.MPIEnabled {
		t.Error("Expected MPIEnabled true (openmpi)")
	}
	if profile.GPURequired {
		t.Error("Expected GPURequired false")
	}
	if profile.MemoryIntensiveCount != 1 {
		t.Errorf("Expected MemoryIntensiveCount 1 (wrf), got %d", profile.MemoryIntensiveCount)
	}
	if profile.MemoryRequirementGB != 32 {
		t.Errorf("Expected MemoryRequirementGB 32, got %d", profile.MemoryRequirementGB)
	}
	if profile.StorageRequirementGB != 500 {
		t.Errorf("Expected StorageRequirementGB 500, got %d", profile.StorageRequirementGB)
	}
}

func TestClassify_MPIOnlyFloor(t *testing.T) {
	// MPI present with no memory-intensive or GPU packages: 8 -> 16.
	profile := newClassifier().Classify(refs("openmpi", "gcc"))

	if profile.MemoryRequirementGB != 16 {
		t.Errorf("Expected MemoryRequirementGB 16, got %d", profile.MemoryRequirementGB)
	}
}

func TestClassify_GPURaisesMemory(t *testing.T) {
	// GPU package raises memory to 32 even without memory-intensive codes.
	profile := newClassifier().Classify(refs("cuda", "gcc"))

	if !profile.GPURequired {
		t.Error("Expected GPURequired true (cuda)")
	}
	if profile.MemoryRequirementGB != 32 {
		t.Errorf("Expected MemoryRequirementGB 32, got %d", profile.MemoryRequirementGB)
	}
}

func TestClassify_MemoryDoubling(t *testing.T) {
	// 4 memory-intensive packages (> 3): 32 doubled to 64.
	profile := newClassifier().Classify(refs("wrf", "cesm", "vasp", "cp2k"))

	if profile.MemoryIntensiveCount != 4 {
		t.Errorf("Expected MemoryIntensiveCount 4, got %d", profile.MemoryIntensiveCount)
	}
	if profile.MemoryRequirementGB != 64 {
		t.Errorf("Expected MemoryRequirementGB 64, got %d", profile.MemoryRequirementGB)
	}
}

func TestClassify_StorageDoubling(t *testing.T) {
	// 3 I/O packages (> 2): 500 doubled to 1000.
	profile := newClassifier().Classify(refs("hdf5", "netcdf-c", "adios2"))

	if profile.IOIntensiveCount != 3 {
		t.Errorf("Expected IOIntensiveCount 3, got %d", profile.IOIntensiveCount)
	}
	if profile.StorageRequirementGB != 1000 {
		t.Errorf("Expected StorageRequirementGB 1000, got %d", profile.StorageRequirementGB)
	}
}

func TestClassify_NonExclusiveCategories(t *testing.T) {
	// One package may land in several categories independently: with a
	// synthetic keyword set, "wrf-io" is both memory-intensive and I/O.
	c := NewPackageClassifier(catalog.Keywords{
		MemoryIntensive: []string{"wrf"},
		IOIntensive:     []string{"io"},
	})
	profile := c.Classify(refs("wrf-io"))

	if profile.MemoryIntensiveCount != 1 {
		t.Errorf("Expected MemoryIntensiveCount 1, got %d", profile.MemoryIntensiveCount)
	}
	if profile.IOIntensiveCount != 1 {
		t.Errorf("Expected IOIntensiveCount 1, got %d", profile.IOIntensiveCount)
	}
	if profile.TotalPackages != 1 {
		t.Errorf("Expected TotalPackages 1, got %d", profile.TotalPackages)
	}
}

func TestClassify_MemoryMonotonic(t *testing.T) {
	// Adding memory-intensive or GPU packages never lowers the memory
	// requirement.
	c := newClassifier()
	base := refs("gcc", "openmpi")
	additions := []string{"wrf", "cesm", "vasp", "cp2k", "nwchem", "cuda"}

	prev := c.Classify(base).MemoryRequirementGB
	pkgs := base
	for _, add := range additions {
		pkgs = append(pkgs, models.PackageRef{Name: add})
		cur := c.Classify(pkgs).MemoryRequirementGB
		if cur < prev {
			t.Errorf("Memory requirement decreased from %d to %d after adding %s", prev, cur, add)
		}
		prev = cur
	}
}

func TestClassify_CaseFolding(t *testing.T) {
	// Matching is case-insensitive on the package name.
	profile := newClassifier().Classify(refs("WRF", "OpenMPI"))

	if profile.MemoryIntensiveCount != 1 {
		t.Errorf("Expected MemoryIntensiveCount 1 for WRF, got %d", profile.MemoryIntensiveCount)
	}
	if !profile.MPIEnabled {
		t.Error("Expected MPIEnabled true for OpenMPI")
	}
}
