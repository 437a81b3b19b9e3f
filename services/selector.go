// ABOUTME: Instance selector filtering and scoring catalog candidates
// ABOUTME: Memory-per-dollar scoring with a Graviton bonus and a safe fallback

package services

import (
	"sort"

	"github.com/scttfrdmn/aws-research-wizard-sub000/catalog"
	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// GravitonScoreBonus multiplies the score of preferred-architecture
// candidates when the environment is compatible with them.
const GravitonScoreBonus = 1.5

// InstanceSelector picks the best instance configuration from a catalog.
type InstanceSelector struct {
	instances []models.InstanceType
}

// NewInstanceSelector creates a selector over the given catalog entries.
func NewInstanceSelector(instances []models.InstanceType) *InstanceSelector {
	return &InstanceSelector{instances: instances}
}

// Select filters the catalog against the profile, scores the survivors by
// memory per dollar, and returns the winner. Never fails: when nothing
// survives filtering it returns the documented general-purpose fallback.
func (s *InstanceSelector) Select(profile models.RequirementProfile, compat models.CompatibilityResult) models.InstanceSelection {
	eligible := s.filter(profile, compat)

	var chosen models.InstanceType
	if len(eligible) == 0 {
		chosen = catalog.FallbackInstance
	} else {
		// Stable sort: catalog order breaks score ties.
		sort.SliceStable(eligible, func(i, j int) bool {
			return s.score(eligible[i], compat) > s.score(eligible[j], compat)
		})
		chosen = eligible[0]
	}

	count := instanceCount(profile)

	return models.InstanceSelection{
		Instance:      chosen,
		InstanceCount: count,
		TotalMemoryGB: chosen.MemoryGB * count,
		Architecture:  chosen.Architecture,
	}
}

// filter applies the four eligibility rules. Both the category and the
// architecture filter apply unconditionally; the fallback covers the case
// where their intersection is empty.
func (s *InstanceSelector) filter(profile models.RequirementProfile, compat models.CompatibilityResult) []models.InstanceType {
	var eligible []models.InstanceType
	for _, inst := range s.instances {
		// GPU presence must match exactly: CPU-only environments do
		// not pay for an idle accelerator.
		if (inst.GPU != nil) != profile.GPURequired {
			continue
		}
		if inst.MemoryGB < profile.MemoryRequirementGB {
			continue
		}
		if profile.MPIEnabled && profile.TotalPackages > 20 {
			if inst.Category != models.CategoryHPC && inst.Category != models.CategoryCompute {
				continue
			}
		}
		if inst.Architecture != models.ArchX86 && !compat.Compatible {
			continue
		}
		eligible = append(eligible, inst)
	}
	return eligible
}

// score is memory GB per hourly dollar, with a bonus for Graviton
// candidates when the environment can actually run on them.
func (s *InstanceSelector) score(inst models.InstanceType, compat models.CompatibilityResult) float64 {
	score := float64(inst.MemoryGB) / inst.HourlyPrice
	if inst.Graviton && compat.Compatible {
		score *= GravitonScoreBonus
	}
	return score
}

// instanceCount applies the horizontal scaling rule. Only MPI workloads
// scale out; everything else runs on a single instance.
func instanceCount(profile models.RequirementProfile) int {
	if !profile.MPIEnabled || profile.TotalPackages <= 30 {
		return 1
	}
	if profile.MemoryIntensiveCount > 5 {
		return clampInt(profile.TotalPackages/20, 2, 8)
	}
	return clampInt(profile.TotalPackages/25, 2, 4)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
