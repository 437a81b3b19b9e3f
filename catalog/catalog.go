// ABOUTME: Static analysis catalogs: instances, keywords, architecture rules
// ABOUTME: Loaded once at engine construction, optionally overridden from YAML

package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// Keywords holds the four classification keyword lists. Matching is
// case-folded substring containment against the package name.
type Keywords struct {
	MemoryIntensive []string
	GPUAccelerated  []string
	MPIEnabled      []string
	IOIntensive     []string
}

// ArchitectureRules holds the Graviton compatibility lists. The deny list
// takes precedence over the allow list: one deny match marks the whole
// environment incompatible.
type ArchitectureRules struct {
	Deny   []string
	Allow  []string
	Boosts map[string]float64
}

// Catalog bundles all static configuration the engine needs. It is
// read-only after construction; inject a synthetic one in tests.
type Catalog struct {
	Instances    []models.InstanceType
	Keywords     Keywords
	Architecture ArchitectureRules
}

// Default returns the built-in production catalog.
func Default() *Catalog {
	return &Catalog{
		Instances:    defaultInstances(),
		Keywords:     defaultKeywords(),
		Architecture: defaultArchitectureRules(),
	}
}

// instanceFile is the YAML shape for catalog override files.
type instanceFile struct {
	Name         string  `yaml:"name"`
	VCPUs        int     `yaml:"vcpus"`
	MemoryGB     int     `yaml:"memory_gb"`
	Architecture string  `yaml:"architecture"`
	HourlyPrice  float64 `yaml:"hourly_price"`
	Category     string  `yaml:"category"`
	Graviton     bool    `yaml:"graviton"`
	GPU          *struct {
		Model    string `yaml:"model"`
		Count    int    `yaml:"count"`
		MemoryGB int    `yaml:"memory_gb"`
	} `yaml:"gpu"`
}

type catalogFile struct {
	Instances []instanceFile `yaml:"instances"`
	Keywords  struct {
		MemoryIntensive []string `yaml:"memory_intensive"`
		GPUAccelerated  []string `yaml:"gpu_accelerated"`
		MPIEnabled      []string `yaml:"mpi_enabled"`
		IOIntensive     []string `yaml:"io_intensive"`
	} `yaml:"keywords"`
	Architecture struct {
		Deny   []string           `yaml:"deny"`
		Allow  []string           `yaml:"allow"`
		Boosts map[string]float64 `yaml:"boosts"`
	} `yaml:"architecture"`
}

// Load reads a YAML override file and merges it over the defaults.
// Sections present in the file replace the corresponding default section
// wholesale; absent sections keep the built-ins.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	c := Default()

	if len(f.Instances) > 0 {
		instances := make([]models.InstanceType, 0, len(f.Instances))
		for _, in := range f.Instances {
			if in.Name == "" || in.MemoryGB <= 0 || in.HourlyPrice <= 0 {
				return nil, fmt.Errorf("catalog instance %q: name, memory_gb, and hourly_price are required", in.Name)
			}
			it := models.InstanceType{
				Name:         in.Name,
				VCPUs:        in.VCPUs,
				MemoryGB:     in.MemoryGB,
				Architecture: in.Architecture,
				HourlyPrice:  in.HourlyPrice,
				Category:     in.Category,
				Graviton:     in.Graviton,
			}
			if it.Architecture == "" {
				it.Architecture = models.ArchX86
			}
			if in.GPU != nil {
				it.GPU = &models.GPUSpec{
					Model:    in.GPU.Model,
					Count:    in.GPU.Count,
					MemoryGB: in.GPU.MemoryGB,
				}
			}
			instances = append(instances, it)
		}
		c.Instances = instances
	}

	if len(f.Keywords.MemoryIntensive) > 0 {
		c.Keywords.MemoryIntensive = f.Keywords.MemoryIntensive
	}
	if len(f.Keywords.GPUAccelerated) > 0 {
		c.Keywords.GPUAccelerated = f.Keywords.GPUAccelerated
	}
	if len(f.Keywords.MPIEnabled) > 0 {
		c.Keywords.MPIEnabled = f.Keywords.MPIEnabled
	}
	if len(f.Keywords.IOIntensive) > 0 {
		c.Keywords.IOIntensive = f.Keywords.IOIntensive
	}

	if len(f.Architecture.Deny) > 0 {
		c.Architecture.Deny = f.Architecture.Deny
	}
	if len(f.Architecture.Allow) > 0 {
		c.Architecture.Allow = f.Architecture.Allow
	}
	if len(f.Architecture.Boosts) > 0 {
		c.Architecture.Boosts = f.Architecture.Boosts
	}

	return c, nil
}
