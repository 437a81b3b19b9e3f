// ABOUTME: Graviton compatibility lists and performance boost table
// ABOUTME: Deny list trumps allow list; boosts are relative to x86_64

package catalog

// defaultArchitectureRules returns the built-in arm64 compatibility data.
func defaultArchitectureRules() ArchitectureRules {
	return ArchitectureRules{
		// x86-only toolchains and accelerator stacks. Any match here
		// rules out a Graviton target for the whole environment.
		Deny: []string{
			"intel-mkl", "intel-oneapi", "intel-mpi", "intel-tbb",
			"intel-parallel-studio", "nvhpc", "pgi", "cuda",
		},
		// Packages with first-class arm64 support in upstream or in
		// the spack aarch64 build farm.
		Allow: []string{
			"gcc", "llvm", "openmpi", "mpich", "openblas", "fftw",
			"hdf5", "netcdf", "gromacs", "lammps", "openfoam", "wrf",
			"petsc", "python", "cmake", "boost", "zlib",
		},
		// Observed speedups on Graviton3 vs comparable x86 instances,
		// keyed by substring match against the package name.
		Boosts: map[string]float64{
			"openblas": 1.35,
			"gromacs":  1.30,
			"lammps":   1.25,
			"openfoam": 1.25,
			"wrf":      1.20,
			"fftw":     1.15,
			"hdf5":     1.10,
		},
	}
}
