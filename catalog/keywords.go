// ABOUTME: Classification keyword lists for scientific package names
// ABOUTME: Substring matches bucket packages into resource categories

package catalog

// defaultKeywords returns the built-in classification lists. A package may
// match several categories; matching is case-folded substring containment.
func defaultKeywords() Keywords {
	return Keywords{
		// Large-model codes that routinely exhaust node memory.
		MemoryIntensive: []string{
			"wrf", "cesm", "openfoam", "vasp", "quantum-espresso",
			"cp2k", "nwchem", "gaussian", "abinit", "siesta",
		},
		// CUDA toolchain and frameworks that expect an accelerator.
		GPUAccelerated: []string{
			"cuda", "cudnn", "nccl", "tensorflow", "pytorch",
			"rocm", "magma",
		},
		// Message-passing stacks and solvers built on them. "mpi" also
		// covers openmpi, mpich, mvapich, intel-mpi.
		MPIEnabled: []string{
			"mpi", "ucx", "libfabric", "scalapack", "petsc", "trilinos",
		},
		// Heavy I/O formats and parallel filesystem clients.
		IOIntensive: []string{
			"hdf5", "netcdf", "adios", "lustre", "darshan",
		},
	}
}
