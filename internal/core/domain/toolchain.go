package domain

// ToolchainConfig is the resolved compiler and its flag set.
// It is built once per build and shared read-only by all workers.
type ToolchainConfig struct {
	Compiler          string
	StandardFlag      string
	OptimizationFlags []string
	WarningFlags      []string
	// Linker, when set, is passed to the driver as -fuse-ld.
	Linker string
	// LinkFlags are profile flags applied at the link step only.
	LinkFlags []string
}

// CompileFlags returns the unit independent part of every compile command.
func (t *ToolchainConfig) CompileFlags(includeDirs []string) []string {
	flags := make([]string, 0, 1+len(t.OptimizationFlags)+len(t.WarningFlags)+len(includeDirs))
	flags = append(flags, t.StandardFlag)
	flags = append(flags, t.OptimizationFlags...)
	flags = append(flags, t.WarningFlags...)
	for _, dir := range includeDirs {
		flags = append(flags, "-I"+dir)
	}
	return flags
}

// CompileArgs returns the compiler arguments for a single unit.
func (t *ToolchainConfig) CompileArgs(source, object, depfile string, includeDirs []string) []string {
	args := []string{"-c", source, "-o", object}
	args = append(args, t.CompileFlags(includeDirs)...)
	return append(args, "-MMD", "-MF", depfile)
}

// LinkArgs returns the driver arguments producing spec.OutputPath.
func (t *ToolchainConfig) LinkArgs(spec LinkSpec) []string {
	var args []string
	if t.Linker != "" {
		args = append(args, "-fuse-ld="+t.Linker)
	}
	args = append(args, spec.ObjectFiles...)
	for _, dir := range spec.LibrarySearchPaths {
		args = append(args, "-L"+dir)
	}
	for _, lib := range spec.LinkLibraryNames {
		args = append(args, "-l"+lib)
	}
	args = append(args, "-o", spec.OutputPath)
	return append(args, t.LinkFlags...)
}

// LinkSpec is everything the link step consumes.
type LinkSpec struct {
	ObjectFiles        []string
	LibrarySearchPaths []string
	LinkLibraryNames   []string
	OutputPath         string
}
