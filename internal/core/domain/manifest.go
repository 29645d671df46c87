package domain

// Default manifest values.
const (
	DefaultEdition        = "cpp17"
	DefaultCompiler       = "clang++"
	PackageManagerNone    = "none"
	PackageManagerVcpkg   = "vcpkg"
	DefaultPackageManager = PackageManagerNone
)

// Manifest is the project description consumed by the build engine.
type Manifest struct {
	// Root is the directory that contains the manifest file.
	Root         string
	Package      PackageInfo
	Toolchain    ToolchainSettings
	Dependencies []Dependency
	Features     Features
	Build        BuildSettings
}

// PackageInfo identifies the project.
type PackageInfo struct {
	Name    string
	Version string
	Edition string
}

// ToolchainSettings names the executables the project wants to use.
type ToolchainSettings struct {
	Compiler string
	Linker   string
}

// Features selects optional integrations.
type Features struct {
	PackageManager string
	VcpkgRoot      string
}

// BuildSettings holds build behaviour toggles.
type BuildSettings struct {
	CompileCommands bool
}

// Dependency is a declared third-party package.
type Dependency struct {
	Name    string
	Version string
	// Libs overrides the libraries linked for this dependency.
	Libs []string
}

// LinkLibraries returns the library names this dependency contributes to the link.
func (d Dependency) LinkLibraries() []string {
	if len(d.Libs) == 0 {
		return []string{d.Name}
	}
	return d.Libs
}

// LinkLibraries returns the link libraries of every dependency in declaration order.
func (m *Manifest) LinkLibraries() []string {
	var libs []string
	for _, dep := range m.Dependencies {
		libs = append(libs, dep.LinkLibraries()...)
	}
	return libs
}
