package config

import (
	"gopkg.in/yaml.v3"
)

// ManifestFile represents the structure of the ppargo.yaml manifest.
type ManifestFile struct {
	Package      PackageDTO               `yaml:"package"`
	Toolchain    ToolchainDTO             `yaml:"toolchain"`
	Dependencies map[string]DependencyDTO `yaml:"dependencies"`
	Features     FeaturesDTO              `yaml:"features"`
	Build        BuildDTO                 `yaml:"build"`
}

// PackageDTO identifies the project.
type PackageDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Edition string `yaml:"edition"`
}

// ToolchainDTO names the compiler and linker.
type ToolchainDTO struct {
	Compiler string `yaml:"compiler"`
	Linker   string `yaml:"linker"`
}

// FeaturesDTO selects the package backend.
type FeaturesDTO struct {
	PackageManager string `yaml:"package_manager"`
	VcpkgRoot      string `yaml:"vcpkg_root"`
}

// BuildDTO holds build toggles.
type BuildDTO struct {
	CompileCommands bool `yaml:"compile_commands"`
}

// DependencyDTO is either a bare version string or a detail mapping.
type DependencyDTO struct {
	Version string   `yaml:"version"`
	Libs    []string `yaml:"libs"`
}

// UnmarshalYAML accepts both `fmt: "10.2.1"` and `fmt: {version: ..., libs: [...]}`.
func (d *DependencyDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&d.Version)
	}

	type plain DependencyDTO
	var detail plain
	if err := value.Decode(&detail); err != nil {
		return err
	}
	*d = DependencyDTO(detail)
	return nil
}
