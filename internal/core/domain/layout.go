package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ManifestFileName is the name of the project manifest.
	ManifestFileName = "ppargo.yaml"
	// SourceDirName is the directory, relative to the project root, holding translation units.
	SourceDirName = "src"
	// IncludeDirName is the optional project-level public header directory.
	IncludeDirName = "include"
	// TargetDirName is the directory holding all build outputs.
	TargetDirName = "target"
	// ObjectDirName is the directory inside a profile directory that mirrors the source tree.
	ObjectDirName = "obj"
	// CompileCommandsFileName is the compilation database written at the project root.
	CompileCommandsFileName = "compile_commands.json"
	// JournalFileName is the per-profile record of the last build's steps.
	JournalFileName = "build.journal"

	// ObjectExt is the extension of compiled object files.
	ObjectExt = ".o"
	// DepfileExt is the extension of compiler-emitted dependency files.
	DepfileExt = ".d"
	// FingerprintExt is the extension of the per-object flag fingerprint.
	FingerprintExt = ".fp"

	// DirPerm is the default permission for directories created by the build.
	DirPerm = 0o750
	// FilePerm is the default permission for files written by the build.
	FilePerm = 0o644
)

// SourceExtensions lists the file extensions recognized as translation units.
var SourceExtensions = []string{".c", ".cc", ".cpp", ".cxx"}

// IsSourceFile reports whether path has a recognized translation unit extension.
func IsSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, candidate := range SourceExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// TargetDir returns the directory holding every profile's outputs.
func TargetDir(root string) string {
	return filepath.Join(root, TargetDirName)
}

// ProfileDir returns target/<profile> beneath root.
func ProfileDir(root string, profile Profile) string {
	return filepath.Join(TargetDir(root), profile.String())
}

// JournalPath returns target/<profile>/build.journal beneath root.
func JournalPath(root string, profile Profile) string {
	return filepath.Join(ProfileDir(root, profile), JournalFileName)
}

// ObjectRoot returns the object directory for a profile.
func ObjectRoot(root string, profile Profile) string {
	return filepath.Join(ProfileDir(root, profile), ObjectDirName)
}

// ObjectPath mirrors a source-tree relative path beneath objRoot with the object extension.
func ObjectPath(objRoot, treePath string) string {
	return filepath.Join(objRoot, replaceExt(treePath, ObjectExt))
}

// DepfilePath returns the dependency file that sits beside an object file.
func DepfilePath(objectPath string) string {
	return replaceExt(objectPath, DepfileExt)
}

// FingerprintPath returns the flag fingerprint file that sits beside an object file.
func FingerprintPath(objectPath string) string {
	return replaceExt(objectPath, FingerprintExt)
}

// BinaryName returns the executable file name for a project on the given OS.
func BinaryName(name, goos string) string {
	if goos == "windows" {
		return name + ".exe"
	}
	return name
}

// BinaryPath returns the artifact location for a project, platform and profile.
func BinaryPath(root, name, goos string, profile Profile) string {
	return filepath.Join(ProfileDir(root, profile), BinaryName(name, goos))
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
