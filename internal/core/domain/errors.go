package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrManifestNotFound is returned when no manifest exists in the working directory or any parent.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrInvalidManifest is returned when the manifest cannot be parsed or misses required fields.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrCompilerNotFound is returned when the configured compiler is not on the search path.
	ErrCompilerNotFound = zerr.New("compiler not found")

	// ErrUnknownPackageBackend is returned when the manifest selects an unsupported package manager.
	ErrUnknownPackageBackend = zerr.New("unknown package backend")

	// ErrPackageRootUnset is returned when a package backend requires a root directory that was not configured.
	ErrPackageRootUnset = zerr.New("package backend root is not set")

	// ErrMissingSourceDirectory is returned when the project has no source directory.
	ErrMissingSourceDirectory = zerr.New("source directory not found")

	// ErrEmptySourceSet is returned when the source directory holds no compilable files.
	ErrEmptySourceSet = zerr.New("no source files found")

	// ErrObjectPathCollision is returned when two sources map to the same object file.
	ErrObjectPathCollision = zerr.New("object path collision")

	// ErrCompilationFailed is returned when the compiler exits unsuccessfully for a unit.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrLinkFailed is returned when the linker exits unsuccessfully.
	ErrLinkFailed = zerr.New("link failed")

	// ErrBuildFailed is returned by the application layer when a build does not produce an artifact.
	ErrBuildFailed = zerr.New("build failed")
)

var configErrors = []error{
	ErrManifestNotFound,
	ErrInvalidManifest,
	ErrCompilerNotFound,
	ErrUnknownPackageBackend,
	ErrPackageRootUnset,
}

// IsConfigError reports whether err stems from project or toolchain misconfiguration.
func IsConfigError(err error) bool {
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ProgramExitCodeKey is the metadata key carrying the status a user program
// exited with under the run command.
const ProgramExitCodeKey = "program_exit_code"

// Diagnostics returns the captured process stderr attached anywhere in the error chain.
func Diagnostics(err error) string {
	stderr, _ := metadata(err, "stderr").(string)
	return stderr
}

// CommandExitCode returns the non-zero status of a failed child process
// attached anywhere in the error chain.
func CommandExitCode(err error) (int, bool) {
	code, ok := metadata(err, "exit_code").(int)
	return code, ok && code > 0
}

// ProgramExitCode returns the status the run command's program exited with.
func ProgramExitCode(err error) (int, bool) {
	code, ok := metadata(err, ProgramExitCodeKey).(int)
	return code, ok && code > 0
}

// metadata returns the first non-empty value stored under key in the chain.
func metadata(err error, key string) any {
	for err != nil {
		if z, ok := err.(*zerr.Error); ok { //nolint:errorlint // walking the chain manually
			if v, ok := z.Metadata()[key]; ok && v != nil && v != "" {
				return v
			}
		}
		err = errors.Unwrap(err)
	}
	return nil
}
