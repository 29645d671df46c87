package domain

import "time"

// BuildOptions are the per-invocation switches of a build.
type BuildOptions struct {
	Profile Profile
	// Jobs bounds compile parallelism. Zero means one job per CPU.
	Jobs            int
	CompileCommands bool
}

// BuildContext is the immutable state of one build invocation.
// It is constructed once, before any filesystem side effect, and passed by
// reference to every stage.
type BuildContext struct {
	Root      string
	Manifest  *Manifest
	Profile   Profile
	GOOS      string
	Toolchain *ToolchainConfig
	Packages  PackagePathSet
	// IncludeDirs is the project include dir (if present) followed by package include dirs.
	IncludeDirs []string
	Jobs        int
	// Fingerprint identifies the compile flag set. Empty disables fingerprint checks.
	Fingerprint string
}

// ObjectRoot returns the object directory of this build's profile.
func (c *BuildContext) ObjectRoot() string {
	return ObjectRoot(c.Root, c.Profile)
}

// ProfileDir returns target/<profile> of this build.
func (c *BuildContext) ProfileDir() string {
	return ProfileDir(c.Root, c.Profile)
}

// JournalPath returns the step journal of this build's profile.
func (c *BuildContext) JournalPath() string {
	return JournalPath(c.Root, c.Profile)
}

// BinaryPath returns the artifact this build links.
func (c *BuildContext) BinaryPath() string {
	return BinaryPath(c.Root, c.Manifest.Package.Name, c.GOOS, c.Profile)
}

// CompileResult is the outcome of the compilation stage.
type CompileResult struct {
	// Objects lists every object file in collection order.
	Objects []string
	// Compiled lists the relative source paths that were recompiled.
	Compiled []string
	// Reused lists the relative source paths whose objects were fresh.
	Reused []string
}

// BuildReport summarizes a successful build.
type BuildReport struct {
	Artifact string
	Profile  Profile
	Compiled []string
	Reused   []string
	Duration time.Duration
}

// CompileCommand is one compilation database record.
type CompileCommand struct {
	Directory string `json:"directory"`
	Command   string `json:"command"`
	File      string `json:"file"`
}
