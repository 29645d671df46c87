package domain

// Profile is a named build configuration with its own flags and output directory.
type Profile int

const (
	// Debug builds without optimization and with debug symbols.
	Debug Profile = iota
	// Release builds with full optimization and strips symbols at link time.
	Release
)

// String returns the profile's output directory name.
func (p Profile) String() string {
	if p == Release {
		return "release"
	}
	return "debug"
}

// ProfileFromRelease maps the --release switch to a Profile.
func ProfileFromRelease(release bool) Profile {
	if release {
		return Release
	}
	return Debug
}
