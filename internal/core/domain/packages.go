package domain

// PackagePathSet is what a package backend supplies for one build.
type PackagePathSet struct {
	IncludeDirs []string
	LibDirs     []string
	LinkLibs    []string
	Triplet     string
}

// DefaultTriplet is used for OS/architecture pairs without a known mapping.
const DefaultTriplet = "x64-linux"

var triplets = map[[2]string]string{
	{"linux", "amd64"}:   "x64-linux",
	{"linux", "arm64"}:   "arm64-linux",
	{"darwin", "amd64"}:  "x64-osx",
	{"darwin", "arm64"}:  "arm64-osx",
	{"windows", "amd64"}: "x64-windows",
	{"windows", "arm64"}: "arm64-windows",
}

// Triplet maps a GOOS/GOARCH pair to a package triplet.
// Unknown pairs yield DefaultTriplet and false.
func Triplet(goos, goarch string) (string, bool) {
	if t, ok := triplets[[2]string{goos, goarch}]; ok {
		return t, true
	}
	return DefaultTriplet, false
}
