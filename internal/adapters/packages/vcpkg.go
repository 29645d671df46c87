package packages

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/ppargo/internal/core/domain"
	"go.trai.ch/ppargo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageResolver = (*Vcpkg)(nil)

// Vcpkg resolves paths inside a vcpkg installed tree.
type Vcpkg struct {
	root         string
	linkLibs     []string
	goos, goarch string
	logger       ports.Logger
}

// NewVcpkg creates a vcpkg backend rooted at root for the given platform.
// linkLibs are the library names the declared dependencies contribute.
func NewVcpkg(root string, linkLibs []string, goos, goarch string, logger ports.Logger) *Vcpkg {
	return &Vcpkg{
		root:     root,
		linkLibs: linkLibs,
		goos:     goos,
		goarch:   goarch,
		logger:   logger,
	}
}

// Resolve returns root/include, root/<triplet>/lib and the link libraries.
func (v *Vcpkg) Resolve(_ context.Context) (domain.PackagePathSet, error) {
	if v.root == "" {
		return domain.PackagePathSet{}, zerr.Wrap(domain.ErrPackageRootUnset, "vcpkg_root must be set in the manifest features")
	}

	triplet, known := domain.Triplet(v.goos, v.goarch)
	if !known {
		v.logger.Warn(fmt.Sprintf("unrecognized platform %s/%s, using triplet %s", v.goos, v.goarch, triplet))
	}

	return domain.PackagePathSet{
		IncludeDirs: []string{filepath.Join(v.root, "include")},
		LibDirs:     []string{filepath.Join(v.root, triplet, "lib")},
		LinkLibs:    v.linkLibs,
		Triplet:     triplet,
	}, nil
}
