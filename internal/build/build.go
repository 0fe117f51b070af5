// Package build drives cross and cargo for the local half of a deploy:
// compiling the project for the target triple and resolving which binary
// the build produced.
package build

import (
	"path/filepath"

	"github.com/crossdeploy/crossdeploy/internal/errors"
	"github.com/crossdeploy/crossdeploy/internal/exec"
)

// Builder compiles the project and resolves its produced artifact.
type Builder struct {
	Runner exec.Runner
}

// Build compiles the project for the target triple with cross. The compiler
// owns the terminal so progress and diagnostics stream straight through.
func (b *Builder) Build(arch string, release bool) error {
	args := []string{"build", "--target", arch}
	if release {
		args = append(args, "--release")
	}

	if err := b.Runner.Run("cross", args...); err != nil {
		return errors.Wrap(err, errors.ErrBuild,
			"Build failed",
			"Check the compiler output above")
	}

	return nil
}

// ProfileDir maps the release flag to cargo's profile directory name.
func ProfileDir(release bool) string {
	if release {
		return "release"
	}
	return "debug"
}

// ArtifactPath returns where cargo placed the named binary for the given
// target and profile, relative to the project root.
func ArtifactPath(arch string, release bool, name string) string {
	return filepath.Join("target", arch, ProfileDir(release), name)
}
