package build

import (
	"encoding/json"
	"slices"

	"github.com/crossdeploy/crossdeploy/internal/errors"
)

// metadata mirrors the slice of `cargo metadata` output the deploy needs.
type metadata struct {
	Packages []metaPackage `json:"packages"`
	Resolve  *metaResolve  `json:"resolve"`
}

type metaPackage struct {
	ID      string       `json:"id"`
	Targets []metaTarget `json:"targets"`
}

type metaTarget struct {
	Kind []string `json:"kind"`
	Name string   `json:"name"`
}

type metaResolve struct {
	Root *string `json:"root"`
}

// ArtifactName asks cargo for the project metadata and returns the name of
// the root package's first binary target.
func (b *Builder) ArtifactName() (string, error) {
	out, err := b.Runner.Output("cargo", "metadata", "--format-version", "1")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrAmbiguousProject,
			"Failed to get cargo metadata",
			"Run from the root of a Cargo project")
	}

	var meta metadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return "", errors.Wrap(err, errors.ErrAmbiguousProject,
			"Failed to get cargo metadata",
			"Run from the root of a Cargo project")
	}

	root := meta.rootPackage()
	if root == nil {
		return "", errors.New(errors.ErrAmbiguousProject,
			"No root package found",
			"Run from a package directory, not a bare workspace root")
	}

	for _, t := range root.Targets {
		if slices.Contains(t.Kind, "bin") {
			return t.Name, nil
		}
	}

	return "", errors.New(errors.ErrNoBinaryTarget,
		"No binary target found",
		"The deploy needs a [[bin]] target or a src/main.rs")
}

// rootPackage resolves the package cargo considers the root of the
// dependency graph, or nil for virtual workspaces.
func (m *metadata) rootPackage() *metaPackage {
	if m.Resolve == nil || m.Resolve.Root == nil {
		return nil
	}

	for i := range m.Packages {
		if m.Packages[i].ID == *m.Resolve.Root {
			return &m.Packages[i]
		}
	}

	return nil
}
