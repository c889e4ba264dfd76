package pins

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bytes00000111/nativelink/internal/core/domain"
)

// Render produces the canonical manifest text for a pin manifest. Output is
// deterministic for a given manifest: dependency pins and overrides are
// sorted by name, extensions keep declaration order.
func Render(manifest *domain.PinManifest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "module(\n    name = %q,\n    version = %q,\n    compatibility_level = %d,\n)\n",
		manifest.Name.String(), manifest.Version, manifest.CompatibilityLevel)

	if len(manifest.Deps) > 0 {
		b.WriteString("\n")
		deps := make([]domain.DepPin, len(manifest.Deps))
		copy(deps, manifest.Deps)
		sort.Slice(deps, func(i, j int) bool {
			return deps[i].Name.String() < deps[j].Name.String()
		})
		for _, dep := range deps {
			if dep.DevDependency {
				fmt.Fprintf(&b, "bazel_dep(name = %q, version = %q, dev_dependency = True)\n",
					dep.Name.String(), dep.Version)
				continue
			}
			fmt.Fprintf(&b, "bazel_dep(name = %q, version = %q)\n", dep.Name.String(), dep.Version)
		}
	}

	for _, ext := range manifest.Extensions {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s = use_extension(%q, %q)\n", ext.Name, ext.Source, ext.Name)
		if len(ext.Repos) > 0 {
			repos := make([]string, 0, len(ext.Repos))
			for _, repo := range ext.Repos {
				repos = append(repos, fmt.Sprintf("%q", repo.String()))
			}
			fmt.Fprintf(&b, "use_repo(%s, %s)\n", ext.Name, strings.Join(repos, ", "))
		}
	}

	if len(manifest.Overrides) > 0 {
		overrides := make([]domain.PathOverride, len(manifest.Overrides))
		copy(overrides, manifest.Overrides)
		sort.Slice(overrides, func(i, j int) bool {
			return overrides[i].Module.String() < overrides[j].Module.String()
		})
		for _, override := range overrides {
			b.WriteString("\n")
			fmt.Fprintf(&b, "local_path_override(\n    module_name = %q,\n    path = %q,\n)\n",
				override.Module.String(), override.Path)
		}
	}

	return b.String()
}
