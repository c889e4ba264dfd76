package domain

import "regexp"

var validModuleNameRegex = regexp.MustCompile(`^[a-z]([a-z0-9._-]*[a-z0-9])?$`)

// ValidModuleName reports whether s is an acceptable module or dependency name.
func ValidModuleName(s string) bool {
	return validModuleNameRegex.MatchString(s)
}

// PinManifest declares the module identity, its pinned external dependencies
// and the toolchain extensions it brings into scope. It is the parsed form of
// the manifest section of the pins file.
type PinManifest struct {
	// Name is the module name.
	Name InternedString
	// Version is the module version string.
	Version string
	// CompatibilityLevel groups versions that may be interchanged during
	// resolution. Never negative.
	CompatibilityLevel int
	// Deps are the pinned direct dependencies in declaration order.
	Deps []DepPin
	// Extensions are the toolchain extension usages in declaration order.
	Extensions []ExtensionUse
	// Overrides substitute a local workspace path for a dependency.
	Overrides []PathOverride
}

// DepPin pins one external dependency to an exact version.
type DepPin struct {
	Name    InternedString
	Version string
	// DevDependency marks pins only needed for development builds.
	DevDependency bool
}

// ExtensionUse declares a toolchain extension and the repositories it
// contributes to the module's scope.
type ExtensionUse struct {
	// Source locates the extension, e.g. "rules_toolchain//:extensions".
	Source string
	// Name is the extension symbol used from the source.
	Name string
	// Repos are the repositories imported from the extension.
	Repos []InternedString
}

// PathOverride replaces a dependency with a module at a local path.
type PathOverride struct {
	Module InternedString
	// Path is relative to the directory containing the pins file.
	Path string
}

// Dep returns the pin for the named dependency, or nil.
func (m *PinManifest) Dep(name string) *DepPin {
	for i := range m.Deps {
		if m.Deps[i].Name.String() == name {
			return &m.Deps[i]
		}
	}
	return nil
}

// Override returns the path override for the named module, or nil.
func (m *PinManifest) Override(module string) *PathOverride {
	for i := range m.Overrides {
		if m.Overrides[i].Module.String() == module {
			return &m.Overrides[i]
		}
	}
	return nil
}
