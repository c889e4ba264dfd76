// Package pins implements loading, validation and rendering of the pins file.
package pins

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var hexSha256Regex = regexp.MustCompile(`^[0-9a-f]{64}$`)

var _ ports.PinsLoader = (*Loader)(nil)

// Loader implements ports.PinsLoader using a YAML pins file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the pins file under the given workspace root.
func (l *Loader) Load(root string) (*ports.Pins, error) {
	path := filepath.Join(root, domain.PinsFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is rooted at the workspace
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrPinsNotFound, "root", root)
		}
		return nil, zerr.Wrap(err, domain.ErrPinsReadFailed.Error())
	}

	var file pinsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPinsParseFailed.Error())
	}

	pins, err := convert(&file)
	if err != nil {
		return nil, err
	}
	if err := validate(root, pins); err != nil {
		return nil, err
	}
	return pins, nil
}

func convert(file *pinsFile) (*ports.Pins, error) {
	manifest := domain.PinManifest{
		Name:               domain.NewInternedString(file.Module.Name),
		Version:            file.Module.Version,
		CompatibilityLevel: file.Module.CompatibilityLevel,
	}

	for _, dep := range file.Deps {
		manifest.Deps = append(manifest.Deps, domain.DepPin{
			Name:          domain.NewInternedString(dep.Name),
			Version:       dep.Version,
			DevDependency: dep.DevDependency,
		})
	}

	for _, ext := range file.Extensions {
		use := domain.ExtensionUse{
			Source: ext.Source,
			Name:   ext.Name,
		}
		for _, repo := range ext.Repos {
			use.Repos = append(use.Repos, domain.NewInternedString(repo))
		}
		manifest.Extensions = append(manifest.Extensions, use)
	}

	for _, override := range file.Overrides {
		manifest.Overrides = append(manifest.Overrides, domain.PathOverride{
			Module: domain.NewInternedString(override.Module),
			Path:   override.Path,
		})
	}

	pins := &ports.Pins{Manifest: manifest}

	for _, tc := range file.Toolchains {
		pins.Derivations = append(pins.Derivations, domain.ToolchainDerivation{
			Pname:        domain.NewInternedString(tc.Pname),
			Version:      tc.Version,
			SrcURL:       tc.Src.URL,
			SrcSha256:    tc.Src.Sha256,
			SrcSize:      tc.Src.Size,
			VendorSha256: tc.VendorSha256,
			Patches:      tc.Patches,
			Meta: domain.DerivationMeta{
				Description: tc.Meta.Description,
				Homepage:    tc.Meta.Homepage,
				License:     tc.Meta.License,
			},
		})
	}

	return pins, nil
}

func validate(root string, pins *ports.Pins) error {
	if err := validateManifest(root, &pins.Manifest); err != nil {
		return err
	}
	for i := range pins.Derivations {
		if err := validateDerivation(root, &pins.Derivations[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateManifest(root string, manifest *domain.PinManifest) error {
	if !domain.ValidModuleName(manifest.Name.String()) {
		return zerr.With(domain.ErrInvalidModuleName, "module_name", manifest.Name.String())
	}
	if manifest.Version == "" {
		return zerr.With(domain.ErrMissingVersion, "module_name", manifest.Name.String())
	}
	if manifest.CompatibilityLevel < 0 {
		return zerr.With(domain.ErrInvalidCompatLevel, "compatibility_level", manifest.CompatibilityLevel)
	}

	seen := make(map[domain.InternedString]struct{}, len(manifest.Deps))
	for _, dep := range manifest.Deps {
		if !domain.ValidModuleName(dep.Name.String()) {
			return zerr.With(domain.ErrInvalidModuleName, "dependency", dep.Name.String())
		}
		if dep.Version == "" {
			return zerr.With(domain.ErrMissingVersion, "dependency", dep.Name.String())
		}
		if _, dup := seen[dep.Name]; dup {
			return zerr.With(domain.ErrDuplicateDep, "dependency", dep.Name.String())
		}
		seen[dep.Name] = struct{}{}
	}

	for _, override := range manifest.Overrides {
		if _, pinned := seen[override.Module]; !pinned {
			return zerr.With(domain.ErrOverrideUnknownModule, "module", override.Module.String())
		}
		if err := validateWorkspacePath(root, override.Path); err != nil {
			return zerr.With(err, "module", override.Module.String())
		}
	}

	return nil
}

func validateDerivation(root string, derivation *domain.ToolchainDerivation) error {
	if !domain.ValidModuleName(derivation.Pname.String()) {
		return zerr.With(domain.ErrInvalidModuleName, "pname", derivation.Pname.String())
	}
	if derivation.Version == "" {
		return zerr.With(domain.ErrMissingVersion, "pname", derivation.Pname.String())
	}

	if !hexSha256Regex.MatchString(derivation.SrcSha256) {
		err := zerr.With(domain.ErrInvalidDigest, "pname", derivation.Pname.String())
		return zerr.With(err, "field", "src.sha256")
	}
	if derivation.VendorSha256 != "" && !hexSha256Regex.MatchString(derivation.VendorSha256) {
		err := zerr.With(domain.ErrInvalidDigest, "pname", derivation.Pname.String())
		return zerr.With(err, "field", "vendorSha256")
	}

	for _, patch := range derivation.Patches {
		if filepath.IsAbs(patch) {
			return zerr.With(domain.ErrPatchNotFound, "patch", patch)
		}
		if _, err := os.Stat(filepath.Join(root, patch)); err != nil {
			return zerr.With(domain.ErrPatchNotFound, "patch", patch)
		}
	}

	return nil
}

// validateWorkspacePath rejects absolute paths and paths that escape the
// workspace root after cleaning.
func validateWorkspacePath(root, path string) error {
	if path == "" || filepath.IsAbs(path) {
		return zerr.With(domain.ErrOverridePathOutsideRoot, "path", path)
	}
	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		err := zerr.With(domain.ErrOverridePathOutsideRoot, "path", path)
		return zerr.With(err, "root", root)
	}
	return nil
}
