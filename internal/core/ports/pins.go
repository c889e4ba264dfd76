package ports

import "github.com/bytes00000111/nativelink/internal/core/domain"

// Pins is the parsed content of a pins file: the module manifest plus the
// toolchain derivations it builds.
type Pins struct {
	Manifest    domain.PinManifest
	Derivations []domain.ToolchainDerivation
}

// Derivation returns the derivation with the given pname, or nil.
func (p *Pins) Derivation(pname string) *domain.ToolchainDerivation {
	for i := range p.Derivations {
		if p.Derivations[i].Pname.String() == pname {
			return &p.Derivations[i]
		}
	}
	return nil
}

// PinsLoader defines the interface for loading and validating the pins file.
//
//go:generate mockgen -source=pins.go -destination=mocks/mock_pins.go -package=mocks
type PinsLoader interface {
	// Load reads and validates the pins file under the given workspace root.
	Load(root string) (*Pins, error)
}
