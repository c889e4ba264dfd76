package pins

// pinsFile is the YAML schema of nativelink.pins.yaml.
type pinsFile struct {
	Module     moduleDTO      `yaml:"module"`
	Deps       []depDTO       `yaml:"deps"`
	Extensions []extensionDTO `yaml:"extensions"`
	Overrides  []overrideDTO  `yaml:"overrides"`
	Toolchains []toolchainDTO `yaml:"toolchains"`
}

type moduleDTO struct {
	Name               string `yaml:"name"`
	Version            string `yaml:"version"`
	CompatibilityLevel int    `yaml:"compatibilityLevel"`
}

type depDTO struct {
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`
	DevDependency bool   `yaml:"devDependency"`
}

type extensionDTO struct {
	Source string   `yaml:"source"`
	Name   string   `yaml:"name"`
	Repos  []string `yaml:"repos"`
}

type overrideDTO struct {
	Module string `yaml:"module"`
	Path   string `yaml:"path"`
}

type toolchainDTO struct {
	Pname        string   `yaml:"pname"`
	Version      string   `yaml:"version"`
	Src          srcDTO   `yaml:"src"`
	VendorSha256 string   `yaml:"vendorSha256"`
	Patches      []string `yaml:"patches"`
	Meta         metaDTO  `yaml:"meta"`
}

type srcDTO struct {
	URL    string `yaml:"url"`
	Sha256 string `yaml:"sha256"`
	Size   int64  `yaml:"size"`
}

type metaDTO struct {
	Description string `yaml:"description"`
	Homepage    string `yaml:"homepage"`
	License     string `yaml:"license"`
}
