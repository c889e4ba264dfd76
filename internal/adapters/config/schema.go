package config

// ConfigFile represents the structure of the nativelink.yaml file.
type ConfigFile struct {
	Version string     `yaml:"version"`
	Cache   CacheDTO   `yaml:"cache"`
	Daemon  DaemonDTO  `yaml:"daemon"`
	Metrics MetricsDTO `yaml:"metrics"`
	Verbose bool       `yaml:"verbose"`
}

// CacheDTO configures the store's eviction policy. Sizes accept humanized
// strings ("10GiB", "512 MB"); maxAge accepts a Go duration ("72h").
type CacheDTO struct {
	MaxBytes   string `yaml:"maxBytes"`
	EvictBytes string `yaml:"evictBytes"`
	MaxAge     string `yaml:"maxAge"`
	MaxCount   int64  `yaml:"maxCount"`
}

// DaemonDTO configures the background daemon.
type DaemonDTO struct {
	IdleTimeout string `yaml:"idleTimeout"`
}

// MetricsDTO configures the optional Prometheus listener.
type MetricsDTO struct {
	Addr string `yaml:"addr"`
}
