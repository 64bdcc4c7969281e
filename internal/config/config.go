// Package config handles visualiser configuration loading and management.
package config

// Config holds all visualiser settings.
type Config struct {
	Viewer   ViewerConfig   `yaml:"viewer"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewerConfig holds interactive window settings.
type ViewerConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	VSync     bool `yaml:"vsync"`
	Wireframe bool `yaml:"wireframe"` // start with wireframe overlay enabled
}

// SnapshotConfig holds offscreen render settings.
type SnapshotConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	Supersample int  `yaml:"supersample"`
	Legend      bool `yaml:"legend"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:     1280,
			Height:    720,
			VSync:     true,
			Wireframe: false,
		},
		Snapshot: SnapshotConfig{
			Width:       1024,
			Height:      768,
			Supersample: 2,
			Legend:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
