package config

// Filename is the project config file below the state directory.
const Filename = "config.yaml"

// Version is the config schema version written by Save.
const Version = "1"

// ConfigFile represents the structure of the config.yaml file.
type ConfigFile struct {
	Version  string                `yaml:"version"`
	Compiler string                `yaml:"compiler,omitempty"`
	Linker   string                `yaml:"linker,omitempty"`
	Features map[string]FeatureDTO `yaml:"features,omitempty"`
}

// FeatureDTO represents the saved settings of one feature.
type FeatureDTO struct {
	Build BuildDTO `yaml:"build"`
}

// BuildDTO represents the last build of a feature.
type BuildDTO struct {
	Dir string `yaml:"dir,omitempty"`
	Cmd string `yaml:"cmd,omitempty"`
}
