package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ProjectConfig is the persisted driver configuration of a project.
type ProjectConfig struct {
	Compiler string
	Linker   string
	Features map[string]FeatureConfig
}

// FeatureConfig is the saved build of one feature.
type FeatureConfig struct {
	BuildDir string
	BuildCmd string
}

// Feature returns the config of name, or the zero value.
func (c *ProjectConfig) Feature(name string) FeatureConfig {
	if c == nil || c.Features == nil {
		return FeatureConfig{}
	}
	return c.Features[name]
}

// SetFeature stores fc under name.
func (c *ProjectConfig) SetFeature(name string, fc FeatureConfig) {
	if c.Features == nil {
		c.Features = make(map[string]FeatureConfig)
	}
	c.Features[name] = fc
}

// BuildCommand is a build system invocation run by the driver.
type BuildCommand struct {
	Args []string
	Dir  string
}

// ValidateFeature checks that name can serve as a workspace directory name.
func ValidateFeature(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return zerr.With(ErrInvalidFeature, "feature", name)
	}
	return nil
}
