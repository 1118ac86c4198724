// Package config provides the project configuration loader for ccscope.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader on <root>/.ccscope/config.yaml.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Path returns the config file of the project at root.
func Path(root string) string {
	return filepath.Join(root, domain.StateDirName, Filename)
}

// Load reads the project config at root. A missing file yields an empty config.
func (l *Loader) Load(root string) (*domain.ProjectConfig, error) {
	path := Path(root)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no project config at " + path)
			return &domain.ProjectConfig{}, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	cfg := &domain.ProjectConfig{
		Compiler: file.Compiler,
		Linker:   file.Linker,
	}
	for name, dto := range file.Features {
		if err := domain.ValidateFeature(name); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
		}
		cfg.SetFeature(name, domain.FeatureConfig{
			BuildDir: dto.Build.Dir,
			BuildCmd: dto.Build.Cmd,
		})
	}
	return cfg, nil
}

// Save writes cfg to the project config at root, replacing it atomically.
func (l *Loader) Save(root string, cfg *domain.ProjectConfig) error {
	file := ConfigFile{
		Version:  Version,
		Compiler: cfg.Compiler,
		Linker:   cfg.Linker,
	}
	if len(cfg.Features) > 0 {
		file.Features = make(map[string]FeatureDTO, len(cfg.Features))
		for name, fc := range cfg.Features {
			file.Features[name] = FeatureDTO{Build: BuildDTO{Dir: fc.BuildDir, Cmd: fc.BuildCmd}}
		}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return errors.Join(domain.ErrConfigWriteFailed, zerr.Wrap(err, "failed to marshal config"))
	}

	path := Path(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigWriteFailed, err), "path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), Filename+".*")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigWriteFailed, err), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(errors.Join(domain.ErrConfigWriteFailed, err), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigWriteFailed, err), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigWriteFailed, err), "path", path)
	}

	l.logger.Debug("saved project config to " + path)
	return nil
}
