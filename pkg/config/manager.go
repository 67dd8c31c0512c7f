package config

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lerenn/devbox/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mockconfig.gen.go -package=config

// Manager interface provides box configuration loading and saving.
type Manager interface {
	// Load reads the .devbox.conf of the given directory. A missing file is
	// not an error: it yields a zero-value configuration.
	Load(dir string) (*Config, error)

	// Save writes the configuration to the directory's .devbox.conf.
	Save(dir string, cfg *Config) error
}

type realManager struct {
	fs           fs.FS
	overridePath string
}

// NewManager creates a new Manager instance.
func NewManager(fs fs.FS) Manager {
	return &realManager{fs: fs}
}

// NewManagerWithFile creates a Manager bound to an explicit configuration
// file, ignoring the repository directory.
func NewManagerWithFile(fs fs.FS, path string) Manager {
	return &realManager{fs: fs, overridePath: path}
}

// confPath resolves the configuration file for a repository directory.
func (m *realManager) confPath(dir string) string {
	if m.overridePath != "" {
		return m.overridePath
	}
	return filepath.Join(dir, ConfFile)
}

// Load reads the .devbox.conf of the given directory.
func (m *realManager) Load(dir string) (*Config, error) {
	confPath := m.confPath(dir)

	exists, err := m.fs.Exists(confPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return &Config{}, nil
	}

	data, err := m.fs.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", confPath, err)
	}

	return &cfg, nil
}

// Save writes the configuration to the directory's .devbox.conf.
func (m *realManager) Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	confPath := m.confPath(dir)
	if err := m.fs.WriteFileAtomic(confPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", confPath, err)
	}
	return nil
}
