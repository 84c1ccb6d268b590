package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a configuration manager reading config.toml from the
// XDG config directory, then the current directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir, ".")
}

// NewManagerForFile creates a manager reading exactly the given file.
func NewManagerForFile(path string) (*Manager, error) {
	m, err := newManager()
	if err != nil {
		return nil, err
	}
	m.viper.SetConfigFile(path)
	return m, nil
}

func newManager(paths ...string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// SIDEPANEL_SHELL_MODE, SIDEPANEL_TRANSITION_DURATION_MS, ...
	v.SetEnvPrefix("SIDEPANEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SIDEPANEL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SIDEPANEL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SIDEPANEL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SIDEPANEL_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	explicit := m.viper.ConfigFileUsed()
	if !errors.As(err, &notFound) && !(explicit != "" && errors.Is(err, os.ErrNotExist)) {
		configFile := explicit
		if configFile == "" {
			configFile = "config.toml"
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	configFile, err := m.createDefaultConfig()
	if err != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configFile,
			err,
		)
	}
	m.viper.SetConfigFile(configFile)
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			err,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if !m.viper.IsSet("panels") {
		config.Panels = DefaultConfig().Panels
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Shell.Mode = strings.ToLower(strings.TrimSpace(config.Shell.Mode))
	if config.Shell.Mode == "" {
		config.Shell.Mode = "push"
	}

	for i := range config.Panels {
		p := &config.Panels[i]
		p.Name = strings.TrimSpace(p.Name)
		p.Position = strings.ToLower(strings.TrimSpace(p.Position))
		p.Mode = strings.ToLower(strings.TrimSpace(p.Mode))
		p.Width = strings.TrimSpace(p.Width)
		p.NarrowWidth = strings.TrimSpace(p.NarrowWidth)
		if p.NarrowWidth == "" {
			p.NarrowWidth = defaultNarrowWidth
		}
		p.FixedAt = strings.TrimSpace(p.FixedAt)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))

	if config.EmSize == 0 {
		config.EmSize = defaultEmSize
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Panels = make([]PanelConfig, len(m.config.Panels))
	copy(configCopy.Panels, m.config.Panels)
	return &configCopy
}

// Save validates cfg and writes it to the config file in use.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	saved := *cfg
	m.config = &saved
	if m.watching {
		m.skipNextReload = true
		return nil
	}
	return m.viper.ReadInConfig()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to the explicit config file, or to
// the XDG location, and returns the path.
func (m *Manager) createDefaultConfig() (string, error) {
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		if err := EnsureDirectories(); err != nil {
			return "", err
		}
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return configFile, err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return configFile, err
	}
	return configFile, nil
}

// setDefaults sets default configuration values in Viper.
// Panels have no viper default; an unset list falls back to DefaultConfig.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setShellDefaults(defaults)
	m.setGestureDefaults(defaults)
	m.setTransitionDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.viper.SetDefault("em_size", defaults.EmSize)
}

func (m *Manager) setShellDefaults(defaults *Config) {
	m.viper.SetDefault("shell.mode", defaults.Shell.Mode)
	m.viper.SetDefault("shell.width", defaults.Shell.Width)
	m.viper.SetDefault("shell.height", defaults.Shell.Height)
	m.viper.SetDefault("shell.framed", defaults.Shell.Framed)
}

func (m *Manager) setGestureDefaults(defaults *Config) {
	m.viper.SetDefault("gesture.tap_slop", defaults.Gesture.TapSlop)
	m.viper.SetDefault("gesture.tap_timeout_ms", defaults.Gesture.TapTimeoutMs)
	m.viper.SetDefault("gesture.pan_threshold", defaults.Gesture.PanThreshold)
	m.viper.SetDefault("gesture.swipe_velocity", defaults.Gesture.SwipeVelocity)
	m.viper.SetDefault("gesture.swipe_min_distance", defaults.Gesture.SwipeMinDistance)
}

func (m *Manager) setTransitionDefaults(defaults *Config) {
	m.viper.SetDefault("transition.duration_ms", defaults.Transition.DurationMs)
	m.viper.SetDefault("transition.fps", defaults.Transition.FPS)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}
