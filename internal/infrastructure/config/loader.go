// Package config loads, validates and watches the codeora configuration.
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
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// explicit is set when the file path came from --config.
	explicit bool
}

// NewManager creates a new configuration manager reading from the XDG
// config directory.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	return newManager(v, false)
}

// NewManagerForFile creates a manager bound to an explicit config file.
// The file is created with defaults when missing.
func NewManagerForFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return newManager(v, true)
}

func newManager(v *viper.Viper, explicit bool) (*Manager, error) {
	// CODEORA_APP_URL, CODEORA_DATABASE_PATH, ...
	v.SetEnvPrefix("CODEORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "CODEORA_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CODEORA_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CODEORA_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CODEORA_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		explicit:  explicit,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.explicit {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
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

	if !m.isNotFound(err) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configPath(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// isNotFound covers both lookup modes: search paths report
// ConfigFileNotFoundError, an explicit file reports a fs error.
func (m *Manager) isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return m.explicit && errors.Is(err, os.ErrNotExist)
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return "config.toml"
	}
	return configFile
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file %s: %w\nCheck for type mismatches (durations are written like \"4s\")",
			m.configPath(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to determine database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

// normalizeConfig trims user input into the canonical form validation
// expects.
func normalizeConfig(config *Config) {
	config.App.URL = strings.TrimSpace(config.App.URL)
	config.App.UserAgentSuffix = strings.TrimSpace(config.App.UserAgentSuffix)
	config.App.BridgeName = strings.TrimSpace(config.App.BridgeName)
	config.Browser.CachePolicy = CachePolicy(strings.ToLower(strings.TrimSpace(string(config.Browser.CachePolicy))))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	hosts := config.Navigation.AllowedHosts[:0]
	for _, h := range config.Navigation.AllowedHosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			hosts = append(hosts, h)
		}
	}
	config.Navigation.AllowedHosts = hosts

	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

func (m *Manager) createDefaultConfig() error {
	path := m.viper.ConfigFileUsed()
	if path == "" {
		configFile, err := GetConfigFile()
		if err != nil {
			return err
		}
		path = configFile
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	if err := m.viper.SafeWriteConfigAs(path); err != nil {
		return err
	}
	// The config is usable without the schema.
	if _, err := GenerateSchemaFile(filepath.Dir(path)); err != nil {
		fmt.Fprintf(os.Stderr, "codeora: %v\n", err)
	}
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	configCopy := *m.config
	configCopy.Navigation.AllowedHosts = append([]string(nil), m.config.Navigation.AllowedHosts...)
	return &configCopy
}

// GetConfigFile returns the path of the config file in use.
func (m *Manager) GetConfigFile() string {
	return m.configPath()
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("app.url", defaults.App.URL)
	m.viper.SetDefault("app.application_id", defaults.App.ApplicationID)
	m.viper.SetDefault("app.title", defaults.App.Title)
	m.viper.SetDefault("app.user_agent_suffix", defaults.App.UserAgentSuffix)
	m.viper.SetDefault("app.bridge_name", defaults.App.BridgeName)
	m.viper.SetDefault("app.fallback_message", defaults.App.FallbackMessage)
	m.viper.SetDefault("app.window_width", defaults.App.WindowWidth)
	m.viper.SetDefault("app.window_height", defaults.App.WindowHeight)

	m.viper.SetDefault("browser.cache_policy", string(defaults.Browser.CachePolicy))
	m.viper.SetDefault("browser.allow_secondary_windows", defaults.Browser.AllowSecondaryWindows)
	m.viper.SetDefault("browser.default_zoom", defaults.Browser.DefaultZoom)
	m.viper.SetDefault("browser.enable_devtools", defaults.Browser.EnableDevTools)

	m.viper.SetDefault("permissions.request_storage", defaults.Permissions.RequestStorage)
	m.viper.SetDefault("permissions.reactive_microphone_prompt", defaults.Permissions.ReactiveMicrophonePrompt)
	m.viper.SetDefault("permissions.use_portal", defaults.Permissions.UsePortal)
	m.viper.SetDefault("permissions.denied_message", defaults.Permissions.DeniedMessage)

	// Durations are written as strings so the generated file stays readable.
	m.viper.SetDefault("network.preflight_check", defaults.Network.PreflightCheck)
	m.viper.SetDefault("network.probe_url", defaults.Network.ProbeURL)
	m.viper.SetDefault("network.probe_timeout", defaults.Network.ProbeTimeout.String())

	m.viper.SetDefault("navigation.allowed_hosts", defaults.Navigation.AllowedHosts)

	m.viper.SetDefault("lifecycle.watchdog_timeout", defaults.Lifecycle.WatchdogTimeout.String())
	m.viper.SetDefault("toast.duration", defaults.Toast.Duration.String())

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("database.path", defaults.Database.Path)
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager. An empty path uses the
// XDG location.
func Init(path string) error {
	var err error
	globalManagerOnce.Do(func() {
		if path != "" {
			globalManager, err = NewManagerForFile(path)
		} else {
			globalManager, err = NewManager()
		}
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
