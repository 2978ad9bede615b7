package config

import "time"

// Config represents the complete configuration for codeora.
type Config struct {
	App         AppConfig         `mapstructure:"app" toml:"app"`
	Browser     BrowserConfig     `mapstructure:"browser" toml:"browser"`
	Permissions PermissionsConfig `mapstructure:"permissions" toml:"permissions"`
	Network     NetworkConfig     `mapstructure:"network" toml:"network"`
	Navigation  NavigationConfig  `mapstructure:"navigation" toml:"navigation"`
	Lifecycle   LifecycleConfig   `mapstructure:"lifecycle" toml:"lifecycle"`
	Toast       ToastConfig       `mapstructure:"toast" toml:"toast"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging"`
	Database    DatabaseConfig    `mapstructure:"database" toml:"database"`
}

// AppConfig describes the page the shell exists to show.
type AppConfig struct {
	// URL is the fixed destination loaded once at startup.
	URL string `mapstructure:"url" toml:"url"`
	// ApplicationID is the GTK application id (reverse DNS).
	ApplicationID string `mapstructure:"application_id" toml:"application_id"`
	// Title is the window title until the page sets its own.
	Title string `mapstructure:"title" toml:"title"`
	// UserAgentSuffix is appended to the engine's default user agent.
	UserAgentSuffix string `mapstructure:"user_agent_suffix" toml:"user_agent_suffix"`
	// BridgeName is the global the page calls, e.g. window.Android.
	BridgeName string `mapstructure:"bridge_name" toml:"bridge_name"`
	// FallbackMessage is the text of the offline/error screen.
	FallbackMessage string `mapstructure:"fallback_message" toml:"fallback_message"`
	WindowWidth     int    `mapstructure:"window_width" toml:"window_width"`
	WindowHeight    int    `mapstructure:"window_height" toml:"window_height"`
}

// CachePolicy selects how aggressively the engine caches resources.
type CachePolicy string

const (
	// CachePolicyNoCache always revalidates with the network.
	CachePolicyNoCache CachePolicy = "no_cache"
	// CachePolicyPreferCache uses the regular browser cache model.
	CachePolicyPreferCache CachePolicy = "prefer_cache"
)

// BrowserConfig holds the settings applied to the surface before the first
// load.
type BrowserConfig struct {
	CachePolicy           CachePolicy `mapstructure:"cache_policy" toml:"cache_policy" jsonschema:"enum=no_cache,enum=prefer_cache"`
	AllowSecondaryWindows bool        `mapstructure:"allow_secondary_windows" toml:"allow_secondary_windows"`
	// DefaultZoom is the initial zoom level (1.0 = 100%).
	DefaultZoom    float64 `mapstructure:"default_zoom" toml:"default_zoom"`
	EnableDevTools bool    `mapstructure:"enable_devtools" toml:"enable_devtools"`
}

// PermissionsConfig controls the permission gate.
type PermissionsConfig struct {
	// RequestStorage adds storage read/write to the startup request.
	RequestStorage bool `mapstructure:"request_storage" toml:"request_storage"`
	// ReactiveMicrophonePrompt re-asks when the page wants the microphone
	// and it is not granted yet.
	ReactiveMicrophonePrompt bool `mapstructure:"reactive_microphone_prompt" toml:"reactive_microphone_prompt"`
	// UsePortal routes prompts through the XDG desktop portal when present.
	UsePortal     bool   `mapstructure:"use_portal" toml:"use_portal"`
	DeniedMessage string `mapstructure:"denied_message" toml:"denied_message"`
}

// NetworkConfig controls the startup reachability check.
type NetworkConfig struct {
	PreflightCheck bool `mapstructure:"preflight_check" toml:"preflight_check"`
	// ProbeURL, when set, is requested with HEAD in addition to asking the
	// desktop network monitor.
	ProbeURL     string        `mapstructure:"probe_url" toml:"probe_url"`
	ProbeTimeout time.Duration `mapstructure:"probe_timeout" toml:"probe_timeout"`
}

// NavigationConfig restricts where the surface may navigate.
type NavigationConfig struct {
	// AllowedHosts limits main-frame navigations. Empty follows everything.
	AllowedHosts []string `mapstructure:"allowed_hosts" toml:"allowed_hosts"`
}

// LifecycleConfig tunes the load lifecycle.
type LifecycleConfig struct {
	WatchdogTimeout time.Duration `mapstructure:"watchdog_timeout" toml:"watchdog_timeout"`
}

// ToastConfig tunes in-window notifications.
type ToastConfig struct {
	Duration time.Duration `mapstructure:"duration" toml:"duration"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal"`
	Format        string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days"`
	Compress      bool   `mapstructure:"compress" toml:"compress"`
}

// DatabaseConfig holds the SQLite location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}
