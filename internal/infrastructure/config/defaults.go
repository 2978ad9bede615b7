package config

import "time"

// Default configuration constants
const (
	defaultURL             = "https://chat-app-theta-puce-66.vercel.app/"
	defaultApplicationID   = "io.github.bnema.Codeora"
	defaultTitle           = "Codeora"
	defaultUserAgentSuffix = "MyApp"
	defaultBridgeName      = "Android"
	defaultFallbackMessage = "Unable to reach the service. Check your connection and restart the app."
	defaultWindowWidth     = 420
	defaultWindowHeight    = 860

	defaultZoom = 1.0

	defaultProbeTimeout    = 3 * time.Second
	defaultWatchdogTimeout = 4 * time.Second
	defaultToastDuration   = 2500 * time.Millisecond

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			URL:             defaultURL,
			ApplicationID:   defaultApplicationID,
			Title:           defaultTitle,
			UserAgentSuffix: defaultUserAgentSuffix,
			BridgeName:      defaultBridgeName,
			FallbackMessage: defaultFallbackMessage,
			WindowWidth:     defaultWindowWidth,
			WindowHeight:    defaultWindowHeight,
		},
		Browser: BrowserConfig{
			CachePolicy:           CachePolicyNoCache,
			AllowSecondaryWindows: true,
			DefaultZoom:           defaultZoom,
		},
		Permissions: PermissionsConfig{
			RequestStorage:           true,
			ReactiveMicrophonePrompt: true,
			UsePortal:                true,
			DeniedMessage:            "Permission denied. The app needs this permission to function properly.",
		},
		Network: NetworkConfig{
			PreflightCheck: true,
			ProbeTimeout:   defaultProbeTimeout,
		},
		Navigation: NavigationConfig{
			AllowedHosts: []string{},
		},
		Lifecycle: LifecycleConfig{
			WatchdogTimeout: defaultWatchdogTimeout,
		},
		Toast: ToastConfig{
			Duration: defaultToastDuration,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
	}
}

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}
