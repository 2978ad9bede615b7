package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var bridgeNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// validateConfig collects every problem instead of stopping at the first one.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateApp(config)...)
	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validateNetwork(config)...)
	validationErrors = append(validationErrors, validateTimings(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateApp(config *Config) []string {
	var validationErrors []string
	if !isHTTPURL(config.App.URL) {
		validationErrors = append(validationErrors, "app.url must be an absolute http(s) URL")
	}
	if !bridgeNamePattern.MatchString(config.App.BridgeName) {
		validationErrors = append(validationErrors, "app.bridge_name must be a valid JavaScript identifier")
	}
	if strings.ContainsAny(config.App.UserAgentSuffix, "\r\n") {
		validationErrors = append(validationErrors, "app.user_agent_suffix must be a single line")
	}
	if config.App.ApplicationID == "" || !strings.Contains(config.App.ApplicationID, ".") {
		validationErrors = append(validationErrors, "app.application_id must be a reverse-DNS name like io.github.user.App")
	}
	if config.App.WindowWidth < 0 || config.App.WindowHeight < 0 {
		validationErrors = append(validationErrors, "app.window_width and app.window_height must be non-negative")
	}
	return validationErrors
}

func validateBrowser(config *Config) []string {
	var validationErrors []string
	switch config.Browser.CachePolicy {
	case CachePolicyNoCache, CachePolicyPreferCache:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("browser.cache_policy must be one of: %s, %s", CachePolicyNoCache, CachePolicyPreferCache))
	}
	if config.Browser.DefaultZoom < 0.25 || config.Browser.DefaultZoom > 5.0 {
		validationErrors = append(validationErrors, "browser.default_zoom must be between 0.25 and 5.0")
	}
	return validationErrors
}

func validateNetwork(config *Config) []string {
	var validationErrors []string
	if config.Network.ProbeURL != "" && !isHTTPURL(config.Network.ProbeURL) {
		validationErrors = append(validationErrors, "network.probe_url must be empty or an absolute http(s) URL")
	}
	if config.Network.ProbeTimeout <= 0 {
		validationErrors = append(validationErrors, "network.probe_timeout must be positive")
	}
	return validationErrors
}

func validateTimings(config *Config) []string {
	var validationErrors []string
	if config.Lifecycle.WatchdogTimeout <= 0 || config.Lifecycle.WatchdogTimeout > time.Minute {
		validationErrors = append(validationErrors, "lifecycle.watchdog_timeout must be between 0 and 1m")
	}
	if config.Toast.Duration <= 0 {
		validationErrors = append(validationErrors, "toast.duration must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true,
	}
	if !validLevels[config.Logging.Level] {
		validationErrors = append(validationErrors, "logging.level must be one of: trace, debug, info, warn, error, fatal")
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb, max_backups and max_age_days must be non-negative")
	}
	return validationErrors
}

func isHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
