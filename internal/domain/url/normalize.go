// Package url provides URL helpers shared by the browser host and the
// permission layer.
package url

import (
	"net/url"
	"strings"
)

// Origin returns scheme://host[:port] for an absolute http(s) URL, or "" when
// the input has no host.
func Origin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host)
}

// ExtractDomain extracts the host of a URL without port and without a
// leading "www.".
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
}

// IsHTTP reports whether the URL uses http or https.
func IsHTTP(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

// HostAllowed reports whether rawURL may be opened given an allow-list.
// An empty list allows everything. Entries match the exact host or, when
// written as "*.example.com", any subdomain of example.com. Non-http URLs
// (about:, data:, blob:) are always allowed since they never leave the page.
func HostAllowed(rawURL string, allowed []string) bool {
	if len(allowed) == 0 || !IsHTTP(rawURL) {
		return true
	}

	host := ExtractDomain(rawURL)
	if host == "" {
		return false
	}

	for _, entry := range allowed {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if suffix, ok := strings.CutPrefix(entry, "*."); ok {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return true
			}
			continue
		}
		if host == strings.TrimPrefix(entry, "www.") {
			return true
		}
	}
	return false
}

// FileURIToPath converts a file:// URI to a local path. Any other input is
// returned unchanged when it already looks like an absolute path.
func FileURIToPath(uri string) (string, bool) {
	if strings.HasPrefix(uri, "/") {
		return uri, true
	}
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" || parsed.Path == "" {
		return "", false
	}
	return parsed.Path, true
}
