package webkit

import (
	"testing"

	"github.com/bnema/codeora/internal/infrastructure/config"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/stretchr/testify/assert"
)

func TestUserAgent(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		suffix   string
		expected string
	}{
		{name: "appends suffix", base: "Mozilla/5.0 AppleWebKit", suffix: "MyApp", expected: "Mozilla/5.0 AppleWebKit MyApp"},
		{name: "empty suffix keeps default", base: "Mozilla/5.0", suffix: "  ", expected: "Mozilla/5.0"},
		{name: "no default", base: "", suffix: "MyApp", expected: "MyApp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, userAgent(tt.base, tt.suffix))
		})
	}
}

func TestCacheModel(t *testing.T) {
	assert.Equal(t, webkit.CacheModelDocumentViewer, cacheModel(config.CachePolicyNoCache))
	assert.Equal(t, webkit.CacheModelWebBrowser, cacheModel(config.CachePolicyPreferCache))
}
