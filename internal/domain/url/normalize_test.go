package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrigin(t *testing.T) {
	assert.Equal(t, "https://chat.example.com", Origin("https://Chat.Example.com/room/1?x=2"))
	assert.Equal(t, "http://localhost:3000", Origin("http://localhost:3000/"))
	assert.Equal(t, "", Origin("about:blank"))
}

func TestHostAllowed(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		allowed []string
		want    bool
	}{
		{name: "empty list follows all", url: "https://anything.test/", want: true},
		{name: "exact host", url: "https://app.example.com/a", allowed: []string{"app.example.com"}, want: true},
		{name: "www stripped", url: "https://www.example.com/", allowed: []string{"example.com"}, want: true},
		{name: "other host", url: "https://evil.test/", allowed: []string{"example.com"}, want: false},
		{name: "wildcard subdomain", url: "https://cdn.example.com/x", allowed: []string{"*.example.com"}, want: true},
		{name: "wildcard apex", url: "https://example.com/", allowed: []string{"*.example.com"}, want: true},
		{name: "wildcard does not match suffix trick", url: "https://badexample.com/", allowed: []string{"*.example.com"}, want: false},
		{name: "about scheme always allowed", url: "about:blank", allowed: []string{"example.com"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HostAllowed(tt.url, tt.allowed))
		})
	}
}

func TestFileURIToPath(t *testing.T) {
	p, ok := FileURIToPath("file:///home/me/My%20Doc.pdf")
	assert.True(t, ok)
	assert.Equal(t, "/home/me/My Doc.pdf", p)

	p, ok = FileURIToPath("/tmp/a.txt")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/a.txt", p)

	_, ok = FileURIToPath("https://example.com/a.txt")
	assert.False(t, ok)
}
