package network

import (
	"context"
	"time"

	"github.com/bnema/codeora/internal/logging"
	"github.com/go-resty/resty/v2"
)

// HTTPProbe sends a HEAD request to a known URL. Any HTTP answer, even an
// error status, proves the network path works.
type HTTPProbe struct {
	client *resty.Client
	url    string
}

// NewHTTPProbe creates a probe with the given per-request timeout.
func NewHTTPProbe(url string, timeout time.Duration, userAgent string) *HTTPProbe {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &HTTPProbe{client: client, url: url}
}

// Name implements Checker.
func (p *HTTPProbe) Name() string { return "http_probe" }

// Available implements Checker.
func (p *HTTPProbe) Available(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	resp, err := p.client.R().SetContext(ctx).Head(p.url)
	if err != nil && (resp == nil || resp.RawResponse == nil) {
		log.Debug().Err(err).Str("url", p.url).Msg("probe failed")
		return false
	}

	log.Debug().Str("url", p.url).Int("status", resp.StatusCode()).Dur("took", resp.Time()).Msg("probe answered")
	return true
}
