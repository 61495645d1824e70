package renetfetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

// Options tunes the upstream client. Zero values fall back to defaults
// chosen for a small portal API that throttles aggressive clients.
type Options struct {
	UserAgent     string
	Timeout       time.Duration
	RetryAttempts int
	RetryBackoff  time.Duration
	RandomDelay   time.Duration
	BrandNames    []string
}

func (o Options) withDefaults() Options {
	if o.UserAgent == "" {
		o.UserAgent = "listings-gateway/1.0"
	}
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
	if o.RetryAttempts < 1 {
		o.RetryAttempts = 3
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = 500 * time.Millisecond
	}
	if o.RandomDelay <= 0 {
		o.RandomDelay = time.Second
	}
	return o
}

// RenetFetcherAdapter owns all interaction with the upstream listings API.
type RenetFetcherAdapter struct {
	// one parent collector so every clone shares the same limit rule
	collector *colly.Collector
	baseURL   string
	token     string
	opts      Options
}

func NewRenetFetcherAdapter(baseURL, token string, opts Options) (*RenetFetcherAdapter, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("renet adapter: invalid base URL %q: %w", baseURL, err)
	}

	opts = opts.withDefaults()

	c := colly.NewCollector(colly.AllowedDomains(u.Hostname()), colly.AllowURLRevisit())
	c.SetRequestTimeout(opts.Timeout)

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  u.Hostname(),
		Parallelism: 2,
		RandomDelay: opts.RandomDelay,
	}); err != nil {
		return nil, fmt.Errorf("renet adapter: failed to set limit rule: %w", err)
	}

	return &RenetFetcherAdapter{
		collector: c,
		baseURL:   baseURL,
		token:     token,
		opts:      opts,
	}, nil
}

// newCollector clones the parent collector and attaches the auth headers the
// upstream API requires on every request. Clones inherit the limit rule but
// carry their own handlers.
func (a *RenetFetcherAdapter) newCollector() *colly.Collector {
	c := a.collector.Clone()
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Authorization", "Bearer "+a.token)
		r.Headers.Set("Accept", "application/json")
		r.Headers.Set("User-Agent", a.opts.UserAgent)
	})
	return c
}
