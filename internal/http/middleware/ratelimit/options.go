package ratelimit

import (
	"net/http"
	"time"
)

type Options struct {
	// TrustHeaders identifies clients with the X-Forwarded-For and X-Real-Ip headers
	TrustHeaders bool
	Interval     time.Duration
	Burst        int
	CacheSize    int
	TTL          time.Duration
	OnLimited    http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		TrustHeaders: false,
		Interval:     6 * time.Second,
		Burst:        10,
		CacheSize:    1024,
		TTL:          10 * time.Minute,
		OnLimited: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}

// WithLimit allows a burst of requests, then one request per interval.
func WithLimit(interval time.Duration, burst int) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
		opts.Burst = burst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.TTL = ttl
	}
}

func WithOnLimited(handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.OnLimited = handler
	}
}
