package http

import (
	"net/url"
	"strings"
)

// NewOriginMatcher returns a predicate accepting the origins whose host is
// one of the given hosts, or a subdomain of one of them.
// Entries may be bare hosts ("example.com") or full origins ("http://localhost:3000").
// Full origins also pin the scheme and the port.
func NewOriginMatcher(allowed []string) func(origin string) bool {
	hosts := make([]string, 0, len(allowed))
	origins := make([]*url.URL, 0, len(allowed))

	for _, raw := range allowed {
		raw = strings.ToLower(strings.TrimSpace(raw))
		if raw == "" {
			continue
		}

		if !strings.Contains(raw, "://") {
			hosts = append(hosts, raw)
			continue
		}

		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			continue
		}

		origins = append(origins, u)
	}

	return func(origin string) bool {
		u, err := url.Parse(strings.ToLower(origin))
		if err != nil || u.Host == "" {
			return false
		}

		hostname := u.Hostname()

		for _, host := range hosts {
			if matchHost(hostname, host) {
				return true
			}
		}

		for _, o := range origins {
			if o.Scheme == u.Scheme && o.Port() == u.Port() && matchHost(hostname, o.Hostname()) {
				return true
			}
		}

		return false
	}
}

func matchHost(hostname, allowed string) bool {
	return hostname == allowed || strings.HasSuffix(hostname, "."+allowed)
}
