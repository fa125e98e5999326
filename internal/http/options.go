package http

import "net/http"

type Options struct {
	Address        string
	BaseURL        string
	AllowedOrigins []string
	Mounts         map[string]http.Handler

	// RecoveryHandler answers requests whose handler panicked
	RecoveryHandler http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:        ":3002",
		BaseURL:        "",
		AllowedOrigins: []string{},
		Mounts:         map[string]http.Handler{},

		RecoveryHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

// WithAllowedOrigins sets the origins allowed to issue credentialed
// cross-origin requests. See NewOriginMatcher for the accepted forms.
func WithAllowedOrigins(origins ...string) OptionFunc {
	return func(opts *Options) {
		opts.AllowedOrigins = append(opts.AllowedOrigins, origins...)
	}
}

func WithRecoveryHandler(handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.RecoveryHandler = handler
	}
}
