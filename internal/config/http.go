package config

import "time"

type HTTP struct {
	BaseURL   string    `env:"BASE_URL,expand" envDefault:"/"`
	Address   string    `env:"ADDRESS,expand" envDefault:":3002"`
	CORS      CORS      `envPrefix:"CORS_"`
	Session   Session   `envPrefix:"SESSION_"`
	Auth      Auth      `envPrefix:"AUTH_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,expand" envSeparator:"," envDefault:"bjnunez.com"`
	LocalOrigins   []string `env:"LOCAL_ORIGINS,expand" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5000,http://localhost:8080"`
}

type Session struct {
	Name   string   `env:"NAME,expand" envDefault:"backlog_session"`
	Keys   []string `env:"KEYS,expand" envSeparator:","`
	Store  string   `env:"STORE,expand" envDefault:"filesystem"`
	Dir    string   `env:"DIR,expand" envDefault:"sessions"`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"24h"`
}

type Auth struct {
	Token    Token    `envPrefix:"TOKEN_"`
	Password Password `envPrefix:"PASSWORD_"`
}

type Token struct {
	Secret string        `env:"SECRET,expand"`
	TTL    time.Duration `env:"TTL,expand" envDefault:"24h"`
}

type Password struct {
	Cost int `env:"COST,expand" envDefault:"10"`
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"true"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"6s"`
	Burst        int           `env:"BURST,expand" envDefault:"10"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1024"`
	TTL          time.Duration `env:"TTL,expand" envDefault:"10m"`
}
