package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN   string `env:"DSN" envDefault:"data.sqlite"`
	Cache Cache  `envPrefix:"CACHE_"`
}

type Cache struct {
	Users CacheEntry `envPrefix:"USERS_"`
}

type CacheEntry struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	Size    int           `env:"SIZE,expand" envDefault:"256"`
	TTL     time.Duration `env:"TTL,expand" envDefault:"5m"`
}
