package config

import "os"

type Config struct {
	Port          string
	DBHost        string
	DBPort        string
	CacheHost     string
	CachePort     string
	JaegerAddress string
}

func NewConfig() *Config {
	return &Config{
		Port:          os.Getenv("BOOKING_SERVICE_PORT"),
		DBHost:        os.Getenv("BOOKING_DB_HOST"),
		DBPort:        os.Getenv("BOOKING_DB_PORT"),
		CacheHost:     os.Getenv("BOOKING_CACHE_HOST"),
		CachePort:     os.Getenv("BOOKING_CACHE_PORT"),
		JaegerAddress: os.Getenv("JAEGER_ADDRESS"),
	}
}
