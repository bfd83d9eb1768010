package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type RemoteConfig struct {
	// BaseURL points at the legacy company backend (api.php style endpoint,
	// actions are dispatched through the "action" query parameter).
	BaseURL string
	Timeout time.Duration
}

type MirrorConfig struct {
	Path string
}

type StoreConfig struct {
	// CodePrefix is the brand prefix used for generated equipment codes.
	CodePrefix string
	// SeedOnEmpty controls whether the built-in demo customers are loaded
	// on a cold start with an empty mirror.
	SeedOnEmpty bool
}

type Config struct {
	Server ServerConfig
	Remote RemoteConfig
	Mirror MirrorConfig
	Store  StoreConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Remote: RemoteConfig{
			BaseURL: getEnv("REMOTE_API_URL", "https://alvsengineering.com.br/api.php"),
			Timeout: getDuration("REMOTE_API_TIMEOUT", 20*time.Second),
		},
		Mirror: MirrorConfig{
			Path: getEnv("MIRROR_PATH", "./data/mirror.db"),
		},
		Store: StoreConfig{
			CodePrefix:  getEnv("EQUIPMENT_CODE_PREFIX", "ALVS"),
			SeedOnEmpty: getBool("SEED_ON_EMPTY", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
