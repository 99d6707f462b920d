package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAudioTTLMinutes = 60

type Config struct {
	// Server
	Port string
	Env  string

	// Auth
	SecretToken string

	// Chat provider
	ChatProvider  string
	ChatModel     string
	OpenAIToken   string
	OpenAIBaseURL string
	GeminiAPIKey  string

	// Speech synthesis
	TTSProvider string
	TTSAPIKey   string
	TTSBaseURL  string

	// Audio storage
	AudioStore      string
	AudioDir        string
	RedisURL        string
	AudioTTLMinutes int

	// Outbound HTTP, 0 disables the timeout
	ProviderTimeoutSeconds int

	// Response shaping
	PublicBaseURL         string
	TrustForwardedHeaders bool
	StrictStatusCodes     bool
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                   getEnvOrDefault("PORT", "8080"),
		Env:                    getEnvOrDefault("ENV", "development"),
		SecretToken:            mustGetEnv("SECRET_TOKEN"),
		ChatProvider:           strings.ToLower(getEnvOrDefault("CHAT_PROVIDER", "openai")),
		OpenAIBaseURL:          getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com"),
		TTSProvider:            strings.ToLower(getEnvOrDefault("TTS_PROVIDER", "translate")),
		TTSAPIKey:              getEnvOrDefault("TTS_API_KEY", ""),
		TTSBaseURL:             getEnvOrDefault("TTS_BASE_URL", ""),
		AudioStore:             strings.ToLower(getEnvOrDefault("AUDIO_STORE", "file")),
		AudioDir:               getEnvOrDefault("AUDIO_DIR", "temp"),
		AudioTTLMinutes:        getEnvAsIntOrDefault("AUDIO_TTL_MINUTES", defaultAudioTTLMinutes),
		ProviderTimeoutSeconds: getEnvAsIntOrDefault("PROVIDER_TIMEOUT_SECONDS", 0),
		PublicBaseURL:          strings.TrimRight(getEnvOrDefault("PUBLIC_BASE_URL", ""), "/"),
		TrustForwardedHeaders:  getEnvAsBoolOrDefault("TRUST_FORWARDED_HEADERS", false),
		StrictStatusCodes:      getEnvAsBoolOrDefault("STRICT_STATUS_CODES", false),
	}

	// A non-positive TTL would store Redis audio without expiry.
	if cfg.AudioTTLMinutes <= 0 {
		cfg.AudioTTLMinutes = defaultAudioTTLMinutes
	}

	switch cfg.ChatProvider {
	case "openai":
		cfg.OpenAIToken = mustGetEnv("OPEN_AI_TOKEN")
		cfg.ChatModel = getEnvOrDefault("CHAT_MODEL", "gpt-3.5-turbo")
	case "gemini":
		cfg.GeminiAPIKey = mustGetEnv("GEMINI_API_KEY")
		cfg.ChatModel = getEnvOrDefault("CHAT_MODEL", "gemini-1.5-flash")
	default:
		panic(fmt.Sprintf("unsupported CHAT_PROVIDER %q (want openai or gemini)", cfg.ChatProvider))
	}

	if cfg.AudioStore == "redis" {
		cfg.RedisURL = mustGetEnv("REDIS_URL")
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
