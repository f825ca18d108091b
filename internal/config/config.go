package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime configuration for the analysis pipeline.
// Values come from the environment (a .env file is loaded by the root
// command); every field has a working default so the binary runs against a
// local Ollama install with no configuration at all.
type Config struct {
	// Inference endpoint
	OllamaURL string

	// Model selection
	ModelFast string
	ModelDeep string

	// Network timeouts. Vision inference on local hardware can take
	// minutes, so the total timeout is much longer than the dial timeout.
	ConnectTimeout time.Duration
	TotalTimeout   time.Duration

	// Retry policy for content-insufficient responses
	MaxAttempts    int
	RetryDelay     time.Duration
	MinUsableChars int

	// Validator thresholds. These are intentionally independent from
	// MinUsableChars: the retry loop and the validator measure different
	// things and are tuned separately.
	MinValidDescription  int
	GoodDescriptionChars int

	// Upload constraints
	MaxUploadBytes   int64
	AllowedMIMETypes []string
	UploadsDir       string

	// Prompt template store
	TemplatesPath string

	// Capability flags, decided once at startup
	GeminiEnabled bool
	GeminiAPIKey  string

	// Recent-run history buffer size
	HistorySize int
}

// Load builds a Config from the environment.
func Load() *Config {
	cfg := &Config{
		OllamaURL:            envOr("OLLAMA_URL", "http://localhost:11434"),
		ModelFast:            envOr("PHOTODIARY_MODEL_FAST", "qwen2.5vl:3b"),
		ModelDeep:            envOr("PHOTODIARY_MODEL_DEEP", "qwen2.5vl:7b"),
		ConnectTimeout:       envDuration("PHOTODIARY_CONNECT_TIMEOUT", 10*time.Second),
		TotalTimeout:         envDuration("PHOTODIARY_TOTAL_TIMEOUT", 5*time.Minute),
		MaxAttempts:          envInt("PHOTODIARY_MAX_ATTEMPTS", 3),
		RetryDelay:           envDuration("PHOTODIARY_RETRY_DELAY", 2*time.Second),
		MinUsableChars:       envInt("PHOTODIARY_MIN_USABLE_CHARS", 100),
		MinValidDescription:  envInt("PHOTODIARY_MIN_VALID_DESCRIPTION", 200),
		GoodDescriptionChars: envInt("PHOTODIARY_GOOD_DESCRIPTION", 400),
		MaxUploadBytes:       int64(envInt("PHOTODIARY_MAX_UPLOAD_MB", 10)) * 1024 * 1024,
		AllowedMIMETypes:     envList("PHOTODIARY_ALLOWED_TYPES", []string{"image/jpeg", "image/png", "image/webp", "image/gif"}),
		UploadsDir:           envOr("PHOTODIARY_UPLOADS_DIR", "uploads"),
		TemplatesPath:        envOr("PHOTODIARY_TEMPLATES", "templates.yaml"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		HistorySize:          envInt("PHOTODIARY_HISTORY_SIZE", 50),
	}
	cfg.GeminiEnabled = cfg.GeminiAPIKey != ""
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
