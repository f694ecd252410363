package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment. A .env
// file in the working directory is loaded first when present; real
// environment variables win over it.
type Config struct {
	Port      string `env:"PORT"`
	DebugMode bool   `env:"DEBUG_MODE"`

	// Provider selection. Per-request overrides are allowed; this is
	// the default when a request names none.
	Provider string `env:"LLM_PROVIDER"`

	GroqAPIKey string `env:"GROQ_API_KEY"`
	GroqModel  string `env:"GROQ_MODEL"`

	// Ollama targets a local deployment and needs no credential.
	OllamaBaseURL string `env:"OLLAMA_BASE_URL"`
	OllamaModel   string `env:"OLLAMA_MODEL"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL"`

	// Worker pool sizes: turn workers run symptom extraction, service
	// workers run chat completions and assessment stages.
	TurnWorkers    int `env:"TURN_WORKERS"`
	ServiceWorkers int `env:"SERVICE_WORKERS"`

	// SymptomCap bounds the symptom list entering an assessment.
	SymptomCap int `env:"SYMPTOM_CAP"`
	// SimilarityThreshold (0-100) marks near-duplicate symptoms.
	SimilarityThreshold int `env:"SIMILARITY_THRESHOLD"`

	// RecordTTL evicts conversation records idle for this long.
	// Zero keeps records for the process lifetime.
	RecordTTL time.Duration `env:"RECORD_TTL"`
}

// Defaults returns the baseline configuration, overridden by .env and
// environment variables in Load.
func Defaults() *Config {
	return &Config{
		Port:                "8002",
		Provider:            "groq",
		GroqModel:           "llama-3.3-70b-versatile",
		OllamaBaseURL:       "http://localhost:11434",
		OllamaModel:         "qwen2.5:3b",
		OpenAIModel:         "gpt-4o-mini",
		TurnWorkers:         4,
		ServiceWorkers:      3,
		SymptomCap:          20,
		SimilarityThreshold: 85,
		RecordTTL:           0,
	}
}

// Load builds the configuration from defaults, .env and the environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone may be complete.
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
