package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string // "postgres" or "sqlite"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// LLMConfig holds LLM-related configuration for both clients in the
// extraction chain. UseOllama picks which client is primary.
type LLMConfig struct {
	UseOllama     bool
	OllamaBaseURL string
	OllamaModel   string

	OpenAIBaseURL string
	OpenAIModel   string
	OpenAIAPIKey  string

	Temperature  float32
	Timeout      time.Duration
	MaxTextChars int
}

// PipelineConfig holds chunking/indexing knobs
type PipelineConfig struct {
	TargetChunkSize    int
	MinChunkSize       int
	MaxChunkSize       int
	MinSentenceChars   int
	StrictPhraseFilter bool
	MinPhraseFrequency int
	Workers            int
	ProcessTimeout     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "postgres"),
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		LLM: LLMConfig{
			UseOllama:     getEnvAsBool("USE_OLLAMA", true),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3.3:latest"),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			Temperature:   getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			Timeout:       getEnvAsDuration("LLM_TIMEOUT", 300*time.Second),
			MaxTextChars:  getEnvAsInt("LLM_MAX_TEXT_CHARS", 30000),
		},
		Pipeline: PipelineConfig{
			TargetChunkSize:    getEnvAsInt("CHUNK_TARGET_WORDS", 350),
			MinChunkSize:       getEnvAsInt("CHUNK_MIN_WORDS", 200),
			MaxChunkSize:       getEnvAsInt("CHUNK_MAX_WORDS", 500),
			MinSentenceChars:   getEnvAsInt("SENTENCE_MIN_CHARS", 15),
			StrictPhraseFilter: getEnvAsBool("PHRASE_STRICT_FILTER", true),
			MinPhraseFrequency: getEnvAsInt("PHRASE_MIN_FREQUENCY", 2),
			Workers:            getEnvAsInt("PIPELINE_WORKERS", 4),
			ProcessTimeout:     getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 10*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return NewAppError("CONFIG_ERROR", "DB_DRIVER must be postgres or sqlite", ErrInvalidInput)
	}
	if !c.LLM.UseOllama && c.LLM.OpenAIAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required when USE_OLLAMA=false", ErrInvalidInput)
	}
	if c.Pipeline.MinChunkSize > c.Pipeline.TargetChunkSize || c.Pipeline.TargetChunkSize > c.Pipeline.MaxChunkSize {
		return NewAppError("CONFIG_ERROR", "chunk sizes must satisfy min <= target <= max", ErrInvalidInput)
	}
	return nil
}
