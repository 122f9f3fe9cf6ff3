package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	// ExamFile is the VCE file to load. The command line argument takes
	// precedence over the environment.
	ExamFile   string
	SessionDir string
	// AutosaveInterval is the cadence for persisting the in-progress
	// session. Zero disables autosave.
	AutosaveInterval time.Duration
	// DefaultQuestionCount bounds generated question sets when the exam
	// file name does not state a count.
	DefaultQuestionCount int
	// QuestionLimit caps each new session to the first N questions.
	// Zero means the whole exam.
	QuestionLimit int
	// RandomizeQuestions is kept for compatibility with existing player
	// settings; the session controller currently keeps display order
	// stable regardless.
	RandomizeQuestions bool
	// SessionMaxAgeDays drives the sessions cleanup utility.
	SessionMaxAgeDays int
	// AllowedOrigins controls HTTP CORS and WebSocket origin validation.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "debug"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "pretty"),
		ExamFile:             getEnv("EXAM_FILE", ""),
		SessionDir:           getEnv("SESSION_DIR", "./sessions"),
		AutosaveInterval:     time.Duration(getEnvInt("AUTOSAVE_INTERVAL_SECONDS", 30)) * time.Second,
		DefaultQuestionCount: getEnvInt("DEFAULT_QUESTION_COUNT", 25),
		QuestionLimit:        getEnvInt("QUESTION_LIMIT", 0),
		RandomizeQuestions:   getEnvBool("RANDOMIZE_QUESTIONS", false),
		SessionMaxAgeDays:    getEnvInt("SESSION_MAX_AGE_DAYS", 90),
		AllowedOrigins:       parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
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

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
