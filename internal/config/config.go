package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Screener ScreenerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type ScreenerConfig struct {
	MaxFileSize     int64
	PromptCharLimit int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: getEnvAsDuration("GEMINI_TIMEOUT", "60s"),
		},
		Screener: ScreenerConfig{
			MaxFileSize:     getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			PromptCharLimit: getEnvAsInt("PROMPT_CHAR_LIMIT", 3000),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
