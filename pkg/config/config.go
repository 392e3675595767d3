package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	LLM      LLMConfig
	Matching MatchingConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level  string
	Format string // json or console
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxConns     int32
	QueryTimeout time.Duration
}

type JWTConfig struct {
	SecretKey  string
	Issuer     string
	Expiration time.Duration
}

const (
	ProviderGigaChat = "gigachat"
	ProviderOpenAI   = "openai"
)

type LLMConfig struct {
	Provider        string
	Timeout         time.Duration
	Temperature     float64
	ClarifyMaxWords int
	GigaChat        GigaChatConfig
	OpenAI          OpenAIConfig
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// maxPerStage is the largest visible course list a stage may have.
const maxPerStage = 3

type MatchingConfig struct {
	PerStageLimit int // 1..3
	QueryTimeout  time.Duration
	Concurrency   int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root.
	// Missing files are fine: plain environment variables work the same way.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "90"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	dbTimeoutMs, _ := strconv.Atoi(getEnv("DB_QUERY_TIMEOUT_MS", "10000"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	llmTimeout, _ := strconv.Atoi(getEnv("LLM_TIMEOUT", "60"))
	temperature, err := strconv.ParseFloat(getEnv("LLM_TEMPERATURE", "0.3"), 64)
	if err != nil {
		temperature = 0.3
	}
	clarifyWords, _ := strconv.Atoi(getEnv("CLARIFY_MAX_WORDS", "250"))
	perStage, _ := strconv.Atoi(getEnv("MATCH_PER_STAGE_LIMIT", "3"))
	queryTimeoutMs, _ := strconv.Atoi(getEnv("MATCH_QUERY_TIMEOUT_MS", "5000"))
	concurrency, _ := strconv.Atoi(getEnv("MATCH_CONCURRENCY", "4"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	if perStage <= 0 || perStage > maxPerStage {
		perStage = maxPerStage
	}
	if dbTimeoutMs <= 0 {
		dbTimeoutMs = 10000
	}
	if clarifyWords <= 0 {
		clarifyWords = 250
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			DBName:       getEnv("DB_NAME", "course_recommender"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxConns:     int32(maxConns),
			QueryTimeout: time.Duration(dbTimeoutMs) * time.Millisecond,
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Issuer:     getEnv("JWT_ISSUER", ""),
			Expiration: time.Duration(jwtExp) * time.Hour,
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(getEnv("LLM_PROVIDER", ProviderGigaChat)),
			Timeout:         time.Duration(llmTimeout) * time.Second,
			Temperature:     temperature,
			ClarifyMaxWords: clarifyWords,
			GigaChat: GigaChatConfig{
				APIKey:             getEnv("GIGACHAT_API_KEY", ""),
				Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
				Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
				InsecureSkipVerify: insecureSkipVerify,
			},
			OpenAI: OpenAIConfig{
				APIKey:  getEnv("OPENAI_API_KEY", ""),
				BaseURL: getEnv("OPENAI_BASE_URL", ""),
				Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			},
		},
		Matching: MatchingConfig{
			PerStageLimit: perStage,
			QueryTimeout:  time.Duration(queryTimeoutMs) * time.Millisecond,
			Concurrency:   concurrency,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
