package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	EmbedTopicName     string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	Groq        string
	HuggingFace string
	GoogleAI    string
	APINinjas   string
}

type AIConfig struct {
	LLMProvider       string // "groq" or "ollama"
	LLMModel          string // e.g. "llama-3.3-70b-versatile"
	EmbeddingProvider string // "huggingface", "ollama" or "gemini"
	EmbeddingModel    string
	OllamaBaseURL     string
	RetrievalTopK     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			EmbedTopicName:     getEnv("EMBED_PASSAGE_TOPIC_NAME", "EMBED_PASSAGE"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			Groq:        getEnv("GROQ_API_KEY", ""),
			HuggingFace: getEnv("HUGGINGFACEHUB_API_TOKEN", ""),
			GoogleAI:    getEnv("GOOGLE_AI_API_KEY", ""),
			APINinjas:   getEnv("API_NINJA_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "groq"),
			LLMModel:          getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "huggingface"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "sentence-transformers/all-MiniLM-L6-v2"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			RetrievalTopK:     getEnvAsInt("RETRIEVAL_TOP_K", 3),
		},
	}

	return cfg
}

// MustValidate terminates the process when a required key is missing.
// Running without the generation provider or the passage index is not a
// degraded mode, it is a misconfiguration.
func (c *Config) MustValidate() {
	if c.Database.Connection == "" {
		log.Fatal("Missing DB_CONNECTION_STRING. Check your .env file.")
	}
	if c.Ai.LLMProvider == "groq" && c.Keys.Groq == "" {
		log.Fatal("Missing GROQ_API_KEY. Check your .env file.")
	}
	if c.Ai.EmbeddingProvider == "huggingface" && c.Keys.HuggingFace == "" {
		log.Fatal("Missing HUGGINGFACEHUB_API_TOKEN. Check your .env file.")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
