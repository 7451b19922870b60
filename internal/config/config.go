package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config collects every environment-driven setting. All keys have working
// local defaults so a dev setup needs nothing beyond a running Ollama.
type Config struct {
	OllamaBaseURL     string
	EmbeddingModel    string
	GenerationModel   string
	GenerationBackend string // "ollama" or "gemini"
	GeminiAPIKey      string
	GeminiModel       string

	CVDir     string
	SkillsDir string
	IndexDir  string

	ChunkSize    int
	ChunkOverlap int
	TopK         int

	Port string
}

// Load reads .env if present, then resolves every setting from the
// environment with defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("CONFIG: No .env file found, relying on environment variables.")
	}

	return &Config{
		OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		EmbeddingModel:    getEnv("EMBEDDING_MODEL", "llama3"),
		GenerationModel:   getEnv("GENERATION_MODEL", "llama3"),
		GenerationBackend: getEnv("GENERATION_BACKEND", "ollama"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		CVDir:             getEnv("CV_DIR", "data/cv"),
		SkillsDir:         getEnv("SKILLS_DIR", "data/skills_md"),
		IndexDir:          getEnv("INDEX_DIR", "data/vectorstore/index"),
		ChunkSize:         getEnvInt("CHUNK_SIZE", 500),
		ChunkOverlap:      getEnvInt("CHUNK_OVERLAP", 50),
		TopK:              getEnvInt("TOP_K", 7),
		Port:              getEnv("PORT", "8080"),
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
		log.Printf("CONFIG: Invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
