package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the override file read by Load, relative to the working directory.
const DefaultEnvFile = ".env"

const (
	envDatabaseURL       = "MONGODB_URL"
	envVectorIndexURL    = "QDRANT_URL"
	envVectorIndexAPIKey = "QDRANT_API_KEY"
	envEmbeddingModel    = "EMBEDDING_MODEL"
	envCollectionName    = "COLLECTION_NAME"
	envLLMProvider       = "LLM_PROVIDER"
	envLLMAPIKey         = "GEMINI_API_KEY"
	envLLMModel          = "GEMINI_MODEL"
)

const (
	defaultEmbeddingModel = "all-MiniLM-L6-v2"
	defaultCollectionName = "users"
	defaultLLMProvider    = ProviderGemini
	defaultLLMModel       = "gemini-1.5-flash-latest"
)

const redactedValue = "********"

// dollarPlaceholder stands in for '$' while godotenv parses the file, so
// values are taken literally instead of being expanded as $NAME or ${NAME}.
const dollarPlaceholder = "\uE000"

// Provider identifies the LLM backend. Values are always lowercase.
type Provider string

// ProviderGemini selects Google Gemini.
const ProviderGemini Provider = "gemini"

// Settings is the resolved configuration for one process run.
type Settings struct {
	DatabaseURL       string   `yaml:"database_url" json:"database_url"`
	VectorIndexURL    string   `yaml:"vector_index_url" json:"vector_index_url"`
	VectorIndexAPIKey string   `yaml:"vector_index_api_key" json:"vector_index_api_key"`
	EmbeddingModel    string   `yaml:"embedding_model_name" json:"embedding_model_name"`
	CollectionName    string   `yaml:"collection_name" json:"collection_name"`
	LLMProvider       Provider `yaml:"llm_provider" json:"llm_provider"`
	LLMAPIKey         string   `yaml:"llm_api_key" json:"llm_api_key"`
	LLMModel          string   `yaml:"llm_model_name" json:"llm_model_name"`
}

// lookupEnv is swapped in tests that need a fixed process environment.
var lookupEnv = os.LookupEnv

var shared = sync.OnceValues(Load)

// Shared returns the process-wide settings, loading them on first use.
// Every call returns the same record and error.
func Shared() (Settings, error) {
	return shared()
}

// Load resolves settings from the process environment and DefaultEnvFile.
func Load() (Settings, error) {
	return LoadFile(DefaultEnvFile)
}

// LoadFile resolves settings from the process environment and the override
// file at path. A missing file is ignored, an empty path skips the file.
// Values already present in the process environment win over the file.
// The process environment is never modified.
func LoadFile(path string) (Settings, error) {
	fileValues, err := readOverrideFile(path)
	if err != nil {
		return Settings{}, err
	}

	lookup := func(key string) string {
		if value, ok := lookupEnv(key); ok {
			return value
		}
		return fileValues[key]
	}

	return Settings{
		DatabaseURL:       lookup(envDatabaseURL),
		VectorIndexURL:    lookup(envVectorIndexURL),
		VectorIndexAPIKey: lookup(envVectorIndexAPIKey),
		EmbeddingModel:    withDefault(lookup(envEmbeddingModel), defaultEmbeddingModel),
		CollectionName:    withDefault(lookup(envCollectionName), defaultCollectionName),
		LLMProvider:       normalizeProvider(lookup(envLLMProvider)),
		LLMAPIKey:         lookup(envLLMAPIKey),
		LLMModel:          withDefault(lookup(envLLMModel), defaultLLMModel),
	}, nil
}

// readOverrideFile parses the KEY=VALUE pairs of the override file.
// Values are not interpolated.
func readOverrideFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}

	data = bytes.ReplaceAll(data, []byte("$"), []byte(dollarPlaceholder))
	parsed, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}

	values := make(map[string]string, len(parsed))
	for key, value := range parsed {
		values[key] = strings.ReplaceAll(value, dollarPlaceholder, "$")
	}
	return values, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func normalizeProvider(raw string) Provider {
	raw = withDefault(strings.TrimSpace(raw), string(defaultLLMProvider))
	return Provider(strings.ToLower(raw))
}

// Redacted returns a copy with every non-empty secret masked.
func (s Settings) Redacted() Settings {
	if s.VectorIndexAPIKey != "" {
		s.VectorIndexAPIKey = redactedValue
	}
	if s.LLMAPIKey != "" {
		s.LLMAPIKey = redactedValue
	}
	return s
}

// MissingRequired lists the environment variables of required settings that
// resolved to an empty value. Load never checks this itself; callers decide
// whether an absent connection string is fatal.
func (s Settings) MissingRequired() []string {
	var missing []string
	if s.DatabaseURL == "" {
		missing = append(missing, envDatabaseURL)
	}
	if s.VectorIndexURL == "" {
		missing = append(missing, envVectorIndexURL)
	}
	return missing
}
