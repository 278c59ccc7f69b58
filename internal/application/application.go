package application

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/eugenenazirov/chatbot-settings/internal/config"
)

// DocumentStoreOptions configures the document store client.
type DocumentStoreOptions struct {
	URL string
}

// VectorIndexOptions configures the vector index client.
type VectorIndexOptions struct {
	URL        string
	APIKey     string
	Collection string
}

// EmbeddingOptions selects the embedding model.
type EmbeddingOptions struct {
	Model string
}

// LLMOptions configures the LLM client factory.
type LLMOptions struct {
	Provider config.Provider
	APIKey   string
	Model    string
}

var supportedProviders = map[config.Provider]struct{}{
	config.ProviderGemini: {},
}

// App holds the settings of one process run and the collaborator options derived from them.
type App struct {
	settings      config.Settings
	documentStore DocumentStoreOptions
	vectorIndex   VectorIndexOptions
	embedding     EmbeddingOptions
	llm           LLMOptions
	logger        *zap.Logger
}

// New derives collaborator options from settings and logs them with secrets masked.
func New(settings config.Settings, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	redacted := settings.Redacted()
	logger.Info("settings resolved",
		zap.String("database_url", redacted.DatabaseURL),
		zap.String("vector_index_url", redacted.VectorIndexURL),
		zap.String("vector_index_api_key", redacted.VectorIndexAPIKey),
		zap.String("embedding_model", redacted.EmbeddingModel),
		zap.String("collection", redacted.CollectionName),
		zap.String("llm_provider", string(redacted.LLMProvider)),
		zap.String("llm_api_key", redacted.LLMAPIKey),
		zap.String("llm_model", redacted.LLMModel),
	)

	return &App{
		settings:      settings,
		documentStore: DocumentStoreOptions{URL: settings.DatabaseURL},
		vectorIndex: VectorIndexOptions{
			URL:        settings.VectorIndexURL,
			APIKey:     settings.VectorIndexAPIKey,
			Collection: settings.CollectionName,
		},
		embedding: EmbeddingOptions{Model: settings.EmbeddingModel},
		llm: LLMOptions{
			Provider: settings.LLMProvider,
			APIKey:   settings.LLMAPIKey,
			Model:    settings.LLMModel,
		},
		logger: logger,
	}
}

// Settings returns the settings the App was built from.
func (a *App) Settings() config.Settings {
	return a.settings
}

// DocumentStore returns the options for the document store client.
func (a *App) DocumentStore() DocumentStoreOptions {
	return a.documentStore
}

// VectorIndex returns the options for the vector index client.
func (a *App) VectorIndex() VectorIndexOptions {
	return a.vectorIndex
}

// Embedding returns the embedding model selection.
func (a *App) Embedding() EmbeddingOptions {
	return a.embedding
}

// LLM returns the options for the LLM client factory.
func (a *App) LLM() LLMOptions {
	return a.llm
}

// Check reports every required setting that is missing and an unknown LLM
// provider, combined into one error. Loading never calls it; it is an opt-in
// fail-fast for entrypoints that want one.
func (a *App) Check() error {
	var err error
	for _, key := range a.settings.MissingRequired() {
		err = multierr.Append(err, fmt.Errorf("%s: %w", key, ErrMissingSetting))
	}
	if _, ok := supportedProviders[a.llm.Provider]; !ok {
		err = multierr.Append(err, fmt.Errorf("%q: %w", a.llm.Provider, ErrUnsupportedProvider))
	}

	for _, e := range multierr.Errors(err) {
		a.logger.Warn("settings check failed", zap.Error(e))
	}
	return err
}
