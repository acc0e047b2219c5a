package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/ideaforge/internal/adapters/artifacts"
	"github.com/bnema/ideaforge/internal/adapters/llm/gemini"
	tomlrepo "github.com/bnema/ideaforge/internal/adapters/repo/toml"
	githubsource "github.com/bnema/ideaforge/internal/adapters/search/github"
	serpersource "github.com/bnema/ideaforge/internal/adapters/search/serper"
	chainstore "github.com/bnema/ideaforge/internal/adapters/secrets/chain"
	"github.com/bnema/ideaforge/internal/application"
	"github.com/bnema/ideaforge/internal/domain"
	"github.com/bnema/ideaforge/internal/ports"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	appConfigDir = "ideaforge"
	secretsDir   = "secrets"

	defaultModel = "gemini-2.0-flash"
)

// Config is the resolved process configuration, passed explicitly to
// every component that needs it. Key sources record where each key was
// found (env, config, store) for the status command.
type Config struct {
	APIKey             string
	APIKeySource       string
	SearchAPIKey       string
	SearchAPIKeySource string
	Model              string
	OutputDir          string
	ConfigFile         string
}

// newGenerator is the seam the CLI tests use to swap the Gemini backend
// for a scripted fake.
var newGenerator = func(apiKey, model string) ports.Generator {
	return gemini.NewGenerator(apiKey, model)
}

type app struct {
	config      Config
	secretStore ports.SecretStore
	keys        *application.KeyService
	sessions    *application.SessionService
	history     ports.SessionRepository
	clock       ports.Clock
}

func wireApp() (*app, error) {
	// A .env in the working directory is a convenience, not a requirement.
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetDefault("model", defaultModel)
	if err := bindEnvs(cfg); err != nil {
		return nil, fmt.Errorf("bind config environment: %w", err)
	}

	history, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config directory: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(configDir, appConfigDir, secretsDir))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	keys := application.NewKeyService(secretStore)

	apiKey, apiKeySource := resolveKey(cfg, keys, "api_key", application.KeyGemini,
		"IDEAFORGE_API_KEY", "GOOGLE_API_KEY")
	searchKey, searchKeySource := resolveKey(cfg, keys, "search_api_key", application.KeySerper,
		"IDEAFORGE_SEARCH_API_KEY", "SERPER_API_KEY")

	return &app{
		config: Config{
			APIKey:             apiKey,
			APIKeySource:       apiKeySource,
			SearchAPIKey:       searchKey,
			SearchAPIKeySource: searchKeySource,
			Model:              cfg.GetString("model"),
			OutputDir:          cfg.GetString("output.dir"),
			ConfigFile:         cfg.ConfigFileUsed(),
		},
		secretStore: secretStore,
		keys:        keys,
		sessions:    application.NewSessionService(history),
		history:     history,
		clock:       ports.SystemClock{},
	}, nil
}

func bindEnvs(cfg *viper.Viper) error {
	bindings := [][]string{
		{"api_key", "IDEAFORGE_API_KEY", "GOOGLE_API_KEY"},
		{"search_api_key", "IDEAFORGE_SEARCH_API_KEY", "SERPER_API_KEY"},
		{"model", "IDEAFORGE_MODEL"},
		{"output.dir", "IDEAFORGE_OUTPUT_DIR"},
	}

	for _, binding := range bindings {
		if err := cfg.BindEnv(binding...); err != nil {
			return err
		}
	}

	return nil
}

// resolveKey prefers env over config file over secret store. A missing
// key resolves to the empty string and is surfaced by the command that
// needs it.
func resolveKey(cfg *viper.Viper, keys *application.KeyService, configKey, storeKey string, envs ...string) (string, string) {
	for _, env := range envs {
		if value := os.Getenv(env); value != "" {
			return value, "env"
		}
	}

	if value := cfg.GetString(configKey); value != "" {
		return value, "config"
	}

	if value, err := keys.Get(context.Background(), storeKey); err == nil && value != "" {
		return value, "store"
	}

	return "", ""
}

// pipelineService assembles the run pipeline, honoring per-command
// overrides for model and output directory.
func (a *app) pipelineService(model, outputDir string) *application.PipelineService {
	if model == "" {
		model = a.config.Model
	}
	if outputDir == "" {
		outputDir = a.config.OutputDir
	}

	sources := []ports.TrendSource{
		githubsource.NewSource(envOrDefault("IDEAFORGE_GITHUB_API", "")),
		serpersource.NewSource(a.config.SearchAPIKey, envOrDefault("IDEAFORGE_SERPER_API", "")),
	}

	return application.NewPipelineService(application.PipelineConfig{
		Generator: newGenerator(a.config.APIKey, model),
		Sources:   sources,
		Artifacts: artifacts.NewStore(outputDir),
		History:   a.history,
		Clock:     a.clock,
		Model:     model,
	})
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (a *app) requireAPIKey() error {
	if a.config.APIKey != "" {
		return nil
	}

	return fmt.Errorf("%w: set IDEAFORGE_API_KEY (or GOOGLE_API_KEY), add api_key to the config file, or run 'ideaforge auth set gemini'", domain.ErrAPIKeyMissing)
}
