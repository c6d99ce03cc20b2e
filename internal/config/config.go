package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/descmate/descmate/internal/errors"
)

type (
	Config struct {
		Language string

		VCSConfig   VCSConfig
		AIConfig    AIConfig
		AIProviders map[AI]AIProviderConfig
	}

	VCSConfig struct {
		Token string
		Owner string
		Repo  string
	}

	AIConfig struct {
		ActiveAI AI
		Model    Model
	}

	AIProviderConfig struct {
		APIKey string
	}
)

const defaultLang = "en"

// FromEnv assembles the configuration from the environment the CI
// platform provides. Flag values are applied on top by the caller.
func FromEnv() *Config {
	cfg := &Config{
		Language: envOr("DESCMATE_LANG", defaultLang),
		VCSConfig: VCSConfig{
			Token: os.Getenv("GITHUB_TOKEN"),
		},
		AIConfig: AIConfig{
			ActiveAI: AI(envOr("DESCMATE_PROVIDER", string(AIOpenAI))),
			Model:    Model(os.Getenv("DESCMATE_MODEL")),
		},
		AIProviders: map[AI]AIProviderConfig{
			AIOpenAI:    {APIKey: os.Getenv("OPENAI_API_KEY")},
			AIAnthropic: {APIKey: os.Getenv("ANTHROPIC_API_KEY")},
		},
	}

	if repo := os.Getenv("GITHUB_REPOSITORY"); repo != "" {
		cfg.SetRepository(repo)
	}

	return cfg
}

// SetRepository splits an owner/repo slug into its parts. Invalid slugs
// leave the config untouched and surface later through Validate.
func (c *Config) SetRepository(slug string) {
	parts := strings.SplitN(slug, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return
	}
	c.VCSConfig.Owner = parts[0]
	c.VCSConfig.Repo = parts[1]
}

// Validate checks everything that must hold before any network call.
func (c *Config) Validate() error {
	if c.VCSConfig.Token == "" {
		return errors.ErrTokenMissing
	}

	if c.VCSConfig.Owner == "" || c.VCSConfig.Repo == "" {
		return errors.ErrRepositoryMissing
	}

	switch c.AIConfig.ActiveAI {
	case AIOpenAI, AIAnthropic:
	default:
		names := make([]string, 0, len(SupportedAIs()))
		for _, ai := range SupportedAIs() {
			names = append(names, string(ai))
		}
		return fmt.Errorf("AI provider '%s' not supported (supported: %s)", c.AIConfig.ActiveAI, strings.Join(names, ", "))
	}

	return nil
}

// APIKeyFor returns the configured key for a provider, if any.
func (c *Config) APIKeyFor(ai AI) string {
	return c.AIProviders[ai].APIKey
}

// ModelOrDefault resolves the model to request from the given provider.
func (c *Config) ModelOrDefault(ai AI) Model {
	if c.AIConfig.Model != "" {
		return c.AIConfig.Model
	}
	return DefaultModelForAI(ai)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
