package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descmate/descmate/internal/config"
	"github.com/descmate/descmate/internal/errors"
)

func configWithKeys(active config.AI, openaiKey, anthropicKey string) *config.Config {
	return &config.Config{
		AIConfig: config.AIConfig{ActiveAI: active},
		AIProviders: map[config.AI]config.AIProviderConfig{
			config.AIOpenAI:    {APIKey: openaiKey},
			config.AIAnthropic: {APIKey: anthropicKey},
		},
	}
}

func TestNewSummaryGenerator(t *testing.T) {
	t.Run("should pick anthropic when selected and keyed", func(t *testing.T) {
		cfg := configWithKeys(config.AIAnthropic, "sk-openai", "sk-ant")

		generator, err := NewSummaryGenerator(cfg)

		require.NoError(t, err)
		assert.Equal(t, "anthropic", generator.Name())
	})

	t.Run("should fall back to openai when anthropic is selected without a key", func(t *testing.T) {
		cfg := configWithKeys(config.AIAnthropic, "sk-openai", "")

		generator, err := NewSummaryGenerator(cfg)

		require.NoError(t, err)
		assert.Equal(t, "openai", generator.Name())
	})

	t.Run("should pick openai regardless of selection when only its key exists", func(t *testing.T) {
		cfg := configWithKeys(config.AIOpenAI, "sk-openai", "sk-ant")

		generator, err := NewSummaryGenerator(cfg)

		require.NoError(t, err)
		assert.Equal(t, "openai", generator.Name())
	})

	t.Run("should fail without any key", func(t *testing.T) {
		cfg := configWithKeys(config.AIOpenAI, "", "")

		generator, err := NewSummaryGenerator(cfg)

		assert.ErrorIs(t, err, errors.ErrNoProviderConfigured)
		assert.True(t, generator == nil, "generator interface should be truly nil, not a typed nil")
	})
}
