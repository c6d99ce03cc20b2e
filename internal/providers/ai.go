package providers

import (
	"github.com/descmate/descmate/internal/ai/anthropic"
	"github.com/descmate/descmate/internal/ai/openai"
	"github.com/descmate/descmate/internal/config"
	"github.com/descmate/descmate/internal/errors"
	"github.com/descmate/descmate/internal/ports"
)

// NewSummaryGenerator picks the backend from the configuration. The
// policy is ordered: Anthropic only when it is both selected and keyed,
// OpenAI whenever its key exists, otherwise no provider at all.
func NewSummaryGenerator(cfg *config.Config) (ports.SummaryGenerator, error) {
	if cfg.AIConfig.ActiveAI == config.AIAnthropic {
		if key := cfg.APIKeyFor(config.AIAnthropic); key != "" {
			client, err := anthropic.NewClient(key, cfg.ModelOrDefault(config.AIAnthropic))
			if err != nil {
				return nil, err
			}
			return client, nil
		}
	}

	if key := cfg.APIKeyFor(config.AIOpenAI); key != "" {
		client, err := openai.NewClient(key, cfg.ModelOrDefault(config.AIOpenAI))
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	return nil, errors.ErrNoProviderConfigured
}
