package config

type AI string

const (
	AIOpenAI    AI = "openai"
	AIAnthropic AI = "anthropic"
)

type Model string

const (
	ModelGPT4      Model = "gpt-4"
	ModelGPT4o     Model = "gpt-4o"
	ModelGPT4oMini Model = "gpt-4o-mini"

	ModelClaude35Sonnet Model = "claude-3-5-sonnet-latest"
	ModelClaude35Haiku  Model = "claude-3-5-haiku-latest"
)

func SupportedAIs() []AI {
	return []AI{
		AIOpenAI,
		AIAnthropic,
	}
}

func ModelsForAI(ai AI) []Model {
	switch ai {
	case AIOpenAI:
		return []Model{
			ModelGPT4,
			ModelGPT4o,
			ModelGPT4oMini,
		}
	case AIAnthropic:
		return []Model{
			ModelClaude35Sonnet,
			ModelClaude35Haiku,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForAI(ai AI) Model {
	models := ModelsForAI(ai)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}
