package llm

import (
	"fmt"
	"strings"

	"github.com/DIMO-Network/line-blog-webhook/internal/config"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// NewClient creates the generation client selected by settings.LLMProvider.
func NewClient(settings *config.Settings) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(settings.LLMProvider)) {
	case ProviderAnthropic, "":
		return NewAnthropic(settings.ClaudeAPIKey, settings.AnthropicBaseURL, nil), nil
	case ProviderOpenAI:
		return NewOpenAI(settings.OpenAIAPIKey, settings.OpenAIBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", settings.LLMProvider)
	}
}
