package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrMissingCredential   = errors.New("missing credential")
)

// providerEndpoint describes one supported OpenAI-compatible provider.
type providerEndpoint struct {
	baseURL      string
	defaultModel string
}

// openAICompatible lists the providers served through the OpenAI-compatible
// chat model. DeepSeek has its own component and is handled separately.
var openAICompatible = map[string]providerEndpoint{
	"gemini":      {"https://generativelanguage.googleapis.com/v1beta/openai/", "gemini-2.0-flash"},
	"openai":      {"https://api.openai.com/v1", "gpt-3.5-turbo"},
	"groq":        {"https://api.groq.com/openai/v1", "llama3-8b-8192"},
	"huggingface": {"https://router.huggingface.co/v1", "HuggingFaceH4/zephyr-7b-beta"},
	"cohere":      {"https://api.cohere.ai/compatibility/v1", "command-r"},
}

// SupportedProviders returns the provider names accepted by NewChatModel.
func SupportedProviders() []string {
	names := make([]string, 0, len(openAICompatible)+1)
	for name := range openAICompatible {
		names = append(names, name)
	}
	names = append(names, "deepseek")
	return names
}

// NewChatModel builds a tool-calling chat model for a provider. modelName
// overrides the provider default when non-empty.
func NewChatModel(ctx context.Context, provider, apiKey, modelName string) (model.ToolCallingChatModel, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w for provider %s", ErrMissingCredential, provider)
	}

	if provider == "deepseek" {
		if modelName == "" {
			modelName = "deepseek-chat"
		}
		chatModel, err := deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
			BaseURL:   "https://api.deepseek.com/v1",
			APIKey:    apiKey,
			Model:     modelName,
			MaxTokens: 2000,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek chat model: %w", err)
		}
		return chatModel, nil
	}

	endpoint, ok := openAICompatible[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
	if modelName == "" {
		modelName = endpoint.defaultModel
	}

	maxTokens := 2000
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:   endpoint.baseURL,
		APIKey:    apiKey,
		Model:     modelName,
		MaxTokens: &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s chat model: %w", provider, err)
	}
	return chatModel, nil
}
