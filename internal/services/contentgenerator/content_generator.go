package contentgenerator

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/line-blog-webhook/internal/clients/llm"
	"github.com/rs/zerolog"
)

const (
	DefaultModel     = "claude-3-5-sonnet-20241022"
	DefaultMaxTokens = 2000
)

const promptTemplate = `「%s」についてのブログ記事を日本語で作成してください。

以下の構成で書いてください：
1. キャッチーなタイトル
2. 導入文
3. 本文（3つのセクション）
4. まとめ

読みやすく、SEOも意識した文章でお願いします。`

// Generation is the outcome of one generation attempt.
// Content is never empty: when Err is set it holds an error placeholder article.
type Generation struct {
	Content string
	Err     error
}

// Failed reports whether the provider call failed.
func (g Generation) Failed() bool {
	return g.Err != nil
}

// ContentGenerator writes blog articles about a topic through an LLM client.
type ContentGenerator struct {
	client    llm.Client
	model     string
	maxTokens int
	logger    zerolog.Logger
}

// NewContentGenerator creates a ContentGenerator. Empty model or non-positive maxTokens fall back to the defaults.
func NewContentGenerator(client llm.Client, model string, maxTokens int, logger zerolog.Logger) *ContentGenerator {
	if model == "" {
		model = DefaultModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &ContentGenerator{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Generate never fails outright; provider errors are returned alongside a placeholder body.
func (g *ContentGenerator) Generate(ctx context.Context, topic string) Generation {
	g.logger.Info().Str("topic", topic).Msg("Starting blog generation")

	text, err := g.client.Complete(ctx, llm.Request{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Prompt:    BuildPrompt(topic),
	})
	if err == nil && text == "" {
		err = llm.ErrEmptyCompletion
	}
	if err != nil {
		g.logger.Error().Err(err).Str("topic", topic).Msg("Blog generation failed")
		return Generation{Content: ErrorContent(topic, err), Err: err}
	}

	g.logger.Info().Str("topic", topic).Int("length", len([]rune(text))).Msg("Blog generation response received")
	return Generation{Content: text}
}

// BuildPrompt renders the article prompt for topic.
func BuildPrompt(topic string) string {
	return fmt.Sprintf(promptTemplate, topic)
}

// ErrorContent is the article body stored in place of a failed generation.
func ErrorContent(topic string, err error) string {
	return fmt.Sprintf("# %sについて\n\nエラーが発生しました: %s", topic, err.Error())
}
