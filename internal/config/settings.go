package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"line-blog-webhook"`

	LineChannelSecret      string `env:"LINE_CHANNEL_SECRET"`
	LineChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN"`
	LineAPIBaseURL         string `env:"LINE_API_BASE_URL" envDefault:"https://api.line.me"`
	VerifySignature        bool   `env:"VERIFY_SIGNATURE"`

	LLMProvider      string `env:"LLM_PROVIDER" envDefault:"anthropic"`
	LLMModel         string `env:"LLM_MODEL" envDefault:"claude-3-5-sonnet-20241022"`
	LLMMaxTokens     int    `env:"LLM_MAX_TOKENS" envDefault:"2000"`
	ClaudeAPIKey     string `env:"CLAUDE_API_KEY"`
	AnthropicBaseURL string `env:"ANTHROPIC_BASE_URL" envDefault:"https://api.anthropic.com"`
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`

	BlogSiteURL   string        `env:"BLOG_SITE_URL" envDefault:"https://your-blog.vercel.app"`
	EventFilter   string        `env:"EVENT_FILTER" envDefault:"eventType == \"message\" && messageType == \"text\""`
	EventDedupTTL time.Duration `env:"EVENT_DEDUP_TTL" envDefault:"10m"`

	KafkaBrokers string `env:"KAFKA_BROKERS"`
	ContentTopic string `env:"CONTENT_TOPIC" envDefault:"topic.line.blog.content"`
}
