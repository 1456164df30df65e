package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"

	QuoteProviderYahoo     = "yahoo"
	QuoteProviderFinanceGo = "finance_go"
)

type Config struct {
	Log   Logger `mapstructure:"logger"`
	API   API    `mapstructure:"api"`
	LLM   LLM    `mapstructure:"llm"`
	Quote Quote  `mapstructure:"quote"`
	Cache Cache  `mapstructure:"cache"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LLM configures the completion provider. Model and temperature are fixed
// per deployment; the chat pipeline never derives them.
type LLM struct {
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float32       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type Quote struct {
	Provider string        `mapstructure:"provider"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"*"})

	v.SetDefault("llm.provider", LLMProviderOpenAI)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gpt-4-turbo")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.timeout", 60*time.Second)

	v.SetDefault("quote.provider", QuoteProviderYahoo)
	v.SetDefault("quote.base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("quote.timeout", 10*time.Second)

	v.SetDefault("cache.default_expiration", 30*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)
}

// Load reads config.yaml from the working directory, then lets environment
// variables (LLM_API_KEY, API_PORT, ...) override it. A .env file is loaded
// into the environment first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case LLMProviderOpenAI, LLMProviderGemini:
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}

	switch c.Quote.Provider {
	case QuoteProviderYahoo, QuoteProviderFinanceGo:
	default:
		return fmt.Errorf("unsupported quote provider: %q", c.Quote.Provider)
	}

	if c.API.Port <= 0 {
		return fmt.Errorf("invalid api port: %d", c.API.Port)
	}
	return nil
}
