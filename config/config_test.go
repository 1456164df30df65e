package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, LLMProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4-turbo", cfg.LLM.Model)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, QuoteProviderYahoo, cfg.Quote.Provider)
	assert.Equal(t, 10*time.Second, cfg.Quote.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Cache.DefaultExpiration)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "gemini provider", mutate: func(c *Config) { c.LLM.Provider = LLMProviderGemini }},
		{name: "finance-go quotes", mutate: func(c *Config) { c.Quote.Provider = QuoteProviderFinanceGo }},
		{name: "unknown llm", mutate: func(c *Config) { c.LLM.Provider = "claude" }, wantErr: true},
		{name: "unknown quote source", mutate: func(c *Config) { c.Quote.Provider = "bloomberg" }, wantErr: true},
		{name: "zero port", mutate: func(c *Config) { c.API.Port = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				API:   API{Port: 8080},
				LLM:   LLM{Provider: LLMProviderOpenAI},
				Quote: Quote{Provider: QuoteProviderYahoo},
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("LLM_PROVIDER", LLMProviderGemini)
	t.Setenv("API_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, LLMProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, 9090, cfg.API.Port)
}
