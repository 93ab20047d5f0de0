package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

const defaultSystemPrompt = "You are Omnibot, a personal assistant. Answer the user's queries helpfully and concisely."

// Config aggregates every runtime setting of the service.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Agent  AgentConfig
}

// Load reads configuration from environment variables and then applies the
// optional JSON config file. The file path comes from the "config"
// environment variable, falling back to config.json in the working
// directory.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	agent, err := loadAgentConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{Server: server, AI: ai, Agent: agent}
	if err := cfg.applyFile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ServerConfig describes the HTTP server.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8000"
	}

	if strings.Contains(port, ":") {
		// Accept ":8000" or "127.0.0.1:8000" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the chat model backend.
type AIConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// Enabled reports whether the required credentials are present.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds a model instance from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("model credentials missing: provide ARK_API_KEY + Model or AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:   strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:   strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:       strings.TrimSpace(os.Getenv("Model")),
		BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}, nil
}

// AgentConfig shapes the assistant behind /chat.
type AgentConfig struct {
	SystemPrompt string
	HistoryLimit int
}

func loadAgentConfig() (AgentConfig, error) {
	limit := 10
	if override, err := parseOptionalIntEnv("AGENT_HISTORY_LIMIT"); err != nil {
		return AgentConfig{}, err
	} else if override != nil {
		if *override < 1 {
			limit = 1
		} else {
			limit = *override
		}
	}

	return AgentConfig{
		SystemPrompt: getEnvOrDefault("AGENT_SYSTEM_PROMPT", defaultSystemPrompt),
		HistoryLimit: limit,
	}, nil
}

// fileConfig mirrors the optional JSON config file. Only the fields present
// in the file override the environment.
type fileConfig struct {
	Server *struct {
		Addr string `json:"addr"`
	} `json:"server"`
	Agent *struct {
		SystemPrompt string `json:"systemPrompt"`
		HistoryLimit int    `json:"historyLimit"`
	} `json:"agent"`
}

func (c *Config) applyFile() error {
	path := strings.TrimSpace(os.Getenv("config"))
	explicit := path != ""
	if !explicit {
		path = fallbackConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("failed to read config file at %q: %w", path, err)
		}
		// The fallback file is optional.
		return nil
	}

	var file fileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file at %q: %w", path, err)
	}

	if file.Server != nil && strings.TrimSpace(file.Server.Addr) != "" {
		c.Server.Addr = strings.TrimSpace(file.Server.Addr)
	}
	if file.Agent != nil {
		if strings.TrimSpace(file.Agent.SystemPrompt) != "" {
			c.Agent.SystemPrompt = file.Agent.SystemPrompt
		}
		if file.Agent.HistoryLimit > 0 {
			c.Agent.HistoryLimit = file.Agent.HistoryLimit
		}
	}
	return nil
}

// fallbackConfigPath points at config.json next to the binary, where the
// assistant originally kept its default config.
func fallbackConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(exe), "config.json")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
