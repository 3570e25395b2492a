package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	LLM        LLMConfig
	History    HistoryConfig
	Generation GenerationConfig
	Cache      CacheConfig
	Redis      RedisConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigin   string
}

type LoggerConfig struct {
	Env   string
	Level string
}

// LLMConfig selects and configures the model backend.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	ServerURL   string
	Temperature float64
	// Timeout bounds one model call. Zero means no bound.
	Timeout time.Duration
}

type HistoryConfig struct {
	// Capacity is at most MaxHistoryCapacity.
	Capacity int
}

const MaxHistoryCapacity = 5

// GenerationConfig names the parse failure policy of each structured output.
type GenerationConfig struct {
	QuizParseFailure string
	PlanParseFailure string
}

type CacheConfig struct {
	Enabled       bool
	CompletionTTL time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

const (
	ProviderGoogleAI = "googleai"
	ProviderGenAI    = "genai"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 0)
	v.SetDefault("server.write_timeout", 0)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.cors_origin", "http://localhost:3000")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("llm.provider", ProviderGoogleAI)
	v.SetDefault("llm.model", "gemini-1.5-pro")
	v.SetDefault("llm.server", "http://localhost:11434")
	v.SetDefault("llm.temperature", 0)
	v.SetDefault("llm.timeout", 0)

	v.SetDefault("history.capacity", 5)

	v.SetDefault("generation.quiz_parse_failure", "abort")
	v.SetDefault("generation.plan_parse_failure", "fallback")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.completion_ttl", "24h")

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
}

// LoadConfig reads config.yaml (optional) and applies environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
			CORSOrigin:   v.GetString("server.cors_origin"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		LLM: LLMConfig{
			Provider:    v.GetString("llm.provider"),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			ServerURL:   v.GetString("llm.server"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     time.Duration(v.GetInt("llm.timeout")) * time.Second,
		},
		History: HistoryConfig{
			Capacity: v.GetInt("history.capacity"),
		},
		Generation: GenerationConfig{
			QuizParseFailure: v.GetString("generation.quiz_parse_failure"),
			PlanParseFailure: v.GetString("generation.plan_parse_failure"),
		},
		Cache: CacheConfig{
			Enabled:       v.GetBool("cache.enabled"),
			CompletionTTL: v.GetDuration("cache.completion_ttl"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		config.Server.CORSOrigin = origin
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
	}
	if key := os.Getenv("LLM_API_KEY"); key != "" {
		config.LLM.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.LLM.APIKey = key
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	return config
}

// Validate checks settings that would otherwise fail at first use.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGoogleAI, ProviderGenAI, ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm provider %q requires an API key (set GEMINI_API_KEY)", c.LLM.Provider)
		}
	case ProviderOllama:
		if c.LLM.ServerURL == "" {
			return errors.New("llm provider \"ollama\" requires llm.server")
		}
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.Server.CORSOrigin == "" {
		return errors.New("server.cors_origin cannot be empty")
	}
	if c.Server.CORSOrigin == "*" {
		return errors.New("server.cors_origin cannot be a wildcard when credentials are allowed")
	}
	if c.History.Capacity > MaxHistoryCapacity {
		return fmt.Errorf("history.capacity cannot exceed %d, got %d", MaxHistoryCapacity, c.History.Capacity)
	}
	if c.Cache.Enabled && c.Redis.Address == "" {
		return errors.New("cache is enabled but redis.address is empty")
	}
	return nil
}
