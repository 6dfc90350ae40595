package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"jobdeck/internal/logging/types"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8000"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	LLM struct {
		// Provider/model used when a request doesn't pick one (chat endpoint)
		DefaultProvider string  `yaml:"default_provider" default:"ollama"`
		DefaultModel    string  `yaml:"default_model" default:"llama3.2:3b"`
		MaxTokens       int     `yaml:"max_tokens" default:"4000"`
		Temperature     float32 `yaml:"temperature" default:"0.7"`

		// Remote providers answer within tens of seconds; local inference
		// can legitimately take minutes.
		RemoteTimeout     time.Duration `yaml:"remote_timeout" default:"120s"`
		LocalTimeout      time.Duration `yaml:"local_timeout" default:"10m"`
		ListModelsTimeout time.Duration `yaml:"list_models_timeout" default:"3s"`

		Ollama struct {
			Endpoint       string   `yaml:"endpoint" default:"http://host.docker.internal:11434"`
			FallbackModels []string `yaml:"fallback_models"`
		} `yaml:"ollama"`

		OpenAI struct {
			Endpoint string   `yaml:"endpoint" default:"https://api.openai.com/v1/chat/completions"`
			Models   []string `yaml:"models"`
		} `yaml:"openai"`

		Claude struct {
			Endpoint string   `yaml:"endpoint" default:"https://api.anthropic.com"`
			Models   []string `yaml:"models"`
		} `yaml:"claude"`

		Gemini struct {
			Endpoint string   `yaml:"endpoint" default:"https://generativelanguage.googleapis.com/v1beta/models"`
			Models   []string `yaml:"models"`
		} `yaml:"gemini"`
	} `yaml:"llm"`

	Scraper struct {
		UserAgent        string        `yaml:"user_agent"`
		MaxRetries       int           `yaml:"max_retries" default:"3"`
		RequestTimeout   time.Duration `yaml:"request_timeout" default:"15s"`
		RetryDelay       time.Duration `yaml:"retry_delay" default:"1s"`
		MaxRedirects     int           `yaml:"max_redirects" default:"5"`
		MaxContentLength int           `yaml:"max_content_length" default:"8000"`
		MinSelectorText  int           `yaml:"min_selector_text" default:"100"`
		MinContentLength int           `yaml:"min_content_length" default:"50"`
	} `yaml:"scraper"`

	Store struct {
		FilePath string `yaml:"file_path" default:"job-applications.xlsx"`
	} `yaml:"store"`

	Logging struct {
		Level    string                `yaml:"level" default:"info"`
		Format   string                `yaml:"format" default:"json"`
		Adapters []types.AdapterConfig `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8000
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.LLM.DefaultProvider = "ollama"
	config.LLM.DefaultModel = "llama3.2:3b"
	config.LLM.MaxTokens = 4000
	config.LLM.Temperature = 0.7
	config.LLM.RemoteTimeout = 120 * time.Second
	config.LLM.LocalTimeout = 10 * time.Minute
	config.LLM.ListModelsTimeout = 3 * time.Second

	config.LLM.Ollama.Endpoint = "http://host.docker.internal:11434"
	config.LLM.Ollama.FallbackModels = []string{
		"llama3.2:1b",
		"llama3.2:3b",
		"qwen2.5:0.5b",
		"qwen2.5:1.5b",
		"phi4:latest",
	}

	config.LLM.OpenAI.Endpoint = "https://api.openai.com/v1/chat/completions"
	config.LLM.OpenAI.Models = []string{
		"gpt-4o-mini",
		"gpt-4o",
		"gpt-4.1",
		"gpt-4.1-mini",
	}

	config.LLM.Claude.Endpoint = "https://api.anthropic.com"
	config.LLM.Claude.Models = []string{
		"claude-3-opus-20240229",
		"claude-3-sonnet-20240229",
		"claude-3-haiku-20240307",
	}

	config.LLM.Gemini.Endpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	config.LLM.Gemini.Models = []string{
		"gemini-2.0-flash",
		"gemini-1.5-pro",
		"gemini-1.5-flash",
	}

	config.Scraper.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	config.Scraper.MaxRetries = 3
	config.Scraper.RequestTimeout = 15 * time.Second
	config.Scraper.RetryDelay = 1 * time.Second
	config.Scraper.MaxRedirects = 5
	config.Scraper.MaxContentLength = 8000
	config.Scraper.MinSelectorText = 100
	config.Scraper.MinContentLength = 50

	config.Store.FilePath = "job-applications.xlsx"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if endpoint := os.Getenv("OLLAMA_ENDPOINT"); endpoint != "" {
		c.LLM.Ollama.Endpoint = endpoint
	}

	if provider := os.Getenv("LLM_DEFAULT_PROVIDER"); provider != "" {
		c.LLM.DefaultProvider = provider
	}

	if model := os.Getenv("LLM_DEFAULT_MODEL"); model != "" {
		c.LLM.DefaultModel = model
	}

	if timeout := os.Getenv("LLM_LOCAL_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.LocalTimeout = d
		}
	}

	if timeout := os.Getenv("LLM_REMOTE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.RemoteTimeout = d
		}
	}

	if userAgent := os.Getenv("SCRAPER_USER_AGENT"); userAgent != "" {
		c.Scraper.UserAgent = userAgent
	}

	if retries := os.Getenv("SCRAPER_MAX_RETRIES"); retries != "" {
		if r, err := strconv.Atoi(retries); err == nil {
			c.Scraper.MaxRetries = r
		}
	}

	if filePath := os.Getenv("STORE_FILE"); filePath != "" {
		c.Store.FilePath = filePath
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
