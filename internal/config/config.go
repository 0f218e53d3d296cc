// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/resume-tailor/internal/llm"
)

// Reference file names looked up next to the executable by default
const (
	MasterResumeFile = "master_resume.json"
	UserProfileFile  = "user_profile.json"
	DefaultLogLevel  = "warn"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values are filled from the environment and defaults.
type Config struct {
	// LLM
	Provider      string `json:"provider,omitempty"`        // openai, gemini or anthropic
	APIKey        string `json:"api_key,omitempty"`         // Credential for the selected provider
	Model         string `json:"model,omitempty"`           // Model identifier override
	OpenAIBaseURL string `json:"openai_base_url,omitempty"` // Chat Completions base URL

	// Paths
	MasterResumePath string `json:"master_resume,omitempty"` // Master bullet list
	UserProfilePath  string `json:"user_profile,omitempty"`  // Candidate profile
	OutputDir        string `json:"output_dir,omitempty"`    // Directory for generated file names

	// Behavior
	LogLevel string `json:"log_level,omitempty"` // logrus level name
	Verbose  bool   `json:"verbose,omitempty"`   // Print the tailored bullets to stderr
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds the environment layer of the configuration.
// provider selects which credential and model variables are read; when empty,
// LLM_PROVIDER and then the default provider are used. baseDir is where the
// reference files are expected when their paths are not set.
func FromEnv(provider string, getenv func(string) string, baseDir string) Config {
	if provider == "" {
		provider = getenv("LLM_PROVIDER")
	}
	provider = normalizeProvider(provider)

	cfg := Config{
		Provider:         provider,
		APIKey:           getenv(APIKeyEnv(provider)),
		Model:            getenv(ModelEnv(provider)),
		OpenAIBaseURL:    getenv("OPENAI_BASE_URL"),
		MasterResumePath: getenv("MASTER_RESUME_PATH"),
		UserProfilePath:  getenv("USER_PROFILE_PATH"),
		OutputDir:        getenv("RESUME_OUTPUT_DIR"),
		LogLevel:         getenv("LOG_LEVEL"),
	}

	if cfg.Model == "" {
		cfg.Model = llm.DefaultModel(llm.Provider(provider))
	}
	if cfg.MasterResumePath == "" {
		cfg.MasterResumePath = filepath.Join(baseDir, MasterResumeFile)
	}
	if cfg.UserProfilePath == "" {
		cfg.UserProfilePath = filepath.Join(baseDir, UserProfileFile)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg
}

// Validate checks that the configuration has valid values.
// A missing credential is a ConfigurationError: the process must not proceed.
func (c *Config) Validate() error {
	switch llm.Provider(c.Provider) {
	case llm.ProviderOpenAI, llm.ProviderGemini, llm.ProviderAnthropic:
	default:
		return &ConfigurationError{
			Message: fmt.Sprintf("unknown provider %q (expected openai, gemini or anthropic)", c.Provider),
		}
	}

	if strings.TrimSpace(c.APIKey) == "" {
		return &ConfigurationError{
			Message: fmt.Sprintf("%s not set (use the environment, .env or --api-key)", APIKeyEnv(c.Provider)),
		}
	}

	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return &ConfigurationError{Message: "invalid log level", Cause: err}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file values over the environment.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	result.Provider = normalizeProvider(result.Provider)
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.OpenAIBaseURL == "" {
		result.OpenAIBaseURL = defaults.OpenAIBaseURL
	}
	if result.MasterResumePath == "" {
		result.MasterResumePath = defaults.MasterResumePath
	}
	if result.UserProfilePath == "" {
		result.UserProfilePath = defaults.UserProfilePath
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Bool fields: cannot distinguish unset from false, so either side enables it
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// LLMConfig returns the client configuration for the selected provider
func (c *Config) LLMConfig() *llm.Config {
	return &llm.Config{
		Provider: llm.Provider(c.Provider),
		Model:    c.Model,
		APIKey:   c.APIKey,
		BaseURL:  c.OpenAIBaseURL,
	}
}

// APIKeyEnv returns the environment variable holding the provider's credential
func APIKeyEnv(provider string) string {
	switch llm.Provider(provider) {
	case llm.ProviderGemini:
		return "GEMINI_API_KEY"
	case llm.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

// ModelEnv returns the environment variable holding the provider's model override
func ModelEnv(provider string) string {
	switch llm.Provider(provider) {
	case llm.ProviderGemini:
		return "GEMINI_MODEL"
	case llm.ProviderAnthropic:
		return "ANTHROPIC_MODEL"
	default:
		return "OPENAI_MODEL"
	}
}

// ExecutableDir returns the directory of the running binary, or "." if unknown
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func normalizeProvider(raw string) string {
	p := strings.ToLower(strings.TrimSpace(raw))
	if p == "" {
		return string(llm.ProviderOpenAI)
	}
	return p
}
