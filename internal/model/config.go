package model

import "time"

// Config holds the complete oneaway configuration
type Config struct {
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	Coach       CoachConfig       `yaml:"coach" json:"coach"`
}

// CacheConfig controls report and commentary caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`               // Disk cache directory ("" = memory only)
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing parallelism
type ConcurrencyConfig struct {
	Workers        int     `yaml:"workers" json:"workers"`                   // Batch worker count
	CoachRate      float64 `yaml:"coach_rate" json:"coach_rate"`             // Coach calls per second per provider
	CoachRateBurst int     `yaml:"coach_rate_burst" json:"coach_rate_burst"` // Token bucket burst
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// CoachConfig configures the optional LLM coach
type CoachConfig struct {
	Provider    string `yaml:"provider" json:"provider"` // "", openai, anthropic, ollama
	Model       string `yaml:"model" json:"model"`
	APIKey      string `yaml:"-" json:"-"` // Never serialized; from environment
	BaseURL     string `yaml:"base_url" json:"base_url"`
	Timeout     int    `yaml:"timeout" json:"timeout"` // Seconds
	StrictWords bool   `yaml:"strict_words" json:"strict_words"`
	MaxTokens   int    `yaml:"max_tokens" json:"max_tokens"`

	// Proxy settings for provider HTTP clients
	HTTPProxy  string `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" json:"https_proxy"`
	NoProxy    string `yaml:"no_proxy" json:"no_proxy"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:        4,
			CoachRate:      1.0,
			CoachRateBurst: 2,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Coach: CoachConfig{
			Provider:    "", // Disabled by default
			Timeout:     30,
			StrictWords: true, // Always enforce
			MaxTokens:   800,
		},
	}
}
