package model

import "time"

// Config holds all runtime configuration for scrutiny
type Config struct {
	Style       string            `yaml:"style" json:"style"` // citation style for file and batch runs
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Search      SearchConfig      `yaml:"search" json:"search"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// HTTPConfig controls outbound HTTP behavior (URL checks, metadata fetches)
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy      string        `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
	// Per-domain politeness for URL checks
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// SearchConfig controls the web search provider
type SearchConfig struct {
	Provider   string `yaml:"provider" json:"provider"` // "serper"
	APIKey     string `yaml:"api_key,omitempty" json:"-"`
	BaseURL    string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	MaxResults int    `yaml:"max_results" json:"max_results"`
	Region     string `yaml:"region" json:"region"`
}

// CacheConfig controls the layered cache for URL checks and search responses
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	Workers    int `yaml:"workers" json:"workers"`         // batch processing
	URLWorkers int `yaml:"url_workers" json:"url_workers"` // concurrent URL checks
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig controls the optional report summarizer
type LLMConfig struct {
	Provider       string `yaml:"provider,omitempty" json:"provider,omitempty"` // openai, anthropic, ollama, ""
	Model          string `yaml:"model,omitempty" json:"model,omitempty"`
	APIKey         string `yaml:"api_key,omitempty" json:"-"`
	BaseURL        string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout        int    `yaml:"timeout" json:"timeout"` // seconds
	StrictEvidence bool   `yaml:"strict_evidence" json:"strict_evidence"`
	MaxTokens      int    `yaml:"max_tokens" json:"max_tokens"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Style: "APA",
		HTTP: HTTPConfig{
			Timeout:           10 * time.Second,
			UserAgent:         "Scrutiny/0.1 (+https://github.com/avezina/scrutiny)",
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Search: SearchConfig{
			Provider:   "serper",
			MaxResults: 5,
			Region:     "us-en",
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:    4,
			URLWorkers: 20,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Timeout:        30,
			StrictEvidence: true,
			MaxTokens:      1000,
		},
	}
}
