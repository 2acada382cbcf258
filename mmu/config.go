package mmu

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// DefaultPageSize is the page size used to turn trace addresses into pages
const DefaultPageSize = 4096

// Config holds simulator configuration
type Config struct {
	// Memory Configuration
	Frames   int    `json:"frames"`    // Number of physical frames
	Policy   string `json:"policy"`    // Replacement policy (clock, lru, rand)
	Seed     int64  `json:"seed"`      // Seed for the random policy
	PageSize uint64 `json:"page_size"` // Page size in bytes (default: 4096)

	// Trace Configuration
	TraceCompression string `json:"trace_compression"` // Trace compression (auto, none, snappy, lz4)

	// Diagnostics
	Debug    bool   `json:"debug"`     // Log every access and eviction
	LogLevel string `json:"log_level"` // Log level (debug, info, warn, error)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Frames:           16,
		Policy:           PolicyClock,
		Seed:             1,
		PageSize:         DefaultPageSize,
		TraceCompression: "auto",
		Debug:            false,
		LogLevel:         "info",
	}
}

// LoadConfigFromFile loads configuration from a JSON file
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	err = json.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadConfigFromEnv loads configuration from environment variables
// Falls back to default values if environment variables are not set
func LoadConfigFromEnv() *Config {
	return DefaultConfig().ApplyEnv()
}

// ApplyEnv overrides fields from MEMSIM_* environment variables and returns c
func (c *Config) ApplyEnv() *Config {
	if val := os.Getenv("MEMSIM_FRAMES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.Frames = n
		}
	}

	if val := os.Getenv("MEMSIM_POLICY"); val != "" {
		c.Policy = val
	}

	if val := os.Getenv("MEMSIM_SEED"); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			c.Seed = seed
		}
	}

	if val := os.Getenv("MEMSIM_PAGE_SIZE"); val != "" {
		if size, err := strconv.ParseUint(val, 10, 64); err == nil {
			c.PageSize = size
		}
	}

	if val := os.Getenv("MEMSIM_TRACE_COMPRESSION"); val != "" {
		c.TraceCompression = val
	}

	if val := os.Getenv("MEMSIM_DEBUG"); val != "" {
		c.Debug = val == "true" || val == "1"
	}

	if val := os.Getenv("MEMSIM_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}

	return c
}

// SaveToFile saves the configuration to a JSON file
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration and rewrites policy aliases to their
// canonical name
func (c *Config) Validate() error {
	if c.Frames < 1 {
		return ErrInvalidFrameCount("Validate", c.Frames)
	}

	c.Policy = CanonicalPolicy(c.Policy)
	switch c.Policy {
	case PolicyClock, PolicyLRU, PolicyRandom:
	default:
		return ErrUnknownPolicy("Validate", c.Policy)
	}

	if c.PageSize == 0 {
		return ErrInvalidConfig("Validate", "page size must be greater than 0")
	}

	if c.PageSize&(c.PageSize-1) != 0 {
		return ErrInvalidConfig("Validate", fmt.Sprintf("page size %d is not a power of two", c.PageSize))
	}

	validCompressions := map[string]bool{
		"auto":   true,
		"none":   true,
		"snappy": true,
		"lz4":    true,
	}
	if !validCompressions[c.TraceCompression] {
		return ErrInvalidConfig("Validate",
			fmt.Sprintf("invalid trace compression: %s (must be auto, none, snappy, or lz4)", c.TraceCompression))
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidConfig("Validate",
			fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel))
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
