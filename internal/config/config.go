package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// DocumentPath is the markdown document the generator reads.
	// Relative paths resolve against the working directory.
	DocumentPath string `json:"document_path,omitempty"`

	// ArtifactPath is where the generator writes the JSON corpus.
	ArtifactPath string `json:"artifact_path,omitempty"`

	// BaseURL is the site the runtime loader fetches from. The loader
	// appends the conventional artifact and document paths.
	BaseURL string `json:"base_url,omitempty"`

	// ArtifactURL and DocumentURL override the URLs derived from BaseURL.
	ArtifactURL string `json:"artifact_url,omitempty"`
	DocumentURL string `json:"document_url,omitempty"`

	// HTTPTimeoutSeconds bounds each loader fetch. 0 means the default.
	HTTPTimeoutSeconds int `json:"http_timeout_seconds,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// If set to 1, all database access is serialized (reduces "database is locked" errors).
	// 0 means use sql.DB default (unlimited). Only set if you experience contention.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// All tools are enabled by default. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DocumentPath:       "README.md",
		ArtifactPath:       "prompts-data.json",
		BaseURL:            "http://localhost:5173",
		HTTPTimeoutSeconds: 15,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.nanobanana.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// ResolveArtifactURL returns the explicit artifact URL override, or one
// derived from BaseURL.
func (c *Config) ResolveArtifactURL() string {
	if c.ArtifactURL != "" {
		return c.ArtifactURL
	}
	return c.BaseURL + "/prompts-data.json"
}

// ResolveDocumentURL returns the explicit document URL override, or one
// derived from BaseURL.
func (c *Config) ResolveDocumentURL() string {
	if c.DocumentURL != "" {
		return c.DocumentURL
	}
	return c.BaseURL + "/README.md"
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.DocumentPath = overlay.DocumentPath
	if result.DocumentPath == "" {
		result.DocumentPath = base.DocumentPath
	}

	result.ArtifactPath = overlay.ArtifactPath
	if result.ArtifactPath == "" {
		result.ArtifactPath = base.ArtifactPath
	}

	result.BaseURL = overlay.BaseURL
	if result.BaseURL == "" {
		result.BaseURL = base.BaseURL
	}

	result.ArtifactURL = overlay.ArtifactURL
	if result.ArtifactURL == "" {
		result.ArtifactURL = base.ArtifactURL
	}

	result.DocumentURL = overlay.DocumentURL
	if result.DocumentURL == "" {
		result.DocumentURL = base.DocumentURL
	}

	result.HTTPTimeoutSeconds = overlay.HTTPTimeoutSeconds
	if result.HTTPTimeoutSeconds == 0 {
		result.HTTPTimeoutSeconds = base.HTTPTimeoutSeconds
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
