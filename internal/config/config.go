// Package config defines the engine configuration: budgets, source
// toggles, keyword vocabularies and classifier settings, loaded from
// YAML over built-in defaults with environment overrides.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Board struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Publisher struct {
	Name string `yaml:"name"`
	Feed string `yaml:"feed"`
}

type Config struct {
	App struct {
		DataDir   string `yaml:"data_dir"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"app"`

	Budgets struct {
		Companies int `yaml:"companies"` // overall company target across hiring adapters
		Posts     int `yaml:"posts"`     // conversation post target
		SeedLimit int `yaml:"seed_limit"`
	} `yaml:"budgets"`

	HTTP struct {
		ReqPerSec      float64 `yaml:"req_per_sec"`
		Burst          int     `yaml:"burst"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		ProbeSeconds   int     `yaml:"probe_seconds"`
		DelayMillis    int     `yaml:"delay_millis"`
	} `yaml:"http"`

	Sources struct {
		JobSearch struct {
			Enabled  bool     `yaml:"enabled"`
			BaseURL  string   `yaml:"base_url"`
			Keywords []string `yaml:"keywords"`
		} `yaml:"jobsearch"`

		Portfolio struct {
			Enabled bool    `yaml:"enabled"`
			Boards  []Board `yaml:"boards"`
		} `yaml:"portfolio"`

		ATS struct {
			Enabled   bool     `yaml:"enabled"`
			Platforms []string `yaml:"platforms"` // workday/greenhouse/lever/ashby, in probe order
		} `yaml:"ats"`

		RSS struct {
			Enabled    bool        `yaml:"enabled"`
			Publishers []Publisher `yaml:"publishers"`
		} `yaml:"rss"`
	} `yaml:"sources"`

	Keywords struct {
		// Category -> terms, drives classifier keyword matching.
		Hiring map[string][]string `yaml:"hiring"`
		// Title words that make an ATS listing count as a security role.
		SecurityTitles []string `yaml:"security_titles"`
		// Terms an RSS item title must contain to become a PostSignal.
		Conversation []string `yaml:"conversation"`
	} `yaml:"keywords"`

	Classify struct {
		Enabled      bool    `yaml:"enabled"`
		Endpoint     string  `yaml:"endpoint"`
		Model        string  `yaml:"model"`
		APIKey       string  `yaml:"api_key"`
		MinRelevance float64 `yaml:"min_relevance"`
	} `yaml:"classify"`
}

// Load reads YAML config over the built-in defaults, then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	// overrides apply even when the file is missing or malformed, the
	// caller keeps running on the returned config either way
	b, err := os.ReadFile(path)
	if err != nil {
		cfg.applyEnvOverrides()
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		cfg.applyEnvOverrides()
		return cfg, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SIGNAL_ENGINE_DATA_DIR"); v != "" {
		c.App.DataDir = v
	}
	if v := os.Getenv("SIGNAL_ENGINE_OUTPUT_DIR"); v != "" {
		c.App.OutputDir = v
	}
	if v := os.Getenv("SIGNAL_ENGINE_COMPANIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Budgets.Companies = n
		}
	}
	if v := os.Getenv("SIGNAL_ENGINE_POSTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Budgets.Posts = n
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.Classify.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.Classify.Model = v
	}
}

// HiringCategories returns category names in a deterministic order for
// classifier prompts.
func (c Config) HiringCategories() []string {
	out := make([]string, 0, len(c.Keywords.Hiring))
	for _, name := range [...]string{"SaaS Security", "SSPM", "AI Agent Security", "SaaS Compliance", "AI Compliance"} {
		if _, ok := c.Keywords.Hiring[name]; ok {
			out = append(out, name)
		}
	}
	for name := range c.Keywords.Hiring {
		found := false
		for _, n := range out {
			if n == name {
				found = true
				break
			}
		}
		if !found {
			out = append(out, name)
		}
	}
	return out
}
