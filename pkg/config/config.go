package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ModelSettings struct {
		Model       string  `yaml:"model"`
		Temperature float64 `yaml:"temperature"`
		TopP        float64 `yaml:"top_p"`
	} `yaml:"model_settings"`
	Engagement struct {
		CooldownSeconds float64 `yaml:"cooldown_seconds"`
		MaxHistoryPairs int     `yaml:"max_history_pairs"`
	} `yaml:"engagement"`
	Personas struct {
		Default string          `yaml:"default"`
		Custom  []PersonaConfig `yaml:"custom"`
	} `yaml:"personas"`
}

// PersonaConfig lets config.yml add extra character profiles on top of
// the built-in set.
type PersonaConfig struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Aliases     []string `yaml:"aliases"`
}

func defaults() *Config {
	config := &Config{}
	config.ModelSettings.Model = "llama-3.3-70b"
	config.ModelSettings.Temperature = 1
	config.ModelSettings.TopP = 1
	config.Engagement.CooldownSeconds = 2
	config.Engagement.MaxHistoryPairs = 20
	config.Personas.Default = "ed"
	return config
}

func LoadConfig(path string) (*Config, error) {
	config := defaults()

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Unmarshal over the defaults so a partial file keeps them
	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
