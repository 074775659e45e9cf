package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Feed names one upstream job source the engine pulls from.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Source struct {
		Feeds          []Feed  `yaml:"feeds"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		Burst          int     `yaml:"burst"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
	} `yaml:"source"`

	Admin struct {
		// Keyring account holding the bearer token for admin endpoints.
		KeyringAccount string `yaml:"keyring_account"`
	} `yaml:"admin"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
