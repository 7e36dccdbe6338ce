package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Storage struct {
		Driver   string `yaml:"driver"`
		DSN      string `yaml:"dsn"`
		SeedDemo bool   `yaml:"seed_demo"`
	} `yaml:"storage"`
}

const defaultPath = "config/config.yaml"

// LoadConfig reads the yaml config and applies environment overrides.
// STORAGE_DRIVER and DATABASE_DSN win over the file so deployments can
// switch backends without editing it.
func LoadConfig() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if driver := os.Getenv("STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Storage.DSN = dsn
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "memory"
	}
	return cfg
}
