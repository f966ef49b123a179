package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Env string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN         string `yaml:"url"`
		AutoMigrate bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	Seed struct {
		Users    int `yaml:"users"`    // количество пользователей
		Agencies int `yaml:"agencies"` // количество агентств
		Profiles int `yaml:"profiles"` // количество профилей
		Tags     int `yaml:"tags"`     // количество тегов
		Uploads  int `yaml:"uploads"`  // количество загрузок
	} `yaml:"seed"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию.
// Приоритет: переменные окружения, затем config.yaml
func LoadConfig() *Config {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file: %v", err)
		}
	} else {
		cfg.Database.DSN = dbURL
		cfg.Database.AutoMigrate = true
	}

	// Переменные окружения перекрывают yaml
	if env := os.Getenv("SERVER_ENV"); env != "" {
		cfg.Server.Env = env
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}

	applySeedEnv(&cfg)
	applySeedDefaults(&cfg)

	AppConfig = &cfg
	return &cfg
}

func applySeedEnv(cfg *Config) {
	if v := os.Getenv("SEED_USERS"); v != "" {
		cfg.Seed.Users = mustAtoi("SEED_USERS", v)
	}
	if v := os.Getenv("SEED_AGENCIES"); v != "" {
		cfg.Seed.Agencies = mustAtoi("SEED_AGENCIES", v)
	}
	if v := os.Getenv("SEED_PROFILES"); v != "" {
		cfg.Seed.Profiles = mustAtoi("SEED_PROFILES", v)
	}
	if v := os.Getenv("SEED_TAGS"); v != "" {
		cfg.Seed.Tags = mustAtoi("SEED_TAGS", v)
	}
	if v := os.Getenv("SEED_UPLOADS"); v != "" {
		cfg.Seed.Uploads = mustAtoi("SEED_UPLOADS", v)
	}
}

func applySeedDefaults(cfg *Config) {
	if cfg.Seed.Users == 0 {
		cfg.Seed.Users = 10
	}
	if cfg.Seed.Agencies == 0 {
		cfg.Seed.Agencies = 5
	}
	if cfg.Seed.Profiles == 0 {
		cfg.Seed.Profiles = 20
	}
	if cfg.Seed.Tags == 0 {
		cfg.Seed.Tags = 8
	}
	if cfg.Seed.Uploads == 0 {
		cfg.Seed.Uploads = 30
	}
}

func mustAtoi(name, v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid value for %s: %q", name, v)
	}
	return n
}
