package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is loaded from YAML, then overridden by environment variables so
// deployments can keep secrets out of the config file.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	HomeFacts HomeFactsConfig `yaml:"homefacts"`
	Funding   FundingConfig   `yaml:"funding"`
	Cache     CacheConfig     `yaml:"cache"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"dbname"`
}

type RedisConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Password    string `yaml:"password"`
	DB          int    `yaml:"db"`
	TLSEnabled  bool   `yaml:"tls_enabled"`
	TLSCertFile string `yaml:"tls_cert_file"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type HomeFactsConfig struct {
	BaseURL      string `yaml:"base_url"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Sandbox      bool   `yaml:"sandbox"`
}

type FundingConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type CacheConfig struct {
	DecisionTTLMinutes int `yaml:"decision_ttl_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides file values with environment variables. Empty variables
// are ignored so an empty export cannot blank out a file setting.
func (c *Config) applyEnv() error {
	envString("MONGO_URI", &c.Database.URI)
	envString("DB_NAME", &c.Database.DBName)
	envString("REDIS_HOST", &c.Redis.Host)
	envString("REDIS_PASSWORD", &c.Redis.Password)
	envString("JWT_SECRET", &c.JWT.Secret)
	envString("HOMEFACTS_BASE_URL", &c.HomeFacts.BaseURL)
	envString("HOMEFACTS_CLIENT_ID", &c.HomeFacts.ClientID)
	envString("HOMEFACTS_CLIENT_SECRET", &c.HomeFacts.ClientSecret)
	envString("FUNDING_BASE_URL", &c.Funding.BaseURL)
	envString("FUNDING_API_KEY", &c.Funding.APIKey)

	envBool("REDIS_TLS_ENABLED", &c.Redis.TLSEnabled)
	envString("REDIS_TLS_CERT_FILE", &c.Redis.TLSCertFile)
	envBool("HOMEFACTS_SANDBOX", &c.HomeFacts.Sandbox)

	for _, v := range []struct {
		key string
		dst *int
	}{
		{"SERVER_PORT", &c.Server.Port},
		{"REDIS_PORT", &c.Redis.Port},
		{"REDIS_DB", &c.Redis.DB},
		{"DECISION_CACHE_TTL_MINUTES", &c.Cache.DecisionTTLMinutes},
	} {
		if err := envInt(v.key, v.dst); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Redis.DB < 0 {
		c.Redis.DB = 0
	}
	if c.Cache.DecisionTTLMinutes <= 0 {
		c.Cache.DecisionTTLMinutes = 15
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		return fmt.Errorf("REDIS_PORT must be between 1 and 65535")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	// Sandbox mode serves canned records, so provider credentials are only
	// required against the live HomeFacts API.
	if !c.HomeFacts.Sandbox {
		if c.HomeFacts.BaseURL == "" {
			return fmt.Errorf("HOMEFACTS_BASE_URL is required unless sandbox mode is enabled")
		}
		if c.HomeFacts.ClientID == "" || c.HomeFacts.ClientSecret == "" {
			return fmt.Errorf("HOMEFACTS_CLIENT_ID and HOMEFACTS_CLIENT_SECRET are required unless sandbox mode is enabled")
		}
	}
	if c.Redis.TLSEnabled && c.Redis.TLSCertFile != "" {
		if _, err := os.Stat(c.Redis.TLSCertFile); os.IsNotExist(err) {
			return fmt.Errorf("TLS certificate file does not exist: %s", c.Redis.TLSCertFile)
		}
	}
	return nil
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "true"
	}
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s value: %v", key, err)
	}
	*dst = n
	return nil
}
