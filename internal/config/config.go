package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type OwnershipRule struct {
	Method    string `yaml:"method"`
	Path      string `yaml:"path"`
	Source    string `yaml:"source"`
	ParamName string `yaml:"paramName"`
}

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type SessionConfig struct {
	TTL string `yaml:"ttl"`
}

type ConfirmationConfig struct {
	TTL string `yaml:"ttl"`
	URL string `yaml:"url"`
}

type DraftConfig struct {
	TTL string `yaml:"ttl"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	Session      SessionConfig      `yaml:"session"`
	Confirmation ConfirmationConfig `yaml:"confirmation"`
	Drafts       DraftConfig        `yaml:"drafts"`
	Twilio       TwilioConfig       `yaml:"twilio"`
	Casbin       CasbinConfig       `yaml:"casbin"`
}

type Config struct {
	Port            string
	GinMode         string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	SessionTTL      time.Duration
	ConfirmationTTL time.Duration
	ConfirmationURL string
	DraftTTL        time.Duration
	TwilioSID       string
	TwilioToken     string
	TwilioFrom      string
	CasbinModelPath string
	OwnershipRules  []OwnershipRule
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	sessTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	confTTL, err := time.ParseDuration(configFile.Confirmation.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid confirmation TTL: %w", err)
	}

	draftTTL, err := time.ParseDuration(configFile.Drafts.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid draft TTL: %w", err)
	}

	ownershipRules, err := loadOwnershipRules("config/ownership_rules.yml")
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            fmt.Sprintf("%d", configFile.App.Port),
		GinMode:         configFile.App.GinMode,
		DSN:             configFile.Database.DSN,
		RedisAddr:       configFile.Redis.Addr,
		RedisPassword:   configFile.Redis.Password,
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       configFile.JWT.Secret,
		JWTIssuer:       configFile.JWT.Issuer,
		AccessTTL:       accTTL,
		RefreshTTL:      refTTL,
		SessionTTL:      sessTTL,
		ConfirmationTTL: confTTL,
		ConfirmationURL: configFile.Confirmation.URL,
		DraftTTL:        draftTTL,
		TwilioSID:       configFile.Twilio.AccountSID,
		TwilioToken:     configFile.Twilio.AuthToken,
		TwilioFrom:      configFile.Twilio.FromNumber,
		CasbinModelPath: configFile.Casbin.ModelPath,
		OwnershipRules:  ownershipRules,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func loadOwnershipRules(path string) ([]OwnershipRule, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read ownership rules file: %w", err)
	}

	var rules struct {
		Rules []OwnershipRule `yaml:"ownershipRules"`
	}
	if err := yaml.Unmarshal(bytes, &rules); err != nil {
		return nil, fmt.Errorf("could not parse ownership rules yaml: %w", err)
	}
	return rules.Rules, nil
}
