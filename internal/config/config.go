package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const Version = "v0.3.0"

const fileName = ".pagecraft"

// Config holds application settings. The layout being edited is never stored here.
type Config struct {
	AIBackend      string        `mapstructure:"ai_backend"`
	AIModel        string        `mapstructure:"ai_model"`
	AIAPIKey       string        `mapstructure:"ai_api_key"`
	AIBaseURL      string        `mapstructure:"ai_base_url"`
	HFAccessToken  string        `mapstructure:"hf_access_token"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ServerPort     string        `mapstructure:"server_port"`
	OutputDir      string        `mapstructure:"output_dir"`
	DefaultFormat  string        `mapstructure:"default_format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai_backend", "huggingface")
	v.SetDefault("ai_model", "")
	v.SetDefault("ai_api_key", "")
	v.SetDefault("ai_base_url", "")
	v.SetDefault("hf_access_token", "")
	v.SetDefault("request_timeout", 60*time.Second)
	v.SetDefault("server_port", "4173")
	v.SetDefault("output_dir", ".")
	v.SetDefault("default_format", "react")
}

// LoadConfig reads ~/.pagecraft.yaml, PAGECRAFT_* variables and a .env file
// in the working directory. A missing file is not an error.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return Load(viper.GetViper(), home)
}

// Load is LoadConfig against an explicit viper instance and search directory.
func Load(v *viper.Viper, dir string) (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v.AddConfigPath(dir)
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("PAGECRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// HF_ACCESS_TOKEN is also honoured without the prefix.
	if cfg.HFAccessToken == "" {
		cfg.HFAccessToken = os.Getenv("HF_ACCESS_TOKEN")
	}

	return &cfg, nil
}

// Path returns the settings file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fileName+".yaml"), nil
}

func SaveConfig(key string, value interface{}) error {
	viper.Set(key, value)
	return Write()
}

func Write() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return viper.WriteConfigAs(path)
}

func Set(key string, value interface{}) {
	viper.Set(key, value)
}

func GetString(key string) string {
	return viper.GetString(key)
}

// Keys lists the settings accepted by `pagecraft config set`.
func Keys() []string {
	return []string{
		"ai_backend",
		"ai_model",
		"ai_api_key",
		"ai_base_url",
		"hf_access_token",
		"request_timeout",
		"server_port",
		"output_dir",
		"default_format",
	}
}

func IsKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}
