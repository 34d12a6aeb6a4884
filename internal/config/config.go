package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SSUI"

type NotifyConfig struct {
	InfoMS    int `mapstructure:"info_ms"`
	SuccessMS int `mapstructure:"success_ms"`
	ErrorMS   int `mapstructure:"error_ms"`
}

type Config struct {
	DBPath     string       `mapstructure:"db_path"`
	StorageKey string       `mapstructure:"storage_key"`
	LogLevel   string       `mapstructure:"log_level"`
	LogFile    string       `mapstructure:"log_file"`
	Notify     NotifyConfig `mapstructure:"notify"`
}

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".ssui")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := GetDefaultConfig()
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("storage_key", def.StorageKey)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("notify.info_ms", def.Notify.InfoMS)
	v.SetDefault("notify.success_ms", def.Notify.SuccessMS)
	v.SetDefault("notify.error_ms", def.Notify.ErrorMS)

	return v
}

// loads config from file, falling back to defaults and SSUI_* env vars
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()
	if ConfigExists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("db_path", cfg.DBPath)
	v.Set("storage_key", cfg.StorageKey)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_file", cfg.LogFile)
	v.Set("notify.info_ms", cfg.Notify.InfoMS)
	v.Set("notify.success_ms", cfg.Notify.SuccessMS)
	v.Set("notify.error_ms", cfg.Notify.ErrorMS)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		DBPath:     filepath.Join(configDir, "theme.db"),
		StorageKey: "ssui-theme",
		LogLevel:   "warn",
		LogFile:    filepath.Join(configDir, "ssuitheme.log"),
		Notify: NotifyConfig{
			InfoMS:    3000,
			SuccessMS: 3000,
			ErrorMS:   5000,
		},
	}
}

func (c *Config) applyDefaults() {
	def := GetDefaultConfig()
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.StorageKey == "" {
		c.StorageKey = def.StorageKey
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Notify.InfoMS <= 0 {
		c.Notify.InfoMS = def.Notify.InfoMS
	}
	if c.Notify.SuccessMS <= 0 {
		c.Notify.SuccessMS = def.Notify.SuccessMS
	}
	if c.Notify.ErrorMS <= 0 {
		c.Notify.ErrorMS = def.Notify.ErrorMS
	}
}

func (n NotifyConfig) Info() time.Duration {
	return time.Duration(n.InfoMS) * time.Millisecond
}

func (n NotifyConfig) Success() time.Duration {
	return time.Duration(n.SuccessMS) * time.Millisecond
}

func (n NotifyConfig) Error() time.Duration {
	return time.Duration(n.ErrorMS) * time.Millisecond
}
