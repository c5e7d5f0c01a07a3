package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configName is the config file name without extension.
const configName = ".stylelens"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for stylelens settings.
const envPrefix = "STYLELENS"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	// Rule identifiers are case-sensitive, but viper lowercases map
	// keys. Reload the mappings section directly so key case survives.
	mappingsErr := loadMappings(viperCfg.ConfigFileUsed(), &cfg)
	if mappingsErr != nil {
		return nil, mappingsErr
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func loadMappings(configFile string, cfg *Config) error {
	if configFile == "" {
		return nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Mappings map[string]string `yaml:"mappings"`
	}

	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("unmarshal mappings: %w", err)
	}

	cfg.Mappings = raw.Mappings

	return nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("checkstyle.jar", DefaultCheckstyleJar)
	viperCfg.SetDefault("checkstyle.checks", DefaultCheckstyleChecks)
	viperCfg.SetDefault("checkstyle.report", "")
	viperCfg.SetDefault("checkstyle.java", "")
	viperCfg.SetDefault("output.dir", DefaultOutputDir)
}
