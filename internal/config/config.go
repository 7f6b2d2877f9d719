package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// Sprint defaults applied to rooms created on first join
	DefaultSprintMinutes = 25
	DefaultSprintPrompt  = "Write about a character discovering something unexpected..."
)

type Config struct {
	GeneralParams    GeneralParams
	HttpServerParams HttpServerParams
	SprintParams     SprintParams
}

type GeneralParams struct {
	Env string
}

type HttpServerParams struct {
	Address string
	Port    string
}

type SprintParams struct {
	DurationMinutes int
	Prompt          string
}

type ConfigManager struct {
	v      *viper.Viper
	config *Config
}

// NewConfigManager creates new config manager that handles
// all viper config options and loads a config from yaml
func NewConfigManager(configPath string) (*ConfigManager, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("general_params.env", "dev")
	v.SetDefault("sprint_params.duration_minutes", DefaultSprintMinutes)
	v.SetDefault("sprint_params.prompt", DefaultSprintPrompt)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cm := &ConfigManager{v: v}

	if err := cm.loadConfig(); err != nil {
		return nil, err
	}

	return cm, nil
}

// Extracting data from yaml file and loading into Config
func (cm *ConfigManager) loadConfig() error {
	cm.config = &Config{
		GeneralParams: GeneralParams{
			Env: cm.v.GetString("general_params.env"),
		},
		HttpServerParams: HttpServerParams{
			Address: cm.v.GetString("http_server_params.http_server_address"),
			Port:    cm.v.GetString("http_server_params.http_server_port"),
		},
		SprintParams: SprintParams{
			DurationMinutes: cm.v.GetInt("sprint_params.duration_minutes"),
			Prompt:          cm.v.GetString("sprint_params.prompt"),
		},
	}
	return nil
}

// Geting config instance
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

func (h *HttpServerParams) GetAddress() string {
	return fmt.Sprintf(
		"%s:%s",
		h.Address,
		h.Port,
	)
}

func (c *Config) Validate() error {
	// Checking out enviroment variable
	switch c.GeneralParams.Env {
	case "dev", "prod", "test":
	default:
		return fmt.Errorf("env parameter is invalid: %s. try dev/prod/test instead", c.GeneralParams.Env)
	}

	// Checking http server parameters
	if c.HttpServerParams.Port == "" {
		return fmt.Errorf("http server port is required")
	}

	// Checking sprint parameters
	if c.SprintParams.DurationMinutes < 0 {
		return fmt.Errorf("sprint duration must not be negative: %d", c.SprintParams.DurationMinutes)
	}
	if c.SprintParams.Prompt == "" {
		return fmt.Errorf("sprint prompt is required")
	}

	return nil
}
