package cache

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config redis cache configuration
type Config struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
}

// InitConfig initialize cache configuration. The cache section is optional;
// a missing section is reported as an error so callers can run without it.
func InitConfig() (*Config, error) {
	subv := viper.Sub("cache")
	if subv == nil {
		return nil, errors.New("cache config section not found")
	}
	config := &Config{}
	err := subv.Unmarshal(&config)
	return config, err
}
