package database

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config configuration for the document database
type Config struct {
	Host   string `mapstructure:"host"`
	DBName string `mapstructure:"dbName"`
}

// InitConfig initialize database configuration
func InitConfig() (*Config, error) {
	subv := viper.Sub("mongodatabase")
	if subv == nil {
		return nil, errors.New("mongodatabase config section not found")
	}
	config := &Config{}
	err := subv.Unmarshal(&config)
	return config, err
}
