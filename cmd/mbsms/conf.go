package main

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/supernova0730/mbsms/adapters/sms/messagebird"
	"github.com/supernova0730/mbsms/mbTools"
)

type ConfSt struct {
	Debug      bool          `mapstructure:"DEBUG"`
	LogLevel   string        `mapstructure:"LOG_LEVEL"`
	Username   string        `mapstructure:"MB_USERNAME"`
	Password   string        `mapstructure:"MB_PASSWORD"`
	ApiUrl     string        `mapstructure:"MB_API_URL"`
	Timeout    time.Duration `mapstructure:"MB_TIMEOUT"`
	HttpListen string        `mapstructure:"HTTP_LISTEN"`
	HttpCors   bool          `mapstructure:"HTTP_CORS"`
}

// loadConf reads .env (if any), the optional config file and the environment.
// Environment variables win over the file.
func loadConf(confFile string) (*ConfSt, error) {
	_ = godotenv.Load()

	mbTools.SetViperDefaultsFromObj(ConfSt{})

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MB_API_URL", messagebird.DefaultBaseUrl)
	viper.SetDefault("MB_TIMEOUT", messagebird.DefaultTimeout.String())
	viper.SetDefault("HTTP_LISTEN", ":8080")
	viper.SetDefault("DEBUG", "false")
	viper.SetDefault("HTTP_CORS", "false")

	if confFile != "" {
		viper.SetConfigFile(confFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	conf := &ConfSt{}

	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *ConfSt) requireCredentials() error {
	if c.Username == "" || c.Password == "" {
		return errors.New("MB_USERNAME and MB_PASSWORD must be set")
	}
	return nil
}
