package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfig reads battleserver.yaml from configPath (or . and config/) on top of the defaults.
// A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigName("battleserver")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	// default config path
	v.AddConfigPath(".")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("host", d.Host)
	v.SetDefault("port", d.Port)
	v.SetDefault("writeTimeout", d.WriteTimeout)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("logFile", d.LogFile)
	v.SetDefault("maxNameLength", d.MaxNameLength)
	v.SetDefault("arrival", d.Arrival)

	v.SetDefault("combat.healthMin", d.Combat.HealthMin)
	v.SetDefault("combat.healthMax", d.Combat.HealthMax)
	v.SetDefault("combat.chargesMin", d.Combat.ChargesMin)
	v.SetDefault("combat.chargesMax", d.Combat.ChargesMax)
	v.SetDefault("combat.damageMin", d.Combat.DamageMin)
	v.SetDefault("combat.damageMax", d.Combat.DamageMax)
	v.SetDefault("combat.powerMultiplier", d.Combat.PowerMultiplier)
	v.SetDefault("combat.powerHitChance", d.Combat.PowerHitChance)

	v.SetDefault("framing.bufferSize", d.Framing.BufferSize)
	v.SetDefault("framing.maxMessage", d.Framing.MaxMessage)
}
