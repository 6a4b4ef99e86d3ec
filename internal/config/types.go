package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Arrival policies decide where a new connection enters the matchmaking order.
const (
	ArrivalFront = "front"
	ArrivalBack  = "back"
)

// CombatSpecs holds the dice ranges used when matches start and moves resolve.
type CombatSpecs struct {
	HealthMin       int     `mapstructure:"healthMin"`
	HealthMax       int     `mapstructure:"healthMax"`
	ChargesMin      int     `mapstructure:"chargesMin"`
	ChargesMax      int     `mapstructure:"chargesMax"`
	DamageMin       int     `mapstructure:"damageMin"`
	DamageMax       int     `mapstructure:"damageMax"`
	PowerMultiplier int     `mapstructure:"powerMultiplier"`
	PowerHitChance  float64 `mapstructure:"powerHitChance"` // probability a power move lands
}

// FramingSpecs bounds the per-connection line buffer.
type FramingSpecs struct {
	BufferSize int `mapstructure:"bufferSize"`
	MaxMessage int `mapstructure:"maxMessage"` // unterminated span flushed as a line
}

// Config contains everything the server needs at startup.
type Config struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	WriteTimeout  time.Duration `mapstructure:"writeTimeout"`
	LogLevel      string        `mapstructure:"logLevel"`
	LogFile       string        `mapstructure:"logFile"`
	MaxNameLength int           `mapstructure:"maxNameLength"`
	Arrival       string        `mapstructure:"arrival"`
	Combat        CombatSpecs   `mapstructure:"combat"`
	Framing       FramingSpecs  `mapstructure:"framing"`
}

// Default returns the stock battle server configuration.
func Default() Config {
	return Config{
		Port:          30130,
		WriteTimeout:  10 * time.Second,
		LogLevel:      "INFO",
		MaxNameLength: 40,
		Arrival:       ArrivalFront,
		Combat: CombatSpecs{
			HealthMin:       20,
			HealthMax:       30,
			ChargesMin:      2,
			ChargesMax:      4,
			DamageMin:       2,
			DamageMax:       6,
			PowerMultiplier: 3,
			PowerHitChance:  0.5,
		},
		Framing: FramingSpecs{
			BufferSize: 300,
			MaxMessage: 128,
		},
	}
}

// Address returns the host:port the server listens on.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks that every range and limit is usable.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("write timeout must not be negative")
	}
	if c.MaxNameLength <= 0 {
		return fmt.Errorf("max name length must be positive")
	}
	if c.Arrival != ArrivalFront && c.Arrival != ArrivalBack {
		return fmt.Errorf("arrival policy %q must be %q or %q", c.Arrival, ArrivalFront, ArrivalBack)
	}

	cs := c.Combat
	if err := validateRange("health", cs.HealthMin, cs.HealthMax); err != nil {
		return err
	}
	if err := validateRange("charges", cs.ChargesMin, cs.ChargesMax); err != nil {
		return err
	}
	if err := validateRange("damage", cs.DamageMin, cs.DamageMax); err != nil {
		return err
	}
	if cs.HealthMin <= 0 || cs.DamageMin <= 0 {
		return fmt.Errorf("health and damage must be positive")
	}
	if cs.ChargesMin < 0 {
		return fmt.Errorf("charges must not be negative")
	}
	if cs.PowerMultiplier <= 0 {
		return fmt.Errorf("power multiplier must be positive")
	}
	if cs.PowerHitChance < 0 || cs.PowerHitChance > 1 {
		return fmt.Errorf("power hit chance %.2f outside [0,1]", cs.PowerHitChance)
	}

	if c.Framing.BufferSize <= 0 {
		return fmt.Errorf("framing buffer size must be positive")
	}
	if c.Framing.MaxMessage <= 0 || c.Framing.MaxMessage > c.Framing.BufferSize {
		return fmt.Errorf("max message %d must be in 1..%d", c.Framing.MaxMessage, c.Framing.BufferSize)
	}

	return nil
}

func validateRange(name string, min, max int) error {
	if min > max {
		return fmt.Errorf("%s range invalid: min %d > max %d", name, min, max)
	}
	return nil
}
