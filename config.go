package main

import (
	"flag"
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	// SerialPort is the path to the radio's serial port (e.g. "/dev/ttyUSB0")
	SerialPort string
	// GpioChip is the GPIO character device driving the SET pin (e.g. "gpiochip0")
	GpioChip string
	// SetLine is the GPIO line offset wired to the SET pin
	SetLine int
	// Channel is the target radio channel (1-127)
	Channel int
	// Power is the target transmit power level (1-8)
	Power int
	// Mode is the target sub-mode (e.g. "FU3")
	Mode string
	// Baud is the target transparent-regime serial rate (e.g. 9600)
	Baud int
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.SerialPort = "/dev/ttyUSB0"
		c.GpioChip = "gpiochip0"
		c.SetLine = 18
		c.Channel = 1
		c.Power = 8
		c.Mode = "FU3"
		c.Baud = 9600
		c.LogLevel = "info"
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if serial := os.Getenv("SERIAL_PORT"); serial != "" {
			c.SerialPort = serial
		}

		if chip := os.Getenv("GPIO_CHIP"); chip != "" {
			c.GpioChip = chip
		}

		if line := os.Getenv("SET_LINE"); line != "" {
			if l, err := strconv.Atoi(line); err == nil {
				c.SetLine = l
			}
		}

		if channel := os.Getenv("HC12_CHANNEL"); channel != "" {
			if ch, err := strconv.Atoi(channel); err == nil {
				c.Channel = ch
			}
		}

		if power := os.Getenv("HC12_POWER"); power != "" {
			if p, err := strconv.Atoi(power); err == nil {
				c.Power = p
			}
		}

		if mode := os.Getenv("HC12_MODE"); mode != "" {
			c.Mode = mode
		}

		if baud := os.Getenv("HC12_BAUD"); baud != "" {
			if b, err := strconv.Atoi(baud); err == nil {
				c.Baud = b
			}
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		return nil
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "serial-port":
				c.SerialPort = f.Value.String()
			case "gpio-chip":
				c.GpioChip = f.Value.String()
			case "set-line":
				if l, err := strconv.Atoi(f.Value.String()); err == nil {
					c.SetLine = l
				}
			case "channel":
				if ch, err := strconv.Atoi(f.Value.String()); err == nil {
					c.Channel = ch
				}
			case "power":
				if p, err := strconv.Atoi(f.Value.String()); err == nil {
					c.Power = p
				}
			case "mode":
				c.Mode = f.Value.String()
			case "baud":
				if b, err := strconv.Atoi(f.Value.String()); err == nil {
					c.Baud = b
				}
			case "log-level":
				c.LogLevel = f.Value.String()
			}

		})
		return nil
	}

}
