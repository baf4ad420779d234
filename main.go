package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/fieldlink/hc12ctl/hc12"
)

func main() {
	flag.String("serial-port", "/dev/ttyUSB0", "Serial port connected to the radio's UART")
	flag.String("gpio-chip", "gpiochip0", "GPIO character device driving the SET pin")
	flag.Int("set-line", 18, "GPIO line offset wired to the SET pin")
	flag.Int("channel", 1, "Target channel (1-127)")
	flag.Int("power", 8, "Target transmit power level (1-8)")
	flag.String("mode", "FU3", "Target sub-mode (FU1-FU4)")
	flag.Int("baud", 9600, "Target transparent-regime baud rate")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	config, err := LoadConfig(WithDefaults(), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	target, err := targetConfig(config)
	if err != nil {
		logger.Error("Invalid target configuration", "error", err)
		os.Exit(1)
	}

	transport, err := hc12.SerialDialer{PortName: config.SerialPort}.Dial(context.Background())
	if err != nil {
		logger.Error("Failed to open serial port", "port", config.SerialPort, "error", err)
		os.Exit(1)
	}
	defer transport.Close()

	line, err := hc12.RequestControlLine(config.GpioChip, config.SetLine)
	if err != nil {
		logger.Error("Failed to acquire SET line", "chip", config.GpioChip, "line", config.SetLine, "error", err)
		os.Exit(1)
	}
	defer line.Close()

	logger.Info("Programming radio",
		"port", config.SerialPort,
		"channel", target.Channel,
		"frequency_mhz", target.Channel.MHz(),
		"power", target.Power.String(),
		"power_dbm", target.Power.DBm(),
		"mode", target.Mode.String(),
		"baud", target.Baud.BPS(),
		"air_rate_bps", target.Baud.AirRate(),
	)

	// The remembered starting configuration is the factory default. A
	// board with unknown settings can always be brought back to it with
	// the module's own AT+DEFAULT before running this tool.
	cmd, err := hc12.NewBuilder().
		WithTransport(transport).
		WithControlLine(line).
		WithDelay(hc12.SleepDelay{}).
		CommandMode(hc12.DefaultConfig())
	if err != nil {
		logger.Error("Failed to enter command regime", "error", err)
		os.Exit(1)
	}

	cmd, err = cmd.Program(target)
	if err != nil {
		var noOk *hc12.NoOkError
		if errors.As(err, &noOk) {
			logger.Error("Radio rejected a command",
				"command", noOk.Command,
				"response", string(noOk.Response),
			)
		} else {
			logger.Error("Programming failed", "error", err)
		}
		if cmd != nil {
			logger.Info("Partial configuration applied", "config", cmd.Config())
		}
		os.Exit(1)
	}

	link, err := cmd.ExitCommandMode()
	if err != nil {
		logger.Error("Failed to return to transparent regime", "error", err)
		os.Exit(1)
	}

	logger.Info("Radio programmed", "config", link.Config())
}

// targetConfig validates the raw flag/env values into a device
// configuration, so range and compatibility errors surface before any
// hardware is touched.
func targetConfig(c *Config) (hc12.Config, error) {
	channel, err := hc12.NewChannel(c.Channel)
	if err != nil {
		return hc12.Config{}, err
	}

	mode, err := hc12.ParseMode(c.Mode)
	if err != nil {
		return hc12.Config{}, err
	}

	target := hc12.Config{
		Channel: channel,
		Power:   hc12.Power(c.Power),
		Mode:    mode,
		Baud:    hc12.BaudRate(c.Baud),
	}
	if !target.Power.Valid() {
		return hc12.Config{}, errors.New("hc12: power level out of range 1-8")
	}
	if !target.Baud.Valid() {
		return hc12.Config{}, errors.New("hc12: unsupported baud rate")
	}
	if !target.Mode.Supports(target.Baud) {
		return hc12.Config{}, &hc12.IncompatibleError{Mode: target.Mode, Baud: target.Baud}
	}
	return target, nil
}
