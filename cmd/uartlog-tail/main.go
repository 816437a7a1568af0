// uartlog-tail streams a device's log output from a host serial port to
// stdout, so you don't need a terminal program just to watch firmware
// logs.
//
//	uartlog-tail --port /dev/ttyUSB0 --baud 115200
//
// Defaults can live in a YAML config file instead of flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

type tailConfig struct {
	Port string `yaml:"port"`
	Baud uint32 `yaml:"baud"`
}

func loadConfig(path string) (tailConfig, error) {
	cfg := tailConfig{Baud: 115200}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Baud == 0 {
		cfg.Baud = 115200
	}
	return cfg, nil
}

func main() {
	var (
		configPath string
		port       string
		baud       uint32
		stripCR    bool
	)

	rootCmd := &cobra.Command{
		Use:   "uartlog-tail",
		Short: "Stream firmware log output from a serial port to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("baud") {
				cfg.Baud = baud
			}
			return tail(cfg, stripCR)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file with port/baud defaults")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "serial port name or device path (e.g. /dev/ttyUSB0)")
	rootCmd.Flags().Uint32VarP(&baud, "baud", "b", 115200, "transmission rate")
	rootCmd.Flags().BoolVar(&stripCR, "strip-cr", false, "drop carriage returns (device sends CRLF line endings)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func tail(cfg tailConfig, stripCR bool) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	p, err := uartreg.Open(cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to open UART port %q: %w", cfg.Port, err)
	}
	defer p.Close()

	c, err := p.Connect(physic.Frequency(cfg.Baud)*physic.Hertz, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		return fmt.Errorf("failed to configure UART port %q: %w", cfg.Port, err)
	}

	fmt.Fprintf(os.Stderr, "listening on %q at %d baud\n", cfg.Port, cfg.Baud)

	out := os.Stdout
	var buf [1]byte
	for {
		if err := c.Tx(nil, buf[:]); err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
		if stripCR && buf[0] == '\r' {
			continue
		}
		if _, err := out.Write(buf[:]); err != nil {
			return err
		}
	}
}
