package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hidlink/internal/app"
	"github.com/vovakirdan/hidlink/internal/config"
	"github.com/vovakirdan/hidlink/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath   string
		overrides config.Config
	)

	cmd := &cobra.Command{
		Use:           "hidlink",
		Short:         "Browser-driven bridge to an emulated keyboard and mouse",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap := log.New("info")

			cfg, path, err := config.Load(bootstrap, cfgPath)
			if err != nil {
				return err
			}
			cfg.UpdateFrom(overrides)

			logger := log.New(cfg.LogLevel)
			logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting hidlink server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.New(cfg, logger)
			if err != nil {
				return err
			}

			if err := application.Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&overrides.Addr, "addr", "", "HTTP listen address")
	cmd.Flags().StringVar(&overrides.DevicePort, "device", "", "serial port of the HID device")
	cmd.Flags().IntVar(&overrides.DeviceBaud, "baud", 0, "serial baud rate")
	cmd.Flags().DurationVar(&overrides.RepeatInterval, "repeat-interval", 0, "repeat cadence for held controls")
	cmd.Flags().StringVar(&overrides.DatabasePath, "db", "", "path to the sqlite database")
	cmd.Flags().StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}
