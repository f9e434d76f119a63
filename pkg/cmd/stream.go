package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kaelx/tastream/pkg/config"
	binancesource "github.com/kaelx/tastream/pkg/datasource/binance"
	"github.com/kaelx/tastream/pkg/types"
)

// go run ./cmd/tastream stream --symbol BTCUSDT --config tastream.yaml
var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "stream live binance klines through the configured indicators",
	Long: "stream connects to the binance kline websocket and feeds every update " +
		"to the configured indicators: still-open bars take the provisional path " +
		"and are logged at debug level, closed bars are committed",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}
		if symbol == "" {
			symbol = cfg.Symbol
		}
		if symbol == "" {
			return errors.New("--symbol option or a symbol in the config file is required")
		}

		interval, err := cmd.Flags().GetString("interval")
		if err != nil {
			return err
		}
		if interval != "" {
			cfg.Interval = types.Interval(interval)
		}

		indicators, err := cfg.BuildAll()
		if err != nil {
			return err
		}
		labels := sortedLabels(indicators)

		stream := binancesource.NewStream(symbol, cfg.Interval)
		stream.OnBar(func(bar types.Bar) {
			fields := log.Fields{
				"symbol": bar.Symbol,
				"close":  bar.Close,
			}
			for _, label := range labels {
				v, _ := indicators[label].Update(bar, bar.Closed, false)
				fields[label] = v
			}

			if bar.Closed {
				log.WithFields(fields).Info("bar closed")
			} else {
				log.WithFields(fields).Debug("bar update")
			}
		})

		if err := stream.Connect(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	streamCmd.Flags().String("symbol", "", "the trading pair, e.g. BTCUSDT")
	streamCmd.Flags().String("interval", "", "bar interval, overrides the config file")
	RootCmd.AddCommand(streamCmd)
}
