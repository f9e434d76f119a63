package cmd

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kaelx/tastream/pkg/config"
	"github.com/kaelx/tastream/pkg/datasource/csvsource"
	"github.com/kaelx/tastream/pkg/indicator"
)

// go run ./cmd/tastream replay --csv klines.csv --config tastream.yaml
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replay historical bars from a csv file through the configured indicators",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		csvPath, err := cmd.Flags().GetString("csv")
		if err != nil {
			return err
		}
		if csvPath == "" {
			return errors.New("--csv option is required")
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		indicators, err := cfg.BuildAll()
		if err != nil {
			return err
		}
		labels := sortedLabels(indicators)

		f, err := os.Open(csvPath)
		if err != nil {
			return errors.Wrapf(err, "can not open %s", csvPath)
		}
		defer f.Close()

		reader := csvsource.NewBarReader(f, cfg.Symbol, cfg.Interval)
		var count int
		for {
			bar, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}

			fields := log.Fields{
				"symbol": bar.Symbol,
				"time":   bar.StartTime,
				"close":  bar.Close,
			}
			for _, label := range labels {
				v, _ := indicators[label].Update(bar, true, false)
				fields[label] = v
			}
			log.WithFields(fields).Info("bar closed")
			count++
		}

		log.Infof("replayed %d bars through %d indicators", count, len(indicators))
		return nil
	},
}

func sortedLabels(indicators map[string]indicator.Indicator) []string {
	labels := make([]string, 0, len(indicators))
	for label := range indicators {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func init() {
	replayCmd.Flags().String("csv", "", "csv file with time,open,high,low,close,volume rows")
	RootCmd.AddCommand(replayCmd)
}
