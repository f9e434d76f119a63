package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kaelx/tastream/pkg/chart"
	"github.com/kaelx/tastream/pkg/config"
	"github.com/kaelx/tastream/pkg/datasource/csvsource"
)

// go run ./cmd/tastream chart --csv klines.csv --output chart.png
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "render historical bars and indicator overlays into a png",
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

		outputPath, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
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

		bars, err := csvsource.NewBarReader(f, cfg.Symbol, cfg.Interval).ReadAll()
		if err != nil {
			return err
		}

		overlays := make(map[string][]float64, len(indicators))
		for _, bar := range bars {
			for _, label := range labels {
				v, _ := indicators[label].Update(bar, true, false)
				overlays[label] = append(overlays[label], v)
			}
		}

		out, err := os.Create(outputPath)
		if err != nil {
			return errors.Wrapf(err, "can not create %s", outputPath)
		}
		defer out.Close()

		title := fmt.Sprintf("%s %s", cfg.Symbol, cfg.Interval)
		if err := chart.Render(title, bars, overlays, out); err != nil {
			return err
		}

		log.Infof("rendered %d bars and %d overlays to %s", len(bars), len(overlays), outputPath)
		return nil
	},
}

func init() {
	chartCmd.Flags().String("csv", "", "csv file with time,open,high,low,close,volume rows")
	chartCmd.Flags().String("output", "chart.png", "output png path")
	RootCmd.AddCommand(chartCmd)
}
