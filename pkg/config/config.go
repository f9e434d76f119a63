package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kaelx/tastream/pkg/indicator"
	"github.com/kaelx/tastream/pkg/types"
)

// IndicatorConfig describes one indicator instance in a YAML config file.
// Only the fields relevant to the configured type are consulted.
type IndicatorConfig struct {
	// Name labels the instance in logs and chart legends; defaults to a
	// "type(window)" form.
	Name string `yaml:"name"`

	// Type selects the indicator: sma, ema, wma, rma, momentum, rsi, atr,
	// boll, macd, stoch, williamsr, donchian, keltner, cci, obv, vwap,
	// linreg.
	Type   string `yaml:"type"`
	Window int    `yaml:"window"`

	// Source selects the bar field: close (default), open, high, low,
	// typical, median, ohlc4, volume.
	Source string `yaml:"source"`

	// K is the band multiplier for boll and keltner.
	K float64 `yaml:"k"`

	// Short and Long are the fast and slow EMA lengths for macd; Window is
	// its signal period.
	Short int `yaml:"short"`
	Long  int `yaml:"long"`

	// DWindow is the %D smoothing period for stoch.
	DWindow int `yaml:"dWindow"`

	// ATRWindow is the ATR period for keltner.
	ATRWindow int `yaml:"atrWindow"`
}

// Config is the top-level YAML document consumed by the CLI.
type Config struct {
	Symbol     string            `yaml:"symbol"`
	Interval   types.Interval    `yaml:"interval"`
	Indicators []IndicatorConfig `yaml:"indicators"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not read config file %s", path)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", path)
	}

	if c.Interval == "" {
		c.Interval = types.Interval1m
	}

	return &c, nil
}

func (c *IndicatorConfig) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%s(%d)", strings.ToLower(c.Type), c.Window)
}

func (c *IndicatorConfig) mapper() (indicator.BarMapper, error) {
	switch strings.ToLower(c.Source) {
	case "", "close":
		return indicator.ClosePrice, nil
	case "open":
		return indicator.OpenPrice, nil
	case "high":
		return indicator.HighPrice, nil
	case "low":
		return indicator.LowPrice, nil
	case "typical":
		return indicator.TypicalPrice, nil
	case "median":
		return indicator.MedianPrice, nil
	case "ohlc4":
		return indicator.OHLC4Price, nil
	case "volume":
		return indicator.Volume, nil
	}

	return nil, errors.Errorf("unsupported source %q", c.Source)
}

// Build instantiates the configured indicator for the given interval.
func (c *IndicatorConfig) Build(interval types.Interval) (indicator.Indicator, error) {
	iw := types.IntervalWindow{Interval: interval, Window: c.Window}

	mapper, err := c.mapper()
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(c.Type) {
	case "sma", "ema", "wma", "rma":
		return indicator.NewMovingAverage(iw, indicator.MAType(strings.ToUpper(c.Type)), mapper)
	case "momentum", "roc":
		return indicator.NewMomentum(iw, mapper), nil
	case "rsi":
		return indicator.NewRSI(iw, mapper), nil
	case "atr":
		return indicator.NewATR(iw), nil
	case "boll":
		return indicator.NewBollingerBands(iw, c.K, mapper), nil
	case "macd":
		return indicator.NewMACD(iw, c.Short, c.Long, mapper), nil
	case "stoch":
		return indicator.NewStochastic(iw, c.DWindow), nil
	case "williamsr":
		return indicator.NewWilliamsR(iw), nil
	case "donchian":
		return indicator.NewDonchianChannel(iw), nil
	case "keltner":
		return indicator.NewKeltnerChannel(iw, c.ATRWindow, c.K), nil
	case "cci":
		return indicator.NewCCI(iw, mapper), nil
	case "obv":
		return indicator.NewOBV(iw), nil
	case "vwap":
		return indicator.NewVWAP(iw), nil
	case "linreg":
		return indicator.NewLinReg(iw, mapper), nil
	}

	return nil, errors.Errorf("unsupported indicator type %q", c.Type)
}

// BuildAll instantiates every configured indicator, keyed by label.
func (c *Config) BuildAll() (map[string]indicator.Indicator, error) {
	indicators := make(map[string]indicator.Indicator, len(c.Indicators))
	for i := range c.Indicators {
		ic := &c.Indicators[i]
		inc, err := ic.Build(c.Interval)
		if err != nil {
			return nil, errors.Wrapf(err, "indicator %s", ic.Label())
		}
		indicators[ic.Label()] = inc
	}
	return indicators, nil
}
