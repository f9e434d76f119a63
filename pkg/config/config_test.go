package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaelx/tastream/pkg/types"
)

const testConfig = `---
symbol: BTCUSDT
interval: 1h
indicators:
  - type: rsi
    window: 14
  - name: fast-ma
    type: ema
    window: 9
    source: typical
  - type: boll
    window: 20
    k: 2
  - type: macd
    short: 12
    long: 26
    window: 9
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tastream.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeTestConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", c.Symbol)
	assert.Equal(t, types.Interval1h, c.Interval)
	require.Len(t, c.Indicators, 4)
	assert.Equal(t, "rsi(14)", c.Indicators[0].Label())
	assert.Equal(t, "fast-ma", c.Indicators[1].Label())
}

func TestLoad_DefaultInterval(t *testing.T) {
	c, err := Load(writeTestConfig(t, "symbol: ETHUSDT\n"))
	require.NoError(t, err)
	assert.Equal(t, types.Interval1m, c.Interval)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/tastream.yaml")
	assert.Error(t, err)
}

func TestBuildAll(t *testing.T) {
	c, err := Load(writeTestConfig(t, testConfig))
	require.NoError(t, err)

	indicators, err := c.BuildAll()
	require.NoError(t, err)
	assert.Len(t, indicators, 4)
	assert.Contains(t, indicators, "rsi(14)")
	assert.Contains(t, indicators, "fast-ma")
}

func TestBuild_UnsupportedType(t *testing.T) {
	ic := IndicatorConfig{Type: "supertrend", Window: 10}
	_, err := ic.Build(types.Interval1m)
	assert.Error(t, err)
}

func TestBuild_UnsupportedSource(t *testing.T) {
	ic := IndicatorConfig{Type: "rsi", Window: 14, Source: "vwap"}
	_, err := ic.Build(types.Interval1m)
	assert.Error(t, err)
}
