package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(""))
	require.NoError(t, err)

	assert.Equal(t, DefaultMin, cfg.Min)
	assert.Equal(t, DefaultMax, cfg.Max)
	assert.Equal(t, DefaultN, cfg.N)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
	assert.Equal(t, "in", cfg.From)
	assert.Equal(t, "cm", cfg.To)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Values)
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(New(filepath.Join("testdata", "topn.yaml")))
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Min)
	assert.Equal(t, 100.0, cfg.Max)
	assert.Equal(t, 2, cfg.N)
	assert.Equal(t, 1, cfg.Precision)
	assert.Equal(t, "cm", cfg.From)
	assert.Equal(t, "in", cfg.To)
	assert.Equal(t, []float64{30.48, 2.54, 91.44}, cfg.Values)
	assert.Equal(t, "list.yaml", cfg.ValuesFile)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "topn.prom", cfg.MetricsTextfile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(filepath.Join("testdata", "missing.yaml")))
	require.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TOPN_N", "5")
	t.Setenv("TOPN_VALUES", "1.5 2.5,3.5")
	t.Setenv("TOPN_VALUES_FILE", "in.yaml")

	cfg, err := Load(New(""))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.N)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, cfg.Values)
	assert.Equal(t, "in.yaml", cfg.ValuesFile)
}

func TestLoadBadValues(t *testing.T) {
	t.Setenv("TOPN_VALUES", "1 x 3")

	_, err := Load(New(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x" is not a number`)
}

func TestMeasurements(t *testing.T) {
	cfg := Config{From: "in", Values: []float64{7}}

	values, unit, err := cfg.Measurements([]string{"1", "2,3"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, values)
	assert.Equal(t, "in", unit)

	values, unit, err = cfg.Measurements(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, values)
	assert.Equal(t, "in", unit)

	values, _, err = Config{From: "in"}.Measurements(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultValues, values)

	cfg.ValuesFile = filepath.Join("testdata", "mapping.yaml")
	values, unit, err = cfg.Measurements(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3}, values)
	assert.Equal(t, "ft", unit)

	_, _, err = cfg.Measurements([]string{"abc"})
	require.Error(t, err)
}

func TestLoadValues(t *testing.T) {
	vf, err := LoadValues(filepath.Join("testdata", "list.yaml"))
	require.NoError(t, err)
	assert.Empty(t, vf.Unit)
	assert.Equal(t, []float64{5.2, 19.6, 3.7}, vf.Values)

	vf, err = LoadValues(filepath.Join("testdata", "mapping.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "ft", vf.Unit)
	assert.Equal(t, []float64{1, 2.5, 3}, vf.Values)
}

func TestLoadValuesErrors(t *testing.T) {
	for _, name := range []string{"missing.yaml", "scalar.yaml", "invalid.yaml"} {
		_, err := LoadValues(filepath.Join("testdata", name))
		assert.Error(t, err, name)
	}
}
