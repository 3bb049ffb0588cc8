package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitflow/pipeline"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootDefaults(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)

	want := "TOP 3\n" +
		"\t 12.10 in =  30.73 cm\n" +
		"\t  9.20 in =  23.37 cm\n" +
		"\t  5.20 in =  13.21 cm\n"
	assert.Equal(t, want, out)
}

func TestRootArguments(t *testing.T) {
	out, _, err := execute(t, "--min", "0", "--max", "100", "-n", "1", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "TOP 1\n\t  3.00 in =   7.62 cm\n", out)
}

func TestRootSortsUnorderedArguments(t *testing.T) {
	out, _, err := execute(t, "--min", "0", "--max", "100", "1", "8", "2", "7", "3", "6", "4", "5")
	require.NoError(t, err)

	want := "TOP 3\n" +
		"\t  8.00 in =  20.32 cm\n" +
		"\t  7.00 in =  17.78 cm\n" +
		"\t  6.00 in =  15.24 cm\n"
	assert.Equal(t, want, out)
}

func TestRootPrecisionTooLarge(t *testing.T) {
	out, _, err := execute(t, "--precision", "20000000")
	assert.ErrorIs(t, err, pipeline.ErrInvalidArgument)
	assert.Empty(t, out)
}

func TestRootEmptyResult(t *testing.T) {
	out, _, err := execute(t, "--min", "100", "--max", "200")
	require.NoError(t, err)
	assert.Equal(t, "no measurements in range [100, 200] cm\n", out)
}

func TestRootInvalidCount(t *testing.T) {
	out, _, err := execute(t, "-n", "2", "1.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrInvalidArgument)
	assert.Empty(t, out)
}

func TestRootInvalidRange(t *testing.T) {
	_, _, err := execute(t, "--min", "40", "--max", "10")
	assert.ErrorIs(t, err, pipeline.ErrInvalidArgument)
}

func TestRootUnknownUnit(t *testing.T) {
	_, _, err := execute(t, "--to", "parsec")
	assert.ErrorIs(t, err, pipeline.ErrInvalidArgument)
}

func TestRootConfigAndValuesFile(t *testing.T) {
	dir := t.TempDir()

	values := filepath.Join(dir, "values.yaml")
	require.NoError(t, os.WriteFile(values, []byte("unit: ft\nvalues: [1, 2, 3]\n"), 0o600))

	cfg := filepath.Join(dir, "topn.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("to: in\nmin: 0\nmax: 30\nn: 2\nprecision: 1\nwidth: 5\n"), 0o600))

	out, _, err := execute(t, "--config", cfg, "--values-file", values)
	require.NoError(t, err)
	assert.Equal(t, "TOP 2\n\t  2.0 ft =  24.0 in\n\t  1.0 ft =  12.0 in\n", out)
}

func TestRootMetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topn.prom")

	_, _, err := execute(t, "--metrics-textfile", path)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `topn_stage_items_out_total{stage="range"} 3`)
	assert.Contains(t, string(b), `topn_runs_total{result="ok"} 1`)
}

func TestRootDebugLogging(t *testing.T) {
	_, errOut, err := execute(t, "--debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"topn.start"`)
	assert.Contains(t, errOut, `"msg":"topn.done"`)
}

func TestUnitsCommand(t *testing.T) {
	out, _, err := execute(t, "units")
	require.NoError(t, err)
	assert.Contains(t, out, "in  in, inch, inches, pulg, pulgada, pulgadas\n")
	assert.Contains(t, out, "cm  centimeter, centimeters, centimetre, centimetres, cm\n")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "topn dev\n", out)
}
