// Package config resolves topn settings from flags, TOPN_* environment
// variables and an optional topn.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Keys understood by Load. Flags use the same names.
const (
	KeyMin             = "min"
	KeyMax             = "max"
	KeyN               = "n"
	KeyPrecision       = "precision"
	KeyFrom            = "from"
	KeyTo              = "to"
	KeyWidth           = "width"
	KeyValues          = "values"
	KeyValuesFile      = "values-file"
	KeyDebug           = "debug"
	KeyLogFormat       = "log-format"
	KeyMetricsTextfile = "metrics-textfile"
)

// Defaults reproduce the classic inches to centimetres demo.
const (
	DefaultMin       = 10.0
	DefaultMax       = 40.0
	DefaultN         = 3
	DefaultPrecision = 2
	DefaultFrom      = "in"
	DefaultTo        = "cm"
	DefaultWidth     = 6
	DefaultLogFormat = "text"
)

// DefaultValues are the sample measurements in inches.
var DefaultValues = []float64{5.2, 19.6, 3.7, 12.1, 16.5, 9.2}

// Config holds the resolved settings of a topn run.
type Config struct {
	Min       float64
	Max       float64
	N         int
	Precision int
	From      string
	To        string
	Width     int

	Values     []float64
	ValuesFile string

	Debug           bool
	LogFormat       string
	MetricsTextfile string
}

// New returns a viper instance with the topn defaults, environment
// prefix and config search paths. When cfgFile is set it is the only
// config file considered.
func New(cfgFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyMin, DefaultMin)
	v.SetDefault(KeyMax, DefaultMax)
	v.SetDefault(KeyN, DefaultN)
	v.SetDefault(KeyPrecision, DefaultPrecision)
	v.SetDefault(KeyFrom, DefaultFrom)
	v.SetDefault(KeyTo, DefaultTo)
	v.SetDefault(KeyWidth, DefaultWidth)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("topn")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "topn"))
		}
	}

	v.SetEnvPrefix("TOPN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and returns the merged settings.
// A missing file is only an error when it was named explicitly.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	values, err := parseValues(v.GetStringSlice(KeyValues))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyValues, err)
	}

	return Config{
		Min:             v.GetFloat64(KeyMin),
		Max:             v.GetFloat64(KeyMax),
		N:               v.GetInt(KeyN),
		Precision:       v.GetInt(KeyPrecision),
		From:            v.GetString(KeyFrom),
		To:              v.GetString(KeyTo),
		Width:           v.GetInt(KeyWidth),
		Values:          values,
		ValuesFile:      v.GetString(KeyValuesFile),
		Debug:           v.GetBool(KeyDebug),
		LogFormat:       v.GetString(KeyLogFormat),
		MetricsTextfile: v.GetString(KeyMetricsTextfile),
	}, nil
}

// Measurements picks the input of a run: positional args first, then the
// values file, then the values key, then DefaultValues. It returns the
// values and the unit they are expressed in, which is the unit declared
// by the values file when it has one and c.From otherwise.
func (c Config) Measurements(args []string) ([]float64, string, error) {
	if len(args) > 0 {
		values, err := parseValues(args)
		if err != nil {
			return nil, "", fmt.Errorf("config: arguments: %w", err)
		}
		return values, c.From, nil
	}

	if c.ValuesFile != "" {
		vf, err := LoadValues(c.ValuesFile)
		if err != nil {
			return nil, "", err
		}
		if vf.Unit != "" {
			return vf.Values, vf.Unit, nil
		}
		return vf.Values, c.From, nil
	}

	if len(c.Values) > 0 {
		return c.Values, c.From, nil
	}
	return DefaultValues, c.From, nil
}

// parseValues accepts numbers given one per element or separated by
// commas or blanks within an element.
func parseValues(in []string) ([]float64, error) {
	var out []float64

	for _, s := range in {
		for _, f := range strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		}) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%q is not a number", f)
			}
			out = append(out, v)
		}
	}
	return out, nil
}
