package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unitflow/pipeline"
	"github.com/unitflow/pipeline/internal/config"
	"github.com/unitflow/pipeline/internal/logger"
	"github.com/unitflow/pipeline/internal/metrics"
	"github.com/unitflow/pipeline/internal/report"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "topn [values...]",
		Short: "Convert measurements and print the largest ones in range",
		Long: `topn converts a list of measurements to another unit, keeps the values
inside an inclusive range, and prints the largest n of them rounded to a
fixed number of decimals.

Values come from the arguments, the --values-file YAML document, the
"values" config key, or the built-in sample in inches, in that order.
Settings are read from flags, TOPN_* environment variables and topn.yaml
(current directory or ~/.config/topn/).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New(cfgFile)
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			logger.Setup(cmd.ErrOrStderr(), logger.Config{
				Debug:  cfg.Debug,
				Format: cfg.LogFormat,
			})
			if used := v.ConfigFileUsed(); used != "" {
				logger.L().Debug("config.loaded", "path", used)
			}
			return run(cmd, args, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default: ./topn.yaml or ~/.config/topn/topn.yaml)")
	f.Float64(config.KeyMin, config.DefaultMin, "lower bound of the range, in the target unit")
	f.Float64(config.KeyMax, config.DefaultMax, "upper bound of the range, in the target unit")
	f.IntP(config.KeyN, "n", config.DefaultN, "number of results")
	f.Int(config.KeyPrecision, config.DefaultPrecision, "decimal digits kept in the results")
	f.String(config.KeyFrom, config.DefaultFrom, "unit of the input values")
	f.String(config.KeyTo, config.DefaultTo, "unit of the results")
	f.Int(config.KeyWidth, config.DefaultWidth, "column width of printed values")
	f.String(config.KeyValuesFile, "", "YAML file with the input values")
	f.Bool(config.KeyDebug, false, "enable debug logging on stderr")
	f.String(config.KeyLogFormat, config.DefaultLogFormat, "log format: text or json")
	f.String(config.KeyMetricsTextfile, "", "write Prometheus metrics to this file after the run")

	cmd.AddCommand(newUnitsCmd(), newVersionCmd())
	return cmd
}

func run(cmd *cobra.Command, args []string, cfg config.Config) error {
	log := logger.L()

	values, unit, err := cfg.Measurements(args)
	if err != nil {
		return err
	}

	from, err := pipeline.ParseUnit(unit)
	if err != nil {
		return err
	}
	to, err := pipeline.ParseUnit(cfg.To)
	if err != nil {
		return err
	}
	convert, err := pipeline.Conversion(from, to)
	if err != nil {
		return err
	}
	back, err := pipeline.Conversion(to, from)
	if err != nil {
		return err
	}
	r, err := pipeline.NewRange(cfg.Min, cfg.Max)
	if err != nil {
		return err
	}

	log.Debug("topn.start", "values", len(values), "from", from, "to", to, "range", r.String(), "n", cfg.N, "precision", cfg.Precision)

	opts := []pipeline.Option{pipeline.WithPrecision(cfg.Precision)}
	var rec *metrics.Recorder
	if cfg.MetricsTextfile != "" {
		rec = metrics.New()
		opts = append(opts, pipeline.WithObserver(rec))
	}

	top, err := pipeline.TopN(values, convert, r, cfg.N, opts...)
	if rec != nil {
		rec.RunFinished(err)
		if werr := rec.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			log.Error("metrics.write_failed", "path", cfg.MetricsTextfile, "error", werr)
		}
	}
	if err != nil {
		log.Debug("topn.failed", "error", err)
		return err
	}
	log.Info("topn.done", "results", len(top))

	rep := report.New(cmd.OutOrStdout(), report.WithWidth(cfg.Width), report.WithPrecision(cfg.Precision))
	if len(top) == 0 {
		return rep.Empty(r, to)
	}
	return rep.Table(fmt.Sprintf("TOP %d", cfg.N), report.Rows(top, back, cfg.Precision), from, to)
}
