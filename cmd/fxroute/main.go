// Command fxroute prints the best conversion path between two currencies.
//
// Usage:
//
//	fxroute [-rates file | -sample name] [-from USD] [-to JAP] [-amount 100]
//	        [-algorithm bellman-ford|dijkstra] [-hops] [-table] [-config file]
//
// Without -rates or -sample the rates come from the configured file, or the
// built-in "classic" market.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/fxroute/config"
	"github.com/katalvlaran/fxroute/converter"
	"github.com/katalvlaran/fxroute/core"
	"github.com/katalvlaran/fxroute/ratesource"
	"github.com/katalvlaran/fxroute/render"
)

const defaultSample = "classic"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	rates, sample, config string
	from, to, algorithm   string
	amount                float64
	table, hops           bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("fxroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.rates, "rates", "", "rate file (.csv, .json, .yaml, .yml)")
	fs.StringVar(&o.sample, "sample", "", "built-in market: "+strings.Join(ratesource.SampleNames(), ", "))
	fs.StringVar(&o.from, "from", "USD", "source currency")
	fs.StringVar(&o.to, "to", "JAP", "target currency")
	fs.Float64Var(&o.amount, "amount", 0, "amount to convert; 0 prints the rate only")
	fs.StringVar(&o.algorithm, "algorithm", "", "bellman-ford or dijkstra (overrides config)")
	fs.BoolVar(&o.table, "table", false, "print the best rate for every pair")
	fs.BoolVar(&o.hops, "hops", false, "list every conversion step")
	fs.StringVar(&o.config, "config", "", "YAML config file")
	err := fs.Parse(args)

	return o, err
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	cfg, err := config.Load(o.config)
	if err != nil {
		fmt.Fprintln(stderr, "fxroute:", err)
		return 1
	}
	if o.algorithm != "" {
		cfg.Solver.Algorithm = o.algorithm
		if err = cfg.Validate(); err != nil {
			fmt.Fprintln(stderr, "fxroute:", err)
			return 1
		}
	}

	logger := newLogger(stderr, cfg)
	if err = execute(o, cfg, logger, stdout); err != nil {
		level.Error(logger).Log("msg", "fxroute failed", "err", err)
		return 1
	}

	return 0
}

func newLogger(w io.Writer, cfg config.Config) log.Logger {
	sw := log.NewSyncWriter(w)
	var logger log.Logger
	if strings.EqualFold(cfg.Log.Format, config.FormatJSON) {
		logger = log.NewJSONLogger(sw)
	} else {
		logger = log.NewLogfmtLogger(sw)
	}
	logger = level.NewFilter(logger, cfg.Level())

	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func execute(o options, cfg config.Config, logger log.Logger, stdout io.Writer) error {
	rates, source, err := loadRates(o, cfg)
	if err != nil {
		return err
	}
	level.Debug(logger).Log(
		"msg", "rates loaded",
		"source", source,
		"rates", len(rates),
		"currencies", len(ratesource.Currencies(rates)),
	)

	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}

	if o.table {
		tbl, err := converter.Table(rates, opts...)
		if err != nil {
			return err
		}

		return render.Table(stdout, tbl)
	}

	var solver converter.Solver
	solver = converter.New(opts...)
	solver = converter.NewLoggingSolver(level.Debug(log.With(logger, "component", "converter", "algorithm", cfg.Solver.Algorithm)), solver)

	res, err := solver.Solve(rates, core.Currency(o.from), core.Currency(o.to))
	if err != nil {
		return err
	}
	if err = render.Result(stdout, res); err != nil {
		return err
	}
	if o.hops {
		if err = render.Hops(stdout, res); err != nil {
			return err
		}
	}
	if o.amount != 0 {
		return render.Conversion(stdout, res, o.amount)
	}

	return nil
}

// loadRates picks the market: -rates, then -sample, then the configured
// file, then the default sample.
func loadRates(o options, cfg config.Config) ([]core.ExchangeRate, string, error) {
	switch {
	case o.rates != "":
		rates, err := ratesource.Load(o.rates)
		return rates, o.rates, err
	case o.sample != "":
		rates, err := ratesource.Sample(o.sample)
		return rates, "sample:" + o.sample, err
	case cfg.Rates != "":
		rates, err := ratesource.Load(cfg.Rates)
		return rates, cfg.Rates, err
	}
	rates, err := ratesource.Sample(defaultSample)

	return rates, "sample:" + defaultSample, err
}
