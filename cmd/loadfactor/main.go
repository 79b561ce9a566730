package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"loadfactor/experiment"
)

type runOptions struct {
	sizes    string
	hash     string
	out      string
	seed     int64
	keyRange uint32
	plot     bool
	jobs     int
	verbose  bool
	fs       afero.Fs
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "loadfactor",
		Short:         "Compare collisions of linear probing and separate chaining hash tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(afero.NewOsFs()))
	return root
}

func newRunCommand(fs afero.Fs) *cobra.Command {
	opts := &runOptions{fs: fs}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill tables with random keys and record load factor against collisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}

	defaults := experiment.DefaultConfig()
	var sizes []string
	for _, size := range defaults.Sizes {
		sizes = append(sizes, strconv.FormatUint(uint64(size), 10))
	}
	var hashTypes []string
	for _, hashType := range defaults.HashTypes {
		hashTypes = append(hashTypes, hashType.String())
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.sizes, "sizes", strings.Join(sizes, ","), "comma separated table sizes")
	flags.StringVar(&opts.hash, "hash", strings.Join(hashTypes, ","), "comma separated hash functions (keymod, midsquare)")
	flags.StringVarP(&opts.out, "out", "o", defaults.OutDir, "output directory")
	flags.Int64Var(&opts.seed, "seed", defaults.Seed, "random seed")
	flags.Uint32Var(&opts.keyRange, "key-range", defaults.KeyRange, "keys are drawn from [0, size*key-range)")
	flags.BoolVar(&opts.plot, "plot", defaults.Plot, "also render an SVG scatter plot per experiment")
	flags.IntVarP(&opts.jobs, "jobs", "j", defaults.Jobs, "experiments to run in parallel")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "development logging")
	return cmd
}

func (opts *runOptions) newLogger() (*zap.Logger, error) {
	if opts.verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// config layers .env and LOADFACTOR_* variables under explicitly set flags.
func (opts *runOptions) config(cmd *cobra.Command) (experiment.Config, error) {
	cfg, err := experiment.LoadEnv(experiment.DefaultConfig())
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("sizes") {
		if cfg.Sizes, err = experiment.ParseSizes(opts.sizes); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("hash") {
		if cfg.HashTypes, err = experiment.ParseHashTypes(opts.hash); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("out") {
		cfg.OutDir = opts.out
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("key-range") {
		cfg.KeyRange = opts.keyRange
	}
	if flags.Changed("plot") {
		cfg.Plot = opts.plot
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	return cfg, cfg.Validate()
}

func (opts *runOptions) run(cmd *cobra.Command) error {
	logger, err := opts.newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := opts.config(cmd)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	logger.Info("starting experiments",
		zap.Uint32s("sizes", cfg.Sizes),
		zap.String("out", cfg.OutDir),
		zap.Int64("seed", cfg.Seed),
		zap.Int("jobs", cfg.Jobs),
	)

	results, err := experiment.NewRunner(opts.fs, logger).Run(cmd.Context(), cfg)
	if err != nil {
		logger.Error("experiments failed", zap.Error(err))
		return err
	}
	logger.Info("experiments done", zap.Int("count", len(results)))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
