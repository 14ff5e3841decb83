package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/scottcagno/collections/pkg/hash"
	"github.com/scottcagno/collections/pkg/hashmap"
	"github.com/scottcagno/collections/pkg/hashmap/linear"
	"github.com/scottcagno/collections/pkg/hashmap/robin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	cfg     Config
	flags   Config
	path    string
	verbose bool
	log     *zap.Logger
	out     io.Writer
}

func main() {
	a := &app{out: os.Stdout}
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "probetable",
		Short:         "Exercise the open addressing hash tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	def := defaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&a.path, "config", "", "toml file with defaults for the flags below")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	pf.StringVar(&a.flags.Table, "table", def.Table, "table implementation: robin or linear")
	pf.StringVar(&a.flags.Hash, "hash", def.Hash, "key hash: jenkins, murmur3 or xxhash")
	pf.Float64Var(&a.flags.LoadFactor, "load-factor", def.LoadFactor, "resize threshold")
	pf.IntVar(&a.flags.Capacity, "capacity", def.Capacity, "initial capacity, rounded up to a power of two")

	root.AddCommand(a.benchCmd(), a.dumpCmd())
	return root
}

// setup resolves the config and builds the logger before any command runs
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = defaultConfig()
	if a.path != "" {
		if err := loadConfig(a.path, &a.cfg); err != nil {
			return err
		}
	}
	override(&a.cfg, &a.flags, cmd.Flags())
	if err := a.cfg.validate(); err != nil {
		return err
	}
	if a.log == nil {
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if a.verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		log, err := zc.Build()
		if err != nil {
			return errors.Wrap(err, "building logger")
		}
		a.log = log
	}
	a.log.Debug("config resolved",
		zap.String("config", a.path),
		zap.String("table", a.cfg.Table),
		zap.String("hash", a.cfg.Hash),
		zap.Float64("load_factor", a.cfg.LoadFactor),
		zap.Int("capacity", a.cfg.Capacity))
	return nil
}

// newTable builds the configured table implementation for K and V
func newTable[K comparable, V any](cfg *Config) (hashmap.Table[K, V], error) {
	fn, ok := hash.ByName(cfg.Hash)
	if !ok {
		return nil, errors.Newf("unknown hash %q, want jenkins, murmur3 or xxhash", cfg.Hash)
	}
	opts := &hashmap.Options[K]{
		Hash:            hash.For[K](fn),
		LoadFactor:      cfg.LoadFactor,
		InitialCapacity: cfg.Capacity,
	}
	switch cfg.Table {
	case "linear":
		return linear.New[K, V](opts), nil
	case "robin":
		return robin.New[K, V](opts), nil
	}
	return nil, errors.Newf("unknown table %q", cfg.Table)
}
