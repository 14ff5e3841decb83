package main

import (
	"fmt"
	"math/rand"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/scottcagno/collections/pkg/hashmap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Add, look up and remove a batch of random keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rand.NewSource(a.cfg.Seed)
			if a.cfg.Keys == "string" {
				keys := keySet(a.cfg.Count, func() string { return randString(src, 12) })
				return runBench[string](a, keys)
			}
			rnd := rand.New(src)
			keys := keySet(a.cfg.Count, func() int { return rnd.Int() })
			return runBench[int](a, keys)
		},
	}
	def := defaultConfig()
	fs := cmd.Flags()
	fs.IntVar(&a.flags.Count, "count", def.Count, "number of distinct keys")
	fs.Int64Var(&a.flags.Seed, "seed", def.Seed, "random seed for key generation")
	fs.StringVar(&a.flags.Keys, "keys", def.Keys, "key kind: int or string")
	return cmd
}

func runBench[K comparable](a *app, keys []K) error {
	tbl, err := newTable[K, int](&a.cfg)
	if err != nil {
		return err
	}
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	benchAdd(a, tbl, keys)
	runtime.ReadMemStats(&after)
	full := tbl.LoadFactor()
	probe := tbl.MaxProbeDistance()

	if err := benchGet(a, tbl, keys); err != nil {
		return err
	}
	removed := benchRemove(a, tbl, keys)

	a.log.Info("bench complete",
		zap.String("table", a.cfg.Table),
		zap.String("hash", a.cfg.Hash),
		zap.String("keys", a.cfg.Keys),
		zap.Int("count", len(keys)),
		zap.Int("removed", removed),
		zap.Int("cap", tbl.Cap()),
		zap.Float64("load_factor", full),
		zap.Int("max_probe", probe))
	fmt.Fprintf(a.out, "%s keys, %s slots, load %.2f, max probe %d, heap +%s, %s left after removing %s\n",
		humanize.Comma(int64(len(keys))),
		humanize.Comma(int64(tbl.Cap())),
		full,
		probe,
		humanize.Bytes(growth(before.HeapAlloc, after.HeapAlloc)),
		humanize.Comma(int64(tbl.Len())),
		humanize.Comma(int64(removed)))
	return nil
}

func growth(before, after uint64) uint64 {
	if after < before {
		return 0
	}
	return after - before
}

func benchAdd[K comparable](a *app, tbl hashmap.Table[K, int], keys []K) {
	defer a.timeThis(msg("add"))
	for i, k := range keys {
		tbl.Add(k, i)
	}
}

func benchGet[K comparable](a *app, tbl hashmap.Table[K, int], keys []K) error {
	defer a.timeThis(msg("get"))
	for i, k := range keys {
		v, ok := tbl.Get(k)
		if !ok || v != i {
			return errors.AssertionFailedf("key %v: got %d, %t, want %d", k, v, ok, i)
		}
	}
	return nil
}

// benchRemove removes every other key and returns how many were removed
func benchRemove[K comparable](a *app, tbl hashmap.Table[K, int], keys []K) int {
	defer a.timeThis(msg("remove"))
	var n int
	for i := 0; i < len(keys); i += 2 {
		if _, ok := tbl.Remove(keys[i]); ok {
			n++
		}
	}
	return n
}
