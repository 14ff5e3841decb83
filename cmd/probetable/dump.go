package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump key...",
		Short: "Add the given keys (valued by position) and print every slot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := newTable[string, int](&a.cfg)
			if err != nil {
				return err
			}
			for i, key := range args {
				tbl.Add(key, i)
			}
			a.log.Debug("dumping table",
				zap.Int("len", tbl.Len()),
				zap.Int("cap", tbl.Cap()),
				zap.Int("max_probe", tbl.MaxProbeDistance()))
			tbl.Dump(a.out)
			return nil
		},
	}
}
