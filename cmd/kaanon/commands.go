package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/kaanon/pkg/dataset"
	"github.com/dmitrymomot/kaanon/pkg/kaanon"
	"github.com/dmitrymomot/kaanon/pkg/logger"
)

var errNoDataset = errors.New("dataset path is required (--dataset or " + envPrefix + "DATASET)")

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg  Config
	log  *slog.Logger
	data *kaanon.Dataset
}

func newRootCmd(cfg Config, log *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:           "kaanon",
		Short:         "Draw random entries, names and email addresses from a tag dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Dataset == "" {
				return errNoDataset
			}
			d, err := dataset.LoadFile(cmd.Context(), a.cfg.Dataset, dataset.WithLogger(a.log))
			if err != nil {
				return err
			}
			a.data = d
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Dataset, "dataset", cfg.Dataset, "path to a JSON or YAML dataset")
	flags.Uint64Var(&a.cfg.Seed, "seed", cfg.Seed, "seed for a reproducible order (0 = random)")

	root.AddCommand(
		a.sampleCmd(),
		a.namesCmd(),
		a.emailsCmd(),
	)
	return root
}

// drawFlags are shared by every drawing subcommand.
type drawFlags struct {
	count int
	pad   bool
}

func (f *drawFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "number of items (default: all)")
	cmd.Flags().BoolVar(&f.pad, "pad", false, "fill up to --count with the placeholder once entries run out")
}

func (f *drawFlags) limit(cmd *cobra.Command) (kaanon.Limit, error) {
	if !cmd.Flags().Changed("count") {
		return kaanon.Unbounded, nil
	}
	if f.count < 0 {
		return kaanon.Limit{}, fmt.Errorf("count must not be negative, got %d", f.count)
	}
	return kaanon.Count(f.count), nil
}

func (a *app) sampleCmd() *cobra.Command {
	var (
		df         drawFlags
		categories []string
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print random dataset entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			it := kaanon.Strings(a.data, a.options(kaanon.WithCategories(categories...))...)
			return a.emit(cmd, it, &df, logger.Categories(categories))
		},
	}
	df.register(cmd)
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "only entries with any of these tags")
	return cmd
}

func (a *app) namesCmd() *cobra.Command {
	var df drawFlags
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Print formatted person names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.emit(cmd, kaanon.NewNames(a.data, a.options()...), &df)
		},
	}
	df.register(cmd)
	return cmd
}

func (a *app) emailsCmd() *cobra.Command {
	var df drawFlags
	cmd := &cobra.Command{
		Use:   "emails",
		Short: "Print synthetic email addresses built from person names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			it := kaanon.NewEmails(a.data, a.cfg.EmailDomain, a.options()...)
			return a.emit(cmd, it, &df, logger.Domain(a.cfg.EmailDomain))
		},
	}
	df.register(cmd)
	cmd.Flags().StringVar(&a.cfg.EmailDomain, "domain", a.cfg.EmailDomain, "email domain")
	return cmd
}

func (a *app) options(extra ...kaanon.Option) []kaanon.Option {
	opts := extra
	if a.cfg.Seed != 0 {
		opts = append(opts, kaanon.WithSource(rand.New(rand.NewPCG(a.cfg.Seed, a.cfg.Seed))))
	}
	return opts
}

func (a *app) emit(cmd *cobra.Command, it *kaanon.Iterator[string], df *drawFlags, attrs ...slog.Attr) error {
	limit, err := df.limit(cmd)
	if err != nil {
		return err
	}

	items := it.Take(limit)
	if df.pad && !limit.IsUnbounded() {
		for len(items) < limit.N() {
			items = append(items, it.Next())
		}
	}

	out := cmd.OutOrStdout()
	for _, item := range items {
		if _, err := fmt.Fprintln(out, item); err != nil {
			return err
		}
	}

	args := []any{logger.Command(cmd.Name()), logger.Count(len(items))}
	for _, attr := range attrs {
		args = append(args, attr)
	}
	a.log.DebugContext(cmd.Context(), "entries drawn", args...)
	return nil
}
