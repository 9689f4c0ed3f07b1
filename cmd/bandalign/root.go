package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/diagband/bandalign"
	"github.com/katalvlaran/diagband/internal/batch"
	"github.com/katalvlaran/diagband/internal/config"
	"github.com/katalvlaran/diagband/internal/seqio"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	errNoInput     = errors.New("either -u and -v or --fasta is required")
	errMixedInput  = errors.New("-u/-v and --fasta are mutually exclusive")
	errHalfBand    = errors.New("--left and --right must be given together")
	errPairsFailed = errors.New("some pairs failed")
)

// cli holds flag values and the resolved configuration of one invocation.
type cli struct {
	out, errOut io.Writer

	configPath string
	u, v       string
	fasta      string
	left       int
	right      int

	cfg config.Config
	log *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut, cfg: config.Default()}

	root := &cobra.Command{
		Use:   "bandalign",
		Short: "Banded linear-space global alignment of sequence pairs",
		Long: `bandalign computes optimal global alignments whose path stays inside a
diagonal band of the edit matrix, in memory proportional to the band width.

Defaults come from an optional YAML file (--config), then BANDALIGN_*
environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML config file")
	pf.StringVarP(&c.u, "u", "u", "", "first sequence")
	pf.StringVarP(&c.v, "v", "v", "", "second sequence")
	pf.StringVar(&c.fasta, "fasta", "", "FASTA file; consecutive records are aligned as pairs")
	pf.IntVar(&c.left, "left", 0, "lowest diagonal j-i of the band")
	pf.IntVar(&c.right, "right", 0, "highest diagonal j-i of the band")
	pf.Int("margin", c.cfg.Margin, "diagonals added on both sides of the minimal band")
	pf.Int("match", c.cfg.Match, "cost of aligning equal symbols")
	pf.Int("mismatch", c.cfg.Mismatch, "cost of aligning different symbols")
	pf.Int("gap", c.cfg.Gap, "cost of an insertion or deletion")
	pf.String("format", c.cfg.Format, "output format: text, cigar, yaml or json")
	pf.Int("workers", c.cfg.Workers, "pairs processed concurrently")
	pf.String("log-level", c.cfg.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(
		&cobra.Command{
			Use:   "align",
			Short: "Print the optimal banded alignment of each pair",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.run(cmd, batch.TaskAlign)
			},
		},
		newDistanceCmd(c),
		&cobra.Command{
			Use:   "check",
			Short: "Cross-validate the distance oracles and the aligner on each pair",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.run(cmd, batch.TaskCheck)
			},
		},
	)

	return root
}

func newDistanceCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Print the banded edit distance of each pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, batch.TaskDistance)
		},
	}
	cmd.Flags().String("mode", c.cfg.Mode, "distance oracle: matrix or linear")

	return cmd
}

// resolve layers config file, environment and changed flags into c.cfg.
func (c *cli) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for name, dst := range map[string]*int{
		"margin":   &cfg.Margin,
		"match":    &cfg.Match,
		"mismatch": &cfg.Mismatch,
		"gap":      &cfg.Gap,
		"workers":  &cfg.Workers,
	} {
		if flags.Changed(name) {
			if *dst, err = flags.GetInt(name); err != nil {
				return err
			}
		}
	}
	for name, dst := range map[string]*string{
		"format":    &cfg.Format,
		"mode":      &cfg.Mode,
		"log-level": &cfg.LogLevel,
	} {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			if *dst, err = flags.GetString(name); err != nil {
				return err
			}
		}
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	c.log = cfg.NewLogger(c.errOut, !isTerminal(c.errOut))

	return nil
}

// isTerminal reports whether w is an interactive terminal; logs sent
// anywhere else are written as JSON lines.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// pairs returns the input pairs from -u/-v or --fasta.
func (c *cli) pairs(cmd *cobra.Command) ([]seqio.Pair, error) {
	inline := cmd.Flags().Changed("u") || cmd.Flags().Changed("v")
	switch {
	case inline && c.fasta != "":
		return nil, errMixedInput
	case inline:
		return []seqio.Pair{{
			U: seqio.Record{ID: "u", Seq: []byte(c.u)},
			V: seqio.Record{ID: "v", Seq: []byte(c.v)},
		}}, nil
	case c.fasta != "":
		return seqio.ReadPairsFile(c.fasta)
	default:
		return nil, errNoInput
	}
}

// band returns the explicit band, or nil to use each pair's minimal band.
func (c *cli) band(cmd *cobra.Command) (*bandalign.Band, error) {
	l, r := cmd.Flags().Changed("left"), cmd.Flags().Changed("right")
	switch {
	case l && r:
		return &bandalign.Band{Left: c.left, Right: c.right}, nil
	case l || r:
		return nil, errHalfBand
	default:
		return nil, nil
	}
}

func (c *cli) run(cmd *cobra.Command, task batch.Task) error {
	pairs, err := c.pairs(cmd)
	if err != nil {
		return err
	}
	band, err := c.band(cmd)
	if err != nil {
		return err
	}
	mode, err := c.cfg.MemoryMode()
	if err != nil {
		return err
	}

	c.log.Debug("starting", "command", cmd.Name(), "pairs", len(pairs), "workers", c.cfg.Workers)
	results, err := batch.Run(cmd.Context(), pairs, batch.Options{
		Task:    task,
		Band:    band,
		Margin:  c.cfg.Margin,
		Costs:   c.cfg.Costs(),
		Mode:    mode,
		Workers: c.cfg.Workers,
		Logger:  c.log,
	})
	if err != nil {
		return err
	}
	if err = render(c.out, c.cfg.Format, task, results); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	for _, r := range results {
		if r.Err != nil {
			return errPairsFailed
		}
	}

	return nil
}
