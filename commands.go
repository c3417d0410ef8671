package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// app carries what the commands share: configuration, the terminal and the
// sources of randomness and session ids.
type app struct {
	cfg   config
	in    io.Reader
	out   io.Writer
	rnd   *rand.Rand
	newID func() string

	configPath  string
	kFactor     int
	matchmaker  string
	history     string
	historyFile string
	outputDir   string
	debug       bool
	saveResults bool
	noPrompt    bool
}

func newApp(in io.Reader, out io.Writer, rnd *rand.Rand) *app {
	return &app{
		cfg:   defaultConfig(),
		in:    in,
		out:   out,
		rnd:   rnd,
		newID: uuid.NewString,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "rank",
		Short:             "Rank a set of items based on 1 on 1 preference",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.configure,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file (default $RANK_CONFIG)")
	f.BoolVar(&a.debug, "debug", false, "enable debugging")
	f.IntVar(&a.kFactor, "k-factor", defaultK, "magnitude of rating updates")
	f.StringVar(&a.matchmaker, "matchmaker", randomMatchmaker, "[random, balanced, close]")
	f.StringVar(&a.history, "history", noHistory, "[none, sqlite, boltdb] database recording matchups")
	f.StringVar(&a.historyFile, "history-file", "", "filename for the history database")
	f.StringVar(&a.outputDir, "output-dir", "", "directory for rankinfo and results files (default: next to the input)")
	f.BoolVar(&a.saveResults, "save-results", false, "save results without asking")
	f.BoolVar(&a.noPrompt, "no-prompt", false, "do not offer to save results")

	root.AddCommand(
		&cobra.Command{
			Use:   "new <text-file>",
			Short: "Read a list of items from plain text and generate a rank set from it stored as JSON in a rankinfo file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				is, err := loadText(args[0], rating(a.cfg.InitialRating))
				if err != nil {
					return err
				}
				return a.rank(is, args[0], textBaseName(args[0]))
			},
		},
		&cobra.Command{
			Use:   "load <rankinfo-file>",
			Short: "Load a saved rankinfo file and resume comparisons to continue refining an existing item set",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				is, err := loadRankinfo(args[0])
				if err != nil {
					return err
				}
				return a.rank(is, args[0], rankinfoBaseName(args[0]))
			},
		},
		&cobra.Command{
			Use:   "history [session-id]",
			Short: "List recorded sessions, or the matchups of one session",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.showHistory(args)
			},
		},
		newTransferCmd(a),
	)

	return root
}

func newTransferCmd(a *app) *cobra.Command {
	var to, output string
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Copy the matchup history into another database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.openHistory()
			if err != nil {
				return err
			}
			defer closeDB(in)

			out, err := openDatabase(to, output)
			if err != nil {
				return err
			}
			defer closeDB(out)

			return transferData(in, out)
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "[sqlite, boltdb] database to transfer to")
	cmd.Flags().StringVar(&output, "output", "", "filename for transfer to")
	cobra.CheckErr(cmd.MarkFlagRequired("to"))
	cobra.CheckErr(cmd.MarkFlagRequired("output"))

	return cmd
}

// configure applies defaults, the config file, the environment and finally
// any flags given on the command line, in that order.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	setDebug(a.debug)

	cfg, err := loadConfig(a.configPath, os.Getenv)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("k-factor") {
		cfg.KFactor = a.kFactor
	}
	if f.Changed("matchmaker") {
		cfg.Matchmaker = a.matchmaker
	}
	if f.Changed("history") {
		cfg.History = a.history
	}
	if f.Changed("history-file") {
		cfg.HistoryFile = a.historyFile
	}
	if f.Changed("output-dir") {
		cfg.OutputDir = a.outputDir
	}
	if f.Changed("debug") {
		cfg.Debug = a.debug
	}
	setDebug(cfg.Debug)

	if err := cfg.validate(); err != nil {
		return err
	}

	Debugf("config: %#v", cfg)
	a.cfg = cfg
	return nil
}

func (a *app) openHistory() (DB, error) {
	if a.cfg.History == noHistory {
		return nil, errors.New("no history database configured")
	}

	return openDatabase(a.cfg.History, a.cfg.HistoryFile)
}

func closeDB(db DB) {
	if err := db.Close(); err != nil {
		log.Print(err)
	}
}

// rank runs a session over is, saves the rankinfo file and shows the results.
func (a *app) rank(is items, input, base string) error {
	for _, name := range is.duplicates() {
		Warnf("%q appears more than once, comparisons between the copies are meaningless", name)
	}

	mm, err := newMatchmaker(a.cfg.Matchmaker)
	if err != nil {
		return err
	}

	var history DB
	if a.cfg.History != noHistory {
		history, err = a.openHistory()
		if err != nil {
			return err
		}
		defer closeDB(history)
	}

	dir := a.cfg.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	console := newConsoleDecider(a.in, a.out)
	s := newSession(a.newID(), is, a.cfg.KFactor, mm, a.rnd, console, history)
	if _, err := s.run(); err != nil {
		return err
	}

	path := rankinfoPath(dir, base)
	if err := saveRankinfo(path, s.items); err != nil {
		return err
	}
	Debugf("saved rankinfo to %s", path)

	mode := askToSave
	switch {
	case a.saveResults:
		mode = alwaysSave
	case a.noPrompt:
		mode = neverSave
	}

	_, err = displayResults(a.out, console, s.items, dir, base, mode)
	return err
}

func (a *app) showHistory(args []string) error {
	db, err := a.openHistory()
	if err != nil {
		return err
	}
	defer closeDB(db)

	if len(args) == 0 {
		ids, err := db.getSessions()
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(a.out, id)
		}
		return nil
	}

	ms, err := db.getMatchups(args[0])
	if err != nil {
		return err
	}
	for _, m := range ms {
		fmt.Fprintf(a.out, "%3d) %s (%d -> %d) beat %s (%d -> %d)\n",
			m.Seq+1, m.Winner, m.WinnerBefore, m.WinnerAfter, m.Loser, m.LoserBefore, m.LoserAfter)
	}

	return nil
}
