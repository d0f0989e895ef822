package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"jeopardy/internal/app"
	"jeopardy/internal/quiz"
	"jeopardy/internal/state"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/glamour"
	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "jeopardy"})
	cfg, err := app.LoadConfig()
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	if err := newRootCmd(&cfg, logger).Execute(); err != nil {
		var loadErr *quiz.LoadError
		if errors.As(err, &loadErr) {
			logger.Error("invalid quiz", "path", loadErr.Path, "reason", loadErr.Reason)
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}
}

func newRootCmd(cfg *app.Config, logger *clog.Logger) *cobra.Command {
	playCmd := newPlayCmd(cfg, logger)
	root := &cobra.Command{
		Use:           "jeopardy [QUIZ]",
		Short:         "Run a Jeopardy board from a quiz file",
		Args:          playCmd.Args,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if cfg.Debug {
				logger.SetLevel(clog.DebugLevel)
			}
		},
		RunE: playCmd.RunE,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for the session journal")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging")
	bindPlayFlags(root, cfg)

	root.AddCommand(
		playCmd,
		newValidateCmd(logger),
		newShowCmd(),
		newHistoryCmd(cfg),
	)
	return root
}

func newPlayCmd(cfg *app.Config, logger *clog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [QUIZ]",
		Short: "Start a game (the default command)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd.Context(), cfg, args, logger)
		},
	}
	bindPlayFlags(cmd, cfg)
	return cmd
}

func bindPlayFlags(cmd *cobra.Command, cfg *app.Config) {
	f := cmd.Flags()
	f.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "terminal or window")
	f.StringVar(&cfg.UI.StyleVariant, "style", cfg.UI.StyleVariant, "terminal colours: classic, night or mono")
	f.StringVar(&cfg.Board.Overlay, "overlay", cfg.Board.Overlay, "clue placement: cell or center")
	f.BoolVar(&cfg.Board.HideAnswered, "hide-answered", cfg.Board.HideAnswered, "keep used values hidden after closing a clue")
	f.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width in pixels")
	f.StringVar(&cfg.LogPath, "log", cfg.LogPath, "append JSON event log to this file")
	f.BoolVar(&cfg.Journal, "journal", cfg.Journal, "record the session in the journal")
}

func play(ctx context.Context, cfg *app.Config, args []string, logger *clog.Logger) error {
	if len(args) == 1 {
		cfg.QuizPath = args[0]
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(*cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	logger.Debug("session started", "session", a.SessionID(), "quiz", cfg.QuizPath, "frontend", cfg.Frontend)
	return a.Run(ctx)
}

func newValidateCmd(logger *clog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate QUIZ...",
		Short: "Check quiz files without starting a game",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				q, err := quiz.Load(path)
				if err != nil {
					logger.Error(err.Error())
					failed++
					continue
				}
				logger.Info("ok", "path", path, "title", q.Title(), "categories", len(q.Categories))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d quiz files invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show QUIZ",
		Short: "Print a quiz with all clues as formatted markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := quiz.Load(args[0])
			if err != nil {
				return err
			}
			renderer, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			out, err := renderer.Render(quiz.Markdown(q))
			if err != nil {
				return fmt.Errorf("render quiz: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "wrap", 78, "word wrap width")
	return cmd
}

func newHistoryCmd(cfg *app.Config) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [SESSION]",
		Short: "List recent sessions, or the clues opened in one session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			store, err := app.OpenJournal(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				reveals, err := store.GetReveals(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), revealTable(reveals))
				return err
			}
			sessions, err := store.ListSessions(cmd.Context(), limit)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sessionTable(sessions))
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of sessions to list")
	return cmd
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00")).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func styled(t *table.Table) *table.Table {
	return t.
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func sessionTable(sessions []state.SessionSummary) string {
	t := styled(table.New()).Headers("SESSION", "QUIZ", "FRONTEND", "STARTED", "DURATION", "CLUES")
	for _, s := range sessions {
		t.Row(s.ID, s.QuizTitle, s.Frontend, s.StartTS.Local().Format("2006-01-02 15:04"), duration(s.StartTS, s.EndTS), strconv.Itoa(s.Reveals))
	}
	return t.String()
}

func revealTable(reveals []state.RevealRecord) string {
	t := styled(table.New()).Headers("#", "CATEGORY", "VALUE", "OPENED", "OPEN FOR")
	for i, r := range reveals {
		t.Row(strconv.Itoa(i+1), r.Category, "$"+strconv.Itoa(r.Value), r.RevealedTS.Local().Format("15:04:05"), duration(r.RevealedTS, r.ClosedTS))
	}
	return t.String()
}

func duration(start, end time.Time) string {
	if end.IsZero() {
		return "-"
	}
	return end.Sub(start).Round(time.Second).String()
}
