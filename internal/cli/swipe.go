package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yildizm/InternSwipe/internal/deck"
	"github.com/yildizm/InternSwipe/internal/logger"
	"github.com/yildizm/InternSwipe/internal/monitor"
	"github.com/yildizm/InternSwipe/internal/shortlist"
	"github.com/yildizm/InternSwipe/internal/ui"
)

var (
	swipeFlags   sessionFlags
	swipeWatch   bool
	swipeLogFile string
)

func newSwipeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swipe [deck.yaml]",
		Short: "Browse a deck interactively",
		Long: `Open a deck in the terminal and swipe through it.

Drag a card with the mouse or use the arrow keys: right (or l) likes, left
(or h) passes, space shows details. Without a deck file the configured
catalog paths are used, or the built-in sample deck.

Examples:
  internswipe swipe
  internswipe swipe jobs.yaml
  internswipe swipe --role employer --mode looping candidates.yaml
  internswipe swipe --watch --summary-format markdown --output-file shortlist.md jobs.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSwipe,
	}

	swipeFlags.bind(cmd)
	cmd.Flags().BoolVarP(&swipeWatch, "watch", "w", false, "reload the deck when its file changes")
	cmd.Flags().StringVar(&swipeLogFile, "log-file", "", "write UI logs to a file while the deck is open")

	return cmd
}

func runSwipe(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	log := newLogger("swipe")

	paths := deckPaths(args, cfg)
	cat, err := loadCatalog(paths, cfg.Catalog.EnableDefaults)
	if err != nil {
		return err
	}
	role, err := swipeFlags.resolveRole(cmd, cat, cfg)
	if err != nil {
		return err
	}
	deckCfg := swipeFlags.deckConfig(cmd, cfg)
	engineOpts, err := deckCfg.EngineOptions()
	if err != nil {
		return err
	}

	items := cat.Items(role)
	log.InfoWithFields("deck loaded", []logger.Field{logger.F("role", role), logger.Count(len(items)), logger.F("mode", deckCfg.Mode)})

	uiLog, closeLog, err := openUILog(swipeLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	list := shortlist.New(string(role), len(items))
	metrics := monitor.NewSession(len(items), nil)
	model, err := ui.NewSwipeModel(items, ui.Options{
		Role:      role,
		Engine:    engineOpts,
		CellUnits: deckCfg.CellUnits,
		Shortlist: list,
		Metrics:   metrics,
		Logger:    uiLog,
	})
	if err != nil {
		return fmt.Errorf("failed to open deck: %w", err)
	}

	program := ui.NewProgram(model)

	if (swipeWatch || cfg.Catalog.Watch) && len(paths) > 0 {
		w, err := newDeckWatcher(paths, role, func(items []deck.Item, source string, err error) {
			program.Send(ui.DeckReloaded(items, source, err))
		}, uiLog.WithComponent("watch"))
		if err != nil {
			return err
		}
		defer cleanupWatcher(w)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go w.Run(ctx)
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run deck: %w", err)
	}

	log.InfoWithFields("session finished", metrics.Snapshot().Fields())
	return writeSummary(cmd.OutOrStdout(), list.Summary(), swipeFlags.format(cmd, cfg), swipeFlags.outputFile)
}

// openUILog returns the logger the TUI writes to. Logging to the terminal
// would tear the alternate screen, so without a file the output is dropped.
func openUILog(path string) (*logger.Logger, func(), error) {
	log := newLogger("ui")
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	// #nosec G304 - user-selected log destination
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(file)
	return log, func() {
		if err := file.Close(); err != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	}, nil
}
