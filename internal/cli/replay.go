package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yildizm/InternSwipe/internal/deck"
	"github.com/yildizm/InternSwipe/internal/emoji"
	"github.com/yildizm/InternSwipe/internal/logger"
	"github.com/yildizm/InternSwipe/internal/monitor"
	"github.com/yildizm/InternSwipe/internal/shortlist"
)

var (
	replayFlags sessionFlags
	replayDeck  string
	replayTrace bool
)

func newReplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Run a gesture script against a deck without the UI",
		Long: `Replay a scripted browsing session and print its summary.

The script is read from a file, or from stdin when no file (or "-") is given.
One instruction per line, '#' starts a comment:

  drag <offset> [<offset>...]   drag through the offsets and release at the last
  key left|right|space          press a key
  wait <duration>               let time pass, e.g. 250ms
  reset                         rewind the deck

Time only moves on 'wait', so decisions closer together than the transition
are dropped exactly as they would be in the UI.

Examples:
  internswipe replay session.txt
  printf 'key right\nwait 200ms\ndrag -150\n' | internswipe replay --trace
  internswipe replay --deck candidates.yaml --role employer -f json session.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReplay,
	}

	replayFlags.bind(cmd)
	cmd.Flags().StringVarP(&replayDeck, "deck", "d", "", "deck file or directory (default: configured catalog)")
	cmd.Flags().BoolVarP(&replayTrace, "trace", "t", false, "print the outcome of every instruction")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	log := newLogger("replay")

	reader, cleanup, err := openScript(args)
	if err != nil {
		return err
	}
	defer cleanup()

	steps, err := parseScript(reader)
	if err != nil {
		return err
	}

	var paths []string
	if replayDeck != "" {
		paths = []string{replayDeck}
	} else {
		paths = deckPaths(nil, cfg)
	}
	cat, err := loadCatalog(paths, cfg.Catalog.EnableDefaults)
	if err != nil {
		return err
	}
	role, err := replayFlags.resolveRole(cmd, cat, cfg)
	if err != nil {
		return err
	}
	engineOpts, err := replayFlags.deckConfig(cmd, cfg).EngineOptions()
	if err != nil {
		return err
	}

	clock := &fakeClock{now: time.Now().Truncate(time.Second)}
	items := cat.Items(role)
	engine, err := deck.New(items, append(engineOpts, deck.WithClock(clock.Now))...)
	if err != nil {
		return fmt.Errorf("failed to open deck: %w", err)
	}

	list := shortlist.NewWithClock(string(role), len(items), clock.Now)
	metrics := monitor.NewSession(len(items), clock.Now)
	engine.Subscribe(list)
	engine.Subscribe(metrics)

	r := &replayer{engine: engine, clock: clock, list: list, metrics: metrics}
	if replayTrace {
		r.trace = cmd.ErrOrStderr()
	}
	for _, s := range steps {
		r.apply(s)
	}

	log.InfoWithFields("replay finished", append([]logger.Field{logger.F("steps", len(steps))}, metrics.Snapshot().Fields()...))
	return writeSummary(cmd.OutOrStdout(), list.Summary(), replayFlags.format(cmd, cfg), replayFlags.outputFile)
}

// openScript opens the script named by args, or stdin
func openScript(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}

	cleanPath := filepath.Clean(args[0])
	// #nosec G304 - user-selected script file
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open script %s: %w", args[0], err)
	}
	return file, func() {
		if err := file.Close(); err != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close script: %v\n", err)
		}
	}, nil
}

// fakeClock is a clock that only moves when told to
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type opcode string

const (
	opDrag  opcode = "drag"
	opKey   opcode = "key"
	opWait  opcode = "wait"
	opReset opcode = "reset"
)

// step is one parsed script instruction
type step struct {
	line    int
	op      opcode
	offsets []float64
	key     deck.Key
	wait    time.Duration
}

func (s step) String() string {
	switch s.op {
	case opDrag:
		parts := make([]string, len(s.offsets))
		for i, o := range s.offsets {
			parts[i] = strconv.FormatFloat(o, 'f', -1, 64)
		}
		return "drag " + strings.Join(parts, " ")
	case opKey:
		return "key " + s.key.String()
	case opWait:
		return "wait " + s.wait.String()
	default:
		return string(s.op)
	}
}

// ScriptError reports a malformed script line
type ScriptError struct {
	Line    int
	Text    string
	Message string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script line %d (%q): %s", e.Line, e.Text, e.Message)
}

// parseScript reads every instruction of a replay script
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		s, msg := parseStep(fields)
		if msg != "" {
			return nil, &ScriptError{Line: lineNo, Text: strings.TrimSpace(text), Message: msg}
		}
		s.line = lineNo
		steps = append(steps, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

func parseStep(fields []string) (step, string) {
	op := opcode(strings.ToLower(fields[0]))
	args := fields[1:]

	switch op {
	case opDrag:
		if len(args) == 0 {
			return step{}, "drag needs at least one offset"
		}
		offsets := make([]float64, len(args))
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return step{}, fmt.Sprintf("invalid offset %q", a)
			}
			offsets[i] = v
		}
		return step{op: op, offsets: offsets}, ""

	case opKey:
		if len(args) != 1 {
			return step{}, "key needs exactly one of left, right, space"
		}
		k, err := deck.ParseKey(args[0])
		if err != nil {
			return step{}, err.Error()
		}
		return step{op: op, key: k}, ""

	case opWait:
		if len(args) != 1 {
			return step{}, "wait needs a duration"
		}
		d, err := time.ParseDuration(args[0])
		if err != nil || d < 0 {
			return step{}, fmt.Sprintf("invalid duration %q", args[0])
		}
		return step{op: op, wait: d}, ""

	case opReset:
		if len(args) != 0 {
			return step{}, "reset takes no arguments"
		}
		return step{op: op}, ""
	}

	return step{}, fmt.Sprintf("unknown instruction %q", fields[0])
}

// replayer applies script steps to an engine
type replayer struct {
	engine  *deck.Engine
	clock   *fakeClock
	list    *shortlist.Shortlist
	metrics *monitor.Session
	trace   io.Writer
}

// apply runs one step and returns the decision it produced
func (r *replayer) apply(s step) deck.Decision {
	item, _ := r.engine.CurrentItem()
	accepting := item != nil && !r.engine.Transitioning()

	decision := deck.Cancel
	switch s.op {
	case opDrag:
		r.engine.OnGestureStart()
		for _, o := range s.offsets {
			r.engine.OnGestureMove(o)
		}
		decision = r.engine.OnGestureEnd(s.offsets[len(s.offsets)-1])
	case opKey:
		decision = r.engine.OnKey(s.key)
	case opWait:
		r.clock.Advance(s.wait)
	case opReset:
		r.engine.Reset()
		r.list.SetDeckSize(r.engine.Len())
		if r.metrics != nil {
			r.metrics.Restart(r.engine.Len())
		}
	}

	if r.trace != nil {
		r.writeTrace(s, decision, item, accepting)
	}
	return decision
}

func (r *replayer) writeTrace(s step, d deck.Decision, item deck.Item, accepting bool) {
	var outcome string
	switch {
	case s.op == opWait || s.op == opReset:
		outcome = "ok"
	case item == nil:
		outcome = "ignored"
	case s.op == opKey && s.key == deck.KeySpace:
		outcome = emoji.GetEmoji("info") + " detail " + itemLabel(item)
	case !accepting:
		outcome = "ignored"
	case d == deck.Accept:
		outcome = emoji.GetEmoji("heart") + " accept " + itemLabel(item)
	case d == deck.Reject:
		outcome = emoji.GetEmoji("cross") + " reject " + itemLabel(item)
	default:
		outcome = "cancel"
	}
	fmt.Fprintf(r.trace, "%3d  %-20s %s\n", s.line, s.String(), outcome)
}

func itemLabel(item deck.Item) string {
	if item == nil {
		return "-"
	}
	if h, ok := item.(interface{ Headline() string }); ok {
		return item.Key() + " (" + h.Headline() + ")"
	}
	return item.Key()
}
