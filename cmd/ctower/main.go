package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ctower/audio"
	"github.com/lixenwraith/ctower/core"
	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/input"
	"github.com/lixenwraith/ctower/logger"
	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/render"
	"github.com/lixenwraith/ctower/scoreboard"
	"github.com/lixenwraith/ctower/systems"
	"github.com/lixenwraith/ctower/visibility"
	"github.com/lixenwraith/ctower/vmath"
)

// Smallest arena that still fits the help dialog and the stats rows
const (
	minArenaCols = 40
	minArenaRows = 12
	topScores    = 5
	commandQueue = 16
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config overriding defaults")
	keymapFlag = flag.String("keymap", "", "Path to a TOML keymap overriding default bindings")
	fpsFlag    = flag.Int("fps", 0, "Ticks per second (0 keeps the configured value)")
	assetsFlag = flag.String("assets", "assets", "Directory holding sound effect files")
	scoresFlag = flag.String("scores", defaultScoresPath(), "Path to the score history database")
	strictFlag = flag.Bool("strict", false, "Require level 10 and a final kill near the base to win")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/ctower.log")
	muteFlag   = flag.Bool("mute", false, "Disable sound effects")
)

func main() {
	// Restore the terminal before printing anything about a crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ctower: %v\n", err)
		os.Exit(1)
	}
}

func defaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "ctower-scores.db")
	}
	return filepath.Join(dir, "ctower", "scores.db")
}

func run() error {
	if logFile := setupLogging(*debugFlag, logDir); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := parameter.Load(*configFlag)
	if err != nil {
		return err
	}
	if *fpsFlag > 0 {
		cfg.Game.FPS = *fpsFlag
	}
	if *strictFlag {
		cfg.Game.StrictVictory = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	keys := input.DefaultKeyTable()
	if *keymapFlag != "" {
		data, err := os.ReadFile(*keymapFlag)
		if err != nil {
			return fmt.Errorf("failed to read keymap: %w", err)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			return err
		}
		keys.Merge(override)
	}

	board, err := scoreboard.Open(*scoresFlag)
	if err != nil {
		return err
	}
	defer board.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	screen.HideCursor()

	cols, rows := screen.Size()
	bounds := vmath.ScreenBounds(cols, rows)
	if bounds.Width() < minArenaCols || bounds.Height() < minArenaRows {
		return fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}

	var sound engine.SoundPlayer = engine.NopSound{}
	toggleMute := func() {}
	if !*muteFlag {
		sm := audio.NewSoundManager(*assetsFlag)
		if err := sm.Initialize(); err != nil {
			logger.Log.WithError(err).Warn("Audio unavailable, continuing without sound")
		} else {
			sm.Preload()
			defer sm.Cleanup()
			sound = sm
			toggleMute = func() {
				sm.SetMuted(!sm.Muted())
				logger.Log.WithField("muted", sm.Muted()).Debug("Sound toggled")
			}
		}
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	clock := engine.NewPausableClock()
	w := engine.NewWorld(cfg, bounds, rng, clock, sound)
	w.Generate()
	sched := engine.NewScheduler(w, systems.Pipeline(w)...)

	logger.Log.WithFields(logrus.Fields{
		"cols":     cols,
		"rows":     rows,
		"spawners": len(w.Spawners),
		"strict":   cfg.Game.StrictVictory,
	}).Info("Game started")

	term := render.NewTerminal(screen, bounds)
	term.DrawBorder()

	commands := make(chan input.Command, commandQueue)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core.Go(func() { pollEvents(screen, keys, commands, toggleMute) })

	start := clock.Now()
	hooks := engine.Hooks{
		Present: func(w *engine.World, fog visibility.Delta) {
			term.Draw(render.Compose(w, fog))
		},
		Modal: func(m engine.Modal) {
			lines := render.PauseLines
			if m == engine.ModalHelp {
				lines = render.HelpLines
			}
			term.Dialog(lines, "")
			if waitKey(ctx, commands, false) {
				term.DrawBorder()
			}
		},
	}

	outcome, err := sched.Run(ctx, commands, hooks)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"ticks":   sched.Ticks(),
		"paused":  clock.TotalPauseDuration(),
	}).Info("Game over")
	if outcome != engine.OutcomeWon && outcome != engine.OutcomeLost {
		return nil
	}

	_, reason := w.Outcome()
	entry, err := board.Record(ctx, scoreboard.Entry{
		Outcome:  outcome.String(),
		Reason:   reason,
		Level:    w.Player.Level(),
		Points:   w.Player.Points,
		Gold:     w.Base.Gold,
		Duration: clock.Now().Sub(start),
	})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to record score")
	} else {
		logger.Log.WithField("id", entry.ID).Info("Score recorded")
	}

	term.Dialog(endLines(ctx, board, outcome), "q")
	waitKey(ctx, commands, true)
	return nil
}

// endLines builds the final dialog: the outcome banner followed by the best games
func endLines(ctx context.Context, board *scoreboard.Board, outcome engine.Outcome) []string {
	lines := render.GameOverLines
	if outcome == engine.OutcomeWon {
		lines = render.WonLines
	}
	lines = append(lines[:len(lines):len(lines)], "")

	top, err := board.Top(ctx, topScores)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to read scores")
		return lines
	}
	lines = append(lines, "Best games")
	for _, e := range top {
		lines = append(lines, e.Format())
	}
	return lines
}

// pollEvents feeds translated key presses to the scheduler until the screen is finalized
// Unbound keys are forwarded as CmdNone so dialogs waiting for any key still wake;
// the mute key is handled here and never reaches the simulation
func pollEvents(screen tcell.Screen, keys *input.KeyTable, commands chan<- input.Command, toggleMute func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd := keys.Translate(ev)
			if cmd == input.CmdMute {
				toggleMute()
				continue
			}
			select {
			case commands <- cmd:
			default:
				logger.Log.Trace("Command queue full, key dropped")
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// waitKey blocks until a key arrives, or CmdQuit when quitOnly is set
// Returns false when ctx ends first
func waitKey(ctx context.Context, commands <-chan input.Command, quitOnly bool) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case cmd := <-commands:
			if !quitOnly || cmd == input.CmdQuit {
				return true
			}
		}
	}
}
