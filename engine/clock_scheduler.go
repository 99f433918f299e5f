package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ctower/input"
	"github.com/lixenwraith/ctower/logger"
	"github.com/lixenwraith/ctower/visibility"
)

// System is one phase of the tick pipeline
type System interface {
	Name() string
	Update(w *World)
}

// Outcome is the state of a game as seen after a tick
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Modal identifies a blocking dialog requested by the player
type Modal uint8

const (
	ModalPause Modal = iota
	ModalHelp
)

// Hooks connect the scheduler to the presentation layer
// Present runs after every tick; Modal blocks until the player dismisses the dialog
type Hooks struct {
	Present func(w *World, fog visibility.Delta)
	Modal   func(m Modal)
}

// Scheduler runs the systems in registration order on a fixed tick
type Scheduler struct {
	world    *World
	systems  []System
	fog      *visibility.Engine
	lastFog  visibility.Delta
	forceFog bool

	tickInterval time.Duration
	tickCount    uint64
}

// NewScheduler creates a scheduler; systems run in the given order every tick
func NewScheduler(w *World, systems ...System) *Scheduler {
	return &Scheduler{
		world:        w,
		systems:      systems,
		fog:          visibility.New(w.Bounds),
		tickInterval: w.Config.TickInterval(),
	}
}

// World returns the simulated world
func (s *Scheduler) World() *World {
	return s.world
}

// Fog returns the visibility delta computed by the last tick
func (s *Scheduler) Fog() visibility.Delta {
	return s.lastFog
}

// RequestFogReset forces the next tick to report a fog change
func (s *Scheduler) RequestFogReset() {
	s.forceFog = true
}

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() uint64 {
	return s.tickCount
}

// Step advances the simulation by one tick applying cmd, then recomputes visibility
func (s *Scheduler) Step(cmd input.Command) Outcome {
	w := s.world
	w.Pending = cmd
	w.Captured = w.Captured[:0]
	w.Detonated = w.Detonated[:0]

	for _, sys := range s.systems {
		sys.Update(w)
		if o, _ := w.Outcome(); o != OutcomeRunning {
			break
		}
	}
	w.Pending = input.CmdNone

	s.lastFog = s.fog.Update(w.LightSources(), s.forceFog)
	s.forceFog = false
	s.tickCount++

	o, reason := w.Outcome()
	if o != OutcomeRunning {
		logger.Log.WithFields(logrus.Fields{
			"outcome": o.String(),
			"reason":  reason,
			"tick":    s.tickCount,
		}).Info("Game ended")
	}
	return o
}

// Run drives Step on a ticker until the game ends, the player quits or ctx is cancelled
// At most one command is consumed per tick; pause and help block in hooks.Modal
// with game time stopped and force a fog repaint afterwards
func (s *Scheduler) Run(ctx context.Context, commands <-chan input.Command, hooks Hooks) (Outcome, error) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.world.End(OutcomeQuit, "interrupted")
			return OutcomeQuit, ctx.Err()
		case <-ticker.C:
		}

		cmd := input.CmdNone
		select {
		case cmd = <-commands:
		default:
		}

		switch cmd {
		case input.CmdQuit:
			s.world.End(OutcomeQuit, "player quit")
			return OutcomeQuit, nil
		case input.CmdPause, input.CmdHelp:
			s.openModal(cmd, hooks)
			cmd = input.CmdNone
		}

		o := s.Step(cmd)
		if hooks.Present != nil {
			hooks.Present(s.world, s.lastFog)
		}
		if o != OutcomeRunning {
			return o, nil
		}
	}
}

func (s *Scheduler) openModal(cmd input.Command, hooks Hooks) {
	m := ModalPause
	if cmd == input.CmdHelp {
		m = ModalHelp
	}

	s.world.Clock.Pause()
	if hooks.Modal != nil {
		hooks.Modal(m)
	}
	s.world.Clock.Resume()
	s.RequestFogReset()
}
