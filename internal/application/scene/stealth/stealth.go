// Package stealth provides the stealth sandbox scene: one intruder under
// keyboard control and the configured adversaries.
package stealth

import (
	"log/slog"

	"github.com/younwookim/hunter/internal/application/presentation"
	"github.com/younwookim/hunter/internal/application/replay"
	"github.com/younwookim/hunter/internal/application/scene"
	"github.com/younwookim/hunter/internal/application/state"
	"github.com/younwookim/hunter/internal/application/system"
	"github.com/younwookim/hunter/internal/ecs"
	"github.com/younwookim/hunter/internal/infrastructure/config"
	"github.com/younwookim/hunter/internal/log"
)

// maxRecent bounds the transition list shown in the HUD
const maxRecent = 6

// Stealth is the sandbox scene
type Stealth struct {
	config   *config.GameConfig
	world    *ecs.World
	director *presentation.Director
	input    *system.InputSystem
	state    state.SessionState

	screenW int
	screenH int
	ppu     float64 // pixels per world unit
	tps     int

	frame     int
	crouching bool
	recent    []system.Transition

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	logger *slog.Logger
}

// New creates the scene for cfg. If recordPath is not empty, intruder
// frames are recorded and saved on capture and on exit.
func New(cfg *config.GameConfig, recordPath string) *Stealth {
	s := &Stealth{
		config:         cfg,
		director:       presentation.NewDirector(),
		state:          state.SessionPlaying,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		ppu:            cfg.Display.PixelsPerUnit,
		tps:            cfg.Display.Framerate,
		recordFilename: recordPath,
		logger:         log.With("scene", cfg.Scene.ID),
	}
	if s.ppu <= 0 {
		s.ppu = 32
	}
	if s.tps <= 0 {
		s.tps = 60
	}

	s.world = ecs.Build(cfg.Scene, cfg.Adversary, s.director)
	s.world.OnCapture = s.onCapture
	for _, id := range s.world.AdversaryIDs() {
		s.world.Controller[id].OnTransition = s.noteTransition
	}
	s.input = system.NewInputSystem(s.world.Stage)

	if recordPath != "" {
		s.recorder = replay.NewRecorder(cfg.Scene.ID, s.tps)
		s.logger.Info("recording enabled", "path", recordPath, "session", s.recorder.SessionID())
	}
	return s
}

// Update proceeds the session (implements scene.Scene)
func (s *Stealth) Update(dt float64) (scene.Scene, error) {
	return s.step(s.input.GetInput(s.crouching), dt)
}

// step advances the session with already-read input
func (s *Stealth) step(in system.InputState, dt float64) (scene.Scene, error) {
	if in.Restart {
		s.restart()
		return nil, nil
	}
	if in.Pause {
		s.state = s.state.TogglePause()
	}

	switch s.state {
	case state.SessionPlaying:
		s.updatePlaying(in, dt)
	case state.SessionCaptured:
		// Lights keep settling behind the overlay
		s.director.Tick(dt)
	}
	return nil, nil
}

func (s *Stealth) updatePlaying(in system.InputState, dt float64) {
	if in.Restore {
		s.world.RestoreSpawn()
	}

	s.crouching = in.Crouch
	s.world.ApplyIntruderInput(in, dt)
	if in.ForceEngage {
		s.world.ForceEngage(true, 0)
	}
	s.record(in)

	s.world.Update(dt)
	s.director.Tick(dt)
	s.frame++
}

func (s *Stealth) record(in system.InputState) {
	if s.recorder == nil {
		return
	}
	intruder, ok := s.world.GetIntruder()
	if !ok {
		return
	}
	s.recorder.RecordFrame(replay.ReplayInput{
		Position:    intruder.GetPosition(),
		Signal:      intruder.GetSignalRange(),
		Crouching:   intruder.IsInLowVisibilityPosture(),
		ForceEngage: in.ForceEngage,
		Restore:     in.Restore,
	})
}

func (s *Stealth) onCapture(c ecs.Capture) {
	s.logger.Info("intruder captured", "agent", c.Agent, "name", c.Name, "t", c.At)
	s.state = state.SessionCaptured
	s.saveRecording()
}

func (s *Stealth) noteTransition(tr system.Transition) {
	s.recent = append(s.recent, tr)
	if len(s.recent) > maxRecent {
		s.recent = s.recent[len(s.recent)-maxRecent:]
	}
}

// restart puts everything back at spawn and starts a new recording
func (s *Stealth) restart() {
	s.world.RestoreSpawn()
	s.world.Captures = nil
	s.state = state.SessionPlaying
	s.crouching = false
	s.recent = nil
	s.frame = 0

	if s.recordFilename != "" {
		s.recorder = replay.NewRecorder(s.config.Scene.ID, s.tps)
		s.logger.Info("recording restarted", "session", s.recorder.SessionID())
	}
}

// saveRecording saves the current recording to file
func (s *Stealth) saveRecording() {
	if s.recorder == nil || s.recorder.FrameCount() == 0 {
		return
	}

	filename := s.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := s.recorder.Save(filename); err != nil {
		s.logger.Error("failed to save recording", "error", err)
		return
	}
	s.logger.Info("recording saved", "path", filename, "frames", s.recorder.FrameCount())
}

// OnEnter is called when entering this scene
func (s *Stealth) OnEnter() {
	s.logger.Info("scene entered", "name", s.config.Scene.Name, "adversaries", s.world.CountAdversaries())
}

// OnExit is called when leaving this scene
func (s *Stealth) OnExit() {
	s.saveRecording()
}

// State returns the session state
func (s *Stealth) State() state.SessionState {
	return s.state
}

// World returns the simulated world
func (s *Stealth) World() *ecs.World {
	return s.world
}

// Director returns the presentation collaborator
func (s *Stealth) Director() *presentation.Director {
	return s.director
}

// Frame returns the number of simulated frames since the last restart
func (s *Stealth) Frame() int {
	return s.frame
}
