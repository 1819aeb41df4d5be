package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/hunter/internal/domain/entity"
)

// InputSystem handles intruder input
type InputSystem struct {
	stage *entity.Stage
}

// NewInputSystem creates a new input system
func NewInputSystem(stage *entity.Stage) *InputSystem {
	return &InputSystem{stage: stage}
}

// InputState holds the current input state
type InputState struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Run    bool
	Crouch bool // toggled, not held

	ForceEngage bool
	Restore     bool
	Pause       bool
	Restart     bool
}

// Direction returns the requested ground-plane direction (not normalized)
func (in InputState) Direction() entity.Vec3 {
	var d entity.Vec3
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if in.Up {
		d.Z--
	}
	if in.Down {
		d.Z++
	}
	return d
}

// GetInput reads the current input state. crouching is the current
// posture; C toggles it.
func (s *InputSystem) GetInput(crouching bool) InputState {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		crouching = !crouching
	}
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD),
		Up:          ebiten.IsKeyPressed(ebiten.KeyW),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS),
		Run:         ebiten.IsKeyPressed(ebiten.KeyShift),
		Crouch:      crouching,
		ForceEngage: inpututil.IsKeyJustPressed(ebiten.KeyE),
		Restore:     inpututil.IsKeyJustPressed(ebiten.KeyF9),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyZ),
	}
}

// UpdateIntruder moves the intruder from input
func (s *InputSystem) UpdateIntruder(intruder *entity.Intruder, input InputState, dt float64) {
	intruder.Crouching = input.Crouch
	intruder.Move(input.Direction(), input.Run, dt, s.stage)
}
