package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/hunter/internal/domain/entity"
)

// ReplayInput represents the intruder state during replay
type ReplayInput struct {
	Position    entity.Vec3
	Signal      float64
	Crouching   bool
	ForceEngage bool
	Restore     bool
}

// Replayer handles playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Position:    entity.Vec3{X: fi.X, Z: fi.Z},
		Signal:      fi.S,
		Crouching:   fi.C,
		ForceEngage: fi.FE,
		Restore:     fi.RS,
	}, true
}

// Apply writes a replayed frame onto the intruder
func (in ReplayInput) Apply(intruder *entity.Intruder) {
	intruder.Position = in.Position
	intruder.Signal = in.Signal
	intruder.Crouching = in.Crouching
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// SessionID returns the id of the recorded session
func (r *Replayer) SessionID() string {
	return r.data.SessionID
}

// Data returns the underlying replay data
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (an idle intruder)
func CreateTestReplayData(frames int, x, z float64) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		SessionID: uuid.NewString(),
		Scene:     "test",
		TPS:       60,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			X: x,
			Z: z,
		}
	}

	return data
}
