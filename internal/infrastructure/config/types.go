package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight" yaml:"screenHeight"`
	Scale         int     `json:"scale" yaml:"scale"`
	Framerate     int     `json:"framerate" yaml:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" yaml:"pixelsPerUnit"` // world unit -> screen pixels
}

// AdversaryConfig is the root config for adversary.yaml.
// All durations are seconds, distances are world units.
type AdversaryConfig struct {
	Perception PerceptionConfig `yaml:"perception" json:"perception"`
	Timing     TimingConfig     `yaml:"timing" json:"timing"`
	Pursuit    PursuitConfig    `yaml:"pursuit" json:"pursuit"`
	Patrol     PatrolConfig     `yaml:"patrol" json:"patrol"`
	Combat     CombatConfig     `yaml:"combat" json:"combat"`
	Steps      StepConfig       `yaml:"steps" json:"steps"`
	Intruder   IntruderConfig   `yaml:"intruder" json:"intruder"`
}

type PerceptionConfig struct {
	TriggerThreshold float64 `yaml:"triggerThreshold" json:"triggerThreshold"`
}

type TimingConfig struct {
	SearchToRageDelay        float64 `yaml:"searchToRageDelay" json:"searchToRageDelay"`
	RageForgetAfter          float64 `yaml:"rageForgetAfter" json:"rageForgetAfter"`
	PlayerMoveSecondsToChase float64 `yaml:"playerMoveSecondsToChase" json:"playerMoveSecondsToChase"`
	RequeryFootstepInterval  float64 `yaml:"requeryFootstepInterval" json:"requeryFootstepInterval"`
	DefaultOverrideSeconds   float64 `yaml:"defaultOverrideSeconds" json:"defaultOverrideSeconds"`
	AcquireTimeout           float64 `yaml:"acquireTimeout" json:"acquireTimeout"`
}

type PursuitConfig struct {
	SpeedFloor      float64 `yaml:"speedFloor" json:"speedFloor"`
	CaptureDistance float64 `yaml:"captureDistance" json:"captureDistance"`
	MovementEpsilon float64 `yaml:"movementEpsilon" json:"movementEpsilon"`
}

// PatrolConfig is the spawn locomotion profile
type PatrolConfig struct {
	MoveSpeed      float64 `yaml:"moveSpeed" json:"moveSpeed"`
	TurnRate       float64 `yaml:"turnRate" json:"turnRate"` // degrees/second
	Acceleration   float64 `yaml:"acceleration" json:"acceleration"`
	ArriveDistance float64 `yaml:"arriveDistance" json:"arriveDistance"`
}

// CombatConfig is applied on top of the patrol profile while raging
type CombatConfig struct {
	TurnRate     float64 `yaml:"turnRate" json:"turnRate"`
	Acceleration float64 `yaml:"acceleration" json:"acceleration"`
}

// StepConfig debounces footfall presentation
type StepConfig struct {
	MinInterval float64 `yaml:"minInterval" json:"minInterval"`
	MinSpeed    float64 `yaml:"minSpeed" json:"minSpeed"`
	Stride      float64 `yaml:"stride" json:"stride"` // units travelled per footfall
}

type IntruderConfig struct {
	SneakSpeed  float64 `yaml:"sneakSpeed" json:"sneakSpeed"`
	WalkSpeed   float64 `yaml:"walkSpeed" json:"walkSpeed"`
	RunSpeed    float64 `yaml:"runSpeed" json:"runSpeed"`
	SneakSignal float64 `yaml:"sneakSignal" json:"sneakSignal"`
	WalkSignal  float64 `yaml:"walkSignal" json:"walkSignal"`
	RunSignal   float64 `yaml:"runSignal" json:"runSignal"`
	SignalDecay float64 `yaml:"signalDecay" json:"signalDecay"`
}
