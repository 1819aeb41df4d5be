package system

import (
	"log/slog"

	"github.com/younwookim/hunter/internal/domain/entity"
	"github.com/younwookim/hunter/internal/log"
)

// timeEpsilon absorbs float drift from accumulating frame deltas
const timeEpsilon = entity.TimeTolerance

// Transition describes an awareness state change
type Transition struct {
	Agent entity.EntityID
	From  entity.AwarenessState
	To    entity.AwarenessState
	At    float64
}

// Controller drives one adversary through Patrol, Search and Rage.
// It is updated once per tick and is not safe for concurrent use.
type Controller struct {
	id     entity.EntityID
	tuning Tuning
	body   Locomotion
	route  entity.PatrolRoute

	presenter Presenter
	capture   CaptureHandler
	locator   TargetLocator
	logger    *slog.Logger

	state entity.AwarenessState
	now   float64

	target    entity.Target
	sampler   entity.PerceptionSampler
	lastScan  float64
	scanning  bool
	hasSample bool
	sample    entity.PerceptionSample

	memory      entity.PursuitMemory
	searchTimer float64
	baseline    entity.Baseline
	override    entity.OverrideWindow
	captured    bool

	destination    entity.Vec3
	hasDestination bool

	lastStepAt float64
	stepped    bool

	// OnTransition is called after every awareness state change
	OnTransition func(Transition)
}

// Option configures a Controller
type Option func(*Controller)

// WithPresenter routes presentation intents to p
func WithPresenter(p Presenter) Option {
	return func(c *Controller) {
		if p != nil {
			c.presenter = p
		}
	}
}

// WithCaptureHandler routes capture signals to h
func WithCaptureHandler(h CaptureHandler) Option {
	return func(c *Controller) {
		if h != nil {
			c.capture = h
		}
	}
}

// WithLocator sets how the tracked target is found
func WithLocator(l TargetLocator) Option {
	return func(c *Controller) {
		c.locator = l
	}
}

// WithTarget tracks a fixed target
func WithTarget(t entity.Target) Option {
	return WithLocator(StaticTarget{Target: t})
}

// WithLogger overrides the controller logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a controller in Patrol. An empty route leaves the
// agent idle until a route is provided.
func NewController(id entity.EntityID, tuning Tuning, body Locomotion, route entity.PatrolRoute, opts ...Option) *Controller {
	c := &Controller{
		id:        id,
		tuning:    tuning,
		body:      body,
		route:     route,
		presenter: nopPresenter{},
		capture:   nopCapture{},
		state:     entity.AwarenessPatrol,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.With("agent", id)
	}
	return c
}

// Update advances the controller by dt seconds
func (c *Controller) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	c.now += dt

	c.acquire()
	c.perceive()

	switch c.state {
	case entity.AwarenessPatrol:
		c.updatePatrol()
	case entity.AwarenessSearch:
		c.updateSearch(dt)
	case entity.AwarenessRage:
		c.updateRage(dt)
	}
}

// acquire looks the target up every tick. Failures are retried; one
// warning is logged per AcquireTimeout window without a target.
func (c *Controller) acquire() {
	if c.locator == nil {
		return
	}

	if t, ok := c.locator.Locate(); ok && t != nil {
		if c.target == nil {
			c.logger.Debug("target acquired", "t", c.now)
		}
		c.target = t
		c.scanning = false
		return
	}

	c.target = nil
	if !c.scanning {
		c.scanning = true
		c.lastScan = c.now
		return
	}
	if reached(c.now-c.lastScan, c.tuning.AcquireTimeout) {
		c.logger.Warn("no target found", "waited", c.now-c.lastScan)
		c.lastScan = c.now
	}
}

// perceive samples the target. Without a target there is no sample.
func (c *Controller) perceive() {
	if c.target == nil {
		c.hasSample = false
		return
	}
	c.sample = c.sampler.Sample(c.target.GetSignalRange(), c.body.GetPosition(), c.target.GetPosition())
	c.hasSample = true
}

func (c *Controller) setState(to entity.AwarenessState) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	c.logger.Debug("awareness changed", "from", from.String(), "to", to.String(), "t", c.now)
	if c.OnTransition != nil {
		c.OnTransition(Transition{Agent: c.id, From: from, To: to, At: c.now})
	}
}

func (c *Controller) present(intent Intent) {
	c.presenter.Present(intent)
}

// ID returns the agent id
func (c *Controller) ID() entity.EntityID {
	return c.id
}

// State returns the current awareness state
func (c *Controller) State() entity.AwarenessState {
	return c.state
}

// Now returns controller time in seconds
func (c *Controller) Now() float64 {
	return c.now
}

// Tuning returns the controller constants
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// Destination returns the last destination handed to locomotion
func (c *Controller) Destination() (entity.Vec3, bool) {
	return c.destination, c.hasDestination
}

// Memory returns a copy of the pursuit memory
func (c *Controller) Memory() entity.PursuitMemory {
	return c.memory
}

// Sample returns the latest perception sample, if a target was present
func (c *Controller) Sample() (entity.PerceptionSample, bool) {
	return c.sample, c.hasSample
}

// Route returns the patrol route
func (c *Controller) Route() entity.PatrolRoute {
	return c.route
}

// SetRoute replaces the patrol route. Takes effect on the next Patrol tick.
func (c *Controller) SetRoute(route entity.PatrolRoute) {
	c.route = route
	c.hasDestination = false
}

// reached reports whether elapsed has covered duration.
// Non-positive durations are reached immediately.
func reached(elapsed, duration float64) bool {
	if duration <= 0 {
		return true
	}
	return elapsed+timeEpsilon >= duration
}

// exceeded reports whether elapsed is strictly past limit
func exceeded(elapsed, limit float64) bool {
	if limit <= 0 {
		return true
	}
	return elapsed > limit+timeEpsilon
}
