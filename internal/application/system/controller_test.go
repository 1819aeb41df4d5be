package system

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hunter/internal/domain/entity"
)

const tick = 0.1

// fakeBody is a locomotion executor that never moves on its own
type fakeBody struct {
	pos      entity.Vec3
	profile  entity.LocomotionProfile
	speed    float64
	dest     entity.Vec3
	moving   bool
	blocked  map[entity.Vec3]bool
	setCalls int
	stops    int
}

func newFakeBody(pos entity.Vec3) *fakeBody {
	return &fakeBody{pos: pos, profile: patrolProfile(), blocked: map[entity.Vec3]bool{}}
}

func patrolProfile() entity.LocomotionProfile {
	return entity.LocomotionProfile{MoveSpeed: 1.5, TurnRate: 180, Acceleration: 3, BrakingEnabled: true}
}

func (b *fakeBody) GetPosition() entity.Vec3 { return b.pos }

func (b *fakeBody) CanReach(p entity.Vec3) bool { return !b.blocked[p] }

func (b *fakeBody) Profile() entity.LocomotionProfile { return b.profile }

func (b *fakeBody) CurrentSpeed() float64 { return b.speed }

func (b *fakeBody) SetDestination(p entity.Vec3) bool {
	if !b.CanReach(p) {
		return false
	}
	b.dest = p
	b.moving = true
	b.setCalls++
	return true
}

func (b *fakeBody) Stop() {
	b.moving = false
	b.speed = 0
	b.stops++
}

func (b *fakeBody) SetProfile(p entity.LocomotionProfile) {
	b.profile = p
}

type fakeTarget struct {
	signal float64
	crouch bool
	pos    entity.Vec3
}

func (t *fakeTarget) GetSignalRange() float64 { return t.signal }

func (t *fakeTarget) IsInLowVisibilityPosture() bool { return t.crouch }

func (t *fakeTarget) GetPosition() entity.Vec3 { return t.pos }

type locatorFunc func() (entity.Target, bool)

func (f locatorFunc) Locate() (entity.Target, bool) { return f() }

type intentLog struct {
	intents []Intent
}

func (l *intentLog) Present(i Intent) { l.intents = append(l.intents, i) }

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func squareRoute() entity.PatrolRoute {
	return entity.NewPatrolRoute([]entity.Vec3{
		{X: 0, Z: 0},
		{X: 10, Z: 0},
		{X: 10, Z: 10},
		{X: 0, Z: 10},
	})
}

func newTestController(body *fakeBody, target entity.Target, opts ...Option) *Controller {
	opts = append([]Option{WithTarget(target), WithLogger(quietLogger())}, opts...)
	return NewController(7, DefaultTuning(), body, entity.PatrolRoute{}, opts...)
}

func run(c *Controller, ticks int) {
	for range ticks {
		c.Update(tick)
	}
}

// escalate drives a fresh controller from Patrol into Rage with a loud
// target 8 units away.
func escalate(t *testing.T, c *Controller, target *fakeTarget) {
	t.Helper()
	target.signal = 15
	target.pos = entity.Vec3{X: 8}
	c.Update(tick)
	require.Equal(t, entity.AwarenessSearch, c.State())
	run(c, 10)
	require.Equal(t, entity.AwarenessRage, c.State())
}

func TestController_StartsInPatrol(t *testing.T) {
	body := newFakeBody(entity.Vec3{Z: 5})
	c := NewController(1, DefaultTuning(), body, squareRoute(), WithLogger(quietLogger()))

	assert.Equal(t, entity.AwarenessPatrol, c.State())
	assert.Equal(t, entity.EntityID(1), c.ID())

	c.Update(tick)

	dest, ok := c.Destination()
	require.True(t, ok)
	assert.Equal(t, entity.Vec3{}, dest)
	assert.InDelta(t, tick, c.Now(), 1e-12)
}

func TestController_PatrolAdvancesOnArrival(t *testing.T) {
	body := newFakeBody(entity.Vec3{X: 5})
	c := NewController(1, DefaultTuning(), body, squareRoute(), WithLogger(quietLogger()))

	c.Update(tick)
	dest, _ := c.Destination()
	assert.Equal(t, entity.Vec3{}, dest)

	c.Update(tick)
	assert.Equal(t, 1, body.setCalls, "no re-issue while en route")

	body.pos = entity.Vec3{X: 0.1}
	c.Update(tick)
	dest, _ = c.Destination()
	assert.Equal(t, entity.Vec3{X: 10}, dest)
	assert.Equal(t, 1, c.Route().Index)
}

func TestController_PatrolSkipsUnreachableWaypoints(t *testing.T) {
	body := newFakeBody(entity.Vec3{X: 5, Z: 5})
	body.blocked[entity.Vec3{X: 0, Z: 0}] = true
	body.blocked[entity.Vec3{X: 10, Z: 0}] = true
	c := NewController(1, DefaultTuning(), body, squareRoute(), WithLogger(quietLogger()))

	c.Update(tick)

	dest, ok := c.Destination()
	require.True(t, ok)
	assert.Equal(t, entity.Vec3{X: 10, Z: 10}, dest)
}

func TestController_PatrolAllBlocked(t *testing.T) {
	body := newFakeBody(entity.Vec3{X: 5, Z: 5})
	route := squareRoute()
	for _, p := range route.Points {
		body.blocked[p] = true
	}
	c := NewController(1, DefaultTuning(), body, route, WithLogger(quietLogger()))

	assert.NotPanics(t, func() { run(c, 3) })

	_, ok := c.Destination()
	assert.False(t, ok)
	assert.Equal(t, entity.AwarenessPatrol, c.State())
}

func TestController_EmptyRouteIdles(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	c := NewController(1, DefaultTuning(), body, entity.PatrolRoute{}, WithLogger(quietLogger()))

	run(c, 5)

	assert.Equal(t, 0, body.setCalls)

	c.SetRoute(entity.NewPatrolRoute([]entity.Vec3{{X: 3}}))
	c.Update(tick)
	dest, ok := c.Destination()
	require.True(t, ok)
	assert.Equal(t, entity.Vec3{X: 3}, dest)
}

func TestController_SearchTrigger(t *testing.T) {
	tests := []struct {
		name     string
		signal   float64
		distance float64
		want     entity.AwarenessState
	}{
		{"loud and in range", 15, 8, entity.AwarenessSearch},
		{"exactly at threshold and range", 12, 12, entity.AwarenessSearch},
		{"loud but too far", 15, 16, entity.AwarenessPatrol},
		{"close but quiet", 10, 2, entity.AwarenessPatrol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := newFakeBody(entity.Vec3{})
			target := &fakeTarget{signal: tt.signal, pos: entity.Vec3{X: tt.distance}}
			c := newTestController(body, target)

			c.Update(tick)

			assert.Equal(t, tt.want, c.State())
		})
	}
}

func TestController_SearchEntryStopsAndAlerts(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	body.speed = 1.5
	target := &fakeTarget{signal: 15, pos: entity.Vec3{X: 8}}
	log := &intentLog{}
	c := newTestController(body, target, WithPresenter(log))

	c.Update(tick)

	assert.Equal(t, entity.AwarenessSearch, c.State())
	assert.Equal(t, 1, body.stops)
	assert.False(t, body.moving)
	require.Len(t, log.intents, 1)
	assert.Equal(t, AlertIntent{Agent: 7, Position: entity.Vec3{X: 8}}, log.intents[0])
	assert.Equal(t, entity.Vec3{X: 8}, c.Memory().LastHeardPosition)
}

func TestController_SearchToRageTiming(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{signal: 15, pos: entity.Vec3{X: 8}}
	c := newTestController(body, target)

	c.Update(tick)
	require.Equal(t, entity.AwarenessSearch, c.State())

	run(c, 9)
	assert.Equal(t, entity.AwarenessSearch, c.State(), "0.9s of search is not enough")

	c.Update(tick)
	assert.Equal(t, entity.AwarenessRage, c.State(), "rage after exactly 1.0s")
}

func TestController_SearchNoiseRefreshesMemoryOnly(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{signal: 15, pos: entity.Vec3{X: 8}}
	c := newTestController(body, target)
	c.Update(tick)

	target.signal = 0
	run(c, 4)
	target.signal = 14
	target.pos = entity.Vec3{X: 6}
	c.Update(tick)

	assert.Equal(t, entity.AwarenessSearch, c.State())
	assert.Equal(t, entity.Vec3{X: 6}, c.Memory().LastHeardPosition)
	assert.InDelta(t, 0.5, c.Status().SearchTimer, 1e-9)

	run(c, 5)
	require.Equal(t, entity.AwarenessRage, c.State(), "deadline unchanged by noise")
	dest, _ := c.Destination()
	assert.Equal(t, entity.Vec3{X: 6}, dest, "rage heads for the last heard position")
}

func TestController_PatrolSearchRagePatrolScenario(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	var transitions []Transition
	log := &intentLog{}
	c := newTestController(body, target, WithPresenter(log))
	c.OnTransition = func(tr Transition) { transitions = append(transitions, tr) }
	before := body.Profile()

	c.Update(tick)
	require.Equal(t, entity.AwarenessPatrol, c.State())

	escalate(t, c, target)

	saved, pending := c.Baseline()
	require.True(t, pending)
	assert.Equal(t, before, saved)
	assert.GreaterOrEqual(t, body.Profile().MoveSpeed, 4.0)
	assert.False(t, body.Profile().BrakingEnabled)
	dest, _ := c.Destination()
	assert.Equal(t, entity.Vec3{X: 8}, dest)

	// Target goes motionless and silent
	target.signal = 0
	run(c, 30)
	assert.Equal(t, entity.AwarenessRage, c.State(), "3.0s is not past the forget timeout")

	c.Update(tick)
	assert.Equal(t, entity.AwarenessPatrol, c.State())
	assert.Equal(t, before, body.Profile(), "profile restored exactly")
	_, pending = c.Baseline()
	assert.False(t, pending)

	require.Len(t, transitions, 3)
	assert.Equal(t, entity.AwarenessSearch, transitions[0].To)
	assert.Equal(t, entity.AwarenessRage, transitions[1].To)
	assert.Equal(t, entity.AwarenessPatrol, transitions[2].To)
	assert.Equal(t, entity.EntityID(7), transitions[2].Agent)

	require.Len(t, log.intents, 3)
	assert.IsType(t, AlertIntent{}, log.intents[0])
	assert.Equal(t, RageIntent{Agent: 7}, log.intents[1])
	assert.Equal(t, CalmIntent{Agent: 7}, log.intents[2])
}

func TestController_ForgetWhileCrouchedAndSilent(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	c := newTestController(body, target)
	before := body.Profile()
	escalate(t, c, target)

	// Sneaking keeps the signal under the noise floor
	target.signal = 0.5
	target.crouch = true
	for i := range 30 {
		target.pos.Z += 0.05
		c.Update(tick)
		require.Equal(t, entity.AwarenessRage, c.State(), "tick %d", i)
	}

	target.pos.Z += 0.05
	c.Update(tick)
	assert.Equal(t, entity.AwarenessPatrol, c.State())
	assert.Equal(t, before, body.Profile())
}

func TestController_VisibleMovementKeepsRage(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	c := newTestController(body, target)
	escalate(t, c, target)
	target.signal = 8

	for range 60 {
		target.pos.X += 0.1
		c.Update(tick)
		dest, _ := c.Destination()
		require.Equal(t, target.pos, dest, "direct pursuit tracks the live position")
	}
	assert.Equal(t, entity.AwarenessRage, c.State())
}

func TestController_MovementAccumulatorTrigger(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	c := newTestController(body, target)
	escalate(t, c, target)
	heard := c.Memory().LastHeardPosition

	target.signal = 0.5
	target.crouch = true
	calls := body.setCalls

	// First tick anchors, then 20 ticks of movement reach 2.0s
	for i := range 20 {
		target.pos.Z += 0.05
		c.Update(tick)
		require.Equal(t, calls, body.setCalls, "tick %d", i)
	}
	assert.InDelta(t, 1.9, c.Memory().MovementAccumulator, 1e-9)

	target.pos.Z += 0.05
	c.Update(tick)
	assert.Equal(t, calls+1, body.setCalls)
	dest, _ := c.Destination()
	assert.Equal(t, heard, dest, "crouched pursuit goes to the last heard position")

	// Throttled for the next second
	for range 9 {
		target.pos.Z += 0.05
		c.Update(tick)
	}
	assert.Equal(t, calls+1, body.setCalls)
}

func TestController_VisibleMovementDoesNotFeedAccumulator(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	c := newTestController(body, target)
	escalate(t, c, target)
	target.signal = 0.5

	for range 25 {
		target.pos.Z += 0.05
		c.Update(tick)
	}
	require.Equal(t, entity.AwarenessRage, c.State())
	assert.Equal(t, 0.0, c.Memory().MovementAccumulator)

	target.crouch = true
	calls := body.setCalls
	throttle := c.Memory().NextReevaluationAt

	// Crouched tracking starts from scratch: one anchor tick, then 2.0s
	for i := range 20 {
		target.pos.Z += 0.05
		c.Update(tick)
		require.Equal(t, calls, body.setCalls, "tick %d", i)
	}
	assert.Equal(t, throttle, c.Memory().NextReevaluationAt)

	target.pos.Z += 0.05
	c.Update(tick)
	assert.Equal(t, calls+1, body.setCalls)
}

func TestController_MovementAccumulatorResetsWhenTargetStops(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	c := newTestController(body, target)
	escalate(t, c, target)
	target.signal = 0.5
	target.crouch = true

	for range 10 {
		target.pos.Z += 0.05
		c.Update(tick)
	}
	assert.Greater(t, c.Memory().MovementAccumulator, 0.0)

	c.Update(tick)
	assert.Equal(t, 0.0, c.Memory().MovementAccumulator)
}

func TestController_NoiseTriggerWhileCrouched(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	c := newTestController(body, target)
	escalate(t, c, target)
	target.signal = 0
	target.crouch = true
	run(c, 12)

	target.pos = entity.Vec3{X: 4, Z: 4}
	target.signal = 5
	c.Update(tick)

	dest, _ := c.Destination()
	assert.Equal(t, entity.Vec3{X: 4, Z: 4}, dest)
	assert.Equal(t, entity.Vec3{X: 4, Z: 4}, c.Memory().LastHeardPosition)
	assert.InDelta(t, 0.0, c.Memory().SinceHeard(c.Now()), 1e-9)
}

func TestController_NoiseWhileThrottledIsHeardButNotChased(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	c := newTestController(body, target)
	escalate(t, c, target)
	target.signal = 0
	target.crouch = true
	c.Update(tick)
	calls := body.setCalls

	target.pos = entity.Vec3{X: 2}
	target.signal = 5
	c.Update(tick)

	assert.Equal(t, calls, body.setCalls, "throttle from rage entry still closed")
	assert.Equal(t, entity.Vec3{X: 2}, c.Memory().LastHeardPosition)
}

func TestController_BothTriggersSameTick(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	c := newTestController(body, target)
	escalate(t, c, target)
	target.signal = 0.5
	target.crouch = true

	for range 20 {
		target.pos.Z += 0.05
		c.Update(tick)
	}
	calls := body.setCalls

	target.pos.Z += 0.05
	target.signal = 5
	c.Update(tick)

	assert.Equal(t, calls+2, body.setCalls, "accumulator and noise both refresh")
	dest, _ := c.Destination()
	assert.Equal(t, target.pos, dest)
	assert.InDelta(t, c.Now()+1.0, c.Memory().NextReevaluationAt, 1e-9)
}

func TestController_PursuitSpeedFloor(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	c := newTestController(body, target)
	escalate(t, c, target)
	target.signal = 8

	// Something slows the body mid-chase
	slow := body.Profile()
	slow.MoveSpeed = 1
	body.SetProfile(slow)

	target.pos.X += 1
	c.Update(tick)

	assert.GreaterOrEqual(t, body.Profile().MoveSpeed, 4.0)
}

func TestController_FastBaselineKeepsItsSpeed(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	body.profile.MoveSpeed = 6
	target := &fakeTarget{}
	c := newTestController(body, target)

	escalate(t, c, target)

	assert.Equal(t, 6.0, body.Profile().MoveSpeed)
	assert.Equal(t, 720.0, body.Profile().TurnRate)
	assert.Equal(t, 20.0, body.Profile().Acceleration)
}

func TestController_ForceEngageScenario(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	forced := &fakeTarget{pos: entity.Vec3{X: 3, Z: 4}}
	log := &intentLog{}
	c := newTestController(body, forced, WithPresenter(log))
	c.Update(tick)
	before := body.Profile()

	c.ForceEngage(forced, true, 2.5)

	assert.Equal(t, entity.AwarenessRage, c.State())
	dest, ok := c.Destination()
	require.True(t, ok)
	assert.Equal(t, entity.Vec3{X: 3, Z: 4}, dest)
	saved, _ := c.Baseline()
	assert.Equal(t, before, saved)
	assert.Equal(t, RageIntent{Agent: 7, Forced: true}, log.intents[len(log.intents)-1])

	for i := range 24 {
		forced.crouch = i%2 == 0
		forced.pos.X += 0.3
		c.Update(tick)
		dest, _ = c.Destination()
		require.Equal(t, forced.pos, dest, "tick %d", i)
		require.Equal(t, entity.AwarenessRage, c.State())
	}
}

func TestController_ForceEngageWithoutSnap(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	forced := &fakeTarget{pos: entity.Vec3{X: 3}}
	c := newTestController(body, forced)

	c.ForceEngage(forced, false, 1)

	assert.Equal(t, entity.AwarenessRage, c.State())
	_, ok := c.Destination()
	assert.False(t, ok)

	c.Update(tick)
	dest, _ := c.Destination()
	assert.Equal(t, entity.Vec3{X: 3}, dest)
}

func TestController_ForceEngageNilTarget(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	c := newTestController(body, &fakeTarget{})

	c.ForceEngage(nil, true, 3)

	assert.Equal(t, entity.AwarenessPatrol, c.State())
	assert.Equal(t, patrolProfile(), body.Profile())
}

func TestController_ForceEngageDefaultWindow(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	forced := &fakeTarget{}
	c := newTestController(body, forced)

	c.ForceEngage(forced, false, 0)

	assert.InDelta(t, DefaultTuning().DefaultOverrideSeconds, c.OverrideRemaining(), 1e-9)
}

func TestController_ForceEngageWhileRaging(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	log := &intentLog{}
	c := newTestController(body, target, WithPresenter(log))
	before := body.Profile()
	escalate(t, c, target)
	combat := body.Profile()
	intents := len(log.intents)

	c.ForceEngage(target, false, 4)
	c.Update(tick)
	c.ForceEngage(target, false, 1)

	assert.Equal(t, combat, body.Profile(), "no second re-tune")
	saved, _ := c.Baseline()
	assert.Equal(t, before, saved, "baseline not overwritten")
	assert.InDelta(t, 3.9, c.OverrideRemaining(), 1e-9, "window never shortened")
	assert.Len(t, log.intents, intents, "no new rage intent")
}

func TestController_OverrideSuppressesForget(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	forced := &fakeTarget{crouch: true}
	c := newTestController(body, forced)

	c.ForceEngage(forced, true, 5)
	run(c, 49)
	assert.Equal(t, entity.AwarenessRage, c.State())

	// Forget counts from the last override tick
	run(c, 25)
	assert.Equal(t, entity.AwarenessRage, c.State())
	run(c, 10)
	assert.Equal(t, entity.AwarenessPatrol, c.State())
}

func TestController_CaptureFiresOnce(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{pos: entity.Vec3{X: 0.3}}
	var captures []entity.EntityID
	c := newTestController(body, target, WithCaptureHandler(CaptureFunc(func(id entity.EntityID) {
		captures = append(captures, id)
	})))

	c.ForceEngage(target, true, 10)
	run(c, 5)
	assert.Equal(t, []entity.EntityID{7}, captures)

	target.pos = entity.Vec3{X: 3}
	c.Update(tick)
	target.pos = entity.Vec3{X: 0.5}
	c.Update(tick)
	assert.Len(t, captures, 2, "re-arms after separation")
}

func TestController_CaptureUsesPlanarDistance(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{pos: entity.Vec3{Y: 2, Z: 0.2}}
	captured := 0
	c := newTestController(body, target, WithCaptureHandler(CaptureFunc(func(entity.EntityID) { captured++ })))

	c.ForceEngage(target, true, 10)
	c.Update(tick)

	assert.Equal(t, 1, captured)
}

func TestController_NoCaptureOutsideRage(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{pos: entity.Vec3{X: 0.1}}
	captured := 0
	c := newTestController(body, target, WithCaptureHandler(CaptureFunc(func(entity.EntityID) { captured++ })))

	run(c, 5)

	assert.Equal(t, 0, captured)
}

func TestController_ResetToSpawnState(t *testing.T) {
	t.Run("from rage", func(t *testing.T) {
		body := newFakeBody(entity.Vec3{})
		target := &fakeTarget{}
		log := &intentLog{}
		c := NewController(7, DefaultTuning(), body, squareRoute(),
			WithTarget(target), WithLogger(quietLogger()), WithPresenter(log))
		before := body.Profile()
		c.ForceEngage(target, true, 10)

		body.pos = entity.Vec3{X: 9, Z: 9}
		c.ResetToSpawnState()

		assert.Equal(t, entity.AwarenessPatrol, c.State())
		assert.Equal(t, before, body.Profile())
		assert.Equal(t, 0.0, c.OverrideRemaining())
		assert.Equal(t, entity.PursuitMemory{}, c.Memory())
		dest, ok := c.Destination()
		require.True(t, ok)
		assert.Equal(t, entity.Vec3{X: 10, Z: 10}, dest, "nearest waypoint to restored position")
		assert.Equal(t, ResetIntent{Agent: 7}, log.intents[len(log.intents)-1])

		c.ResetToSpawnState()
		assert.Equal(t, before, body.Profile(), "second restore changes nothing")
	})

	t.Run("without prior rage", func(t *testing.T) {
		body := newFakeBody(entity.Vec3{})
		body.profile.MoveSpeed = 2.2
		c := NewController(7, DefaultTuning(), body, squareRoute(), WithLogger(quietLogger()))
		profile := body.Profile()

		assert.NotPanics(t, c.ResetToSpawnState)
		assert.Equal(t, profile, body.Profile())
		assert.Equal(t, entity.AwarenessPatrol, c.State())
	})

	t.Run("from search", func(t *testing.T) {
		body := newFakeBody(entity.Vec3{})
		target := &fakeTarget{signal: 15, pos: entity.Vec3{X: 8}}
		c := newTestController(body, target)
		c.Update(tick)
		require.Equal(t, entity.AwarenessSearch, c.State())

		c.ResetToSpawnState()

		assert.Equal(t, entity.AwarenessPatrol, c.State())
		assert.Equal(t, 0.0, c.Status().SearchTimer)
	})

	t.Run("skips unreachable nearest", func(t *testing.T) {
		body := newFakeBody(entity.Vec3{X: 9, Z: 9})
		body.blocked[entity.Vec3{X: 10, Z: 10}] = true
		c := NewController(7, DefaultTuning(), body, squareRoute(), WithLogger(quietLogger()))

		c.ResetToSpawnState()

		dest, _ := c.Destination()
		assert.Equal(t, entity.Vec3{X: 10}, dest)
	})
}

func TestController_NotifyStepEvent(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	log := &intentLog{}
	c := newTestController(body, &fakeTarget{}, WithPresenter(log))

	assert.False(t, c.NotifyStepEvent(), "standing still")

	body.speed = 2
	assert.True(t, c.NotifyStepEvent())
	assert.False(t, c.NotifyStepEvent(), "within min interval")

	run(c, 2)
	body.speed = 2
	assert.False(t, c.NotifyStepEvent(), "0.2s is still too soon")

	c.Update(tick)
	body.speed = 2
	assert.True(t, c.NotifyStepEvent())

	require.Len(t, log.intents, 2)
	assert.Equal(t, StepIntent{Agent: 7, State: entity.AwarenessPatrol}, log.intents[0])
}

func TestController_TargetAcquisition(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{signal: 15, pos: entity.Vec3{X: 8}}
	attempts := 0
	locator := locatorFunc(func() (entity.Target, bool) {
		attempts++
		if attempts < 30 {
			return nil, false
		}
		return target, true
	})
	c := NewController(1, DefaultTuning(), body, entity.PatrolRoute{},
		WithLocator(locator), WithLogger(quietLogger()))

	assert.NotPanics(t, func() { run(c, 29) })
	assert.Equal(t, entity.AwarenessPatrol, c.State())
	assert.False(t, c.Status().HasTarget)
	_, ok := c.Sample()
	assert.False(t, ok)

	c.Update(tick)
	assert.True(t, c.Status().HasTarget)
	assert.Equal(t, entity.AwarenessSearch, c.State())
}

func TestController_LostTargetDuringRage(t *testing.T) {
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{}
	present := true
	locator := locatorFunc(func() (entity.Target, bool) {
		if !present {
			return nil, false
		}
		return target, true
	})
	c := NewController(1, DefaultTuning(), body, entity.PatrolRoute{},
		WithLocator(locator), WithLogger(quietLogger()))
	escalate(t, c, target)

	present = false
	run(c, 31)

	assert.Equal(t, entity.AwarenessPatrol, c.State(), "forget still runs without a target")
}

func TestController_NegativeDeltaIsClamped(t *testing.T) {
	c := newTestController(newFakeBody(entity.Vec3{}), &fakeTarget{})

	c.Update(-1)

	assert.Equal(t, 0.0, c.Now())
}

func TestController_ZeroDurationsAreInstant(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SearchToRageDelay = 0
	tuning.RageForgetAfter = 0
	body := newFakeBody(entity.Vec3{})
	target := &fakeTarget{signal: 15, pos: entity.Vec3{X: 8}}
	c := NewController(1, tuning, body, entity.PatrolRoute{}, WithTarget(target), WithLogger(quietLogger()))

	c.Update(tick)
	assert.Equal(t, entity.AwarenessSearch, c.State())
	c.Update(tick)
	assert.Equal(t, entity.AwarenessRage, c.State())
	c.Update(tick)
	assert.Equal(t, entity.AwarenessPatrol, c.State())
	assert.Equal(t, patrolProfile(), body.Profile())
}

func TestController_Status(t *testing.T) {
	body := newFakeBody(entity.Vec3{X: 1, Z: 2})
	target := &fakeTarget{}
	c := newTestController(body, target)
	escalate(t, c, target)

	st := c.Status()

	assert.Equal(t, entity.EntityID(7), st.Agent)
	assert.Equal(t, "Rage", st.State)
	assert.Equal(t, 1.0, st.X)
	assert.Equal(t, 2.0, st.Z)
	assert.True(t, st.HasTarget)
	assert.True(t, st.BaselineSaved)
	assert.Equal(t, 15.0, st.Signal)
	assert.InDelta(t, c.Now(), st.Time, 1e-12)
}
