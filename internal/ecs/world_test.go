package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hunter/internal/application/system"
	"github.com/younwookim/hunter/internal/domain/entity"
	"github.com/younwookim/hunter/internal/infrastructure/config"
)

const configDir = "../../cmd/game/configs"

func patrolProfile() entity.LocomotionProfile {
	return entity.LocomotionProfile{MoveSpeed: 1.5, TurnRate: 180, Acceleration: 3, BrakingEnabled: true}
}

func adversaryAt(name string, pos entity.Vec3) AdversaryConfig {
	return AdversaryConfig{
		Name:    name,
		Spawn:   pos,
		Profile: patrolProfile(),
		Tuning:  system.DefaultTuning(),
	}
}

func TestNewWorld(t *testing.T) {
	w := NewWorld(nil)

	assert.NotNil(t, w)
	assert.Equal(t, entity.EntityID(1), w.nextID)
	assert.NotNil(t, w.Body)
	assert.NotNil(t, w.Controller)
	assert.NotNil(t, w.Intruder)
	assert.Equal(t, DefaultStrideLength, w.StrideLength)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld(nil)

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, entity.EntityID(1), id1)
	assert.Equal(t, entity.EntityID(2), id2)
	assert.Equal(t, entity.EntityID(3), id3)
	assert.Equal(t, entity.EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld(nil)

	id1 := w.CreateAdversary(adversaryAt("a", entity.Vec3{}))
	w.DestroyEntity(id1)

	id2 := w.CreateAdversary(adversaryAt("b", entity.Vec3{}))
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld(nil)
	adv := w.CreateAdversary(adversaryAt("a", entity.Vec3{}))
	in := w.CreateIntruder(entity.Vec3{X: 3}, entity.DefaultIntruderConfig())

	require.True(t, w.Exists(adv))
	require.True(t, w.Exists(in))

	w.DestroyEntity(adv)
	w.DestroyEntity(in)

	assert.False(t, w.Exists(adv))
	assert.False(t, w.Exists(in))
	assert.Empty(t, w.Body)
	assert.Empty(t, w.Adversary)
	assert.Equal(t, entity.EntityID(0), w.IntruderID)
	_, ok := w.Locate()
	assert.False(t, ok)
}

func TestLocate_TargetMayAppearLate(t *testing.T) {
	w := NewWorld(nil)
	adv := w.CreateAdversary(adversaryAt("a", entity.Vec3{}))

	w.Update(0.1)
	assert.False(t, w.Controller[adv].Status().HasTarget)

	w.CreateIntruder(entity.Vec3{X: 4}, entity.DefaultIntruderConfig())
	w.Update(0.1)

	st := w.Controller[adv].Status()
	assert.True(t, st.HasTarget)
	assert.InDelta(t, 4.0, st.Distance, 1e-9)
}

func TestCreateIntruder_ReplacesTracked(t *testing.T) {
	w := NewWorld(nil)
	first := w.CreateIntruder(entity.Vec3{X: 1}, entity.DefaultIntruderConfig())
	second := w.CreateIntruder(entity.Vec3{X: 2}, entity.DefaultIntruderConfig())

	target, ok := w.Locate()
	require.True(t, ok)
	assert.NotEqual(t, first, second)
	assert.Equal(t, entity.Vec3{X: 2}, target.GetPosition())
	assert.Equal(t, entity.Vec3{X: 2}, w.IntruderSpawn)
}

func TestBuild_DemoScene(t *testing.T) {
	cfg, err := config.NewLoader(configDir).LoadAll("demo")
	require.NoError(t, err)

	w := Build(cfg.Scene, cfg.Adversary, nil)

	assert.Equal(t, 2, w.CountAdversaries())
	assert.Equal(t, cfg.Adversary.Steps.Stride, w.StrideLength)

	intruder, ok := w.GetIntruder()
	require.True(t, ok)
	assert.Equal(t, entity.Vec3{X: 2.5, Z: 13.5}, intruder.GetPosition())

	warden, ok := w.FindAdversary("warden")
	require.True(t, ok)
	sentry, ok := w.FindAdversary("sentry")
	require.True(t, ok)
	assert.Less(t, warden, sentry, "adversaries are created in scene order")

	assert.Equal(t, entity.Vec3{X: 12.5, Z: 2.5}, w.Body[warden].GetPosition())
	assert.Len(t, w.Controller[warden].Route().Points, 4)
	assert.Equal(t, system.TuningFromConfig(cfg.Adversary), w.Controller[sentry].Tuning())

	_, ok = w.FindAdversary("nobody")
	assert.False(t, ok)
}

func TestBuild_NilAdversaryConfig(t *testing.T) {
	scene := &config.SceneConfig{
		TileSize:      1,
		Layers:        config.LayersConfig{Collision: []string{"....", "...."}},
		IntruderSpawn: config.PointConfig{X: 0.5, Z: 0.5},
		Adversaries:   []config.AdversarySpawnConfig{{Name: "solo", Spawn: config.PointConfig{X: 3.5, Z: 1.5}}},
	}

	w := Build(scene, nil, nil)

	id, ok := w.FindAdversary("solo")
	require.True(t, ok)
	assert.Equal(t, system.DefaultTuning(), w.Controller[id].Tuning())
	assert.Equal(t, DefaultStrideLength, w.StrideLength)
}

func TestStatuses_IDOrder(t *testing.T) {
	w := NewWorld(nil)
	a := w.CreateAdversary(adversaryAt("a", entity.Vec3{}))
	b := w.CreateAdversary(adversaryAt("b", entity.Vec3{X: 5}))

	st := w.Statuses()

	require.Len(t, st, 2)
	assert.Equal(t, a, st[0].Agent)
	assert.Equal(t, b, st[1].Agent)
	assert.Equal(t, "Patrol", st[1].State)
}
