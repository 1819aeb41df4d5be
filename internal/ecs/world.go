package ecs

import (
	"sort"

	"github.com/younwookim/hunter/internal/application/system"
	"github.com/younwookim/hunter/internal/domain/entity"
	"github.com/younwookim/hunter/internal/infrastructure/config"
)

// World holds all component maps and the next entity ID
type World struct {
	nextID entity.EntityID

	Stage        *entity.Stage
	StrideLength float64

	// Components
	Body       map[entity.EntityID]*entity.Body
	Controller map[entity.EntityID]*system.Controller
	Adversary  map[entity.EntityID]Adversary
	Intruder   map[entity.EntityID]*entity.Intruder

	// Singleton references
	IntruderID    entity.EntityID
	IntruderSpawn entity.Vec3

	Captures []Capture

	// OnCapture is called for every capture, after it is logged
	OnCapture func(Capture)

	input *system.InputSystem
}

// NewWorld creates a new empty world on stage. A nil stage is an open field.
func NewWorld(stage *entity.Stage) *World {
	return &World{
		nextID:       1, // 0 is "nil"
		Stage:        stage,
		StrideLength: DefaultStrideLength,
		Body:         make(map[entity.EntityID]*entity.Body),
		Controller:   make(map[entity.EntityID]*system.Controller),
		Adversary:    make(map[entity.EntityID]Adversary),
		Intruder:     make(map[entity.EntityID]*entity.Intruder),
		input:        system.NewInputSystem(stage),
	}
}

// Build creates the world for a scene with the intruder and every
// configured adversary spawned. adv may be nil for stock tuning.
func Build(scene *config.SceneConfig, adv *config.AdversaryConfig, presenter system.Presenter) *World {
	w := NewWorld(system.LoadStage(scene))
	if adv != nil && adv.Steps.Stride > 0 {
		w.StrideLength = adv.Steps.Stride
	}

	w.CreateIntruder(w.Stage.Spawn(), system.IntruderFromConfig(adv))

	tuning := system.TuningFromConfig(adv)
	profile := system.PatrolProfileFromConfig(adv)
	for _, a := range scene.Adversaries {
		w.CreateAdversary(AdversaryConfig{
			Name:      a.Name,
			Spawn:     entity.Vec3{X: a.Spawn.X, Z: a.Spawn.Z},
			Route:     system.RouteFromConfig(a.Route),
			Profile:   profile,
			Tuning:    tuning,
			Presenter: presenter,
		})
	}
	return w
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id entity.EntityID) {
	delete(w.Body, id)
	delete(w.Controller, id)
	delete(w.Adversary, id)
	delete(w.Intruder, id)
	if w.IntruderID == id {
		w.IntruderID = 0
	}
}

// Exists checks if an entity has any component
func (w *World) Exists(id entity.EntityID) bool {
	if _, ok := w.Intruder[id]; ok {
		return true
	}
	_, ok := w.Controller[id]
	return ok
}

// CreateIntruder creates the intruder entity. A second call replaces the
// tracked intruder.
func (w *World) CreateIntruder(pos entity.Vec3, cfg entity.IntruderConfig) entity.EntityID {
	id := w.NewEntity()

	w.Intruder[id] = entity.NewIntruder(id, pos, cfg)
	w.IntruderID = id
	w.IntruderSpawn = pos

	return id
}

// CreateAdversary creates an adversary entity tracking the world's intruder
func (w *World) CreateAdversary(cfg AdversaryConfig) entity.EntityID {
	id := w.NewEntity()

	body := entity.NewBody(cfg.Spawn, cfg.Profile, w.Stage)
	ctrl := system.NewController(id, cfg.Tuning, body, cfg.Route,
		system.WithPresenter(cfg.Presenter),
		system.WithCaptureHandler(system.CaptureFunc(w.recordCapture)),
		system.WithLocator(w),
	)
	ctrl.OnTransition = cfg.OnTransition

	w.Body[id] = body
	w.Controller[id] = ctrl
	w.Adversary[id] = Adversary{Name: cfg.Name, Spawn: cfg.Spawn}

	return id
}

// Locate implements system.TargetLocator. It fails until an intruder
// exists.
func (w *World) Locate() (entity.Target, bool) {
	in, ok := w.Intruder[w.IntruderID]
	if !ok {
		return nil, false
	}
	return in, true
}

// GetIntruder returns the tracked intruder
func (w *World) GetIntruder() (*entity.Intruder, bool) {
	in, ok := w.Intruder[w.IntruderID]
	return in, ok
}

// AdversaryIDs returns adversary ids in ascending order
func (w *World) AdversaryIDs() []entity.EntityID {
	ids := make([]entity.EntityID, 0, len(w.Controller))
	for id := range w.Controller {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FindAdversary returns the id of the adversary with the given name
func (w *World) FindAdversary(name string) (entity.EntityID, bool) {
	for _, id := range w.AdversaryIDs() {
		if w.Adversary[id].Name == name {
			return id, true
		}
	}
	return 0, false
}

// CountAdversaries returns the number of adversaries
func (w *World) CountAdversaries() int {
	return len(w.Controller)
}

// Statuses returns a snapshot of every adversary, in id order
func (w *World) Statuses() []system.Status {
	ids := w.AdversaryIDs()
	out := make([]system.Status, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.Controller[id].Status())
	}
	return out
}

func (w *World) recordCapture(agent entity.EntityID) {
	c := Capture{Agent: agent, Name: w.Adversary[agent].Name}
	if ctrl, ok := w.Controller[agent]; ok {
		c.At = ctrl.Now()
	}
	if in, ok := w.GetIntruder(); ok {
		c.Position = in.GetPosition()
	}

	w.Captures = append(w.Captures, c)
	if w.OnCapture != nil {
		w.OnCapture(c)
	}
}
