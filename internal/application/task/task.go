// Package task runs small timed effects (pulses, fades, waits) that
// advance once per frame. Tasks are keyed by the resource they drive;
// starting a task on a busy key cancels the running one.
package task

import "sort"

// Task is a timed effect advanced once per frame
type Task interface {
	// Step advances the task by dt seconds and reports whether it is done
	Step(dt float64) bool
}

type entry struct {
	task Task
	gen  uint64
}

// Runner owns the running tasks, at most one per key
type Runner struct {
	tasks map[string]entry
	gen   uint64
}

// NewRunner creates an empty runner
func NewRunner() *Runner {
	return &Runner{tasks: make(map[string]entry)}
}

// Start runs t under key, replacing any task already running there
func (r *Runner) Start(key string, t Task) {
	if t == nil {
		return
	}
	r.gen++
	r.tasks[key] = entry{task: t, gen: r.gen}
}

// Cancel stops the task under key. Returns false if nothing was running.
func (r *Runner) Cancel(key string) bool {
	if _, ok := r.tasks[key]; !ok {
		return false
	}
	delete(r.tasks, key)
	return true
}

// Running reports whether a task is running under key
func (r *Runner) Running(key string) bool {
	_, ok := r.tasks[key]
	return ok
}

// Len returns the number of running tasks
func (r *Runner) Len() int {
	return len(r.tasks)
}

// Tick steps every running task once, in key order. Tasks started or
// cancelled during the tick take effect from the next tick.
func (r *Runner) Tick(dt float64) {
	keys := make([]string, 0, len(r.tasks))
	for k := range r.tasks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	snapshot := make(map[string]entry, len(keys))
	for _, k := range keys {
		snapshot[k] = r.tasks[k]
	}

	for _, k := range keys {
		e := snapshot[k]
		if cur, ok := r.tasks[k]; !ok || cur.gen != e.gen {
			continue
		}
		if e.task.Step(dt) {
			if cur, ok := r.tasks[k]; ok && cur.gen == e.gen {
				delete(r.tasks, k)
			}
		}
	}
}
