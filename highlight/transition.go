/*
	Copyright 2026 The ringchart Authors
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package highlight

import (
	"math"
	"slices"
	"strings"
	"time"
)

// EaseCubicInOut is the cubic ease-in-out timing function.
func EaseCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// Target identifies an animated property of a drawable.
type Target struct {
	ID, Attr string
}

// Value is the value of a Target at some instant.
type Value struct {
	Target
	Value float64
}

// Task interpolates a property from From to To over Duration, beginning at
// Start.
type Task struct {
	From, To float64
	Start    time.Time
	Duration time.Duration
}

// At returns the receiver's value at now, and whether it has finished.
func (t *Task) At(now time.Time) (float64, bool) {
	if t.Duration <= 0 {
		return t.To, true
	}
	elapsed := float64(now.Sub(t.Start)) / float64(t.Duration)
	if elapsed >= 1 {
		return t.To, true
	}
	elapsed = math.Max(0, elapsed)
	return t.From + (t.To-t.From)*EaseCubicInOut(elapsed), false
}

// Scheduler runs Tasks keyed by Target.  Starting a Task on a Target
// supersedes any Task already running on it, which is then continued from
// its current value.  A Scheduler is not safe for concurrent use.
type Scheduler struct {
	tasks map[Target]*Task
}

// NewScheduler returns a new, empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: map[Target]*Task{},
	}
}

// Start begins animating target from current to to over d, starting at now.
// If a Task is already running on target, the new Task starts from that
// Task's value at now instead.
func (s *Scheduler) Start(target Target, current, to float64, d time.Duration, now time.Time) {
	if running, ok := s.tasks[target]; ok {
		current, _ = running.At(now)
	}
	s.tasks[target] = &Task{
		From:     current,
		To:       to,
		Start:    now,
		Duration: d,
	}
}

// Pending returns the number of running Tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Step returns the value of every running Task at now, ordered by Target,
// and retires the Tasks that have finished.
func (s *Scheduler) Step(now time.Time) []Value {
	ret := make([]Value, 0, len(s.tasks))
	for target, task := range s.tasks {
		v, done := task.At(now)
		ret = append(ret, Value{target, v})
		if done {
			delete(s.tasks, target)
		}
	}
	sortValues(ret)
	return ret
}

// Finish returns the final value of every running Task, ordered by Target,
// and retires them all.
func (s *Scheduler) Finish() []Value {
	ret := make([]Value, 0, len(s.tasks))
	for target, task := range s.tasks {
		ret = append(ret, Value{target, task.To})
	}
	clear(s.tasks)
	sortValues(ret)
	return ret
}

func sortValues(vals []Value) {
	slices.SortFunc(vals, func(a, b Value) int {
		if c := strings.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		return strings.Compare(a.Attr, b.Attr)
	})
}
