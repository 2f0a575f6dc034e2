// Package input turns a device or script into per-tick action states.
package input

import "github.com/automoto/lootbound/config"

// Source reports which actions are held right now.
type Source interface {
	Pressed(action config.ActionID) bool
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// State stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed on demand by comparing
// frames.
type State struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

// Poll swaps buffers and reads every action from src. A nil source reads
// as nothing held.
func (s *State) Poll(src Source) {
	s.Previous = s.Current
	s.Current = [config.ActionCount]bool{}
	if src == nil {
		return
	}
	for id := config.ActionNone + 1; id < config.ActionCount; id++ {
		s.Current[id] = src.Pressed(id)
	}
}

// Action returns the full ActionState for an action ID.
func (s *State) Action(id config.ActionID) ActionState {
	if id < 0 || id >= config.ActionCount {
		return ActionState{}
	}
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Scripted is a Source driven by code: tests, replays and bots.
type Scripted struct {
	held [config.ActionCount]bool
}

func (s *Scripted) Pressed(action config.ActionID) bool {
	if action < 0 || action >= config.ActionCount {
		return false
	}
	return s.held[action]
}

func (s *Scripted) Press(actions ...config.ActionID) {
	for _, a := range actions {
		s.Set(a, true)
	}
}

func (s *Scripted) Release(actions ...config.ActionID) {
	for _, a := range actions {
		s.Set(a, false)
	}
}

func (s *Scripted) Set(action config.ActionID, held bool) {
	if action < 0 || action >= config.ActionCount {
		return
	}
	s.held[action] = held
}

// ReleaseAll lets go of everything.
func (s *Scripted) ReleaseAll() {
	s.held = [config.ActionCount]bool{}
}
