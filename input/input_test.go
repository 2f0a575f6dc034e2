package input

import (
	"testing"

	"github.com/automoto/lootbound/config"
)

func TestStateEdges(t *testing.T) {
	var st State
	src := &Scripted{}

	steps := []struct {
		name string
		held bool
		want ActionState
	}{
		{"idle", false, ActionState{}},
		{"press", true, ActionState{Pressed: true, JustPressed: true}},
		{"hold", true, ActionState{Pressed: true}},
		{"release", false, ActionState{JustReleased: true}},
		{"idle again", false, ActionState{}},
	}
	for _, step := range steps {
		src.Set(config.ActionAttack, step.held)
		st.Poll(src)
		if got := st.Action(config.ActionAttack); got != step.want {
			t.Errorf("%s: got %+v, want %+v", step.name, got, step.want)
		}
	}
}

func TestPollNilSource(t *testing.T) {
	var st State
	src := &Scripted{}
	src.Press(config.ActionJump)
	st.Poll(src)
	st.Poll(nil)
	if got := st.Action(config.ActionJump); !got.JustReleased || got.Pressed {
		t.Errorf("got %+v, want release", got)
	}
}

func TestScriptedBounds(t *testing.T) {
	s := &Scripted{}
	s.Press(config.ActionCount, -1)
	if s.Pressed(config.ActionCount) || s.Pressed(-1) {
		t.Error("out of range actions must read as released")
	}
	s.Press(config.ActionMoveLeft, config.ActionSprint)
	s.ReleaseAll()
	if s.Pressed(config.ActionMoveLeft) {
		t.Error("ReleaseAll left an action held")
	}
}
