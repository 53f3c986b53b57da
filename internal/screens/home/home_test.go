package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"taskdeck/internal/deck"
	"taskdeck/internal/persona"
	"taskdeck/internal/router"
	"taskdeck/internal/screens/learn"
	sess "taskdeck/internal/session"
	"taskdeck/internal/tutor"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHomeScreen() (*HomeScreen, *sess.Orchestrator) {
	orch := sess.New(deck.Default())
	h := New(orch, tutor.NewUnconfiguredResponder(), nil, nil)
	return h, orch
}

func TestHomeScreen_StartLearningPushes(t *testing.T) {
	h, _ := testHomeScreen()

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*learn.LearnScreen); !ok {
		t.Errorf("pushed screen = %T, want *learn.LearnScreen", push.Screen)
	}
}

func TestHomeScreen_ModeCycleUpdatesLabel(t *testing.T) {
	h, orch := testHomeScreen()

	h.Update(cycleModeMsg{})
	if orch.Mode() != persona.ModeTeacher {
		t.Errorf("mode = %v, want teacher", orch.Mode())
	}
	if !strings.Contains(h.menu.Items[1].Label, "Teacher") {
		t.Errorf("menu label = %q, want it to show Teacher", h.menu.Items[1].Label)
	}
}

func TestHomeScreen_PersonalityCycleWraps(t *testing.T) {
	h, orch := testHomeScreen()

	// Ambivert is last in display order; cycling wraps to the first.
	h.Update(cyclePersonalityMsg{})
	if orch.Personality() != persona.Introvert {
		t.Errorf("personality = %v, want introvert", orch.Personality())
	}
	if !strings.Contains(h.menu.Items[2].Label, "Introvert") {
		t.Errorf("menu label = %q, want it to show Introvert", h.menu.Items[2].Label)
	}
}

func TestHomeScreen_CursorSurvivesRebuild(t *testing.T) {
	h, _ := testHomeScreen()

	h.menu.Selected = 1
	h.Update(cycleModeMsg{})
	if h.menu.Selected != 1 {
		t.Errorf("selected = %d after rebuild, want 1", h.menu.Selected)
	}
}

func TestHomeScreen_View(t *testing.T) {
	h, _ := testHomeScreen()
	if h.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
}
