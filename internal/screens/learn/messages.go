package learn

import (
	"time"

	tea "charm.land/bubbletea/v2"

	sess "taskdeck/internal/session"
)

// chatReplyMsg carries the tutor's reply for the request sent at Epoch.
// The orchestrator discards it if the chat has been reset since.
type chatReplyMsg struct {
	Epoch int
	Text  string
}

// celebrationCmd schedules the end of a celebration overlay.
func celebrationCmd(gen int) tea.Cmd {
	return tea.Tick(sess.CelebrationDuration, func(time.Time) tea.Msg {
		return sess.CelebrationEndMsg{Gen: gen}
	})
}
