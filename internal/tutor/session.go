package tutor

import (
	"strings"

	"github.com/google/uuid"

	"taskdeck/internal/persona"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a single entry in the chat transcript.
type Message struct {
	ID   string
	Role Role
	Text string
}

// Exchange is everything a Responder needs to produce one reply: the
// system prompt for the active persona, the transcript before the new
// prompt, and the prompt itself.
type Exchange struct {
	System      string
	History     []Message
	Prompt      string
	Temperature float64
}

// Session holds the chat transcript and the epoch guard that keeps
// in-flight replies from leaking across persona or slide switches.
//
// Every Reset bumps the epoch. A reply resolved with an older epoch is
// discarded, so a slow response for the previous persona can never land
// in the new transcript. At most one request is in flight at a time;
// Send refuses while a reply is pending.
type Session struct {
	profile  persona.Profile
	topic    string
	epoch    int
	pending  bool
	messages []Message
}

// NewSession creates an empty session. Reset must be called before use.
func NewSession() *Session {
	return &Session{}
}

// Reset clears the transcript for a new (topic, mode, personality)
// context and seeds it with the persona's greeting. Any in-flight reply
// is orphaned: the epoch moves on and Resolve will discard it.
func (s *Session) Reset(topic string, m persona.Mode, p persona.Personality) {
	s.profile = persona.Lookup(m, p)
	s.topic = topic
	s.epoch++
	s.pending = false
	s.messages = []Message{{
		ID:   uuid.NewString(),
		Role: RoleModel,
		Text: s.profile.Greeting(topic),
	}}
}

// Send appends the learner's message and returns the Exchange to hand to
// a Responder, tagged with the current epoch. Blank input and sends
// while a reply is pending are refused.
func (s *Session) Send(text string) (Exchange, int, bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.pending || len(s.messages) == 0 {
		return Exchange{}, 0, false
	}

	// Snapshot the transcript before appending; the prompt travels
	// separately, matching how the provider request is built.
	history := make([]Message, len(s.messages))
	copy(history, s.messages)

	s.messages = append(s.messages, Message{
		ID:   uuid.NewString(),
		Role: RoleUser,
		Text: text,
	})
	s.pending = true

	return Exchange{
		System:      s.profile.SystemPrompt(),
		History:     history,
		Prompt:      text,
		Temperature: s.temperature(),
	}, s.epoch, true
}

// Resolve appends the reply for the request sent at the given epoch.
// Replies from an earlier epoch are discarded and false is returned.
func (s *Session) Resolve(epoch int, reply string) bool {
	if epoch != s.epoch || !s.pending {
		return false
	}
	s.pending = false
	s.messages = append(s.messages, Message{
		ID:   uuid.NewString(),
		Role: RoleModel,
		Text: reply,
	})
	return true
}

// Profile returns the active persona profile.
func (s *Session) Profile() persona.Profile { return s.profile }

// Topic returns the slide title this session was reset for.
func (s *Session) Topic() string { return s.topic }

// Epoch returns the current epoch counter.
func (s *Session) Epoch() int { return s.epoch }

// Pending reports whether a reply is in flight.
func (s *Session) Pending() bool { return s.pending }

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// temperature keeps the examiner cold and deterministic; everyone else
// gets room to be creative.
func (s *Session) temperature() float64 {
	if s.profile.Mode == persona.ModeExaminer {
		return 0.2
	}
	return 0.8
}
