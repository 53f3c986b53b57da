package persona

// Mode is the active interaction surface and AI behavior profile.
type Mode string

const (
	ModeStudent  Mode = "student"
	ModeTeacher  Mode = "teacher"
	ModeQuiz     Mode = "quiz"
	ModeExaminer Mode = "examiner"
)

// AllModes returns the modes in display order.
func AllModes() []Mode {
	return []Mode{ModeStudent, ModeTeacher, ModeQuiz, ModeExaminer}
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeStudent:
		return "Student"
	case ModeTeacher:
		return "Teacher"
	case ModeQuiz:
		return "Quiz"
	case ModeExaminer:
		return "Examiner"
	default:
		return string(m)
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeStudent, ModeTeacher, ModeQuiz, ModeExaminer:
		return true
	}
	return false
}

// Personality is the tone profile applied to AI responses and theming.
// Orthogonal to Mode: any combination is valid.
type Personality string

const (
	Introvert Personality = "introvert"
	Extrovert Personality = "extrovert"
	Ambivert  Personality = "ambivert"
)

// AllPersonalities returns the personalities in display order.
func AllPersonalities() []Personality {
	return []Personality{Introvert, Extrovert, Ambivert}
}

// DisplayName returns a human-readable label for the personality.
func (p Personality) DisplayName() string {
	switch p {
	case Introvert:
		return "Introvert"
	case Extrovert:
		return "Extrovert"
	case Ambivert:
		return "Ambivert"
	default:
		return string(p)
	}
}

// Valid reports whether p is a known personality.
func (p Personality) Valid() bool {
	switch p {
	case Introvert, Extrovert, Ambivert:
		return true
	}
	return false
}
