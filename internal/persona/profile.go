package persona

import "fmt"

// Labels are the personality-flavoured copy strings used across the UI.
type Labels struct {
	XP           string
	Streak       string
	Level        string
	CompleteBtn  string
	NextBtn      string
	FeedbackGood string
	FeedbackBad  string
}

// Profile is the resolved behavior bundle for a (mode, personality) pair:
// the chat greeting, the AI system prompt, and the UI copy. Built once via
// Lookup so consumers never re-derive the conditional logic.
type Profile struct {
	Mode        Mode
	Personality Personality
	Labels      Labels

	greeting     func(title string) string
	systemPrompt string
}

// Greeting returns the single seeded assistant message for a fresh chat on
// the given slide.
func (p Profile) Greeting(title string) string {
	return p.greeting(title)
}

// SystemPrompt returns the full AI system prompt for this profile.
func (p Profile) SystemPrompt() string {
	return p.systemPrompt
}

// Lookup resolves the profile for a (mode, personality) pair. Mode takes
// precedence over personality for the Quiz and Examiner greetings; Student
// and Teacher greetings vary by personality.
func Lookup(m Mode, p Personality) Profile {
	return Profile{
		Mode:         m,
		Personality:  p,
		Labels:       labelsFor(p),
		greeting:     greetingFor(m, p),
		systemPrompt: systemPromptFor(m, p),
	}
}

func labelsFor(p Personality) Labels {
	switch p {
	case Introvert:
		return Labels{
			XP:           "Knowledge Points",
			Streak:       "Consistency",
			Level:        "Academic Tier",
			CompleteBtn:  "Conclude Module",
			NextBtn:      "Proceed",
			FeedbackGood: "Analysis Correct.",
			FeedbackBad:  "Re-evaluate methodology.",
		}
	case Extrovert:
		return Labels{
			XP:           "POWER LEVEL",
			Streak:       "FIRE STREAK",
			Level:        "BOSS LEVEL",
			CompleteBtn:  "SMASH IT!",
			NextBtn:      "LET'S GO!",
			FeedbackGood: "BOOM! CRUSHED IT!",
			FeedbackBad:  "NOPE! TRY AGAIN!",
		}
	default:
		return Labels{
			XP:           "XP",
			Streak:       "Day Streak",
			Level:        "Level",
			CompleteBtn:  "Mark as Mastered",
			NextBtn:      "Next Exercise",
			FeedbackGood: "Outstanding! +20 XP",
			FeedbackBad:  "Incorrect. Try again.",
		}
	}
}

func greetingFor(m Mode, p Personality) func(string) string {
	switch m {
	case ModeExaminer:
		return func(title string) string {
			return fmt.Sprintf("EXAMINER MODE ACTIVE. I am ready to grade your analysis of %q. Please begin.", title)
		}
	case ModeQuiz:
		return func(title string) string {
			return fmt.Sprintf("WELCOME TO THE QUIZ! 🚀 Topic: %s. Ready to play?", title)
		}
	}

	switch p {
	case Extrovert:
		return func(title string) string {
			return fmt.Sprintf("HEY FAM! 🔥 Let's crush this task: %q! Ready?! 🚀", title)
		}
	case Introvert:
		return func(title string) string {
			return fmt.Sprintf("Greetings. We shall now conduct a detailed analysis of %q. Please proceed when ready.", title)
		}
	default:
		return func(title string) string {
			return fmt.Sprintf("Hello! Let's study %q together. How can I help?", title)
		}
	}
}

const baseIdentity = "You are an elite IELTS Writing Task 1 Tutor."

func systemPromptFor(m Mode, p Personality) string {
	var style string
	switch p {
	case Introvert:
		style = `PERSONALITY: INTROVERT (The Professor)
- TONE: Highly academic, formal, reserved, and polite.
- VOCABULARY: Use sophisticated, precise lexicon (e.g., "minimal fluctuation", "conversely", "predominantly").
- FORMAT: Use long, complex, grammatically perfect sentences.
- RULE: NEVER use emojis.
- RULE: If the user is wrong, correct them gently (e.g., "One might consider...").`
	case Extrovert:
		style = `PERSONALITY: EXTROVERT (The Hype Coach)
- TONE: High-energy, loud, motivational, and informal!
- VOCABULARY: Use power words! "Boom!", "Crushing it!", "Massive gains!"
- FORMAT: Short, punchy sentences.
- RULE: You MUST use at least 2-3 emojis per response (🔥, 🚀, 📈, 💯).
- RULE: If the user is wrong, hype them up to fix it! "You got this! Try again!"`
	default:
		style = `PERSONALITY: AMBIVERT (The Balanced Tutor)
- TONE: Professional, friendly, and clear.
- VOCABULARY: Standard academic English suitable for IELTS.
- FORMAT: Clear and direct explanations.
- RULE: Occasional simple emojis allowed but rare. Balance rigour with encouragement.`
	}

	var mode string
	switch m {
	case ModeTeacher:
		mode = `MODE: TEACHER-TO-TEACHER
- You are speaking to a fellow colleague/teacher, not a student.
- EXPLAIN the pedagogical reasoning behind the answer.
- Discuss specific IELTS marking criteria (Task Achievement, Coherence, Lexical Resource, GRA).
- Suggest how to teach this concept in a classroom setting.`
	case ModeQuiz:
		mode = `MODE: QUIZ SHOW HOST
- You are hosting a fast-paced game show.
- Your responses must be VERY SHORT (max 15 words).
- Always end with a quick question or challenge.
- Be dramatic and exciting.`
	case ModeExaminer:
		mode = `MODE: IELTS EXAMINER (SIMULATION)
- You are a STRICT IELTS Examiner.
- DO NOT provide help, hints, or coaching.
- GRADE every single user input based on official Band 0-9 criteria.
- Format: "Band Score: [X.X] // Comment: [Strict critique]"
- Be cold, objective, and formal.`
	default:
		mode = `MODE: STUDENT TUTORING
- Guide the student step-by-step through the chart/data.
- Focus on identifying key features (highs, lows, trends).`
	}

	return baseIdentity + "\n\n" + style + "\n\n" + mode +
		"\n\nCRITICAL INSTRUCTION: Adhere strictly to the defined PERSONALITY and MODE. " +
		"Ignore previous conversation context if it conflicts with this persona."
}
