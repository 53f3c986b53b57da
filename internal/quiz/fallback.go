package quiz

// FallbackQuestion returns the built-in question used when generation fails
// or no LLM provider is configured. The round proceeds normally; only the
// content is canned.
func FallbackQuestion() *Question {
	return &Question{
		Text:         "Which academic verb implies a rapid decrease?",
		Options:      []string{"Plummeted", "Rocketed", "Soared", "Plateaued"},
		CorrectIndex: 0,
		Explanation:  "'Plummet' means to fall straight down at high speed.",
	}
}
