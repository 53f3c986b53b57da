package quiz

import "fmt"

// Question is a single multiple-choice challenge shown during quiz mode.
type Question struct {
	// Text is the question prompt displayed to the learner.
	Text string

	// Options are the answer choices. Exactly one is correct.
	Options []string

	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int

	// Explanation is a brief justification shown after the learner answers.
	Explanation string
}

// Validate checks the structural integrity of a question.
func (q *Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question has %d options, need at least 2", len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("correct index %d out of range for %d options", q.CorrectIndex, len(q.Options))
	}
	if q.Explanation == "" {
		return fmt.Errorf("question explanation is empty")
	}
	return nil
}

// GenerateInput holds the context needed to generate a quiz question.
type GenerateInput struct {
	// Topic is the subject of the question, usually the active slide title.
	Topic string
}
