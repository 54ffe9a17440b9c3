package types

// Difficulty is the difficulty band of an interview question.
type Difficulty string

// Question difficulties.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is one interview question. Follow-up questions carry the
// "followup" tag and are inserted mid-list after the answer that
// triggered them.
type Question struct {
	ID         string     `json:"id"`
	Question   string     `json:"question"`
	Difficulty Difficulty `json:"difficulty"`
	Tags       []string   `json:"tags,omitempty"`
}

// IsFollowUp reports whether the question was inserted as a follow-up.
func (q Question) IsFollowUp() bool {
	for _, tag := range q.Tags {
		if tag == "followup" {
			return true
		}
	}
	return false
}

// Answer records one scored candidate answer.
type Answer struct {
	Question   string     `json:"question"`
	Difficulty Difficulty `json:"difficulty"`
	Answer     string     `json:"answer"`
	WordCount  int        `json:"word_count"`
	Points     int        `json:"points"`
}

// TranscriptEntry is one chat-log line of the interview.
type TranscriptEntry struct {
	Speaker       string `json:"speaker"`
	Text          string `json:"text"`
	Difficulty    string `json:"difficulty"`
	QuestionIndex int    `json:"question_index"`
}

// FeedbackItem is one strength or improvement statement derived from the
// most recent answer.
type FeedbackItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Metric is one interview dashboard gauge.
type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// InterviewSummary is the strengths/improvements wrap-up recorded when a
// session completes.
type InterviewSummary struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// SessionStatus is the interview session state.
type SessionStatus string

// Session states. A new start supersedes any previous active session.
const (
	SessionActive     SessionStatus = "active"
	SessionCompleted  SessionStatus = "completed"
	SessionSuperseded SessionStatus = "superseded"
)

// InterviewState is the caller-facing view of where a session stands.
type InterviewState struct {
	TotalQuestions    int    `json:"total_questions"`
	CurrentIndex      int    `json:"current_index"`
	CurrentQuestion   string `json:"current_question,omitempty"`
	CurrentDifficulty string `json:"current_difficulty,omitempty"`
	Score             int    `json:"score"`
}
