package domain

import "time"

// Difficulty is the requested depth of the generated material.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"

	DefaultDifficulty = DifficultyIntermediate
)

// IsKnown reports whether d is one of the three supported levels.
func (d Difficulty) IsKnown() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// TopicRequest is a single generation request. It is never persisted.
type TopicRequest struct {
	TopicName        string
	TopicDescription string
	DifficultyLevel  Difficulty
}

// NewTopicRequest builds a request, substituting the default difficulty when
// none was supplied. All supplied values are kept verbatim.
func NewTopicRequest(name, description, difficulty string) TopicRequest {
	level := Difficulty(difficulty)
	if level == "" {
		level = DefaultDifficulty
	}
	return TopicRequest{
		TopicName:        name,
		TopicDescription: description,
		DifficultyLevel:  level,
	}
}

// HistoryEntry records a previously submitted topic.
type HistoryEntry struct {
	Topic       string    `json:"topic"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// QuizQuestion is one multiple-choice question produced by the model.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// WeekPlan is one week of a ProgressionPlan.
type WeekPlan struct {
	Week             int      `json:"week"`
	Focus            string   `json:"focus"`
	Topics           []string `json:"topics"`
	PracticeProblems []string `json:"practiceProblems"`
	Objectives       []string `json:"objectives"`
}

// ProgressionPlan is the multi-week study plan produced by the model.
type ProgressionPlan struct {
	WeeklyPlan            []WeekPlan `json:"weeklyPlan"`
	RecommendedNextTopics []string   `json:"recommendedNextTopics"`
}

// FallbackProgressionPlan is substituted when the model's plan cannot be parsed.
func FallbackProgressionPlan(topicName string) *ProgressionPlan {
	return &ProgressionPlan{
		WeeklyPlan: []WeekPlan{
			{
				Week:             1,
				Focus:            "Understanding Basics",
				Topics:           []string{topicName},
				PracticeProblems: []string{"Practice with examples"},
				Objectives:       []string{"Master fundamentals"},
			},
		},
		RecommendedNextTopics: []string{"Related topic 1", "Related topic 2"},
	}
}

// GeneratedContent is the aggregate result of one request.
type GeneratedContent struct {
	TopicName          string
	EducationalContent string
	TestQuestions      []QuizQuestion
	ProgressionPlan    *ProgressionPlan
	GeneratedDate      time.Time
}
