package dto

import (
	"time"

	"dsa-tutor/internal/domain"
)

// GenerateContentRequest is the body of POST /api/generate-content
// @Description Topic to generate a lesson, quiz and study plan for
type GenerateContentRequest struct {
	TopicName        string `json:"topicName" example:"Binary Search Trees"`
	TopicDescription string `json:"topicDescription" example:"Insertion, deletion and traversal"`
	DifficultyLevel  string `json:"difficultyLevel" example:"intermediate" enums:"beginner,intermediate,advanced"`
}

// ToDomain converts the request body, applying the default difficulty.
func (r GenerateContentRequest) ToDomain() domain.TopicRequest {
	return domain.NewTopicRequest(r.TopicName, r.TopicDescription, r.DifficultyLevel)
}

// QuizQuestionResponse is one multiple-choice question
type QuizQuestionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer" example:"A"`
	Explanation   string   `json:"explanation"`
}

// WeekPlanResponse is one week of the study plan
type WeekPlanResponse struct {
	Week             int      `json:"week" example:"1"`
	Focus            string   `json:"focus"`
	Topics           []string `json:"topics"`
	PracticeProblems []string `json:"practiceProblems"`
	Objectives       []string `json:"objectives"`
}

// ProgressionPlanResponse is the multi-week study plan
type ProgressionPlanResponse struct {
	WeeklyPlan            []WeekPlanResponse `json:"weeklyPlan"`
	RecommendedNextTopics []string           `json:"recommendedNextTopics"`
}

// GenerateContentResponse is the combined payload returned on success
// @Description Lesson markdown, quiz and study plan for one topic
type GenerateContentResponse struct {
	TopicName          string                  `json:"topicName"`
	EducationalContent string                  `json:"educationalContent"`
	TestQuestions      []QuizQuestionResponse  `json:"testQuestions"`
	ProgressionPlan    ProgressionPlanResponse `json:"progressionPlan"`
	GeneratedDate      time.Time               `json:"generatedDate"`
}

// NewGenerateContentResponse maps generated content onto the wire shape.
func NewGenerateContentResponse(c *domain.GeneratedContent) GenerateContentResponse {
	resp := GenerateContentResponse{
		TopicName:          c.TopicName,
		EducationalContent: c.EducationalContent,
		TestQuestions:      make([]QuizQuestionResponse, 0, len(c.TestQuestions)),
		GeneratedDate:      c.GeneratedDate,
	}
	for _, q := range c.TestQuestions {
		resp.TestQuestions = append(resp.TestQuestions, QuizQuestionResponse{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	if c.ProgressionPlan != nil {
		resp.ProgressionPlan.RecommendedNextTopics = c.ProgressionPlan.RecommendedNextTopics
		resp.ProgressionPlan.WeeklyPlan = make([]WeekPlanResponse, 0, len(c.ProgressionPlan.WeeklyPlan))
		for _, w := range c.ProgressionPlan.WeeklyPlan {
			resp.ProgressionPlan.WeeklyPlan = append(resp.ProgressionPlan.WeeklyPlan, WeekPlanResponse{
				Week:             w.Week,
				Focus:            w.Focus,
				Topics:           w.Topics,
				PracticeProblems: w.PracticeProblems,
				Objectives:       w.Objectives,
			})
		}
	}
	return resp
}

// HistoryEntryResponse is one previously submitted topic
type HistoryEntryResponse struct {
	Topic       string    `json:"topic"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// TopicHistoryResponse lists retained submissions, oldest first
type TopicHistoryResponse struct {
	TopicHistory []HistoryEntryResponse `json:"topicHistory"`
}

func NewTopicHistoryResponse(entries []domain.HistoryEntry) TopicHistoryResponse {
	resp := TopicHistoryResponse{TopicHistory: make([]HistoryEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.TopicHistory = append(resp.TopicHistory, HistoryEntryResponse{
			Topic:       e.Topic,
			Description: e.Description,
			Date:        e.Date,
		})
	}
	return resp
}

// StatusResponse is the liveness body
type StatusResponse struct {
	Status string `json:"status" example:"API is running"`
}

// MessageResponse carries a fixed informational message
type MessageResponse struct {
	Message string `json:"message" example:"CORS is working!"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ParseErrorResponse is returned when the model's reply could not be
// decoded. RawResponse is always present, even when the reply was empty.
type ParseErrorResponse struct {
	Error       string `json:"error" example:"Failed to parse AI response as JSON"`
	RawResponse string `json:"rawResponse"`
}
