package service

import (
	"context"
	"errors"
	"time"

	"dsa-tutor/internal/domain"
	"dsa-tutor/internal/extract"
	"dsa-tutor/internal/history"
	"dsa-tutor/internal/logger"
	"dsa-tutor/internal/prompt"
	"dsa-tutor/internal/validation"

	"go.uber.org/zap"
)

// Policies names how each structured output reacts to undecodable replies.
type Policies struct {
	QuizParseFailure domain.ParseFailurePolicy
	PlanParseFailure domain.ParseFailurePolicy
}

// DefaultPolicies fails the request on a bad quiz and degrades to the
// fallback plan on a bad study plan.
var DefaultPolicies = Policies{
	QuizParseFailure: domain.PolicyAbort,
	PlanParseFailure: domain.PolicyFallback,
}

// contentService implements domain.ContentService
type contentService struct {
	model     domain.ModelClient
	history   *history.Store
	validator *validation.Validator
	policies  Policies
	now       func() time.Time
}

// NewContentService wires the orchestrator. validator may be nil to skip
// schema checks.
func NewContentService(model domain.ModelClient, store *history.Store, validator *validation.Validator, policies Policies) domain.ContentService {
	if policies.QuizParseFailure == "" {
		policies.QuizParseFailure = DefaultPolicies.QuizParseFailure
	}
	if policies.PlanParseFailure == "" {
		policies.PlanParseFailure = DefaultPolicies.PlanParseFailure
	}
	return &contentService{
		model:     model,
		history:   store,
		validator: validator,
		policies:  policies,
		now:       time.Now,
	}
}

// Generate runs the content, quiz and plan calls in that order.
func (s *contentService) Generate(ctx context.Context, req domain.TopicRequest) (*domain.GeneratedContent, error) {
	l := logger.Get().With(
		zap.String("topic", req.TopicName),
		zap.String("difficulty", string(req.DifficultyLevel)),
	)

	if !req.DifficultyLevel.IsKnown() {
		l.Warn("Unrecognized difficulty level passed through to prompts")
	}

	s.history.Record(req.TopicName, req.TopicDescription)
	prior := s.history.PriorEntries()
	l.Info("Generating educational content", zap.Int("prior_topics", len(prior)))

	content, err := s.model.Complete(ctx, prompt.ContentPrompt(req, prior))
	if err != nil {
		l.Error("Content generation failed", zap.Error(err))
		return nil, asServiceError(err)
	}

	questions, err := s.generateQuiz(ctx, l, req)
	if err != nil {
		return nil, err
	}

	plan, err := s.generatePlan(ctx, l, req, prior)
	if err != nil {
		return nil, err
	}

	l.Info("Educational content generated",
		zap.Int("content_length", len(content)),
		zap.Int("questions", len(questions)),
		zap.Int("weeks", len(plan.WeeklyPlan)),
	)

	return &domain.GeneratedContent{
		TopicName:          req.TopicName,
		EducationalContent: content,
		TestQuestions:      questions,
		ProgressionPlan:    plan,
		GeneratedDate:      s.now(),
	}, nil
}

func (s *contentService) generateQuiz(ctx context.Context, l *zap.Logger, req domain.TopicRequest) ([]domain.QuizQuestion, error) {
	p := prompt.QuizPrompt(req)
	raw, err := s.model.Complete(ctx, p)
	if err != nil {
		l.Error("Quiz generation failed", zap.Error(err))
		return nil, asServiceError(err)
	}

	var questions []domain.QuizQuestion
	if err := decode(l, "quiz", raw, &questions); err != nil {
		l.Warn("Failed to parse quiz response", zap.Error(err), zap.String("policy", string(s.policies.QuizParseFailure)))
		l.Debug("Unparseable quiz response", zap.String("raw_response", raw))
		s.invalidate(ctx, l, p)
		if s.policies.QuizParseFailure == domain.PolicyFallback {
			return []domain.QuizQuestion{}, nil
		}
		return nil, domain.NewQuizParseError(raw, err)
	}
	if questions == nil {
		questions = []domain.QuizQuestion{}
	}

	s.check(l, "quiz", raw, (*validation.Validator).ValidateQuiz)
	return questions, nil
}

func (s *contentService) generatePlan(ctx context.Context, l *zap.Logger, req domain.TopicRequest, prior []domain.HistoryEntry) (*domain.ProgressionPlan, error) {
	p := prompt.ProgressionPrompt(req, prior)
	raw, err := s.model.Complete(ctx, p)
	if err != nil {
		l.Error("Progression plan generation failed", zap.Error(err))
		return nil, asServiceError(err)
	}

	var plan domain.ProgressionPlan
	if err := decode(l, "progression_plan", raw, &plan); err != nil {
		l.Warn("Failed to parse progression plan response", zap.Error(err), zap.String("policy", string(s.policies.PlanParseFailure)))
		l.Debug("Unparseable progression plan response", zap.String("raw_response", raw))
		s.invalidate(ctx, l, p)
		if s.policies.PlanParseFailure == domain.PolicyAbort {
			return nil, domain.NewPlanParseError(raw, err)
		}
		return domain.FallbackProgressionPlan(req.TopicName), nil
	}

	s.check(l, "progression_plan", raw, (*validation.Validator).ValidatePlan)
	return &plan, nil
}

// decode fails only when raw holds no valid JSON. A payload of the wrong
// shape is kept as far as it decodes; the schema check reports the rest.
func decode(l *zap.Logger, kind, raw string, v any) error {
	err := extract.Decode(raw, v)
	var shapeErr *extract.ShapeError
	if errors.As(err, &shapeErr) {
		l.Warn("Model output decoded partially", zap.String("kind", kind), zap.Error(err))
		return nil
	}
	return err
}

// invalidate drops a remembered reply that could not be parsed so a retry
// reaches the model instead of replaying it.
func (s *contentService) invalidate(ctx context.Context, l *zap.Logger, p string) {
	inv, ok := s.model.(domain.CompletionInvalidator)
	if !ok {
		return
	}
	if err := inv.Invalidate(ctx, p); err != nil {
		l.Warn("Failed to invalidate cached completion", zap.Error(err))
	}
}

// check logs schema violations of an already decoded reply.
func (s *contentService) check(l *zap.Logger, kind, raw string, fn func(*validation.Validator, string) validation.Violations) {
	if s.validator == nil {
		return
	}
	payload, err := extract.ExtractJSON(raw)
	if err != nil {
		return
	}
	if violations := fn(s.validator, payload); len(violations) > 0 {
		l.Warn("Model output does not match expected shape",
			zap.String("kind", kind),
			zap.Strings("violations", violations.Strings()),
		)
	}
}

// TopicHistory returns the retained submissions, oldest first.
func (s *contentService) TopicHistory() []domain.HistoryEntry {
	return s.history.Snapshot()
}

// asServiceError keeps domain errors and wraps anything else as a model
// service failure.
func asServiceError(err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}
	return domain.NewLLMServiceError(err)
}
