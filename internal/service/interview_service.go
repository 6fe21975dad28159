package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Prepwise/internal/apperr"
	"github.com/lshigami/Prepwise/internal/dto"
	"github.com/lshigami/Prepwise/internal/model"
	"github.com/lshigami/Prepwise/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// InterviewService owns the interview lifecycle: creation, question
// progression, and the answered transition with AI evaluation.
type InterviewService interface {
	CreateInterview(ctx context.Context, userID uint, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	NextQuestion(ctx context.Context, userID uint, interviewID uint) (*dto.NextQuestionResponse, error)
	SubmitAnswer(ctx context.Context, userID uint, interviewID uint, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	questionRepo  repository.QuestionRepository
	generator     ContentGenerator
	db            *gorm.DB // transaction scope for interview+questions creation
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	questionRepo repository.QuestionRepository,
	generator ContentGenerator,
	db *gorm.DB,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		questionRepo:  questionRepo,
		generator:     generator,
		db:            db,
	}
}

func (s *interviewService) CreateInterview(ctx context.Context, userID uint, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	role := strings.TrimSpace(req.Role)
	experience := strings.TrimSpace(req.Experience)
	if role == "" {
		return nil, apperr.Validation("role must not be empty")
	}
	if experience == "" {
		return nil, apperr.Validation("experience must not be empty")
	}
	if req.QuestionCount < 1 {
		return nil, apperr.Validation("question_count must be a positive integer, got %d", req.QuestionCount)
	}

	// No rows are written before this call succeeds, so a generator failure
	// leaves no partial interview behind.
	prompts, err := s.generator.GenerateQuestions(ctx, QuestionSpec{
		Role:            role,
		ExperienceLevel: experience,
		Count:           req.QuestionCount,
	})
	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("CreateInterview: question generation failed")
		return nil, apperr.Unavailable("question generation service is unavailable", err)
	}

	// Truncate, never pad. Fewer questions than requested is accepted silently.
	if len(prompts) > req.QuestionCount {
		prompts = prompts[:req.QuestionCount]
	}

	interview := model.Interview{
		UserID:          userID,
		Role:            role,
		ExperienceLevel: experience,
		TotalQuestions:  len(prompts),
	}
	for i, prompt := range prompts {
		interview.Questions = append(interview.Questions, model.Question{
			OrderInInterview: i + 1,
			Prompt:           prompt,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.interviewRepo.Create(tx, &interview)
	})
	if err != nil {
		log.Error().Err(err).Msg("CreateInterview: failed to persist interview with questions")
		return nil, err
	}

	resp := dto.StartInterviewResponse{
		InterviewID:     interview.ID,
		Role:            interview.Role,
		ExperienceLevel: interview.ExperienceLevel,
		TotalQuestions:  interview.TotalQuestions,
	}
	if len(interview.Questions) > 0 {
		resp.Question = toQuestionDTO(&interview.Questions[0])
	}

	log.Info().Uint("interviewID", interview.ID).Uint("userID", userID).Int("questions", len(interview.Questions)).Msg("Interview created")
	return &resp, nil
}

func (s *interviewService) NextQuestion(ctx context.Context, userID uint, interviewID uint) (*dto.NextQuestionResponse, error) {
	interview, err := s.loadOwnedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}

	resp := dto.NextQuestionResponse{
		InterviewID:    interview.ID,
		Role:           interview.Role,
		TotalQuestions: interview.TotalQuestions,
	}

	next, err := s.questionRepo.FindFirstUnanswered(interviewID)
	if err == nil {
		resp.Question = toQuestionDTO(next)
		return &resp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// All answered (or a zero-question interview): idempotent finished result.
	summary, err := s.buildSummary(interviewID)
	if err != nil {
		return nil, err
	}
	resp.Finished = true
	resp.Summary = summary
	return &resp, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, userID uint, interviewID uint, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	if strings.TrimSpace(req.AnswerText) == "" {
		return nil, apperr.Validation("answer_text must not be empty")
	}

	interview, err := s.loadOwnedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}

	question, err := s.questionRepo.FindByIDAndInterview(req.QuestionID, interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("question %d not found in interview %d", req.QuestionID, interviewID)
		}
		return nil, err
	}
	if question.Answered() {
		return nil, apperr.Conflict("question has already been answered")
	}

	evaluation, err := s.generator.EvaluateAnswer(ctx, question.Prompt, req.AnswerText)
	if err != nil {
		// Transport-level failure: nothing is persisted, the caller may retry.
		log.Error().Err(err).Uint("questionID", question.ID).Msg("SubmitAnswer: evaluation call failed")
		return nil, apperr.Unavailable("answer evaluation service is unavailable", err)
	}

	rows, err := s.questionRepo.RecordAnswer(question.ID, req.AnswerText,
		evaluation.Score, evaluation.Strengths, evaluation.Weaknesses, evaluation.Advice)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Lost the race against a concurrent duplicate submission.
		return nil, apperr.Conflict("question has already been answered")
	}

	resp := dto.SubmitAnswerResponse{
		InterviewID: interview.ID,
		Evaluation: dto.EvaluationDTO{
			Score:      evaluation.Score,
			Strengths:  evaluation.Strengths,
			Weaknesses: evaluation.Weaknesses,
			Advice:     evaluation.Advice,
		},
	}

	next, err := s.questionRepo.FindFirstUnanswered(interviewID)
	if err == nil {
		resp.Question = toQuestionDTO(next)
		return &resp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Last question answered: complete the interview. MarkCompleted only
	// touches a nil completed_at, so the timestamp is set exactly once.
	if err := s.interviewRepo.MarkCompleted(interviewID); err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("SubmitAnswer: failed to mark interview completed")
		return nil, err
	}
	log.Info().Uint("interviewID", interviewID).Uint("userID", userID).Msg("Interview completed")

	summary, err := s.buildSummary(interviewID)
	if err != nil {
		return nil, err
	}
	resp.Finished = true
	resp.Summary = summary
	return &resp, nil
}

// loadOwnedInterview resolves the interview and enforces ownership before any
// business logic runs. A missing interview and a foreign one fail differently.
func (s *interviewService) loadOwnedInterview(userID uint, interviewID uint) (*model.Interview, error) {
	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("interview %d not found", interviewID)
		}
		return nil, err
	}
	if interview.UserID != userID {
		return nil, apperr.Forbidden("interview belongs to another user")
	}
	return interview, nil
}

func (s *interviewService) buildSummary(interviewID uint) ([]dto.QuestionSummaryDTO, error) {
	questions, err := s.questionRepo.FindByInterview(interviewID)
	if err != nil {
		return nil, err
	}
	summary := make([]dto.QuestionSummaryDTO, len(questions))
	for i := range questions {
		if err := copier.Copy(&summary[i], &questions[i]); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

func toQuestionDTO(q *model.Question) *dto.QuestionDTO {
	return &dto.QuestionDTO{
		ID:               q.ID,
		OrderInInterview: q.OrderInInterview,
		Prompt:           q.Prompt,
	}
}
