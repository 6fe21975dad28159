package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lshigami/Prepwise/internal/apperr"
	"github.com/lshigami/Prepwise/internal/dto"
	"github.com/lshigami/Prepwise/internal/model"
	"github.com/lshigami/Prepwise/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeGenerator struct {
	questions     []string
	questionsErr  error
	evaluation    Evaluation
	evalErr       error
	generateCalls int
	evalCalls     int
}

func (f *fakeGenerator) GenerateQuestions(ctx context.Context, spec QuestionSpec) ([]string, error) {
	f.generateCalls++
	if f.questionsErr != nil {
		return nil, f.questionsErr
	}
	return f.questions, nil
}

func (f *fakeGenerator) EvaluateAnswer(ctx context.Context, questionPrompt, answerText string) (Evaluation, error) {
	f.evalCalls++
	if f.evalErr != nil {
		return Evaluation{}, f.evalErr
	}
	return f.evaluation, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Interview{}, &model.Question{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestInterviewService(t *testing.T, gen ContentGenerator) (InterviewService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewInterviewService(
		repository.NewInterviewRepository(db),
		repository.NewQuestionRepository(db),
		gen,
		db,
	), db
}

func questionStrings(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Question number %d?", i+1)
	}
	return out
}

func TestCreateInterviewPersistsOrderedQuestions(t *testing.T) {
	gen := &fakeGenerator{questions: questionStrings(5)}
	svc, db := newTestInterviewService(t, gen)

	resp, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 5,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Question)

	assert.Equal(t, 5, resp.TotalQuestions)
	assert.Equal(t, "Backend Developer", resp.Role)
	assert.Equal(t, 1, resp.Question.OrderInInterview)
	assert.Equal(t, "Question number 1?", resp.Question.Prompt)

	var questions []model.Question
	require.NoError(t, db.Where("interview_id = ?", resp.InterviewID).Order("order_in_interview ASC").Find(&questions).Error)
	require.Len(t, questions, 5)
	for i, q := range questions {
		assert.Equal(t, i+1, q.OrderInInterview)
		assert.Nil(t, q.AnswerText)
		assert.Nil(t, q.Score)
	}
}

func TestCreateInterviewTruncatesToRequestedCount(t *testing.T) {
	gen := &fakeGenerator{questions: questionStrings(8)}
	svc, _ := newTestInterviewService(t, gen)

	resp, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "SRE", Experience: "Senior", QuestionCount: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalQuestions)
}

func TestCreateInterviewAcceptsShorterList(t *testing.T) {
	// Fewer generated questions than requested is accepted silently, no retry.
	gen := &fakeGenerator{questions: questionStrings(3)}
	svc, _ := newTestInterviewService(t, gen)

	resp, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Data Engineer", Experience: "Mid", QuestionCount: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalQuestions)
	assert.Equal(t, 1, gen.generateCalls)
}

func TestCreateInterviewValidation(t *testing.T) {
	gen := &fakeGenerator{questions: questionStrings(5)}
	svc, _ := newTestInterviewService(t, gen)

	cases := []dto.StartInterviewRequest{
		{Role: "", Experience: "Junior", QuestionCount: 5},
		{Role: "   ", Experience: "Junior", QuestionCount: 5},
		{Role: "Backend Developer", Experience: "", QuestionCount: 5},
		{Role: "Backend Developer", Experience: "Junior", QuestionCount: 0},
		{Role: "Backend Developer", Experience: "Junior", QuestionCount: -1},
	}
	for _, req := range cases {
		_, err := svc.CreateInterview(context.Background(), 1, req)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
	// Validation rejects before any generator call.
	assert.Equal(t, 0, gen.generateCalls)
}

func TestCreateInterviewGeneratorFailureLeavesNoRows(t *testing.T) {
	gen := &fakeGenerator{questionsErr: errors.New("deadline exceeded")}
	svc, db := newTestInterviewService(t, gen)

	_, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 5,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&model.Interview{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNextQuestionReturnsLowestUnanswered(t *testing.T) {
	gen := &fakeGenerator{questions: questionStrings(3), evaluation: Evaluation{Score: 7}}
	svc, _ := newTestInterviewService(t, gen)

	created, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 3,
	})
	require.NoError(t, err)

	next, err := svc.NextQuestion(context.Background(), 1, created.InterviewID)
	require.NoError(t, err)
	require.NotNil(t, next.Question)
	assert.Equal(t, 1, next.Question.OrderInInterview)
	assert.False(t, next.Finished)

	// Answering the first question advances the cursor, never backward.
	_, err = svc.SubmitAnswer(context.Background(), 1, created.InterviewID, dto.SubmitAnswerRequest{
		QuestionID: next.Question.ID, AnswerText: "an answer",
	})
	require.NoError(t, err)

	next, err = svc.NextQuestion(context.Background(), 1, created.InterviewID)
	require.NoError(t, err)
	require.NotNil(t, next.Question)
	assert.Equal(t, 2, next.Question.OrderInInterview)
}

func TestNextQuestionOwnershipAndNotFound(t *testing.T) {
	gen := &fakeGenerator{questions: questionStrings(2)}
	svc, _ := newTestInterviewService(t, gen)

	created, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 2,
	})
	require.NoError(t, err)

	_, err = svc.NextQuestion(context.Background(), 2, created.InterviewID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.NextQuestion(context.Background(), 1, created.InterviewID+999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSubmitAnswerRecordsEvaluationAtomically(t *testing.T) {
	gen := &fakeGenerator{
		questions: questionStrings(2),
		evaluation: Evaluation{
			Score: 8, Strengths: "clear", Weaknesses: "shallow", Advice: "add an example",
		},
	}
	svc, db := newTestInterviewService(t, gen)

	created, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 2,
	})
	require.NoError(t, err)

	resp, err := svc.SubmitAnswer(context.Background(), 1, created.InterviewID, dto.SubmitAnswerRequest{
		QuestionID: created.Question.ID, AnswerText: "my answer",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Evaluation.Score)
	assert.False(t, resp.Finished)
	require.NotNil(t, resp.Question)
	assert.Equal(t, 2, resp.Question.OrderInInterview)

	var q model.Question
	require.NoError(t, db.First(&q, created.Question.ID).Error)
	require.NotNil(t, q.AnswerText)
	assert.Equal(t, "my answer", *q.AnswerText)
	require.NotNil(t, q.Score)
	assert.Equal(t, 8, *q.Score)
	require.NotNil(t, q.Strengths)
	assert.Equal(t, "clear", *q.Strengths)
	require.NotNil(t, q.Weaknesses)
	require.NotNil(t, q.Advice)
}

func TestSubmitAnswerOnLastQuestionCompletesInterview(t *testing.T) {
	gen := &fakeGenerator{questions: questionStrings(3), evaluation: Evaluation{Score: 6}}
	svc, db := newTestInterviewService(t, gen)

	created, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 3,
	})
	require.NoError(t, err)

	var final *dto.SubmitAnswerResponse
	for {
		next, err := svc.NextQuestion(context.Background(), 1, created.InterviewID)
		require.NoError(t, err)
		if next.Finished {
			break
		}
		final, err = svc.SubmitAnswer(context.Background(), 1, created.InterviewID, dto.SubmitAnswerRequest{
			QuestionID: next.Question.ID, AnswerText: "answer",
		})
		require.NoError(t, err)
	}

	require.NotNil(t, final)
	assert.True(t, final.Finished)
	require.Len(t, final.Summary, 3)
	for i, item := range final.Summary {
		assert.Equal(t, i+1, item.OrderInInterview)
		require.NotNil(t, item.Score)
		assert.Equal(t, 6, *item.Score)
	}

	var interview model.Interview
	require.NoError(t, db.First(&interview, created.InterviewID).Error)
	require.NotNil(t, interview.CompletedAt)
	firstCompletedAt := *interview.CompletedAt

	// Re-requesting "next" on a finished interview is idempotent and does not
	// move the completion timestamp.
	next, err := svc.NextQuestion(context.Background(), 1, created.InterviewID)
	require.NoError(t, err)
	assert.True(t, next.Finished)
	assert.Equal(t, final.Summary, next.Summary)

	require.NoError(t, db.First(&interview, created.InterviewID).Error)
	require.NotNil(t, interview.CompletedAt)
	assert.Equal(t, firstCompletedAt, *interview.CompletedAt)
}

func TestSubmitAnswerTwiceIsConflict(t *testing.T) {
	gen := &fakeGenerator{questions: questionStrings(2), evaluation: Evaluation{Score: 5}}
	svc, _ := newTestInterviewService(t, gen)

	created, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 2,
	})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(context.Background(), 1, created.InterviewID, dto.SubmitAnswerRequest{
		QuestionID: created.Question.ID, AnswerText: "first",
	})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(context.Background(), 1, created.InterviewID, dto.SubmitAnswerRequest{
		QuestionID: created.Question.ID, AnswerText: "second",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	gen := &fakeGenerator{questions: questionStrings(2)}
	svc, _ := newTestInterviewService(t, gen)

	created, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 2,
	})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(context.Background(), 1, created.InterviewID, dto.SubmitAnswerRequest{
		QuestionID: 99999, AnswerText: "answer",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSubmitAnswerEvaluationFailureLeavesQuestionUnanswered(t *testing.T) {
	gen := &fakeGenerator{questions: questionStrings(1), evalErr: errors.New("connection refused")}
	svc, db := newTestInterviewService(t, gen)

	created, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 1,
	})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(context.Background(), 1, created.InterviewID, dto.SubmitAnswerRequest{
		QuestionID: created.Question.ID, AnswerText: "answer",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))

	var q model.Question
	require.NoError(t, db.First(&q, created.Question.ID).Error)
	assert.Nil(t, q.AnswerText)

	var interview model.Interview
	require.NoError(t, db.First(&interview, created.InterviewID).Error)
	assert.Nil(t, interview.CompletedAt)
}

func TestZeroQuestionInterviewIsImmediatelyFinished(t *testing.T) {
	gen := &fakeGenerator{questions: nil}
	svc, _ := newTestInterviewService(t, gen)

	created, err := svc.CreateInterview(context.Background(), 1, dto.StartInterviewRequest{
		Role: "Backend Developer", Experience: "Junior", QuestionCount: 3,
	})
	require.NoError(t, err)
	assert.Zero(t, created.TotalQuestions)
	assert.Nil(t, created.Question)

	next, err := svc.NextQuestion(context.Background(), 1, created.InterviewID)
	require.NoError(t, err)
	assert.True(t, next.Finished)
	assert.Empty(t, next.Summary)
}
