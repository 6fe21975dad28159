package repository

import (
	"github.com/lshigami/Prepwise/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByIDAndInterview(id uint, interviewID uint) (*model.Question, error)
	FindByInterview(interviewID uint) ([]model.Question, error)
	FindFirstUnanswered(interviewID uint) (*model.Question, error)
	CountUnanswered(interviewID uint) (int64, error)
	RecordAnswer(questionID uint, answerText string, score int, strengths, weaknesses, advice string) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByIDAndInterview(id uint, interviewID uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Where("id = ? AND interview_id = ?", id, interviewID).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByInterview(interviewID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("interview_id = ?", interviewID).
		Order("order_in_interview ASC").
		Find(&questions).Error
	return questions, err
}

// FindFirstUnanswered returns the lowest-ordered question without an answer,
// or gorm.ErrRecordNotFound when every question is answered.
func (r *questionRepository) FindFirstUnanswered(interviewID uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Where("interview_id = ? AND answer_text IS NULL", interviewID).
		Order("order_in_interview ASC").
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) CountUnanswered(interviewID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).
		Where("interview_id = ? AND answer_text IS NULL", interviewID).
		Count(&count).Error
	return count, err
}

// RecordAnswer performs the one-time unanswered->answered transition: the
// answer and all four evaluation fields land in a single UPDATE filtered on
// answer_text IS NULL. The returned row count is 0 when the question was
// already answered, which callers surface as a conflict.
func (r *questionRepository) RecordAnswer(questionID uint, answerText string, score int, strengths, weaknesses, advice string) (int64, error) {
	result := r.db.Model(&model.Question{}).
		Where("id = ? AND answer_text IS NULL", questionID).
		Updates(map[string]interface{}{
			"answer_text": answerText,
			"score":       score,
			"strengths":   strengths,
			"weaknesses":  weaknesses,
			"advice":      advice,
		})
	return result.RowsAffected, result.Error
}
