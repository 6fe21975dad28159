package repository

import (
	"github.com/lshigami/Prepwise/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(tx *gorm.DB, interview *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	FindByIDWithQuestions(id uint) (*model.Interview, error)
	FindAllByUser(userID uint) ([]model.Interview, error)
	FindCompletedByUser(userID uint) ([]model.Interview, error)
	MarkCompleted(interviewID uint) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Create persists an interview together with its questions. Passing a
// transaction handle keeps the parent and children one failure unit; pass nil
// to use the repository's own connection.
func (r *interviewRepository) Create(tx *gorm.DB, interview *model.Interview) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.First(&interview, id).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithQuestions(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_interview ASC")
	}).First(&interview, id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindAllByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.Where("user_id = ?", userID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_interview ASC")
		}).
		Order("created_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) FindCompletedByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_interview ASC")
		}).
		Order("created_at DESC").
		Find(&interviews).Error
	return interviews, err
}

// MarkCompleted stamps completed_at exactly once; an already-completed
// interview is left untouched so completion stays idempotent.
func (r *interviewRepository) MarkCompleted(interviewID uint) error {
	return r.db.Model(&model.Interview{}).
		Where("id = ? AND completed_at IS NULL", interviewID).
		Update("completed_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
