package model

import (
	"time"

	"gorm.io/gorm"
)

// Interview is one mock-interview attempt: a fixed-length ordered sequence of
// questions owned by a single user.
type Interview struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	Role            string         `json:"role" gorm:"not null"`             // "Backend Developer", free-form
	ExperienceLevel string         `json:"experience_level" gorm:"not null"` // "Junior", "Senior", free-form
	TotalQuestions  int            `json:"total_questions" gorm:"not null"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"` // nil until the last question is answered
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:InterviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// Completed reports whether the interview reached its terminal state.
// CompletedAt is the sole completion signal.
func (i *Interview) Completed() bool {
	return i.CompletedAt != nil
}
