package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is one prompt within an interview. AnswerText, Score and the three
// evaluation fields stay nil until the user answers; they are then written
// together in a single guarded update and never change again.
type Question struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	InterviewID      uint           `json:"interview_id" gorm:"not null;index"`
	OrderInInterview int            `json:"order_in_interview" gorm:"not null"` // 1-based, dense within an interview
	Prompt           string         `json:"prompt" gorm:"type:text;not null"`
	AnswerText       *string        `json:"answer_text,omitempty" gorm:"type:text"`
	Score            *int           `json:"score,omitempty"` // 0-10
	Strengths        *string        `json:"strengths,omitempty" gorm:"type:text"`
	Weaknesses       *string        `json:"weaknesses,omitempty" gorm:"type:text"`
	Advice           *string        `json:"advice,omitempty" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// Answered reports whether the question has left its initial state.
func (q *Question) Answered() bool {
	return q.AnswerText != nil
}
