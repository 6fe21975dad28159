package dto

import "time"

// StartInterviewRequest is the payload for starting a new mock interview.
type StartInterviewRequest struct {
	Role          string `json:"role" binding:"required"`
	Experience    string `json:"experience" binding:"required"`
	QuestionCount int    `json:"question_count" binding:"required,min=1"`
}

// QuestionDTO is the user-facing shape of a question still being asked.
type QuestionDTO struct {
	ID               uint   `json:"id"`
	OrderInInterview int    `json:"order_in_interview"`
	Prompt           string `json:"prompt"`
}

// StartInterviewResponse returns the created interview and its first question.
type StartInterviewResponse struct {
	InterviewID     uint         `json:"interview_id"`
	Role            string       `json:"role"`
	ExperienceLevel string       `json:"experience_level"`
	TotalQuestions  int          `json:"total_questions"`
	Question        *QuestionDTO `json:"question,omitempty"`
}

// QuestionSummaryDTO is one row of a finished interview's summary, evaluation
// fields included.
type QuestionSummaryDTO struct {
	ID               uint    `json:"id"`
	OrderInInterview int     `json:"order_in_interview"`
	Prompt           string  `json:"prompt"`
	AnswerText       *string `json:"answer_text,omitempty"`
	Score            *int    `json:"score,omitempty"`
	Strengths        *string `json:"strengths,omitempty"`
	Weaknesses       *string `json:"weaknesses,omitempty"`
	Advice           *string `json:"advice,omitempty"`
}

// NextQuestionResponse is either the next unanswered question or, once the
// interview is finished, the full ordered summary. Finished responses are
// idempotent.
type NextQuestionResponse struct {
	InterviewID    uint                 `json:"interview_id"`
	Role           string               `json:"role"`
	TotalQuestions int                  `json:"total_questions"`
	Finished       bool                 `json:"finished"`
	Question       *QuestionDTO         `json:"question,omitempty"`
	Summary        []QuestionSummaryDTO `json:"summary,omitempty"`
}

// SubmitAnswerRequest carries one answer for one question of the interview.
type SubmitAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	AnswerText string `json:"answer_text" binding:"required"`
}

type EvaluationDTO struct {
	Score      int    `json:"score"`
	Strengths  string `json:"strengths"`
	Weaknesses string `json:"weaknesses"`
	Advice     string `json:"advice"`
}

// SubmitAnswerResponse returns the evaluation of the submitted answer plus
// either the next question or the final summary.
type SubmitAnswerResponse struct {
	InterviewID uint                 `json:"interview_id"`
	Evaluation  EvaluationDTO        `json:"evaluation"`
	Finished    bool                 `json:"finished"`
	Question    *QuestionDTO         `json:"question,omitempty"`
	Summary     []QuestionSummaryDTO `json:"summary,omitempty"`
}

// HistoryItemDTO is one interview in the user's newest-first history.
type HistoryItemDTO struct {
	ID             uint      `json:"id"`
	Role           string    `json:"role"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
	AverageScore   int       `json:"average_score"`
	Status         string    `json:"status"` // "completed" | "in-progress"
}

// RecentAttemptDTO is a completed interview reduced for the dashboard.
type RecentAttemptDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Score     int       `json:"score"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type AnalyticsResponse struct {
	TotalInterviews int                `json:"total_interviews"`
	SuccessScore    int                `json:"success_score"`
	CurrentStreak   int                `json:"current_streak"`
	RecentAttempts  []RecentAttemptDTO `json:"recent_attempts"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
