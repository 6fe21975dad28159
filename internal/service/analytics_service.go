package service

import (
	"math"
	"time"

	"github.com/lshigami/Prepwise/config"
	"github.com/lshigami/Prepwise/internal/dto"
	"github.com/lshigami/Prepwise/internal/model"
	"github.com/lshigami/Prepwise/internal/repository"
	"github.com/rs/zerolog/log"
)

// recentAttemptLimit caps the dashboard's recent-attempts list.
const recentAttemptLimit = 3

// recentAttemptType tags every attempt on the dashboard; only technical
// interviews exist today.
const recentAttemptType = "Technical"

// AnalyticsService derives cross-interview statistics for a user.
type AnalyticsService interface {
	History(userID uint) ([]dto.HistoryItemDTO, error)
	Analytics(userID uint) (*dto.AnalyticsResponse, error)
}

type analyticsService struct {
	interviewRepo repository.InterviewRepository
	location      *time.Location
	now           func() time.Time
}

func NewAnalyticsService(interviewRepo repository.InterviewRepository, cfg *config.Config) AnalyticsService {
	loc, err := time.LoadLocation(cfg.Analytics.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Analytics.Timezone).Msg("Invalid analytics timezone, falling back to UTC")
		loc = time.UTC
	}
	return &analyticsService{
		interviewRepo: interviewRepo,
		location:      loc,
		now:           time.Now,
	}
}

func (s *analyticsService) History(userID uint) ([]dto.HistoryItemDTO, error) {
	interviews, err := s.interviewRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("History: failed to load interviews")
		return nil, err
	}

	items := make([]dto.HistoryItemDTO, 0, len(interviews))
	for i := range interviews {
		interview := &interviews[i]
		status := "in-progress"
		if interview.Completed() {
			status = "completed"
		}
		items = append(items, dto.HistoryItemDTO{
			ID:             interview.ID,
			Role:           interview.Role,
			TotalQuestions: interview.TotalQuestions,
			CreatedAt:      interview.CreatedAt,
			AverageScore:   averageScore(interview.Questions),
			Status:         status,
		})
	}
	return items, nil
}

func (s *analyticsService) Analytics(userID uint) (*dto.AnalyticsResponse, error) {
	completed, err := s.interviewRepo.FindCompletedByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Analytics: failed to load completed interviews")
		return nil, err
	}

	resp := dto.AnalyticsResponse{
		TotalInterviews: len(completed),
		SuccessScore:    successScore(completed),
		CurrentStreak:   currentStreak(completionDays(completed, s.location), dayOf(s.now().In(s.location))),
		RecentAttempts:  []dto.RecentAttemptDTO{},
	}

	// Repository orders by created_at DESC, so the first rows are the most
	// recently created completed interviews.
	for i := range completed {
		if i == recentAttemptLimit {
			break
		}
		resp.RecentAttempts = append(resp.RecentAttempts, dto.RecentAttemptDTO{
			ID:        completed[i].ID,
			Title:     completed[i].Role,
			Score:     averageScore(completed[i].Questions),
			Type:      recentAttemptType,
			CreatedAt: completed[i].CreatedAt,
		})
	}
	return &resp, nil
}

// averageScore is the rounded mean of the scored questions, 0 when none have
// been scored yet. Never NaN.
func averageScore(questions []model.Question) int {
	sum, count := 0, 0
	for i := range questions {
		if questions[i].Score != nil {
			sum += *questions[i].Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

// successScore is round(10 x mean over interviews of the per-interview mean
// score). Interviews weigh equally regardless of question count; interviews
// without any scored question are excluded from the mean.
func successScore(interviews []model.Interview) int {
	total, counted := 0.0, 0
	for i := range interviews {
		sum, count := 0, 0
		for j := range interviews[i].Questions {
			if interviews[i].Questions[j].Score != nil {
				sum += *interviews[i].Questions[j].Score
				count++
			}
		}
		if count == 0 {
			continue
		}
		total += float64(sum) / float64(count)
		counted++
	}
	if counted == 0 {
		return 0
	}
	return int(math.Round(10 * total / float64(counted)))
}

// day is a calendar day in the reference timezone.
type day struct {
	year  int
	month time.Month
	dom   int
}

func dayOf(t time.Time) day {
	y, m, d := t.Date()
	return day{year: y, month: m, dom: d}
}

// completionDays buckets completion timestamps into calendar days in loc.
func completionDays(interviews []model.Interview, loc *time.Location) map[day]bool {
	days := make(map[day]bool)
	for i := range interviews {
		if interviews[i].CompletedAt == nil {
			continue
		}
		days[dayOf(interviews[i].CompletedAt.In(loc))] = true
	}
	return days
}

// currentStreak walks backward from today counting consecutive days with at
// least one completion. A day without a completion stops the walk, so a quiet
// today always yields 0.
func currentStreak(days map[day]bool, today day) int {
	streak := 0
	cursor := time.Date(today.year, today.month, today.dom, 0, 0, 0, 0, time.UTC)
	for {
		if !days[dayOf(cursor)] {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}
